// Package traversal holds the two whole-tree algorithms over countries.
//
// Both are pure: no I/O, no logging, no mutation of the input. Every call
// returns a freshly built tree.
package traversal

import "menagerie/internal/census/models"

// FilterByAnimalPattern rebuilds the tree keeping only animals whose name
// contains pattern (case-insensitive). People left without animals and
// countries left without people are dropped. Relative order is preserved.
//
// The result is never nil; no match at all yields an empty slice.
// Blank patterns must be rejected by the caller before calling this.
func FilterByAnimalPattern(countries []models.Country, pattern string) []models.Country {
	out := make([]models.Country, 0, len(countries))
	for _, c := range countries {
		if matched, ok := c.FindPeopleWithAnimalsMatchingPattern(pattern); ok {
			out = append(out, matched)
		}
	}
	return out
}

// EnrichWithCounts rebuilds the tree with " [N]" suffixes: countries get their
// number of people, people their number of animals. Nothing is dropped.
func EnrichWithCounts(countries []models.Country) []models.Country {
	out := make([]models.Country, len(countries))
	for i, c := range countries {
		out[i] = c.WithPeopleCount()
	}
	return out
}

// Walker exposes the algorithms as methods so services can depend on them
// through an interface.
type Walker struct{}

// NewWalker returns a Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// FindCountriesWithAnimalsMatching delegates to FilterByAnimalPattern.
func (w *Walker) FindCountriesWithAnimalsMatching(countries []models.Country, pattern string) []models.Country {
	return FilterByAnimalPattern(countries, pattern)
}

// EnrichCountriesWithCounts delegates to EnrichWithCounts.
func (w *Walker) EnrichCountriesWithCounts(countries []models.Country) []models.Country {
	return EnrichWithCounts(countries)
}
