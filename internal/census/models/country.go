package models

import "slices"

// Country is the root of the containment tree.
//
// Invariants:
//   - name is trimmed and non-empty
//   - people is an independent copy taken at construction; it may be empty
//   - every person was built with NewPerson
type Country struct {
	name   string
	people []Person
}

// NewCountry constructs a Country, copying people so later changes to the
// caller's slice cannot leak in.
//
// Errors: ErrInvalidCountryName for a blank name, ErrInvalidPeopleCollection
// when the collection holds a zero-value Person.
func NewCountry(name string, people []Person) (Country, error) {
	n, err := normalizeName(name, ErrInvalidCountryName)
	if err != nil {
		return Country{}, err
	}
	if slices.ContainsFunc(people, Person.IsZero) {
		return Country{}, ErrInvalidPeopleCollection
	}
	return Country{name: n, people: clonePeople(people)}, nil
}

// MustCountry is NewCountry for fixtures and literals; it panics on invalid input.
func MustCountry(name string, people ...Person) Country {
	c, err := NewCountry(name, people)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Country) Name() string {
	return c.name
}

// People returns a copy of the residents in their original order.
func (c Country) People() []Person {
	return clonePeople(c.people)
}

func (c Country) PeopleCount() int {
	return len(c.people)
}

// FindPeopleWithAnimalsMatchingPattern filters every person and keeps the
// ones that still own a matching animal, in order. ok is false when nobody
// is left, which tells the caller to drop this country.
func (c Country) FindPeopleWithAnimalsMatchingPattern(pattern string) (matched Country, ok bool) {
	var kept []Person
	for _, p := range c.people {
		if m, found := p.FindAnimalsMatchingPattern(pattern); found {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return Country{}, false
	}
	return Country{name: c.name, people: kept}, true
}

// WithPeopleCount enriches every person with its animal count, then names the
// country "<name> [<people count>]". Nothing is filtered.
func (c Country) WithPeopleCount() Country {
	enriched := make([]Person, len(c.people))
	for i, p := range c.people {
		enriched[i] = p.WithAnimalCount()
	}
	return Country{
		name:   withCount(c.name, len(c.people)),
		people: enriched,
	}
}

func clonePeople(people []Person) []Person {
	out := make([]Person, len(people))
	copy(out, people)
	return out
}
