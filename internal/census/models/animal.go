package models

import pstrings "menagerie/pkg/platform/strings"

// Animal is the leaf of the containment tree.
//
// Invariants:
//   - name is trimmed and non-empty
//   - immutable after construction; the zero value is not a valid Animal
type Animal struct {
	name string
}

// NewAnimal constructs an Animal from external input.
//
// Errors: returns ErrInvalidAnimalName when name is empty after trimming.
func NewAnimal(name string) (Animal, error) {
	n, err := normalizeName(name, ErrInvalidAnimalName)
	if err != nil {
		return Animal{}, err
	}
	return Animal{name: n}, nil
}

// MustAnimal is NewAnimal for fixtures and literals; it panics on invalid input.
func MustAnimal(name string) Animal {
	a, err := NewAnimal(name)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Animal) Name() string {
	return a.name
}

func (a Animal) String() string {
	return a.name
}

// IsZero reports whether a was built without NewAnimal.
func (a Animal) IsZero() bool {
	return a.name == ""
}

// Equal compares animals by name.
func (a Animal) Equal(other Animal) bool {
	return a.name == other.name
}

// MatchesPattern reports whether the name contains pattern, ignoring case.
// An empty pattern matches every animal; callers that need a non-empty
// pattern must reject it before traversal.
func (a Animal) MatchesPattern(pattern string) bool {
	return pstrings.ContainsFold(a.name, pattern)
}
