package models

import "slices"

// Person owns an ordered list of animals.
//
// Invariants:
//   - name is trimmed and non-empty
//   - animals is an independent copy taken at construction; it may be empty
//   - every animal was built with NewAnimal
type Person struct {
	name    string
	animals []Animal
}

// NewPerson constructs a Person, copying animals so later changes to the
// caller's slice cannot leak in.
//
// Errors: ErrInvalidPersonName for a blank name, ErrInvalidAnimalsCollection
// when the collection holds a zero-value Animal.
func NewPerson(name string, animals []Animal) (Person, error) {
	n, err := normalizeName(name, ErrInvalidPersonName)
	if err != nil {
		return Person{}, err
	}
	if slices.ContainsFunc(animals, Animal.IsZero) {
		return Person{}, ErrInvalidAnimalsCollection
	}
	return Person{name: n, animals: cloneAnimals(animals)}, nil
}

// MustPerson is NewPerson for fixtures and literals; it panics on invalid input.
func MustPerson(name string, animals ...Animal) Person {
	p, err := NewPerson(name, animals)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Person) Name() string {
	return p.name
}

// Animals returns a copy of the owned animals in their original order.
func (p Person) Animals() []Animal {
	return cloneAnimals(p.animals)
}

func (p Person) AnimalCount() int {
	return len(p.animals)
}

// IsZero reports whether p was built without NewPerson.
func (p Person) IsZero() bool {
	return p.name == ""
}

// FindAnimalsMatchingPattern keeps the animals whose name matches pattern, in
// order. ok is false when nothing matches, which tells the caller to drop
// this person; a present result always has at least one animal.
func (p Person) FindAnimalsMatchingPattern(pattern string) (matched Person, ok bool) {
	var kept []Animal
	for _, a := range p.animals {
		if a.MatchesPattern(pattern) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return Person{}, false
	}
	return Person{name: p.name, animals: kept}, true
}

// WithAnimalCount returns a copy named "<name> [<animal count>]".
// The count is always rendered, including [0].
func (p Person) WithAnimalCount() Person {
	return Person{
		name:    withCount(p.name, len(p.animals)),
		animals: cloneAnimals(p.animals),
	}
}

func cloneAnimals(animals []Animal) []Animal {
	out := make([]Animal, len(animals))
	copy(out, animals)
	return out
}
