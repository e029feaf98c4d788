// Package mapper converts between plain records and census entities.
package mapper

import (
	"fmt"

	"menagerie/internal/census/models"
)

// ToCountries builds the entity tree from records, 1:1 and in order.
//
// The first record that violates an entity invariant aborts the whole
// conversion; no partial tree is returned. The error is prefixed with the
// record path (for example "countries[0].people[2].animals[1]") and still
// matches the model sentinel through errors.Is.
func ToCountries(records []models.CountryRecord) ([]models.Country, error) {
	countries := make([]models.Country, 0, len(records))
	for ci, rc := range records {
		people := make([]models.Person, 0, len(rc.People))
		for pi, rp := range rc.People {
			animals := make([]models.Animal, 0, len(rp.Animals))
			for ai, ra := range rp.Animals {
				a, err := models.NewAnimal(ra.Name)
				if err != nil {
					return nil, fmt.Errorf("countries[%d].people[%d].animals[%d]: %w", ci, pi, ai, err)
				}
				animals = append(animals, a)
			}
			p, err := models.NewPerson(rp.Name, animals)
			if err != nil {
				return nil, fmt.Errorf("countries[%d].people[%d]: %w", ci, pi, err)
			}
			people = append(people, p)
		}
		c, err := models.NewCountry(rc.Name, people)
		if err != nil {
			return nil, fmt.Errorf("countries[%d]: %w", ci, err)
		}
		countries = append(countries, c)
	}
	return countries, nil
}

// ToRecords flattens entities back into plain records suitable for
// serialisation. Empty child lists are emitted as empty slices, never nil,
// so JSON renders them as [].
func ToRecords(countries []models.Country) []models.CountryRecord {
	records := make([]models.CountryRecord, 0, len(countries))
	for _, c := range countries {
		people := c.People()
		rc := models.CountryRecord{Name: c.Name(), People: make([]models.PersonRecord, 0, len(people))}
		for _, p := range people {
			animals := p.Animals()
			rp := models.PersonRecord{Name: p.Name(), Animals: make([]models.AnimalRecord, 0, len(animals))}
			for _, a := range animals {
				rp.Animals = append(rp.Animals, models.AnimalRecord{Name: a.Name()})
			}
			rc.People = append(rc.People, rp)
		}
		records = append(records, rc)
	}
	return records
}
