package models

// CountryRecord is the plain-data shape of a country, used for datasets on
// the way in and for presentation on the way out.
type CountryRecord struct {
	Name   string         `json:"name" yaml:"name"`
	People []PersonRecord `json:"people" yaml:"people"`
}

// PersonRecord is the plain-data shape of a person.
type PersonRecord struct {
	Name    string         `json:"name" yaml:"name"`
	Animals []AnimalRecord `json:"animals" yaml:"animals"`
}

// AnimalRecord is the plain-data shape of an animal.
type AnimalRecord struct {
	Name string `json:"name" yaml:"name"`
}
