package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/census/models"
)

func dillautiRecords() []models.CountryRecord {
	return []models.CountryRecord{
		{
			Name: "Dillauti",
			People: []models.PersonRecord{
				{Name: "Winifred Graham", Animals: []models.AnimalRecord{{Name: "Anoa"}, {Name: "Duck"}, {Name: "Narwhal"}}},
				{Name: "Blanche Viciani", Animals: []models.AnimalRecord{}},
			},
		},
		{Name: "Tohabdal", People: nil},
	}
}

func TestToCountries(t *testing.T) {
	t.Run("converts records one to one", func(t *testing.T) {
		countries, err := ToCountries(dillautiRecords())
		require.NoError(t, err)
		require.Len(t, countries, 2)

		assert.Equal(t, "Dillauti", countries[0].Name())
		people := countries[0].People()
		require.Len(t, people, 2)
		assert.Equal(t, "Winifred Graham", people[0].Name())
		assert.Equal(t, 3, people[0].AnimalCount())
		assert.Equal(t, "Narwhal", people[0].Animals()[2].Name())
		assert.Equal(t, 0, people[1].AnimalCount())
		assert.Equal(t, 0, countries[1].PeopleCount())
	})

	t.Run("trims names on the way in", func(t *testing.T) {
		countries, err := ToCountries([]models.CountryRecord{{Name: " Zuhackog ", People: []models.PersonRecord{
			{Name: " Elva Baroni", Animals: []models.AnimalRecord{{Name: "Oryx "}}},
		}}})
		require.NoError(t, err)
		assert.Equal(t, "Zuhackog", countries[0].Name())
		assert.Equal(t, "Elva Baroni", countries[0].People()[0].Name())
		assert.Equal(t, "Oryx", countries[0].People()[0].Animals()[0].Name())
	})

	t.Run("invalid animal aborts the whole conversion", func(t *testing.T) {
		records := dillautiRecords()
		records[0].People[0].Animals[1].Name = "  "

		countries, err := ToCountries(records)
		require.Error(t, err)
		assert.Nil(t, countries)
		assert.ErrorIs(t, err, models.ErrInvalidAnimalName)
		assert.Contains(t, err.Error(), "countries[0].people[0].animals[1]")
	})

	t.Run("invalid person name is reported with its path", func(t *testing.T) {
		records := dillautiRecords()
		records[0].People[1].Name = ""

		_, err := ToCountries(records)
		assert.ErrorIs(t, err, models.ErrInvalidPersonName)
		assert.Contains(t, err.Error(), "countries[0].people[1]")
	})

	t.Run("invalid country name is reported with its path", func(t *testing.T) {
		records := dillautiRecords()
		records[1].Name = "\t"

		_, err := ToCountries(records)
		assert.ErrorIs(t, err, models.ErrInvalidCountryName)
		assert.Contains(t, err.Error(), "countries[1]")
	})

	t.Run("empty input yields empty tree", func(t *testing.T) {
		countries, err := ToCountries(nil)
		require.NoError(t, err)
		assert.Empty(t, countries)
	})
}

func TestToRecords(t *testing.T) {
	t.Run("round trips valid records", func(t *testing.T) {
		countries, err := ToCountries(dillautiRecords())
		require.NoError(t, err)

		records := ToRecords(countries)

		want := dillautiRecords()
		want[1].People = []models.PersonRecord{}
		assert.Equal(t, want, records)
	})

	t.Run("empty children are non-nil", func(t *testing.T) {
		records := ToRecords([]models.Country{models.MustCountry("Uzuzozne")})
		require.Len(t, records, 1)
		assert.NotNil(t, records[0].People)

		records = ToRecords([]models.Country{models.MustCountry("Uzuzozne", models.MustPerson("Lena Cole"))})
		assert.NotNil(t, records[0].People[0].Animals)
	})
}
