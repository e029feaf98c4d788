package models_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"menagerie/internal/census/models"
)

type PersonSuite struct {
	suite.Suite
}

func TestPersonSuite(t *testing.T) {
	suite.Run(t, new(PersonSuite))
}

func animalNames(animals []models.Animal) []string {
	names := make([]string, len(animals))
	for i, a := range animals {
		names[i] = a.Name()
	}
	return names
}

func (s *PersonSuite) TestConstruction() {
	s.Run("rejects blank name", func() {
		_, err := models.NewPerson("   ", nil)
		s.ErrorIs(err, models.ErrInvalidPersonName)
	})

	s.Run("rejects collection holding an unconstructed animal", func() {
		_, err := models.NewPerson("Winifred Graham", []models.Animal{models.MustAnimal("Duck"), {}})
		s.ErrorIs(err, models.ErrInvalidAnimalsCollection)
	})

	s.Run("name is validated before the collection", func() {
		_, err := models.NewPerson("", []models.Animal{{}})
		s.ErrorIs(err, models.ErrInvalidPersonName)
	})

	s.Run("accepts nil and empty collections", func() {
		p, err := models.NewPerson("Blanche Viciani", nil)
		s.Require().NoError(err)
		s.Equal(0, p.AnimalCount())
		s.Empty(p.Animals())

		p, err = models.NewPerson("Blanche Viciani", []models.Animal{})
		s.Require().NoError(err)
		s.Equal(0, p.AnimalCount())
	})

	s.Run("trims name and preserves animal order", func() {
		p, err := models.NewPerson(" Winifred Graham ", []models.Animal{
			models.MustAnimal("Anoa"), models.MustAnimal("Duck"), models.MustAnimal("Narwhal"),
		})
		s.Require().NoError(err)
		s.Equal("Winifred Graham", p.Name())
		s.Equal([]string{"Anoa", "Duck", "Narwhal"}, animalNames(p.Animals()))
	})
}

func (s *PersonSuite) TestDefensiveCopy() {
	s.Run("mutating the source slice does not affect the person", func() {
		source := []models.Animal{models.MustAnimal("Anoa"), models.MustAnimal("Duck")}
		p, err := models.NewPerson("Winifred Graham", source)
		s.Require().NoError(err)

		source[0] = models.MustAnimal("Cobra")
		_ = append(source[:1], models.MustAnimal("Crow"))

		s.Equal([]string{"Anoa", "Duck"}, animalNames(p.Animals()))
	})

	s.Run("mutating the returned slice does not affect the person", func() {
		p := models.MustPerson("Winifred Graham", models.MustAnimal("Anoa"))
		got := p.Animals()
		got[0] = models.MustAnimal("Cobra")

		s.Equal([]string{"Anoa"}, animalNames(p.Animals()))
	})
}

func (s *PersonSuite) TestFindAnimalsMatchingPattern() {
	p := models.MustPerson("Winifred Graham",
		models.MustAnimal("Anoa"),
		models.MustAnimal("Duck"),
		models.MustAnimal("Narwhal"),
		models.MustAnimal("Duck"),
	)

	s.Run("keeps matching animals in order, duplicates included", func() {
		matched, ok := p.FindAnimalsMatchingPattern("DUCK")
		s.Require().True(ok)
		s.Equal("Winifred Graham", matched.Name())
		s.Equal([]string{"Duck", "Duck"}, animalNames(matched.Animals()))
	})

	s.Run("keeps several distinct matches in order", func() {
		matched, ok := p.FindAnimalsMatchingPattern("a")
		s.Require().True(ok)
		s.Equal([]string{"Anoa", "Narwhal"}, animalNames(matched.Animals()))
	})

	s.Run("reports absence when nothing matches", func() {
		matched, ok := p.FindAnimalsMatchingPattern("zebra")
		s.False(ok)
		s.True(matched.IsZero())
	})

	s.Run("person without animals never matches", func() {
		_, ok := models.MustPerson("Blanche Viciani").FindAnimalsMatchingPattern("")
		s.False(ok)
	})

	s.Run("original person is untouched", func() {
		_, _ = p.FindAnimalsMatchingPattern("duck")
		s.Equal([]string{"Anoa", "Duck", "Narwhal", "Duck"}, animalNames(p.Animals()))
	})
}

func (s *PersonSuite) TestWithAnimalCount() {
	s.Run("appends animal count", func() {
		p := models.MustPerson("Winifred Graham",
			models.MustAnimal("Anoa"), models.MustAnimal("Duck"), models.MustAnimal("Narwhal"))
		enriched := p.WithAnimalCount()

		s.Equal("Winifred Graham [3]", enriched.Name())
		s.Equal([]string{"Anoa", "Duck", "Narwhal"}, animalNames(enriched.Animals()))
		s.Equal("Winifred Graham", p.Name())
	})

	s.Run("renders zero count", func() {
		s.Equal("Blanche Viciani [0]", models.MustPerson("Blanche Viciani").WithAnimalCount().Name())
	})

	s.Run("is not idempotent", func() {
		p := models.MustPerson("Winifred Graham", models.MustAnimal("Anoa"))
		s.Equal("Winifred Graham [1] [1]", p.WithAnimalCount().WithAnimalCount().Name())
	})
}
