// Package store provides the raw census dataset.
//
// The dataset is read-only: a store is loaded once and every read hands out a
// deep copy, so callers may freely modify what they receive.
package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"menagerie/internal/census/models"
	"menagerie/pkg/platform/sentinel"
)

//go:embed seed.yaml
var seedYAML []byte

// Format selects the dataset decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// InMemory serves a dataset held in memory.
type InMemory struct {
	countries []models.CountryRecord
}

// NewInMemory creates a store over a private copy of records.
func NewInMemory(records []models.CountryRecord) *InMemory {
	return &InMemory{countries: cloneRecords(records)}
}

// NewSeeded creates a store over the sample dataset compiled into the binary.
func NewSeeded() (*InMemory, error) {
	records, err := Decode(seedYAML, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("decode seed dataset: %w", err)
	}
	return &InMemory{countries: records}, nil
}

// LoadFile creates a store from a dataset file. Files ending in .json are
// decoded as JSON, everything else as YAML.
//
// Errors: a missing file wraps sentinel.ErrNotFound, an unreadable one wraps
// sentinel.ErrUnavailable; malformed content returns the decode error.
func LoadFile(path string) (*InMemory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset %s: %w", path, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("dataset %s: %w: %w", path, sentinel.ErrUnavailable, err)
	}
	records, err := Decode(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &InMemory{countries: records}, nil
}

// Decode parses a dataset document. Unknown fields are rejected so typos in
// hand-written datasets surface early; an empty document is an empty dataset.
func Decode(data []byte, format Format) ([]models.CountryRecord, error) {
	var records []models.CountryRecord
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
	if records == nil {
		records = []models.CountryRecord{}
	}
	return records, nil
}

// ListCountries returns a deep copy of the dataset.
func (s *InMemory) ListCountries(ctx context.Context) ([]models.CountryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneRecords(s.countries), nil
}

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func cloneRecords(records []models.CountryRecord) []models.CountryRecord {
	out := make([]models.CountryRecord, len(records))
	for i, c := range records {
		out[i] = models.CountryRecord{Name: c.Name}
		if c.People != nil {
			out[i].People = make([]models.PersonRecord, len(c.People))
		}
		for j, p := range c.People {
			out[i].People[j] = models.PersonRecord{Name: p.Name}
			if p.Animals != nil {
				out[i].People[j].Animals = make([]models.AnimalRecord, len(p.Animals))
				copy(out[i].People[j].Animals, p.Animals)
			}
		}
	}
	return out
}
