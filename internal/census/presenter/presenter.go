// Package presenter renders census records for output.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"menagerie/internal/census/models"
)

const indent = "  "

// JSON renders records as JSON indented with two spaces.
// A nil slice renders as [] so callers always emit a JSON array.
func JSON(records []models.CountryRecord) (string, error) {
	if records == nil {
		records = []models.CountryRecord{}
	}
	out, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return "", fmt.Errorf("marshal countries: %w", err)
	}
	return string(out), nil
}

// WriteJSON writes JSON(records) followed by a newline.
func WriteJSON(w io.Writer, records []models.CountryRecord) error {
	out, err := JSON(records)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("write countries: %w", err)
	}
	return nil
}
