package models

import (
	"fmt"

	pstrings "menagerie/pkg/platform/strings"
)

// normalizeName is the single name invariant shared by every entity:
// the trimmed value must be non-empty. onInvalid is returned untouched so each
// entity keeps its own sentinel.
func normalizeName(raw string, onInvalid error) (string, error) {
	name, ok := pstrings.TrimNonEmpty(raw)
	if !ok {
		return "", onInvalid
	}
	return name, nil
}

// withCount renders the enrichment suffix used by Person and Country.
func withCount(name string, n int) string {
	return fmt.Sprintf("%s [%d]", name, n)
}
