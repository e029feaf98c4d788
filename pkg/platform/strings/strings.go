// Package strings provides string helpers shared by domain validation and matching.
package strings

import (
	"strings"
)

// TrimNonEmpty trims surrounding whitespace from s and reports whether
// anything is left.
//
// Example:
//
//	TrimNonEmpty("  Duck ") // "Duck", true
//	TrimNonEmpty("   ")     // "", false
func TrimNonEmpty(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ContainsFold reports whether substr is within s after lower-casing both.
// An empty substr is contained in every string.
//
// Example:
//
//	ContainsFold("Narwhal", "WHAL") // true
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
