// Package word defines the candidate word rules and per-word scoring
// value objects.
package word

import (
	"strings"
)

// Candidate word length bounds.
const (
	MinLength = 3
	MaxLength = 15
)

// Normalize trims and lowercases a raw token from a word-list source.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValid reports whether s is an acceptable candidate word:
// lowercase ASCII letters only, length within [MinLength, MaxLength].
func IsValid(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
