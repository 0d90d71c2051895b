// Package textutil provides the text folding helpers used when matching
// free-text labels and column headers across human-maintained spreadsheets.
// Brazilian sources spell the same label with and without diacritics
// ("São Paulo" / "SAO PAULO", "Paraná" / "PARANA"), so every comparison in
// the pipeline goes through an accent-insensitive uppercase fold.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a label for comparison: trims surrounding whitespace,
// uppercases, and strips diacritical marks.
func Fold(s string) string {
	return strings.ToUpper(stripDiacritics(strings.TrimSpace(s)))
}

// ContainsFold reports whether sub occurs in s under Fold normalization.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// EqualFold reports whether two labels are equal under Fold normalization.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// stripDiacritics removes diacritical marks (accents) from a string.
// It decomposes the string into NFD form and removes combining marks.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var result strings.Builder
	result.Grow(len(decomposed))

	for _, r := range decomposed {
		// Skip combining marks (Nonspacing_Mark category)
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
