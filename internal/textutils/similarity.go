// Package textutils provides text comparison and normalization utilities shared
// by the receipt parser and the expense grouping engine.
package textutils

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// LevenshteinDistance returns the exact edit distance between a and b,
// counted in runes.
func LevenshteinDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// CalculateSimilarity scores two strings on a 0-100 scale:
// round(100 * (maxLen - distance) / maxLen), case-insensitive and trimmed.
func CalculateSimilarity(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 100
	}

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	distance := LevenshteinDistance(a, b)
	return int(math.Round(100 * float64(maxLen-distance) / float64(maxLen)))
}
