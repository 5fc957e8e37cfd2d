package textutils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	titleCaser   = cases.Title(language.English)
)

// CollapseWhitespace trims s and replaces every whitespace run with one space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TitleCase converts "WALMART SUPERCENTER" to "Walmart Supercenter".
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// CapitalizeFirst upper-cases the first rune and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsAllCaps reports whether s has letters and none of them are lower case.
func IsAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// CharacterRatios returns the share of digits and of characters that are
// neither letters, digits nor spaces.
func CharacterRatios(s string) (digits, special float64) {
	total := 0
	var d, sp int
	for _, r := range s {
		total++
		switch {
		case unicode.IsDigit(r):
			d++
		case unicode.IsLetter(r), unicode.IsSpace(r):
		default:
			sp++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return float64(d) / float64(total), float64(sp) / float64(total)
}

// CountLetters returns the number of letter runes in s.
func CountLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
