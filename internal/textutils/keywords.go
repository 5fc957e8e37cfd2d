package textutils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// minKeywordLength is the shortest token kept by ExtractKeywords.
const minKeywordLength = 3

// ExtractKeywords lower-cases text, strips punctuation and returns the
// whitespace-separated tokens longer than two characters. Order and
// duplicates are preserved.
func ExtractKeywords(text string) []string {
	cleaned := punctuationRe.ReplaceAllString(strings.ToLower(text), "")

	var keywords []string
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) >= minKeywordLength {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// CommonKeywords returns the distinct keywords present in both lists, in the
// order they first appear in a.
func CommonKeywords(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, k := range b {
		inB[k] = struct{}{}
	}

	seen := make(map[string]struct{})
	var common []string
	for _, k := range a {
		if _, ok := inB[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		common = append(common, k)
	}
	return common
}

// KeywordFrequencies counts keyword occurrences across texts and returns the
// keywords ordered by descending count, ties kept in first-seen order.
func KeywordFrequencies(texts []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, k := range ExtractKeywords(text) {
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	// insertion sort keeps first-seen order among equal counts
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}
