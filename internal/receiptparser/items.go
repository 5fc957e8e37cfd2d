package receiptparser

import (
	"regexp"
	"sort"
	"strings"

	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/textutils"
)

var (
	leadingQtyRe   = regexp.MustCompile(`^\d+\s*[xX@*]\s*`)
	leadingCodeRe  = regexp.MustCompile(`(?i)^(?:(?:sku|plu|item|art)\s*#?\s*:?\s*)?\d{3,}\s+`)
	trailingBareRe = regexp.MustCompile(`\s+\d+$`)
	trailingUnitRe = regexp.MustCompile(`\s*@\s*[$€£₹]?\d+(?:[.,]\d{1,2})?$`)
	edgeNoiseRe    = regexp.MustCompile(`^[^\pL\pN]+|[^\pL\pN]+$`)

	abbreviations = []struct {
		re   *regexp.Regexp
		word string
	}{
		{regexp.MustCompile(`(?i)\bEA\b`), "each"},
		{regexp.MustCompile(`(?i)\bPK\b`), "pack"},
		{regexp.MustCompile(`(?i)\bDZ\b`), "dozen"},
		{regexp.MustCompile(`(?i)\bBTL\b`), "bottle"},
		{regexp.MustCompile(`(?i)\bPCS\b`), "pieces"},
	}
)

// CleanItemName strips quantity markers, item codes, a trailing "@ unit"
// price, trailing numbers and edge punctuation, expands unit abbreviations
// and capitalizes the first letter. It returns "" when nothing name-like is left.
func CleanItemName(raw string) string {
	name := strings.TrimSpace(raw)
	name = leadingQtyRe.ReplaceAllString(name, "")
	name = leadingCodeRe.ReplaceAllString(name, "")
	name = trailingUnitRe.ReplaceAllString(name, "")
	for trailingBareRe.MatchString(name) {
		name = trailingBareRe.ReplaceAllString(name, "")
	}
	name = edgeNoiseRe.ReplaceAllString(name, "")
	for _, abbr := range abbreviations {
		name = abbr.re.ReplaceAllString(name, abbr.word)
	}
	name = textutils.CollapseWhitespace(name)

	if textutils.CountLetters(name) < 2 {
		return ""
	}
	return textutils.CapitalizeFirst(name)
}

// DeduplicateItems keeps one item per lower-cased name, preferring the
// higher amount, and sorts the result by amount, highest first.
func DeduplicateItems(items []models.ReceiptItem) []models.ReceiptItem {
	index := make(map[string]int, len(items))
	unique := make([]models.ReceiptItem, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Name)
		if i, ok := index[key]; ok {
			if models.ParseAmount(item.Amount).GreaterThan(models.ParseAmount(unique[i].Amount)) {
				unique[i] = item
			}
			continue
		}
		index[key] = len(unique)
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return models.ParseAmount(unique[i].Amount).GreaterThan(models.ParseAmount(unique[j].Amount))
	})
	return unique
}
