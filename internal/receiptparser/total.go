package receiptparser

import (
	"math"
	"regexp"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

const (
	totalRegionShare   = 0.4
	largestRegionShare = 0.25
)

const amountPattern = `[$€£₹]?\s*(\d{1,6}(?:,\d{3})*[.,]\d{2})`

var (
	subtotalRe = regexp.MustCompile(`(?i)sub\s*-?\s*total`)

	// tried in order, each over the whole total region
	totalPatterns = []struct {
		re           *regexp.Regexp
		skipSubtotal bool
	}{
		{regexp.MustCompile(`(?i)grand\s*total\s*[:=]?\s*` + amountPattern), false},
		{regexp.MustCompile(`(?i)\btotal\s*[:=]?\s*` + amountPattern), true},
		{regexp.MustCompile(`(?i)\b(?:amount|balance|total)\s+due\s*[:=]?\s*` + amountPattern), false},
		{regexp.MustCompile(`(?i)\b(?:net\s+)?(?:amount|balance)\s*[:=]?\s*` + amountPattern), false},
		{regexp.MustCompile(`(?i)sub\s*-?\s*total\s*[:=]?\s*` + amountPattern), false},
	}
)

// ExtractTotal finds the receipt total. Keyword lines in the bottom 40% are
// tried first, then a standalone amount line there, then the largest amount
// in the bottom quarter. The sum of items is the last resort and "0.00" is
// returned when there are none.
func ExtractTotal(lines []string, items []models.ReceiptItem) string {
	region := bottomLines(lines, totalRegionShare)

	for _, p := range totalPatterns {
		for i := len(region) - 1; i >= 0; i-- {
			line := region[i]
			if p.skipSubtotal && subtotalRe.MatchString(line) {
				continue
			}
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if amount, err := currencyutils.ParseAmount(m[1]); err == nil && amount.GreaterThan(decimal.Zero) {
				return models.FormatAmount(amount)
			}
		}
	}

	for i := len(region) - 1; i >= 0; i-- {
		if amount, ok := lonePrice(region[i]); ok && amount.GreaterThan(decimal.Zero) {
			return models.FormatAmount(amount)
		}
	}

	largest := decimal.Zero
	for _, line := range bottomLines(lines, largestRegionShare) {
		for _, amount := range priceTokens(line) {
			if amount.GreaterThan(largest) {
				largest = amount
			}
		}
	}
	if largest.GreaterThan(decimal.Zero) {
		return models.FormatAmount(largest)
	}

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(models.ParseAmount(item.Amount))
	}
	return models.FormatAmount(sum)
}

// bottomLines returns the last share of lines, at least one line when any exist.
func bottomLines(lines []string, share float64) []string {
	n := int(math.Ceil(float64(len(lines)) * share))
	if n > len(lines) {
		n = len(lines)
	}
	return lines[len(lines)-n:]
}
