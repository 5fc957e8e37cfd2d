package receiptparser

import (
	"regexp"
	"strings"

	"fjacquet/finny-analyzer/internal/currencyutils"

	"github.com/shopspring/decimal"
)

var (
	nonItemRe     = regexp.MustCompile(`(?i)\b(sub\s*-?\s*total|total|tax|vat|gst|date|time|cashier|change|cash|card|visa|mastercard|amex|debit|credit|balance|due|payment|paid|tender(?:ed)?|receipt|invoice|thank|tel|phone|store\s*#|register|discount|savings|points|member|auth|ref|approval)\b`)
	separatorRe   = regexp.MustCompile(`^[\s\-=*_.#~+|]+$`)
	pureNumericRe = regexp.MustCompile(`^[\d\s.,:/$€£₹%-]+$`)
	priceFieldRe  = regexp.MustCompile(`^[$€£₹]?(\d{1,6}(?:,\d{3})*[.,]\d{2})[€A-Z]?$`)
	lonePriceRe   = regexp.MustCompile(`^[$€£₹]?\s?(\d{1,6}(?:,\d{3})*[.,]\d{2})\s?[€A-Z]?$`)
	sectionEndRe  = regexp.MustCompile(`(?i)\b(sub\s*-?\s*total|total|amount\s+due|balance\s+due)\b`)
)

// IsNonItemLine reports whether a line can never be a purchased item:
// totals, taxes, payment, metadata, or lines of bare numbers and separators.
func IsNonItemLine(line string) bool {
	return nonItemRe.MatchString(line) ||
		separatorRe.MatchString(line) ||
		pureNumericRe.MatchString(line)
}

// itemSection returns the lines above the first total-like line. When the
// receipt starts with such a line every line is kept.
func itemSection(lines []string) []string {
	for i, line := range lines {
		if sectionEndRe.MatchString(line) {
			if i == 0 {
				return lines
			}
			return lines[:i]
		}
	}
	return lines
}

// priceTokens returns every whitespace-separated field of line that looks
// like a two-decimal amount.
func priceTokens(line string) []decimal.Decimal {
	var amounts []decimal.Decimal
	for _, field := range strings.Fields(line) {
		m := priceFieldRe.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		if amount, err := currencyutils.ParseAmount(m[1]); err == nil {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

// lonePrice parses a line holding nothing but an amount.
func lonePrice(line string) (decimal.Decimal, bool) {
	m := lonePriceRe.FindStringSubmatch(line)
	if m == nil {
		return decimal.Zero, false
	}
	amount, err := currencyutils.ParseAmount(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func parsePrice(s string) (decimal.Decimal, bool) {
	amount, err := currencyutils.ParseAmount(s)
	if err != nil || !amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return amount, true
}
