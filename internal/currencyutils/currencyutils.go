// Package currencyutils provides the decimal amount parsing and formatting
// used by the receipt parser and the report layer.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencySymbolRe = regexp.MustCompile(`(?i)\b(?:CHF|EUR|USD|GBP|INR|Rs\.?)|[€$£¥₹\s]`)
	hundred          = decimal.NewFromInt(100)
)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1234,56", "$3.49" and "₹ 250".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency markers and converts the decimal separator
// to a dot so the result can be read by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = currencySymbolRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}
	return amountStr
}

// CentsToAmount converts an integer count of cents into a decimal amount.
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// FormatAmount formats an amount with two decimal places and the currency
// symbol, e.g. "₹1234.56" or "CHF 12.00". An empty currency yields the bare number.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}

	switch strings.ToUpper(currency) {
	case "INR", "₹":
		return "₹" + formatted
	case "EUR", "€":
		return "€" + formatted
	case "USD", "$":
		return "$" + formatted
	case "GBP", "£":
		return "£" + formatted
	case "CHF":
		return "CHF " + formatted
	default:
		return currency + " " + formatted
	}
}

// FormatFloat is FormatAmount for float64 amounts.
func FormatFloat(amount float64, currency string) string {
	return FormatAmount(decimal.NewFromFloat(amount), currency)
}

// Percentage returns part as a percentage of total, zero when total is zero.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	p, _ := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(total)).Mul(hundred).Float64()
	return p
}

// IsPositive checks if an amount is positive.
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
