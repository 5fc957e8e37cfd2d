package models

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two decimal places, e.g. "3.49".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ParseAmount parses a two-decimal amount string produced by FormatAmount.
// Unparseable input yields zero; receipt amounts are never allowed to fail a parse.
func ParseAmount(amount string) decimal.Decimal {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// SumAmounts adds float amounts through decimal arithmetic so that repeated
// additions do not drift.
func SumAmounts(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

// SumExpenses returns the total amount of the given expenses.
func SumExpenses(expenses []Expense) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	f, _ := total.Float64()
	return f
}

// RoundAmount rounds a float amount to two decimal places.
func RoundAmount(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}
