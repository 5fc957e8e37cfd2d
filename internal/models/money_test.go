package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "3.49", FormatAmount(decimal.NewFromFloat(3.49)))
	assert.Equal(t, "10.00", FormatAmount(decimal.NewFromInt(10)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
	}{
		{"valid amount", "24.99", decimal.RequireFromString("24.99")},
		{"integer", "10", decimal.NewFromInt(10)},
		{"invalid falls back to zero", "abc", decimal.Zero},
		{"empty falls back to zero", "", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(ParseAmount(tt.input)))
		})
	}
}

func TestSumExpenses(t *testing.T) {
	expenses := []Expense{{Amount: 0.1}, {Amount: 0.2}, {Amount: 0.3}}
	assert.Equal(t, 0.6, SumExpenses(expenses))
	assert.Equal(t, 0.0, SumExpenses(nil))
	assert.Equal(t, 350.0, SumAmounts(200, 150))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 33.33, RoundAmount(33.333333))
	assert.Equal(t, 12.35, RoundAmount(12.345))
}

func TestGroupingResultRows(t *testing.T) {
	result := GroupingResult{
		Groups: []ExpenseGroup{{
			ID:        "g1",
			GroupName: "Transportation & Travel",
			Expenses: []Expense{
				{ID: "1", Description: "Uber ride", Amount: 200},
				{ID: "2", Description: "Uber trip", Amount: 150},
			},
		}},
		Ungrouped: []Expense{{ID: "3", Description: "Rent", Amount: 900}},
	}

	rows := result.Rows()
	assert.Len(t, rows, 3)
	assert.Equal(t, "g1", rows[0].GroupID)
	assert.Equal(t, "Transportation & Travel", rows[1].GroupName)
	assert.Empty(t, rows[2].GroupID)
	assert.Equal(t, "Rent", rows[2].Description)
}
