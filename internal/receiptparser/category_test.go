package receiptparser

import (
	"testing"

	"fjacquet/finny-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Whole Milk", models.CategoryGroceries},
		{"Organic Bananas", models.CategoryProduce},
		{"Chicken Breast", models.CategoryMeat},
		{"Cheese Burger Combo", models.CategoryDining},
		{"Paper Towels", models.CategoryHousehold},
		{"Steak Knife Set", models.CategoryMeat},
		{"USB Cable", models.CategoryShopping},
		{"", models.CategoryShopping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessCategory(tt.name))
		})
	}
}
