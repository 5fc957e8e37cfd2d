package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"uber", "uber", 0},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.b, tt.a))
		})
	}
}

func TestCalculateSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "Uber ride", "Uber ride", 100},
		{"case and spaces ignored", "  UBER RIDE ", "uber ride", 100},
		{"both empty", "", "", 100},
		{"one empty", "abc", "", 0},
		{"kitten sitting", "kitten", "sitting", 57},
		{"uber ride trip", "Uber ride", "Uber trip", 67},
		{"completely different", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateSimilarity(tt.a, tt.b))
			assert.Equal(t, tt.expected, CalculateSimilarity(tt.b, tt.a))
		})
	}
}

func TestCalculateSimilarity_Range(t *testing.T) {
	inputs := []string{"", "a", "Netflix", "netflix subscription", "Swiggy order", "₹ chai"}
	for _, a := range inputs {
		for _, b := range inputs {
			score := CalculateSimilarity(a, b)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
