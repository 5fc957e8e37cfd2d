package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Walmart Supercenter", TitleCase("WALMART SUPERCENTER"))
	assert.Equal(t, "Food", TitleCase("food"))
	assert.Equal(t, "", TitleCase(""))
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Organic bananas", CapitalizeFirst("organic bananas"))
	assert.Equal(t, "Milk", CapitalizeFirst("Milk"))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"WALMART", true},
		{"WALMART #123", true},
		{"Walmart", false},
		{"12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAllCaps(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Whole Foods Market", CollapseWhitespace("  Whole   Foods\tMarket  "))
}

func TestCharacterRatios(t *testing.T) {
	digits, special := CharacterRatios("ab12")
	assert.InDelta(t, 0.5, digits, 0.0001)
	assert.InDelta(t, 0.0, special, 0.0001)

	digits, special = CharacterRatios("a#$!")
	assert.InDelta(t, 0.0, digits, 0.0001)
	assert.InDelta(t, 0.75, special, 0.0001)

	digits, special = CharacterRatios("")
	assert.Zero(t, digits)
	assert.Zero(t, special)
}

func TestCountLetters(t *testing.T) {
	assert.Equal(t, 3, CountLetters("a1b2c3"))
}
