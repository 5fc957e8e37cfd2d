package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "with line number",
			err: &ParseError{
				Source: "expenses.csv",
				Line:   4,
				Field:  "amount",
				Value:  "abc",
				Err:    errors.New("invalid number"),
			},
			expected: "expenses.csv:4: failed to parse amount='abc': invalid number",
		},
		{
			name: "without line number",
			err: &ParseError{
				Source: "stdin",
				Field:  "date",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "stdin: failed to parse date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ParseError{Source: "x", Field: "amount", Err: inner}
	assert.True(t, errors.Is(err, inner))

	var target *ParseError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "amount", target.Field)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "expenses.csv", Reason: "no records"}
	assert.Equal(t, "validation failed for expenses.csv: no records", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "in.txt",
		ExpectedFormat: "CSV with id,description,amount,date,category",
		Msg:            "missing header",
	}
	assert.Equal(t, "invalid format in file 'in.txt': missing header. Expected: CSV with id,description,amount,date,category", err.Error())

	err.ActualContentSnippet = "foo;bar"
	assert.Contains(t, err.Error(), "Content snippet: 'foo;bar'")
}
