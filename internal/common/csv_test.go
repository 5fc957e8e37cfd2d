package common

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,description,amount,date,category
1,Uber ride,200,2024-03-01,Transportation
2,Uber trip,150.50,2024-03-05,Transportation
,Swiggy order,320,2024-03-07,Food
`

func TestReadExpenses_CSV(t *testing.T) {
	expenses, err := ReadExpenses(strings.NewReader(sampleCSV), "expenses.csv", "csv", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	assert.Equal(t, models.Expense{ID: "1", Description: "Uber ride", Amount: 200, Date: "2024-03-01", Category: "Transportation"}, expenses[0])
	assert.Equal(t, 150.5, expenses[1].Amount)
	// missing IDs are positional
	assert.Equal(t, "3", expenses[2].ID)
}

func TestReadExpenses_JSONAndYAML(t *testing.T) {
	jsonInput := `[{"id":"a","description":"Netflix","amount":649,"date":"2024-01-01","category":"Entertainment"}]`
	expenses, err := ReadExpenses(strings.NewReader(jsonInput), "in.json", "json", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Netflix", expenses[0].Description)

	yamlInput := `- id: b
  description: Electricity bill
  amount: 1200
  date: "2024-02-01"
  category: Utilities
`
	expenses, err = ReadExpenses(strings.NewReader(yamlInput), "in.yaml", "yaml", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 1200.0, expenses[0].Amount)

	expenses, err = ReadExpenses(strings.NewReader(""), "empty.yaml", "yaml", logging.NewMockLogger())
	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.NotNil(t, expenses)
}

func TestReadExpenses_InvalidRecord(t *testing.T) {
	input := "id,description,amount,date,category\n1,,10,2024-01-01,Food\n"
	_, err := ReadExpenses(strings.NewReader(input), "bad.csv", "csv", logging.NewMockLogger())
	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "description", parseErr.Field)
	assert.Equal(t, 2, parseErr.Line)
}

func TestReadExpenses_InvalidFormat(t *testing.T) {
	_, err := ReadExpenses(strings.NewReader("{not json"), "bad.json", "json", logging.NewMockLogger())
	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestReadExpensesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))

	logger := logging.NewMockLogger()
	expenses, err := ReadExpensesFile(path, logger)
	require.NoError(t, err)
	assert.Len(t, expenses, 3)
	assert.True(t, logger.HasEntry("INFO", "Loaded expenses"))

	_, err = ReadExpensesFile(filepath.Join(dir, "missing.csv"), logger)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.RankedExpense{
		{Description: "Rent", Amount: 900, Date: "2024-03-01", Category: "Housing", Percentage: 75},
	}
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "description,amount,date,category,percentage", lines[0])
	assert.Equal(t, "Rent,900,2024-03-01,Housing,75", lines[1])
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')
	input := "id;description;amount;date;category\n1;Chai;20;2024-01-01;Food\n"
	expenses, err := ReadExpenses(strings.NewReader(input), "semi.csv", "csv", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 20.0, expenses[0].Amount)
}
