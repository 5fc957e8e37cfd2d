// Package common provides the expense input readers and tabular writers
// shared by the commands.
package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/parsererror"
	"fjacquet/finny-analyzer/internal/validation"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Delimiter is the CSV field separator used for reading and writing.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReadCSV reads CSV rows into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSV[TCSVRow any](r io.Reader) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// WriteCSV writes rows as CSV with a header derived from their csv tags.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadExpensesFile loads expense records from a CSV, JSON or YAML file,
// chosen by extension. Anything else is read as CSV.
func ReadExpensesFile(filePath string, logger logging.Logger) ([]models.Expense, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if err := validation.IsValidInputFile(filePath); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath) // #nosec G304 -- path provided by the user
	if err != nil {
		return nil, fmt.Errorf("error opening expense file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	expenses, err := ReadExpenses(file, filePath, format, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded expenses",
		logging.Field{Key: logging.FieldInputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	return expenses, nil
}

// ReadExpenses decodes expense records from r in the given format ("csv",
// "json", "yaml" or "yml"; anything else is read as CSV), validates them
// and assigns a positional ID to records without one. source names the
// input in error messages.
func ReadExpenses(r io.Reader, source, format string, logger logging.Logger) ([]models.Expense, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var (
		expenses []models.Expense
		err      error
		// CSV records start below the header line
		firstLine = 1
	)
	switch format {
	case "json":
		err = json.NewDecoder(r).Decode(&expenses)
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(&expenses)
		if err == io.EOF {
			err = nil
		}
	default:
		expenses, err = ReadCSV[models.Expense](r)
		firstLine = 2
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: "records with id, description, amount, date and category",
			Msg:            err.Error(),
		}
	}

	for i := range expenses {
		expenses[i].Description = strings.TrimSpace(expenses[i].Description)
		expenses[i].Category = strings.TrimSpace(expenses[i].Category)
		if err := validation.ValidateExpense(source, i+firstLine, expenses[i]); err != nil {
			return nil, err
		}
		if expenses[i].ID == "" {
			expenses[i].ID = strconv.Itoa(i + 1)
		}
	}

	logger.Debug("Decoded expenses",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	if expenses == nil {
		expenses = make([]models.Expense, 0)
	}
	return expenses, nil
}
