// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/finny-analyzer/internal/common"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/fileutils"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
)

// IO bundles the standard streams of a command so handlers can be tested
// without touching the process streams.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// isStdin reports whether input designates standard input.
func isStdin(input string) bool {
	return input == "" || input == "-"
}

// LoadExpenses reads expense records from the input file, or CSV from
// standard input when input is empty or "-".
func LoadExpenses(input string, streams IO, logger logging.Logger) ([]models.Expense, error) {
	if isStdin(input) {
		return common.ReadExpenses(streams.In, "stdin", "csv", logger)
	}
	return common.ReadExpensesFile(input, logger)
}

// ReadText returns the content of the input file, or all of standard input
// when input is empty or "-".
func ReadText(input string, streams IO) (string, error) {
	if isStdin(input) {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := fileutils.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteResult renders value with the container's report generator in the
// configured format, to output or to standard output when output is empty.
func WriteResult(c *container.Container, value interface{}, output string, streams IO) error {
	format := c.GetConfig().Output.Format
	generator := c.GetReportGenerator()
	logger := c.GetLogger()

	if output == "" {
		return generator.Render(streams.Out, value, format)
	}

	file, err := fileutils.CreateFile(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := generator.Render(file, value, format); err != nil {
		return err
	}
	logger.Info("Report written",
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldFormat, Value: format})
	return nil
}
