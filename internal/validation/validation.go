// Package validation checks expense records and file inputs before they are
// handed to the analyzers.
package validation

import (
	"fmt"
	"math"
	"os"
	"strings"

	"fjacquet/finny-analyzer/internal/dateutils"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/parsererror"
)

// IsValidInputFile checks that path exists and is a regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// ValidateExpense checks a single record loaded from source at the given
// line. The description must be present, the amount finite and the date,
// when set, parseable.
func ValidateExpense(source string, line int, e models.Expense) error {
	if strings.TrimSpace(e.Description) == "" {
		return &parsererror.ParseError{
			Source: source, Line: line, Field: "description", Value: e.Description,
			Err: fmt.Errorf("description is empty"),
		}
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return &parsererror.ParseError{
			Source: source, Line: line, Field: "amount", Value: fmt.Sprint(e.Amount),
			Err: fmt.Errorf("amount is not a finite number"),
		}
	}
	if e.Date != "" {
		if _, err := dateutils.ParseDateString(e.Date); err != nil {
			return &parsererror.ParseError{
				Source: source, Line: line, Field: "date", Value: e.Date, Err: err,
			}
		}
	}
	return nil
}

// IsValidFilePermissions rejects modes that grant any access to other users.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
