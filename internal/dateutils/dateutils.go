// Package dateutils provides the date parsing and span calculations used by
// receipt parsing and expense frequency analysis.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"

	// DaysPerMonth is the average month length used for monthly projections.
	DaysPerMonth = 30.44

	minReceiptYear = 2000
	maxReceiptYear = 2100
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// layouts tried by ParseDateString, most specific first
var layouts = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	DateLayoutISO + "T15:04:05",
	DateLayoutUS,
	DateLayoutEuropean,
	"2006/01/02",
	"01-02-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDateString attempts to parse a date string using the common formats
// found on receipts and in expense exports.
func ParseDateString(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims the input and collapses internal whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// NormalizeDate clamps receipt date components into a plausible range and
// renders them as YYYY-MM-DD. Two-digit years are taken as 20xx, a month
// outside 1-12 becomes 1, a year outside 2000-2100 becomes the year of now,
// and a day that does not exist in the resulting month becomes 1.
func NormalizeDate(year, month, day int, now time.Time) string {
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 {
		month = 1
	}
	if year < minReceiptYear || year > maxReceiptYear {
		year = now.Year()
	}
	// time.Date rolls impossible days into the next month
	if t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC); day < 1 || t.Day() != day {
		day = 1
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Span returns the earliest and latest parseable dates among dateStrs.
// ok is false when none of them parse.
func Span(dateStrs []string) (first, last time.Time, ok bool) {
	for _, s := range dateStrs {
		t, err := ParseDateString(s)
		if err != nil {
			continue
		}
		if !ok || t.Before(first) {
			first = t
		}
		if !ok || t.After(last) {
			last = t
		}
		ok = true
	}
	return first, last, ok
}

// SpanDays returns the number of whole days between the earliest and latest
// parseable dates, zero when fewer than two dates parse.
func SpanDays(dateStrs []string) int {
	first, last, ok := Span(dateStrs)
	if !ok {
		return 0
	}
	return int(last.Sub(first).Hours() / 24)
}

// SpanMonths converts the date span into months of DaysPerMonth days,
// never less than one.
func SpanMonths(dateStrs []string) float64 {
	months := float64(SpanDays(dateStrs)) / DaysPerMonth
	if months < 1 {
		return 1
	}
	return months
}

// AverageGapDays returns the mean interval in days between consecutive
// occurrences, zero when fewer than two dates parse.
func AverageGapDays(dateStrs []string) float64 {
	parsed := 0
	for _, s := range dateStrs {
		if _, err := ParseDateString(s); err == nil {
			parsed++
		}
	}
	if parsed < 2 {
		return 0
	}
	return float64(SpanDays(dateStrs)) / float64(parsed-1)
}
