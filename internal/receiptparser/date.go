package receiptparser

import (
	"regexp"
	"strconv"
	"time"

	"fjacquet/finny-analyzer/internal/dateutils"
)

const dateScanLines = 20

var dateIndicatorRe = regexp.MustCompile(`(?i)\b(date|purchase|transaction)\b`)

type dateOrder int

const (
	yearMonthDay dateOrder = iota
	monthDayYear
)

type datePattern struct {
	re    *regexp.Regexp
	order dateOrder
}

// tried in order; the generic shape also accepts dots and dashes
var datePatterns = []datePattern{
	{regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`), yearMonthDay},
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`), monthDayYear},
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2})\b`), monthDayYear},
	{regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})\b`), monthDayYear},
}

// ExtractDate finds the transaction date, returned as YYYY-MM-DD. Lines with
// a date keyword are searched first, then the top of the receipt. When no
// date is found the date of now is returned.
func ExtractDate(lines []string, now time.Time) string {
	for _, line := range lines {
		if !dateIndicatorRe.MatchString(line) {
			continue
		}
		if date, ok := matchDate(line, now); ok {
			return date
		}
	}

	head := lines
	if len(head) > dateScanLines {
		head = head[:dateScanLines]
	}
	for _, line := range head {
		if date, ok := matchDate(line, now); ok {
			return date
		}
	}
	return dateutils.ToISODate(now)
}

func matchDate(line string, now time.Time) (string, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		c, _ := strconv.Atoi(m[3])

		if p.order == yearMonthDay {
			return dateutils.NormalizeDate(a, b, c, now), true
		}
		month, day := a, b
		// 15/03/2024 can only be day first
		if month > 12 && day <= 12 {
			month, day = day, month
		}
		return dateutils.NormalizeDate(c, month, day, now), true
	}
	return "", false
}
