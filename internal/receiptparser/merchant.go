package receiptparser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/textutils"
)

const (
	merchantScanLines = 10
	minMerchantLength = 3
	maxMerchantLength = 40
	maxMerchantRatio  = 0.3
)

var (
	merchantSkipRe  = regexp.MustCompile(`(?i)(receipt|invoice|tel\s*[:.]|\btel\b|phone|fax|www\.|https?:|\.com\b|thank\s*you|cashier|\bdate\b|\btime\b|\bsub\s*-?\s*total\b|\btotal\b|\border\s*#|\btable\b|\bgst\s*in\b)`)
	dateLikeRe      = regexp.MustCompile(`\d{1,4}[/.-]\d{1,2}[/.-]\d{2,4}|\d{1,2}:\d{2}`)
	welcomeRe       = regexp.MustCompile(`(?i)^welcome\s+to\s+(?:the\s+)?`)
	merchantLabelRe = regexp.MustCompile(`(?i)^(?:store|shop|merchant|restaurant|outlet)(?:\s+name)?\s*[:\-]\s*`)
	storeNumberRe   = regexp.MustCompile(`(?i)\s*(?:store|branch|outlet)?\s*(?:#|\bno\.?|\bnr\.?)\s*\d+\s*$`)
	trailingNumRe   = regexp.MustCompile(`\s+\d+$`)
	vowelRe         = regexp.MustCompile(`(?i)[aeiouy]`)
)

// ExtractMerchant picks the store name from the first lines of a receipt.
// Concise, mostly alphabetic lines are preferred; when none qualifies the
// first usable line is taken, and "Store Receipt" is the final fallback.
func ExtractMerchant(lines []string) string {
	head := lines
	if len(head) > merchantScanLines {
		head = head[:merchantScanLines]
	}

	var relaxed []string
	for _, line := range head {
		if skipMerchantLine(line) {
			continue
		}
		if isStrictMerchantCandidate(line) {
			if name := cleanMerchant(line); name != "" {
				return name
			}
			continue
		}
		relaxed = append(relaxed, line)
	}

	for _, line := range relaxed {
		if textutils.CountLetters(line) < 2 {
			continue
		}
		if name := cleanMerchant(line); name != "" {
			return name
		}
	}
	return models.DefaultMerchant
}

func skipMerchantLine(line string) bool {
	return merchantSkipRe.MatchString(line) ||
		separatorRe.MatchString(line) ||
		pureNumericRe.MatchString(line) ||
		dateLikeRe.MatchString(line) ||
		len(priceTokens(line)) > 0
}

func isStrictMerchantCandidate(line string) bool {
	n := utf8.RuneCountInString(line)
	if n < minMerchantLength || n > maxMerchantLength {
		return false
	}
	digits, special := textutils.CharacterRatios(line)
	if digits >= maxMerchantRatio || special >= maxMerchantRatio {
		return false
	}
	return !isCapsNoise(line)
}

// isCapsNoise catches OCR garbage such as "XKQZT" or "AB".
func isCapsNoise(line string) bool {
	if !textutils.IsAllCaps(line) {
		return false
	}
	return textutils.CountLetters(line) < 3 || !vowelRe.MatchString(line)
}

func cleanMerchant(line string) string {
	name := welcomeRe.ReplaceAllString(line, "")
	name = merchantLabelRe.ReplaceAllString(name, "")
	name = storeNumberRe.ReplaceAllString(name, "")
	name = trailingNumRe.ReplaceAllString(name, "")
	name = strings.Trim(name, " .,:;-_*#|!")
	name = textutils.CollapseWhitespace(name)
	if textutils.CountLetters(name) < 2 {
		return ""
	}
	if textutils.IsAllCaps(line) {
		name = textutils.TitleCase(name)
	}
	return name
}
