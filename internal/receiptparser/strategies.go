package receiptparser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/textutils"

	"github.com/shopspring/decimal"
)

// ItemStrategy extracts candidate line items from normalized receipt lines.
type ItemStrategy interface {
	Name() string
	Extract(lines []string) []models.ReceiptItem
}

// cascadeStep runs its strategy only while fewer than runBelow unique items
// have been found.
type cascadeStep struct {
	strategy ItemStrategy
	runBelow int
}

func (s cascadeStep) enough(items []models.ReceiptItem) bool {
	return len(items) >= s.runBelow
}

func defaultCascade() []cascadeStep {
	return []cascadeStep{
		{strategy: SupermarketStrategy{}, runBelow: math.MaxInt},
		{strategy: StandardStrategy{}, runBelow: 3},
		{strategy: AggressiveStrategy{}, runBelow: 2},
		{strategy: NumberStrategy{}, runBelow: 1},
	}
}

// extractItems runs the strategy cascade over the item section and returns
// deduplicated items sorted by amount, highest first.
func (p *Parser) extractItems(lines []string) []models.ReceiptItem {
	section := itemSection(lines)

	var items []models.ReceiptItem
	for _, step := range p.steps {
		if step.enough(items) {
			break
		}
		found := step.strategy.Extract(section)
		if len(found) == 0 {
			continue
		}
		p.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: step.strategy.Name()},
			logging.Field{Key: logging.FieldCount, Value: len(found)},
		).Debug("Strategy extracted items")
		items = DeduplicateItems(append(items, found...))
	}
	return items
}

var (
	supermarketRe = regexp.MustCompile(`(?i)\b(walmart|target|costco|kroger|safeway|aldi|lidl|tesco|sainsbury|asda|carrefour|whole\s+foods|trader\s+joe|publix|albertsons|migros|coop|denner|spar|rewe|edeka|dmart|big\s+bazaar|reliance\s+(?:fresh|smart)|more\s+supermarket|supermarket|hypermarket)\b`)

	qtyAtRe      = regexp.MustCompile(`^(\d+)\s*[xX]\s+(.+?)\s+@\s*[$€£₹]?(\d+[.,]\d{2})\s+[$€£₹]?(\d+[.,]\d{2})\s*[A-Z]?$`)
	codeNameRe   = regexp.MustCompile(`^(\d{4,14})\s+(.+?)\s+[$€£₹]?(\d+[.,]\d{2})\s*[A-Z]?$`)
	wideSpacedRe = regexp.MustCompile(`^(.+?)\s{2,}[$€£₹]?(\d+[.,]\d{2})\s*[A-Z]?$`)

	dollarSuffixRe = regexp.MustCompile(`^(.+?)\s+\$\s?(\d+(?:,\d{3})*\.\d{2})\s*[A-Z]?$`)
	euroSuffixRe   = regexp.MustCompile(`^(.+?)\s+(\d+[.,]\d{2})\s?€$`)
	qtyPrefixRe    = regexp.MustCompile(`^(\d+)\s*[xX]\s+([^@]+?)\s+[$€£₹]?(\d+[.,]\d{2})$`)
	qtySuffixRe    = regexp.MustCompile(`^(.+?)\s+(\d+)\s*[xX]\s*[$€£₹]?(\d+[.,]\d{2})$`)
	weightRe       = regexp.MustCompile(`(?i)^(.+?)\s+\d+(?:[.,]\d+)?\s*(?:kg|g|lbs?|oz)\b.*?[$€£₹]?(\d+[.,]\d{2})\s*$`)
	spacedRe       = regexp.MustCompile(`^(.+?)(?:\s{2,}|\s*\.{2,}\s*)[$€£₹]?(\d+[.,]\d{2})\s*[A-Z]?$`)

	trailingCentsRe = regexp.MustCompile(`^(.*\pL.*?)\s+(\d{2,5})$`)
)

var minCentsAmount = decimal.RequireFromString("0.50")

// SupermarketStrategy handles the column layouts of large grocery chains. It
// only runs when the receipt names a known chain.
type SupermarketStrategy struct{}

// Name returns the strategy name.
func (SupermarketStrategy) Name() string { return "supermarket" }

// Extract implements ItemStrategy.
func (SupermarketStrategy) Extract(lines []string) []models.ReceiptItem {
	if !supermarketRe.MatchString(strings.Join(lines, "\n")) {
		return nil
	}

	var items []models.ReceiptItem
	for _, line := range lines {
		if IsNonItemLine(line) {
			continue
		}
		if m := qtyAtRe.FindStringSubmatch(line); m != nil {
			items = appendQuantityItem(items, m[2], m[1], m[4])
			continue
		}
		if m := codeNameRe.FindStringSubmatch(line); m != nil {
			items = appendItem(items, m[2], m[3])
			continue
		}
		if m := wideSpacedRe.FindStringSubmatch(line); m != nil {
			items = appendItem(items, m[1], m[2])
		}
	}
	return items
}

// StandardStrategy matches the common "name ... price" shapes and names
// whose price sits alone on the following line.
type StandardStrategy struct{}

// Name returns the strategy name.
func (StandardStrategy) Name() string { return "standard" }

// Extract implements ItemStrategy.
func (StandardStrategy) Extract(lines []string) []models.ReceiptItem {
	var items []models.ReceiptItem
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if IsNonItemLine(line) {
			continue
		}

		// "2 x Milk @ 1.10 2.20", named as in the supermarket layout
		if m := qtyAtRe.FindStringSubmatch(line); m != nil {
			items = appendQuantityItem(items, m[2], m[1], m[4])
			continue
		}
		if m := matchFirst(line, dollarSuffixRe, euroSuffixRe); m != nil {
			items = appendItem(items, m[1], m[2])
			continue
		}
		if m := qtyPrefixRe.FindStringSubmatch(line); m != nil {
			items = appendQuantityItem(items, m[2], m[1], m[3])
			continue
		}
		if m := qtySuffixRe.FindStringSubmatch(line); m != nil {
			items = appendUnitPriceItem(items, m[1], m[2], m[3])
			continue
		}
		if m := matchFirst(line, weightRe, spacedRe); m != nil {
			items = appendItem(items, m[1], m[2])
			continue
		}

		// name on this line, price alone on the next
		if i+1 < len(lines) && len(priceTokens(line)) == 0 && textutils.CountLetters(line) >= 2 {
			if amount, ok := lonePrice(lines[i+1]); ok {
				items = appendDecimalItem(items, line, amount)
				i++
			}
		}
	}
	return items
}

// AggressiveStrategy accepts any line holding exactly one price and uses the
// rest of the line as the name.
type AggressiveStrategy struct{}

// Name returns the strategy name.
func (AggressiveStrategy) Name() string { return "aggressive" }

// Extract implements ItemStrategy.
func (AggressiveStrategy) Extract(lines []string) []models.ReceiptItem {
	var items []models.ReceiptItem
	for _, line := range lines {
		if IsNonItemLine(line) {
			continue
		}
		prices := priceTokens(line)
		if len(prices) != 1 {
			continue
		}

		var nameParts []string
		for _, field := range strings.Fields(line) {
			if !priceFieldRe.MatchString(field) {
				nameParts = append(nameParts, field)
			}
		}
		items = appendDecimalItem(items, strings.Join(nameParts, " "), prices[0])
	}
	return items
}

// NumberStrategy reads a trailing bare integer as an amount in cents, e.g.
// "BREAD 349" is 3.49. Amounts under 0.50 are ignored.
type NumberStrategy struct{}

// Name returns the strategy name.
func (NumberStrategy) Name() string { return "number" }

// Extract implements ItemStrategy.
func (NumberStrategy) Extract(lines []string) []models.ReceiptItem {
	var items []models.ReceiptItem
	for _, line := range lines {
		if IsNonItemLine(line) {
			continue
		}
		m := trailingCentsRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cents, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		amount := currencyutils.CentsToAmount(cents)
		if amount.LessThan(minCentsAmount) {
			continue
		}
		items = appendDecimalItem(items, m[1], amount)
	}
	return items
}

func matchFirst(line string, patterns ...*regexp.Regexp) []string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}

func appendItem(items []models.ReceiptItem, rawName, rawPrice string) []models.ReceiptItem {
	amount, ok := parsePrice(rawPrice)
	if !ok {
		return items
	}
	return appendDecimalItem(items, rawName, amount)
}

func appendDecimalItem(items []models.ReceiptItem, rawName string, amount decimal.Decimal) []models.ReceiptItem {
	name := CleanItemName(rawName)
	if name == "" || !currencyutils.IsPositive(amount) {
		return items
	}
	return append(items, models.ReceiptItem{Name: name, Amount: models.FormatAmount(amount)})
}

// appendQuantityItem records a line whose price is already the line total.
func appendQuantityItem(items []models.ReceiptItem, rawName, rawQty, rawTotal string) []models.ReceiptItem {
	amount, ok := parsePrice(rawTotal)
	if !ok {
		return items
	}
	return appendAnnotated(items, rawName, rawQty, amount)
}

// appendUnitPriceItem records a "name qty x unit" line, multiplying out the total.
func appendUnitPriceItem(items []models.ReceiptItem, rawName, rawQty, rawUnit string) []models.ReceiptItem {
	unit, ok := parsePrice(rawUnit)
	if !ok {
		return items
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty < 1 {
		qty = 1
	}
	return appendAnnotated(items, rawName, rawQty, unit.Mul(decimal.NewFromInt(int64(qty))))
}

func appendAnnotated(items []models.ReceiptItem, rawName, rawQty string, amount decimal.Decimal) []models.ReceiptItem {
	name := CleanItemName(rawName)
	if name == "" {
		return items
	}
	if qty, err := strconv.Atoi(rawQty); err == nil && qty > 1 {
		name = fmt.Sprintf("%s (%dx)", name, qty)
	}
	return append(items, models.ReceiptItem{Name: name, Amount: models.FormatAmount(amount)})
}
