// Package receiptparser turns noisy OCR receipt text into a structured
// receipt: merchant, date, total and a deduplicated list of line items.
// Parsing never fails; every stage falls back to a usable default.
package receiptparser

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
)

// Parser extracts structured receipts from OCR text. A Parser holds no
// per-call state and is safe for concurrent use.
type Parser struct {
	logger logging.Logger
	now    func() time.Time
	steps  []cascadeStep
}

// NewParser creates a receipt parser using the wall clock.
func NewParser(logger logging.Logger) *Parser {
	return NewParserWithClock(logger, time.Now)
}

// NewParserWithClock creates a receipt parser whose default date comes from now.
func NewParserWithClock(logger logging.Logger, now func() time.Time) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if now == nil {
		now = time.Now
	}
	return &Parser{
		logger: logger,
		now:    now,
		steps:  defaultCascade(),
	}
}

// ParseReceiptText parses text with a default parser.
func ParseReceiptText(text string) models.ParsedReceipt {
	return NewParser(logging.GetLogger()).Parse(text)
}

// ParseReader reads all OCR text from r and parses it. Only the read can fail.
func (p *Parser) ParseReader(r io.Reader) (models.ParsedReceipt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ParsedReceipt{}, fmt.Errorf("failed to read receipt text: %w", err)
	}
	return p.Parse(string(data)), nil
}

// Parse extracts merchant, date, items and total from raw OCR text.
func (p *Parser) Parse(text string) models.ParsedReceipt {
	now := p.now()
	lines := NormalizeLines(text)

	if len(lines) == 0 {
		p.logger.Debug("Empty receipt text, returning placeholder receipt")
		date := now.Format("2006-01-02")
		return models.ParsedReceipt{
			Merchant: models.UnknownMerchant,
			Date:     date,
			Total:    models.ZeroAmount,
			Items: []models.ReceiptItem{{
				Name:     models.EmptyReceiptItemName,
				Amount:   models.ZeroAmount,
				Category: models.CategoryShopping,
				Date:     date,
			}},
		}
	}

	merchant := ExtractMerchant(lines)
	date := ExtractDate(lines, now)
	items := p.extractItems(lines)
	total := ExtractTotal(lines, items)

	if len(items) == 0 {
		amount := total
		if !currencyutils.IsPositive(models.ParseAmount(total)) {
			amount = models.DefaultFallbackTotal
			total = models.DefaultFallbackTotal
		}
		p.logger.WithFields(
			logging.Field{Key: logging.FieldMerchant, Value: merchant},
			logging.Field{Key: logging.FieldTotal, Value: amount},
		).Debug("No items extracted, synthesizing fallback item")
		items = []models.ReceiptItem{{Name: models.FallbackItemName, Amount: amount}}
	}

	for i := range items {
		items[i].Category = GuessCategory(items[i].Name)
		items[i].Date = date
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: merchant},
		logging.Field{Key: logging.FieldCount, Value: len(items)},
		logging.Field{Key: logging.FieldTotal, Value: total},
	).Debug("Parsed receipt")

	return models.ParsedReceipt{
		Merchant: merchant,
		Date:     date,
		Total:    total,
		Items:    items,
	}
}

// NormalizeLines splits text into trimmed, non-empty lines.
func NormalizeLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
