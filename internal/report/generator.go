// Package report renders analyzer results as JSON, YAML, CSV or a text table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/finny-analyzer/internal/common"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatText = "text"
)

// ReportGenerator renders analyzer results in various formats.
type ReportGenerator struct {
	logger   logging.Logger
	currency string
}

// NewReportGenerator creates a new instance of ReportGenerator. Amounts in
// text tables are formatted with currency.
func NewReportGenerator(logger logging.Logger, currency string) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{
		logger:   logger.WithField(logging.FieldComponent, "ReportGenerator"),
		currency: currency,
	}
}

// Render writes value to w in the given format. CSV and text support the
// result types of the analyzers only; JSON and YAML accept any value.
func (g *ReportGenerator) Render(w io.Writer, value interface{}, format string) error {
	var err error
	switch strings.ToLower(format) {
	case FormatJSON:
		err = g.renderJSON(w, value)
	case FormatYAML:
		err = g.renderYAML(w, value)
	case FormatCSV:
		err = g.renderCSV(w, value)
	case FormatText:
		err = g.renderText(w, value)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to render report",
			logging.Field{Key: logging.FieldFormat, Value: format})
		return err
	}
	return nil
}

func (g *ReportGenerator) renderJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return nil
}

func (g *ReportGenerator) renderYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML report: %w", err)
	}
	return nil
}

func (g *ReportGenerator) renderCSV(w io.Writer, value interface{}) error {
	switch v := value.(type) {
	case models.ParsedReceipt:
		return common.WriteCSV(w, receiptRows(v))
	case []models.ParsedReceipt:
		var rows []receiptRow
		for _, r := range v {
			rows = append(rows, receiptRows(r)...)
		}
		return common.WriteCSV(w, rows)
	case models.GroupingResult:
		return common.WriteCSV(w, v.Rows())
	case []models.RankedExpense:
		return common.WriteCSV(w, v)
	case []models.PatternSummary:
		return common.WriteCSV(w, v)
	case []models.SmartExpenseGroup:
		return common.WriteCSV(w, smartGroupRows(v))
	case []models.RecurringPayment:
		return common.WriteCSV(w, v)
	case models.InsightReport:
		return common.WriteCSV(w, insightRows(v))
	default:
		return fmt.Errorf("CSV output is not supported for %T", value)
	}
}

// receiptRow is a receipt item with the receipt header repeated.
type receiptRow struct {
	Merchant string `csv:"merchant"`
	Date     string `csv:"date"`
	Name     string `csv:"name"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
}

func receiptRows(r models.ParsedReceipt) []receiptRow {
	rows := make([]receiptRow, 0, len(r.Items))
	for _, item := range r.Items {
		date := item.Date
		if date == "" {
			date = r.Date
		}
		rows = append(rows, receiptRow{
			Merchant: r.Merchant,
			Date:     date,
			Name:     item.Name,
			Amount:   item.Amount,
			Category: item.Category,
		})
	}
	return rows
}

type smartGroupRow struct {
	GroupID          string  `csv:"group_id"`
	GroupName        string  `csv:"group_name"`
	Merchant         string  `csv:"merchant"`
	Category         string  `csv:"category"`
	Reason           string  `csv:"reason"`
	Count            int     `csv:"count"`
	TotalAmount      float64 `csv:"total_amount"`
	AverageAmount    float64 `csv:"average_amount"`
	Frequency        string  `csv:"frequency"`
	YearlyProjection float64 `csv:"yearly_projection"`
	Insights         string  `csv:"insights"`
}

func smartGroupRows(groups []models.SmartExpenseGroup) []smartGroupRow {
	rows := make([]smartGroupRow, 0, len(groups))
	for _, sg := range groups {
		rows = append(rows, smartGroupRow{
			GroupID:          sg.ID,
			GroupName:        sg.GroupName,
			Merchant:         sg.Merchant,
			Category:         sg.Category,
			Reason:           sg.Reason,
			Count:            sg.Count,
			TotalAmount:      sg.TotalAmount,
			AverageAmount:    sg.AverageAmount,
			Frequency:        sg.Frequency,
			YearlyProjection: sg.YearlyProjection,
			Insights:         strings.Join(sg.Insights, " | "),
		})
	}
	return rows
}

type insightRow struct {
	Kind             string  `csv:"kind"`
	GroupID          string  `csv:"group_id"`
	Title            string  `csv:"title"`
	Description      string  `csv:"description"`
	Severity         string  `csv:"severity"`
	Difficulty       string  `csv:"difficulty"`
	Timeframe        string  `csv:"timeframe"`
	PotentialSavings float64 `csv:"potential_savings"`
	YearlyProjection float64 `csv:"yearly_projection"`
}

func insightRows(r models.InsightReport) []insightRow {
	rows := make([]insightRow, 0, len(r.Insights)+len(r.Alerts))
	for _, in := range r.Insights {
		rows = append(rows, insightRow{
			Kind:             in.Kind,
			GroupID:          in.GroupID,
			Title:            in.Title,
			Description:      in.Description,
			Difficulty:       in.Difficulty,
			Timeframe:        in.Timeframe,
			PotentialSavings: in.PotentialSavings,
		})
	}
	for _, a := range r.Alerts {
		rows = append(rows, insightRow{
			Kind:             "wastage",
			GroupID:          a.GroupID,
			Title:            a.GroupName,
			Description:      a.Message,
			Severity:         a.Severity,
			YearlyProjection: a.YearlyProjection,
		})
	}
	return rows
}
