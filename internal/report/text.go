package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func (g *ReportGenerator) renderText(w io.Writer, value interface{}) error {
	var out string
	switch v := value.(type) {
	case models.ParsedReceipt:
		out = g.receiptText(v)
	case []models.ParsedReceipt:
		parts := make([]string, 0, len(v))
		for _, r := range v {
			parts = append(parts, g.receiptText(r))
		}
		out = strings.Join(parts, "\n\n")
	case models.GroupingResult:
		out = g.groupingText(v)
	case []models.RankedExpense:
		out = g.rankedText(v)
	case []models.PatternSummary:
		out = g.patternText(v)
	case []models.SmartExpenseGroup:
		out = g.smartGroupText(v)
	case []models.RecurringPayment:
		out = g.recurringText(v)
	case models.InsightReport:
		out = g.insightText(v)
	default:
		return fmt.Errorf("text output is not supported for %T", value)
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

func (g *ReportGenerator) money(amount float64) string {
	return currencyutils.FormatFloat(amount, g.currency)
}

func (g *ReportGenerator) receiptText(r models.ParsedReceipt) string {
	t := newTable("Item", "Category", "Amount")
	for _, item := range r.Items {
		t.Row(item.Name, item.Category, item.Amount)
	}
	header := titleStyle.Render(fmt.Sprintf("%s  %s  total %s", r.Merchant, r.Date, r.Total))
	return header + "\n" + t.String()
}

func (g *ReportGenerator) groupingText(r models.GroupingResult) string {
	t := newTable("Group", "Pattern", "Count", "Total", "Top expense", "Similarity")
	for _, grp := range r.Groups {
		t.Row(grp.GroupName, grp.Pattern, strconv.Itoa(len(grp.Expenses)), g.money(grp.TotalAmount),
			grp.TopExpense.Description, strconv.Itoa(grp.Similarity)+"%")
	}
	footer := fmt.Sprintf("grouped %s in %d groups, ungrouped %s in %d expenses",
		g.money(r.TotalGrouped), len(r.Groups), g.money(r.TotalUngrouped), len(r.Ungrouped))
	return t.String() + "\n" + footer
}

func (g *ReportGenerator) rankedText(ranked []models.RankedExpense) string {
	t := newTable("#", "Description", "Category", "Date", "Amount", "Share")
	for i, r := range ranked {
		t.Row(strconv.Itoa(i+1), r.Description, r.Category, r.Date, g.money(r.Amount),
			strconv.FormatFloat(r.Percentage, 'f', 1, 64)+"%")
	}
	return t.String()
}

func (g *ReportGenerator) patternText(summaries []models.PatternSummary) string {
	t := newTable("Pattern", "Count", "Total", "Average")
	for _, s := range summaries {
		t.Row(s.Name, strconv.Itoa(s.Count), g.money(s.TotalAmount), g.money(s.AverageAmount))
	}
	return t.String()
}

func (g *ReportGenerator) smartGroupText(groups []models.SmartExpenseGroup) string {
	t := newTable("Group", "Reason", "Count", "Total", "Frequency", "Yearly")
	var notes string
	for _, sg := range groups {
		t.Row(sg.GroupName, sg.Reason, strconv.Itoa(sg.Count), g.money(sg.TotalAmount),
			sg.Frequency, g.money(sg.YearlyProjection))
		for _, in := range sg.Insights {
			notes += fmt.Sprintf("\n- %s: %s", sg.GroupName, in)
		}
	}
	return t.String() + notes
}

func (g *ReportGenerator) recurringText(payments []models.RecurringPayment) string {
	t := newTable("Amount", "Occurrences", "Frequency", "Yearly cost", "Descriptions")
	for _, p := range payments {
		t.Row(g.money(p.Bucket), strconv.Itoa(p.Occurrences), p.Frequency, g.money(p.YearlyCost),
			strings.Join(p.Descriptions, ", "))
	}
	return t.String()
}

func (g *ReportGenerator) insightText(r models.InsightReport) string {
	out := ""
	for _, in := range r.Insights {
		out += titleStyle.Render(in.Title) + "\n" + in.Description + "\n"
		for _, step := range in.ActionSteps {
			out += "  * " + step + "\n"
		}
		out += fmt.Sprintf("  difficulty %s, timeframe %s, potential savings %s\n\n",
			in.Difficulty, in.Timeframe, g.money(in.PotentialSavings))
	}
	t := newTable("Group", "Severity", "Occurrences", "Monthly", "Yearly")
	for _, a := range r.Alerts {
		t.Row(a.GroupName, a.Severity, strconv.Itoa(a.Occurrences), g.money(a.MonthlyCost), g.money(a.YearlyProjection))
	}
	return out + t.String()
}
