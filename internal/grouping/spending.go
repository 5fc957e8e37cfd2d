package grouping

import (
	"sort"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/models"
)

// GetTopSpenders returns the limit largest expenses, highest first, with
// their share of total spending across all expenses.
func GetTopSpenders(expenses []models.Expense, limit int) []models.RankedExpense {
	ranked := make([]models.RankedExpense, 0)
	if limit <= 0 || len(expenses) == 0 {
		return ranked
	}

	sorted := append([]models.Expense(nil), expenses...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Amount > sorted[j].Amount })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	total := models.SumExpenses(expenses)
	for _, e := range sorted {
		ranked = append(ranked, models.RankedExpense{
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
			Category:    e.Category,
			Percentage:  currencyutils.Percentage(e.Amount, total),
		})
	}
	return ranked
}

// AnalyzeSpendingPatterns summarizes the expenses matching each dictionary
// pattern with the built-in dictionary.
func AnalyzeSpendingPatterns(expenses []models.Expense) []models.PatternSummary {
	return builtin.AnalyzeSpendingPatterns(expenses)
}

// AnalyzeSpendingPatterns returns one summary per pattern with at least one
// matching expense, sorted by total amount, highest first. Each pattern is
// evaluated on its own, so an expense may count under several patterns.
func (d *Dictionary) AnalyzeSpendingPatterns(expenses []models.Expense) []models.PatternSummary {
	summaries := make([]models.PatternSummary, 0)
	for _, p := range d.patterns {
		var matched []models.Expense
		for _, e := range expenses {
			if p.Matches(e.Description) {
				matched = append(matched, e)
			}
		}
		if len(matched) == 0 {
			continue
		}
		total := models.SumExpenses(matched)
		summaries = append(summaries, models.PatternSummary{
			Pattern:       p.Key,
			Name:          p.Name,
			TotalAmount:   total,
			Count:         len(matched),
			AverageAmount: models.RoundAmount(total / float64(len(matched))),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount > summaries[j].TotalAmount
	})
	return summaries
}
