// Package insights derives savings recommendations and wastage alerts from
// grouped expenses using fixed monetary thresholds.
package insights

import (
	"fmt"
	"sort"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/smartgroups"
)

// Thresholds and savings rates.
const (
	WarningYearlySpend   = 5000.0
	HardYearlySpend      = 20000.0
	EasyWinMinCount      = 4
	EasyWinMaxAverage    = 300.0
	WarningSavingsRate   = 0.2
	EasyWinSavingsRate   = 0.3
	HighSeveritySpend    = 20000.0
	MediumSeveritySpend  = 10000.0
	BudgetReductionRatio = 0.8
)

// patterns whose spending is usually discretionary
var lowNecessityPatterns = map[string]bool{
	grouping.PatternFood:          true,
	grouping.PatternEntertainment: true,
	grouping.PatternShopping:      true,
}

// Generator turns grouping results into insights. It is safe for concurrent use.
type Generator struct {
	dict     *grouping.Dictionary
	currency string
	logger   logging.Logger
}

// NewGenerator creates an insight generator. Nil arguments select the
// built-in dictionary, INR and the default logger.
func NewGenerator(dict *grouping.Dictionary, currency string, logger logging.Logger) *Generator {
	if dict == nil {
		dict = grouping.DefaultDictionary()
	}
	if currency == "" {
		currency = smartgroups.DefaultCurrency
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{dict: dict, currency: currency, logger: logger}
}

// GenerateSavingsInsights returns insights from result with the default generator.
func GenerateSavingsInsights(result models.GroupingResult) []models.SavingsInsight {
	return NewGenerator(nil, "", nil).GenerateSavingsInsights(result)
}

// DetectWastage returns wastage alerts from result with the default generator.
func DetectWastage(result models.GroupingResult) []models.WastageAlert {
	return NewGenerator(nil, "", nil).DetectWastage(result)
}

// Generate bundles savings insights and wastage alerts.
func (g *Generator) Generate(result models.GroupingResult) models.InsightReport {
	return models.InsightReport{
		Insights: g.GenerateSavingsInsights(result),
		Alerts:   g.DetectWastage(result),
	}
}

// GenerateSavingsInsights emits a warning for every group projected above
// 5000 a year and an easy win for small, frequent, discretionary groups.
// Insights are sorted by potential savings, highest first.
func (g *Generator) GenerateSavingsInsights(result models.GroupingResult) []models.SavingsInsight {
	insights := make([]models.SavingsInsight, 0)
	for _, group := range result.Groups {
		stats := smartgroups.ComputeStats(group.Expenses)

		if stats.Yearly > WarningYearlySpend {
			insights = append(insights, g.warning(group, stats))
		}
		if stats.Count > EasyWinMinCount && stats.Average <= EasyWinMaxAverage && g.isLowNecessity(group) {
			insights = append(insights, g.easyWin(group, stats))
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].PotentialSavings > insights[j].PotentialSavings
	})

	g.logger.WithField(logging.FieldCount, len(insights)).Debug("Generated savings insights")
	return insights
}

// DetectWastage flags discretionary groups that are expensive over a year
// or made of many small purchases. Alerts are sorted by yearly projection,
// highest first.
func (g *Generator) DetectWastage(result models.GroupingResult) []models.WastageAlert {
	alerts := make([]models.WastageAlert, 0)
	for _, group := range result.Groups {
		if !g.isLowNecessity(group) {
			continue
		}
		stats := smartgroups.ComputeStats(group.Expenses)
		frequentSmall := stats.Count > EasyWinMinCount && stats.Average <= EasyWinMaxAverage
		if stats.Yearly <= WarningYearlySpend && !frequentSmall {
			continue
		}
		alerts = append(alerts, models.WastageAlert{
			GroupID:   group.ID,
			GroupName: group.GroupName,
			Severity:  Severity(stats.Yearly),
			Message: fmt.Sprintf("%s: %d expenses projected at %s per year",
				group.GroupName, stats.Count, g.money(stats.Yearly)),
			Occurrences:      stats.Count,
			MonthlyCost:      stats.Monthly,
			YearlyProjection: stats.Yearly,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].YearlyProjection > alerts[j].YearlyProjection
	})
	return alerts
}

// Severity grades a yearly projection: high from 20000, medium from 10000.
func Severity(yearly float64) string {
	switch {
	case yearly >= HighSeveritySpend:
		return models.SeverityHigh
	case yearly >= MediumSeveritySpend:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func (g *Generator) warning(group models.ExpenseGroup, stats smartgroups.Stats) models.SavingsInsight {
	difficulty, timeframe := models.DifficultyMedium, "3 months"
	if stats.Yearly > HardYearlySpend {
		difficulty, timeframe = models.DifficultyHard, "6 months"
	}
	return models.SavingsInsight{
		GroupID: group.ID,
		Kind:    models.InsightWarning,
		Title:   fmt.Sprintf("High spending on %s", group.GroupName),
		Description: fmt.Sprintf("You are on track to spend %s this year on %s (%s per month).",
			g.money(stats.Yearly), group.GroupName, g.money(stats.Monthly)),
		ActionSteps: []string{
			fmt.Sprintf("Set a monthly budget of %s for %s", g.money(stats.Monthly*BudgetReductionRatio), group.GroupName),
			fmt.Sprintf("Review your largest expense: %s (%s)", group.TopExpense.Description, g.money(group.TopExpense.Amount)),
			"Track this category every week",
		},
		Difficulty:       difficulty,
		Timeframe:        timeframe,
		PotentialSavings: models.RoundAmount(stats.Yearly * WarningSavingsRate),
	}
}

func (g *Generator) easyWin(group models.ExpenseGroup, stats smartgroups.Stats) models.SavingsInsight {
	return models.SavingsInsight{
		GroupID: group.ID,
		Kind:    models.InsightEasyWin,
		Title:   fmt.Sprintf("Easy win: cut back on %s", group.GroupName),
		Description: fmt.Sprintf("%d small purchases averaging %s add up to %s a year.",
			stats.Count, g.money(stats.Average), g.money(stats.Yearly)),
		ActionSteps: []string{
			"Halve the number of these purchases",
			fmt.Sprintf("Set a weekly cap of %s", g.money(stats.Monthly/4)),
			"Look for a cheaper alternative or a bulk option",
		},
		Difficulty:       models.DifficultyEasy,
		Timeframe:        "1 month",
		PotentialSavings: models.RoundAmount(stats.Yearly * EasyWinSavingsRate),
	}
}

func (g *Generator) isLowNecessity(group models.ExpenseGroup) bool {
	if lowNecessityPatterns[group.Pattern] {
		return true
	}
	if p, ok := g.dict.Match(group.TopExpense.Description); ok {
		return lowNecessityPatterns[p.Key]
	}
	return false
}

func (g *Generator) money(amount float64) string {
	return currencyutils.FormatFloat(models.RoundAmount(amount), g.currency)
}
