package insights

import (
	"fmt"
	"testing"

	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(id, name, pattern string, expenses ...models.Expense) models.ExpenseGroup {
	top := expenses[0]
	for _, e := range expenses {
		if e.Amount > top.Amount {
			top = e
		}
	}
	return models.ExpenseGroup{
		ID:          id,
		GroupName:   name,
		Pattern:     pattern,
		Expenses:    expenses,
		TotalAmount: models.SumExpenses(expenses),
		TopExpense:  models.TopExpense{Description: top.Description, Amount: top.Amount},
	}
}

// two dinners in one month: 72000 a year
func diningGroup() models.ExpenseGroup {
	return group("dining", "Food & Dining", grouping.PatternFood,
		models.Expense{ID: "1", Description: "Restaurant dinner", Amount: 3000, Date: "2024-01-05"},
		models.Expense{ID: "2", Description: "Restaurant lunch", Amount: 3000, Date: "2024-01-20"},
	)
}

// five cups of chai in ten days: 3000 a year
func chaiGroup() models.ExpenseGroup {
	var expenses []models.Expense
	for i := 0; i < 5; i++ {
		expenses = append(expenses, models.Expense{
			ID:          fmt.Sprint(i),
			Description: "Chai",
			Amount:      50,
			Date:        fmt.Sprintf("2024-02-%02d", i*2+1),
		})
	}
	return group("chai", "Chai", grouping.PatternFood, expenses...)
}

// necessary spending: 28800 a year
func electricityGroup() models.ExpenseGroup {
	return group("power", "Utilities & Bills", grouping.PatternUtilities,
		models.Expense{ID: "1", Description: "Electricity bill", Amount: 1200, Date: "2024-03-01"},
		models.Expense{ID: "2", Description: "Electricity bill", Amount: 1200, Date: "2024-03-15"},
	)
}

func newTestGenerator() (*Generator, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return NewGenerator(nil, "INR", logger), logger
}

func TestGenerateSavingsInsights_Warning(t *testing.T) {
	g, logger := newTestGenerator()
	insights := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{diningGroup()}})

	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, "dining", in.GroupID)
	assert.Equal(t, models.InsightWarning, in.Kind)
	assert.Equal(t, "High spending on Food & Dining", in.Title)
	assert.Contains(t, in.Description, "₹72000.00")
	assert.Equal(t, models.DifficultyHard, in.Difficulty)
	assert.Equal(t, "6 months", in.Timeframe)
	assert.Equal(t, 14400.0, in.PotentialSavings)
	require.Len(t, in.ActionSteps, 3)
	assert.Contains(t, in.ActionSteps[0], "₹4800.00")
	assert.Contains(t, in.ActionSteps[1], "Restaurant dinner")
	assert.True(t, logger.HasEntry("DEBUG", "Generated savings insights"))
}

func TestGenerateSavingsInsights_EasyWin(t *testing.T) {
	g, _ := newTestGenerator()
	insights := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{chaiGroup()}})

	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, models.InsightEasyWin, in.Kind)
	assert.Equal(t, models.DifficultyEasy, in.Difficulty)
	assert.Equal(t, "1 month", in.Timeframe)
	assert.Equal(t, 900.0, in.PotentialSavings)
	assert.Contains(t, in.Description, "5 small purchases averaging ₹50.00")
}

func TestGenerateSavingsInsights_EasyWinAverageBoundary(t *testing.T) {
	snacks := func(amount float64) models.ExpenseGroup {
		var expenses []models.Expense
		for i := 0; i < 5; i++ {
			expenses = append(expenses, models.Expense{
				ID:          fmt.Sprint(i),
				Description: "Snacks",
				Amount:      amount,
				Date:        fmt.Sprintf("2024-04-%02d", i*7+1),
			})
		}
		return group("snacks", "Snacks", grouping.PatternFood, expenses...)
	}
	hasEasyWin := func(insights []models.SavingsInsight) bool {
		for _, in := range insights {
			if in.Kind == models.InsightEasyWin {
				return true
			}
		}
		return false
	}

	g, _ := newTestGenerator()
	atLimit := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{snacks(EasyWinMaxAverage)}})
	assert.True(t, hasEasyWin(atLimit))

	above := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{snacks(EasyWinMaxAverage + 0.01)}})
	assert.False(t, hasEasyWin(above))
}

func TestGenerateSavingsInsights_SortedBySavings(t *testing.T) {
	g, _ := newTestGenerator()
	insights := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{
		chaiGroup(), electricityGroup(), diningGroup(),
	}})

	require.Len(t, insights, 3)
	assert.Equal(t, "dining", insights[0].GroupID)
	assert.Equal(t, "power", insights[1].GroupID)
	assert.Equal(t, "chai", insights[2].GroupID)
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].PotentialSavings, insights[i].PotentialSavings)
	}
}

func TestGenerateSavingsInsights_Empty(t *testing.T) {
	insights := GenerateSavingsInsights(models.GroupingResult{})
	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestGenerateSavingsInsights_MediumDifficulty(t *testing.T) {
	g, _ := newTestGenerator()
	// 1000 in one month: 12000 a year
	insights := g.GenerateSavingsInsights(models.GroupingResult{Groups: []models.ExpenseGroup{
		group("movies", "Entertainment & Leisure", grouping.PatternEntertainment,
			models.Expense{Description: "Movie tickets", Amount: 500, Date: "2024-01-01"},
			models.Expense{Description: "Movie tickets", Amount: 500, Date: "2024-01-10"},
		),
	}})

	require.Len(t, insights, 1)
	assert.Equal(t, models.DifficultyMedium, insights[0].Difficulty)
	assert.Equal(t, "3 months", insights[0].Timeframe)
	assert.Equal(t, 2400.0, insights[0].PotentialSavings)
}

func TestDetectWastage(t *testing.T) {
	g, _ := newTestGenerator()
	alerts := g.DetectWastage(models.GroupingResult{Groups: []models.ExpenseGroup{
		chaiGroup(), electricityGroup(), diningGroup(),
	}})

	require.Len(t, alerts, 2)

	assert.Equal(t, "dining", alerts[0].GroupID)
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, 2, alerts[0].Occurrences)
	assert.Equal(t, 6000.0, alerts[0].MonthlyCost)
	assert.Equal(t, 72000.0, alerts[0].YearlyProjection)
	assert.Equal(t, "Food & Dining: 2 expenses projected at ₹72000.00 per year", alerts[0].Message)

	assert.Equal(t, "chai", alerts[1].GroupID)
	assert.Equal(t, models.SeverityLow, alerts[1].Severity)
}

func TestDetectWastage_PatternFromTopExpense(t *testing.T) {
	g, _ := newTestGenerator()
	unnamed := group("shop", "Misc", "",
		models.Expense{Description: "Amazon order", Amount: 4000, Date: "2024-01-01"},
		models.Expense{Description: "Amazon order", Amount: 4000, Date: "2024-01-15"},
	)

	alerts := g.DetectWastage(models.GroupingResult{Groups: []models.ExpenseGroup{unnamed}})
	require.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity)
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		yearly float64
		want   string
	}{
		{0, models.SeverityLow},
		{9999.99, models.SeverityLow},
		{10000, models.SeverityMedium},
		{19999.99, models.SeverityMedium},
		{20000, models.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.yearly), func(t *testing.T) {
			assert.Equal(t, tt.want, Severity(tt.yearly))
		})
	}
}

func TestGenerate(t *testing.T) {
	g, _ := newTestGenerator()
	report := g.Generate(models.GroupingResult{Groups: []models.ExpenseGroup{diningGroup()}})
	assert.Len(t, report.Insights, 1)
	assert.Len(t, report.Alerts, 1)

	report = g.Generate(models.GroupingResult{})
	assert.NotNil(t, report.Insights)
	assert.NotNil(t, report.Alerts)
}

func TestDetectWastage_DefaultGenerator(t *testing.T) {
	alerts := DetectWastage(models.GroupingResult{Groups: []models.ExpenseGroup{chaiGroup()}})
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Message, "₹")
}
