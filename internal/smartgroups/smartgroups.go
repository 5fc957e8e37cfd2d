// Package smartgroups layers merchant detection and Indian-English text
// normalization on top of the grouping engine, and detects recurring
// payments by amount.
package smartgroups

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/finny-analyzer/internal/currencyutils"
	"fjacquet/finny-analyzer/internal/dateutils"
	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
)

// Insight thresholds.
const (
	HighYearlySpend    = 10000.0
	SmallAverageAmount = 200.0
	FrequentCount      = 4
)

// Frequency labels.
const (
	FrequencyDaily      = "daily"
	FrequencyWeekly     = "weekly"
	FrequencyMonthly    = "monthly"
	FrequencyOccasional = "occasional"
)

// DefaultCurrency is used in insight texts when none is configured.
const DefaultCurrency = "INR"

// Grouper builds merchant-aware expense groups. It is safe for concurrent use.
type Grouper struct {
	engine   *grouping.Engine
	catalog  *Catalog
	currency string
	logger   logging.Logger
}

// NewGrouper creates a smart grouper. Nil arguments select the defaults.
func NewGrouper(engine *grouping.Engine, catalog *Catalog, currency string, logger logging.Logger) *Grouper {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if engine == nil {
		engine = grouping.NewEngine(nil, nil, logger)
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Grouper{engine: engine, catalog: catalog, currency: currency, logger: logger}
}

// CreateSmartExpenseGroups groups expenses with the default grouper.
func CreateSmartExpenseGroups(expenses []models.Expense) []models.SmartExpenseGroup {
	return NewGrouper(nil, nil, "", nil).CreateSmartExpenseGroups(expenses)
}

// CreateSmartExpenseGroups groups expenses sharing a detected merchant, then
// groups the rest by similarity of their normalized descriptions. Groups
// have at least two members and are sorted by total amount, highest first.
func (g *Grouper) CreateSmartExpenseGroups(expenses []models.Expense) []models.SmartExpenseGroup {
	groups := make([]models.SmartExpenseGroup, 0)
	if len(expenses) == 0 {
		return groups
	}

	var order []string
	byMerchant := make(map[string][]int)
	merchants := make(map[string]Merchant)
	for i, e := range expenses {
		m, ok := g.catalog.Detect(e.Description)
		if !ok {
			continue
		}
		if _, seen := byMerchant[m.Name]; !seen {
			order = append(order, m.Name)
			merchants[m.Name] = m
		}
		byMerchant[m.Name] = append(byMerchant[m.Name], i)
	}

	assigned := make([]bool, len(expenses))
	for _, name := range order {
		idx := byMerchant[name]
		if len(idx) < 2 {
			continue
		}
		members := make([]models.Expense, 0, len(idx))
		for _, i := range idx {
			assigned[i] = true
			members = append(members, expenses[i])
		}
		m := merchants[name]
		groups = append(groups, g.newGroup(members, m.Name, m.Name, m.Category, models.GroupReasonMerchant))
	}

	var rest, keys []models.Expense
	for i, e := range expenses {
		if assigned[i] {
			continue
		}
		key := e
		key.Description = NormalizeDescription(e.Description)
		rest = append(rest, e)
		keys = append(keys, key)
	}

	for _, idx := range g.engine.ClusterIndexes(keys) {
		if len(idx) < 2 {
			continue
		}
		members := make([]models.Expense, 0, len(idx))
		normalized := make([]models.Expense, 0, len(idx))
		for _, i := range idx {
			members = append(members, rest[i])
			normalized = append(normalized, keys[i])
		}
		name, pattern := g.engine.GroupName(normalized)
		dict := g.engine.Dictionary()
		if _, ok := dict.Lookup(pattern); !ok {
			// normalization can translate a keyword away ("chai" -> "tea")
			if p, ok := dict.Match(members[0].Description); ok {
				name, pattern = p.Name, p.Key
			}
		}
		category := members[0].Category
		if p, ok := dict.Lookup(pattern); ok {
			category = p.Name
		}
		groups = append(groups, g.newGroup(members, name, "", category, models.GroupReasonSimilarity))
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalAmount > groups[j].TotalAmount })

	g.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(groups)},
		logging.Field{Key: "merchants", Value: len(order)},
	).Debug("Created smart expense groups")
	return groups
}

func (g *Grouper) newGroup(members []models.Expense, name, merchant, category, reason string) models.SmartExpenseGroup {
	stats := ComputeStats(members)
	if strings.TrimSpace(category) == "" {
		category = "Other"
	}
	group := models.SmartExpenseGroup{
		ID:               grouping.GroupID(members),
		GroupName:        name,
		Merchant:         merchant,
		Category:         category,
		Reason:           reason,
		Expenses:         members,
		Count:            stats.Count,
		TotalAmount:      stats.Total,
		AverageAmount:    stats.Average,
		Frequency:        stats.Frequency,
		MonthlyAmount:    stats.Monthly,
		YearlyProjection: stats.Yearly,
	}
	group.Insights = g.groupInsights(group)
	return group
}

func (g *Grouper) groupInsights(group models.SmartExpenseGroup) []string {
	insights := make([]string, 0, 3)
	if group.YearlyProjection > HighYearlySpend {
		insights = append(insights, fmt.Sprintf("You are on track to spend %s a year on %s. Consider setting a monthly limit.",
			currencyutils.FormatFloat(group.YearlyProjection, g.currency), group.GroupName))
	}
	if group.AverageAmount < SmallAverageAmount && group.Count > FrequentCount {
		insights = append(insights, fmt.Sprintf("Small expenses add up: %d purchases averaging %s.",
			group.Count, currencyutils.FormatFloat(group.AverageAmount, g.currency)))
	}
	if group.Frequency != FrequencyOccasional {
		insights = append(insights, fmt.Sprintf("This is a %s expense of about %s per month.",
			group.Frequency, currencyutils.FormatFloat(group.MonthlyAmount, g.currency)))
	}
	return insights
}

// Stats are the spending statistics of a set of expenses.
type Stats struct {
	Count     int
	Total     float64
	Average   float64
	Monthly   float64
	Yearly    float64
	Frequency string
}

// ComputeStats derives totals and projections. The observed period is the
// date span in months of 30.44 days, never less than one.
func ComputeStats(expenses []models.Expense) Stats {
	s := Stats{Count: len(expenses), Frequency: FrequencyOccasional}
	if s.Count == 0 {
		return s
	}

	dates := make([]string, 0, len(expenses))
	for _, e := range expenses {
		dates = append(dates, e.Date)
	}

	s.Total = models.SumExpenses(expenses)
	s.Average = models.RoundAmount(s.Total / float64(s.Count))
	s.Monthly = models.RoundAmount(s.Total / dateutils.SpanMonths(dates))
	s.Yearly = models.RoundAmount(s.Monthly * 12)
	s.Frequency = Frequency(dates)
	return s
}

// Frequency labels the average interval between dates. Fewer than two
// parseable dates are occasional.
func Frequency(dates []string) string {
	parsed := 0
	for _, d := range dates {
		if _, err := dateutils.ParseDateString(d); err == nil {
			parsed++
		}
	}
	if parsed < 2 {
		return FrequencyOccasional
	}

	switch gap := dateutils.AverageGapDays(dates); {
	case gap <= 2:
		return FrequencyDaily
	case gap <= 10:
		return FrequencyWeekly
	case gap <= 45:
		return FrequencyMonthly
	default:
		return FrequencyOccasional
	}
}
