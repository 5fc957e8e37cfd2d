package smartgroups

import (
	"math"
	"sort"
	"strings"

	"fjacquet/finny-analyzer/internal/dateutils"
	"fjacquet/finny-analyzer/internal/models"
)

// Recurring payment rules.
const (
	BucketSize              = 100.0
	MinRecurringOccurrences = 3
	MaxRecurringVariants    = 2
)

// DetectRecurringPayments buckets expenses by amount rounded to the nearest
// 100 and returns the buckets that look like subscriptions: at least three
// occurrences with at most two distinct descriptions. Results are sorted by
// total amount, highest first. Non-positive buckets are ignored.
func DetectRecurringPayments(expenses []models.Expense) []models.RecurringPayment {
	var order []float64
	buckets := make(map[float64][]models.Expense)
	for _, e := range expenses {
		bucket := AmountBucket(e.Amount)
		if bucket <= 0 {
			continue
		}
		if _, ok := buckets[bucket]; !ok {
			order = append(order, bucket)
		}
		buckets[bucket] = append(buckets[bucket], e)
	}

	payments := make([]models.RecurringPayment, 0)
	for _, bucket := range order {
		members := buckets[bucket]
		descriptions := distinctDescriptions(members)
		if len(members) < MinRecurringOccurrences || len(descriptions) > MaxRecurringVariants {
			continue
		}
		payments = append(payments, newRecurringPayment(bucket, descriptions, members))
	}

	sort.SliceStable(payments, func(i, j int) bool { return payments[i].TotalAmount > payments[j].TotalAmount })
	return payments
}

// AmountBucket rounds amount to the nearest BucketSize.
func AmountBucket(amount float64) float64 {
	return math.Round(amount/BucketSize) * BucketSize
}

func newRecurringPayment(bucket float64, descriptions []string, members []models.Expense) models.RecurringPayment {
	dates := make([]string, 0, len(members))
	for _, e := range members {
		dates = append(dates, e.Date)
	}

	total := models.SumExpenses(members)
	average := models.RoundAmount(total / float64(len(members)))
	frequency := Frequency(dates)

	return models.RecurringPayment{
		Bucket:        bucket,
		Descriptions:  descriptions,
		Occurrences:   len(members),
		TotalAmount:   total,
		AverageAmount: average,
		Frequency:     frequency,
		YearlyCost:    yearlyCost(frequency, average, total, dates),
		Expenses:      members,
	}
}

func yearlyCost(frequency string, average, total float64, dates []string) float64 {
	switch frequency {
	case FrequencyDaily:
		return models.RoundAmount(average * 365)
	case FrequencyWeekly:
		return models.RoundAmount(average * 52)
	case FrequencyMonthly:
		return models.RoundAmount(average * 12)
	default:
		return models.RoundAmount(total / dateutils.SpanMonths(dates) * 12)
	}
}

// distinctDescriptions keeps the first spelling of each description,
// compared case-insensitively.
func distinctDescriptions(expenses []models.Expense) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range expenses {
		key := strings.ToLower(strings.TrimSpace(e.Description))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e.Description)
	}
	return out
}
