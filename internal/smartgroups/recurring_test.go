package smartgroups

import (
	"testing"

	"fjacquet/finny-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRecurringPayments(t *testing.T) {
	expenses := []models.Expense{
		{Description: "Netflix", Amount: 649, Date: "2024-01-05"},
		{Description: "Milk", Amount: 55, Date: "2024-01-06"},
		{Description: "Gym fee", Amount: 1999, Date: "2024-01-01"},
		{Description: "Netflix", Amount: 649, Date: "2024-02-05"},
		{Description: "Eggs", Amount: 90, Date: "2024-01-07"},
		{Description: "GYM FEE", Amount: 1999, Date: "2024-02-01"},
		{Description: "Juice", Amount: 120, Date: "2024-01-08"},
		{Description: "Netflix", Amount: 649, Date: "2024-03-05"},
		{Description: "Snacks", Amount: 80, Date: "2024-01-09"},
		{Description: "Gym membership", Amount: 1999, Date: "2024-03-01"},
		{Description: "Electricity", Amount: 1200, Date: "2024-01-15"},
		{Description: "Electricity", Amount: 1200, Date: "2024-02-15"},
		{Description: "Tip", Amount: 20, Date: "2024-01-01"},
		{Description: "Tip", Amount: 20, Date: "2024-01-02"},
		{Description: "Tip", Amount: 20, Date: "2024-01-03"},
	}

	payments := DetectRecurringPayments(expenses)
	require.Len(t, payments, 2)

	gym := payments[0]
	assert.Equal(t, 2000.0, gym.Bucket)
	assert.Equal(t, []string{"Gym fee", "Gym membership"}, gym.Descriptions)
	assert.Equal(t, 3, gym.Occurrences)
	assert.Equal(t, 5997.0, gym.TotalAmount)
	assert.Equal(t, FrequencyMonthly, gym.Frequency)
	assert.Equal(t, 23988.0, gym.YearlyCost)
	assert.Len(t, gym.Expenses, 3)

	netflix := payments[1]
	assert.Equal(t, 600.0, netflix.Bucket)
	assert.Equal(t, []string{"Netflix"}, netflix.Descriptions)
	assert.Equal(t, 1947.0, netflix.TotalAmount)
	assert.Equal(t, 649.0, netflix.AverageAmount)
	assert.Equal(t, 7788.0, netflix.YearlyCost)
}

func TestDetectRecurringPayments_Empty(t *testing.T) {
	payments := DetectRecurringPayments(nil)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestAmountBucket(t *testing.T) {
	assert.Equal(t, 600.0, AmountBucket(649))
	assert.Equal(t, 700.0, AmountBucket(650))
	assert.Equal(t, 0.0, AmountBucket(49))
	assert.Equal(t, 2000.0, AmountBucket(1999))
}
