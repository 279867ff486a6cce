package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise-app/finwise/internal/domain"
)

func TestDescribe(t *testing.T) {
	s := describe([]float64{100, 200, 300, 400})

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 250, s.Mean, 0.001)
	assert.InDelta(t, 250, s.Median, 0.001)
	assert.InDelta(t, 100, s.Min, 0.001)
	assert.InDelta(t, 400, s.Max, 0.001)
	assert.InDelta(t, 175, s.Q25, 0.001)
	assert.InDelta(t, 325, s.Q75, 0.001)
	// Sample standard deviation.
	assert.InDelta(t, 129.099, s.Std, 0.001)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 3, quantile(sorted, 0.5), 0.001)
	assert.InDelta(t, 2, quantile(sorted, 0.25), 0.001)
	assert.InDelta(t, 1, quantile(sorted, 0), 0.001)
	assert.InDelta(t, 5, quantile(sorted, 1), 0.001)
	assert.Zero(t, quantile(nil, 0.5))
}

func TestBuildAdvanced(t *testing.T) {
	set := sampleSet()
	a := BuildAdvanced(set)

	assert.Equal(t, 5, a.Statistics.Count)
	assert.InDelta(t, 50000, a.Statistics.Max, 0.001)

	// The salary credit sits far outside the IQR fence.
	require.NotEmpty(t, a.Outliers)
	assert.Equal(t, "Salary Credit", a.Outliers[0].Description)

	require.NotEmpty(t, a.CategoryTrends)
	assert.Equal(t, string(domain.CategoryIncome), a.CategoryTrends[0].Category)

	require.NotEmpty(t, a.FrequentMerchants)
	assert.Equal(t, "UPI Payment - Swiggy", a.FrequentMerchants[0].Merchant)
	assert.Equal(t, 2, a.FrequentMerchants[0].Count)

	assert.NotEmpty(t, a.Insights)
}

func TestBuildAdvanced_EmptySet(t *testing.T) {
	a := BuildAdvanced(&domain.Set{})
	assert.Zero(t, a.Statistics.Count)
	assert.Empty(t, a.Outliers)
	assert.Empty(t, a.Insights)
}

func TestWeekdaySpending_MondayFirst(t *testing.T) {
	// 2024-01-01 is a Monday.
	set := &domain.Set{Transactions: []domain.Transaction{
		txn(1, "A", domain.CategoryOther, -100),
		txn(7, "B", domain.CategoryOther, -50), // Sunday
	}}

	days := weekdaySpending(set)
	assert.InDelta(t, 100, days[0], 0.001)
	assert.InDelta(t, 50, days[6], 0.001)
}

func TestHourlySpending_DateOnlySpreadsBusinessHours(t *testing.T) {
	set := sampleSet()
	a := BuildAdvanced(set)

	assert.Zero(t, a.HourlySpending[0])
	assert.Zero(t, a.HourlySpending[8])
	assert.NotZero(t, a.HourlySpending[9])
	assert.NotZero(t, a.HourlySpending[21])
	assert.Zero(t, a.HourlySpending[22])
}

func TestHourlySpending_WithTimeComponent(t *testing.T) {
	set := &domain.Set{Transactions: []domain.Transaction{
		{
			Date:   time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(-100),
		},
	}}

	a := BuildAdvanced(set)
	assert.InDelta(t, 100, a.HourlySpending[14], 0.001)
	assert.Zero(t, a.HourlySpending[9])
}

func TestDataQuality(t *testing.T) {
	set := &domain.Set{Transactions: []domain.Transaction{
		txn(1, "UPI Payment - Swiggy", domain.CategoryFoodDining, -150),
		txn(1, "UPI Payment - Swiggy", domain.CategoryFoodDining, -150), // duplicate
		{Description: "Unknown Transaction", Category: domain.CategoryOther, Amount: decimal.NewFromInt(-10)},
	}}

	q := dataQuality(set)
	assert.Equal(t, 3, q.Total)
	assert.Equal(t, 1, q.Duplicates)
	// The third row misses both its date and a usable description.
	assert.Equal(t, 2, q.Missing)
	assert.InDelta(t, 83.33, q.Completeness, 0.01)
}

func TestBuildInsights_DataQualityWarning(t *testing.T) {
	a := Advanced{
		Statistics:  Statistics{Mean: 100, Std: 20, Max: 500},
		DataQuality: DataQuality{Total: 10, Missing: 3, Completeness: 92.5},
	}

	insights := buildInsights(a)
	var titles []string
	for _, in := range insights {
		titles = append(titles, in.Title)
	}
	assert.Contains(t, titles, "Data Quality Warning")
	assert.Contains(t, titles, "Spending Consistency")
}
