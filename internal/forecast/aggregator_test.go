package forecast

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(txnType, category string, amount float64, date string) models.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Type:     txnType,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     parsed,
	}
}

func TestAggregateMonthly(t *testing.T) {
	transactions := []models.Transaction{
		txn(models.TransactionTypeExpense, "food", 50, "2025-01-10"),
		txn(models.TransactionTypeExpense, "rent", 800, "2025-01-01"),
		txn(models.TransactionTypeIncome, "salary", 2000, "2025-01-25"),
		txn(models.TransactionTypeExpense, "food", 75.50, "2025-02-03"),
	}

	buckets := AggregateMonthly(transactions)

	require.Len(t, buckets, 2)
	assert.True(t, buckets["2025-01"].Expenses.Equal(decimal.NewFromFloat(850)))
	assert.True(t, buckets["2025-01"].Income.Equal(decimal.NewFromFloat(2000)))
	assert.True(t, buckets["2025-02"].Expenses.Equal(decimal.NewFromFloat(75.50)))
	assert.True(t, buckets["2025-02"].Income.IsZero())
}

func TestAggregateMonthly_TotalsMatchInput(t *testing.T) {
	transactions := []models.Transaction{
		txn(models.TransactionTypeExpense, "food", 10, "2025-03-01"),
		txn(models.TransactionTypeIncome, "salary", 20, "2025-03-15"),
		txn(models.TransactionTypeExpense, "travel", 30, "2025-04-02"),
	}

	buckets := AggregateMonthly(transactions)

	// Per-month income + expenses must equal the sum of that month's
	// transaction amounts.
	total := decimal.Zero
	for _, bucket := range buckets {
		total = total.Add(bucket.Income).Add(bucket.Expenses)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(60)))
}

func TestAggregateMonthly_Empty(t *testing.T) {
	buckets := AggregateMonthly(nil)
	assert.Empty(t, buckets)
}

func TestAggregateMonthly_Idempotent(t *testing.T) {
	transactions := []models.Transaction{
		txn(models.TransactionTypeExpense, "food", 50, "2025-01-10"),
		txn(models.TransactionTypeIncome, "salary", 100, "2025-02-08"),
	}

	first := AggregateMonthly(transactions)
	second := AggregateMonthly(transactions)

	require.Len(t, second, len(first))
	for month, bucket := range first {
		assert.True(t, bucket.Income.Equal(second[month].Income))
		assert.True(t, bucket.Expenses.Equal(second[month].Expenses))
	}
}

func TestSortedMonths(t *testing.T) {
	buckets := map[string]*models.MonthBucket{
		"2025-03": {},
		"2024-12": {},
		"2025-01": {},
	}

	assert.Equal(t, []string{"2024-12", "2025-01", "2025-03"}, SortedMonths(buckets))
}

func TestMonthlyExpenseSeries(t *testing.T) {
	buckets := map[string]*models.MonthBucket{
		"2025-02": {Expenses: decimal.NewFromInt(200)},
		"2025-01": {Expenses: decimal.NewFromInt(100)},
	}

	series := MonthlyExpenseSeries(buckets)

	require.Len(t, series, 2)
	assert.True(t, series[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, series[1].Equal(decimal.NewFromInt(200)))
}
