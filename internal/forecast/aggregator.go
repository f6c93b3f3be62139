// Package forecast implements the spending forecast engine: monthly
// aggregation of transactions, next-period prediction strategies, a
// rolling backtest, and budget recommendation rules.
//
// Everything in this package is pure and stateless. All inputs,
// including the reference time, are passed explicitly; functions may be
// called concurrently without synchronization.
package forecast

import (
	"sort"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// AggregateMonthly groups transactions into calendar-month buckets of
// total income and expenses, keyed by YYYY-MM. Buckets exist only for
// months that have at least one transaction.
func AggregateMonthly(transactions []models.Transaction) map[string]*models.MonthBucket {
	buckets := make(map[string]*models.MonthBucket)

	for i := range transactions {
		txn := &transactions[i]

		key := txn.MonthKey()
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.MonthBucket{
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = bucket
		}

		if txn.IsExpense() {
			bucket.Expenses = bucket.Expenses.Add(txn.Amount)
		} else {
			bucket.Income = bucket.Income.Add(txn.Amount)
		}
	}

	return buckets
}

// SortedMonths returns the bucket keys in ascending chronological
// order. YYYY-MM keys sort correctly as strings.
func SortedMonths(buckets map[string]*models.MonthBucket) []string {
	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

// MonthlyExpenseSeries returns the expense totals of the given buckets
// in chronological order, the shape the predictors consume.
func MonthlyExpenseSeries(buckets map[string]*models.MonthBucket) []decimal.Decimal {
	months := SortedMonths(buckets)
	series := make([]decimal.Decimal, 0, len(months))
	for _, month := range months {
		series = append(series, buckets[month].Expenses)
	}
	return series
}
