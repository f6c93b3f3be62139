package models

import "github.com/shopspring/decimal"

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// GeneralCategory marks recommendations that are not tied to a single
// budget category.
const GeneralCategory = "general"

// MonthBucket holds the aggregated income and expense totals for one
// calendar month. Buckets are derived values, rebuilt on every call;
// nothing persists them.
type MonthBucket struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// PredictionResult is a next-period spending estimate with a 0-100
// confidence score.
type PredictionResult struct {
	Prediction decimal.Decimal `json:"prediction"`
	Confidence float64         `json:"confidence"`
}

// AccuracyRecord scores one backtested month: what the model predicted
// versus what was actually spent.
type AccuracyRecord struct {
	Month     string          `json:"month"`
	Predicted decimal.Decimal `json:"predicted"`
	Actual    decimal.Decimal `json:"actual"`
	Accuracy  float64         `json:"accuracy"`
}

// BacktestReport summarizes a full backtest run. Recent holds only the
// last three records; AverageAccuracy is the mean over every record
// produced, not just the recent window.
type BacktestReport struct {
	Records         []AccuracyRecord `json:"records"`
	Recent          []AccuracyRecord `json:"recent"`
	AverageAccuracy float64          `json:"average_accuracy"`
	TotalCount      int              `json:"total_count"`
}

// Recommendation is a budget-compliance advisory message
type Recommendation struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// CategorySummary contains aggregated expense data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}
