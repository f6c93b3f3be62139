package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface handles transaction recording and queries
type TransactionServiceInterface interface {
	RecordTransaction(req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(query *dto.TransactionQuery) (*dto.ListTransactionsResponse, error)
	DeleteTransaction(id uuid.UUID) error
}

// BudgetServiceInterface manages per-category budget limits
type BudgetServiceInterface interface {
	UpsertBudget(req *dto.UpsertBudgetRequest) (*models.Budget, error)
	ListBudgets() (*dto.ListBudgetsResponse, error)
	DeleteBudget(category string) error
}

// ForecastServiceInterface exposes the forecasting engine over
// repository-backed data. The reference time is always passed in so
// results stay reproducible.
type ForecastServiceInterface interface {
	// GetSpendingForecast predicts next-month spending using the named
	// strategy (moving_average or regression)
	GetSpendingForecast(strategy string, now time.Time) (*dto.ForecastResponse, error)

	// GetMonthlyTrends returns the raw month buckets plus per-category
	// expense summaries
	GetMonthlyTrends() (*dto.TrendsResponse, error)

	// GetAccuracyReport backtests the moving-average predictor over the
	// full transaction history
	GetAccuracyReport() (*dto.AccuracyResponse, error)
}

// RecommendationServiceInterface produces budget-compliance advisories
type RecommendationServiceInterface interface {
	// GetRecommendations runs the requested recommendation mode.
	// Surplus mode requires a positive monthlyBudget; category-budget
	// mode ignores it.
	GetRecommendations(mode string, monthlyBudget decimal.Decimal, now time.Time) (*dto.RecommendationsResponse, error)
}

// SampleDataServiceInterface generates realistic transaction history
// for development and demos
type SampleDataServiceInterface interface {
	SeedHistory(months, expensesPerMonth int, now time.Time) (*dto.SeedResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
