package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/forecast"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRecommendationMode = errors.New("invalid recommendation mode")
	ErrMonthlyBudgetRequired     = errors.New("monthly budget must be positive")
)

// recommendationService wires stored transactions and budgets into the
// recommendation engine
type recommendationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metricsRecorder MetricsRecorderInterface
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metricsRecorder MetricsRecorderInterface,
) RecommendationServiceInterface {
	return &recommendationService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metricsRecorder: metricsRecorder,
	}
}

func (s *recommendationService) GetRecommendations(mode string, monthlyBudget decimal.Decimal, now time.Time) (*dto.RecommendationsResponse, error) {
	if mode != forecast.ModeCategoryBudget && mode != forecast.ModeSurplus {
		return nil, ErrInvalidRecommendationMode
	}
	if mode == forecast.ModeSurplus && !monthlyBudget.IsPositive() {
		return nil, ErrMonthlyBudgetRequired
	}

	var transactions []models.Transaction
	var err error
	if mode == forecast.ModeSurplus {
		// surplus mode only looks at the month in progress
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		transactions, err = s.transactionRepo.GetByDateRange(monthStart, monthEnd, true)
	} else {
		transactions, err = s.transactionRepo.GetAll(true)
	}
	if err != nil {
		slog.Error("Failed to load transactions for recommendations", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	input := forecast.RecommendationInput{
		Transactions:  transactions,
		MonthlyBudget: monthlyBudget,
		Now:           now,
	}

	if mode == forecast.ModeCategoryBudget {
		budgets, err := s.budgetRepo.GetAll()
		if err != nil {
			slog.Error("Failed to load budgets for recommendations", "error", err)
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		input.Budgets = budgets
	}

	recommender := forecast.RecommenderFor(mode)
	recommendations := recommender.Recommend(input)

	if s.metricsRecorder != nil {
		s.metricsRecorder.IncrementCounter("recommendations_generated", map[string]string{
			"mode": mode,
		})
	}

	slog.Info("Recommendations generated", "mode", mode, "count", len(recommendations))

	return &dto.RecommendationsResponse{
		Mode:            mode,
		Recommendations: recommendations,
	}, nil
}
