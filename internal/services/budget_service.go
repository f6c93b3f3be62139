package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	metricsRecorder MetricsRecorderInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface, metricsRecorder MetricsRecorderInterface) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		metricsRecorder: metricsRecorder,
	}
}

func (s *budgetService) UpsertBudget(req *dto.UpsertBudgetRequest) (*models.Budget, error) {
	budgetType := req.Type
	if budgetType == "" {
		budgetType = models.BudgetTypeExpense
	}

	budget := &models.Budget{
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount).Round(2),
		Type:     budgetType,
	}
	budget.Normalize()

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		slog.Error("Failed to upsert budget", "error", err, "category", budget.Category)
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	if s.metricsRecorder != nil {
		s.metricsRecorder.IncrementCounter("budgets_upserted", nil)
	}

	slog.Info("Budget upserted", "category", budget.Category, "amount", budget.Amount.String())
	return budget, nil
}

func (s *budgetService) ListBudgets() (*dto.ListBudgetsResponse, error) {
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		slog.Error("Failed to list budgets", "error", err)
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &dto.ListBudgetsResponse{Budgets: budgets}, nil
}

func (s *budgetService) DeleteBudget(category string) error {
	if err := s.budgetRepo.DeleteByCategory(category); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return err
		}
		slog.Error("Failed to delete budget", "error", err, "category", category)
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	slog.Info("Budget deleted", "category", category)
	return nil
}
