package repositories

import (
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates a budget or replaces the amount of an existing one
// for the same category
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "type", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetAll retrieves all budgets ordered by category
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByCategory retrieves the budget for a category
func (r *budgetRepository) GetByCategory(category string) (*models.Budget, error) {
	var budget models.Budget
	category = strings.ToLower(strings.TrimSpace(category))
	if err := r.db.Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// DeleteByCategory removes the budget for a category
func (r *budgetRepository) DeleteByCategory(category string) error {
	category = strings.ToLower(strings.TrimSpace(category))
	result := r.db.Delete(&models.Budget{}, "category = ?", category)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
