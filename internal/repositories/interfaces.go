package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines transaction data access operations.
// Callers choose sort direction per use site: descending for general
// queries, ascending when feeding the backtester.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error)
	GetAll(ascending bool) ([]models.Transaction, error)
	GetByDateRange(start, end time.Time, ascending bool) ([]models.Transaction, error)
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines budget data access operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetAll() ([]models.Budget, error)
	GetByCategory(category string) (*models.Budget, error)
	DeleteByCategory(category string) error
}
