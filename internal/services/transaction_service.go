package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metricsRecorder MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repositories.TransactionRepositoryInterface, metricsRecorder MetricsRecorderInterface) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metricsRecorder: metricsRecorder,
	}
}

func (s *transactionService) RecordTransaction(req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		date = parsed
	}

	transaction := &models.Transaction{
		Type:        strings.ToLower(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount).Round(2),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	transaction.Normalize()

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("Failed to create transaction", "error", err, "category", transaction.Category)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if s.metricsRecorder != nil {
		s.metricsRecorder.IncrementCounter("transactions_recorded", map[string]string{
			"type": transaction.Type,
		})
	}

	slog.Info("Transaction recorded",
		"id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"amount", transaction.Amount.String())

	return transaction, nil
}

func (s *transactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		slog.Error("Failed to get transaction", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(query *dto.TransactionQuery) (*dto.ListTransactionsResponse, error) {
	filters, err := buildFilters(query)
	if err != nil {
		return nil, err
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	transactions, total, err := s.transactionRepo.List(filters, offset, limit)
	if err != nil {
		slog.Error("Failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}, nil
}

func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		slog.Error("Failed to delete transaction", "error", err, "id", id)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	slog.Info("Transaction deleted", "id", id)
	return nil
}

func buildFilters(query *dto.TransactionQuery) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if query.StartDate != "" {
		start, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return filters, ErrInvalidDateFormat
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return filters, ErrInvalidDateFormat
		}
		// include the whole end day
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.EndDate = &end
	}
	if query.Type != "" && !models.IsValidTransactionType(query.Type) {
		return filters, models.ErrInvalidTransactionType
	}
	filters.Category = query.Category
	filters.Type = query.Type

	return filters, nil
}
