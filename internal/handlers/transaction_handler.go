package handlers

import (
	stderrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a new income or expense transaction
// @Summary Record a transaction
// @Description Record a single income or expense transaction. Categories are case-insensitive and stored lowercased.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_004 - Validation failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.RecordTransaction(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidDateFormat):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		case stderrors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, errors.TransactionInvalidType)
		case stderrors.Is(err, models.ErrInvalidAmount):
			return SendError(c, errors.TransactionInvalidAmount)
		case stderrors.Is(err, models.ErrMissingCategory):
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, transaction)
}

// ListTransactions retrieves filtered transaction history
// @Summary List transactions
// @Description Retrieve paginated transaction history, newest first, with optional date, category and type filters
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 200)" default(50)
// @Success 200 {object} dto.ListTransactionsResponse "Transaction history with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	response, err := h.transactionService.ListTransactions(&query)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidDateFormat):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		case stderrors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, errors.TransactionInvalidType)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get a transaction
// @Description Retrieve a single transaction by its UUID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction by ID
// @Summary Delete a transaction
// @Description Remove a transaction from the history
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}
