package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudget creates or replaces a per-category budget
// @Summary Create or update a budget
// @Description Set the spending limit for a category. An existing budget for the same category is replaced.
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget details"
// @Success 200 {object} models.Budget "Stored budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002 - Invalid budget amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.UpsertBudget(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, models.ErrInvalidBudgetAmount):
			return SendError(c, errors.BudgetInvalidAmount)
		case stderrors.Is(err, models.ErrMissingBudgetCategory):
			return SendError(c, errors.BudgetInvalidCategory)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, budget)
}

// ListBudgets retrieves all configured budgets
// @Summary List budgets
// @Description Retrieve every configured per-category budget
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.ListBudgetsResponse "Configured budgets"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	response, err := h.budgetService.ListBudgets()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteBudget removes the budget for a category
// @Summary Delete a budget
// @Description Remove the spending limit for a category
// @Tags Budgets
// @Produce json
// @Param category path string true "Budget category"
// @Success 200 {object} SuccessResponse "Budget deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing category"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Missing category"))
	}

	if err := h.budgetService.DeleteBudget(category); err != nil {
		if stderrors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget deleted"})
}
