package dto

import "fintrack/internal/models"

// UpsertBudgetRequest is the payload for creating or replacing a
// per-category budget
type UpsertBudgetRequest struct {
	Category string  `json:"category" validate:"required,category,max=50"`
	Amount   float64 `json:"amount" validate:"required,positive_amount"`
	Type     string  `json:"type" validate:"omitempty,oneof=expense income"`
}

// ListBudgetsResponse represents the response for listing budgets
type ListBudgetsResponse struct {
	Budgets []models.Budget `json:"budgets"`
}
