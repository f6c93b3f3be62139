package dto

import (
	"time"

	"fintrack/internal/models"
)

// CreateTransactionRequest is the payload for recording a transaction.
// Validation runs before the model is built; the core never sees
// unvalidated input.
type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,transaction_type"`
	Amount      float64 `json:"amount" validate:"required,positive_amount"`
	Category    string  `json:"category" validate:"required,category,max=50"`
	Description string  `json:"description" validate:"max=500"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionQuery contains the query parameters for listing transactions
type TransactionQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Category  string `query:"category"`
	Type      string `query:"type"`
	Offset    int    `query:"offset"`
	Limit     int    `query:"limit"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}

// SeedRequest controls the sample-data generator
type SeedRequest struct {
	Months           int `json:"months" validate:"omitempty,min=1,max=36"`
	ExpensesPerMonth int `json:"expenses_per_month" validate:"omitempty,min=1,max=200"`
}

// SeedResponse reports what the generator produced
type SeedResponse struct {
	Created   int       `json:"created"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}
