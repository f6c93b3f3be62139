package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetTypeExpense is the default budget type; budgets cap spending
// in a category rather than income.
const BudgetTypeExpense = "expense"

var (
	ErrInvalidBudgetAmount   = errors.New("budget amount must be positive")
	ErrMissingBudgetCategory = errors.New("budget category is required")
)

// Budget is a per-category spending limit
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category  string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type      string          `gorm:"type:varchar(20);not null;default:'expense'" json:"type"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	if b.Type == "" {
		b.Type = BudgetTypeExpense
	}

	b.Category = strings.ToLower(strings.TrimSpace(b.Category))

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	b.Category = strings.ToLower(strings.TrimSpace(b.Category))
	return b.Validate()
}

// Normalize lowercases and trims the category so lookups are
// case-insensitive
func (b *Budget) Normalize() {
	b.Category = strings.ToLower(strings.TrimSpace(b.Category))
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrMissingBudgetCategory
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
