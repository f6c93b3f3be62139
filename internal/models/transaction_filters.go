package models

import "time"

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      string
}

// IsEmpty returns true when no filter field is set
func (f TransactionFilters) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.Category == "" && f.Type == ""
}
