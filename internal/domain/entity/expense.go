// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a named line item in a wedding's budget, e.g. "Buffet". The
// total amount is fixed-point with two decimal places. Expenses are removed
// together with their wedding (cascade delete).
type Expense struct {
	ID          uuid.UUID       // The unique identifier for the expense.
	WeddingID   uuid.UUID       // The wedding this expense belongs to.
	Name        string          // Expense display name.
	TotalAmount decimal.Decimal // Budgeted total, >= 0, two decimal places.
	CreatedAt   time.Time       // Timestamp of when this expense was created.
}

// RemainingBalance returns the expense total minus the given payments. The
// value is derived on demand, never stored, and may be negative when the
// expense is overpaid.
func (e *Expense) RemainingBalance(payments []*Payment) decimal.Decimal {
	remaining := e.TotalAmount
	for _, p := range payments {
		remaining = remaining.Sub(p.Amount)
	}

	return remaining
}
