// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the expense ledger.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
)

// ExpenseRepository defines the standard operations for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves a single expense by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// ListByWedding retrieves all expenses of a wedding.
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Expense, error)

	// Delete removes an expense. Its payments are removed by the database's
	// cascade rules in the same statement.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// Create persists a new payment against an expense.
	Create(ctx context.Context, payment *entity.Payment) error

	// ListByExpense retrieves all payments applied against an expense,
	// ordered by payment date.
	ListByExpense(ctx context.Context, expenseID uuid.UUID) ([]*entity.Payment, error)

	// Delete removes a payment.
	Delete(ctx context.Context, id uuid.UUID) error
}
