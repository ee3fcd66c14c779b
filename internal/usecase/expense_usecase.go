// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateExpenseInput defines the data required to record an expense.
type CreateExpenseInput struct {
	WeddingID   uuid.UUID       `json:"-"`
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// RecordPaymentInput defines the data required to record a payment against an
// expense.
type RecordPaymentInput struct {
	ExpenseID   uuid.UUID            `json:"-"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      entity.PaymentMethod `json:"method"`
	PaymentDate time.Time            `json:"payment_date,omitempty"`
	ReceiptURL  string               `json:"receipt_url,omitempty"`
}

// --- Output DTOs ---

// ExpenseSummary pairs an expense with its payments and the derived balance
// figures. RemainingBalance is never stored; it is recomputed on every read
// and may be negative when payments exceed the planned total.
type ExpenseSummary struct {
	Expense          *entity.Expense   `json:"expense"`
	Payments         []*entity.Payment `json:"payments"`
	TotalPaid        decimal.Decimal   `json:"total_paid"`
	RemainingBalance decimal.Decimal   `json:"remaining_balance"`
}

// ExpenseUsecase defines the interface for the expense and payment ledger.
type ExpenseUsecase interface {
	CreateExpense(ctx context.Context, userID uuid.UUID, input *CreateExpenseInput) (*entity.Expense, error)
	ListExpenses(ctx context.Context, userID, weddingID uuid.UUID) ([]*ExpenseSummary, error)
	GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*ExpenseSummary, error)
	DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error

	RecordPayment(ctx context.Context, userID uuid.UUID, input *RecordPaymentInput) (*entity.Payment, error)
	DeletePayment(ctx context.Context, userID, expenseID, paymentID uuid.UUID) error
}
