// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the means by which a payment was made.
type PaymentMethod string

const (
	// PaymentMethodPix is an instant bank transfer (PIX).
	PaymentMethodPix PaymentMethod = "PIX"
	// PaymentMethodCreditCard is a credit card payment.
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	// PaymentMethodDebitCard is a debit card payment.
	PaymentMethodDebitCard PaymentMethod = "DEBIT_CARD"
	// PaymentMethodCash is a cash payment.
	PaymentMethodCash PaymentMethod = "CASH"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// Payment is a single payment applied against an expense. Payments are
// removed together with their expense (cascade delete).
type Payment struct {
	ID          uuid.UUID       // The unique identifier for the payment.
	ExpenseID   uuid.UUID       // The expense this payment is applied against.
	Amount      decimal.Decimal // Paid amount, >= 0, two decimal places.
	Method      PaymentMethod   // How the payment was made.
	PaymentDate time.Time       // When the payment was made.
	ReceiptURL  string          // Link to a receipt; may be empty.
}
