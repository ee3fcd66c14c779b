package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseModel mirrors the 'expenses' table. Money columns use numeric(10,2)
// so amounts never pick up binary floating point error.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WeddingID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time

	Payments []PaymentModel `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExpenseID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Method      string          `gorm:"type:varchar(20);not null"`
	PaymentDate time.Time       `gorm:"not null"`
	ReceiptURL  string          `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
