package model

import (
	"time"

	"github.com/google/uuid"
)

// WeddingModel mirrors the 'weddings' table. Partner slots are nullable
// references to users; deleting a wedding cascades to its dependents.
type WeddingModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Date         time.Time  `gorm:"not null"`
	Location     string     `gorm:"type:varchar(255)"`
	PartnerOneID *uuid.UUID `gorm:"type:uuid;index"`
	PartnerTwoID *uuid.UUID `gorm:"type:uuid;index"`
	GuestCount   *int
	CreatedAt    time.Time

	PartnerOne *UserModel     `gorm:"foreignKey:PartnerOneID;constraint:OnDelete:SET NULL"`
	PartnerTwo *UserModel     `gorm:"foreignKey:PartnerTwoID;constraint:OnDelete:SET NULL"`
	Invites    []InviteModel  `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
	Guests     []GuestModel   `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
	Expenses   []ExpenseModel `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WeddingModel) TableName() string {
	return "weddings"
}
