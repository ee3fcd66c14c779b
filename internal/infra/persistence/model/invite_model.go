package model

import (
	"time"

	"github.com/google/uuid"
)

// InviteModel mirrors the 'invites' table. The token column is unique so a
// single-use token can never be issued twice.
type InviteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WeddingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100)"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Slot       string    `gorm:"type:varchar(20);not null"`
	Token      string    `gorm:"type:varchar(255);unique;not null"`
	InvitedAt  time.Time `gorm:"not null"`
	AcceptedAt *time.Time
	ExpiresAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InviteModel) TableName() string {
	return "invites"
}
