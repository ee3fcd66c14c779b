package model

import (
	"github.com/google/uuid"
)

// GuestModel mirrors the 'guests' table. The group column is named explicitly
// because GROUP is a reserved word in SQL.
type GuestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WeddingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Group     string    `gorm:"column:guest_group;type:varchar(20);not null"`
	Confirmed bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (GuestModel) TableName() string {
	return "guests"
}
