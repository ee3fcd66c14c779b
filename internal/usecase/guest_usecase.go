// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddGuestInput defines the data required to add a guest to a wedding.
type AddGuestInput struct {
	WeddingID uuid.UUID         `json:"-"`
	Name      string            `json:"name"`
	Group     entity.GuestGroup `json:"group"`
}

// UpdateGuestInput defines the mutable guest fields. Nil fields are left
// unchanged.
type UpdateGuestInput struct {
	Name      *string            `json:"name,omitempty"`
	Group     *entity.GuestGroup `json:"group,omitempty"`
	Confirmed *bool              `json:"confirmed,omitempty"`
}

// GuestUsecase defines the interface for guest list operations.
type GuestUsecase interface {
	AddGuest(ctx context.Context, userID uuid.UUID, input *AddGuestInput) (*entity.Guest, error)
	ListGuests(ctx context.Context, userID, weddingID uuid.UUID) ([]*entity.Guest, error)
	UpdateGuest(ctx context.Context, userID, guestID uuid.UUID, input *UpdateGuestInput) (*entity.Guest, error)
	DeleteGuest(ctx context.Context, userID, guestID uuid.UUID) error
}
