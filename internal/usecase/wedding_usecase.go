// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateWeddingInput defines the data required to create a wedding. The
// creator always takes the first partner slot. When the second partner's
// contact details are given, an invite for the second slot is issued in the
// same transaction.
type CreateWeddingInput struct {
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	GuestCount      *int      `json:"guest_count,omitempty"`
	PartnerTwoName  string    `json:"partner_two_name,omitempty"`
	PartnerTwoEmail string    `json:"partner_two_email,omitempty"`
}

// UpdateWeddingInput defines the mutable wedding fields. Nil fields are left
// unchanged.
type UpdateWeddingInput struct {
	Title      *string    `json:"title,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Location   *string    `json:"location,omitempty"`
	GuestCount *int       `json:"guest_count,omitempty"`
}

// --- Output DTOs ---

// CreateWeddingOutput returns the created wedding and, when second-partner
// contact details were supplied, the issued invite.
type CreateWeddingOutput struct {
	Wedding *entity.Wedding `json:"wedding"`
	Invite  *entity.Invite  `json:"invite,omitempty"`
}

// WeddingUsecase defines the interface for wedding management operations.
// Every operation checks that the requesting user occupies a partner slot.
type WeddingUsecase interface {
	CreateWedding(ctx context.Context, userID uuid.UUID, input *CreateWeddingInput) (*CreateWeddingOutput, error)
	GetWedding(ctx context.Context, userID, weddingID uuid.UUID) (*entity.Wedding, error)
	ListWeddings(ctx context.Context, userID uuid.UUID) ([]*entity.Wedding, error)
	UpdateWedding(ctx context.Context, userID, weddingID uuid.UUID, input *UpdateWeddingInput) (*entity.Wedding, error)
	DeleteWedding(ctx context.Context, userID, weddingID uuid.UUID) error
}
