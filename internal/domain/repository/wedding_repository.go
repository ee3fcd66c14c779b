// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWeddingNotFound is returned when a wedding is not found.
var ErrWeddingNotFound = errors.New("wedding not found")

// WeddingRepository defines the standard operations for wedding persistence.
type WeddingRepository interface {
	// Create persists a new wedding.
	Create(ctx context.Context, wedding *entity.Wedding) error

	// FindByID retrieves a single wedding by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wedding, error)

	// FindByIDForUpdate retrieves a wedding by ID while holding a row lock
	// for the duration of the surrounding transaction. Used to serialize
	// partner-slot attachment.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Wedding, error)

	// ListByPartner retrieves all weddings where the user occupies a slot.
	ListByPartner(ctx context.Context, userID uuid.UUID) ([]*entity.Wedding, error)

	// Update modifies an existing wedding.
	Update(ctx context.Context, wedding *entity.Wedding) error

	// Delete removes a wedding. Invites, guests, expenses and payments are
	// removed by the database's cascade rules in the same statement.
	Delete(ctx context.Context, id uuid.UUID) error
}
