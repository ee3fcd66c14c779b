// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGuestNotFound is returned when a guest is not found.
var ErrGuestNotFound = errors.New("guest not found")

// GuestRepository defines the standard operations for guest persistence.
type GuestRepository interface {
	// Create persists a new guest.
	Create(ctx context.Context, guest *entity.Guest) error

	// FindByID retrieves a single guest by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)

	// ListByWedding retrieves all guests of a wedding.
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error)

	// Update modifies an existing guest.
	Update(ctx context.Context, guest *entity.Guest) error

	// Delete removes a guest from the list.
	Delete(ctx context.Context, id uuid.UUID) error
}
