// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for invite persistence.
var (
	// ErrInviteNotFound is returned when an invite is not found.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrDuplicateInviteToken is returned when a generated token collides
	// with an existing one.
	ErrDuplicateInviteToken = errors.New("invite token already exists")
)

// InviteRepository defines the standard operations for invite persistence.
type InviteRepository interface {
	// Create persists a new invite.
	Create(ctx context.Context, invite *entity.Invite) error

	// FindByToken retrieves an invite by its unique token.
	FindByToken(ctx context.Context, token string) (*entity.Invite, error)

	// FindByTokenForUpdate retrieves an invite by token while holding a row
	// lock for the duration of the surrounding transaction. Used to serialize
	// concurrent acceptance attempts on the same token.
	FindByTokenForUpdate(ctx context.Context, token string) (*entity.Invite, error)

	// ListByWedding retrieves all invites issued for a wedding.
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Invite, error)

	// MarkAccepted stamps the invite's acceptance time.
	MarkAccepted(ctx context.Context, id uuid.UUID) error

	// DeletePendingBySlot removes any unaccepted invite for the given
	// (wedding, slot) pair, invalidating its token. Returns the number of
	// invites removed.
	DeletePendingBySlot(ctx context.Context, weddingID uuid.UUID, slot entity.PartnerSlot) (int64, error)
}
