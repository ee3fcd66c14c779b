// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vows/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// IssueInviteInput defines the data required to issue a partner invite.
// Re-issuing for a slot with a pending invite invalidates the old token.
type IssueInviteInput struct {
	WeddingID uuid.UUID          `json:"-"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Slot      entity.PartnerSlot `json:"slot"`
}

// --- Output DTOs ---

// IssueInviteOutput returns the created invite together with the accept link
// the recipient will follow.
type IssueInviteOutput struct {
	Invite    *entity.Invite `json:"invite"`
	AcceptURL string         `json:"accept_url"`
}

// AcceptInviteOutput returns the wedding the accepting user was attached to.
type AcceptInviteOutput struct {
	Wedding *entity.Wedding `json:"wedding"`
	Invite  *entity.Invite  `json:"invite"`
}

// InviteUsecase defines the interface for partner invite operations.
type InviteUsecase interface {
	// IssueInvite creates a single-use invite token for a partner slot and
	// publishes an event for asynchronous email delivery.
	IssueInvite(ctx context.Context, userID uuid.UUID, input *IssueInviteInput) (*IssueInviteOutput, error)

	// AcceptInvite redeems a token and attaches the accepting user to the
	// invite's partner slot. Each token works exactly once.
	AcceptInvite(ctx context.Context, userID uuid.UUID, token string) (*AcceptInviteOutput, error)

	// ListInvites returns all invites issued for a wedding.
	ListInvites(ctx context.Context, userID, weddingID uuid.UUID) ([]*entity.Invite, error)

	// InviteQR renders the accept link of a pending invite as a PNG QR code.
	InviteQR(ctx context.Context, userID uuid.UUID, token string) ([]byte, error)
}
