// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a pending invitation to claim a partner slot in a wedding. It is
// keyed by a single-use unique token and expires after a configured window.
// Expiry is checked lazily at the point of acceptance; there is no sweeper.
type Invite struct {
	ID         uuid.UUID   // The unique identifier for the invite.
	WeddingID  uuid.UUID   // The wedding this invite belongs to.
	Name       string      // Invitee display name; may be empty.
	Email      string      // Invitee email the token is sent to.
	Slot       PartnerSlot // The partner slot this invite fills once accepted.
	Token      string      // Single-use URL-safe token, unique across all invites.
	InvitedAt  time.Time   // When the invite was issued.
	AcceptedAt *time.Time  // When the invite was accepted; nil while pending.
	ExpiresAt  time.Time   // Acceptance deadline.
}

// IsAccepted returns true if the invite has already been used.
func (i *Invite) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsExpired returns true if the invite has passed its acceptance deadline.
func (i *Invite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsPending returns true if the invite can still be accepted.
func (i *Invite) IsPending(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}
