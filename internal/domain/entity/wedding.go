// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "vows/internal/domain/errors"

	"github.com/google/uuid"
)

// Wedding is a single wedding event owned by up to two partners. The creator
// fills the first slot; the second partner attaches by accepting an invite.
type Wedding struct {
	ID           uuid.UUID  // The unique identifier for the wedding.
	Title        string     // Display title, e.g. "J&M".
	Date         time.Time  // The wedding date.
	Location     string     // Venue or city; empty when not decided yet.
	PartnerOneID *uuid.UUID // User occupying the PARTNER_ONE slot, nil when open.
	PartnerTwoID *uuid.UUID // User occupying the PARTNER_TWO slot, nil when open.
	GuestCount   *int       // Expected number of guests; nil when unknown.
	CreatedAt    time.Time  // Timestamp of when this wedding was created.
}

// PartnerInSlot returns the user ID occupying the given slot, or nil when the
// slot is open.
func (w *Wedding) PartnerInSlot(slot PartnerSlot) *uuid.UUID {
	if slot == PartnerSlotOne {
		return w.PartnerOneID
	}

	return w.PartnerTwoID
}

// AttachPartner places the user in the given slot. The same user may never
// occupy both slots, and an occupied slot is never overwritten.
func (w *Wedding) AttachPartner(userID uuid.UUID, slot PartnerSlot) error {
	if w.HasPartner(userID) {
		return domainerrors.ErrIdentityAlreadyPartner
	}
	if w.PartnerInSlot(slot) != nil {
		return domainerrors.ErrSlotOccupied
	}

	attached := userID
	if slot == PartnerSlotOne {
		w.PartnerOneID = &attached
	} else {
		w.PartnerTwoID = &attached
	}

	return nil
}

// HasPartner reports whether the given user already occupies either slot.
func (w *Wedding) HasPartner(userID uuid.UUID) bool {
	if w.PartnerOneID != nil && *w.PartnerOneID == userID {
		return true
	}
	if w.PartnerTwoID != nil && *w.PartnerTwoID == userID {
		return true
	}

	return false
}
