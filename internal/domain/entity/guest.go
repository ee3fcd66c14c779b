// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// GuestGroup categorizes a guest within the wedding's guest list.
type GuestGroup string

const (
	// GuestGroupFamily marks relatives of the couple.
	GuestGroupFamily GuestGroup = "FAMILY"
	// GuestGroupFriends marks friends of the couple.
	GuestGroupFriends GuestGroup = "FRIENDS"
	// GuestGroupGodparents marks godparents of the couple.
	GuestGroupGodparents GuestGroup = "GODPARENTS"
	// GuestGroupOther marks guests outside the named groups.
	GuestGroupOther GuestGroup = "OTHER"
)

// String returns the string representation of the GuestGroup.
func (g GuestGroup) String() string {
	return string(g)
}

// IsValid checks if the GuestGroup is a valid value.
func (g GuestGroup) IsValid() bool {
	switch g {
	case GuestGroupFamily, GuestGroupFriends, GuestGroupGodparents, GuestGroupOther:
		return true
	default:
		return false
	}
}

// Guest is a person on a wedding's guest list. Guests are removed together
// with their wedding (cascade delete).
type Guest struct {
	ID        uuid.UUID  // The unique identifier for the guest.
	WeddingID uuid.UUID  // The wedding this guest belongs to.
	Name      string     // Guest display name.
	Group     GuestGroup // Which group the guest belongs to.
	Confirmed bool       // Whether the guest confirmed attendance.
}
