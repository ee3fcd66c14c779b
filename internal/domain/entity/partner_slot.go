// Package entity contains the core business objects of the project.
package entity

// PartnerSlot identifies which of the two partner positions in a wedding an
// invite (or a user) occupies.
type PartnerSlot string

const (
	// PartnerSlotOne is the first partner position, filled by the creator.
	PartnerSlotOne PartnerSlot = "PARTNER_ONE"
	// PartnerSlotTwo is the second partner position, filled via invite.
	PartnerSlotTwo PartnerSlot = "PARTNER_TWO"
)

// String returns the string representation of the PartnerSlot.
func (s PartnerSlot) String() string {
	return string(s)
}

// IsValid checks if the PartnerSlot is a valid value.
func (s PartnerSlot) IsValid() bool {
	switch s {
	case PartnerSlotOne, PartnerSlotTwo:
		return true
	default:
		return false
	}
}
