// Package entity contains the core business objects of the project.
package entity

// WeddingRole represents the role a user takes in the couple.
type WeddingRole string

const (
	// WeddingRoleGroom indicates the groom.
	WeddingRoleGroom WeddingRole = "GROOM"
	// WeddingRoleBride indicates the bride.
	WeddingRoleBride WeddingRole = "BRIDE"
)

// String returns the string representation of the WeddingRole.
func (r WeddingRole) String() string {
	return string(r)
}

// IsValid checks if the WeddingRole is a valid value.
func (r WeddingRole) IsValid() bool {
	switch r {
	case WeddingRoleGroom, WeddingRoleBride:
		return true
	default:
		return false
	}
}
