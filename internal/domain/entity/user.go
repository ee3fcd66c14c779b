// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinimumAge is the youngest age at which an account may be registered.
const MinimumAge = 16

// User is a registered person planning a wedding. Besides the basic identity
// fields it carries the wedding-specific registration data (role in the
// couple, contact phone, birth date) as first-class members; the external
// authentication boundary maps its minimal identity record into this struct.
type User struct {
	ID          uuid.UUID   // The unique identifier for the user.
	Email       string      // The user's primary contact email, used as the login identifier.
	Name        string      // The user's full name.
	WeddingRole WeddingRole // The user's role in the couple (GROOM or BRIDE).
	Phone       string      // Contact phone number.
	BirthDate   time.Time   // Date of birth; registration requires age >= MinimumAge.
	CreatedAt   time.Time   // Timestamp of when this account was created.
	UpdatedAt   time.Time   // Timestamp of the last modification to this user's data.
}

// IsAtLeastAge reports whether the user's birth date yields at least the given
// age at the reference time. A birth date exactly `age` years before the
// reference date is allowed, so a registration on the 16th birthday succeeds.
func (u *User) IsAtLeastAge(age int, now time.Time) bool {
	minDate := now.AddDate(-age, 0, 0)

	return !u.BirthDate.After(minDate)
}
