// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifiers for authentication records.
const (
	// ProviderTypeEmail is the email/password credential provider.
	ProviderTypeEmail = "email"
)

// Authentication represents a single login credential for a user. For the
// email provider, ProviderUserID is the email address and PasswordHash holds
// the bcrypt hash.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this credential record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // The authentication provider, e.g. "email".
	ProviderUserID string    // The user's unique ID within the provider.
	PasswordHash   string    // bcrypt hash, only set when Provider is "email".
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token after the old one expires, without requiring
// credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this session expires and becomes invalid.
	CreatedAt time.Time // When this session was created (i.e. login time).
}
