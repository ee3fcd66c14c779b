package service

// InviteTokenGenerator produces the single-use tokens that key partner
// invites. Tokens must be unique and hard to guess; uniqueness is also
// enforced by the storage layer's unique index.
type InviteTokenGenerator interface {
	// Generate returns a new URL-safe random token.
	Generate() (string, error)
}
