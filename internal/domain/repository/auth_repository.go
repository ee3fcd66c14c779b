// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vows/internal/domain/entity"
)

// Domain-specific errors for authentication persistence. This allows the
// application layer to handle specific outcomes without depending on
// database-specific errors.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrTokenNotFound is returned when a refresh token is not found.
	ErrTokenNotFound = errors.New("refresh token not found")
)

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider
	// and provider-specific ID (the email address for the email provider).
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
