// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"vows/config"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext password against the
// configured strength policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength
	if policy == nil {
		return nil
	}

	var failures []string

	if policy.MinLength > 0 && len(password) < policy.MinLength {
		failures = append(failures, "too short")
	}
	// bcrypt silently truncates inputs longer than 72 bytes, so reject them.
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		failures = append(failures, "too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		failures = append(failures, "missing uppercase letter")
	}
	if policy.RequireLowercase && !hasLower {
		failures = append(failures, "missing lowercase letter")
	}
	if policy.RequireNumbers && !hasNumber {
		failures = append(failures, "missing number")
	}
	if policy.RequireSpecial && !hasSpecial {
		failures = append(failures, "missing special character")
	}

	if len(failures) > 0 {
		detail := strings.Join(failures, "; ")

		return errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails(detail), detail)
	}

	return nil
}
