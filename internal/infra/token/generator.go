// Package token generates the random single-use tokens that key partner invites.
package token

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"

	"vows/internal/domain/service"
)

// tokenBytes yields 43 URL-safe characters, comparable to a UUID but denser.
const tokenBytes = 32

type generator struct{}

// NewGenerator returns the default invite token generator.
func NewGenerator() service.InviteTokenGenerator {
	return &generator{}
}

// Generate returns a new URL-safe random token.
func (g *generator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
