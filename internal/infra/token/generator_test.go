package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	token, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, token, 43)

	// URL-safe: no padding or reserved characters.
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}

func TestGenerator_GenerateUnique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		token, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generated duplicate token")
		seen[token] = struct{}{}
	}
}
