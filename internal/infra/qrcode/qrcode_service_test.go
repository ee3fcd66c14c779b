package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Named level from config", 256, "medium"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "http://localhost:8080/invites/accept")
			require.NotNil(t, svc)
		})
	}
}

func TestGenerateInviteQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "http://localhost:8080/invites/accept")

	png, err := svc.GenerateInviteQR("some-token")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestAcceptURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:8080/invites/accept?token=abc123",
		AcceptURL("http://localhost:8080/invites/accept", "abc123"),
	)
	assert.Equal(t,
		"http://localhost:8080/invites/accept?token=abc123",
		AcceptURL("http://localhost:8080/invites/accept/", "abc123"),
	)
	// Tokens are URL-safe base64 but escape anyway.
	assert.Equal(t,
		"https://vows.example/accept?token=a%2Bb",
		AcceptURL("https://vows.example/accept", "a+b"),
	)
}
