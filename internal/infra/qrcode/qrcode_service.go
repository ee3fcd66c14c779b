package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"vows/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	acceptBaseURL        string
}

// NewQRCodeService creates a new QR code service instance.
// Generated codes encode the invite accept URL with the token appended.
func NewQRCodeService(size int, errorCorrectionLevel, acceptBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "M", "MEDIUM":
		level = qrcode.Medium
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		acceptBaseURL:        acceptBaseURL,
	}
}

// GenerateInviteQR renders the invite accept URL for the given token as a PNG image.
func (s *qrcodeService) GenerateInviteQR(token string) ([]byte, error) {
	acceptURL := AcceptURL(s.acceptBaseURL, token)

	qrCode, err := qrcode.New(acceptURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// AcceptURL builds the accept link for an invite token.
func AcceptURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "?token=" + url.QueryEscape(token)
}
