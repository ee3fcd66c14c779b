package service

// QRCodeService defines the interface for invite QR code generation.
type QRCodeService interface {
	// GenerateInviteQR renders the invite accept URL for the given token as
	// a PNG image, for embedding in printed or digital invitations.
	GenerateInviteQR(token string) ([]byte, error)
}
