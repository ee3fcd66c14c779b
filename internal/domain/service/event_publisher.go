package service

import (
	"context"
	"time"
)

// InviteIssuedEvent is published whenever a partner invite is issued or
// re-issued. A separate mailer process consumes these events and delivers
// the invite email; the core never sends mail itself.
type InviteIssuedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	InviteID  string    `json:"invite_id"`
	WeddingID string    `json:"wedding_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Slot      string    `json:"slot"`
	AcceptURL string    `json:"accept_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInviteIssued publishes an invite-issued event for async delivery.
	PublishInviteIssued(ctx context.Context, event *InviteIssuedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
