package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vows/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishInviteIssued(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	event := &service.InviteIssuedEvent{
		RequestID: "req-1",
		InviteID:  "invite-1",
		WeddingID: "wedding-1",
		Email:     "partner@example.com",
		Slot:      "PARTNER_TWO",
		AcceptURL: "http://localhost:8080/invites/accept?token=abc",
		ExpiresAt: time.Now().Add(72 * time.Hour),
	}

	err := publisher.PublishInviteIssued(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "invite-1", received.Message.MessageID)
	assert.Equal(t, "invite-1", received.Message.Attributes["invite_id"])
	assert.Equal(t, "wedding-1", received.Message.Attributes["wedding_id"])
	assert.Equal(t, "PARTNER_TWO", received.Message.Attributes["slot"])

	// Payload round-trips through the base64 push envelope.
	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.InviteIssuedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Email, decoded.Email)
	assert.Equal(t, event.AcceptURL, decoded.AcceptURL)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishInviteIssued(context.Background(), &service.InviteIssuedEvent{InviteID: "invite-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
