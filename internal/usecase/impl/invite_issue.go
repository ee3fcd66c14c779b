package impl

import (
	"context"
	"net/url"
	"strings"
	"time"

	deliverycontext "vows/internal/delivery/context"
	"vows/internal/domain/entity"
	"vows/internal/domain/repository"
	"vows/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenCreateAttempts bounds retries when a generated token collides with the
// unique index. With 256-bit tokens a collision is effectively impossible,
// but the insert path handles it anyway.
const tokenCreateAttempts = 3

// issuePartnerInvite removes any pending invite for the slot (invalidating
// its token) and inserts a fresh one. It must run inside the caller's
// transaction so re-issuance is atomic.
func issuePartnerInvite(
	ctx context.Context,
	inviteRepo repository.InviteRepository,
	tokenGen service.InviteTokenGenerator,
	weddingID uuid.UUID,
	name, email string,
	slot entity.PartnerSlot,
	ttl time.Duration,
) (*entity.Invite, error) {
	if _, err := inviteRepo.DeletePendingBySlot(ctx, weddingID, slot); err != nil {
		return nil, errors.Wrap(err, "failed to invalidate pending invites")
	}

	now := time.Now()

	for attempt := 0; attempt < tokenCreateAttempts; attempt++ {
		token, err := tokenGen.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate invite token")
		}

		invite := &entity.Invite{
			WeddingID: weddingID,
			Name:      name,
			Email:     email,
			Slot:      slot,
			Token:     token,
			InvitedAt: now,
			ExpiresAt: now.Add(ttl),
		}

		err = inviteRepo.Create(ctx, invite)
		if err == nil {
			return invite, nil
		}
		if !errors.Is(err, repository.ErrDuplicateInviteToken) {
			return nil, errors.Wrap(err, "failed to create invite")
		}
	}

	return nil, errors.New("failed to create invite: token collisions exhausted retries")
}

// buildAcceptURL joins the configured accept endpoint with the invite token.
func buildAcceptURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "?token=" + url.QueryEscape(token)
}

// inviteIssuedEvent assembles the event payload for a freshly issued invite.
func inviteIssuedEvent(ctx context.Context, invite *entity.Invite, acceptURL string) *service.InviteIssuedEvent {
	return &service.InviteIssuedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		InviteID:  invite.ID.String(),
		WeddingID: invite.WeddingID.String(),
		Email:     invite.Email,
		Name:      invite.Name,
		Slot:      invite.Slot.String(),
		AcceptURL: acceptURL,
		ExpiresAt: invite.ExpiresAt,
	}
}
