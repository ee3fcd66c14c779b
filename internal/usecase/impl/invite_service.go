// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vows/config"
	deliverycontext "vows/internal/delivery/context"
	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	"vows/internal/domain/service"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inviteService implements the InviteUsecase interface.
type inviteService struct {
	txManager   repository.TransactionManager
	weddingRepo repository.WeddingRepository
	inviteRepo  repository.InviteRepository
	tokenGen    service.InviteTokenGenerator
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	inviteTTL   time.Duration
	acceptBase  string
	logger      *slog.Logger
}

// InviteServiceParams holds dependencies for InviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	WeddingRepo repository.WeddingRepository
	InviteRepo  repository.InviteRepository
	TokenGen    service.InviteTokenGenerator
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) usecase.InviteUsecase {
	return &inviteService{
		txManager:   params.TxManager,
		weddingRepo: params.WeddingRepo,
		inviteRepo:  params.InviteRepo,
		tokenGen:    params.TokenGen,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		inviteTTL:   params.Config.Invite.TTL,
		acceptBase:  params.Config.Invite.AcceptBaseURL,
		logger:      params.Logger,
	}
}

func (srv *inviteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueInvite creates a single-use invite token for an open partner slot.
// Re-issuing for a slot with a pending invite invalidates the earlier token
// in the same transaction, so at most one invite per slot is redeemable.
func (srv *inviteService) IssueInvite(ctx context.Context, userID uuid.UUID, input *usecase.IssueInviteInput) (*usecase.IssueInviteOutput, error) {
	srv.log(ctx).Info("Issuing invite", slog.Any("weddingID", input.WeddingID), slog.String("slot", input.Slot.String()))

	if !input.Slot.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidFormat, "unknown partner slot")
	}

	var issuedInvite *entity.Invite

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wedding, err := loadOwnedWedding(ctx, repoFactory.WeddingRepo(), userID, input.WeddingID)
		if err != nil {
			return err
		}

		if wedding.PartnerInSlot(input.Slot) != nil {
			return errors.Wrap(domainerrors.ErrSlotOccupied, "slot already has a partner")
		}

		invite, err := issuePartnerInvite(
			ctx,
			repoFactory.InviteRepo(),
			srv.tokenGen,
			wedding.ID,
			input.Name,
			input.Email,
			input.Slot,
			srv.inviteTTL,
		)
		if err != nil {
			return err
		}
		issuedInvite = invite

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute invite issuance transaction", slog.Any("weddingID", input.WeddingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invite issuance transaction")
	}

	acceptURL := buildAcceptURL(srv.acceptBase, issuedInvite.Token)

	// Delivery is asynchronous; a publish failure must not undo the
	// committed invite.
	if err := srv.publisher.PublishInviteIssued(ctx, inviteIssuedEvent(ctx, issuedInvite, acceptURL)); err != nil {
		srv.log(ctx).Warn("Failed to publish invite event", slog.Any("inviteID", issuedInvite.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Invite issued", slog.Any("inviteID", issuedInvite.ID))

	return &usecase.IssueInviteOutput{
		Invite:    issuedInvite,
		AcceptURL: acceptURL,
	}, nil
}

// AcceptInvite redeems a token and attaches the accepting user to the
// invite's partner slot. The invite row is locked for the duration of the
// transaction, so when two users race on the same token exactly one wins and
// the loser observes an already-accepted invite.
func (srv *inviteService) AcceptInvite(ctx context.Context, userID uuid.UUID, token string) (*usecase.AcceptInviteOutput, error) {
	srv.log(ctx).Info("Accepting invite", slog.Any("userID", userID))

	var acceptedInvite *entity.Invite
	var joinedWedding *entity.Wedding

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		inviteRepo := repoFactory.InviteRepo()

		invite, err := inviteRepo.FindByTokenForUpdate(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrInviteNotFound) {
				return errors.Wrap(domainerrors.ErrTokenNotFound, "invite token not found")
			}

			return errors.Wrap(err, "failed to find invite by token")
		}

		if invite.IsAccepted() {
			return errors.Wrap(domainerrors.ErrTokenAlreadyAccepted, "invite already accepted")
		}
		if invite.IsExpired(time.Now()) {
			return errors.Wrap(domainerrors.ErrTokenExpired, "invite has expired")
		}

		weddingRepo := repoFactory.WeddingRepo()

		wedding, err := weddingRepo.FindByIDForUpdate(ctx, invite.WeddingID)
		if err != nil {
			if errors.Is(err, repository.ErrWeddingNotFound) {
				return errors.Wrap(domainerrors.ErrWeddingNotFound, "wedding no longer exists")
			}

			return errors.Wrap(err, "failed to find wedding for invite")
		}

		if err := wedding.AttachPartner(userID, invite.Slot); err != nil {
			return errors.Wrap(err, "cannot attach partner")
		}

		if err := weddingRepo.Update(ctx, wedding); err != nil {
			return errors.Wrap(err, "failed to attach partner to wedding")
		}

		if err := inviteRepo.MarkAccepted(ctx, invite.ID); err != nil {
			return errors.Wrap(err, "failed to mark invite accepted")
		}

		now := time.Now()
		invite.AcceptedAt = &now
		acceptedInvite = invite
		joinedWedding = wedding

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to accept invite", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invite acceptance transaction")
	}

	srv.log(ctx).Debug("Invite accepted", slog.Any("inviteID", acceptedInvite.ID), slog.Any("weddingID", joinedWedding.ID))

	return &usecase.AcceptInviteOutput{
		Wedding: joinedWedding,
		Invite:  acceptedInvite,
	}, nil
}

// ListInvites returns all invites issued for a wedding the user is a partner in.
func (srv *inviteService) ListInvites(ctx context.Context, userID, weddingID uuid.UUID) ([]*entity.Invite, error) {
	if _, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, weddingID); err != nil {
		return nil, err
	}

	invites, err := srv.inviteRepo.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invites")
	}

	return invites, nil
}

// InviteQR renders the accept link of a pending invite as a PNG QR code, for
// printing or sharing outside email.
func (srv *inviteService) InviteQR(ctx context.Context, userID uuid.UUID, token string) ([]byte, error) {
	invite, err := srv.inviteRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenNotFound, "invite token not found")
		}

		return nil, errors.Wrap(err, "failed to find invite by token")
	}

	if _, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, invite.WeddingID); err != nil {
		return nil, err
	}

	if invite.IsAccepted() {
		return nil, errors.Wrap(domainerrors.ErrTokenAlreadyAccepted, "invite already accepted")
	}
	if invite.IsExpired(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrTokenExpired, "invite has expired")
	}

	png, err := srv.qrService.GenerateInviteQR(invite.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invite QR code")
	}

	return png, nil
}
