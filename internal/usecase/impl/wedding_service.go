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

// weddingService implements the WeddingUsecase interface.
type weddingService struct {
	txManager   repository.TransactionManager
	weddingRepo repository.WeddingRepository
	tokenGen    service.InviteTokenGenerator
	publisher   service.EventPublisher
	inviteTTL   time.Duration
	acceptBase  string
	logger      *slog.Logger
}

// WeddingServiceParams holds dependencies for WeddingService, injected by Fx.
type WeddingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	WeddingRepo repository.WeddingRepository
	TokenGen    service.InviteTokenGenerator
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewWeddingService is the constructor for weddingService.
func NewWeddingService(params WeddingServiceParams) usecase.WeddingUsecase {
	return &weddingService{
		txManager:   params.TxManager,
		weddingRepo: params.WeddingRepo,
		tokenGen:    params.TokenGen,
		publisher:   params.Publisher,
		inviteTTL:   params.Config.Invite.TTL,
		acceptBase:  params.Config.Invite.AcceptBaseURL,
		logger:      params.Logger,
	}
}

func (srv *weddingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWedding creates a wedding with the requesting user in the first
// partner slot. When the second partner's email is given, an invite for the
// second slot is issued within the same transaction.
func (srv *weddingService) CreateWedding(ctx context.Context, userID uuid.UUID, input *usecase.CreateWeddingInput) (*usecase.CreateWeddingOutput, error) {
	srv.log(ctx).Info("Creating wedding", slog.Any("userID", userID), slog.String("title", input.Title))

	if input.GuestCount != nil && *input.GuestCount < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "guest count must not be negative")
	}

	var createdWedding *entity.Wedding
	var issuedInvite *entity.Invite

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weddingRepo := repoFactory.WeddingRepo()

		creatorID := userID
		newWedding := &entity.Wedding{
			Title:        input.Title,
			Date:         input.Date,
			Location:     input.Location,
			PartnerOneID: &creatorID,
			GuestCount:   input.GuestCount,
		}

		if err := weddingRepo.Create(ctx, newWedding); err != nil {
			return errors.Wrap(err, "failed to create wedding")
		}
		createdWedding = newWedding

		if input.PartnerTwoEmail == "" {
			return nil
		}

		invite, err := issuePartnerInvite(
			ctx,
			repoFactory.InviteRepo(),
			srv.tokenGen,
			newWedding.ID,
			input.PartnerTwoName,
			input.PartnerTwoEmail,
			entity.PartnerSlotTwo,
			srv.inviteTTL,
		)
		if err != nil {
			return err
		}
		issuedInvite = invite

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute wedding creation transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute wedding creation transaction")
	}

	// The invite email is delivered asynchronously; a publish failure must not
	// undo the committed wedding.
	if issuedInvite != nil {
		acceptURL := buildAcceptURL(srv.acceptBase, issuedInvite.Token)
		if err := srv.publisher.PublishInviteIssued(ctx, inviteIssuedEvent(ctx, issuedInvite, acceptURL)); err != nil {
			srv.log(ctx).Warn("Failed to publish invite event", slog.Any("inviteID", issuedInvite.ID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("Wedding created", slog.Any("weddingID", createdWedding.ID))

	return &usecase.CreateWeddingOutput{
		Wedding: createdWedding,
		Invite:  issuedInvite,
	}, nil
}

// GetWedding retrieves a wedding the requesting user is a partner in.
func (srv *weddingService) GetWedding(ctx context.Context, userID, weddingID uuid.UUID) (*entity.Wedding, error) {
	wedding, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, weddingID)
	if err != nil {
		return nil, err
	}

	return wedding, nil
}

// ListWeddings retrieves all weddings where the user occupies a partner slot.
func (srv *weddingService) ListWeddings(ctx context.Context, userID uuid.UUID) ([]*entity.Wedding, error) {
	weddings, err := srv.weddingRepo.ListByPartner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weddings")
	}

	return weddings, nil
}

// UpdateWedding modifies the mutable fields of a wedding the user is a partner in.
func (srv *weddingService) UpdateWedding(ctx context.Context, userID, weddingID uuid.UUID, input *usecase.UpdateWeddingInput) (*entity.Wedding, error) {
	srv.log(ctx).Debug("Updating wedding", slog.Any("weddingID", weddingID))

	if input.GuestCount != nil && *input.GuestCount < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "guest count must not be negative")
	}

	var updatedWedding *entity.Wedding

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weddingRepo := repoFactory.WeddingRepo()

		wedding, err := loadOwnedWedding(ctx, weddingRepo, userID, weddingID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			wedding.Title = *input.Title
		}
		if input.Date != nil {
			wedding.Date = *input.Date
		}
		if input.Location != nil {
			wedding.Location = *input.Location
		}
		if input.GuestCount != nil {
			wedding.GuestCount = input.GuestCount
		}

		if err := weddingRepo.Update(ctx, wedding); err != nil {
			return errors.Wrap(err, "failed to update wedding")
		}
		updatedWedding = wedding

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute wedding update transaction", slog.Any("weddingID", weddingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute wedding update transaction")
	}

	return updatedWedding, nil
}

// DeleteWedding removes a wedding the user is a partner in. Invites, guests,
// expenses and payments go with it through the database's cascade rules.
func (srv *weddingService) DeleteWedding(ctx context.Context, userID, weddingID uuid.UUID) error {
	srv.log(ctx).Info("Deleting wedding", slog.Any("weddingID", weddingID), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weddingRepo := repoFactory.WeddingRepo()

		if _, err := loadOwnedWedding(ctx, weddingRepo, userID, weddingID); err != nil {
			return err
		}

		if err := weddingRepo.Delete(ctx, weddingID); err != nil {
			return errors.Wrap(err, "failed to delete wedding")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute wedding deletion transaction", slog.Any("weddingID", weddingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute wedding deletion transaction")
	}

	return nil
}
