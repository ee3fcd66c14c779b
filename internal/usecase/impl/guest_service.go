// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"vows/config"
	deliverycontext "vows/internal/delivery/context"
	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// guestService implements the GuestUsecase interface.
type guestService struct {
	txManager   repository.TransactionManager
	weddingRepo repository.WeddingRepository
	guestRepo   repository.GuestRepository
	logger      *slog.Logger
}

// GuestServiceParams holds dependencies for GuestService, injected by Fx.
type GuestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	WeddingRepo repository.WeddingRepository
	GuestRepo   repository.GuestRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewGuestService is the constructor for guestService.
func NewGuestService(params GuestServiceParams) usecase.GuestUsecase {
	return &guestService{
		txManager:   params.TxManager,
		weddingRepo: params.WeddingRepo,
		guestRepo:   params.GuestRepo,
		logger:      params.Logger,
	}
}

func (srv *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddGuest appends a guest to the list of a wedding the user is a partner in.
func (srv *guestService) AddGuest(ctx context.Context, userID uuid.UUID, input *usecase.AddGuestInput) (*entity.Guest, error) {
	srv.log(ctx).Info("Adding guest", slog.Any("weddingID", input.WeddingID))

	if !input.Group.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidFormat, "unknown guest group")
	}

	var createdGuest *entity.Guest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedWedding(ctx, repoFactory.WeddingRepo(), userID, input.WeddingID); err != nil {
			return err
		}

		newGuest := &entity.Guest{
			WeddingID: input.WeddingID,
			Name:      input.Name,
			Group:     input.Group,
			Confirmed: false,
		}

		if err := repoFactory.GuestRepo().Create(ctx, newGuest); err != nil {
			return errors.Wrap(err, "failed to create guest")
		}
		createdGuest = newGuest

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute guest creation transaction", slog.Any("weddingID", input.WeddingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute guest creation transaction")
	}

	return createdGuest, nil
}

// ListGuests returns all guests of a wedding the user is a partner in.
func (srv *guestService) ListGuests(ctx context.Context, userID, weddingID uuid.UUID) ([]*entity.Guest, error) {
	if _, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, weddingID); err != nil {
		return nil, err
	}

	guests, err := srv.guestRepo.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	return guests, nil
}

// UpdateGuest patches the provided fields of a guest. Ownership is resolved
// through the guest's wedding.
func (srv *guestService) UpdateGuest(ctx context.Context, userID, guestID uuid.UUID, input *usecase.UpdateGuestInput) (*entity.Guest, error) {
	if input.Group != nil && !input.Group.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidFormat, "unknown guest group")
	}

	var updatedGuest *entity.Guest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guestRepo := repoFactory.GuestRepo()

		guest, err := srv.loadOwnedGuest(ctx, repoFactory, userID, guestID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			guest.Name = *input.Name
		}
		if input.Group != nil {
			guest.Group = *input.Group
		}
		if input.Confirmed != nil {
			guest.Confirmed = *input.Confirmed
		}

		if err := guestRepo.Update(ctx, guest); err != nil {
			return errors.Wrap(err, "failed to update guest")
		}
		updatedGuest = guest

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute guest update transaction", slog.Any("guestID", guestID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute guest update transaction")
	}

	return updatedGuest, nil
}

// DeleteGuest removes a guest from the list.
func (srv *guestService) DeleteGuest(ctx context.Context, userID, guestID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.loadOwnedGuest(ctx, repoFactory, userID, guestID); err != nil {
			return err
		}

		if err := repoFactory.GuestRepo().Delete(ctx, guestID); err != nil {
			return errors.Wrap(err, "failed to delete guest")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute guest deletion transaction", slog.Any("guestID", guestID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute guest deletion transaction")
	}

	return nil
}

// loadOwnedGuest fetches a guest and verifies the requesting user is a
// partner in the guest's wedding.
func (srv *guestService) loadOwnedGuest(ctx context.Context, repoFactory repository.RepositoryFactory, userID, guestID uuid.UUID) (*entity.Guest, error) {
	guest, err := repoFactory.GuestRepo().FindByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGuestNotFound, "guest not found")
		}

		return nil, errors.Wrap(err, "failed to find guest")
	}

	if _, err := loadOwnedWedding(ctx, repoFactory.WeddingRepo(), userID, guest.WeddingID); err != nil {
		return nil, err
	}

	return guest, nil
}
