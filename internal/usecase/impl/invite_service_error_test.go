package impl

import (
	"context"
	"testing"
	"time"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	mockRepo "vows/internal/mocks/repository"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInviteService_IssueInvite_InvalidSlot(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	input := &usecase.IssueInviteInput{
		WeddingID: uuid.New(),
		Email:     "maria@example.com",
		Slot:      entity.PartnerSlot("PARTNER_THREE"),
	}

	output, err := fx.service.IssueInvite(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFormat))
}

func TestInviteService_IssueInvite_SlotOccupied(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	userID := uuid.New()
	partnerTwoID := uuid.New()
	weddingID := uuid.New()
	input := &usecase.IssueInviteInput{
		WeddingID: weddingID,
		Email:     "maria@example.com",
		Slot:      entity.PartnerSlotTwo,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrSlotOccupied, "slot already has a partner"), func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{
				ID:           weddingID,
				PartnerOneID: &userID,
				PartnerTwoID: &partnerTwoID,
			}, nil)
	})

	output, err := fx.service.IssueInvite(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSlotOccupied))
}

func TestInviteService_IssueInvite_Forbidden(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	weddingID := uuid.New()
	input := &usecase.IssueInviteInput{
		WeddingID: weddingID,
		Email:     "maria@example.com",
		Slot:      entity.PartnerSlotTwo,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "user is not a partner in this wedding"), func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &ownerID}, nil)
	})

	output, err := fx.service.IssueInvite(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInviteService_AcceptInvite_TokenNotFound(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrTokenNotFound, "invite token not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)
		factory.EXPECT().InviteRepo().Return(mockInviteRepo)
		mockInviteRepo.EXPECT().
			FindByTokenForUpdate(ctx, "unknown_token").
			Return(nil, repository.ErrInviteNotFound)
	})

	output, err := fx.service.AcceptInvite(ctx, uuid.New(), "unknown_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenNotFound))
}

func TestInviteService_AcceptInvite_AlreadyAccepted(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	acceptedAt := time.Now().Add(-time.Hour)
	invite := &entity.Invite{
		ID:         uuid.New(),
		WeddingID:  uuid.New(),
		Slot:       entity.PartnerSlotTwo,
		Token:      "used_token",
		AcceptedAt: &acceptedAt,
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrTokenAlreadyAccepted, "invite already accepted"), func(factory *mockRepo.MockRepositoryFactory) {
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)
		factory.EXPECT().InviteRepo().Return(mockInviteRepo)
		mockInviteRepo.EXPECT().FindByTokenForUpdate(ctx, "used_token").Return(invite, nil)
	})

	output, err := fx.service.AcceptInvite(ctx, uuid.New(), "used_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenAlreadyAccepted))
}

func TestInviteService_AcceptInvite_Expired(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	invite := &entity.Invite{
		ID:        uuid.New(),
		WeddingID: uuid.New(),
		Slot:      entity.PartnerSlotTwo,
		Token:     "stale_token",
		InvitedAt: time.Now().Add(-96 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrTokenExpired, "invite has expired"), func(factory *mockRepo.MockRepositoryFactory) {
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)
		factory.EXPECT().InviteRepo().Return(mockInviteRepo)
		mockInviteRepo.EXPECT().FindByTokenForUpdate(ctx, "stale_token").Return(invite, nil)
	})

	output, err := fx.service.AcceptInvite(ctx, uuid.New(), "stale_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestInviteService_AcceptInvite_SlotOccupied(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	partnerTwoID := uuid.New()
	weddingID := uuid.New()
	invite := &entity.Invite{
		ID:        uuid.New(),
		WeddingID: weddingID,
		Slot:      entity.PartnerSlotTwo,
		Token:     "invite_token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrSlotOccupied, "slot already has a partner"), func(factory *mockRepo.MockRepositoryFactory) {
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)

		factory.EXPECT().InviteRepo().Return(mockInviteRepo)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)

		mockInviteRepo.EXPECT().FindByTokenForUpdate(ctx, "invite_token").Return(invite, nil)
		mockWeddingRepo.EXPECT().
			FindByIDForUpdate(ctx, weddingID).
			Return(&entity.Wedding{
				ID:           weddingID,
				PartnerOneID: &creatorID,
				PartnerTwoID: &partnerTwoID,
			}, nil)
	})

	output, err := fx.service.AcceptInvite(ctx, uuid.New(), "invite_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSlotOccupied))
}

func TestInviteService_AcceptInvite_AlreadyPartner(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	weddingID := uuid.New()
	invite := &entity.Invite{
		ID:        uuid.New(),
		WeddingID: weddingID,
		Slot:      entity.PartnerSlotTwo,
		Token:     "invite_token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrIdentityAlreadyPartner, "user already occupies a slot in this wedding"), func(factory *mockRepo.MockRepositoryFactory) {
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)

		factory.EXPECT().InviteRepo().Return(mockInviteRepo)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)

		mockInviteRepo.EXPECT().FindByTokenForUpdate(ctx, "invite_token").Return(invite, nil)
		mockWeddingRepo.EXPECT().
			FindByIDForUpdate(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &creatorID}, nil)
	})

	// The creator tries to accept the invite meant for the second partner.
	output, err := fx.service.AcceptInvite(ctx, creatorID, "invite_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityAlreadyPartner))
}

func TestInviteService_InviteQR_Forbidden(t *testing.T) {
	fx := createTestInviteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	weddingID := uuid.New()
	invite := &entity.Invite{
		ID:        uuid.New(),
		WeddingID: weddingID,
		Slot:      entity.PartnerSlotTwo,
		Token:     "invite_token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.inviteRepo.EXPECT().FindByToken(ctx, "invite_token").Return(invite, nil)
	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &ownerID}, nil)

	png, err := fx.service.InviteQR(ctx, uuid.New(), "invite_token")

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
