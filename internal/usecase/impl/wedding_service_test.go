package impl

import (
	"context"
	"testing"
	"time"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	"vows/internal/domain/service"
	mockRepo "vows/internal/mocks/repository"
	mockSvc "vows/internal/mocks/service"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// weddingServiceFixtures holds all test dependencies for wedding service tests.
type weddingServiceFixtures struct {
	txExpecter

	service     usecase.WeddingUsecase
	weddingRepo *mockRepo.MockWeddingRepository
	tokenGen    *mockSvc.MockInviteTokenGenerator
	publisher   *mockSvc.MockEventPublisher
}

func createTestWeddingService(t *testing.T) weddingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	weddingRepo := mockRepo.NewMockWeddingRepository(t)
	tokenGen := mockSvc.NewMockInviteTokenGenerator(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewWeddingService(WeddingServiceParams{
		TxManager:   txManager,
		WeddingRepo: weddingRepo,
		TokenGen:    tokenGen,
		Publisher:   publisher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return weddingServiceFixtures{
		txExpecter:  txExpecter{t: t, txManager: txManager},
		service:     service,
		weddingRepo: weddingRepo,
		tokenGen:    tokenGen,
		publisher:   publisher,
	}
}

func TestWeddingService_CreateWedding_Success(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	guestCount := 120
	input := &usecase.CreateWeddingInput{
		Title:      "J&M",
		Date:       time.Date(2027, 9, 18, 0, 0, 0, 0, time.UTC),
		Location:   "Lisbon",
		GuestCount: &guestCount,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)

		mockWeddingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Wedding")).
			Run(func(ctx context.Context, wedding *entity.Wedding) {
				wedding.ID = uuid.New()
			}).
			Return(nil)
	})

	output, err := fx.service.CreateWedding(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Title, output.Wedding.Title)
	require.NotNil(t, output.Wedding.PartnerOneID)
	assert.Equal(t, userID, *output.Wedding.PartnerOneID)
	assert.Nil(t, output.Wedding.PartnerTwoID)
	assert.Nil(t, output.Invite)
}

func TestWeddingService_CreateWedding_WithPartnerInvite(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateWeddingInput{
		Title:           "J&M",
		Date:            time.Date(2027, 9, 18, 0, 0, 0, 0, time.UTC),
		PartnerTwoName:  "Maria",
		PartnerTwoEmail: "maria@example.com",
	}

	fx.tokenGen.EXPECT().Generate().Return("invite_token", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockInviteRepo := mockRepo.NewMockInviteRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().InviteRepo().Return(mockInviteRepo)

		mockWeddingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Wedding")).
			Run(func(ctx context.Context, wedding *entity.Wedding) {
				wedding.ID = uuid.New()
			}).
			Return(nil)

		mockInviteRepo.EXPECT().
			DeletePendingBySlot(ctx, mock.AnythingOfType("uuid.UUID"), entity.PartnerSlotTwo).
			Return(0, nil)
		mockInviteRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Invite")).
			Run(func(ctx context.Context, invite *entity.Invite) {
				invite.ID = uuid.New()
			}).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishInviteIssued(ctx, mock.AnythingOfType("*service.InviteIssuedEvent")).
		Run(func(ctx context.Context, event *service.InviteIssuedEvent) {
			assert.Equal(t, "maria@example.com", event.Email)
			assert.Equal(t, entity.PartnerSlotTwo.String(), event.Slot)
			assert.Contains(t, event.AcceptURL, "token=invite_token")
		}).
		Return(nil)

	output, err := fx.service.CreateWedding(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, output.Invite)
	assert.Equal(t, "invite_token", output.Invite.Token)
	assert.Equal(t, entity.PartnerSlotTwo, output.Invite.Slot)
	assert.Equal(t, "maria@example.com", output.Invite.Email)
}

func TestWeddingService_CreateWedding_NegativeGuestCount(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	guestCount := -1
	input := &usecase.CreateWeddingInput{
		Title:      "J&M",
		GuestCount: &guestCount,
	}

	output, err := fx.service.CreateWedding(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWeddingService_GetWedding_Success(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expectedWedding := &entity.Wedding{
		ID:           weddingID,
		Title:        "J&M",
		PartnerOneID: &userID,
	}

	fx.weddingRepo.EXPECT().FindByID(ctx, weddingID).Return(expectedWedding, nil)

	wedding, err := fx.service.GetWedding(ctx, userID, weddingID)

	require.NoError(t, err)
	assert.Equal(t, expectedWedding, wedding)
}

func TestWeddingService_GetWedding_Forbidden(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	weddingID := uuid.New()
	ownerID := uuid.New()

	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &ownerID}, nil)

	wedding, err := fx.service.GetWedding(ctx, uuid.New(), weddingID)

	assert.Error(t, err)
	assert.Nil(t, wedding)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestWeddingService_GetWedding_NotFound(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	weddingID := uuid.New()

	fx.weddingRepo.EXPECT().FindByID(ctx, weddingID).Return(nil, repository.ErrWeddingNotFound)

	wedding, err := fx.service.GetWedding(ctx, uuid.New(), weddingID)

	assert.Error(t, err)
	assert.Nil(t, wedding)
	assert.True(t, errors.Is(err, domainerrors.ErrWeddingNotFound))
}

func TestWeddingService_ListWeddings_Success(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Wedding{
		{ID: uuid.New(), Title: "First", PartnerOneID: &userID},
		{ID: uuid.New(), Title: "Second", PartnerTwoID: &userID},
	}

	fx.weddingRepo.EXPECT().ListByPartner(ctx, userID).Return(expected, nil)

	weddings, err := fx.service.ListWeddings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, weddings)
}

func TestWeddingService_UpdateWedding_Success(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	newLocation := "Porto"
	newGuestCount := 80
	input := &usecase.UpdateWeddingInput{
		Location:   &newLocation,
		GuestCount: &newGuestCount,
	}

	existingWedding := &entity.Wedding{
		ID:           weddingID,
		Title:        "J&M",
		Location:     "Lisbon",
		PartnerOneID: &userID,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		mockWeddingRepo.EXPECT().FindByID(ctx, weddingID).Return(existingWedding, nil)
		mockWeddingRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Wedding")).Return(nil)
	})

	wedding, err := fx.service.UpdateWedding(ctx, userID, weddingID, input)

	require.NoError(t, err)
	assert.Equal(t, newLocation, wedding.Location)
	require.NotNil(t, wedding.GuestCount)
	assert.Equal(t, newGuestCount, *wedding.GuestCount)
}

func TestWeddingService_DeleteWedding_Success(t *testing.T) {
	fx := createTestWeddingService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockWeddingRepo.EXPECT().Delete(ctx, weddingID).Return(nil)
	})

	err := fx.service.DeleteWedding(ctx, userID, weddingID)

	require.NoError(t, err)
}
