package impl

import (
	"context"
	"testing"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	mockRepo "vows/internal/mocks/repository"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// guestServiceFixtures holds all test dependencies for guest service tests.
type guestServiceFixtures struct {
	txExpecter

	service     usecase.GuestUsecase
	weddingRepo *mockRepo.MockWeddingRepository
	guestRepo   *mockRepo.MockGuestRepository
}

func createTestGuestService(t *testing.T) guestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	weddingRepo := mockRepo.NewMockWeddingRepository(t)
	guestRepo := mockRepo.NewMockGuestRepository(t)

	service := NewGuestService(GuestServiceParams{
		TxManager:   txManager,
		WeddingRepo: weddingRepo,
		GuestRepo:   guestRepo,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return guestServiceFixtures{
		txExpecter:  txExpecter{t: t, txManager: txManager},
		service:     service,
		weddingRepo: weddingRepo,
		guestRepo:   guestRepo,
	}
}

func TestGuestService_AddGuest_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	input := &usecase.AddGuestInput{
		WeddingID: weddingID,
		Name:      "Aunt Rosa",
		Group:     entity.GuestGroupFamily,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockGuestRepo := mockRepo.NewMockGuestRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().GuestRepo().Return(mockGuestRepo)

		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockGuestRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Guest")).
			Run(func(ctx context.Context, guest *entity.Guest) {
				guest.ID = uuid.New()
			}).
			Return(nil)
	})

	guest, err := fx.service.AddGuest(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Aunt Rosa", guest.Name)
	assert.Equal(t, entity.GuestGroupFamily, guest.Group)
	assert.False(t, guest.Confirmed)
}

func TestGuestService_AddGuest_InvalidGroup(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	input := &usecase.AddGuestInput{
		WeddingID: uuid.New(),
		Name:      "Somebody",
		Group:     entity.GuestGroup("COWORKERS"),
	}

	guest, err := fx.service.AddGuest(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, guest)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFormat))
}

func TestGuestService_ListGuests_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expected := []*entity.Guest{
		{ID: uuid.New(), WeddingID: weddingID, Name: "Aunt Rosa", Group: entity.GuestGroupFamily},
		{ID: uuid.New(), WeddingID: weddingID, Name: "Pedro", Group: entity.GuestGroupFriends},
	}

	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerTwoID: &userID}, nil)
	fx.guestRepo.EXPECT().ListByWedding(ctx, weddingID).Return(expected, nil)

	guests, err := fx.service.ListGuests(ctx, userID, weddingID)

	require.NoError(t, err)
	assert.Equal(t, expected, guests)
}

func TestGuestService_ListGuests_Forbidden(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	weddingID := uuid.New()

	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &ownerID}, nil)

	guests, err := fx.service.ListGuests(ctx, uuid.New(), weddingID)

	assert.Error(t, err)
	assert.Nil(t, guests)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestGuestService_UpdateGuest_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	guestID := uuid.New()
	confirmed := true
	newGroup := entity.GuestGroupGodparents
	input := &usecase.UpdateGuestInput{
		Group:     &newGroup,
		Confirmed: &confirmed,
	}

	existingGuest := &entity.Guest{
		ID:        guestID,
		WeddingID: weddingID,
		Name:      "Aunt Rosa",
		Group:     entity.GuestGroupFamily,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockGuestRepo := mockRepo.NewMockGuestRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().GuestRepo().Return(mockGuestRepo)

		mockGuestRepo.EXPECT().FindByID(ctx, guestID).Return(existingGuest, nil)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockGuestRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Guest")).Return(nil)
	})

	guest, err := fx.service.UpdateGuest(ctx, userID, guestID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.GuestGroupGodparents, guest.Group)
	assert.True(t, guest.Confirmed)
}

func TestGuestService_UpdateGuest_NotFound(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	guestID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrGuestNotFound, "guest not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockGuestRepo := mockRepo.NewMockGuestRepository(t)
		factory.EXPECT().GuestRepo().Return(mockGuestRepo)
		mockGuestRepo.EXPECT().FindByID(ctx, guestID).Return(nil, repository.ErrGuestNotFound)
	})

	guest, err := fx.service.UpdateGuest(ctx, uuid.New(), guestID, &usecase.UpdateGuestInput{})

	assert.Error(t, err)
	assert.Nil(t, guest)
	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))
}

func TestGuestService_DeleteGuest_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	guestID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockGuestRepo := mockRepo.NewMockGuestRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().GuestRepo().Return(mockGuestRepo)

		mockGuestRepo.EXPECT().
			FindByID(ctx, guestID).
			Return(&entity.Guest{ID: guestID, WeddingID: weddingID}, nil)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockGuestRepo.EXPECT().Delete(ctx, guestID).Return(nil)
	})

	err := fx.service.DeleteGuest(ctx, userID, guestID)

	require.NoError(t, err)
}
