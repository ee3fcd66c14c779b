package impl

import (
	"context"
	"testing"
	"time"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	mockRepo "vows/internal/mocks/repository"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expenseServiceFixtures holds all test dependencies for expense service tests.
type expenseServiceFixtures struct {
	txExpecter

	service     usecase.ExpenseUsecase
	weddingRepo *mockRepo.MockWeddingRepository
	expenseRepo *mockRepo.MockExpenseRepository
	paymentRepo *mockRepo.MockPaymentRepository
}

func createTestExpenseService(t *testing.T) expenseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	weddingRepo := mockRepo.NewMockWeddingRepository(t)
	expenseRepo := mockRepo.NewMockExpenseRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewExpenseService(ExpenseServiceParams{
		TxManager:   txManager,
		WeddingRepo: weddingRepo,
		ExpenseRepo: expenseRepo,
		PaymentRepo: paymentRepo,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return expenseServiceFixtures{
		txExpecter:  txExpecter{t: t, txManager: txManager},
		service:     service,
		weddingRepo: weddingRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
	}
}

func TestExpenseService_CreateExpense_Success(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	input := &usecase.CreateExpenseInput{
		WeddingID:   weddingID,
		Name:        "Buffet",
		TotalAmount: decimal.RequireFromString("10000.00"),
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)

		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockExpenseRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Expense")).
			Run(func(ctx context.Context, expense *entity.Expense) {
				expense.ID = uuid.New()
			}).
			Return(nil)
	})

	expense, err := fx.service.CreateExpense(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Buffet", expense.Name)
	assert.True(t, expense.TotalAmount.Equal(decimal.RequireFromString("10000.00")))
}

func TestExpenseService_CreateExpense_NegativeAmount(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	input := &usecase.CreateExpenseInput{
		WeddingID:   uuid.New(),
		Name:        "Buffet",
		TotalAmount: decimal.RequireFromString("-1.00"),
	}

	expense, err := fx.service.CreateExpense(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, expense)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeAmount))
}

func TestExpenseService_GetExpense_RemainingBalance(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()

	expense := &entity.Expense{
		ID:          expenseID,
		WeddingID:   weddingID,
		Name:        "Buffet",
		TotalAmount: decimal.RequireFromString("10000.00"),
	}
	payments := []*entity.Payment{
		{ID: uuid.New(), ExpenseID: expenseID, Amount: decimal.RequireFromString("4000.00"), Method: entity.PaymentMethodPix},
		{ID: uuid.New(), ExpenseID: expenseID, Amount: decimal.RequireFromString("3000.00"), Method: entity.PaymentMethodCreditCard},
	}

	fx.expenseRepo.EXPECT().FindByID(ctx, expenseID).Return(expense, nil)
	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
	fx.paymentRepo.EXPECT().ListByExpense(ctx, expenseID).Return(payments, nil)

	summary, err := fx.service.GetExpense(ctx, userID, expenseID)

	require.NoError(t, err)
	assert.True(t, summary.TotalPaid.Equal(decimal.RequireFromString("7000.00")))
	assert.True(t, summary.RemainingBalance.Equal(decimal.RequireFromString("3000.00")))
}

func TestExpenseService_GetExpense_OverpaidGoesNegative(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()

	expense := &entity.Expense{
		ID:          expenseID,
		WeddingID:   weddingID,
		Name:        "Flowers",
		TotalAmount: decimal.RequireFromString("500.00"),
	}
	payments := []*entity.Payment{
		{ID: uuid.New(), ExpenseID: expenseID, Amount: decimal.RequireFromString("650.00"), Method: entity.PaymentMethodCash},
	}

	fx.expenseRepo.EXPECT().FindByID(ctx, expenseID).Return(expense, nil)
	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
	fx.paymentRepo.EXPECT().ListByExpense(ctx, expenseID).Return(payments, nil)

	summary, err := fx.service.GetExpense(ctx, userID, expenseID)

	require.NoError(t, err)
	assert.True(t, summary.RemainingBalance.Equal(decimal.RequireFromString("-150.00")))
}

func TestExpenseService_ListExpenses_Success(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()

	expenses := []*entity.Expense{
		{ID: expenseID, WeddingID: weddingID, Name: "Buffet", TotalAmount: decimal.RequireFromString("10000.00")},
	}

	fx.weddingRepo.EXPECT().
		FindByID(ctx, weddingID).
		Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
	fx.expenseRepo.EXPECT().ListByWedding(ctx, weddingID).Return(expenses, nil)
	fx.paymentRepo.EXPECT().ListByExpense(ctx, expenseID).Return(nil, nil)

	summaries, err := fx.service.ListExpenses(ctx, userID, weddingID)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].TotalPaid.IsZero())
	assert.True(t, summaries[0].RemainingBalance.Equal(decimal.RequireFromString("10000.00")))
}

func TestExpenseService_RecordPayment_Success(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()
	input := &usecase.RecordPaymentInput{
		ExpenseID: expenseID,
		Amount:    decimal.RequireFromString("4000.00"),
		Method:    entity.PaymentMethodPix,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)
		factory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

		mockExpenseRepo.EXPECT().
			FindByID(ctx, expenseID).
			Return(&entity.Expense{ID: expenseID, WeddingID: weddingID}, nil)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockPaymentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Payment")).
			Run(func(ctx context.Context, payment *entity.Payment) {
				payment.ID = uuid.New()
			}).
			Return(nil)
	})

	payment, err := fx.service.RecordPayment(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodPix, payment.Method)
	// An omitted payment date defaults to the time of recording.
	assert.WithinDuration(t, time.Now(), payment.PaymentDate, time.Minute)
}

func TestExpenseService_RecordPayment_NegativeAmount(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	input := &usecase.RecordPaymentInput{
		ExpenseID: uuid.New(),
		Amount:    decimal.RequireFromString("-0.01"),
		Method:    entity.PaymentMethodPix,
	}

	payment, err := fx.service.RecordPayment(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeAmount))
}

func TestExpenseService_RecordPayment_InvalidMethod(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	input := &usecase.RecordPaymentInput{
		ExpenseID: uuid.New(),
		Amount:    decimal.RequireFromString("100.00"),
		Method:    entity.PaymentMethod("CHEQUE"),
	}

	payment, err := fx.service.RecordPayment(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFormat))
}

func TestExpenseService_DeletePayment_Success(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()
	paymentID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)
		factory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

		mockExpenseRepo.EXPECT().
			FindByID(ctx, expenseID).
			Return(&entity.Expense{ID: expenseID, WeddingID: weddingID}, nil)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockPaymentRepo.EXPECT().
			ListByExpense(ctx, expenseID).
			Return([]*entity.Payment{{ID: paymentID, ExpenseID: expenseID}}, nil)
		mockPaymentRepo.EXPECT().Delete(ctx, paymentID).Return(nil)
	})

	err := fx.service.DeletePayment(ctx, userID, expenseID, paymentID)

	require.NoError(t, err)
}

func TestExpenseService_DeletePayment_NotOnExpense(t *testing.T) {
	fx := createTestExpenseService(t)

	ctx := context.Background()
	userID := uuid.New()
	weddingID := uuid.New()
	expenseID := uuid.New()
	paymentID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrNotFound, "payment not found on this expense"), func(factory *mockRepo.MockRepositoryFactory) {
		mockWeddingRepo := mockRepo.NewMockWeddingRepository(t)
		mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

		factory.EXPECT().WeddingRepo().Return(mockWeddingRepo)
		factory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)
		factory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

		mockExpenseRepo.EXPECT().
			FindByID(ctx, expenseID).
			Return(&entity.Expense{ID: expenseID, WeddingID: weddingID}, nil)
		mockWeddingRepo.EXPECT().
			FindByID(ctx, weddingID).
			Return(&entity.Wedding{ID: weddingID, PartnerOneID: &userID}, nil)
		mockPaymentRepo.EXPECT().
			ListByExpense(ctx, expenseID).
			Return([]*entity.Payment{{ID: uuid.New(), ExpenseID: expenseID}}, nil)
	})

	err := fx.service.DeletePayment(ctx, userID, expenseID, paymentID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
