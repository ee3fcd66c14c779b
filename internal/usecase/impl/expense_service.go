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
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	txManager   repository.TransactionManager
	weddingRepo repository.WeddingRepository
	expenseRepo repository.ExpenseRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// ExpenseServiceParams holds dependencies for ExpenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	WeddingRepo repository.WeddingRepository
	ExpenseRepo repository.ExpenseRepository
	PaymentRepo repository.PaymentRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		txManager:   params.TxManager,
		weddingRepo: params.WeddingRepo,
		expenseRepo: params.ExpenseRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *expenseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateExpense records a budget line item on a wedding the user is a
// partner in.
func (srv *expenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input *usecase.CreateExpenseInput) (*entity.Expense, error) {
	srv.log(ctx).Info("Creating expense", slog.Any("weddingID", input.WeddingID))

	if input.TotalAmount.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrNegativeAmount, "expense total must not be negative")
	}

	var createdExpense *entity.Expense

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedWedding(ctx, repoFactory.WeddingRepo(), userID, input.WeddingID); err != nil {
			return err
		}

		newExpense := &entity.Expense{
			WeddingID:   input.WeddingID,
			Name:        input.Name,
			TotalAmount: input.TotalAmount,
		}

		if err := repoFactory.ExpenseRepo().Create(ctx, newExpense); err != nil {
			return errors.Wrap(err, "failed to create expense")
		}
		createdExpense = newExpense

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute expense creation transaction", slog.Any("weddingID", input.WeddingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute expense creation transaction")
	}

	return createdExpense, nil
}

// ListExpenses returns all expenses of a wedding with their payments and
// derived balances.
func (srv *expenseService) ListExpenses(ctx context.Context, userID, weddingID uuid.UUID) ([]*usecase.ExpenseSummary, error) {
	if _, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, weddingID); err != nil {
		return nil, err
	}

	expenses, err := srv.expenseRepo.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	summaries := make([]*usecase.ExpenseSummary, 0, len(expenses))
	for _, expense := range expenses {
		payments, err := srv.paymentRepo.ListByExpense(ctx, expense.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list payments for expense")
		}

		summaries = append(summaries, buildExpenseSummary(expense, payments))
	}

	return summaries, nil
}

// GetExpense returns a single expense with its payments and derived balances.
func (srv *expenseService) GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*usecase.ExpenseSummary, error) {
	expense, err := srv.loadOwnedExpenseDirect(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.ListByExpense(ctx, expense.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments for expense")
	}

	return buildExpenseSummary(expense, payments), nil
}

// DeleteExpense removes an expense and, through the database cascade, all of
// its payments.
func (srv *expenseService) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedExpense(ctx, repoFactory, userID, expenseID); err != nil {
			return err
		}

		if err := repoFactory.ExpenseRepo().Delete(ctx, expenseID); err != nil {
			return errors.Wrap(err, "failed to delete expense")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute expense deletion transaction", slog.Any("expenseID", expenseID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute expense deletion transaction")
	}

	return nil
}

// RecordPayment applies a payment against an expense. Overpaying is allowed;
// the remaining balance simply goes negative.
func (srv *expenseService) RecordPayment(ctx context.Context, userID uuid.UUID, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Recording payment", slog.Any("expenseID", input.ExpenseID))

	if input.Amount.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrNegativeAmount, "payment amount must not be negative")
	}
	if !input.Method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidFormat, "unknown payment method")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	var recordedPayment *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedExpense(ctx, repoFactory, userID, input.ExpenseID); err != nil {
			return err
		}

		newPayment := &entity.Payment{
			ExpenseID:   input.ExpenseID,
			Amount:      input.Amount,
			Method:      input.Method,
			PaymentDate: paymentDate,
			ReceiptURL:  input.ReceiptURL,
		}

		if err := repoFactory.PaymentRepo().Create(ctx, newPayment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}
		recordedPayment = newPayment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute payment creation transaction", slog.Any("expenseID", input.ExpenseID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment creation transaction")
	}

	return recordedPayment, nil
}

// DeletePayment removes a payment. The payment must belong to the given
// expense, which keeps the route's expense scope honest.
func (srv *expenseService) DeletePayment(ctx context.Context, userID, expenseID, paymentID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedExpense(ctx, repoFactory, userID, expenseID); err != nil {
			return err
		}

		payments, err := repoFactory.PaymentRepo().ListByExpense(ctx, expenseID)
		if err != nil {
			return errors.Wrap(err, "failed to list payments for expense")
		}

		found := false
		for _, p := range payments {
			if p.ID == paymentID {
				found = true

				break
			}
		}
		if !found {
			return errors.Wrap(domainerrors.ErrNotFound, "payment not found on this expense")
		}

		if err := repoFactory.PaymentRepo().Delete(ctx, paymentID); err != nil {
			return errors.Wrap(err, "failed to delete payment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute payment deletion transaction", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute payment deletion transaction")
	}

	return nil
}

// loadOwnedExpenseDirect is the non-transactional variant used by reads.
func (srv *expenseService) loadOwnedExpenseDirect(ctx context.Context, userID, expenseID uuid.UUID) (*entity.Expense, error) {
	expense, err := srv.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrExpenseNotFound, "expense not found")
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	if _, err := loadOwnedWedding(ctx, srv.weddingRepo, userID, expense.WeddingID); err != nil {
		return nil, err
	}

	return expense, nil
}

// loadOwnedExpense fetches an expense and verifies the requesting user is a
// partner in the expense's wedding.
func loadOwnedExpense(ctx context.Context, repoFactory repository.RepositoryFactory, userID, expenseID uuid.UUID) (*entity.Expense, error) {
	expense, err := repoFactory.ExpenseRepo().FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrExpenseNotFound, "expense not found")
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	if _, err := loadOwnedWedding(ctx, repoFactory.WeddingRepo(), userID, expense.WeddingID); err != nil {
		return nil, err
	}

	return expense, nil
}

// buildExpenseSummary derives the paid total and remaining balance for an
// expense from its payments.
func buildExpenseSummary(expense *entity.Expense, payments []*entity.Payment) *usecase.ExpenseSummary {
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	return &usecase.ExpenseSummary{
		Expense:          expense,
		Payments:         payments,
		TotalPaid:        totalPaid,
		RemainingBalance: expense.RemainingBalance(payments),
	}
}
