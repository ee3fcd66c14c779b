package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	mockUC "vows/internal/mocks/usecase"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExpenseTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestExpenseHandler_Get_Balance(t *testing.T) {
	userID := uuid.New()
	expenseID := uuid.New()
	expenseUC := mockUC.NewMockExpenseUsecase(t)
	handler := &ExpenseHandler{expenseUC: expenseUC, logger: slog.Default()}

	expenseUC.EXPECT().
		GetExpense(mock.Anything, userID, expenseID).
		Return(&usecase.ExpenseSummary{
			Expense: &entity.Expense{
				ID:          expenseID,
				Name:        "Venue",
				TotalAmount: decimal.RequireFromString("10000.00"),
			},
			Payments:         []*entity.Payment{},
			TotalPaid:        decimal.RequireFromString("4000.00"),
			RemainingBalance: decimal.RequireFromString("6000.00"),
		}, nil)

	c, rec := newExpenseTestContext(t, http.MethodGet, "/expenses/"+expenseID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_paid")
	assert.Contains(t, rec.Body.String(), "remaining_balance")
	assert.Contains(t, rec.Body.String(), "6000")
}

func TestExpenseHandler_RecordPayment(t *testing.T) {
	userID := uuid.New()
	expenseID := uuid.New()
	expenseUC := mockUC.NewMockExpenseUsecase(t)
	handler := &ExpenseHandler{expenseUC: expenseUC, logger: slog.Default()}

	expenseUC.EXPECT().
		RecordPayment(mock.Anything, userID, mock.MatchedBy(func(input *usecase.RecordPaymentInput) bool {
			return input.ExpenseID == expenseID &&
				input.Method == entity.PaymentMethodPix &&
				input.Amount.Equal(decimal.RequireFromString("2500.00"))
		})).
		Return(&entity.Payment{
			ID:        uuid.New(),
			ExpenseID: expenseID,
			Amount:    decimal.RequireFromString("2500.00"),
			Method:    entity.PaymentMethodPix,
		}, nil)

	body := `{"amount":"2500.00","method":"PIX"}`
	c, rec := newExpenseTestContext(t, http.MethodPost, "/expenses/"+expenseID.String()+"/payments", body)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	require.NoError(t, handler.RecordPayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestExpenseHandler_RecordPayment_NegativeAmount(t *testing.T) {
	userID := uuid.New()
	expenseID := uuid.New()
	expenseUC := mockUC.NewMockExpenseUsecase(t)
	handler := &ExpenseHandler{expenseUC: expenseUC, logger: slog.Default()}

	expenseUC.EXPECT().
		RecordPayment(mock.Anything, userID, mock.AnythingOfType("*usecase.RecordPaymentInput")).
		Return(nil, domainerrors.ErrNegativeAmount)

	body := `{"amount":"-10.00","method":"PIX"}`
	c, rec := newExpenseTestContext(t, http.MethodPost, "/expenses/"+expenseID.String()+"/payments", body)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	require.NoError(t, handler.RecordPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NEGATIVE_AMOUNT")
}

func TestExpenseHandler_DeletePayment(t *testing.T) {
	userID := uuid.New()
	expenseID := uuid.New()
	paymentID := uuid.New()
	expenseUC := mockUC.NewMockExpenseUsecase(t)
	handler := &ExpenseHandler{expenseUC: expenseUC, logger: slog.Default()}

	expenseUC.EXPECT().
		DeletePayment(mock.Anything, userID, expenseID, paymentID).
		Return(nil)

	c, rec := newExpenseTestContext(t, http.MethodDelete, "/expenses/"+expenseID.String()+"/payments/"+paymentID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id", "paymentID")
	c.SetParamValues(expenseID.String(), paymentID.String())

	require.NoError(t, handler.DeletePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
