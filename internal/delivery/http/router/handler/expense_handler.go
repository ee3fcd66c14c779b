package handler

import (
	"log/slog"
	"net/http"

	"vows/internal/delivery/http/response"
	"vows/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExpenseHandlerParams holds dependencies for ExpenseHandler, injected by Fx.
type ExpenseHandlerParams struct {
	fx.In

	ExpenseUC usecase.ExpenseUsecase
	Logger    *slog.Logger
}

// ExpenseHandler holds dependencies for the expense and payment ledger handlers.
type ExpenseHandler struct {
	expenseUC usecase.ExpenseUsecase
	logger    *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler.
func NewExpenseHandler(params ExpenseHandlerParams) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUC: params.ExpenseUC,
		logger:    params.Logger,
	}
}

// Create handles recording a planned expense on a wedding.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.CreateExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	input.WeddingID = weddingID

	expense, err := h.expenseUC.CreateExpense(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, expense, "Expense created successfully")
}

// List handles retrieving all expenses of a wedding with their balances.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summaries, err := h.expenseUC.ListExpenses(c.Request().Context(), userID, weddingID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries, "Expenses retrieved successfully")
}

// Get handles retrieving a single expense with its payments and balance.
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.expenseUC.GetExpense(c.Request().Context(), userID, expenseID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Expense retrieved successfully")
}

// Delete handles removing an expense together with its payments.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.expenseUC.DeleteExpense(c.Request().Context(), userID, expenseID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Expense deleted successfully"}, "Expense deleted successfully")
}

// RecordPayment handles recording a payment against an expense.
func (h *ExpenseHandler) RecordPayment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.RecordPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	input.ExpenseID = expenseID

	payment, err := h.expenseUC.RecordPayment(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// DeletePayment handles removing a payment from an expense.
func (h *ExpenseHandler) DeletePayment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	paymentID, err := pathUUID(c, "paymentID")
	if err != nil {
		return err
	}

	if err := h.expenseUC.DeletePayment(c.Request().Context(), userID, expenseID, paymentID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment deleted successfully"}, "Payment deleted successfully")
}
