package handler

import (
	"log/slog"
	"net/http"

	"vows/internal/delivery/http/response"
	"vows/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WeddingHandlerParams holds dependencies for WeddingHandler, injected by Fx.
type WeddingHandlerParams struct {
	fx.In

	WeddingUC usecase.WeddingUsecase
	Logger    *slog.Logger
}

// WeddingHandler holds dependencies for wedding management handlers.
type WeddingHandler struct {
	weddingUC usecase.WeddingUsecase
	logger    *slog.Logger
}

// NewWeddingHandler is the constructor for WeddingHandler.
func NewWeddingHandler(params WeddingHandlerParams) *WeddingHandler {
	return &WeddingHandler{
		weddingUC: params.WeddingUC,
		logger:    params.Logger,
	}
}

// Create handles creating a new wedding. The caller takes the first partner
// slot; when second-partner contact details are present an invite is issued
// in the same transaction.
func (h *WeddingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateWeddingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wedding input")
	}

	output, err := h.weddingUC.CreateWedding(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Wedding created successfully")
}

// Get handles retrieving a single wedding.
func (h *WeddingHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	wedding, err := h.weddingUC.GetWedding(c.Request().Context(), userID, weddingID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wedding, "Wedding retrieved successfully")
}

// List handles retrieving all weddings the caller is a partner of.
func (h *WeddingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddings, err := h.weddingUC.ListWeddings(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, weddings, "Weddings retrieved successfully")
}

// Update handles partial updates of a wedding.
func (h *WeddingHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateWeddingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wedding input")
	}

	wedding, err := h.weddingUC.UpdateWedding(c.Request().Context(), userID, weddingID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wedding, "Wedding updated successfully")
}

// Delete handles deleting a wedding and its dependent records.
func (h *WeddingHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.weddingUC.DeleteWedding(c.Request().Context(), userID, weddingID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Wedding deleted successfully"}, "Wedding deleted successfully")
}
