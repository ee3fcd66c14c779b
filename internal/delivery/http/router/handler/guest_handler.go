package handler

import (
	"log/slog"
	"net/http"

	"vows/internal/delivery/http/response"
	"vows/internal/domain/entity"
	"vows/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuestHandlerParams holds dependencies for GuestHandler, injected by Fx.
type GuestHandlerParams struct {
	fx.In

	GuestUC usecase.GuestUsecase
	Logger  *slog.Logger
}

// GuestHandler holds dependencies for guest list handlers.
type GuestHandler struct {
	guestUC usecase.GuestUsecase
	logger  *slog.Logger
}

// NewGuestHandler is the constructor for GuestHandler.
func NewGuestHandler(params GuestHandlerParams) *GuestHandler {
	return &GuestHandler{
		guestUC: params.GuestUC,
		logger:  params.Logger,
	}
}

// AddGuestRequest represents the request body for adding a guest.
type AddGuestRequest struct {
	Name  string `json:"name" validate:"required"`
	Group string `json:"group" validate:"required"`
}

// Add handles adding a guest to a wedding.
func (h *GuestHandler) Add(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AddGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddGuestInput{
		WeddingID: weddingID,
		Name:      req.Name,
		Group:     entity.GuestGroup(req.Group),
	}

	guest, err := h.guestUC.AddGuest(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, guest, "Guest added successfully")
}

// List handles retrieving a wedding's guest list.
func (h *GuestHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	guests, err := h.guestUC.ListGuests(c.Request().Context(), userID, weddingID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, guests, "Guests retrieved successfully")
}

// Update handles partial updates of a guest record.
func (h *GuestHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	guestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateGuestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}

	guest, err := h.guestUC.UpdateGuest(c.Request().Context(), userID, guestID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, guest, "Guest updated successfully")
}

// Delete handles removing a guest from the list.
func (h *GuestHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	guestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.guestUC.DeleteGuest(c.Request().Context(), userID, guestID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Guest deleted successfully"}, "Guest deleted successfully")
}
