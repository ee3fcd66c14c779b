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

// InviteHandlerParams holds dependencies for InviteHandler, injected by Fx.
type InviteHandlerParams struct {
	fx.In

	InviteUC usecase.InviteUsecase
	Logger   *slog.Logger
}

// InviteHandler holds dependencies for partner invite handlers.
type InviteHandler struct {
	inviteUC usecase.InviteUsecase
	logger   *slog.Logger
}

// NewInviteHandler is the constructor for InviteHandler.
func NewInviteHandler(params InviteHandlerParams) *InviteHandler {
	return &InviteHandler{
		inviteUC: params.InviteUC,
		logger:   params.Logger,
	}
}

// IssueInviteRequest represents the request body for issuing a partner invite.
type IssueInviteRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Slot  string `json:"slot" validate:"required"`
}

// AcceptInviteRequest represents the request body for redeeming an invite token.
type AcceptInviteRequest struct {
	Token string `json:"token"`
}

// Issue handles issuing a partner invite for a wedding slot.
func (h *InviteHandler) Issue(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req IssueInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.IssueInviteInput{
		WeddingID: weddingID,
		Name:      req.Name,
		Email:     req.Email,
		Slot:      entity.PartnerSlot(req.Slot),
	}

	output, err := h.inviteUC.IssueInvite(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Invite issued successfully")
}

// Accept handles redeeming an invite token. The token may come from the
// request body or from the query string of the accept link.
func (h *InviteHandler) Accept(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AcceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}

	token := req.Token
	if token == "" {
		token = c.QueryParam("token")
	}
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invite token is required")
	}

	output, err := h.inviteUC.AcceptInvite(c.Request().Context(), userID, token)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Invite accepted successfully")
}

// List handles retrieving all invites issued for a wedding.
func (h *InviteHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	weddingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	invites, err := h.inviteUC.ListInvites(c.Request().Context(), userID, weddingID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invites, "Invites retrieved successfully")
}

// QR renders the accept link of a pending invite as a PNG QR code.
func (h *InviteHandler) QR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invite token is required")
	}

	png, err := h.inviteUC.InviteQR(c.Request().Context(), userID, token)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
