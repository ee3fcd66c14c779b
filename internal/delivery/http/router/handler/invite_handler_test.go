package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vows/internal/delivery/http/validator"
	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	mockUC "vows/internal/mocks/usecase"
	"vows/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInviteTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestInviteHandler_Issue(t *testing.T) {
	userID := uuid.New()
	weddingID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	inviteUC.EXPECT().
		IssueInvite(mock.Anything, userID, mock.MatchedBy(func(input *usecase.IssueInviteInput) bool {
			return input.WeddingID == weddingID &&
				input.Email == "partner@example.com" &&
				input.Slot == entity.PartnerSlotTwo
		})).
		Return(&usecase.IssueInviteOutput{
			Invite:    &entity.Invite{ID: uuid.New(), WeddingID: weddingID, Token: "tkn"},
			AcceptURL: "http://localhost:8080/invites/accept?token=tkn",
		}, nil)

	body := `{"name":"Maria","email":"partner@example.com","slot":"PARTNER_TWO"}`
	c, rec := newInviteTestContext(t, http.MethodPost, "/weddings/"+weddingID.String()+"/invites", body)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(weddingID.String())

	require.NoError(t, handler.Issue(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "accept_url")
}

func TestInviteHandler_Issue_NameOptional(t *testing.T) {
	userID := uuid.New()
	weddingID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	inviteUC.EXPECT().
		IssueInvite(mock.Anything, userID, mock.MatchedBy(func(input *usecase.IssueInviteInput) bool {
			return input.Name == "" && input.Email == "partner@example.com"
		})).
		Return(&usecase.IssueInviteOutput{
			Invite:    &entity.Invite{ID: uuid.New(), WeddingID: weddingID, Token: "tkn"},
			AcceptURL: "http://localhost:8080/invites/accept?token=tkn",
		}, nil)

	body := `{"email":"partner@example.com","slot":"PARTNER_ONE"}`
	c, rec := newInviteTestContext(t, http.MethodPost, "/weddings/"+weddingID.String()+"/invites", body)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(weddingID.String())

	require.NoError(t, handler.Issue(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInviteHandler_Issue_InvalidEmail(t *testing.T) {
	userID := uuid.New()
	weddingID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	body := `{"name":"Maria","email":"not-an-email","slot":"PARTNER_TWO"}`
	c, rec := newInviteTestContext(t, http.MethodPost, "/weddings/"+weddingID.String()+"/invites", body)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(weddingID.String())

	require.NoError(t, handler.Issue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestInviteHandler_Accept_QueryToken(t *testing.T) {
	userID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	inviteUC.EXPECT().
		AcceptInvite(mock.Anything, userID, "query_token").
		Return(&usecase.AcceptInviteOutput{
			Wedding: &entity.Wedding{ID: uuid.New(), Title: "Autumn Wedding"},
			Invite:  &entity.Invite{Token: "query_token"},
		}, nil)

	c, rec := newInviteTestContext(t, http.MethodPost, "/invites/accept?token=query_token", "")
	c.Set("userID", userID)

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Autumn Wedding")
}

func TestInviteHandler_Accept_MissingToken(t *testing.T) {
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	c, rec := newInviteTestContext(t, http.MethodPost, "/invites/accept", "")
	c.Set("userID", uuid.New())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInviteHandler_Accept_ExpiredToken(t *testing.T) {
	userID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	inviteUC.EXPECT().
		AcceptInvite(mock.Anything, userID, "stale_token").
		Return(nil, domainerrors.ErrTokenExpired)

	c, rec := newInviteTestContext(t, http.MethodPost, "/invites/accept?token=stale_token", "")
	c.Set("userID", userID)

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestInviteHandler_QR(t *testing.T) {
	userID := uuid.New()
	inviteUC := mockUC.NewMockInviteUsecase(t)
	handler := &InviteHandler{inviteUC: inviteUC, logger: slog.Default()}

	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	inviteUC.EXPECT().
		InviteQR(mock.Anything, userID, "qr_token").
		Return(pngBytes, nil)

	c, rec := newInviteTestContext(t, http.MethodGet, "/invites/qr_token/qr", "")
	c.Set("userID", userID)
	c.SetParamNames("token")
	c.SetParamValues("qr_token")

	require.NoError(t, handler.QR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}
