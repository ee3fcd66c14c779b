package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func newWeddingTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWeddingHandler_Create(t *testing.T) {
	userID := uuid.New()
	weddingUC := mockUC.NewMockWeddingUsecase(t)
	handler := &WeddingHandler{weddingUC: weddingUC, logger: slog.Default()}

	expected := &usecase.CreateWeddingOutput{
		Wedding: &entity.Wedding{
			ID:           uuid.New(),
			Title:        "Spring Wedding",
			PartnerOneID: &userID,
		},
	}

	weddingUC.EXPECT().
		CreateWedding(mock.Anything, userID, mock.AnythingOfType("*usecase.CreateWeddingInput")).
		Run(func(ctx context.Context, _ uuid.UUID, input *usecase.CreateWeddingInput) {
			assert.Equal(t, "Spring Wedding", input.Title)
			assert.Equal(t, "Lisbon", input.Location)
		}).
		Return(expected, nil)

	body := `{"title":"Spring Wedding","date":"` + time.Now().AddDate(1, 0, 0).Format(time.RFC3339) + `","location":"Lisbon"}`
	c, rec := newWeddingTestContext(t, http.MethodPost, "/weddings", body)
	c.Set("userID", userID)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Spring Wedding")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestWeddingHandler_Create_MissingToken(t *testing.T) {
	weddingUC := mockUC.NewMockWeddingUsecase(t)
	handler := &WeddingHandler{weddingUC: weddingUC, logger: slog.Default()}

	c, rec := newWeddingTestContext(t, http.MethodPost, "/weddings", `{"title":"x"}`)
	// No userID set, as if the auth middleware never ran.

	require.ErrorIs(t, handler.Create(c), echo.ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestWeddingHandler_Get_InvalidID(t *testing.T) {
	weddingUC := mockUC.NewMockWeddingUsecase(t)
	handler := &WeddingHandler{weddingUC: weddingUC, logger: slog.Default()}

	c, rec := newWeddingTestContext(t, http.MethodGet, "/weddings/not-a-uuid", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.ErrorIs(t, handler.Get(c), echo.ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestWeddingHandler_Get_NotOwned(t *testing.T) {
	userID := uuid.New()
	weddingID := uuid.New()
	weddingUC := mockUC.NewMockWeddingUsecase(t)
	handler := &WeddingHandler{weddingUC: weddingUC, logger: slog.Default()}

	weddingUC.EXPECT().
		GetWedding(mock.Anything, userID, weddingID).
		Return(nil, domainerrors.ErrForbidden)

	c, rec := newWeddingTestContext(t, http.MethodGet, "/weddings/"+weddingID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(weddingID.String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestWeddingHandler_List(t *testing.T) {
	userID := uuid.New()
	weddingUC := mockUC.NewMockWeddingUsecase(t)
	handler := &WeddingHandler{weddingUC: weddingUC, logger: slog.Default()}

	weddingUC.EXPECT().
		ListWeddings(mock.Anything, userID).
		Return([]*entity.Wedding{
			{ID: uuid.New(), Title: "First"},
			{ID: uuid.New(), Title: "Second"},
		}, nil)

	c, rec := newWeddingTestContext(t, http.MethodGet, "/weddings", "")
	c.Set("userID", userID)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "Second")
}
