// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"vows/internal/delivery/http/response"
	domainerrors "vows/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// getUserID extracts the authenticated user ID set by the auth middleware.
// On failure it writes the 401 response and returns a non-nil error so the
// caller cannot fall through with a zero ID.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		if err := response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token"); err != nil {
			return uuid.Nil, err
		}

		return uuid.Nil, echo.ErrUnauthorized
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter. On failure it writes the 400
// response and returns a non-nil error so the caller cannot fall through
// with a zero ID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		if err := response.BadRequest(c, "INVALID_ID", "Invalid "+name+" parameter"); err != nil {
			return uuid.Nil, err
		}

		return uuid.Nil, echo.ErrBadRequest
	}

	return id, nil
}

// handleAppError renders domain errors with their HTTP mapping and defers
// everything else to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
