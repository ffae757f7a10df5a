package handler

import (
	"github.com/labstack/echo/v4"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
)

// principalFrom returns the request's resolved principal, or nil for
// anonymous requests.
func principalFrom(c echo.Context) *auth.Principal {
	principal, _ := c.Get(auth.ContextKey).(*auth.Principal)
	return principal
}

// respondError translates a domain error into the standard error envelope.
func respondError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
