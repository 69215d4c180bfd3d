package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nimbusid/identity-api/internal/api/middleware"
	"github.com/nimbusid/identity-api/internal/core/domain"
)

// currentUser extracts the sanitized user injected by the Auth
// middleware. Its presence proves the gate ran; a handler reached
// without it is a routing mistake, rejected with 401 rather than a
// panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
