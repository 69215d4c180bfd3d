package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

// RequireRoles enforces role-based access control against the user
// resolved by Auth. An empty required set admits any authenticated
// user; otherwise the user's role set must intersect it.
func RequireRoles(required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.HasAnyRole(required...) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
