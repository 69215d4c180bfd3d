package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nimbusid/identity-api/internal/api/metrics"
	"github.com/nimbusid/identity-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved, sanitized user.
const UserContextKey = "current_user"

// Auth is the request-boundary gatekeeper. Per request it extracts the
// bearer token, structurally decodes it, checks the revocation set, and
// resolves the subject to a live account via AuthService.ValidateUser.
// A decoded token alone is never trusted: blocking a user does not
// invalidate outstanding tokens, so the liveness check must run here on
// every protected request.
func Auth(tokens ports.TokenService, auth ports.AuthService, revoked ports.RevocationList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token needed")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token needed")
			}

			claims := tokens.Decode(parts[1])
			if claims == nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token not valid")
			}

			// A check failure counts as not revoked: the liveness check
			// below still rejects blocked accounts, only the
			// before-expiry window widens while Redis is down.
			if isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.UserID); err == nil && isRevoked {
				metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token not valid")
			}

			user, err := auth.ValidateUser(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("rejected_user").Inc()
				return err
			}

			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}
