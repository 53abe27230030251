package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billpie/billpie/internal/api/middleware"
	"github.com/billpie/billpie/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; absence on a protected route is a
// wiring bug surfaced as 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.Email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// optionalIdentity returns the identity when the OptionalAuth middleware
// verified one, or nil for anonymous callers.
func optionalIdentity(c echo.Context) *domain.Identity {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.Email == "" {
		return nil
	}
	return &identity
}

// sessionKey returns the caller's anonymous session key, used to stash the
// pending bill across a sign-in redirect.
func sessionKey(c echo.Context) string {
	return c.Request().Header.Get("X-Session-Key")
}
