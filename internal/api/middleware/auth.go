package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/billpie/billpie/internal/core/domain"
)

// IdentityKey is the echo context key under which the verified identity is
// stored.
const IdentityKey = "identity"

// Auth verifies the identity provider's bearer token and injects the
// resulting identity into the context. Requests without a valid token are
// rejected.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			identity, err := parseIdentity(token, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(IdentityKey, *identity)
			return next(c)
		}
	}
}

// OptionalAuth injects the identity when a valid token is present and lets
// the request through anonymously otherwise. The pay-bill flow needs this:
// a signed-out submission is not rejected at the transport layer, it gets
// its intended bill stashed and a sign-in redirect.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token != "" {
				if identity, err := parseIdentity(token, jwtSecret); err == nil {
					c.Set(IdentityKey, *identity)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// parseIdentity validates the token signature and maps the identity
// provider's claims onto domain.Identity. An email claim is mandatory; the
// role defaults to the plain user role.
func parseIdentity(token, jwtSecret string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)
	role, _ := claims["role"].(string)
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	return &domain.Identity{
		Email:      email,
		Name:       name,
		PictureURL: picture,
		Role:       role,
	}, nil
}
