package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bazroba/internal/infrastructure/token"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token and stores uid and role on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}
		// Purpose-bound tokens (password reset) never authenticate requests.
		if claims.Purpose != "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", claims.Subject)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// ParseToken resolves a raw token to a user id; the websocket handler uses
// it for tokens passed as a query parameter.
func (m *AuthMiddleware) ParseToken(tokenString string) (string, error) {
	claims, err := m.tokens.Parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
