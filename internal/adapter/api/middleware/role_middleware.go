package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/domain/entity"
)

// RoleMiddleware gates routes by the role claim set by AuthMiddleware.
type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

func (m *RoleMiddleware) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
}

// AdminOnly is the common admin gate.
func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}

// Moderation allows admins and moderators.
func (m *RoleMiddleware) Moderation(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin, entity.RoleModerator)(next)
}

// SellerOnly gates the seller surfaces; admins pass as well.
func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleSeller, entity.RoleAdmin)(next)
}
