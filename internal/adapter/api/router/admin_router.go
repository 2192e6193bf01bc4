package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("/dashboard", adminHandler.Dashboard)

	seller := e.Group("/v1/seller")
	seller.Use(authMiddleware.Authenticate)
	seller.Use(roleMiddleware.SellerOnly)
	seller.GET("/dashboard", adminHandler.SellerDashboard)
}
