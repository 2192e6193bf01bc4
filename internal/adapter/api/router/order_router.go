package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()
	chatHandler := handler.GetChatHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	orders.GET("/:id/messages", chatHandler.ListOrderMessages)
	orders.POST("/:id/messages", chatHandler.SendOrderMessage)

	sellerOrders := e.Group("/v1/seller/orders")
	sellerOrders.Use(authMiddleware.Authenticate)
	sellerOrders.Use(roleMiddleware.SellerOnly)
	sellerOrders.GET("", orderHandler.ListSellerOrders)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListAllOrders)
}
