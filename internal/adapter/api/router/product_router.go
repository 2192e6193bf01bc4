package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()
	reviewHandler := handler.GetReviewHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/slug/:slug", productHandler.GetProductBySlug)
	products.GET("/:id/reviews", reviewHandler.ListProductReviews)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(roleMiddleware.SellerOnly)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.PUT("/:id", productHandler.UpdateProduct)
	myProducts.DELETE("/:id", productHandler.DeleteProduct)

	moderation := e.Group("/v1/admin/products")
	moderation.Use(authMiddleware.Authenticate)
	moderation.Use(roleMiddleware.Moderation)
	moderation.POST("/:id/moderate", productHandler.ModerateProduct)
}
