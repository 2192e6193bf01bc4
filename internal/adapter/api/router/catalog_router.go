package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

// SetupCatalogRouter wires the public browse surfaces: categories and
// banners, plus their admin CRUD.
func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	categoryHandler := handler.GetCategoryHandler()
	bannerHandler := handler.GetBannerHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.GET("/slug/:slug", categoryHandler.GetCategoryBySlug)

	adminCategories := e.Group("/v1/admin/categories")
	adminCategories.Use(authMiddleware.Authenticate)
	adminCategories.Use(roleMiddleware.AdminOnly)
	adminCategories.POST("", categoryHandler.CreateCategory)
	adminCategories.PUT("/:id", categoryHandler.UpdateCategory)
	adminCategories.DELETE("/:id", categoryHandler.DeleteCategory)

	banners := e.Group("/v1/banners")
	banners.GET("", bannerHandler.ListBanners)

	adminBanners := e.Group("/v1/admin/banners")
	adminBanners.Use(authMiddleware.Authenticate)
	adminBanners.Use(roleMiddleware.AdminOnly)
	adminBanners.POST("", bannerHandler.CreateBanner)
	adminBanners.PUT("/:id", bannerHandler.UpdateBanner)
	adminBanners.DELETE("/:id", bannerHandler.DeleteBanner)
}
