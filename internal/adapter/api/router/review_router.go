package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.CreateReview)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)

	moderation := e.Group("/v1/admin/reviews")
	moderation.Use(authMiddleware.Authenticate)
	moderation.Use(roleMiddleware.Moderation)
	moderation.POST("/:id/visibility", reviewHandler.HideReview)
}
