package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.DELETE("/me", userHandler.Deactivate)

	users.GET("/me/addresses", userHandler.ListAddresses)
	users.POST("/me/addresses", userHandler.CreateAddress)
	users.PUT("/me/addresses/:id", userHandler.UpdateAddress)
	users.DELETE("/me/addresses/:id", userHandler.DeleteAddress)

	sellers := e.Group("/v1/sellers")
	sellers.GET("/:id", userHandler.GetSellerProfile)

	mySeller := e.Group("/v1/sellers")
	mySeller.Use(authMiddleware.Authenticate)
	mySeller.GET("/me/profile", userHandler.GetMySellerProfile, roleMiddleware.SellerOnly)
	mySeller.POST("/me/profile", userHandler.CreateSellerProfile, roleMiddleware.SellerOnly)
	mySeller.PUT("/me/profile", userHandler.UpdateSellerProfile, roleMiddleware.SellerOnly)
	mySeller.POST("/:id/follow", userHandler.FollowSeller)
	mySeller.DELETE("/:id/follow", userHandler.UnfollowSeller)
	mySeller.GET("/:id/following", userHandler.IsFollowing)

	moderation := e.Group("/v1/admin/sellers")
	moderation.Use(authMiddleware.Authenticate)
	moderation.Use(roleMiddleware.Moderation)
	moderation.POST("/:id/moderate", userHandler.ModerateSellerProfile)
}
