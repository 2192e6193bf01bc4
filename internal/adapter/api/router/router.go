package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupCatalogRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupReviewRouter(e, authMiddleware, roleMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
