package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-sms", authHandler.VerifySms)
	auth.POST("/resend-sms", authHandler.ResendSms)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/google", authHandler.GoogleLogin)
	auth.POST("/facebook", authHandler.FacebookLogin)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/change-password", authHandler.ChangePassword)
}
