package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)
	chat.POST("/messages", chatHandler.SendDirectMessage)
	chat.GET("/conversations/:id", chatHandler.ListConversation)
	chat.POST("/messages/:id/read", chatHandler.MarkMessageRead)

	// Handshake auth happens inside the handler via the token query param.
	e.GET("/ws", handler.GetWebSocketHandler().HandleWebSocket)
}
