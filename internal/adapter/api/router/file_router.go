package router

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/adapter/api/handler"
	"bazroba/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("/upload", fileHandler.Upload)
	files.POST("/upload-multiple", fileHandler.UploadMultiple)
	files.DELETE("", fileHandler.Delete)
}
