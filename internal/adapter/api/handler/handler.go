package handler

import (
	"bazroba/internal/adapter/api/middleware"
	"bazroba/internal/infrastructure/storage"
	"bazroba/internal/infrastructure/websocket"
	"bazroba/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	productHandler      *ProductHandler
	categoryHandler     *CategoryHandler
	orderHandler        *OrderHandler
	reviewHandler       *ReviewHandler
	chatHandler         *ChatHandler
	notificationHandler *NotificationHandler
	wishlistHandler     *WishlistHandler
	bannerHandler       *BannerHandler
	adminHandler        *AdminHandler
	fileHandler         *FileHandler
	websocketHandler    *WebSocketHandler
	healthHandler       *HealthHandler
)

type Dependencies struct {
	AuthUseCase         *usecase.AuthUseCase
	UserUseCase         *usecase.UserUseCase
	ProductUseCase      *usecase.ProductUseCase
	CategoryUseCase     *usecase.CategoryUseCase
	OrderUseCase        *usecase.OrderUseCase
	ReviewUseCase       *usecase.ReviewUseCase
	ChatUseCase         *usecase.ChatUseCase
	NotificationUseCase *usecase.NotificationUseCase
	WishlistUseCase     *usecase.WishlistUseCase
	BannerUseCase       *usecase.BannerUseCase
	AnalyticsUseCase    *usecase.AnalyticsUseCase
	StorageClient       *storage.CloudStorageClient
	WSManager           *websocket.Manager
	AuthMiddleware      *middleware.AuthMiddleware
}

func Setup(deps Dependencies) {
	authHandler = NewAuthHandler(deps.AuthUseCase)
	userHandler = NewUserHandler(deps.UserUseCase)
	productHandler = NewProductHandler(deps.ProductUseCase)
	categoryHandler = NewCategoryHandler(deps.CategoryUseCase)
	orderHandler = NewOrderHandler(deps.OrderUseCase)
	reviewHandler = NewReviewHandler(deps.ReviewUseCase)
	chatHandler = NewChatHandler(deps.ChatUseCase)
	notificationHandler = NewNotificationHandler(deps.NotificationUseCase)
	wishlistHandler = NewWishlistHandler(deps.WishlistUseCase)
	bannerHandler = NewBannerHandler(deps.BannerUseCase)
	adminHandler = NewAdminHandler(deps.AnalyticsUseCase)
	fileHandler = NewFileHandler(deps.StorageClient)
	websocketHandler = NewWebSocketHandler(deps.WSManager, deps.AuthMiddleware)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler                 { return authHandler }
func GetUserHandler() *UserHandler                 { return userHandler }
func GetProductHandler() *ProductHandler           { return productHandler }
func GetCategoryHandler() *CategoryHandler         { return categoryHandler }
func GetOrderHandler() *OrderHandler               { return orderHandler }
func GetReviewHandler() *ReviewHandler             { return reviewHandler }
func GetChatHandler() *ChatHandler                 { return chatHandler }
func GetNotificationHandler() *NotificationHandler { return notificationHandler }
func GetWishlistHandler() *WishlistHandler         { return wishlistHandler }
func GetBannerHandler() *BannerHandler             { return bannerHandler }
func GetAdminHandler() *AdminHandler               { return adminHandler }
func GetFileHandler() *FileHandler                 { return fileHandler }
func GetWebSocketHandler() *WebSocketHandler       { return websocketHandler }
func GetHealthHandler() *HealthHandler             { return healthHandler }
