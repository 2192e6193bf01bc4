package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"bazroba/internal/adapter/api"
	"bazroba/internal/adapter/api/handler"
	apimiddleware "bazroba/internal/adapter/api/middleware"
	"bazroba/internal/adapter/api/router"
	"bazroba/internal/adapter/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/internal/infrastructure/oauth"
	"bazroba/internal/infrastructure/sms"
	"bazroba/internal/infrastructure/storage"
	"bazroba/internal/infrastructure/token"
	"bazroba/internal/infrastructure/websocket"
	"bazroba/internal/usecase"
	"bazroba/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	store := docstore.NewStore(firestoreClient)

	userRepo := repository.NewFirestoreUserRepository(store)
	productRepo := repository.NewFirestoreProductRepository(store)
	categoryRepo := repository.NewFirestoreCategoryRepository(store)
	orderRepo := repository.NewFirestoreOrderRepository(store)
	reviewRepo := repository.NewFirestoreReviewRepository(store)
	chatRepo := repository.NewFirestoreChatRepository(store)
	notificationRepo := repository.NewFirestoreNotificationRepository(store)
	wishlistRepo := repository.NewFirestoreWishlistRepository(store)
	bannerRepo := repository.NewFirestoreBannerRepository(store)
	sellerProfileRepo := repository.NewFirestoreSellerProfileRepository(store)
	followRepo := repository.NewFirestoreFollowRepository(store)
	addressRepo := repository.NewFirestoreAddressRepository(store)

	tokenManager := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.ResetTokenTTL)

	var smsSender sms.Sender
	if cfg.TwilioAccountSID != "" {
		smsSender = sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		smsSender = sms.LogSender{}
	}
	smsVerifier := sms.NewVerifier(smsSender)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager, smsVerifier,
		oauth.NewGoogleProvider(), oauth.NewFacebookProvider())
	userUseCase := usecase.NewUserUseCase(userRepo, sellerProfileRepo, followRepo, addressRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, userRepo, sellerProfileRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, notificationUseCase, cfg.CommissionRate)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo, orderRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, orderRepo, productRepo, userRepo, wsManager)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo, categoryRepo)
	bannerUseCase := usecase.NewBannerUseCase(bannerRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderRepo, productRepo, userRepo)

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	roleMiddleware := apimiddleware.NewRoleMiddleware()

	handler.Setup(handler.Dependencies{
		AuthUseCase:         authUseCase,
		UserUseCase:         userUseCase,
		ProductUseCase:      productUseCase,
		CategoryUseCase:     categoryUseCase,
		OrderUseCase:        orderUseCase,
		ReviewUseCase:       reviewUseCase,
		ChatUseCase:         chatUseCase,
		NotificationUseCase: notificationUseCase,
		WishlistUseCase:     wishlistUseCase,
		BannerUseCase:       bannerUseCase,
		AnalyticsUseCase:    analyticsUseCase,
		StorageClient:       storageClient,
		WSManager:           wsManager,
		AuthMiddleware:      authMiddleware,
	})

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
