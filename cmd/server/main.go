package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	natsadapter "github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/adapter/messaging/nats"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/adapter/storage/s3"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/config"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/mailer"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/notifier"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/realtime"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/repository"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/router"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v\n", err)
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDB)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))

	// Repositories
	userRepo := repository.NewUserRepository(db, logger)
	propertyRepo := repository.NewPropertyRepository(db, logger)
	inquiryRepo := repository.NewInquiryRepository(db, logger)
	notificationRepo := repository.NewNotificationRepository(db, logger)
	contactRepo := repository.NewContactRepository(db, logger)
	tokenStore := repository.NewTokenStore(redisClient)

	// Platform adapters
	storage, err := s3.NewStorage(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize image storage", zap.Error(err))
	}
	var events *natsadapter.Publisher
	if cfg.NATSURL != "" {
		events, err = natsadapter.NewPublisher(cfg.NATSURL, logger)
		if err != nil {
			logger.Warn("NATS unavailable, lifecycle events disabled", zap.Error(err))
		}
	}
	defer events.Close()
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword, cfg.FromName, cfg.FromEmail, logger)

	hub := realtime.NewHub(logger)
	notify := notifier.New(notificationRepo, hub, userRepo, logger)
	tokens := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	googleVerifier := auth.NewGoogleVerifier(cfg.GoogleClientID)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, googleVerifier, logger)
	propertyUC := usecase.NewPropertyUsecase(propertyRepo, notify, events, storage, logger)
	inquiryUC := usecase.NewInquiryUsecase(inquiryRepo, propertyRepo, userRepo, notify, mail, logger)
	userUC := usecase.NewUserUsecase(userRepo, propertyRepo, notify, logger)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, logger)
	contactUC := usecase.NewContactUsecase(contactRepo, mail, cfg.SMTPEmail, logger)

	bootstrapAdmin(ctx, cfg, userRepo, logger)

	// HTTP surface
	authHandler := handler.NewAuthHandler(authUC, tokens, tokenStore, cfg.SecureCookies, logger)
	propertyHandler := handler.NewPropertyHandler(propertyUC, logger)
	userHandler := handler.NewUserHandler(userUC, logger)
	inquiryHandler := handler.NewInquiryHandler(inquiryUC, logger)
	notificationHandler := handler.NewNotificationHandler(notificationUC, logger)
	contactHandler := handler.NewContactHandler(contactUC, logger)
	wsHandler := handler.NewWSHandler(hub, cfg.ClientOrigin, logger)

	authMW := middleware.JWTAuth(tokens, userRepo, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.ClientOrigin))
	router.SetupAuthRoutes(r, authHandler, authMW)
	router.SetupPropertyRoutes(r, propertyHandler, authMW)
	router.SetupUserRoutes(r, userHandler, authMW)
	router.SetupInquiryRoutes(r, inquiryHandler, authMW)
	router.SetupNotificationRoutes(r, notificationHandler, authMW)
	router.SetupContactRoutes(r, contactHandler, authMW)
	router.SetupWSRoutes(r, wsHandler, authMW)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting HTTP server", zap.String("address", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}

// bootstrapAdmin seeds the first admin account from the environment when
// the database has none. Failures are logged, never fatal.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, userRepo *repository.UserRepository, logger *zap.Logger) {
	if cfg.InitialAdminEmail == "" || cfg.InitialAdminPassword == "" {
		return
	}

	hasAdmin, err := userRepo.HasAdmin(ctx)
	if err != nil {
		logger.Error("Admin bootstrap check failed", zap.Error(err))
		return
	}
	if hasAdmin {
		return
	}

	_, err = userRepo.Create(ctx, &entity.User{
		Name:                    "Admin",
		Email:                   cfg.InitialAdminEmail,
		Password:                cfg.InitialAdminPassword,
		Avatar:                  entity.DefaultAvatarURL,
		Role:                    entity.RoleAdmin,
		AuthProviders:           entity.AuthProviders{Local: true},
		ReceivePushNotification: true,
		SellerApplicationStatus: entity.SellerApplicationNone,
	})
	if err != nil {
		logger.Error("Admin bootstrap failed", zap.String("email", cfg.InitialAdminEmail), zap.Error(err))
		return
	}
	logger.Info("Seeded initial admin account", zap.String("email", cfg.InitialAdminEmail))
}
