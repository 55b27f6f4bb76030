package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kantinkampus/app/echo-server/router"
	"kantinkampus/business/cart"
	"kantinkampus/business/favorite"
	"kantinkampus/business/menu"
	notifService "kantinkampus/business/notification"
	"kantinkampus/business/orders"
	"kantinkampus/business/review"
	"kantinkampus/business/stand"
	"kantinkampus/business/stats"
	userService "kantinkampus/business/user"
	"kantinkampus/internal/middleware"
	mailjetRepo "kantinkampus/internal/repository/notification"
	psqlRepo "kantinkampus/internal/repository/postgres"
	redisRepo "kantinkampus/internal/repository/redis"
	"kantinkampus/internal/rest"
	"kantinkampus/pkg/config"
	"kantinkampus/pkg/database"
	redisdb "kantinkampus/pkg/database/redis"
	"kantinkampus/pkg/logger"
	"kantinkampus/pkg/metrics"
	"kantinkampus/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting KantinKampus", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey, cfg.JWT.TTL)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	logger.Info("Redis connected successfully")

	// Init notification from mailjet, optional
	var emailRepo notifService.EmailRepository
	if cfg.Mailjet.MailjetBaseUrl != "" {
		emailRepo = mailjetRepo.NewMailjetRepository(
			mailjetRepo.MailjetConfig{
				MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
				MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
				MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
				MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
				MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
			},
		)
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	standRepo := psqlRepo.NewStandRepository(db)
	menuRepo := psqlRepo.NewMenuRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	favoriteRepo := psqlRepo.NewFavoriteRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	notifRepo := psqlRepo.NewNotificationRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, tokenRepo, validate)
	standService := stand.NewStandService(standRepo)
	menuService := menu.NewMenuService(menuRepo, standRepo)
	cartService := cart.NewCartService(cartRepo, menuRepo)
	notificationService := notifService.NewNotificationService(notifRepo, userRepo, emailRepo)
	ordersService := orders.NewOrdersService(ordersRepo, cartRepo, standRepo, notificationService)
	favoriteService := favorite.NewFavoriteService(favoriteRepo, menuRepo)
	reviewService := review.NewReviewService(reviewRepo, menuRepo)
	statsService := stats.NewStatsService(ordersRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	standHandler := rest.NewStandHandler(standService)
	menuHandler := rest.NewMenuHandler(menuService)
	cartHandler := rest.NewCartHandler(cartService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	favoriteHandler := rest.NewFavoriteHandler(favoriteService)
	reviewHandler := rest.NewReviewHandler(reviewService)
	notificationHandler := rest.NewNotificationHandler(notificationService)
	statsHandler := rest.NewStatsHandler(statsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(usrService)
	sellerOnly := middleware.SellerOnly()
	buyerOnly := middleware.BuyerOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupStandRoutes(api, standHandler, authRequired, sellerOnly)
	router.SetupMenuRoutes(api, menuHandler, reviewHandler, authRequired, sellerOnly, buyerOnly)
	router.SetupCartRoutes(api, cartHandler, authRequired, buyerOnly)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired, sellerOnly, buyerOnly)
	router.SetupFavoriteRoutes(api, favoriteHandler, authRequired, buyerOnly)
	router.SetupNotificationRoutes(api, notificationHandler, authRequired)
	router.SetupStatsRoutes(api, statsHandler, authRequired, sellerOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	redisdb.CloseRedisClient(redisClient)

	logger.Info("Server stopped")
}
