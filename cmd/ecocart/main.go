package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecocart/internal/api"
	"ecocart/internal/api/handlers"
	"ecocart/internal/openfoodfacts"
	"ecocart/internal/repository"
	"ecocart/internal/service"
	"ecocart/pkg/auth"
	"ecocart/pkg/config"
	"ecocart/pkg/logger"
	"ecocart/pkg/postgres"

	"go.uber.org/zap"
)

// @title EcoCart API
// @version 1.0
// @description Sustainability-focused product catalog and comparison service

// @contact.name API Support
// @contact.email support@ecocart.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting EcoCart service")

	// Initialize database
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	productRepo := repository.NewProductRepository(db, appLogger)
	comparisonRepo := repository.NewComparisonRepository(db, cfg.Retention.Window, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	productService := service.NewProductService(productRepo, appLogger)

	offClient := openfoodfacts.NewClient(&cfg.OpenFoodFacts, appLogger)
	comparisonService := service.NewComparisonService(comparisonRepo, productRepo, offClient, appLogger)

	// Expired history records are reclaimed in the background
	service.StartRetentionSweeper(ctx, comparisonRepo, cfg.Retention.SweepInterval, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	productHandler := handlers.NewProductHandler(productService, appLogger)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService, productService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, productHandler, comparisonHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
