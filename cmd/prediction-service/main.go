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

	"golang-stock-predictor/internal/predictor/config"
	delivery "golang-stock-predictor/internal/predictor/delivery/http"
	_ "golang-stock-predictor/internal/predictor/docs"
	"golang-stock-predictor/internal/predictor/repository"
	"golang-stock-predictor/internal/predictor/service"
	"golang-stock-predictor/pkg/logger"
	"golang-stock-predictor/pkg/postgres"
	"golang-stock-predictor/pkg/redis"
	"golang-stock-predictor/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the prediction service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Prediction Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	upstreamRepo, err := repository.NewUpstreamRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize upstream repository", logger.ErrorField(err))
	}
	historyRepo := repository.NewPredictionHistoryRepository(db.DB)
	cacheRepo := repository.NewPredictionCacheRepository(redisClient)

	// Initialize services
	generator := service.NewSyntheticGenerator(time.Now().UnixNano())
	resultStore := service.NewResultStore()
	predictorSvc, err := service.NewPredictorService(cfg, upstreamRepo, historyRepo, cacheRepo, generator, resultStore, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize predictor service", logger.ErrorField(err))
	}
	chatSvc := service.NewChatService(appLogger)
	catalogSvc := service.NewCatalogService()
	retentionSvc, err := service.NewRetentionService(cfg, historyRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize retention service", logger.ErrorField(err))
	}

	// Start history retention
	utils.GoSafe(func() { retentionSvc.Start(ctx) })

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	predictionHandler := delivery.NewPredictionHandler(predictorSvc, appLogger)
	predictionHandler.RegisterRoutes(apiV1)

	catalogHandler := delivery.NewCatalogHandler(catalogSvc)
	catalogHandler.RegisterRoutes(apiV1)

	chatHandler := delivery.NewChatHandler(chatSvc)
	chatHandler.RegisterRoutes(apiV1)

	healthHandler := delivery.NewHealthHandler()
	healthHandler.RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Prediction API
// @version 1.0
// @description HTTP API for stock price prediction with synthetic fallback.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "prediction-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-predictor.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing prediction-service CLI: %s\n", err)
		os.Exit(1)
	}
}
