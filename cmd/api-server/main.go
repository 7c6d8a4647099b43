package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"feedback-service/database"
	"feedback-service/internal/clients"
	"feedback-service/internal/config"
	"feedback-service/internal/http-api/handler"
	"feedback-service/internal/http-api/middleware"
	"feedback-service/internal/http-api/repository"
	"feedback-service/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 2. Structured logger
	logger := newLogger(cfg)

	// 3. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// 4. Wire repositories, clients and services
	ratingRepo := repository.NewRatingRepository(db)
	riderClient := clients.NewRiderClient(cfg.RiderServiceURL, cfg.ClientTimeout, logger)
	tripClient := clients.NewTripClient(cfg.TripServiceURL, cfg.ClientTimeout, logger)
	ratingService := service.NewRatingService(ratingRepo, riderClient, tripClient, cfg.RequireCompletedTrip, logger)

	ratingHandler := handler.NewRatingHandler(ratingService)
	healthHandler := handler.NewHealthHandler(ratingRepo, logger)

	// 5. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/health", healthHandler.Check)

	v1 := r.Group("/v1")
	ratingHandler.RegisterRoutes(v1)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("feedback service listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
