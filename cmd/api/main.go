package main

// @title Venue Microservice API
// @version 1.0.0
// @description Микросервис каталога заведений. Предоставляет API для поиска ближайших опубликованных заведений, построения маршрутов через Mapbox Directions с кешированием, а также создания, модерации и bulk-импорта заведений.

// @contact.name API Support
// @contact.email support@venue-microservice.com

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/venue-microservice/docs"
	"github.com/venue-microservice/internal/config"
	httpDelivery "github.com/venue-microservice/internal/delivery/http"
	"github.com/venue-microservice/internal/delivery/http/handler"
	"github.com/venue-microservice/internal/infrastructure/mapbox"
	"github.com/venue-microservice/internal/pkg/logger"
	"github.com/venue-microservice/internal/repository/cache"
	"github.com/venue-microservice/internal/repository/memory"
	"github.com/venue-microservice/internal/repository/postgres"
	redisRepo "github.com/venue-microservice/internal/repository/redis"
	"github.com/venue-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Venue Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	venueRepo := postgres.NewVenueRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	directionsClient := mapbox.NewDirectionsClient(&cfg.Mapbox, log)

	log.Info("Repositories initialized")

	// 7. Initialize in-memory caches
	nearbyCache := memory.NewNearbyCache(cfg.Cache.NearbyCacheTTL, cfg.Cache.NearbyCacheSize)
	routeCache := memory.NewRouteCache(cfg.Cache.RouteCacheTTL, cfg.Cache.RouteCacheSize)

	// 8. Initialize Use Cases
	nearbyUC := usecase.NewNearbyUseCase(venueRepo, nearbyCache, log)
	routeUC := usecase.NewRouteUseCase(directionsClient, routeCache, log)
	venueUC := usecase.NewVenueUseCase(venueRepo, streamRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	venueHandler := handler.NewVenueHandler(nearbyUC, venueUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, venueHandler, routeHandler)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
