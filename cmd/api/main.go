package main

// @title Drought Monitor API
// @version 1.0.0
// @description Сервис мониторинга засушливости по гридированному индексу SPEI (Standardized Precipitation-Evapotranspiration Index).
// @description
// @description Основные возможности:
// @description - Срезы сетки SPEI за выбранный месяц с категорией и цветом для каждой ячейки
// @description - Описательная статистика по регионам (Global, континенты, произвольный bbox)
// @description - Распределение категорий засушливости по странам континента
// @description - Статические превью карт через Mapbox

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

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

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/drought-monitor/docs/swagger"
	"github.com/drought-monitor/internal/config"
	httpDelivery "github.com/drought-monitor/internal/delivery/http"
	"github.com/drought-monitor/internal/delivery/http/handler"
	"github.com/drought-monitor/internal/infrastructure/mapbox"
	"github.com/drought-monitor/internal/pkg/logger"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/repository/cache"
	"github.com/drought-monitor/internal/repository/netcdf"
	"github.com/drought-monitor/internal/repository/staticdata"
	"github.com/drought-monitor/internal/usecase"
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

	log.Info("Starting Drought Monitor")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset", cfg.Dataset.Path),
	)

	// 3. Open SPEI dataset
	dataset, err := netcdf.Open(&cfg.Dataset, log)
	if err != nil {
		log.Fatal("Failed to open dataset", zap.Error(err))
	}
	defer func() {
		if err := dataset.Close(); err != nil {
			log.Error("Failed to close dataset", zap.Error(err))
		}
	}()

	tr := dataset.TimeRange()
	log.Info("Dataset opened",
		zap.String("variable", dataset.Variable()),
		zap.Int("start_year", tr.StartYear),
		zap.Int("end_year", tr.EndYear),
		zap.Int("months", tr.Months()),
	)

	// 4. Load region reference data
	regionRepo, err := staticdata.NewRegionRepository(&cfg.Regions, log)
	if err != nil {
		log.Fatal("Failed to load region data", zap.Error(err))
	}
	log.Info("Region data loaded", zap.Int("regions", len(regionRepo.Regions())))

	// 5. Connect to Redis
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

	// 6. Health checks and Mapbox token validation
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	mapboxClient := mapbox.NewMapboxClient(&cfg.Mapbox, log)
	if err := mapboxClient.ValidateToken(ctx); err != nil {
		log.Fatal("Mapbox token validation failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories and metrics
	cacheRepo := cache.NewCacheRepository(redisClient)
	m := metrics.New()
	clock := clockwork.NewRealClock()

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	sliceUC := usecase.NewSliceUseCase(
		dataset,
		regionRepo,
		cacheRepo,
		m,
		log,
		cfg.Cache.SliceTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		dataset,
		regionRepo,
		cacheRepo,
		clock,
		m,
		log,
		cfg.Cache.StatsTTL,
	)

	breakdownUC := usecase.NewBreakdownUseCase(
		dataset,
		regionRepo,
		cacheRepo,
		m,
		log,
		cfg.Cache.StatsTTL,
	)

	catalogUC := usecase.NewCatalogUseCase(dataset, regionRepo)

	mapUC := usecase.NewMapUseCase(regionRepo, mapboxClient, m, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	sliceHandler := handler.NewSliceHandler(sliceUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	breakdownHandler := handler.NewBreakdownHandler(breakdownUC, log)
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	mapHandler := handler.NewMapHandler(mapUC, cfg, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		m,
		sliceHandler,
		statsHandler,
		breakdownHandler,
		catalogHandler,
		mapHandler,
	)

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

	if err := dataset.Close(); err != nil {
		log.Error("Failed to close dataset", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
