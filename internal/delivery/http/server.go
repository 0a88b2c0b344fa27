package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/delivery/http/handler"
	"github.com/drought-monitor/internal/delivery/http/middleware"
	"github.com/drought-monitor/internal/pkg/metrics"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	sliceHandler     *handler.SliceHandler
	statsHandler     *handler.StatsHandler
	breakdownHandler *handler.BreakdownHandler
	catalogHandler   *handler.CatalogHandler
	mapHandler       *handler.MapHandler

	metrics *metrics.Metrics
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	sliceHandler *handler.SliceHandler,
	statsHandler *handler.StatsHandler,
	breakdownHandler *handler.BreakdownHandler,
	catalogHandler *handler.CatalogHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Drought Monitor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		sliceHandler:     sliceHandler,
		statsHandler:     statsHandler,
		breakdownHandler: breakdownHandler,
		catalogHandler:   catalogHandler,
		mapHandler:       mapHandler,
		metrics:          m,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus metrics
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog routes
	api.Get("/catalog/regions", s.catalogHandler.ListRegions)
	api.Get("/catalog/time-range", s.catalogHandler.GetTimeRange)

	// Slice routes
	api.Get("/slice", s.sliceHandler.GetSlice)

	// Region aggregation routes
	api.Get("/regions/:name/stats", s.statsHandler.GetRegionStatistics)
	api.Get("/regions/:name/breakdown", s.breakdownHandler.GetBreakdown)

	// Map routes
	api.Get("/map/preview", s.mapHandler.GetRegionPreview)
	api.Get("/config/mapbox", s.mapHandler.GetMapboxConfig)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
