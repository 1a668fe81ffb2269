package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/sweep"
)

// SnapshotProvider exposes the latest sweep snapshot and readiness state.
type SnapshotProvider interface {
	Snapshot() (*sweep.Snapshot, bool)
	CheckReadiness(ctx context.Context) error
}

// CacheInvalidator flushes the prediction cache. Optional.
type CacheInvalidator interface {
	Invalidate() int
}

// Server exposes the public prediction API plus health, readiness, and
// metrics endpoints.
type Server struct {
	router    *echo.Echo
	addr      string
	predictor domain.Predictor
	snapshots SnapshotProvider
	cache     CacheInvalidator
	logger    *slog.Logger
}

// NewServer wires the echo router. cache may be nil when caching is disabled.
func NewServer(addr string, predictor domain.Predictor, snapshots SnapshotProvider, cache CacheInvalidator, logger *slog.Logger) *Server {
	s := &Server{
		router:    echo.New(),
		addr:      addr,
		predictor: predictor,
		snapshots: snapshots,
		cache:     cache,
		logger:    logger,
	}

	s.router.HideBanner = true
	s.router.HidePort = true
	s.router.Validator = newValidator()
	s.router.HTTPErrorHandler = s.httpErrorHandler
	s.router.Use(middleware.Recover())

	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/readyz", s.handleReady)
	s.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.router.Group("/api/v1")

	predictions := api.Group("/predictions")
	predictions.GET("/coords", s.handlePredictByCoords)
	predictions.GET("/:location", s.handlePredictRegional)
	predictions.GET("/:location/cumulative", s.handleCumulativeRainfall)

	locations := api.Group("/locations")
	locations.GET("", s.handleListLocations)
	locations.GET("/geojson", s.handleLocationsGeoJSON)

	states := api.Group("/states")
	states.GET("", s.handleListStates)
	states.GET("/:state/locations", s.handleStateLocations)

	api.GET("/summary", s.handleSummary)
	api.POST("/accuracy", s.handleAccuracy)
	api.POST("/cache/clear", s.handleCacheClear)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.addr)
	return s.router.Start(s.addr)
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
