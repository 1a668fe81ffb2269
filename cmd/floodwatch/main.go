package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	kafkaadapter "github.com/janrakshak/floodwatch/internal/adapter/kafka"
	"github.com/janrakshak/floodwatch/internal/adapter/predictor"
	"github.com/janrakshak/floodwatch/internal/api"
	"github.com/janrakshak/floodwatch/internal/config"
	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
	"github.com/janrakshak/floodwatch/internal/sweep"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := predictor.NewClient(cfg.PredictorBaseURL, cfg.PredictorTimeout, cfg.PredictorRetryMaxElapsed, logger, metrics)

	var (
		pred  domain.Predictor = client
		cache *predictor.CachedPredictor
	)
	if cfg.CacheEnabled {
		cache = predictor.NewCachedPredictor(client, metrics)
		pred = cache
		logger.Info("prediction cache enabled")
	} else {
		logger.Info("prediction cache disabled")
	}

	// Kafka publishing is feature-flagged via KAFKA_ENABLED.
	var (
		publisher sweep.Publisher
		writer    *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger, metrics)
		publisher = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	sweeper := sweep.New(pred, publisher, logger, metrics, cfg.SweepInterval, cfg.SweepConcurrency)

	var invalidator api.CacheInvalidator
	if cache != nil {
		invalidator = cache
	}
	srv := api.NewServer(cfg.HTTPAddr, pred, sweeper, invalidator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start background sweep.
	if cfg.SweepEnabled {
		go func() {
			if err := sweeper.Run(ctx); err != nil {
				logger.Error("sweeper error", "error", err)
			}
		}()
	} else {
		logger.Info("background sweep disabled")
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
