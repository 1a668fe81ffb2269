package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Prediction API configuration.
	PredictorBaseURL         string
	PredictorTimeout         time.Duration
	PredictorRetryMaxElapsed time.Duration
	CacheEnabled             bool

	// Background sweep configuration.
	SweepEnabled     bool
	SweepInterval    time.Duration
	SweepConcurrency int

	// Kafka publishing configuration.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("PREDICTOR_BASE_URL", "http://localhost:8000")
	v.SetDefault("PREDICTOR_TIMEOUT", "30s")
	v.SetDefault("PREDICTOR_RETRY_MAX_ELAPSED", "20s")
	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("SWEEP_ENABLED", true)
	v.SetDefault("SWEEP_INTERVAL", "15m")
	v.SetDefault("SWEEP_CONCURRENCY", 8)
	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "flood-predictions")

	cfg := &Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		PredictorBaseURL:         strings.TrimRight(v.GetString("PREDICTOR_BASE_URL"), "/"),
		PredictorTimeout:         v.GetDuration("PREDICTOR_TIMEOUT"),
		PredictorRetryMaxElapsed: v.GetDuration("PREDICTOR_RETRY_MAX_ELAPSED"),
		CacheEnabled:             v.GetBool("CACHE_ENABLED"),

		SweepEnabled:     v.GetBool("SWEEP_ENABLED"),
		SweepInterval:    v.GetDuration("SWEEP_INTERVAL"),
		SweepConcurrency: v.GetInt("SWEEP_CONCURRENCY"),

		KafkaEnabled: v.GetBool("KAFKA_ENABLED"),
		KafkaBrokers: splitBrokers(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   strings.TrimSpace(v.GetString("KAFKA_TOPIC")),
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	if cfg.PredictorBaseURL == "" {
		return nil, errors.New("PREDICTOR_BASE_URL is required")
	}
	if cfg.PredictorTimeout <= 0 {
		return nil, errors.New("invalid PREDICTOR_TIMEOUT")
	}
	if cfg.PredictorRetryMaxElapsed < 0 {
		return nil, errors.New("invalid PREDICTOR_RETRY_MAX_ELAPSED")
	}
	if cfg.SweepEnabled && cfg.SweepInterval <= 0 {
		return nil, errors.New("invalid SWEEP_INTERVAL")
	}
	if cfg.SweepConcurrency < 1 || cfg.SweepConcurrency > 64 {
		return nil, fmt.Errorf("SWEEP_CONCURRENCY must be between 1 and 64, got %d", cfg.SweepConcurrency)
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is empty")
		}
	}

	return cfg, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
