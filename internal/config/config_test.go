package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8000", cfg.PredictorBaseURL)
	assert.Equal(t, 30*time.Second, cfg.PredictorTimeout)
	assert.Equal(t, 20*time.Second, cfg.PredictorRetryMaxElapsed)
	assert.True(t, cfg.CacheEnabled)
	assert.True(t, cfg.SweepEnabled)
	assert.Equal(t, 15*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 8, cfg.SweepConcurrency)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "flood-predictions", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("PREDICTOR_BASE_URL", "https://model.example.com/")
	t.Setenv("PREDICTOR_TIMEOUT", "10s")
	t.Setenv("PREDICTOR_RETRY_MAX_ELAPSED", "5s")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("SWEEP_ENABLED", "true")
	t.Setenv("SWEEP_INTERVAL", "5m")
	t.Setenv("SWEEP_CONCURRENCY", "16")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-predictions")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://model.example.com", cfg.PredictorBaseURL, "trailing slash stripped")
	assert.Equal(t, 10*time.Second, cfg.PredictorTimeout)
	assert.Equal(t, 5*time.Second, cfg.PredictorRetryMaxElapsed)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 16, cfg.SweepConcurrency)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-predictions", cfg.KafkaTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidPredictorTimeout(t *testing.T) {
	t.Setenv("PREDICTOR_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PREDICTOR_TIMEOUT")
}

func TestLoad_EmptyPredictorBaseURL(t *testing.T) {
	t.Setenv("PREDICTOR_BASE_URL", "/")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PREDICTOR_BASE_URL")
}

func TestLoad_InvalidSweepInterval(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWEEP_INTERVAL")
}

func TestLoad_SweepDisabledSkipsIntervalCheck(t *testing.T) {
	t.Setenv("SWEEP_ENABLED", "false")
	t.Setenv("SWEEP_INTERVAL", "0s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SweepEnabled)
}

func TestLoad_SweepConcurrencyBounds(t *testing.T) {
	t.Setenv("SWEEP_CONCURRENCY", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWEEP_CONCURRENCY")

	t.Setenv("SWEEP_CONCURRENCY", "999")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWEEP_CONCURRENCY")
}

func TestLoad_KafkaEnabledRequiresBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_KafkaEnabledRequiresTopic(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_TOPIC", "   ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_TOPIC")
}
