//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/janrakshak/floodwatch/internal/adapter/kafka"
	"github.com/janrakshak/floodwatch/internal/config"
	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

const testTopic = "test-flood-predictions"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-broker Kafka container and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("floodwatch-test"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestWriterPublishRoundTrip verifies that PublishBatch writes messages a
// consumer can read back with the expected key, headers, and payload.
func TestWriterPublishRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{
		KafkaBrokers: []string{broker},
		KafkaTopic:   testTopic,
	}
	writer := kafkaadapter.NewWriter(cfg, discardLogger(), observability.NewMetricsForTesting())
	t.Cleanup(func() { _ = writer.Close() })

	predictions := []domain.PredictionResponse{
		{
			MainPrediction: domain.PredictionSummary{
				Location:   "Chennai",
				RiskLevel:  domain.RiskHigh,
				RiskLabel:  "High Risk",
				RiskDate:   "2024-11-05",
				Confidence: 91.2,
			},
			DetailedForecast: []domain.ForecastDay{
				{Date: "2024-11-05", RainfallMM: 172.8, RiskLevel: domain.RiskHigh, Confidence: 0.91},
			},
		},
		{
			MainPrediction: domain.PredictionSummary{
				Location:  "Kochi",
				RiskLevel: domain.RiskSafe,
				RiskLabel: "No Significant Risk",
				RiskDate:  "2024-11-05",
			},
		},
	}

	require.NoError(t, writer.PublishBatch(ctx, predictions))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	byLocation := make(map[string]kafkago.Message, len(predictions))
	for range predictions {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from prediction topic")
		byLocation[string(msg.Key)] = msg
	}

	chennai, ok := byLocation["Chennai"]
	require.True(t, ok, "expected a message keyed by Chennai")

	headers := make(map[string]string, len(chennai.Headers))
	for _, h := range chennai.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "high", headers["risk_level"])
	assert.Equal(t, "2024-11-05", headers["risk_date"])

	var decoded domain.PredictionResponse
	require.NoError(t, json.Unmarshal(chennai.Value, &decoded))
	assert.Equal(t, domain.RiskHigh, decoded.MainPrediction.RiskLevel)
	assert.Equal(t, 91.2, decoded.MainPrediction.Confidence)
	require.Len(t, decoded.DetailedForecast, 1)
	assert.Equal(t, 172.8, decoded.DetailedForecast[0].RainfallMM)

	kochi, ok := byLocation["Kochi"]
	require.True(t, ok, "expected a message keyed by Kochi")
	kochiHeaders := make(map[string]string, len(kochi.Headers))
	for _, h := range kochi.Headers {
		kochiHeaders[h.Key] = string(h.Value)
	}
	assert.Equal(t, "safe", kochiHeaders["risk_level"])
}
