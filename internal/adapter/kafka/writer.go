package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/janrakshak/floodwatch/internal/config"
	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

// Writer publishes prediction snapshots to a Kafka topic so downstream
// consumers (alerting, archival) see every sweep result.
type Writer struct {
	writer  *kafkago.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewWriter creates a Kafka producer for the configured prediction topic.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger, metrics: metrics}
}

// PublishBatch serializes and publishes a sweep's predictions in a single
// WriteMessages call.
func (w *Writer) PublishBatch(ctx context.Context, predictions []domain.PredictionResponse) error {
	if len(predictions) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(predictions))
	for i := range predictions {
		msg, err := serializeToMessage(predictions[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		w.metrics.PublishErrors.Inc()
		return fmt.Errorf("publish predictions: %w", err)
	}
	w.metrics.PredictionsPublished.Add(float64(len(msgs)))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a prediction into a Kafka message keyed by
// location so per-location ordering is preserved across partitions.
func serializeToMessage(p domain.PredictionResponse) (kafkago.Message, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize prediction: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(p.MainPrediction.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "risk_level", Value: []byte(p.MainPrediction.RiskLevel.Name())},
			{Key: "risk_date", Value: []byte(p.MainPrediction.RiskDate)},
		},
	}, nil
}
