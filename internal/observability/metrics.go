package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// prediction service.
type Metrics struct {
	// Upstream prediction API metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: endpoint={regional,coords,weather,health}, outcome={success,error,malformed}
	UpstreamDuration *prometheus.HistogramVec // labels: endpoint
	CacheLookups     *prometheus.CounterVec   // labels: endpoint, result={hit,miss}

	// Sweep metrics.
	SweepRunning     prometheus.Gauge
	SweepDuration    prometheus.Histogram
	SweepResults     *prometheus.CounterVec // labels: outcome={success,failure}
	SweepLastSuccess prometheus.Gauge       // unix timestamp of the last sweep with any successes

	// Kafka publish metrics.
	PredictionsPublished prometheus.Counter
	PublishErrors        prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "upstream_requests_total",
			Help:      "Prediction API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "floodwatch",
			Name:      "upstream_request_duration_seconds",
			Help:      "Prediction API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "prediction_cache_total",
			Help:      "Prediction cache lookups by endpoint and result.",
		}, []string{"endpoint", "result"}),
		SweepRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floodwatch",
			Name:      "sweep_running",
			Help:      "1 while a location sweep is in progress, 0 otherwise.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "floodwatch",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a complete location sweep.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		}),
		SweepResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "sweep_locations_total",
			Help:      "Per-location sweep results by outcome.",
		}, []string{"outcome"}),
		SweepLastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floodwatch",
			Name:      "sweep_last_success_timestamp_seconds",
			Help:      "Unix time of the last sweep that fetched at least one prediction.",
		}),
		PredictionsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "predictions_published_total",
			Help:      "Total prediction snapshots written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "publish_errors_total",
			Help:      "Total failed Kafka publish attempts.",
		}),
	}

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheLookups,
		m.SweepRunning,
		m.SweepDuration,
		m.SweepResults,
		m.SweepLastSuccess,
		m.PredictionsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "floodwatch", Name: "upstream_requests_total"}, []string{"endpoint", "outcome"}),
		UpstreamDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "floodwatch", Name: "upstream_request_duration_seconds"}, []string{"endpoint"}),
		CacheLookups:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "floodwatch", Name: "prediction_cache_total"}, []string{"endpoint", "result"}),
		SweepRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "floodwatch", Name: "sweep_running"}),
		SweepDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "floodwatch", Name: "sweep_duration_seconds"}),
		SweepResults:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "floodwatch", Name: "sweep_locations_total"}, []string{"outcome"}),
		SweepLastSuccess:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "floodwatch", Name: "sweep_last_success_timestamp_seconds"}),
		PredictionsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "floodwatch", Name: "predictions_published_total"}),
		PublishErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "floodwatch", Name: "publish_errors_total"}),
	}
}
