package predictor

import (
	"context"
	"fmt"
	"sync"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

// CachedPredictor wraps a Predictor with an in-memory cache. Entries never
// expire on their own; the registry is small and bounded, so the cache is
// flushed explicitly via Invalidate instead of evicted.
type CachedPredictor struct {
	inner   domain.Predictor
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]domain.PredictionResponse
}

// NewCachedPredictor creates a cache decorator around a predictor.
func NewCachedPredictor(inner domain.Predictor, metrics *observability.Metrics) *CachedPredictor {
	return &CachedPredictor{
		inner:   inner,
		metrics: metrics,
		entries: make(map[string]domain.PredictionResponse),
	}
}

func (c *CachedPredictor) PredictRegional(ctx context.Context, location string) (domain.PredictionResponse, error) {
	return c.lookup(ctx, "regional", "regional:"+location, func() (domain.PredictionResponse, error) {
		return c.inner.PredictRegional(ctx, location)
	})
}

func (c *CachedPredictor) PredictByCoords(ctx context.Context, lat, lon float64) (domain.PredictionResponse, error) {
	key := fmt.Sprintf("coords:%.4f_%.4f", lat, lon)
	return c.lookup(ctx, "coords", key, func() (domain.PredictionResponse, error) {
		return c.inner.PredictByCoords(ctx, lat, lon)
	})
}

func (c *CachedPredictor) PredictRegionalWithWeather(ctx context.Context, location string) (domain.PredictionResponse, error) {
	return c.lookup(ctx, "weather", "weather:"+location, func() (domain.PredictionResponse, error) {
		return c.inner.PredictRegionalWithWeather(ctx, location)
	})
}

// Health is never cached.
func (c *CachedPredictor) Health(ctx context.Context) error {
	return c.inner.Health(ctx)
}

// Invalidate drops every cached entry and returns how many were removed.
func (c *CachedPredictor) Invalidate() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]domain.PredictionResponse)
	return n
}

// Len reports the current number of cached entries.
func (c *CachedPredictor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CachedPredictor) lookup(_ context.Context, endpoint, key string, fetch func() (domain.PredictionResponse, error)) (domain.PredictionResponse, error) {
	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		c.metrics.CacheLookups.WithLabelValues(endpoint, "hit").Inc()
		return cached, nil
	}
	c.metrics.CacheLookups.WithLabelValues(endpoint, "miss").Inc()

	resp, err := fetch()
	if err != nil {
		// Failures are never cached so the next call can retry.
		return resp, err
	}

	c.mu.Lock()
	c.entries[key] = resp
	c.mu.Unlock()
	return resp, nil
}
