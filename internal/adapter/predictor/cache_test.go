package predictor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

// --- mock for cache tests ---

type countingPredictor struct {
	regionalCalls int
	coordsCalls   int
	weatherCalls  int
	healthCalls   int
	result        domain.PredictionResponse
	err           error
}

func (m *countingPredictor) PredictRegional(_ context.Context, _ string) (domain.PredictionResponse, error) {
	m.regionalCalls++
	return m.result, m.err
}

func (m *countingPredictor) PredictByCoords(_ context.Context, _, _ float64) (domain.PredictionResponse, error) {
	m.coordsCalls++
	return m.result, m.err
}

func (m *countingPredictor) PredictRegionalWithWeather(_ context.Context, _ string) (domain.PredictionResponse, error) {
	m.weatherCalls++
	return m.result, m.err
}

func (m *countingPredictor) Health(_ context.Context) error {
	m.healthCalls++
	return m.err
}

func chennaiHigh() domain.PredictionResponse {
	return domain.PredictionResponse{
		MainPrediction: domain.PredictionSummary{
			Location:  "Chennai",
			RiskLevel: domain.RiskHigh,
			RiskLabel: "High Risk",
		},
	}
}

// --- CachedPredictor tests ---

func TestCachedPredictor_RegionalCacheHit(t *testing.T) {
	inner := &countingPredictor{result: chennaiHigh()}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	r1, err := cached.PredictRegional(context.Background(), "Chennai")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, r1.MainPrediction.RiskLevel)

	r2, err := cached.PredictRegional(context.Background(), "Chennai")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	assert.Equal(t, 1, inner.regionalCalls, "should only call inner once")
}

func TestCachedPredictor_DifferentKeysMiss(t *testing.T) {
	inner := &countingPredictor{result: chennaiHigh()}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	_, _ = cached.PredictRegional(context.Background(), "Chennai")
	_, _ = cached.PredictRegional(context.Background(), "Kochi")

	assert.Equal(t, 2, inner.regionalCalls)
}

func TestCachedPredictor_EndpointsDoNotCollide(t *testing.T) {
	inner := &countingPredictor{result: chennaiHigh()}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	_, _ = cached.PredictRegional(context.Background(), "Chennai")
	_, _ = cached.PredictRegionalWithWeather(context.Background(), "Chennai")

	assert.Equal(t, 1, inner.regionalCalls)
	assert.Equal(t, 1, inner.weatherCalls, "weather endpoint has its own key space")
}

func TestCachedPredictor_CoordsCacheHit(t *testing.T) {
	inner := &countingPredictor{result: chennaiHigh()}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	_, err := cached.PredictByCoords(context.Background(), 13.0827, 80.2707)
	require.NoError(t, err)
	_, err = cached.PredictByCoords(context.Background(), 13.0827, 80.2707)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.coordsCalls)

	// A different coordinate pair is a different key.
	_, err = cached.PredictByCoords(context.Background(), 9.9312, 76.2673)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.coordsCalls)
}

func TestCachedPredictor_FailuresNotCached(t *testing.T) {
	inner := &countingPredictor{err: domain.ErrUpstreamUnavailable}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	_, err := cached.PredictRegional(context.Background(), "Chennai")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	_, err = cached.PredictRegional(context.Background(), "Chennai")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	assert.Equal(t, 2, inner.regionalCalls, "errors must reach the upstream every time")

	// After the upstream recovers the next call succeeds and is cached.
	inner.err = nil
	inner.result = chennaiHigh()
	_, err = cached.PredictRegional(context.Background(), "Chennai")
	require.NoError(t, err)
	_, _ = cached.PredictRegional(context.Background(), "Chennai")
	assert.Equal(t, 3, inner.regionalCalls)
}

func TestCachedPredictor_Invalidate(t *testing.T) {
	inner := &countingPredictor{result: chennaiHigh()}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	_, _ = cached.PredictRegional(context.Background(), "Chennai")
	_, _ = cached.PredictRegional(context.Background(), "Kochi")
	_, _ = cached.PredictByCoords(context.Background(), 13.0827, 80.2707)
	assert.Equal(t, 3, cached.Len())

	removed := cached.Invalidate()
	assert.Equal(t, 3, removed)
	assert.Equal(t, 0, cached.Len())

	_, _ = cached.PredictRegional(context.Background(), "Chennai")
	assert.Equal(t, 3, inner.regionalCalls, "post-invalidate lookup misses")
}

func TestCachedPredictor_HealthPassesThrough(t *testing.T) {
	inner := &countingPredictor{}
	cached := NewCachedPredictor(inner, observability.NewMetricsForTesting())

	require.NoError(t, cached.Health(context.Background()))
	require.NoError(t, cached.Health(context.Background()))
	assert.Equal(t, 2, inner.healthCalls)

	inner.err = errors.New("down")
	assert.Error(t, cached.Health(context.Background()))
}
