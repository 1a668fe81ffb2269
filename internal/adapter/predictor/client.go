package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

// Client implements domain.Predictor against the flood prediction model API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	maxRetryTime time.Duration
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// NewClient creates a prediction API client. maxRetryTime bounds the total
// time spent retrying a single request, zero disables retries.
func NewClient(baseURL string, timeout, maxRetryTime time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetryTime: maxRetryTime,
		logger:       logger,
		metrics:      metrics,
	}
}

// PredictRegional fetches a prediction for a named location.
func (c *Client) PredictRegional(ctx context.Context, location string) (domain.PredictionResponse, error) {
	if _, ok := domain.Resolve(location); !ok {
		return domain.PredictionResponse{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, location)
	}
	body := map[string]any{"location": location}
	return c.post(ctx, "/predict_regional", "regional", body)
}

// PredictByCoords fetches a prediction for an arbitrary coordinate pair.
func (c *Client) PredictByCoords(ctx context.Context, lat, lon float64) (domain.PredictionResponse, error) {
	body := map[string]any{"lat": lat, "lon": lon}
	return c.post(ctx, "/predict_by_coords", "coords", body)
}

// PredictRegionalWithWeather fetches a prediction with live weather features.
func (c *Client) PredictRegionalWithWeather(ctx context.Context, location string) (domain.PredictionResponse, error) {
	if _, ok := domain.Resolve(location); !ok {
		return domain.PredictionResponse{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, location)
	}
	body := map[string]any{"location": location}
	return c.post(ctx, "/predict_regional_with_weather", "weather", body)
}

// Health probes the API root.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("health", "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		c.metrics.UpstreamRequests.WithLabelValues("health", "error").Inc()
		return fmt.Errorf("%w: health status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	c.metrics.UpstreamRequests.WithLabelValues("health", "success").Inc()
	return nil
}

func (c *Client) post(ctx context.Context, path, endpoint string, body map[string]any) (domain.PredictionResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.PredictionResponse{}, fmt.Errorf("encode request: %w", err)
	}

	var raw []byte
	operation := func() error {
		var opErr error
		raw, opErr = c.doOnce(ctx, path, endpoint, payload)
		return opErr
	}

	if err := backoff.Retry(operation, c.backoffPolicy(ctx)); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return domain.PredictionResponse{}, err
	}

	resp, err := domain.Normalize(raw)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(endpoint, "malformed").Inc()
		c.logger.Warn("malformed prediction payload", "endpoint", endpoint, "error", err)
		return domain.PredictionResponse{}, err
	}

	c.metrics.UpstreamRequests.WithLabelValues(endpoint, "success").Inc()
	return resp, nil
}

func (c *Client) doOnce(ctx context.Context, path, endpoint string, payload []byte) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		// 5xx responses are transient and retried.
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(fmt.Errorf("%w: status 404", domain.ErrLocationNotFound))
	default:
		// Other 4xx responses will not improve on retry.
		return nil, backoff.Permanent(fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamUnavailable, resp.StatusCode, raw))
	}
}

func (c *Client) backoffPolicy(ctx context.Context) backoff.BackOffContext {
	if c.maxRetryTime <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = c.maxRetryTime
	return backoff.WithContext(policy, ctx)
}
