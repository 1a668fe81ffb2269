package domain

import (
	"context"
	"errors"
)

// ErrLocationNotFound marks a lookup for a location the registry does not
// support. Non-fatal: callers surface it as "unsupported location".
var ErrLocationNotFound = errors.New("location not supported")

// ErrUpstreamUnavailable marks a request-level failure against the prediction
// API (timeout, DNS, 5xx). One location's failure never aborts a batch.
var ErrUpstreamUnavailable = errors.New("prediction API unavailable")

// Predictor fetches flood predictions from the remote model.
type Predictor interface {
	// PredictRegional predicts for a named location, including sibling
	// locations in the same state.
	PredictRegional(ctx context.Context, location string) (PredictionResponse, error)

	// PredictByCoords predicts for an arbitrary coordinate pair.
	PredictByCoords(ctx context.Context, lat, lon float64) (PredictionResponse, error)

	// PredictRegionalWithWeather predicts for a named location with current
	// weather conditions folded into the model features.
	PredictRegionalWithWeather(ctx context.Context, location string) (PredictionResponse, error)

	// Health probes the API root and reports reachability.
	Health(ctx context.Context) error
}
