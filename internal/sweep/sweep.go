package sweep

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/observability"
)

// ErrNoSnapshot marks requests that arrive before the first sweep completes.
var ErrNoSnapshot = errors.New("no sweep has completed yet")

// Publisher receives each completed sweep's predictions. Optional.
type Publisher interface {
	PublishBatch(ctx context.Context, predictions []domain.PredictionResponse) error
}

// Snapshot is the aggregated result of one full location sweep. It is
// immutable once stored; readers always see a complete, consistent view.
type Snapshot struct {
	Predictions      []domain.PredictionResponse `json:"predictions"`
	Stats            domain.RiskStats            `json:"stats"`
	RegionalAverages []domain.RegionAverage      `json:"regional_averages"`
	Succeeded        int                         `json:"succeeded"`
	Failed           int                         `json:"failed"`
	FetchedAt        time.Time                   `json:"fetched_at"`
}

// Sweeper periodically fetches predictions for every supported location and
// aggregates them into a snapshot for the API layer.
type Sweeper struct {
	predictor   domain.Predictor
	publisher   Publisher
	logger      *slog.Logger
	metrics     *observability.Metrics
	interval    time.Duration
	concurrency int

	snapshot atomic.Pointer[Snapshot]
}

// New creates a Sweeper. publisher may be nil when Kafka publishing is
// disabled.
func New(predictor domain.Predictor, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics, interval time.Duration, concurrency int) *Sweeper {
	return &Sweeper{
		predictor:   predictor,
		publisher:   publisher,
		logger:      logger,
		metrics:     metrics,
		interval:    interval,
		concurrency: concurrency,
	}
}

// CheckReadiness returns nil once at least one sweep has completed, or an
// error describing why the service is not yet ready.
func (s *Sweeper) CheckReadiness(_ context.Context) error {
	if s.snapshot.Load() == nil {
		return ErrNoSnapshot
	}
	return nil
}

// Snapshot returns the latest completed sweep, or false before the first one.
func (s *Sweeper) Snapshot() (*Snapshot, bool) {
	snap := s.snapshot.Load()
	return snap, snap != nil
}

// Run sweeps immediately, then on every interval until the context is
// cancelled. A sweep in which every location fails shortens the wait to an
// escalating retry delay so a recovering upstream is picked up quickly.
func (s *Sweeper) Run(ctx context.Context) error {
	s.logger.Info("sweeper started",
		"interval", s.interval,
		"concurrency", s.concurrency,
		"locations", len(domain.SupportedLocations()),
	)

	retry := initialRetry
	for {
		snap := s.sweep(ctx)

		wait := s.interval
		if snap.Succeeded == 0 && snap.Failed > 0 {
			wait = retry
			retry = nextRetry(retry, s.interval)
			s.logger.Warn("sweep found no reachable locations, retrying", "wait", wait)
		} else {
			retry = initialRetry
		}

		if !sleepWithContext(ctx, wait) {
			s.logger.Info("sweeper stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// RunOnce performs a single sweep and returns the stored snapshot.
func (s *Sweeper) RunOnce(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.sweep(ctx), nil
}

func (s *Sweeper) sweep(ctx context.Context) *Snapshot {
	start := time.Now()
	s.metrics.SweepRunning.Set(1)
	defer s.metrics.SweepRunning.Set(0)

	locations := domain.SupportedLocations()
	results := make([]*domain.PredictionResponse, len(locations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, location := range locations {
		i, location := i, location
		g.Go(func() error {
			resp, err := s.predictor.PredictRegional(gctx, location)
			if err != nil {
				// One location failing never aborts the sweep.
				s.logger.Warn("sweep fetch failed", "location", location, "error", err)
				s.metrics.SweepResults.WithLabelValues("failure").Inc()
				return nil
			}
			s.metrics.SweepResults.WithLabelValues("success").Inc()
			results[i] = &resp
			return nil
		})
	}
	_ = g.Wait()

	predictions := make([]domain.PredictionResponse, 0, len(results))
	for _, r := range results {
		if r != nil {
			predictions = append(predictions, *r)
		}
	}

	snap := &Snapshot{
		Predictions:      predictions,
		Stats:            domain.Distribution(predictions),
		RegionalAverages: domain.RegionalAverages(predictions),
		Succeeded:        len(predictions),
		Failed:           len(locations) - len(predictions),
		FetchedAt:        time.Now().UTC(),
	}
	s.snapshot.Store(snap)
	s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	if snap.Succeeded > 0 {
		s.metrics.SweepLastSuccess.Set(float64(snap.FetchedAt.Unix()))
	}

	s.logger.Info("sweep complete",
		"succeeded", snap.Succeeded,
		"failed", snap.Failed,
		"duration", time.Since(start),
	)

	if s.publisher != nil && len(predictions) > 0 {
		if err := s.publisher.PublishBatch(ctx, predictions); err != nil {
			s.logger.Error("publish sweep failed", "error", err)
		}
	}

	return snap
}

const initialRetry = 5 * time.Second

func nextRetry(current, maxWait time.Duration) time.Duration {
	next := current * 2
	if next > maxWait {
		return maxWait
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
