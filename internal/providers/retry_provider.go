package providers

import (
	"context"
	"log/slog"
	"time"

	"league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a LeagueProvider with retry/backoff on catalog
// fetches. Season fetches pass through untouched: badge resolution surfaces
// upstream failures to the caller immediately, by contract.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with catalog-fetch retries.
// If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		items, err := r.inner.FetchLeagues(ctx)
		r.record(time.Since(start), err)
		if err == nil {
			return items, nil
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "league fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "league fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) FetchSeasons(ctx context.Context, leagueID string) ([]leagues.Season, error) {
	start := time.Now()
	seasons, err := r.inner.FetchSeasons(ctx, leagueID)
	r.record(time.Since(start), err)
	if err != nil {
		if rl, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
	}
	return seasons, err
}

func (r *retryingProvider) record(duration time.Duration, err error) {
	if r.metrics != nil {
		r.metrics.RecordProviderAttempt(r.name, duration, err)
	}
}
