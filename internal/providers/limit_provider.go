package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"league-catalog-service/internal/domain/leagues"
)

// rateLimitedProvider wraps a LeagueProvider and spaces out upstream calls
// to stay under the free-tier quota. The limiter allows one immediate call
// and then one per interval across both fetch paths.
type rateLimitedProvider struct {
	next    LeagueProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a LeagueProvider that blocks until the
// limiter grants a slot before delegating.
func NewRateLimitedProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger) LeagueProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "league fetch canceled while throttled", "err", err)
		return nil, err
	}
	return p.next.FetchLeagues(ctx)
}

func (p *rateLimitedProvider) FetchSeasons(ctx context.Context, leagueID string) ([]leagues.Season, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "season fetch canceled while throttled", "err", err)
		return nil, err
	}
	return p.next.FetchSeasons(ctx, leagueID)
}
