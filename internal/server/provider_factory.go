package server

import (
	"log/slog"
	"time"

	"league-catalog-service/internal/config"
	"league-catalog-service/internal/metrics"
	"league-catalog-service/internal/providers"
)

// upstreamInterval spaces consecutive upstream calls so that catalog
// refreshes and on-demand badge fetches together stay under the free-tier
// quota of roughly 30 requests per minute.
const upstreamInterval = 2 * time.Second

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, upstreamInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}
