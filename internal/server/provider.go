package server

import (
	"log/slog"

	"league-catalog-service/internal/config"
	"league-catalog-service/internal/providers"
	"league-catalog-service/internal/providers/fixture"
	"league-catalog-service/internal/providers/sportsdb"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.LeagueProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "sportsdb":
		return sportsdb.NewClient(sportsdb.Config{
			BaseURL: cfg.SportsDB.BaseURL,
			APIKey:  cfg.SportsDB.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
