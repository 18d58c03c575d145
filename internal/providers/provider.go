package providers

import (
	"context"

	"league-catalog-service/internal/domain/leagues"
)

// LeagueProvider defines how upstream league data is fetched and normalized.
type LeagueProvider interface {
	// FetchLeagues returns the full league catalog in upstream order.
	FetchLeagues(ctx context.Context) ([]leagues.League, error)
	// FetchSeasons returns the seasons for one league ordered oldest to
	// newest, each optionally carrying a badge URL.
	FetchSeasons(ctx context.Context, leagueID string) ([]leagues.Season, error)
}
