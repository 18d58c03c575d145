package fixture

import (
	"context"

	"league-catalog-service/internal/domain/leagues"
)

// Provider returns a static catalog useful for local testing and
// bootstrapping without upstream credentials.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLeagues returns a deterministic set of example leagues.
func (p *Provider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	_ = ctx
	return []leagues.League{
		{ID: "4328", Name: "English Premier League", AlternateName: "EPL", Sport: "Soccer"},
		{ID: "4335", Name: "Spanish La Liga", AlternateName: "La Liga", Sport: "Soccer"},
		{ID: "4387", Name: "NBA", AlternateName: "National Basketball Association", Sport: "Basketball"},
		{ID: "4380", Name: "NHL", AlternateName: "National Hockey League", Sport: "Ice Hockey"},
	}, nil
}

// FetchSeasons returns a deterministic season history for known leagues and
// an empty slice otherwise.
func (p *Provider) FetchSeasons(ctx context.Context, leagueID string) ([]leagues.Season, error) {
	_ = ctx
	seasons, ok := seasonsByLeague[leagueID]
	if !ok {
		return []leagues.Season{}, nil
	}
	cp := make([]leagues.Season, len(seasons))
	copy(cp, seasons)
	return cp, nil
}

var seasonsByLeague = map[string][]leagues.Season{
	"4328": {
		{Name: "2022-2023", Badge: ""},
		{Name: "2023-2024", Badge: "https://static.example/badges/epl-2324.png"},
	},
	"4387": {
		{Name: "2022-2023", Badge: "https://static.example/badges/nba-2223.png"},
		{Name: "2023-2024", Badge: "https://static.example/badges/nba-2324.png"},
	},
	// NHL has seasons but no badge art, mirroring sparse upstream data.
	"4380": {
		{Name: "2023-2024", Badge: ""},
	},
}
