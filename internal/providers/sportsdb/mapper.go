package sportsdb

import (
	"strings"

	"league-catalog-service/internal/domain/leagues"
)

func mapLeague(raw leagueResponse) leagues.League {
	return leagues.League{
		ID:            strings.TrimSpace(raw.ID),
		Name:          strings.TrimSpace(raw.Name),
		AlternateName: strings.TrimSpace(raw.AlternateName),
		Sport:         strings.TrimSpace(raw.Sport),
	}
}

func mapSeason(raw seasonResponse) leagues.Season {
	return leagues.Season{
		Name:  strings.TrimSpace(raw.Season),
		Badge: strings.TrimSpace(raw.Badge),
	}
}
