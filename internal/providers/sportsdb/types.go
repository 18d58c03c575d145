package sportsdb

// The upstream payloads use null for absent lists, so both top-level slices
// decode as nil when there is no data.

type leaguesResponse struct {
	Leagues []leagueResponse `json:"leagues"`
}

type leagueResponse struct {
	ID            string `json:"idLeague"`
	Name          string `json:"strLeague"`
	Sport         string `json:"strSport"`
	AlternateName string `json:"strLeagueAlternate"`
}

type seasonsResponse struct {
	Seasons []seasonResponse `json:"seasons"`
}

type seasonResponse struct {
	Season string `json:"strSeason"`
	Badge  string `json:"strBadge"`
}
