package leagues

// League is the canonical league shape exposed by the service.
// Leagues are created in bulk when the catalog loads and are immutable
// until the next wholesale replacement.
type League struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AlternateName string `json:"alternateName,omitempty"`
	Sport         string `json:"sport"`
}

// Season is a transient upstream record: a season label plus an optional
// badge URL. Seasons are never persisted; only the newest badge survives.
type Season struct {
	Name  string `json:"season"`
	Badge string `json:"badge,omitempty"`
}

// ListResponse is the payload returned by /leagues.
type ListResponse struct {
	Leagues []League `json:"leagues"`
	Count   int      `json:"count"`
}

// SportsResponse is the payload returned by /sports.
type SportsResponse struct {
	Sports []string `json:"sports"`
}

// BadgeResponse is the payload returned by /leagues/{id}/badge.
type BadgeResponse struct {
	LeagueID string `json:"leagueId"`
	Badge    string `json:"badge"`
}

// NewListResponse builds a ListResponse with the count filled in.
func NewListResponse(items []League) ListResponse {
	if items == nil {
		items = []League{}
	}
	return ListResponse{Leagues: items, Count: len(items)}
}
