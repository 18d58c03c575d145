package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/providers"
)

// Config controls how the client reaches TheSportsDB API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches leagues and seasons from TheSportsDB and maps them to
// domain models. The API key is part of the URL path on this API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     resolveAPIKey(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchLeagues retrieves the full league catalog.
func (c *Client) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	var payload leaguesResponse
	if err := c.getJSON(ctx, c.endpoint("all_leagues.php", nil), &payload); err != nil {
		return nil, err
	}

	result := make([]leagues.League, 0, len(payload.Leagues))
	for _, raw := range payload.Leagues {
		result = append(result, mapLeague(raw))
	}
	return result, nil
}

// FetchSeasons retrieves the seasons for one league, oldest first, each
// optionally carrying a badge URL.
func (c *Client) FetchSeasons(ctx context.Context, leagueID string) ([]leagues.Season, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("sportsdb: league id required")
	}

	query := url.Values{}
	query.Set("badge", "1")
	query.Set("id", leagueID)

	var payload seasonsResponse
	if err := c.getJSON(ctx, c.endpoint("search_all_seasons.php", query), &payload); err != nil {
		return nil, err
	}

	result := make([]leagues.Season, 0, len(payload.Seasons))
	for _, raw := range payload.Seasons {
		result = append(result, mapSeason(raw))
	}
	return result, nil
}

func (c *Client) endpoint(page string, query url.Values) string {
	u := c.baseURL + "/" + c.apiKey + "/" + page
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, rawURL string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Message:    "thesportsdb rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sportsdb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}
