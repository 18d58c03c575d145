package leagues

import (
	"context"

	"league-catalog-service/internal/badge"
	"league-catalog-service/internal/catalog"
	domain "league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/metrics"
	"league-catalog-service/internal/providers"
)

// Service coordinates catalog queries and badge resolution for the HTTP
// layer, keeping providers and stores behind one seam.
type Service struct {
	catalog   *catalog.Catalog
	badges    *badge.Cache
	provider  providers.LeagueProvider
	metrics   *metrics.Recorder
	badgeSize string
}

// NewService constructs a Service. badgeSize selects the upstream image
// variant cached for each league ("" keeps the original URL).
func NewService(cat *catalog.Catalog, badges *badge.Cache, provider providers.LeagueProvider, recorder *metrics.Recorder, badgeSize string) *Service {
	return &Service{
		catalog:   cat,
		badges:    badges,
		provider:  provider,
		metrics:   recorder,
		badgeSize: badgeSize,
	}
}

// ReplaceLeagues swaps the catalog with a new snapshot.
func (s *Service) ReplaceLeagues(items []domain.League) {
	s.catalog.Load(items)
}

// Count reports the loaded catalog size.
func (s *Service) Count() int {
	return s.catalog.Len()
}

// Leagues returns the leagues matching the request filters in load order,
// or fuzzy-ranked when requested.
func (s *Service) Leagues(term string, sport *string, fuzzyMatch bool) []domain.League {
	if fuzzyMatch {
		return s.fuzzyLeagues(term, sport)
	}
	return s.catalog.Filtered(term, sport)
}

func (s *Service) fuzzyLeagues(term string, sport *string) []domain.League {
	matches := s.catalog.FuzzySearch(term)
	if sport == nil {
		return matches
	}
	filtered := make([]domain.League, 0, len(matches))
	for _, l := range matches {
		if l.Sport == *sport {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// Sports returns the distinct sports across the catalog, sorted ascending.
func (s *Service) Sports() []string {
	return s.catalog.AvailableSports()
}

// ResolveBadge returns the badge URL for a league, consulting the cache
// before fetching seasons upstream. An empty URL with a nil error means the
// league has no badge art yet.
func (s *Service) ResolveBadge(ctx context.Context, leagueID string) (string, error) {
	url, hit, err := s.badges.Resolve(ctx, leagueID, s.fetchSeasons)
	if s.metrics != nil {
		s.metrics.RecordBadgeLookup(hit)
	}
	return url, err
}

// fetchSeasons adapts the provider to the badge cache's fetcher shape and
// applies the configured image size suffix before any caching happens.
func (s *Service) fetchSeasons(ctx context.Context, leagueID string) ([]domain.Season, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	seasons, err := s.provider.FetchSeasons(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if s.badgeSize == "" {
		return seasons, nil
	}
	sized := make([]domain.Season, len(seasons))
	for i, season := range seasons {
		if season.Badge != "" {
			season.Badge += "/" + s.badgeSize
		}
		sized[i] = season
	}
	return sized, nil
}
