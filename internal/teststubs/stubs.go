package teststubs

import (
	"context"
	"sync/atomic"

	domain "league-catalog-service/internal/domain/leagues"
)

// StubProvider is a test double for providers.LeagueProvider.
type StubProvider struct {
	Leagues    []domain.League
	LeaguesErr error

	Seasons    []domain.Season
	SeasonsErr error

	LeagueCalls atomic.Int32
	SeasonCalls atomic.Int32

	// Notify, when set, is closed on the first league fetch so tests can
	// wait for a refresh cycle without sleeping.
	Notify chan struct{}
}

// FetchLeagues returns the configured catalog and error while tracking calls.
func (s *StubProvider) FetchLeagues(ctx context.Context) ([]domain.League, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.LeagueCalls.Add(1)
	return s.Leagues, s.LeaguesErr
}

// FetchSeasons returns the configured seasons and error while tracking calls.
func (s *StubProvider) FetchSeasons(ctx context.Context, leagueID string) ([]domain.Season, error) {
	_ = ctx
	_ = leagueID
	s.SeasonCalls.Add(1)
	return s.Seasons, s.SeasonsErr
}

// StubBadgeStore is a test double for badge.Store.
type StubBadgeStore struct {
	Entries  map[string]string
	ReadErr  error
	WriteErr error
	Writes   int
}

// ReadAll returns the configured entries or error.
func (s *StubBadgeStore) ReadAll() (map[string]string, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	cp := make(map[string]string, len(s.Entries))
	for k, v := range s.Entries {
		cp[k] = v
	}
	return cp, nil
}

// WriteOne stores the entry unless WriteErr is set.
func (s *StubBadgeStore) WriteOne(key, value string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.Entries == nil {
		s.Entries = make(map[string]string)
	}
	s.Entries[key] = value
	s.Writes++
	return nil
}
