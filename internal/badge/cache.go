package badge

import (
	"context"
	"log/slog"
	"sync"

	"league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/logging"
)

// Fetcher retrieves the seasons for one league, ordered oldest to newest.
type Fetcher func(ctx context.Context, leagueID string) ([]leagues.Season, error)

// Cache resolves a league id to a badge URL, remembering successful lookups
// in a durable Store so a badge is fetched at most once per entry lifetime.
// Absence of a badge is never cached, so a later call may retry upstream.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	store   Store
	logger  *slog.Logger
}

// NewCache constructs a Cache warmed from the store. A store read failure
// degrades to a cold cache rather than failing construction.
func NewCache(store Store, logger *slog.Logger) *Cache {
	entries := map[string]string{}
	if store != nil {
		loaded, err := store.ReadAll()
		if err != nil {
			logging.Warn(logger, "badge store read failed, starting cold", "error", err)
		} else if loaded != nil {
			entries = loaded
		}
	}
	return &Cache{
		entries: entries,
		store:   store,
		logger:  logger,
	}
}

// Get returns the cached badge URL for the league, or "" on a miss. It is
// local only and never triggers a fetch.
func (c *Cache) Get(leagueID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[leagueID]
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Resolve returns the badge URL for the league and whether it was served
// from the cache without fetching. On a cache hit no fetch is made. On a
// miss the fetcher is invoked exactly once; the last season in the returned
// sequence is taken as the most recent, and its badge (when present) is
// written through to the durable store before being returned. Empty season
// lists and badge-less seasons yield "" without caching a negative result.
// Fetch errors propagate unmodified and write nothing.
func (c *Cache) Resolve(ctx context.Context, leagueID string, fetch Fetcher) (string, bool, error) {
	if cached := c.Get(leagueID); cached != "" {
		return cached, true, nil
	}

	seasons, err := fetch(ctx, leagueID)
	if err != nil {
		return "", false, err
	}
	if len(seasons) == 0 {
		return "", false, nil
	}

	// The upstream API orders seasons oldest to newest.
	url := seasons[len(seasons)-1].Badge
	if url == "" {
		return "", false, nil
	}

	return c.put(leagueID, url), false, nil
}

// put stores the first value learned for a key; a concurrent resolve that
// lands second keeps the earlier entry. A durable write failure is logged
// and the value is still served and kept in memory for the session.
func (c *Cache) put(leagueID, url string) string {
	c.mu.Lock()
	if existing, ok := c.entries[leagueID]; ok && existing != "" {
		c.mu.Unlock()
		return existing
	}
	c.entries[leagueID] = url
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.WriteOne(leagueID, url); err != nil {
			logging.Warn(c.logger, "badge store write failed", logging.FieldLeagueID, leagueID, "error", err)
		}
	}
	return url
}
