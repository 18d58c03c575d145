package badge

import (
	"context"
	"errors"
	"testing"

	"league-catalog-service/internal/domain/leagues"
)

type countingFetcher struct {
	seasons []leagues.Season
	err     error
	calls   int
}

func (f *countingFetcher) fetch(ctx context.Context, leagueID string) ([]leagues.Season, error) {
	_ = ctx
	_ = leagueID
	f.calls++
	return f.seasons, f.err
}

func TestResolveCachesLatestSeasonBadge(t *testing.T) {
	fetcher := &countingFetcher{seasons: []leagues.Season{
		{Name: "2022", Badge: ""},
		{Name: "2023", Badge: "http://x/badge.png"},
	}}
	c := NewCache(NewMemoryStore(), nil)

	got, hit, err := c.Resolve(context.Background(), "1", fetcher.fetch)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if hit {
		t.Fatal("expected first resolve to be a miss")
	}
	if got != "http://x/badge.png" {
		t.Fatalf("expected latest season badge, got %q", got)
	}
	if c.Get("1") != "http://x/badge.png" {
		t.Fatalf("expected badge cached, got %q", c.Get("1"))
	}
}

func TestResolveHitSkipsFetcher(t *testing.T) {
	fetcher := &countingFetcher{seasons: []leagues.Season{{Name: "2023", Badge: "http://x/b.png"}}}
	c := NewCache(NewMemoryStore(), nil)

	if _, _, err := c.Resolve(context.Background(), "1", fetcher.fetch); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	got, hit, err := c.Resolve(context.Background(), "1", fetcher.fetch)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if !hit {
		t.Fatal("expected second resolve to report a hit")
	}
	if got != "http://x/b.png" {
		t.Fatalf("unexpected badge %q", got)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", fetcher.calls)
	}
}

func TestResolveEmptySeasonsReturnsNothing(t *testing.T) {
	fetcher := &countingFetcher{}
	c := NewCache(NewMemoryStore(), nil)

	got, _, err := c.Resolve(context.Background(), "2", fetcher.fetch)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty badge, got %q", got)
	}
	if c.Get("2") != "" {
		t.Fatalf("expected no cache entry, got %q", c.Get("2"))
	}
}

func TestResolveDoesNotCacheMissingBadge(t *testing.T) {
	fetcher := &countingFetcher{seasons: []leagues.Season{{Name: "2023", Badge: ""}}}
	c := NewCache(NewMemoryStore(), nil)

	if got, _, err := c.Resolve(context.Background(), "3", fetcher.fetch); err != nil || got != "" {
		t.Fatalf("expected empty badge without error, got %q / %v", got, err)
	}
	if c.Get("3") != "" {
		t.Fatalf("expected miss after badge-less resolve")
	}

	// Absence is not cached, so the next resolve fetches again.
	if _, _, err := c.Resolve(context.Background(), "3", fetcher.fetch); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected fetcher called twice, got %d", fetcher.calls)
	}
}

func TestResolvePropagatesFetchError(t *testing.T) {
	wantErr := errors.New("upstream down")
	fetcher := &countingFetcher{err: wantErr}
	c := NewCache(NewMemoryStore(), nil)

	_, _, err := c.Resolve(context.Background(), "4", fetcher.fetch)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error unwrapped, got %v", err)
	}
	if c.Get("4") != "" {
		t.Fatalf("expected nothing cached after error")
	}
}

func TestResolveSurvivesStoreWriteFailure(t *testing.T) {
	store := NewMemoryStore()
	store.WriteErr = errors.New("disk full")
	fetcher := &countingFetcher{seasons: []leagues.Season{{Name: "2023", Badge: "http://x/b.png"}}}
	c := NewCache(store, nil)

	got, _, err := c.Resolve(context.Background(), "5", fetcher.fetch)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "http://x/b.png" {
		t.Fatalf("expected badge despite write failure, got %q", got)
	}
	// The in-memory entry still serves the rest of the session.
	if c.Get("5") != "http://x/b.png" {
		t.Fatalf("expected session entry, got %q", c.Get("5"))
	}
}

func TestFirstWrittenValueWins(t *testing.T) {
	c := NewCache(NewMemoryStore(), nil)
	if got := c.put("1", "http://x/first.png"); got != "http://x/first.png" {
		t.Fatalf("unexpected first write %q", got)
	}
	if got := c.put("1", "http://x/second.png"); got != "http://x/first.png" {
		t.Fatalf("expected first value kept, got %q", got)
	}
}

func TestNewCacheWarmsFromStore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.WriteOne("1", "http://x/b.png"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	c := NewCache(store, nil)
	if c.Get("1") != "http://x/b.png" {
		t.Fatalf("expected warm entry, got %q", c.Get("1"))
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestNewCacheWithoutStore(t *testing.T) {
	c := NewCache(nil, nil)
	fetcher := &countingFetcher{seasons: []leagues.Season{{Name: "2023", Badge: "http://x/b.png"}}}

	got, _, err := c.Resolve(context.Background(), "1", fetcher.fetch)
	if err != nil || got != "http://x/b.png" {
		t.Fatalf("expected in-memory resolve to work, got %q / %v", got, err)
	}
}

func TestResolveReportsHitForConcurrentlyFilledEntry(t *testing.T) {
	c := NewCache(NewMemoryStore(), nil)
	fetcher := &countingFetcher{err: errors.New("should not fetch")}

	// Another resolve filled the entry between the caller's decision to
	// resolve and this call; it must be served as a hit with no fetch.
	c.put("1", "http://x/b.png")

	got, hit, err := c.Resolve(context.Background(), "1", fetcher.fetch)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !hit || got != "http://x/b.png" {
		t.Fatalf("expected cached value served as hit, got %q hit=%v", got, hit)
	}
	if fetcher.calls != 0 {
		t.Fatalf("expected no fetch for filled entry, got %d", fetcher.calls)
	}
}
