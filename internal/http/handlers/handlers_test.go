package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	applg "league-catalog-service/internal/app/leagues"
	"league-catalog-service/internal/badge"
	"league-catalog-service/internal/catalog"
	domain "league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/poller"
	"league-catalog-service/internal/providers"
	"league-catalog-service/internal/teststubs"
)

func newTestHandler(t *testing.T, provider providers.LeagueProvider) *Handler {
	t.Helper()

	cat := catalog.New()
	cat.Load([]domain.League{
		{ID: "4328", Name: "English Premier League", AlternateName: "EPL", Sport: "Soccer"},
		{ID: "4387", Name: "NBA", AlternateName: "National Basketball Association", Sport: "Basketball"},
		{ID: "4380", Name: "NHL", Sport: "Ice Hockey"},
	})

	cache := badge.NewCache(&teststubs.StubBadgeStore{}, nil)
	svc := applg.NewService(cat, cache, provider, nil, "")
	return NewHandler(svc, nil, nil)
}

func doRequest(h *Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})

	status := poller.Status{}
	h.statusFn = func() poller.Status { return status }

	rec := doRequest(h, http.MethodGet, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status.LastSuccess = time.Now()
	rec = doRequest(h, http.MethodGet, "/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}
}

func TestLeaguesReturnsCatalog(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/leagues")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.ListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Count != 3 || len(body.Leagues) != 3 {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestLeaguesFiltersBySearchAndSport(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/leagues?search=epl&sport=Soccer")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.ListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Count != 1 || body.Leagues[0].ID != "4328" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestLeaguesSportParamWithoutValueStillFilters(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/leagues?sport=")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.ListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Count != 0 {
		t.Fatalf("expected empty sport to match nothing, got %+v", body)
	}
}

func TestLeaguesFuzzyMatch(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/leagues?search=prmier&match=fuzzy")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.ListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Count != 1 || body.Leagues[0].ID != "4328" {
		t.Fatalf("unexpected fuzzy response: %+v", body)
	}
}

func TestSports(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	rec := doRequest(h, http.MethodGet, "/sports")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.SportsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []string{"Basketball", "Ice Hockey", "Soccer"}
	if len(body.Sports) != len(want) {
		t.Fatalf("unexpected sports: %v", body.Sports)
	}
	for i, sport := range want {
		if body.Sports[i] != sport {
			t.Fatalf("expected %v, got %v", want, body.Sports)
		}
	}
}

func TestBadgeResolvesLatestSeason(t *testing.T) {
	provider := &teststubs.StubProvider{
		Seasons: []domain.Season{
			{Name: "2022-2023"},
			{Name: "2023-2024", Badge: "http://img/badge.png"},
		},
	}
	h := newTestHandler(t, provider)

	rec := doRequest(h, http.MethodGet, "/leagues/4328/badge")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body domain.BadgeResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.LeagueID != "4328" || body.Badge != "http://img/badge.png" {
		t.Fatalf("unexpected response: %+v", body)
	}

	// Second request must be served from cache.
	rec = doRequest(h, http.MethodGet, "/leagues/4328/badge")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on cache hit, got %d", rec.Code)
	}
	if provider.SeasonCalls.Load() != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", provider.SeasonCalls.Load())
	}
}

func TestBadgeNotFoundWhenNoBadgeArt(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{Seasons: []domain.Season{}})
	rec := doRequest(h, http.MethodGet, "/leagues/4380/badge")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBadgeRateLimited(t *testing.T) {
	provider := &teststubs.StubProvider{
		SeasonsErr: &providers.RateLimitError{Provider: "sportsdb", StatusCode: 429, RetryAfter: 30 * time.Second},
	}
	h := newTestHandler(t, provider)

	rec := doRequest(h, http.MethodGet, "/leagues/4328/badge")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestBadgeUpstreamFailure(t *testing.T) {
	provider := &teststubs.StubProvider{SeasonsErr: providers.ErrProviderUnavailable}
	h := newTestHandler(t, provider)

	rec := doRequest(h, http.MethodGet, "/leagues/4328/badge")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestBadgeRejectsMalformedPaths(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	for _, target := range []string{"/leagues/4328", "/leagues//badge", "/leagues/4328/seasons", "/leagues/4328/badge/extra"} {
		rec := doRequest(h, http.MethodGet, target)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", target, rec.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &teststubs.StubProvider{})
	for _, target := range []string{"/health", "/ready", "/leagues", "/sports", "/leagues/4328/badge"} {
		rec := doRequest(h, http.MethodPost, target)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405 for %s, got %d", target, rec.Code)
		}
	}
}
