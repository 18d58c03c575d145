package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"league-catalog-service/internal/app/leagues"
	domain "league-catalog-service/internal/domain/leagues"
	"league-catalog-service/internal/logging"
	"league-catalog-service/internal/poller"
	"league-catalog-service/internal/providers"
)

// Handler wires HTTP routes to the catalog service.
type Handler struct {
	svc      *leagues.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(svc *leagues.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/leagues":
		h.Leagues(w, r)
	case r.URL.Path == "/sports":
		h.Sports(w, r)
	case strings.HasPrefix(r.URL.Path, "/leagues/"):
		h.Badge(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leagues returns the catalog filtered by the search and sport query
// parameters. A sport parameter that is present but empty still filters,
// matching only leagues with an empty sport field.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()
	term := query.Get("search")
	var sport *string
	if query.Has("sport") {
		value := query.Get("sport")
		sport = &value
	}
	fuzzyMatch := query.Get("match") == "fuzzy"

	items := h.svc.Leagues(term, sport, fuzzyMatch)

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served leagues", logging.FieldCount, len(items))
	}
	writeJSON(w, nethttp.StatusOK, domain.NewListResponse(items), h.logger)
}

// Sports returns the distinct sports across the loaded catalog.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, domain.SportsResponse{Sports: h.svc.Sports()}, h.logger)
}

// Badge resolves the badge URL for a league via /leagues/{id}/badge.
func (h *Handler) Badge(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := badgeLeagueID(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	badgeURL, err := h.svc.ResolveBadge(r.Context(), id)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Error("badge resolution failed", logging.FieldLeagueID, id, "err", err)
		}
		if rateErr, ok := providers.AsRateLimitError(err); ok {
			if rateErr.RetryAfter > 0 {
				w.Header().Set("Retry-After", rateErr.RetryAfter.String())
			}
			writeError(w, r, nethttp.StatusTooManyRequests, "upstream rate limited", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusBadGateway, "badge unavailable", h.logger)
		return
	}
	if badgeURL == "" {
		writeError(w, r, nethttp.StatusNotFound, "badge not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, domain.BadgeResponse{LeagueID: id, Badge: badgeURL}, h.logger)
}

// badgeLeagueID parses /leagues/{id}/badge and returns the league id.
func badgeLeagueID(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/leagues/")
	idRaw, endpoint, found := strings.Cut(rest, "/")
	if !found || endpoint != "badge" {
		return "", false
	}
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", false
	}
	return id, true
}
