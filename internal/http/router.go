package http

import (
	nethttp "net/http"

	"league-catalog-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/sports", handler.Sports)
	mux.HandleFunc("/leagues/", handler.Badge)
	return mux
}
