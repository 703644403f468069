package http

import (
	nethttp "net/http"

	"nba-matchup-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matchups", handler.MatchupsToday)
	mux.HandleFunc("/matchups/today", handler.MatchupsToday)
	mux.HandleFunc("/matchups/", handler.MatchupByID)
	mux.HandleFunc("/teams/", handler.ServeHTTP)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.RefreshMatchups)
	}
	return mux
}
