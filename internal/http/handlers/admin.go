package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nba-matchup-service/internal/http/requestutil"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/timeutil"
)

var timeNow = time.Now

// Refresher triggers an immediate matchup refresh cycle.
type Refresher interface {
	RefreshNow(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints (e.g., forced refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshMatchups runs a refresh cycle outside the poll interval.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshMatchups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.refresher.RefreshNow(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "refresh failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"date":   timeutil.FormatDate(timeNow()),
	}, logger)
	logging.Info(logger, "admin refresh complete")
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
