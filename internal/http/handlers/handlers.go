package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/poller"
	"nba-matchup-service/internal/snapshots"
	"nba-matchup-service/internal/stats"
	"nba-matchup-service/internal/timeutil"
)

type nowFunc func() time.Time

// DatasetStore is the read side of the in-memory dataset store.
type DatasetStore interface {
	ListDatasets() []matchups.Dataset
	GetDataset(id string) (matchups.Dataset, bool)
}

// TeamStatsService computes per-team records and rolling averages on demand.
type TeamStatsService interface {
	Record(ctx context.Context, team string, asOf time.Time) (stats.TeamRecord, error)
	Rolling(ctx context.Context, team string, asOf time.Time) (map[int]stats.WindowAverages, error)
}

// Handler wires HTTP routes to the matchup store and stats service.
type Handler struct {
	store    DatasetStore
	snaps    snapshots.Store
	svc      TeamStatsService
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(store DatasetStore, snaps snapshots.Store, svc TeamStatsService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		store:    store,
		snaps:    snaps,
		svc:      svc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches to the route handlers.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/matchups" || r.URL.Path == "/matchups/today":
		h.MatchupsToday(w, r)
	case strings.HasPrefix(r.URL.Path, "/matchups/"):
		h.MatchupByID(w, r)
	case strings.HasPrefix(r.URL.Path, "/teams/"):
		h.teamRoute(w, r)
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

// MatchupsToday returns the current day's matchup datasets. An explicit
// ?date= query serves snapshots only; the default path serves the in-memory
// store with a snapshot fallback when it is empty.
func (h *Handler) MatchupsToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	dateParam := r.URL.Query().Get("date")

	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		daily, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		logging.Info(logger, "served snapshot matchups",
			logging.FieldDate, daily.Date,
			logging.FieldCount, len(daily.Datasets),
		)
		writeJSON(w, nethttp.StatusOK, daily, h.logger)
		return
	}

	date := timeutil.FormatDate(h.now())
	var datasets []matchups.Dataset
	if h.store != nil {
		datasets = h.store.ListDatasets()
	}
	if len(datasets) == 0 {
		if daily, err := h.loadSnapshot(date); err == nil {
			datasets = daily.Datasets
			date = daily.Date
			logging.Info(logger, "served snapshot matchups",
				logging.FieldDate, date,
				logging.FieldCount, len(datasets),
			)
		}
	}
	logging.Info(logger, "served cached matchups",
		logging.FieldDate, date,
		logging.FieldCount, len(datasets),
	)
	writeJSON(w, nethttp.StatusOK, matchups.NewDaily(date, datasets), h.logger)
}

// MatchupByID returns a specific matchup dataset if present. The store is
// checked first, then the snapshot for the date embedded in the ID.
func (h *Handler) MatchupByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	idRaw := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/matchups"), "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || id == "today" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid matchup id", h.logger)
		return
	}

	if h.store != nil {
		if ds, ok := h.store.GetDataset(id); ok {
			writeJSON(w, nethttp.StatusOK, ds, h.logger)
			return
		}
	}
	if ds, ok := h.findInSnapshot(id); ok {
		writeJSON(w, nethttp.StatusOK, ds, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusNotFound, "matchup not found", h.logger)
}

// TeamRecord returns a team's categorized win-loss record as of a date
// (defaults to today).
func (h *Handler) TeamRecord(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, asOf, ok := h.teamParams(w, r, "/record")
	if !ok {
		return
	}
	record, err := h.svc.Record(r.Context(), team, asOf)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "team record fetch failed",
			slog.String(logging.FieldTeam, team),
			slog.Any("err", err),
		)
		writeError(w, r, nethttp.StatusBadGateway, "failed to compute record", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, teamRecordResponse{
		Team:   team,
		AsOf:   timeutil.FormatDate(asOf),
		Record: record,
	}, h.logger)
}

// TeamRolling returns a team's rolling window averages as of a date
// (defaults to today).
func (h *Handler) TeamRolling(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, asOf, ok := h.teamParams(w, r, "/rolling")
	if !ok {
		return
	}
	windows, err := h.svc.Rolling(r.Context(), team, asOf)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "team rolling fetch failed",
			slog.String(logging.FieldTeam, team),
			slog.Any("err", err),
		)
		writeError(w, r, nethttp.StatusBadGateway, "failed to compute rolling averages", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, teamRollingResponse{
		Team:    team,
		AsOf:    timeutil.FormatDate(asOf),
		Windows: windows,
	}, h.logger)
}

type teamRecordResponse struct {
	Team   string           `json:"team"`
	AsOf   string           `json:"asOf"`
	Record stats.TeamRecord `json:"record"`
}

type teamRollingResponse struct {
	Team    string                       `json:"team"`
	AsOf    string                       `json:"asOf"`
	Windows map[int]stats.WindowAverages `json:"windows"`
}

func (h *Handler) teamRoute(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/record"):
		h.TeamRecord(w, r)
	case strings.HasSuffix(r.URL.Path, "/rolling"):
		h.TeamRolling(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// teamParams extracts the team abbreviation and as-of date from a
// /teams/{abbr}{suffix} request, writing the error response on failure.
func (h *Handler) teamParams(w nethttp.ResponseWriter, r *nethttp.Request, suffix string) (string, time.Time, bool) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return "", time.Time{}, false
	}
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "stats service not configured", h.logger)
		return "", time.Time{}, false
	}
	team := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/teams/"), suffix)
	team = strings.ToUpper(strings.TrimSpace(team))
	if team == "" || strings.ContainsAny(team, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team abbreviation", h.logger)
		return "", time.Time{}, false
	}

	asOf := h.now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := timeutil.ParseDate(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return "", time.Time{}, false
		}
		asOf = parsed
	}
	return team, asOf, true
}

func (h *Handler) loadSnapshot(date string) (matchups.Daily, error) {
	if h.snaps == nil {
		return matchups.Daily{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadMatchups(date)
}

// findInSnapshot looks the dataset up in the snapshot for the date embedded
// in its ID (YYYY-MM-DD prefix).
func (h *Handler) findInSnapshot(id string) (matchups.Dataset, bool) {
	if h.snaps == nil || len(id) < len(timeutil.DateLayout) {
		return matchups.Dataset{}, false
	}
	date := id[:len(timeutil.DateLayout)]
	if _, err := timeutil.ParseDate(date); err != nil {
		return matchups.Dataset{}, false
	}
	daily, err := h.snaps.LoadMatchups(date)
	if err != nil {
		return matchups.Dataset{}, false
	}
	for _, ds := range daily.Datasets {
		if ds.ID == id {
			return ds, true
		}
	}
	return matchups.Dataset{}, false
}
