package snapshots

import (
	"context"
	"log/slog"
	"os"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/providers"
)

// DatasetBuilder assembles the matchup dataset for one scheduled game.
type DatasetBuilder interface {
	Build(ctx context.Context, game games.Game) (matchups.Dataset, error)
}

// Syncer backfills and prunes matchup snapshots on a schedule. A backfill
// pass refreshes today and yesterday unconditionally and fills any gaps in
// the past and future windows.
type Syncer struct {
	schedule  providers.ScheduleProvider
	builder   DatasetBuilder
	writer    *Writer
	cfg       SyncConfig
	logger    *slog.Logger
	now       func() time.Time
	newTicker func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled      bool
	Days         int
	FutureDays   int
	Interval     time.Duration
	DailyHourUTC int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(schedule providers.ScheduleProvider, builder DatasetBuilder, writer *Writer, cfg SyncConfig, logger *slog.Logger) *Syncer {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.FutureDays < 0 {
		cfg.FutureDays = 0
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}

	return &Syncer{
		schedule:  schedule,
		builder:   builder,
		writer:    writer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		newTicker: time.NewTicker,
	}
}

// Run performs a one-time backfill for the configured window, spaced by
// Interval, then keeps refreshing once a day. Callers should run this in a
// goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.schedule == nil || s.builder == nil {
		return
	}
	s.logInfo(
		"snapshot sync starting",
		"past_days", s.cfg.Days,
		"future_days", s.cfg.FutureDays,
		"interval", s.cfg.Interval.String(),
		"daily_hour_utc", s.cfg.DailyHourUTC,
	)
	s.backfill(ctx, s.now().UTC())
	go s.daily(ctx)
}

func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	dates := s.buildDates(now)
	for i, date := range dates {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, date)
		if i < len(dates)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				s.backfill(ctx, s.now().UTC())
			}
		}
	}
}

func (s *Syncer) buildDates(now time.Time) []string {
	var dates []string
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	// Always refresh today and yesterday to pick up late schedule changes.
	dates = append(dates, today, yesterday)

	// Past window beyond yesterday: only fetch if missing (e.g., startup or outage).
	for i := 2; i < s.cfg.Days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		if !s.hasSnapshot(kindMatchups, date) {
			dates = append(dates, date)
		}
	}

	// Future window: prefetch missing only.
	for i := 1; i <= s.cfg.FutureDays; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")
		if !s.hasSnapshot(kindMatchups, date) {
			dates = append(dates, date)
		}
	}

	return dates
}

func (s *Syncer) fetchAndWrite(ctx context.Context, date string) {
	start := time.Now()
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		s.logWarn("snapshot sync bad date", "date", date, "err", err)
		return
	}

	slate, err := s.schedule.ListGames(ctx, day)
	if err != nil {
		s.logWarn("snapshot sync fetch failed", "date", date, "err", err)
		return
	}
	if len(slate) == 0 {
		s.logInfo("snapshot sync found no games", "date", date)
		return
	}

	datasets := make([]matchups.Dataset, 0, len(slate))
	for _, g := range slate {
		ds, err := s.builder.Build(ctx, g)
		if err != nil {
			s.logWarn("snapshot sync build failed", "date", date, "game", g.ID, "err", err)
			continue
		}
		datasets = append(datasets, ds)
	}
	if len(datasets) == 0 {
		return
	}

	if err := s.writer.WriteMatchupsSnapshot(date, matchups.NewDaily(date, datasets)); err != nil {
		s.logWarn("snapshot sync write failed", "date", date, "err", err)
		return
	}
	s.logInfo("snapshot written",
		"date", date,
		"count", len(datasets),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Syncer) hasSnapshot(kind snapshotKind, date string) bool {
	if s == nil || s.writer == nil || s.writer.basePath == "" || date == "" {
		return false
	}
	path := s.writer.snapshotPath(kind, date)
	_, err := os.Stat(path)
	return err == nil
}
