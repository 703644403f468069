package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/metrics"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/timeutil"
)

const defaultInterval = 5 * time.Minute

// SnapshotWriter persists daily matchup snapshots to disk.
type SnapshotWriter interface {
	WriteMatchupsSnapshot(date string, snapshot matchups.Daily) error
}

// DatasetBuilder assembles the matchup dataset for one scheduled game.
type DatasetBuilder interface {
	Build(ctx context.Context, game games.Game) (matchups.Dataset, error)
}

// DatasetStore holds the current set of datasets for serving.
type DatasetStore interface {
	SetDatasets([]matchups.Dataset)
}

// Poller refreshes today's matchup datasets on an interval: it fetches the
// day's slate, builds a dataset per scheduled game, swaps them into the store
// and writes the daily snapshot to disk.
type Poller struct {
	schedule providers.ScheduleProvider
	builder  DatasetBuilder
	store    DatasetStore
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(schedule providers.ScheduleProvider, builder DatasetBuilder, store DatasetStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		schedule: schedule,
		builder:  builder,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs a single refresh cycle outside the interval, used by the
// admin endpoint.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.refreshOnce(ctx)
}

func (p *Poller) refreshOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)
	day := p.now().UTC()
	today := timeutil.FormatDate(day)

	slate, err := p.schedule.ListGames(ctx, day)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordPollerCycle(time.Since(start), err)
		}
		p.logError("poller slate fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	datasets := make([]matchups.Dataset, 0, len(slate))
	var buildErr error
	for _, g := range slate {
		ds, err := p.builder.Build(ctx, g)
		if err != nil {
			buildErr = err
			p.logError("poller matchup build failed", err, slog.String(logging.FieldMatchup, g.ID))
			continue
		}
		datasets = append(datasets, ds)
	}
	if len(slate) > 0 && len(datasets) == 0 {
		err := fmt.Errorf("no matchups built for %s: %w", today, buildErr)
		if p.metrics != nil {
			p.metrics.RecordPollerCycle(time.Since(start), err)
		}
		p.recordFailure(err, start)
		return err
	}

	if p.store != nil {
		p.store.SetDatasets(datasets)
	}
	if p.writer != nil && len(datasets) > 0 {
		if writeErr := p.writer.WriteMatchupsSnapshot(today, matchups.NewDaily(today, datasets)); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), nil)
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed matchups",
		logging.FieldCount, len(datasets),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying schedule provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.ScheduleProvider {
	return p.schedule
}
