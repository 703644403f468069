package teststubs

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/domain/games"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Logs   []games.GameLog
	Slate  []games.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// ListGameLogs returns configured logs and error while tracking calls.
func (s *StubProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	_ = ctx
	_ = season
	_ = asOf
	s.notify()
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]games.GameLog, 0, len(s.Logs))
	for _, l := range s.Logs {
		if l.Team == team || team == "" {
			out = append(out, l)
		}
	}
	return out, nil
}

// ListGames returns the configured slate and error while tracking calls.
func (s *StubProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	_ = ctx
	_ = date
	s.notify()
	s.Calls.Add(1)
	return s.Slate, s.Err
}

func (s *StubProvider) notify() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
}

// StubBuilder is a test double for the matchup dataset builder.
type StubBuilder struct {
	Err    error
	Builds atomic.Int32
}

// Build returns a minimal dataset derived from the game, or the configured error.
func (b *StubBuilder) Build(ctx context.Context, g games.Game) (matchups.Dataset, error) {
	_ = ctx
	b.Builds.Add(1)
	if b.Err != nil {
		return matchups.Dataset{}, b.Err
	}
	return matchups.Dataset{
		ID:   matchups.DatasetID(g.Date, g.AwayTeam, g.HomeTeam),
		Date: g.Date,
	}, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string]matchups.Daily // keyed by date
	Err     error
}

// WriteMatchupsSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteMatchupsSnapshot(date string, snapshot matchups.Daily) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]matchups.Daily)
	}
	w.Written[date] = snapshot
	return nil
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Daily   map[string]matchups.Daily // keyed by date
	LoadErr error
}

// LoadMatchups returns the daily payload for the given date if present.
func (s *StubSnapshotStore) LoadMatchups(date string) (matchups.Daily, error) {
	if s.LoadErr != nil {
		return matchups.Daily{}, s.LoadErr
	}
	daily, ok := s.Daily[date]
	if !ok {
		return matchups.Daily{}, errors.New("snapshot not found")
	}
	return daily, nil
}
