package providers

import (
	"context"
	"time"

	"nba-matchup-service/internal/domain/games"
)

// GameLogProvider fetches a team's normalized game logs for a season. A
// non-zero asOf restricts the logs to games on or before that date; providers
// that support server-side cutoffs should push it upstream, others may return
// the full season and let callers filter.
type GameLogProvider interface {
	ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error)
}

// ScheduleProvider fetches the normalized slate of games for a single day.
type ScheduleProvider interface {
	ListGames(ctx context.Context, date time.Time) ([]games.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameLogProvider
	ScheduleProvider
}
