package matchups

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/domain/teams"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/metrics"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/stats"
	"nba-matchup-service/internal/timeutil"
)

// Service builds matchup datasets from a team's game logs. Both sides of a
// matchup are fetched concurrently; the stats aggregation itself is pure.
type Service struct {
	provider providers.GameLogProvider
	class    teams.Classification
	windows  []int
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a matchup Service. Nil windows fall back to the
// default trailing-window sizes.
func NewService(provider providers.GameLogProvider, class teams.Classification, windows []int, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if len(windows) == 0 {
		windows = stats.DefaultWindows
	}
	if class == nil {
		class = teams.NBAClassification()
	}
	return &Service{
		provider: provider,
		class:    class,
		windows:  windows,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Build assembles the dataset for one scheduled game, computing both teams'
// records and rolling averages as of the game date.
func (s *Service) Build(ctx context.Context, game games.Game) (Dataset, error) {
	id := DatasetID(game.Date, game.AwayTeam, game.HomeTeam)
	start := s.now()
	ds, err := s.build(ctx, game)
	s.recorder.RecordMatchupBuild(id, s.now().Sub(start), err)
	if err != nil {
		s.logError(ctx, "matchup build failed", "matchup", id, "err", err)
		return Dataset{}, err
	}
	return ds, nil
}

func (s *Service) build(ctx context.Context, game games.Game) (Dataset, error) {
	if game.HomeTeam == "" || game.AwayTeam == "" {
		return Dataset{}, fmt.Errorf("matchup needs both teams, got home=%q away=%q", game.HomeTeam, game.AwayTeam)
	}

	asOf := game.Date
	season := game.Meta.Season
	if season == "" {
		season = timeutil.SeasonForDate(asOf)
	}

	type fetchResult struct {
		logs []games.GameLog
		err  error
	}

	fetch := func(team string) chan fetchResult {
		ch := make(chan fetchResult, 1)
		go func() {
			logs, err := s.provider.ListGameLogs(ctx, team, season, asOf)
			ch <- fetchResult{logs: logs, err: err}
		}()
		return ch
	}

	awayCh := fetch(game.AwayTeam)
	homeCh := fetch(game.HomeTeam)

	awayRes := <-awayCh
	homeRes := <-homeCh
	if awayRes.err != nil {
		return Dataset{}, fmt.Errorf("fetch %s game logs: %w", game.AwayTeam, awayRes.err)
	}
	if homeRes.err != nil {
		return Dataset{}, fmt.Errorf("fetch %s game logs: %w", game.HomeTeam, homeRes.err)
	}

	away, err := s.buildSide(game.AwayTeam, awayRes.logs, asOf)
	if err != nil {
		return Dataset{}, err
	}
	home, err := s.buildSide(game.HomeTeam, homeRes.logs, asOf)
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{
		ID:          DatasetID(asOf, game.AwayTeam, game.HomeTeam),
		Date:        asOf,
		Season:      season,
		Venue:       game.Meta.Venue,
		AwayTeam:    away,
		HomeTeam:    home,
		HeadToHead:  stats.HeadToHead(awayRes.logs, game.HomeTeam, asOf),
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *Service) buildSide(team string, logs []games.GameLog, asOf time.Time) (TeamSide, error) {
	if logs == nil {
		// Providers signal "no data" with an empty slice; nil reaching
		// this point is a wiring bug upstream.
		logs = []games.GameLog{}
	}

	record, err := stats.BuildTeamRecord(logs, team, s.class, asOf, s.windows)
	if err != nil {
		return TeamSide{}, fmt.Errorf("build %s record: %w", team, err)
	}
	rolling, err := stats.RollingAverages(logs, asOf, s.windows)
	if err != nil {
		return TeamSide{}, fmt.Errorf("build %s rolling averages: %w", team, err)
	}

	return TeamSide{Team: team, Record: record, Rolling: rolling}, nil
}

// Record computes a single team's categorized record as of a date, fetching
// its logs for the season containing that date.
func (s *Service) Record(ctx context.Context, team string, asOf time.Time) (stats.TeamRecord, error) {
	logs, err := s.provider.ListGameLogs(ctx, team, timeutil.SeasonForDate(asOf), asOf)
	if err != nil {
		return stats.TeamRecord{}, fmt.Errorf("fetch %s game logs: %w", team, err)
	}
	if logs == nil {
		logs = []games.GameLog{}
	}
	return stats.BuildTeamRecord(logs, team, s.class, asOf, s.windows)
}

// Rolling computes a single team's rolling averages as of a date.
func (s *Service) Rolling(ctx context.Context, team string, asOf time.Time) (map[int]stats.WindowAverages, error) {
	logs, err := s.provider.ListGameLogs(ctx, team, timeutil.SeasonForDate(asOf), asOf)
	if err != nil {
		return nil, fmt.Errorf("fetch %s game logs: %w", team, err)
	}
	if logs == nil {
		logs = []games.GameLog{}
	}
	return stats.RollingAverages(logs, asOf, s.windows)
}

func (s *Service) logError(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Error(msg, args...)
	}
}
