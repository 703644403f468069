package matchups_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/metrics"
	"nba-matchup-service/internal/teststubs"
)

func scheduledGame(away, home, date string) games.Game {
	d, _ := time.Parse("2006-01-02", date)
	return games.Game{
		ID:       d.Format("20060102") + "-" + away + "-" + home,
		HomeTeam: home,
		AwayTeam: away,
		Date:     d,
		Status:   games.StatusScheduled,
		Meta:     games.GameMeta{Season: "2024-2025-regular", Venue: "TD Garden"},
	}
}

func completedLog(team, opp string, home bool, teamScore, oppScore int, date string) games.GameLog {
	d, _ := time.Parse("2006-01-02", date)
	g := games.Game{Date: d, Status: games.StatusFinal, Provider: "test"}
	if home {
		g.HomeTeam, g.AwayTeam = team, opp
		g.Score = games.Score{Home: teamScore, Away: oppScore}
		g.ID = d.Format("20060102") + "-" + opp + "-" + team
	} else {
		g.HomeTeam, g.AwayTeam = opp, team
		g.Score = games.Score{Home: oppScore, Away: teamScore}
		g.ID = d.Format("20060102") + "-" + team + "-" + opp
	}
	return games.GameLog{Team: team, Game: g, Stats: &games.BoxScore{Points: teamScore, PointsAgainst: oppScore}}
}

func TestBuildAssemblesBothSides(t *testing.T) {
	provider := &teststubs.StubProvider{Logs: []games.GameLog{
		completedLog("LAL", "GSW", true, 110, 100, "2025-01-02"),
		completedLog("LAL", "BOS", false, 95, 101, "2025-01-04"),
		completedLog("BOS", "NYK", true, 120, 90, "2025-01-02"),
		completedLog("BOS", "LAL", true, 101, 95, "2025-01-04"),
	}}
	svc := matchups.NewService(provider, nil, nil, metrics.NewRecorder(), nil)

	ds, err := svc.Build(context.Background(), scheduledGame("LAL", "BOS", "2025-01-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ds.ID != "2025-01-10-LAL-BOS" {
		t.Fatalf("unexpected dataset ID %q", ds.ID)
	}
	if ds.Season != "2024-2025-regular" {
		t.Fatalf("unexpected season %q", ds.Season)
	}
	if ds.Venue != "TD Garden" {
		t.Fatalf("unexpected venue %q", ds.Venue)
	}
	if got := ds.AwayTeam.Record.Overall.String(); got != "1-1" {
		t.Fatalf("away overall: got %s want 1-1", got)
	}
	if got := ds.HomeTeam.Record.Overall.String(); got != "2-0" {
		t.Fatalf("home overall: got %s want 2-0", got)
	}
	// LAL lost its only meeting with BOS.
	if got := ds.HeadToHead.String(); got != "0-1" {
		t.Fatalf("head-to-head: got %s want 0-1", got)
	}
	if ds.AwayTeam.Rolling == nil || ds.HomeTeam.Rolling == nil {
		t.Fatal("expected rolling averages on both sides")
	}
	if ds.GeneratedAt.IsZero() {
		t.Fatal("expected GeneratedAt to be set")
	}
}

func TestBuildRejectsIncompleteMatchup(t *testing.T) {
	svc := matchups.NewService(&teststubs.StubProvider{}, nil, nil, metrics.NewRecorder(), nil)

	g := scheduledGame("LAL", "BOS", "2025-01-10")
	g.HomeTeam = ""
	if _, err := svc.Build(context.Background(), g); err == nil {
		t.Fatal("expected error for matchup missing a team")
	}
}

func TestBuildPropagatesProviderError(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("upstream down")}
	svc := matchups.NewService(provider, nil, nil, metrics.NewRecorder(), nil)

	if _, err := svc.Build(context.Background(), scheduledGame("LAL", "BOS", "2025-01-10")); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestBuildRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := &teststubs.StubProvider{Logs: []games.GameLog{
		completedLog("LAL", "GSW", true, 110, 100, "2025-01-02"),
		completedLog("BOS", "NYK", true, 120, 90, "2025-01-02"),
	}}
	svc := matchups.NewService(provider, nil, nil, rec, nil)

	if _, err := svc.Build(context.Background(), scheduledGame("LAL", "BOS", "2025-01-10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MatchupBuilds() != 1 {
		t.Fatalf("expected 1 build recorded, got %d", rec.MatchupBuilds())
	}
	if rec.MatchupBuildErrors() != 0 {
		t.Fatalf("expected no build errors, got %d", rec.MatchupBuildErrors())
	}
}

func TestRecordAndRollingForSingleTeam(t *testing.T) {
	provider := &teststubs.StubProvider{Logs: []games.GameLog{
		completedLog("BOS", "NYK", true, 110, 100, "2025-01-02"),
		completedLog("BOS", "LAL", false, 95, 101, "2025-01-04"),
	}}
	svc := matchups.NewService(provider, nil, []int{3}, metrics.NewRecorder(), nil)
	asOf, _ := time.Parse("2006-01-02", "2025-01-10")

	record, err := svc.Record(context.Background(), "BOS", asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := record.Overall.String(); got != "1-1" {
		t.Fatalf("overall: got %s want 1-1", got)
	}

	rolling, err := svc.Rolling(context.Background(), "BOS", asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rolling[3].GamesIncluded != 2 {
		t.Fatalf("gamesIncluded: got %d want 2", rolling[3].GamesIncluded)
	}
}
