package stats

import (
	"errors"
	"testing"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/domain/teams"
)

// testClassification is a small fixed league: two conferences, two divisions each.
func testClassification() teams.Classification {
	return teams.Classification{
		"BOS": {Abbreviation: "BOS", Conference: teams.ConferenceEastern, Division: teams.DivisionAtlantic},
		"NYK": {Abbreviation: "NYK", Conference: teams.ConferenceEastern, Division: teams.DivisionAtlantic},
		"MIL": {Abbreviation: "MIL", Conference: teams.ConferenceEastern, Division: teams.DivisionCentral},
		"LAL": {Abbreviation: "LAL", Conference: teams.ConferenceWestern, Division: teams.DivisionPacific},
		"GSW": {Abbreviation: "GSW", Conference: teams.ConferenceWestern, Division: teams.DivisionPacific},
		"DEN": {Abbreviation: "DEN", Conference: teams.ConferenceWestern, Division: teams.DivisionNorthwest},
	}
}

func finalGame(team, opp string, home bool, teamScore, oppScore int, date string) games.GameLog {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	g := games.Game{
		Provider: "test",
		Date:     d,
		Status:   games.StatusFinal,
	}
	if home {
		g.HomeTeam, g.AwayTeam = team, opp
		g.Score = games.Score{Home: teamScore, Away: oppScore}
		g.ID = d.Format("20060102") + "-" + opp + "-" + team
	} else {
		g.HomeTeam, g.AwayTeam = opp, team
		g.Score = games.Score{Home: oppScore, Away: teamScore}
		g.ID = d.Format("20060102") + "-" + team + "-" + opp
	}
	return games.GameLog{Team: team, Game: g}
}

func TestBuildTeamRecordConcreteScenario(t *testing.T) {
	// Chronological: vs A home win, vs B away loss, vs A home win.
	logs := []games.GameLog{
		finalGame("BOS", "NYK", true, 110, 100, "2025-01-02"),
		finalGame("BOS", "LAL", false, 95, 101, "2025-01-04"),
		finalGame("BOS", "NYK", true, 120, 90, "2025-01-06"),
	}

	rec, err := BuildTeamRecord(logs, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Overall.String(); got != "2-1" {
		t.Fatalf("overall: got %s want 2-1", got)
	}
	if got := rec.Home.String(); got != "2-0" {
		t.Fatalf("home: got %s want 2-0", got)
	}
	if got := rec.Away.String(); got != "0-1" {
		t.Fatalf("away: got %s want 0-1", got)
	}
	if rec.Streak != "W1" {
		t.Fatalf("streak: got %q want W1", rec.Streak)
	}
}

func TestStreakTrailingRun(t *testing.T) {
	// W W L W W W -> W3.
	outcomes := []struct {
		win  bool
		date string
	}{
		{true, "2025-01-01"}, {true, "2025-01-03"}, {false, "2025-01-05"},
		{true, "2025-01-07"}, {true, "2025-01-09"}, {true, "2025-01-11"},
	}
	var logs []games.GameLog
	for _, o := range outcomes {
		ts, os := 100, 90
		if !o.win {
			ts, os = 90, 100
		}
		logs = append(logs, finalGame("BOS", "NYK", true, ts, os, o.date))
	}
	SortChronological(logs)
	if got := Streak(logs); got != "W3" {
		t.Fatalf("streak: got %q want W3", got)
	}
}

func TestStreakEmptyListIsEmptyString(t *testing.T) {
	if got := Streak(nil); got != "" {
		t.Fatalf("expected empty streak, got %q", got)
	}
}

func TestBuildTeamRecordNilLogsIsContractViolation(t *testing.T) {
	_, err := BuildTeamRecord(nil, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if !errors.Is(err, ErrNoGames) {
		t.Fatalf("expected ErrNoGames, got %v", err)
	}
}

func TestBuildTeamRecordRejectsInvalidWindow(t *testing.T) {
	_, err := BuildTeamRecord([]games.GameLog{}, "BOS", testClassification(), time.Time{}, []int{3, 0})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestBuildTeamRecordEmptyListYieldsZeroRecord(t *testing.T) {
	rec, err := BuildTeamRecord([]games.GameLog{}, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Overall.Total() != 0 || rec.Streak != "" {
		t.Fatalf("expected zero record with empty streak, got %+v", rec)
	}
	if got := rec.LastN[3].String(); got != "0-0" {
		t.Fatalf("last3: got %s want 0-0", got)
	}
}

func TestRecordPartitionsSumToOverall(t *testing.T) {
	logs := []games.GameLog{
		finalGame("BOS", "NYK", true, 110, 100, "2025-01-01"),  // division win
		finalGame("BOS", "MIL", false, 90, 100, "2025-01-03"),  // conference-other loss
		finalGame("BOS", "LAL", true, 105, 99, "2025-01-05"),   // cross-conference win
		finalGame("BOS", "GSW", false, 112, 108, "2025-01-07"), // cross-conference win
		finalGame("BOS", "NYK", false, 88, 92, "2025-01-09"),   // division loss
		finalGame("BOS", "DEN", true, 120, 118, "2025-01-11"),  // cross-conference win
	}

	rec, err := BuildTeamRecord(logs, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overall := rec.Overall.Total()
	if overall != len(logs) {
		t.Fatalf("overall total: got %d want %d", overall, len(logs))
	}
	if got := rec.Home.Total() + rec.Away.Total(); got != overall {
		t.Fatalf("home+away: got %d want %d", got, overall)
	}
	crossConference := rec.VsEastern.Total() + rec.VsWestern.Total() - rec.Conference.Total()
	if got := rec.Division.Total() + rec.ConferenceOther.Total() + crossConference; got != overall {
		t.Fatalf("category partition: got %d want %d", got, overall)
	}
	if got := rec.Division.String(); got != "1-1" {
		t.Fatalf("division: got %s want 1-1", got)
	}
	if got := rec.ConferenceOther.String(); got != "0-1" {
		t.Fatalf("conference-other: got %s want 0-1", got)
	}
	if got := rec.Conference.String(); got != "1-2" {
		t.Fatalf("conference: got %s want 1-2", got)
	}
}

func TestVsConferenceSplitsAreAbsolute(t *testing.T) {
	// A Western team still gets both splits, keyed by opponent conference.
	logs := []games.GameLog{
		finalGame("LAL", "BOS", true, 110, 100, "2025-01-01"),
		finalGame("LAL", "GSW", false, 95, 101, "2025-01-03"),
	}
	rec, err := BuildTeamRecord(logs, "LAL", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.VsEastern.String(); got != "1-0" {
		t.Fatalf("vsEastern: got %s want 1-0", got)
	}
	if got := rec.VsWestern.String(); got != "0-1" {
		t.Fatalf("vsWestern: got %s want 0-1", got)
	}
}

func TestUnclassifiedOpponentCountsTowardOverallOnly(t *testing.T) {
	logs := []games.GameLog{
		finalGame("BOS", "XXX", true, 110, 100, "2025-01-01"),
		finalGame("BOS", "NYK", false, 90, 100, "2025-01-03"),
	}
	rec, err := BuildTeamRecord(logs, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Overall.Total() != 2 {
		t.Fatalf("overall total: got %d want 2", rec.Overall.Total())
	}
	if rec.Home.Total() != 1 || rec.Away.Total() != 1 {
		t.Fatalf("home/away split: got %d/%d", rec.Home.Total(), rec.Away.Total())
	}
	categorized := rec.Division.Total() + rec.ConferenceOther.Total() + rec.VsEastern.Total() + rec.VsWestern.Total() - rec.Conference.Total()
	if categorized != 1 {
		t.Fatalf("expected only the classified game in conference buckets, got %d", categorized)
	}
}

func TestBuildTeamRecordIsIdempotentOnUnsortedInput(t *testing.T) {
	shuffled := []games.GameLog{
		finalGame("BOS", "NYK", true, 120, 90, "2025-01-06"),
		finalGame("BOS", "NYK", true, 110, 100, "2025-01-02"),
		finalGame("BOS", "LAL", false, 95, 101, "2025-01-04"),
	}

	first, err := BuildTeamRecord(shuffled, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildTeamRecord(shuffled, "BOS", testClassification(), time.Time{}, DefaultWindows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Streak != second.Streak || first.Overall != second.Overall || first.LastN[3] != second.LastN[3] {
		t.Fatalf("results differ between calls: %+v vs %+v", first, second)
	}
	if first.Streak != "W1" {
		t.Fatalf("streak after internal sort: got %q want W1", first.Streak)
	}
}

func TestLastNWindowSmallerThanAvailable(t *testing.T) {
	var logs []games.GameLog
	dates := []string{"2025-01-01", "2025-01-03", "2025-01-05", "2025-01-07", "2025-01-09"}
	for i, d := range dates {
		ts, os := 100, 90
		if i%2 == 1 {
			ts, os = 90, 100
		}
		logs = append(logs, finalGame("BOS", "NYK", true, ts, os, d))
	}

	rec, err := BuildTeamRecord(logs, "BOS", testClassification(), time.Time{}, []int{3, 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Last 3 of W L W L W is W L W.
	if got := rec.LastN[3].String(); got != "2-1" {
		t.Fatalf("last3: got %s want 2-1", got)
	}
	// 12-game window with only 5 games reflects exactly those 5, no padding.
	if got := rec.LastN[12].Total(); got != 5 {
		t.Fatalf("last12 total: got %d want 5", got)
	}
	if got := rec.LastN[12].String(); got != "3-2" {
		t.Fatalf("last12: got %s want 3-2", got)
	}
}

func TestRecordSummaryFormats(t *testing.T) {
	rec := TeamRecord{
		Team:    "BOS",
		Overall: WinLoss{Wins: 10, Losses: 4},
		Home:    WinLoss{Wins: 6, Losses: 1},
		LastN:   map[int]WinLoss{3: {Wins: 2, Losses: 1}, 7: {Wins: 5, Losses: 2}},
		Streak:  "W4",
	}

	sum := rec.Summary()
	if sum.Overall != "10-4" || sum.Home != "6-1" {
		t.Fatalf("summary records wrong: %+v", sum)
	}
	if sum.Last3 != "2-1" || sum.Last7 != "5-2" {
		t.Fatalf("summary windows wrong: %+v", sum)
	}
	// Missing windows still format as an empty tally.
	if sum.Last12 != "0-0" {
		t.Fatalf("last12: got %s want 0-0", sum.Last12)
	}
	if sum.Streak != "W4" {
		t.Fatalf("streak: got %s want W4", sum.Streak)
	}
}

func TestHeadToHead(t *testing.T) {
	logs := []games.GameLog{
		finalGame("MIL", "PHI", false, 110, 100, "2025-01-02"),
		finalGame("MIL", "BOS", true, 95, 101, "2025-01-04"),
		finalGame("MIL", "PHI", true, 90, 100, "2025-01-06"),
	}
	wl := HeadToHead(logs, "PHI", time.Time{})
	if got := wl.String(); got != "1-1" {
		t.Fatalf("h2h: got %s want 1-1", got)
	}
}
