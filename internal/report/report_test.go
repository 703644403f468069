package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/stats"
)

func sampleDataset() matchups.Dataset {
	return matchups.Dataset{
		ID:     "2025-01-15-LAL-BOS",
		Date:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Season: "2024-2025-regular",
		Venue:  "TD Garden",
		AwayTeam: matchups.TeamSide{
			Team: "LAL",
			Record: stats.TeamRecord{
				Team:    "LAL",
				Overall: stats.WinLoss{Wins: 21, Losses: 17},
				Home:    stats.WinLoss{Wins: 12, Losses: 7},
				Away:    stats.WinLoss{Wins: 9, Losses: 10},
				LastN:   map[int]stats.WinLoss{5: {Wins: 3, Losses: 2}},
				Streak:  "W2",
			},
			Rolling: map[int]stats.WindowAverages{
				5:  {GamesIncluded: 5, PointsScored: 112.4, PointsAllowed: 108.1, FGPct: 47.2},
				10: {GamesIncluded: 10, PointsScored: 110.9, PointsAllowed: 109.5, FGPct: 46.1},
			},
		},
		HomeTeam: matchups.TeamSide{
			Team: "BOS",
			Record: stats.TeamRecord{
				Team:    "BOS",
				Overall: stats.WinLoss{Wins: 28, Losses: 10},
				LastN:   map[int]stats.WinLoss{5: {Wins: 4, Losses: 1}},
				Streak:  "L1",
			},
			Rolling: map[int]stats.WindowAverages{
				5:  {GamesIncluded: 5, PointsScored: 118.0, PointsAllowed: 105.3, FGPct: 49.8},
				10: {GamesIncluded: 10, PointsScored: 117.2, PointsAllowed: 106.8, FGPct: 48.9},
			},
		},
		HeadToHead: stats.WinLoss{Wins: 1, Losses: 1},
	}
}

func TestTextIncludesRecordsAndAverages(t *testing.T) {
	out := Text(sampleDataset())

	for _, want := range []string{
		"LAL @ BOS on 2025-01-15 (TD Garden)",
		"21-17",
		"28-10",
		"Last 5",
		"W2",
		"L1",
		"112.4",
		"118",
		"HEAD-TO-HEAD",
		"1-1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestTextRendersEmptyStreakAsDash(t *testing.T) {
	ds := sampleDataset()
	ds.AwayTeam.Record.Streak = ""

	out := Text(ds)
	if !strings.Contains(out, "Streak") {
		t.Fatalf("expected streak row:\n%s", out)
	}
	if strings.Contains(out, "W2") {
		t.Fatalf("did not expect cleared streak in output:\n%s", out)
	}
}

func TestRollingWindowsSortedUnion(t *testing.T) {
	ds := sampleDataset()
	ds.HomeTeam.Rolling[20] = stats.WindowAverages{GamesIncluded: 20}

	got := rollingWindows(ds)
	want := []int{5, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestWriteIndex(t *testing.T) {
	dir := t.TempDir()
	daily := matchups.NewDaily("2025-01-15", []matchups.Dataset{sampleDataset()})

	if err := WriteIndex(daily, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("expected index file: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"Matchup reports for 2025-01-15",
		`href="2025-01-15-LAL-BOS.html"`,
		"LAL @ BOS",
		"21-17",
		"28-10",
		"TD Garden",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected index to contain %q:\n%s", want, html)
		}
	}
}

func TestWriteIndexEmptyDay(t *testing.T) {
	dir := t.TempDir()

	if err := WriteIndex(matchups.NewDaily("2025-01-15", nil), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Fatalf("expected index file: %v", err)
	}
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2025-01-15-LAL-BOS.html")

	if err := WriteHTML(sampleDataset(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "LAL") || !strings.Contains(html, "BOS") {
		t.Fatal("expected both teams in rendered report")
	}
	if !strings.Contains(html, "echarts") {
		t.Fatal("expected echarts assets in rendered report")
	}
}
