package stats

import (
	"math"
	"time"

	"nba-matchup-service/internal/domain/games"
)

// RollingAverages computes per-game statistical averages over the trailing
// window of each requested size. The slice for each window is the last N
// chronologically ordered completed games that carry a box score; when fewer
// exist, the divisor is the actual count, never the requested N.
//
// Every window in the result is fully populated: a window with no eligible
// games is a zero-valued WindowAverages with GamesIncluded 0, not a missing
// key. Shooting percentages guard zero attempts, so no result is ever NaN.
func RollingAverages(logs []games.GameLog, asOf time.Time, windows []int) (map[int]WindowAverages, error) {
	if logs == nil {
		return nil, ErrNoGames
	}
	if err := validateWindows(windows); err != nil {
		return nil, err
	}

	completed := FilterCompleted(logs, asOf)
	SortChronological(completed)

	// Averaging needs box-score totals; completed games without one still
	// count for records but cannot contribute to a statistical window.
	scored := completed[:0:0]
	for _, l := range completed {
		if l.Stats != nil {
			scored = append(scored, l)
		}
	}

	out := make(map[int]WindowAverages, len(windows))
	for _, w := range windows {
		out[w] = windowAverages(scored, w)
	}
	return out, nil
}

type totals struct {
	pts, ptsAgainst        int
	fgMade, fgAtt          int
	fg3Made, fg3Att        int
	fg2Made, fg2Att        int
	ftMade, ftAtt          int
	offReb, defReb, totReb int
	ast, stl, blk, tov     int
}

func windowAverages(sorted []games.GameLog, n int) WindowAverages {
	start := len(sorted) - n
	if start < 0 {
		start = 0
	}
	slice := sorted[start:]
	actual := len(slice)
	if actual == 0 {
		return WindowAverages{}
	}

	var t totals
	for _, l := range slice {
		s := l.Stats
		t.pts += s.Points
		t.ptsAgainst += s.PointsAgainst
		t.fgMade += s.FGMade
		t.fgAtt += s.FGAtt
		t.fg3Made += s.FG3Made
		t.fg3Att += s.FG3Att
		if s.HasFG2 {
			t.fg2Made += s.FG2Made
			t.fg2Att += s.FG2Att
		} else {
			// Derive two-point totals when the feed reports only
			// overall and three-point splits.
			t.fg2Made += s.FGMade - s.FG3Made
			t.fg2Att += s.FGAtt - s.FG3Att
		}
		t.ftMade += s.FTMade
		t.ftAtt += s.FTAtt
		t.offReb += s.OffReb
		t.defReb += s.DefReb
		t.totReb += s.TotReb
		t.ast += s.Assists
		t.stl += s.Steals
		t.blk += s.Blocks
		t.tov += s.Turnovers
	}

	return WindowAverages{
		GamesIncluded: actual,
		PointsScored:  perGame(t.pts, actual),
		PointsAllowed: perGame(t.ptsAgainst, actual),
		FGMade:        perGame(t.fgMade, actual),
		FGAtt:         perGame(t.fgAtt, actual),
		FGPct:         pct(t.fgMade, t.fgAtt),
		FG3Made:       perGame(t.fg3Made, actual),
		FG3Att:        perGame(t.fg3Att, actual),
		FG3Pct:        pct(t.fg3Made, t.fg3Att),
		FG2Made:       perGame(t.fg2Made, actual),
		FG2Att:        perGame(t.fg2Att, actual),
		FG2Pct:        pct(t.fg2Made, t.fg2Att),
		FTMade:        perGame(t.ftMade, actual),
		FTAtt:         perGame(t.ftAtt, actual),
		FTPct:         pct(t.ftMade, t.ftAtt),
		OffReb:        perGame(t.offReb, actual),
		DefReb:        perGame(t.defReb, actual),
		TotReb:        perGame(t.totReb, actual),
		Assists:       perGame(t.ast, actual),
		Steals:        perGame(t.stl, actual),
		Blocks:        perGame(t.blk, actual),
		Turnovers:     perGame(t.tov, actual),
	}
}

func perGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return round1(float64(total) / float64(games))
}

func pct(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return round1(float64(made) / float64(attempted) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
