package stats

import (
	"sort"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/timeutil"
)

// FilterCompleted returns the logs with a definitive final result, restricted
// to games on or before asOf when asOf is non-zero (cutoff is inclusive).
//
// Games that are not final, have a negative score, or report a tie (not a
// valid basketball result) are dropped silently; malformed entries never
// count as a win or a loss.
func FilterCompleted(logs []games.GameLog, asOf time.Time) []games.GameLog {
	out := make([]games.GameLog, 0, len(logs))
	for _, l := range logs {
		if l.Game.Status != games.StatusFinal {
			continue
		}
		if l.Game.Score.Home < 0 || l.Game.Score.Away < 0 {
			continue
		}
		if l.Game.Score.Home == l.Game.Score.Away {
			continue
		}
		when, ok := chronoKey(l.Game)
		if !ok {
			continue
		}
		if !asOf.IsZero() && dateOnly(when).After(dateOnly(asOf)) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortChronological orders logs ascending by game date, in place. The sort is
// deterministic: equal dates fall back to the game ID so repeated calls with
// the same (unordered) input always produce the same output.
func SortChronological(logs []games.GameLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		ti, _ := chronoKey(logs[i].Game)
		tj, _ := chronoKey(logs[j].Game)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return logs[i].Game.ID < logs[j].Game.ID
	})
}

// chronoKey derives the ordering key for a game. The date field is the
// primary key; when it is missing, the YYYYMMDD prefix some vendors embed in
// the game ID is used as a documented fallback.
func chronoKey(g games.Game) (time.Time, bool) {
	if !g.Date.IsZero() {
		return g.Date, true
	}
	if len(g.ID) >= len(timeutil.CompactDateLayout) {
		if t, err := timeutil.ParseCompactDate(g.ID[:len(timeutil.CompactDateLayout)]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
