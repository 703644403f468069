package stats

import (
	"fmt"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/domain/teams"
)

// BuildTeamRecord aggregates a team's completed games into a categorized
// record: overall, home/away, conference/division splits, absolute
// vs-Eastern/vs-Western splits, trailing-window records and current streak.
//
// The input list may arrive in any order; sorting is internal. A nil list is
// a caller contract violation and returns ErrNoGames. An empty list is valid
// and yields a zero record with an empty streak.
func BuildTeamRecord(logs []games.GameLog, team string, class teams.Classification, asOf time.Time, windows []int) (TeamRecord, error) {
	if logs == nil {
		return TeamRecord{}, fmt.Errorf("%w: team %s", ErrNoGames, team)
	}
	if err := validateWindows(windows); err != nil {
		return TeamRecord{}, err
	}

	completed := FilterCompleted(logs, asOf)
	SortChronological(completed)

	rec := TeamRecord{
		Team:  team,
		LastN: make(map[int]WinLoss, len(windows)),
	}

	own, hasOwn := class.Lookup(team)
	for _, l := range completed {
		won := l.Won()
		rec.Overall.add(won)
		if l.IsHome() {
			rec.Home.add(won)
		} else {
			rec.Away.add(won)
		}

		opp, ok := class.Lookup(l.Opponent())
		if !ok {
			// Missing reference data drops the game from the
			// conference buckets only, never from the overall tally.
			continue
		}

		switch opp.Conference {
		case teams.ConferenceEastern:
			rec.VsEastern.add(won)
		case teams.ConferenceWestern:
			rec.VsWestern.add(won)
		}

		if !hasOwn {
			continue
		}
		if opp.Conference == own.Conference {
			rec.Conference.add(won)
			if opp.Division == own.Division {
				rec.Division.add(won)
			} else {
				rec.ConferenceOther.add(won)
			}
		}
	}

	for _, w := range windows {
		rec.LastN[w] = lastNRecord(completed, w)
	}
	rec.Streak = Streak(completed)

	return rec, nil
}

// lastNRecord tallies the trailing n games of a chronologically sorted list.
func lastNRecord(sorted []games.GameLog, n int) WinLoss {
	var wl WinLoss
	start := len(sorted) - n
	if start < 0 {
		start = 0
	}
	for _, l := range sorted[start:] {
		wl.add(l.Won())
	}
	return wl
}

// Streak returns the current run of identical outcomes ending at the most
// recent game of a chronologically sorted, completed list, formatted as
// "W4" or "L2". With no games it returns the empty string.
func Streak(sorted []games.GameLog) string {
	if len(sorted) == 0 {
		return ""
	}
	last := sorted[len(sorted)-1].Won()
	count := 1
	for i := len(sorted) - 2; i >= 0; i-- {
		if sorted[i].Won() != last {
			break
		}
		count++
	}
	tag := "L"
	if last {
		tag = "W"
	}
	return fmt.Sprintf("%s%d", tag, count)
}

// HeadToHead tallies one team's completed games against a single opponent.
// The logs are the team's own logs; wins are from the team's perspective.
func HeadToHead(logs []games.GameLog, opponent string, asOf time.Time) WinLoss {
	var wl WinLoss
	for _, l := range FilterCompleted(logs, asOf) {
		if l.Opponent() != opponent {
			continue
		}
		wl.add(l.Won())
	}
	return wl
}
