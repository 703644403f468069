package stats

import (
	"sort"
	"time"

	"nba-matchup-service/internal/domain/games"
)

// TeamSummary is the per-team season line used for league-wide rankings.
type TeamSummary struct {
	Team          string  `json:"team"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     float64 `json:"pointsFor"`     // points scored per game
	PointsAgainst float64 `json:"pointsAgainst"` // points allowed per game
}

// WinPct returns the team's winning percentage, 0 when no games were played.
func (s TeamSummary) WinPct() float64 {
	total := s.Wins + s.Losses
	if total == 0 {
		return 0
	}
	return float64(s.Wins) / float64(total)
}

// SummarizeTeam reduces a team's game logs to the season line used for league
// rankings. Only completed games count, restricted to the asOf cutoff when it
// is non-zero; per-game points are rounded to one decimal place.
func SummarizeTeam(logs []games.GameLog, team string, asOf time.Time) TeamSummary {
	completed := FilterCompleted(logs, asOf)

	summary := TeamSummary{Team: team}
	var scored, allowed int
	for _, l := range completed {
		if l.Won() {
			summary.Wins++
		} else {
			summary.Losses++
		}
		scored += l.TeamScore()
		allowed += l.OpponentScore()
	}
	if n := len(completed); n > 0 {
		summary.PointsFor = round1(float64(scored) / float64(n))
		summary.PointsAgainst = round1(float64(allowed) / float64(n))
	}
	return summary
}

// LeagueRanks maps team abbreviations to 1-based league ranks.
type LeagueRanks struct {
	Overall   map[string]int `json:"overall"`   // by win percentage, best first
	Offensive map[string]int `json:"offensive"` // by points scored per game, best first
	Defensive map[string]int `json:"defensive"` // by points allowed per game, fewest first
}

// RankTeams computes league ranks from per-team summaries. Ordering is
// deterministic: ties fall back to total wins, then to the abbreviation.
func RankTeams(summaries []TeamSummary) LeagueRanks {
	ranks := LeagueRanks{
		Overall:   rankBy(summaries, func(a, b TeamSummary) bool { return a.WinPct() > b.WinPct() }),
		Offensive: rankBy(summaries, func(a, b TeamSummary) bool { return a.PointsFor > b.PointsFor }),
		Defensive: rankBy(summaries, func(a, b TeamSummary) bool { return a.PointsAgainst < b.PointsAgainst }),
	}
	return ranks
}

func rankBy(summaries []TeamSummary, better func(a, b TeamSummary) bool) map[string]int {
	ordered := make([]TeamSummary, len(summaries))
	copy(ordered, summaries)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if better(a, b) != better(b, a) {
			return better(a, b)
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Team < b.Team
	})

	out := make(map[string]int, len(ordered))
	for i, s := range ordered {
		out[s.Team] = i + 1
	}
	return out
}
