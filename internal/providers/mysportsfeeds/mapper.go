package mysportsfeeds

import (
	"fmt"
	"strings"
	"time"

	"nba-matchup-service/internal/domain/games"
)

// The feed uses a handful of legacy abbreviations that differ from the
// league's current ones. Normalize on the way in and translate back on the
// way out so callers only ever see the current forms.
var feedToLeague = map[string]string{
	"BRO": "BKN",
	"OKL": "OKC",
}

var leagueToFeed = map[string]string{
	"BKN": "BRO",
	"OKC": "OKL",
}

func normalizeAbbreviation(abbr string) string {
	abbr = strings.ToUpper(abbr)
	if mapped, ok := feedToLeague[abbr]; ok {
		return mapped
	}
	return abbr
}

func feedAbbreviation(abbr string) string {
	abbr = strings.ToUpper(abbr)
	if mapped, ok := leagueToFeed[abbr]; ok {
		return mapped
	}
	return abbr
}

func mapGameLog(entry gamelogEntry, season string) games.GameLog {
	team := normalizeAbbreviation(entry.Team.Abbreviation)
	home := normalizeAbbreviation(entry.Game.HomeTeamAbbreviation)
	away := normalizeAbbreviation(entry.Game.AwayTeamAbbreviation)
	date := parseStartTime(entry.Game.StartTime)

	g := games.Game{
		ID:       gameID(date, away, home),
		Provider: providerName,
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Status:   games.StatusFinal,
		Meta: games.GameMeta{
			Season:         season,
			UpstreamGameID: fmt.Sprintf("%d", entry.Game.ID),
		},
	}

	log := games.GameLog{Team: team, Game: g}
	if entry.Stats != nil {
		log.Stats = mapBoxScore(entry.Stats)
		if team == home {
			g.Score = games.Score{Home: log.Stats.Points, Away: log.Stats.PointsAgainst}
		} else {
			g.Score = games.Score{Home: log.Stats.PointsAgainst, Away: log.Stats.Points}
		}
		log.Game = g
	}
	return log
}

func mapBoxScore(s *gamelogStats) *games.BoxScore {
	box := &games.BoxScore{
		Points:        s.Offense.Pts,
		PointsAgainst: s.Defense.PtsAgainst,
		FGMade:        s.FieldGoals.FgMade,
		FGAtt:         s.FieldGoals.FgAtt,
		FG3Made:       s.FieldGoals.Fg3PtMade,
		FG3Att:        s.FieldGoals.Fg3PtAtt,
		FTMade:        s.FreeThrows.FtMade,
		FTAtt:         s.FreeThrows.FtAtt,
		OffReb:        s.Rebounds.OffReb,
		DefReb:        s.Rebounds.DefReb,
		TotReb:        s.Rebounds.Reb,
		Assists:       s.Offense.Ast,
		Steals:        s.Defense.Stl,
		Blocks:        s.Defense.Blk,
		Turnovers:     s.Defense.Tov,
	}
	if s.FieldGoals.Fg2PtMade != nil && s.FieldGoals.Fg2PtAtt != nil {
		box.HasFG2 = true
		box.FG2Made = *s.FieldGoals.Fg2PtMade
		box.FG2Att = *s.FieldGoals.Fg2PtAtt
	}
	return box
}

func mapScheduledGame(g scheduledGame, season string) games.Game {
	home := normalizeAbbreviation(g.Schedule.HomeTeam.Abbreviation)
	away := normalizeAbbreviation(g.Schedule.AwayTeam.Abbreviation)
	date := parseStartTime(g.Schedule.StartTime)

	return games.Game{
		ID:       gameID(date, away, home),
		Provider: providerName,
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Status:   mapStatus(g.Schedule.PlayedStatus),
		Score: games.Score{
			Home: g.Score.HomeScoreTotal,
			Away: g.Score.AwayScoreTotal,
		},
		Meta: games.GameMeta{
			Season:         season,
			UpstreamGameID: fmt.Sprintf("%d", g.Schedule.ID),
			Venue:          g.Schedule.Venue.Name,
		},
	}
}

func mapStatus(status string) games.GameStatus {
	switch strings.ToUpper(status) {
	case "COMPLETED", "COMPLETED_PENDING_REVIEW":
		return games.StatusFinal
	case "LIVE":
		return games.StatusInProgress
	case "POSTPONED":
		return games.StatusPostponed
	case "CANCELLED", "CANCELED":
		return games.StatusCanceled
	default:
		return games.StatusScheduled
	}
}

func gameID(date time.Time, away, home string) string {
	return fmt.Sprintf("%s-%s-%s", date.Format("20060102"), away, home)
}

func parseStartTime(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
