package fixture

import (
	"context"
	"fmt"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/timeutil"
)

// Provider returns a deterministic set of game logs and a daily slate, useful
// for local development and bootstrapping without API credentials.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// ListGameLogs returns a synthetic season for the requested team: a repeating
// win-win-loss pattern against a small rotation of opponents, every other
// game at home.
func (p *Provider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	_ = ctx

	end := asOf
	if end.IsZero() {
		end = p.now().UTC()
	}

	opponents := rotationFor(team)
	logs := make([]games.GameLog, 0, 15)
	for i := 0; i < 15; i++ {
		date := end.AddDate(0, 0, -2*(15-i))
		opp := opponents[i%len(opponents)]
		home := i%2 == 0
		won := i%3 != 2

		teamScore, oppScore := 108+i%7, 101+i%5
		if !won {
			teamScore, oppScore = 99, 107
		}

		g := games.Game{
			Provider: "fixture",
			Date:     date,
			Status:   games.StatusFinal,
			Meta: games.GameMeta{
				Season:         season,
				UpstreamGameID: fmt.Sprintf("fixture-%d", i+1),
			},
		}
		if home {
			g.HomeTeam, g.AwayTeam = team, opp
			g.Score = games.Score{Home: teamScore, Away: oppScore}
			g.ID = fmt.Sprintf("%s-%s-%s", timeutil.FormatCompactDate(date), opp, team)
		} else {
			g.HomeTeam, g.AwayTeam = opp, team
			g.Score = games.Score{Home: oppScore, Away: teamScore}
			g.ID = fmt.Sprintf("%s-%s-%s", timeutil.FormatCompactDate(date), team, opp)
		}

		logs = append(logs, games.GameLog{
			Team:  team,
			Game:  g,
			Stats: fixtureBoxScore(teamScore, oppScore, i),
		})
	}

	return logs, nil
}

// ListGames returns a two-game slate for the requested day.
func (p *Provider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	_ = ctx

	if date.IsZero() {
		date = p.now().UTC()
	}
	season := timeutil.SeasonForDate(date)
	day := timeutil.FormatCompactDate(date)

	return []games.Game{
		{
			ID:       fmt.Sprintf("%s-LAL-BOS", day),
			Provider: "fixture",
			HomeTeam: "BOS",
			AwayTeam: "LAL",
			Date:     date,
			Status:   games.StatusScheduled,
			Meta:     games.GameMeta{Season: season, UpstreamGameID: "fixture-slate-1", Venue: "TD Garden"},
		},
		{
			ID:       fmt.Sprintf("%s-MIA-GSW", day),
			Provider: "fixture",
			HomeTeam: "GSW",
			AwayTeam: "MIA",
			Date:     date,
			Status:   games.StatusScheduled,
			Meta:     games.GameMeta{Season: season, UpstreamGameID: "fixture-slate-2", Venue: "Chase Center"},
		},
	}, nil
}

func rotationFor(team string) []string {
	rotation := []string{"BOS", "LAL", "GSW", "MIA", "DEN", "NYK"}
	out := make([]string, 0, len(rotation))
	for _, opp := range rotation {
		if opp != team {
			out = append(out, opp)
		}
	}
	return out
}

func fixtureBoxScore(pts, ptsAgainst, seed int) *games.BoxScore {
	return &games.BoxScore{
		Points:        pts,
		PointsAgainst: ptsAgainst,
		FGMade:        38 + seed%5,
		FGAtt:         84,
		FG3Made:       11 + seed%4,
		FG3Att:        32,
		FTMade:        16,
		FTAtt:         21,
		OffReb:        9,
		DefReb:        33,
		TotReb:        42,
		Assists:       24 + seed%3,
		Steals:        7,
		Blocks:        5,
		Turnovers:     13,
	}
}
