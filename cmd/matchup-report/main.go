// Command matchup-report builds pregame matchup reports from the command
// line: console tables for a single game or a full day's slate, optional
// HTML chart pages, and league standings.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/config"
	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/domain/teams"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/providers/fixture"
	"nba-matchup-service/internal/providers/mysportsfeeds"
	"nba-matchup-service/internal/report"
	"nba-matchup-service/internal/stats"
	"nba-matchup-service/internal/timeutil"
)

var cli struct {
	Provider string `help:"Data provider (fixture or mysportsfeeds)." env:"PROVIDER" default:"fixture"`

	Matchup   matchupCmd   `cmd:"" help:"Build the pregame report for one game."`
	Slate     slateCmd     `cmd:"" help:"Build pregame reports for every game on a date."`
	Standings standingsCmd `cmd:"" help:"Print league standings with offensive and defensive ranks."`
}

// runEnv carries the wired dependencies into each subcommand's Run method.
type runEnv struct {
	provider providers.DataProvider
	service  *matchups.Service
	out      io.Writer
}

type matchupCmd struct {
	Away string `arg:"" help:"Away team abbreviation."`
	Home string `arg:"" help:"Home team abbreviation."`
	Date string `help:"Game date as YYYY-MM-DD, defaults to today." placeholder:"DATE"`
	Out  string `help:"Also write an HTML chart page to this path." type:"path"`
}

func (c *matchupCmd) Run(env *runEnv) error {
	date, err := parseDateOrToday(c.Date)
	if err != nil {
		return err
	}

	ds, err := env.service.Build(context.Background(), games.Game{
		AwayTeam: strings.ToUpper(c.Away),
		HomeTeam: strings.ToUpper(c.Home),
		Date:     date,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(env.out, report.Text(ds))
	if c.Out != "" {
		if err := report.WriteHTML(ds, c.Out); err != nil {
			return err
		}
		fmt.Fprintf(env.out, "\nwrote %s\n", c.Out)
	}
	return nil
}

type slateCmd struct {
	Date   string `help:"Slate date as YYYY-MM-DD, defaults to today." placeholder:"DATE"`
	OutDir string `help:"Also write one HTML chart page per game into this directory." type:"path"`
}

func (c *slateCmd) Run(env *runEnv) error {
	date, err := parseDateOrToday(c.Date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	slate, err := env.provider.ListGames(ctx, date)
	if err != nil {
		return fmt.Errorf("fetch slate: %w", err)
	}
	if len(slate) == 0 {
		fmt.Fprintf(env.out, "no games scheduled for %s\n", timeutil.FormatDate(date))
		return nil
	}

	datasets := make([]matchups.Dataset, 0, len(slate))
	for i, game := range slate {
		ds, err := env.service.Build(ctx, game)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(env.out)
		}
		fmt.Fprint(env.out, report.Text(ds))
		if c.OutDir != "" {
			path := filepath.Join(c.OutDir, ds.ID+".html")
			if err := report.WriteHTML(ds, path); err != nil {
				return err
			}
			fmt.Fprintf(env.out, "wrote %s\n", path)
		}
		datasets = append(datasets, ds)
	}

	if c.OutDir != "" {
		daily := matchups.NewDaily(timeutil.FormatDate(date), datasets)
		if err := report.WriteIndex(daily, c.OutDir); err != nil {
			return err
		}
		fmt.Fprintf(env.out, "wrote %s\n", filepath.Join(c.OutDir, "index.html"))
	}
	return nil
}

type standingsCmd struct {
	Date string `help:"Cutoff date as YYYY-MM-DD, defaults to today." placeholder:"DATE"`
}

func (c *standingsCmd) Run(env *runEnv) error {
	asOf, err := parseDateOrToday(c.Date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	season := timeutil.SeasonForDate(asOf)

	class := teams.NBAClassification()
	abbrs := make([]string, 0, len(class))
	for abbr := range class {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)

	summaries := make([]stats.TeamSummary, 0, len(abbrs))
	for _, abbr := range abbrs {
		logs, err := env.provider.ListGameLogs(ctx, abbr, season, asOf)
		if err != nil {
			return fmt.Errorf("fetch %s game logs: %w", abbr, err)
		}
		summaries = append(summaries, stats.SummarizeTeam(logs, abbr, asOf))
	}

	fmt.Fprint(env.out, standingsTable(summaries))
	fmt.Fprintln(env.out)
	return nil
}

// standingsTable renders the summaries ordered by overall rank, annotating
// each team with its offensive and defensive league ranks.
func standingsTable(summaries []stats.TeamSummary) string {
	ranks := stats.RankTeams(summaries)

	ordered := make([]stats.TeamSummary, len(summaries))
	copy(ordered, summaries)
	sort.Slice(ordered, func(i, j int) bool {
		return ranks.Overall[ordered[i].Team] < ranks.Overall[ordered[j].Team]
	})

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Rank", "Team", "W", "L", "PCT", "PF", "PA", "OFF", "DEF"})
	for _, s := range ordered {
		tbl.AppendRow(table.Row{
			ranks.Overall[s.Team],
			s.Team,
			s.Wins,
			s.Losses,
			fmt.Sprintf("%.3f", s.WinPct()),
			s.PointsFor,
			s.PointsAgainst,
			ranks.Offensive[s.Team],
			ranks.Defensive[s.Team],
		})
	}
	return tbl.Render()
}

func parseDateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	date, err := timeutil.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func buildProvider(name string, cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(name) {
	case "mysportsfeeds":
		base := mysportsfeeds.NewClient(mysportsfeeds.Config{
			BaseURL:  cfg.MySportsFeeds.BaseURL,
			APIKey:   cfg.MySportsFeeds.APIKey,
			Password: cfg.MySportsFeeds.Password,
		})
		return providers.NewRetryingProvider(base, logger, nil, "mysportsfeeds", 0, 0)
	default:
		return fixture.New()
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("matchup-report"),
		kong.Description("Pregame matchup reports: records, rolling averages, and standings."),
		kong.UsageOnError(),
	)

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  "text",
		Service: "matchup-report",
	})

	cfg := config.Load()
	provider := buildProvider(cli.Provider, cfg, logger)
	service := matchups.NewService(provider, nil, nil, nil, logger)

	err := ctx.Run(&runEnv{provider: provider, service: service, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
