// Package report renders matchup datasets as console tables and HTML chart
// pages for pregame review.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/timeutil"
)

// Text renders the dataset as console tables: a record breakdown and the
// rolling averages for each window.
func Text(ds matchups.Dataset) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s @ %s", ds.AwayTeam.Team, ds.HomeTeam.Team)
	if !ds.Date.IsZero() {
		fmt.Fprintf(&b, " on %s", timeutil.FormatDate(ds.Date))
	}
	if ds.Venue != "" {
		fmt.Fprintf(&b, " (%s)", ds.Venue)
	}
	b.WriteString("\n\n")

	b.WriteString(recordsTable(ds))
	b.WriteString("\n\n")
	b.WriteString(averagesTable(ds))
	b.WriteString("\n")

	return b.String()
}

func recordsTable(ds matchups.Dataset) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Record", ds.AwayTeam.Team, ds.HomeTeam.Team})

	away, home := ds.AwayTeam.Record.Summary(), ds.HomeTeam.Record.Summary()
	rows := []struct {
		label      string
		away, home string
	}{
		{"Overall", away.Overall, home.Overall},
		{"Home", away.Home, home.Home},
		{"Away", away.Away, home.Away},
		{"Conference", away.Conference, home.Conference},
		{"Division", away.Division, home.Division},
		{"Other Divisions", away.ConferenceOther, home.ConferenceOther},
		{"Vs Eastern", away.VsEastern, home.VsEastern},
		{"Vs Western", away.VsWestern, home.VsWestern},
	}
	for _, r := range rows {
		tbl.AppendRow(table.Row{r.label, r.away, r.home})
	}
	for _, n := range recordWindows(ds) {
		tbl.AppendRow(table.Row{
			fmt.Sprintf("Last %d", n),
			ds.AwayTeam.Record.LastN[n].String(),
			ds.HomeTeam.Record.LastN[n].String(),
		})
	}
	tbl.AppendRow(table.Row{"Streak", orDash(away.Streak), orDash(home.Streak)})
	tbl.AppendFooter(table.Row{"Head-to-Head", ds.HeadToHead.String(), ""})

	return tbl.Render()
}

func averagesTable(ds matchups.Dataset) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Team", "Window", "PPG", "OPP PPG", "FG%", "3P%", "FT%", "REB", "AST", "TOV"})

	for _, side := range []matchups.TeamSide{ds.AwayTeam, ds.HomeTeam} {
		for _, n := range rollingWindows(ds) {
			avg := side.Rolling[n]
			tbl.AppendRow(table.Row{
				side.Team,
				fmt.Sprintf("Last %d", n),
				avg.PointsScored,
				avg.PointsAllowed,
				avg.FGPct,
				avg.FG3Pct,
				avg.FTPct,
				avg.TotReb,
				avg.Assists,
				avg.Turnovers,
			})
		}
	}

	return tbl.Render()
}

// rollingWindows returns the sorted union of window sizes present on both sides.
func rollingWindows(ds matchups.Dataset) []int {
	seen := make(map[int]bool)
	for n := range ds.AwayTeam.Rolling {
		seen[n] = true
	}
	for n := range ds.HomeTeam.Rolling {
		seen[n] = true
	}
	windows := make([]int, 0, len(seen))
	for n := range seen {
		windows = append(windows, n)
	}
	sort.Ints(windows)
	return windows
}

func recordWindows(ds matchups.Dataset) []int {
	seen := make(map[int]bool)
	for n := range ds.AwayTeam.Record.LastN {
		seen[n] = true
	}
	for n := range ds.HomeTeam.Record.LastN {
		seen[n] = true
	}
	windows := make([]int, 0, len(seen))
	for n := range seen {
		windows = append(windows, n)
	}
	sort.Ints(windows)
	return windows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
