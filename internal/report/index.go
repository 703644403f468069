package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"nba-matchup-service/internal/app/matchups"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Matchup reports {{.Date}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f2f2f2; }
</style>
</head>
<body>
<h1>Matchup reports for {{.Date}}</h1>
<table>
<tr><th>Matchup</th><th>Away record</th><th>Home record</th><th>Streaks</th><th>Venue</th></tr>
{{range .Rows}}<tr>
<td><a href="{{.Href}}">{{.Away}} @ {{.Home}}</a></td>
<td>{{.AwayRecord}}</td>
<td>{{.HomeRecord}}</td>
<td>{{.AwayStreak}} / {{.HomeStreak}}</td>
<td>{{.Venue}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type indexRow struct {
	Href       string
	Away       string
	Home       string
	AwayRecord string
	HomeRecord string
	AwayStreak string
	HomeStreak string
	Venue      string
}

type indexData struct {
	Date string
	Rows []indexRow
}

// WriteIndex renders an index page for a day's reports, linking each
// matchup's chart page by its dataset ID.
func WriteIndex(daily matchups.Daily, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	data := indexData{Date: daily.Date}
	for _, ds := range daily.Datasets {
		data.Rows = append(data.Rows, indexRow{
			Href:       ds.ID + ".html",
			Away:       ds.AwayTeam.Team,
			Home:       ds.HomeTeam.Team,
			AwayRecord: ds.AwayTeam.Record.Overall.String(),
			HomeRecord: ds.HomeTeam.Record.Overall.String(),
			AwayStreak: orDash(ds.AwayTeam.Record.Streak),
			HomeStreak: orDash(ds.HomeTeam.Record.Streak),
			Venue:      ds.Venue,
		})
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer f.Close()

	if err := indexTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
