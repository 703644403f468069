package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"nba-matchup-service/internal/app/matchups"
)

const chartLineWidth = 2

// WriteHTML renders the dataset's rolling averages as an HTML chart page.
func WriteHTML(ds matchups.Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s @ %s", ds.AwayTeam.Team, ds.HomeTeam.Team)
	page.AddCharts(
		scoringChart(ds),
		shootingChart(ds),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// scoringChart plots points scored per game across the trailing windows.
func scoringChart(ds matchups.Dataset) *charts.Line {
	windows := rollingWindows(ds)
	labels := windowLabels(windows)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Scoring by trailing window"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Points per game"}),
	)
	line.SetXAxis(labels)
	for _, side := range []matchups.TeamSide{ds.AwayTeam, ds.HomeTeam} {
		data := make([]opts.LineData, len(windows))
		for i, n := range windows {
			data[i] = opts.LineData{Value: side.Rolling[n].PointsScored}
		}
		line.AddSeries(side.Team, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: chartLineWidth}),
		)
	}
	return line
}

// shootingChart plots field goal percentage across the trailing windows.
func shootingChart(ds matchups.Dataset) *charts.Line {
	windows := rollingWindows(ds)
	labels := windowLabels(windows)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Field goal percentage by trailing window"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "FG%"}),
	)
	line.SetXAxis(labels)
	for _, side := range []matchups.TeamSide{ds.AwayTeam, ds.HomeTeam} {
		data := make([]opts.LineData, len(windows))
		for i, n := range windows {
			data[i] = opts.LineData{Value: side.Rolling[n].FGPct}
		}
		line.AddSeries(side.Team, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: chartLineWidth}),
		)
	}
	return line
}

func windowLabels(windows []int) []string {
	labels := make([]string, len(windows))
	for i, n := range windows {
		labels[i] = fmt.Sprintf("Last %d", n)
	}
	return labels
}
