package matchups

import (
	"fmt"
	"time"

	"nba-matchup-service/internal/stats"
	"nba-matchup-service/internal/timeutil"
)

// TeamSide is one team's half of a matchup dataset.
type TeamSide struct {
	Team    string                       `json:"team"`
	Record  stats.TeamRecord             `json:"record"`
	Rolling map[int]stats.WindowAverages `json:"rolling"`
}

// Dataset is the full pregame picture for one scheduled game: both teams'
// categorized records and rolling averages plus their head-to-head record,
// all computed as of the game date.
type Dataset struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`
	Season      string        `json:"season"`
	Venue       string        `json:"venue,omitempty"`
	AwayTeam    TeamSide      `json:"awayTeam"`
	HomeTeam    TeamSide      `json:"homeTeam"`
	HeadToHead  stats.WinLoss `json:"headToHead"` // away team's record vs the home team
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Daily bundles every dataset built for one day's slate. It is both the HTTP
// response shape for the day view and the snapshot payload written to disk.
type Daily struct {
	Date     string    `json:"date"`
	Datasets []Dataset `json:"datasets"`
}

// NewDaily constructs a Daily for a date, normalizing a nil dataset slice to
// an empty one so consumers always see a JSON array.
func NewDaily(date string, datasets []Dataset) Daily {
	if datasets == nil {
		datasets = []Dataset{}
	}
	return Daily{Date: date, Datasets: datasets}
}

// DatasetID builds the canonical matchup identifier, YYYY-MM-DD-AWAY-HOME.
func DatasetID(date time.Time, away, home string) string {
	return fmt.Sprintf("%s-%s-%s", timeutil.FormatDate(date), away, home)
}
