// Package stats derives team performance summaries from chronological lists
// of completed game results: categorized win-loss records, rolling-window
// records and streaks, and rolling per-game statistical averages.
//
// Everything here is pure computation. Inputs are fully-materialized game
// logs plus an injected team classification table; there is no I/O, no
// caching, and no shared state, so the package is safe to call concurrently
// for different teams.
package stats

import (
	"errors"
	"fmt"
)

// DefaultWindows are the trailing-game window sizes reports are built around.
var DefaultWindows = []int{3, 7, 12}

// ErrNoGames indicates the caller supplied no game list at all. An empty
// (but non-nil) list is valid input; nil is a caller contract violation.
var ErrNoGames = errors.New("stats: no game list supplied")

// ErrInvalidWindow indicates a requested window size was not positive.
var ErrInvalidWindow = errors.New("stats: invalid window size")

func validateWindows(windows []int) error {
	for _, w := range windows {
		if w <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWindow, w)
		}
	}
	return nil
}

// WinLoss is a simple win-loss tally.
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Total returns the number of games in the tally.
func (wl WinLoss) Total() int {
	return wl.Wins + wl.Losses
}

// String formats the tally as "W-L".
func (wl WinLoss) String() string {
	return fmt.Sprintf("%d-%d", wl.Wins, wl.Losses)
}

func (wl *WinLoss) add(won bool) {
	if won {
		wl.Wins++
	} else {
		wl.Losses++
	}
}

// TeamRecord is the full categorized record for one team as of a cutoff date.
//
// Home/Away partition every completed game. Division, ConferenceOther and the
// opposite-conference bucket partition games whose opponent has classification
// data; games against unclassified opponents count only toward Overall and
// Home/Away. VsEastern and VsWestern are absolute splits, produced for both
// conferences regardless of the team's own membership.
type TeamRecord struct {
	Team    string  `json:"team"`
	Overall WinLoss `json:"overall"`
	Home    WinLoss `json:"home"`
	Away    WinLoss `json:"away"`

	Conference      WinLoss `json:"conference"`
	Division        WinLoss `json:"division"`
	ConferenceOther WinLoss `json:"conferenceOther"`
	VsEastern       WinLoss `json:"vsEastern"`
	VsWestern       WinLoss `json:"vsWestern"`

	LastN  map[int]WinLoss `json:"lastN"`
	Streak string          `json:"streak"`
}

// RecordSummary is the formatted view of a TeamRecord, shaped for renderers.
type RecordSummary struct {
	Overall         string `json:"overall"`
	Home            string `json:"home"`
	Away            string `json:"away"`
	Conference      string `json:"conference"`
	Division        string `json:"division"`
	ConferenceOther string `json:"conferenceOther"`
	VsEastern       string `json:"vsEastern"`
	VsWestern       string `json:"vsWestern"`
	Last3           string `json:"last3"`
	Last7           string `json:"last7"`
	Last12          string `json:"last12"`
	Streak          string `json:"streak"`
}

// Summary formats the record as "W-L" strings.
func (r TeamRecord) Summary() RecordSummary {
	return RecordSummary{
		Overall:         r.Overall.String(),
		Home:            r.Home.String(),
		Away:            r.Away.String(),
		Conference:      r.Conference.String(),
		Division:        r.Division.String(),
		ConferenceOther: r.ConferenceOther.String(),
		VsEastern:       r.VsEastern.String(),
		VsWestern:       r.VsWestern.String(),
		Last3:           r.LastN[3].String(),
		Last7:           r.LastN[7].String(),
		Last12:          r.LastN[12].String(),
		Streak:          r.Streak,
	}
}

// WindowAverages holds per-game statistical averages over a trailing window.
// GamesIncluded is the actual sample size (min of the requested window and
// the games available); every rate is averaged over that count. Percentages
// are on a 0-100 scale. All values are rounded to one decimal place.
type WindowAverages struct {
	GamesIncluded int `json:"games_included"`

	PointsScored  float64 `json:"ps"`
	PointsAllowed float64 `json:"pa"`

	FGMade  float64 `json:"fg"`
	FGAtt   float64 `json:"fga"`
	FGPct   float64 `json:"fg_pct"`
	FG3Made float64 `json:"three_p"`
	FG3Att  float64 `json:"three_pa"`
	FG3Pct  float64 `json:"three_pct"`
	FG2Made float64 `json:"two_p"`
	FG2Att  float64 `json:"two_pa"`
	FG2Pct  float64 `json:"two_pct"`
	FTMade  float64 `json:"ft"`
	FTAtt   float64 `json:"fta"`
	FTPct   float64 `json:"ft_pct"`

	OffReb    float64 `json:"orb"`
	DefReb    float64 `json:"drb"`
	TotReb    float64 `json:"trb"`
	Assists   float64 `json:"ast"`
	Steals    float64 `json:"stl"`
	Blocks    float64 `json:"blk"`
	Turnovers float64 `json:"tov"`
}
