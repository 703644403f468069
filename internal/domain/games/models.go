package games

import "time"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameMeta stores provider metadata for a game.
type GameMeta struct {
	Season         string `json:"season"`
	UpstreamGameID string `json:"upstreamGameId"`
	Venue          string `json:"venue,omitempty"`
}

// Game is the canonical game shape exposed by the service.
// HomeTeam and AwayTeam carry the normalized team abbreviations.
type Game struct {
	ID       string     `json:"id"`
	Provider string     `json:"provider"`
	HomeTeam string     `json:"homeTeam"`
	AwayTeam string     `json:"awayTeam"`
	Date     time.Time  `json:"date"`
	Status   GameStatus `json:"status"`
	Score    Score      `json:"score"`
	Meta     GameMeta   `json:"meta"`
}

// BoxScore holds one team's per-game totals as reported upstream.
// FG2Made/FG2Att are only meaningful when HasFG2 is set; not every feed
// reports two-point splits directly.
type BoxScore struct {
	Points        int  `json:"points"`
	PointsAgainst int  `json:"pointsAgainst"`
	FGMade        int  `json:"fgMade"`
	FGAtt         int  `json:"fgAtt"`
	FG3Made       int  `json:"fg3Made"`
	FG3Att        int  `json:"fg3Att"`
	FG2Made       int  `json:"fg2Made,omitempty"`
	FG2Att        int  `json:"fg2Att,omitempty"`
	HasFG2        bool `json:"hasFg2,omitempty"`
	FTMade        int  `json:"ftMade"`
	FTAtt         int  `json:"ftAtt"`
	OffReb        int  `json:"offReb"`
	DefReb        int  `json:"defReb"`
	TotReb        int  `json:"totReb"`
	Assists       int  `json:"assists"`
	Steals        int  `json:"steals"`
	Blocks        int  `json:"blocks"`
	Turnovers     int  `json:"turnovers"`
}

// GameLog is one team's view of a single game: the game itself plus that
// team's box-score totals when the feed supplies them.
type GameLog struct {
	Team  string    `json:"team"`
	Game  Game      `json:"game"`
	Stats *BoxScore `json:"stats,omitempty"`
}

// IsHome reports whether the log's team hosted the game.
func (l GameLog) IsHome() bool {
	return l.Game.HomeTeam == l.Team
}

// Opponent returns the other team's abbreviation.
func (l GameLog) Opponent() string {
	if l.IsHome() {
		return l.Game.AwayTeam
	}
	return l.Game.HomeTeam
}

// TeamScore returns the log team's final score.
func (l GameLog) TeamScore() int {
	if l.IsHome() {
		return l.Game.Score.Home
	}
	return l.Game.Score.Away
}

// OpponentScore returns the opponent's final score.
func (l GameLog) OpponentScore() int {
	if l.IsHome() {
		return l.Game.Score.Away
	}
	return l.Game.Score.Home
}

// Won reports whether the log's team won the game.
func (l GameLog) Won() bool {
	return l.TeamScore() > l.OpponentScore()
}

// SlateResponse is the payload returned for a day's scheduled games.
type SlateResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewSlateResponse builds a SlateResponse payload.
func NewSlateResponse(date string, games []Game) SlateResponse {
	return SlateResponse{
		Date:  date,
		Games: games,
	}
}
