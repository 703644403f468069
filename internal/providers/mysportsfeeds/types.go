package mysportsfeeds

// Wire shapes for the MySportsFeeds v2.1 pull API. Only the fields the
// service consumes are declared; the feed carries much more.

type gamelogsResponse struct {
	Gamelogs []gamelogEntry `json:"gamelogs"`
}

type gamelogEntry struct {
	Game  gameRef       `json:"game"`
	Team  teamRef       `json:"team"`
	Stats *gamelogStats `json:"stats"`
}

type gameRef struct {
	ID                   int    `json:"id"`
	StartTime            string `json:"startTime"`
	AwayTeamAbbreviation string `json:"awayTeamAbbreviation"`
	HomeTeamAbbreviation string `json:"homeTeamAbbreviation"`
}

type teamRef struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

type gamelogStats struct {
	FieldGoals fieldGoalStats `json:"fieldGoals"`
	FreeThrows freeThrowStats `json:"freeThrows"`
	Rebounds   reboundStats   `json:"rebounds"`
	Offense    offenseStats   `json:"offense"`
	Defense    defenseStats   `json:"defense"`
}

type fieldGoalStats struct {
	FgMade    int  `json:"fgMade"`
	FgAtt     int  `json:"fgAtt"`
	Fg2PtMade *int `json:"fg2PtMade"`
	Fg2PtAtt  *int `json:"fg2PtAtt"`
	Fg3PtMade int  `json:"fg3PtMade"`
	Fg3PtAtt  int  `json:"fg3PtAtt"`
}

type freeThrowStats struct {
	FtMade int `json:"ftMade"`
	FtAtt  int `json:"ftAtt"`
}

type reboundStats struct {
	OffReb int `json:"offReb"`
	DefReb int `json:"defReb"`
	Reb    int `json:"reb"`
}

type offenseStats struct {
	Pts int `json:"pts"`
	Ast int `json:"ast"`
}

type defenseStats struct {
	Stl        int `json:"stl"`
	Blk        int `json:"blk"`
	Tov        int `json:"tov"`
	PtsAgainst int `json:"ptsAgainst"`
}

type gamesResponse struct {
	Games []scheduledGame `json:"games"`
}

type scheduledGame struct {
	Schedule gameSchedule `json:"schedule"`
	Score    gameScore    `json:"score"`
}

type gameSchedule struct {
	ID           int      `json:"id"`
	StartTime    string   `json:"startTime"`
	AwayTeam     teamRef  `json:"awayTeam"`
	HomeTeam     teamRef  `json:"homeTeam"`
	PlayedStatus string   `json:"playedStatus"`
	Venue        venueRef `json:"venue"`
}

type venueRef struct {
	Name string `json:"name"`
}

type gameScore struct {
	AwayScoreTotal int `json:"awayScoreTotal"`
	HomeScoreTotal int `json:"homeScoreTotal"`
}
