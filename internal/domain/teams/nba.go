package teams

// NBAClassification returns the conference/division membership for all 30
// NBA teams, keyed by common abbreviation. Callers inject this (or a test
// table) into aggregation code.
func NBAClassification() Classification {
	return Classification{
		"ATL": {Abbreviation: "ATL", Name: "Hawks", City: "Atlanta", State: "GA", Conference: ConferenceEastern, Division: DivisionSoutheast},
		"BOS": {Abbreviation: "BOS", Name: "Celtics", City: "Boston", State: "MA", Conference: ConferenceEastern, Division: DivisionAtlantic},
		"BKN": {Abbreviation: "BKN", Name: "Nets", City: "Brooklyn", State: "NY", Conference: ConferenceEastern, Division: DivisionAtlantic},
		"CHA": {Abbreviation: "CHA", Name: "Hornets", City: "Charlotte", State: "NC", Conference: ConferenceEastern, Division: DivisionSoutheast},
		"CHI": {Abbreviation: "CHI", Name: "Bulls", City: "Chicago", State: "IL", Conference: ConferenceEastern, Division: DivisionCentral},
		"CLE": {Abbreviation: "CLE", Name: "Cavaliers", City: "Cleveland", State: "OH", Conference: ConferenceEastern, Division: DivisionCentral},
		"DAL": {Abbreviation: "DAL", Name: "Mavericks", City: "Dallas", State: "TX", Conference: ConferenceWestern, Division: DivisionSouthwest},
		"DEN": {Abbreviation: "DEN", Name: "Nuggets", City: "Denver", State: "CO", Conference: ConferenceWestern, Division: DivisionNorthwest},
		"DET": {Abbreviation: "DET", Name: "Pistons", City: "Detroit", State: "MI", Conference: ConferenceEastern, Division: DivisionCentral},
		"GSW": {Abbreviation: "GSW", Name: "Warriors", City: "Golden State", State: "CA", Conference: ConferenceWestern, Division: DivisionPacific},
		"HOU": {Abbreviation: "HOU", Name: "Rockets", City: "Houston", State: "TX", Conference: ConferenceWestern, Division: DivisionSouthwest},
		"IND": {Abbreviation: "IND", Name: "Pacers", City: "Indiana", State: "IN", Conference: ConferenceEastern, Division: DivisionCentral},
		"LAC": {Abbreviation: "LAC", Name: "Clippers", City: "Los Angeles", State: "CA", Conference: ConferenceWestern, Division: DivisionPacific},
		"LAL": {Abbreviation: "LAL", Name: "Lakers", City: "Los Angeles", State: "CA", Conference: ConferenceWestern, Division: DivisionPacific},
		"MEM": {Abbreviation: "MEM", Name: "Grizzlies", City: "Memphis", State: "TN", Conference: ConferenceWestern, Division: DivisionSouthwest},
		"MIA": {Abbreviation: "MIA", Name: "Heat", City: "Miami", State: "FL", Conference: ConferenceEastern, Division: DivisionSoutheast},
		"MIL": {Abbreviation: "MIL", Name: "Bucks", City: "Milwaukee", State: "WI", Conference: ConferenceEastern, Division: DivisionCentral},
		"MIN": {Abbreviation: "MIN", Name: "Timberwolves", City: "Minnesota", State: "MN", Conference: ConferenceWestern, Division: DivisionNorthwest},
		"NOP": {Abbreviation: "NOP", Name: "Pelicans", City: "New Orleans", State: "LA", Conference: ConferenceWestern, Division: DivisionSouthwest},
		"NYK": {Abbreviation: "NYK", Name: "Knicks", City: "New York", State: "NY", Conference: ConferenceEastern, Division: DivisionAtlantic},
		"OKC": {Abbreviation: "OKC", Name: "Thunder", City: "Oklahoma City", State: "OK", Conference: ConferenceWestern, Division: DivisionNorthwest},
		"ORL": {Abbreviation: "ORL", Name: "Magic", City: "Orlando", State: "FL", Conference: ConferenceEastern, Division: DivisionSoutheast},
		"PHI": {Abbreviation: "PHI", Name: "76ers", City: "Philadelphia", State: "PA", Conference: ConferenceEastern, Division: DivisionAtlantic},
		"PHX": {Abbreviation: "PHX", Name: "Suns", City: "Phoenix", State: "AZ", Conference: ConferenceWestern, Division: DivisionPacific},
		"POR": {Abbreviation: "POR", Name: "Trail Blazers", City: "Portland", State: "OR", Conference: ConferenceWestern, Division: DivisionNorthwest},
		"SAC": {Abbreviation: "SAC", Name: "Kings", City: "Sacramento", State: "CA", Conference: ConferenceWestern, Division: DivisionPacific},
		"SAS": {Abbreviation: "SAS", Name: "Spurs", City: "San Antonio", State: "TX", Conference: ConferenceWestern, Division: DivisionSouthwest},
		"TOR": {Abbreviation: "TOR", Name: "Raptors", City: "Toronto", State: "ON", Conference: ConferenceEastern, Division: DivisionAtlantic},
		"UTA": {Abbreviation: "UTA", Name: "Jazz", City: "Utah", State: "UT", Conference: ConferenceWestern, Division: DivisionNorthwest},
		"WAS": {Abbreviation: "WAS", Name: "Wizards", City: "Washington", State: "DC", Conference: ConferenceEastern, Division: DivisionSoutheast},
	}
}
