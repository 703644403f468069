package teams

// Conference identifies one of the two NBA conferences.
type Conference string

const (
	ConferenceEastern Conference = "Eastern"
	ConferenceWestern Conference = "Western"
)

// Division identifies an NBA division. Each division belongs wholly to one conference.
type Division string

const (
	DivisionAtlantic  Division = "Atlantic"
	DivisionCentral   Division = "Central"
	DivisionSoutheast Division = "Southeast"
	DivisionNorthwest Division = "Northwest"
	DivisionPacific   Division = "Pacific"
	DivisionSouthwest Division = "Southwest"
)

// Team represents the normalized team shape.
type Team struct {
	Abbreviation string     `json:"abbreviation"`
	Name         string     `json:"name"`
	City         string     `json:"city"`
	State        string     `json:"state,omitempty"`
	Conference   Conference `json:"conference"`
	Division     Division   `json:"division"`
}

// Classification is an immutable lookup from team abbreviation to conference
// and division membership. It is reference data injected into the aggregation
// logic, never derived from game results.
type Classification map[string]Team

// Lookup returns the team entry for an abbreviation if known.
func (c Classification) Lookup(abbr string) (Team, bool) {
	t, ok := c[abbr]
	return t, ok
}
