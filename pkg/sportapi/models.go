package sportapi

// Event represents one entry of the season calendar returned by /Events.
// Only the fields this package consumes are mapped; the API returns more.
type Event struct {
	EventID     string `json:"EventId"`
	SeasonID    string `json:"SeasonId"`
	StartDate   string `json:"StartDate"` // e.g. "2024-11-30T00:00:00"
	EndDate     string `json:"EndDate"`
	Description string `json:"Description"`
	Organizer   string `json:"Organizer"`
	Nat         string `json:"Nat"`
	Level       int    `json:"Level"`
}

// Competition represents a single race of an event returned by /Competitions.
type Competition struct {
	RaceID           string `json:"RaceId"`
	StartTime        string `json:"StartTime"`
	Description      string `json:"Description"`
	ShortDescription string `json:"ShortDescription"`
	DisciplineID     string `json:"DisciplineId"`
	CatID            string `json:"catId"` // e.g. "SM", "SW"
	StatusText       string `json:"StatusText"`
	Location         string `json:"Location"`
}

// RaceResults represents the object returned by /Results.
type RaceResults struct {
	RaceID      string          `json:"RaceId"`
	IsResult    bool            `json:"IsResult"`
	Competition Competition     `json:"Competition"`
	SportEvt    Event           `json:"SportEvt"`
	Results     []AthleteResult `json:"Results"`
}

// AthleteResult is one row of a race results list. Times and ranks come back
// as strings in the API's race time format (see pkg/racetime).
type AthleteResult struct {
	IBUID       string `json:"IBUId"`
	Name        string `json:"Name"`
	Nat         string `json:"Nat"`
	Bib         string `json:"Bib"`
	Rank        string `json:"Rank"`
	Shootings   string `json:"Shootings"`
	TotalTime   string `json:"TotalTime"`
	Behind      string `json:"Behind"`
	ResultOrder int    `json:"ResultOrder"`
}
