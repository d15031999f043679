package matchreport

// RosterItem is one row of a team's lineup table with a 1-10 match rating.
type RosterItem struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	Name         string `json:"name"`
	Minutes      string `json:"minutes"`
	GoalsAssists string `json:"goalsAssists"`
	Rating       int    `json:"rating"`
}

// PlayerInfo is one free-text note about a notable player.
type PlayerInfo struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
	Info   string `json:"info"`
}

// TickerEvent is one live-ticker entry.
type TickerEvent struct {
	ID     string `json:"id"`
	Minute string `json:"minute"`
	Text   string `json:"text"`
}

// SWOT holds the analysis text blocks of the match report.
type SWOT struct {
	General    string `json:"general"`
	Attack     string `json:"attack"`
	Defense    string `json:"defense"`
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
}

// MatchReport is the whole match-scouting form state, persisted as one
// document and rewritten wholesale on every save.
type MatchReport struct {
	Competition     string `json:"competition"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	Kickoff         string `json:"kickoff"`
	HomeTeam        string `json:"homeTeam"`
	AwayTeam        string `json:"awayTeam"`
	HomeCoach       string `json:"homeCoach"`
	AwayCoach       string `json:"awayCoach"`
	ScoutName       string `json:"scoutName"`
	Weather         string `json:"weather"`
	PitchCondition  string `json:"pitchCondition"`
	Summary         string `json:"summary"`
	Formation       string `json:"formation"`
	SystemInfo      string `json:"systemInfo"`
	CurrentForm     string `json:"currentForm"`
	CurrentFormInfo string `json:"currentFormInfo"`

	CornersOffensive   string `json:"cornersOffensive"`
	CornersDefensive   string `json:"cornersDefensive"`
	FreekicksOffensive string `json:"freekicksOffensive"`
	FreekicksDefensive string `json:"freekicksDefensive"`

	SWOT SWOT `json:"swot"`

	HomeRoster  []RosterItem  `json:"homeRoster"`
	AwayRoster  []RosterItem  `json:"awayRoster"`
	PlayerInfos []PlayerInfo  `json:"playerInfos"`
	Ticker      []TickerEvent `json:"ticker"`
	Images      []string      `json:"images"`
}
