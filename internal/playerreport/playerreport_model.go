package playerreport

// MatchContext describes the observed match of the player report.
type MatchContext struct {
	Season    string `json:"season"`
	Opponent  string `json:"opponent"`
	Date      string `json:"date"`
	Result    string `json:"result"`
	Formation string `json:"formation"`
	Starter   bool   `json:"starter"`
	Minutes   int    `json:"minutes"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
}

// TextAttributes holds the free-text strengths/weaknesses blocks.
type TextAttributes struct {
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
}

// Tactical holds the tactical observation text blocks.
type Tactical struct {
	InPossession    string `json:"inPossession"`
	OutOfPossession string `json:"outOfPossession"`
	Defensive       string `json:"defensive"`
	Offensive       string `json:"offensive"`
	Summary         string `json:"summary"`
}

// PlayerReport is the whole player-scouting form state, one document.
type PlayerReport struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Foot     string `json:"foot"`
	Dob      string `json:"dob"`
	Height   string `json:"height"`
	Country  string `json:"country"`
	Image    string `json:"image"`

	MatchContext   MatchContext   `json:"matchContext"`
	TextAttributes TextAttributes `json:"textAttributes"`
	Tactical       Tactical       `json:"tactical"`
}

// CharacterAttributes rates personality traits 1-10.
type CharacterAttributes struct {
	Teamwork     int `json:"teamwork"`
	Leadership   int `json:"leadership"`
	Intelligence int `json:"intelligence"`
	Ambition     int `json:"ambition"`
	Confidence   int `json:"confidence"`
	Consistency  int `json:"consistency"`
	Discipline   int `json:"discipline"`
	Focus        int `json:"focus"`
	Motivation   int `json:"motivation"`
	Respect      int `json:"respect"`
	Reliability  int `json:"reliability"`
}

// TechniqueAttributes rates ball skills 1-10.
type TechniqueAttributes struct {
	Passing           int `json:"passing"`
	ShootingTechnique int `json:"shootingTechnique"`
	Dexterity         int `json:"dexterity"`
	Dribbling         int `json:"dribbling"`
	BeatingOpponent   int `json:"beatingOpponent"`
	Finishing         int `json:"finishing"`
	FirstTouch        int `json:"firstTouch"`
	BallControl       int `json:"ballControl"`
	Crossing          int `json:"crossing"`
	OneVsOne          int `json:"oneVsOne"`
}

// AthleticsAttributes rates physical abilities 1-10.
type AthleticsAttributes struct {
	Acceleration   int `json:"acceleration"`
	CyclicSpeed    int `json:"cyclicSpeed"`
	AcyclicSpeed   int `json:"acyclicSpeed"`
	Reaction       int `json:"reaction"`
	Stamina        int `json:"stamina"`
	SpeedEndurance int `json:"speedEndurance"`
	PowerEndurance int `json:"powerEndurance"`
	Agility        int `json:"agility"`
	Jumping        int `json:"jumping"`
	Throwing       int `json:"throwing"`
	Explosiveness  int `json:"explosiveness"`
}

// MentalityAttributes rates mental traits 1-10.
type MentalityAttributes struct {
	Attitude        int `json:"attitude"`
	BodyLanguage    int `json:"bodyLanguage"`
	Visualization   int `json:"visualization"`
	DebriefingInput int `json:"debriefingInput"`
}

// TacticsAttributes rates tactical behavior 1-10.
type TacticsAttributes struct {
	Anticipation   int `json:"anticipation"`
	Decisiveness   int `json:"decisiveness"`
	BallRecovery   int `json:"ballRecovery"`
	BallProtection int `json:"ballProtection"`
	ScoringChance  int `json:"scoringChance"`
	Goal           int `json:"goal"`
	FollowUp       int `json:"followUp"`
	Offering       int `json:"offering"`
	MeetBall       int `json:"meetBall"`
	GiveAndGo      int `json:"giveAndGo"`
	CreatingSpace  int `json:"creatingSpace"`
	PositionSwitch int `json:"positionSwitch"`
	HoldPosition   int `json:"holdPosition"`
	Communication  int `json:"communication"`
	TacticalShot   int `json:"tacticalShot"`
}

// PlayerAttributes is the full 1-10 rating sheet, persisted as its own
// document next to the player report.
type PlayerAttributes struct {
	Character CharacterAttributes `json:"character"`
	Technique TechniqueAttributes `json:"technique"`
	Athletics AthleticsAttributes `json:"athletics"`
	Mentality MentalityAttributes `json:"mentality"`
	Tactics   TacticsAttributes   `json:"tactics"`
}

// AttributeItem is one labeled rating for display and PDF rendering.
type AttributeItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// AttributeSection is one rated category in display order.
type AttributeSection struct {
	Title string          `json:"title"`
	Items []AttributeItem `json:"items"`
}

// Sections flattens the rating sheet into labeled display sections with
// a stable order.
func (a PlayerAttributes) Sections() []AttributeSection {
	c := a.Character
	t := a.Technique
	at := a.Athletics
	m := a.Mentality
	ta := a.Tactics
	return []AttributeSection{
		{Title: "Charaktereigenschaften", Items: []AttributeItem{
			{"Teamfähigkeit", c.Teamwork},
			{"Führungsqualität", c.Leadership},
			{"Intelligenz", c.Intelligence},
			{"Ehrgeiz", c.Ambition},
			{"Selbstvertrauen", c.Confidence},
			{"Konstanz", c.Consistency},
			{"Disziplin", c.Discipline},
			{"Fokus", c.Focus},
			{"Motivation", c.Motivation},
			{"Respekt", c.Respect},
			{"Zuverlässigkeit", c.Reliability},
		}},
		{Title: "Technik", Items: []AttributeItem{
			{"Passspiel", t.Passing},
			{"Schusstechnik", t.ShootingTechnique},
			{"Geschicklichkeit", t.Dexterity},
			{"Dribbling", t.Dribbling},
			{"Ausspielen des Gegners", t.BeatingOpponent},
			{"Torschuss", t.Finishing},
			{"Ballannahme", t.FirstTouch},
			{"Ballmitnahme", t.BallControl},
			{"Flanken", t.Crossing},
			{"1 gegen 1", t.OneVsOne},
		}},
		{Title: "Athletik", Items: []AttributeItem{
			{"Antritt", at.Acceleration},
			{"Zyklische Schnelligkeit", at.CyclicSpeed},
			{"Azyklische Schnelligkeit", at.AcyclicSpeed},
			{"Reaktion", at.Reaction},
			{"Ausdauer", at.Stamina},
			{"Schnelligkeitsausdauer", at.SpeedEndurance},
			{"Kraftausdauer", at.PowerEndurance},
			{"Gewandtheit", at.Agility},
			{"Sprungkraft", at.Jumping},
			{"Wurfkraft", at.Throwing},
			{"Schnellkraft", at.Explosiveness},
		}},
		{Title: "Mentalität", Items: []AttributeItem{
			{"Einstellung", m.Attitude},
			{"Körpersprache", m.BodyLanguage},
			{"Bewegungsvorstellung", m.Visualization},
			{"Einbringung Spielnachbesprechung", m.DebriefingInput},
		}},
		{Title: "Taktik", Items: []AttributeItem{
			{"Antizipation", ta.Anticipation},
			{"Entschlossenheit", ta.Decisiveness},
			{"Balleroberung", ta.BallRecovery},
			{"Ballsicherung", ta.BallProtection},
			{"Torchance", ta.ScoringChance},
			{"Tor", ta.Goal},
			{"Nachgehen nach Torschuss", ta.FollowUp},
			{"Anbieten", ta.Offering},
			{"Dem Ball entgegen gehen", ta.MeetBall},
			{"Doppelpass", ta.GiveAndGo},
			{"Freilaufen", ta.CreatingSpace},
			{"Positionswechsel", ta.PositionSwitch},
			{"Position halten", ta.HoldPosition},
			{"Kommunikation", ta.Communication},
			{"Torschuss (Taktik)", ta.TacticalShot},
		}},
	}
}
