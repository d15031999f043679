package planner

// Position is the nominal role of a player and the expected role of a
// formation slot.
type Position string

const (
	PositionTW  Position = "TW"  // Torwart
	PositionABW Position = "ABW" // Abwehr
	PositionMIT Position = "MIT" // Mittelfeld
	PositionANG Position = "ANG" // Angriff
)

// AllPositions lists the positions in display order (goal to attack).
var AllPositions = []Position{PositionTW, PositionABW, PositionMIT, PositionANG}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTW, PositionABW, PositionMIT, PositionANG:
		return true
	}
	return false
}

// Foot is a player's preferred foot.
type Foot string

const (
	FootLinks  Foot = "Links"
	FootRechts Foot = "Rechts"
	FootBeide  Foot = "Beide"
)

// Valid reports whether f is one of the known feet.
func (f Foot) Valid() bool {
	switch f {
	case FootLinks, FootRechts, FootBeide:
		return true
	}
	return false
}

// Priority is the scouting-interest ranking of a candidate.
type Priority string

const (
	PriorityA Priority = "A" // top target
	PriorityB Priority = "B" // alternative
	PriorityC Priority = "C" // perspective
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityA, PriorityB, PriorityC:
		return true
	}
	return false
}

// rank orders priorities A before B before C for display sorting.
func (p Priority) rank() int {
	switch p {
	case PriorityA:
		return 0
	case PriorityB:
		return 1
	case PriorityC:
		return 2
	}
	return 3
}

// ShadowPlayer is one scouting candidate on a shadow team.
// AssignedSlot indexes into the current formation's slot list; nil means
// the player is on the bench. The index is interpreted lazily against
// whatever formation is selected at read time, so it may point past the
// end of a shorter formation without being cleared.
type ShadowPlayer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CurrentClub  string   `json:"currentClub"`
	Position     Position `json:"position"`
	Age          string   `json:"age"`
	Height       string   `json:"height"`
	Foot         Foot     `json:"foot"`
	MarketValue  string   `json:"marketValue"`
	ContractEnds string   `json:"contractEnds"`
	Priority     Priority `json:"priority"`
	Notes        string   `json:"notes"`
	AssignedSlot *int     `json:"assignedSlot,omitempty"`
}

// ShadowTeam is one named squad-planning workspace.
type ShadowTeam struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Formation string         `json:"formation"`
	Players   []ShadowPlayer `json:"players"`
}

// State is the persisted root of the planner: all shadow teams plus the
// id of the currently selected one.
type State struct {
	Teams         []ShadowTeam `json:"teams"`
	CurrentTeamID string       `json:"currentTeamId"`
}

// PlayerInput carries the caller-supplied fields for a new player.
// Only Name is required; zero values fall back to neutral defaults
// (position MIT, foot Rechts, priority B).
type PlayerInput struct {
	Name         string   `json:"name"`
	CurrentClub  string   `json:"currentClub"`
	Position     Position `json:"position"`
	Age          string   `json:"age"`
	Height       string   `json:"height"`
	Foot         Foot     `json:"foot"`
	MarketValue  string   `json:"marketValue"`
	ContractEnds string   `json:"contractEnds"`
	Priority     Priority `json:"priority"`
	Notes        string   `json:"notes"`
	Slot         *int     `json:"slot,omitempty"`
}
