package planner

import "sort"

// PositionGroup is one list-view section: all candidates sharing a
// nominal position, ordered by priority and then insertion order.
type PositionGroup struct {
	Position Position       `json:"position"`
	Players  []ShadowPlayer `json:"players"`
}

// ListView projects the current team's roster into per-position groups
// for display and PDF export. When filter is a valid position only that
// group is returned.
func (s *State) ListView(filter Position) []PositionGroup {
	team := s.CurrentTeam()
	if team == nil {
		return nil
	}

	positions := AllPositions
	if filter.Valid() {
		positions = []Position{filter}
	}

	groups := make([]PositionGroup, 0, len(positions))
	for _, pos := range positions {
		group := PositionGroup{Position: pos, Players: []ShadowPlayer{}}
		for _, p := range team.Players {
			if p.Position == pos {
				group.Players = append(group.Players, p)
			}
		}
		sortByPriority(group.Players)
		groups = append(groups, group)
	}
	return groups
}

// SlotView is one occupied or empty slot of the pitch view.
type SlotView struct {
	Index   int            `json:"index"`
	Label   string         `json:"label"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Role    Position       `json:"role"`
	Players []ShadowPlayer `json:"players"`
}

// PitchViewData is the full pitch projection: the resolved formation,
// one entry per slot with its stacked occupants, and the bench.
type PitchViewData struct {
	TeamName      string         `json:"teamName"`
	FormationKey  string         `json:"formationKey"`
	FormationName string         `json:"formationName"`
	Slots         []SlotView     `json:"slots"`
	Bench         []ShadowPlayer `json:"bench"`
}

// PitchView projects the current team onto its active formation. Slot
// occupants are sorted by priority (A before B before C) with insertion
// order as the tie-break; players without a slot, or with a stored index
// past the end of the active formation, land on the bench.
func (s *State) PitchView() PitchViewData {
	team := s.CurrentTeam()
	if team == nil {
		return PitchViewData{}
	}

	key := ResolveFormationKey(team.Formation)
	formation, _ := FormationByKey(key)

	view := PitchViewData{
		TeamName:      team.Name,
		FormationKey:  key,
		FormationName: formation.Name,
		Slots:         make([]SlotView, len(formation.Slots)),
		Bench:         []ShadowPlayer{},
	}

	for i, slot := range formation.Slots {
		view.Slots[i] = SlotView{
			Index:   i,
			Label:   slot.Label,
			X:       slot.X,
			Y:       slot.Y,
			Role:    slot.Role,
			Players: []ShadowPlayer{},
		}
	}

	for _, p := range team.Players {
		if onBench(p, len(formation.Slots)) {
			view.Bench = append(view.Bench, p)
			continue
		}
		idx := *p.AssignedSlot
		view.Slots[idx].Players = append(view.Slots[idx].Players, p)
	}

	for i := range view.Slots {
		sortByPriority(view.Slots[i].Players)
	}
	return view
}

// Bench returns the current team's unassigned and overflow players.
func (s *State) Bench() []ShadowPlayer {
	return s.PitchView().Bench
}

// sortByPriority orders players A before B before C, keeping insertion
// order within the same priority.
func sortByPriority(players []ShadowPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Priority.rank() < players[j].Priority.rank()
	})
}
