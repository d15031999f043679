package planner

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrLastTeam       = errors.New("cannot delete last team")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidSlot    = errors.New("slot index must not be negative")
)

// timeNow is overridable in tests for deterministic player ids.
var timeNow = time.Now

// NewState returns a fresh planner state with exactly one empty team.
func NewState() *State {
	team := ShadowTeam{
		ID:        uuid.NewString(),
		Name:      DefaultTeamName,
		Formation: DefaultFormationKey,
		Players:   []ShadowPlayer{},
	}
	return &State{
		Teams:         []ShadowTeam{team},
		CurrentTeamID: team.ID,
	}
}

func (s *State) teamByID(id string) *ShadowTeam {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// CurrentTeam returns the currently selected team. The load path
// guarantees the selection always resolves, so callers may rely on a
// non-nil result for any state produced by LoadState or NewState.
func (s *State) CurrentTeam() *ShadowTeam {
	return s.teamByID(s.CurrentTeamID)
}

// CreateTeam appends a new empty team with the default formation and
// selects it. The name must be non-empty after trimming.
func (s *State) CreateTeam(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	team := ShadowTeam{
		ID:        uuid.NewString(),
		Name:      name,
		Formation: DefaultFormationKey,
		Players:   []ShadowPlayer{},
	}
	s.Teams = append(s.Teams, team)
	s.CurrentTeamID = team.ID
	return team.ID, nil
}

// DeleteTeam removes the team with the given id. Deleting the last
// remaining team is refused. If the deleted team was selected, the first
// remaining team becomes current.
func (s *State) DeleteTeam(id string) error {
	if s.teamByID(id) == nil {
		return ErrTeamNotFound
	}
	if len(s.Teams) <= 1 {
		return ErrLastTeam
	}
	remaining := make([]ShadowTeam, 0, len(s.Teams)-1)
	for _, t := range s.Teams {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.Teams = remaining
	if s.CurrentTeamID == id {
		s.CurrentTeamID = s.Teams[0].ID
	}
	return nil
}

// RenameTeam replaces the team's display name in place. Players,
// formation, and ordering are untouched.
func (s *State) RenameTeam(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	team := s.teamByID(id)
	if team == nil {
		return ErrTeamNotFound
	}
	team.Name = newName
	return nil
}

// SetCurrentTeam switches the selection to the given team.
func (s *State) SetCurrentTeam(id string) error {
	if s.teamByID(id) == nil {
		return ErrTeamNotFound
	}
	s.CurrentTeamID = id
	return nil
}

// SetFormation replaces the team's formation key, falling back to the
// default when the key is unknown. Player slot assignments are never
// touched: slot indices are interpreted lazily against the current
// formation at read time.
func (s *State) SetFormation(teamID, formationKey string) error {
	team := s.teamByID(teamID)
	if team == nil {
		return ErrTeamNotFound
	}
	team.Formation = ResolveFormationKey(formationKey)
	return nil
}

// AddPlayer appends a new player to the current team. Name is required;
// position, foot, and priority fall back to MIT, Rechts, and B. When the
// input carries a slot index the player starts assigned to it, otherwise
// on the bench.
func (s *State) AddPlayer(input PlayerInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return "", ErrEmptyName
	}
	if input.Slot != nil && *input.Slot < 0 {
		return "", ErrInvalidSlot
	}
	team := s.CurrentTeam()
	if team == nil {
		return "", ErrTeamNotFound
	}

	if !input.Position.Valid() {
		input.Position = PositionMIT
	}
	if !input.Foot.Valid() {
		input.Foot = FootRechts
	}
	if !input.Priority.Valid() {
		input.Priority = PriorityB
	}

	player := ShadowPlayer{
		ID:           nextPlayerID(team),
		Name:         input.Name,
		CurrentClub:  input.CurrentClub,
		Position:     input.Position,
		Age:          input.Age,
		Height:       input.Height,
		Foot:         input.Foot,
		MarketValue:  input.MarketValue,
		ContractEnds: input.ContractEnds,
		Priority:     input.Priority,
		Notes:        input.Notes,
		AssignedSlot: input.Slot,
	}
	team.Players = append(team.Players, player)
	return player.ID, nil
}

// nextPlayerID generates a timestamp-based id, bumping past collisions so
// rapid consecutive adds within one millisecond stay unique per team.
func nextPlayerID(team *ShadowTeam) string {
	id := timeNow().UnixMilli()
	for {
		candidate := strconv.FormatInt(id, 10)
		if !playerIDTaken(team, candidate) {
			return candidate
		}
		id++
	}
}

func playerIDTaken(team *ShadowTeam, id string) bool {
	for _, p := range team.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// RemovePlayer deletes the player from the current team's roster.
// Unknown ids are ignored.
func (s *State) RemovePlayer(id string) {
	team := s.CurrentTeam()
	if team == nil {
		return
	}
	kept := team.Players[:0]
	for _, p := range team.Players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	team.Players = kept
}

// AssignToSlot maps the player to the given slot index on the current
// team. Several players may share one slot; they are read back as a
// depth chart ordered by priority.
func (s *State) AssignToSlot(playerID string, slotIndex int) error {
	if slotIndex < 0 {
		return ErrInvalidSlot
	}
	player := s.currentPlayer(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}
	idx := slotIndex
	player.AssignedSlot = &idx
	return nil
}

// UnassignFromSlot returns the player to the bench. Calling it on an
// already-unassigned player is a no-op.
func (s *State) UnassignFromSlot(playerID string) error {
	player := s.currentPlayer(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}
	player.AssignedSlot = nil
	return nil
}

func (s *State) currentPlayer(id string) *ShadowPlayer {
	team := s.CurrentTeam()
	if team == nil {
		return nil
	}
	for i := range team.Players {
		if team.Players[i].ID == id {
			return &team.Players[i]
		}
	}
	return nil
}

// onBench reports whether the player counts as unassigned for the active
// formation: no slot at all, or a stored index past the end of the slot
// list (possible after switching to a smaller formation).
func onBench(p ShadowPlayer, slotCount int) bool {
	return p.AssignedSlot == nil || *p.AssignedSlot >= slotCount
}
