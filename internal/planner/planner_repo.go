package planner

import (
	"encoding/json"
	"log"

	"github.com/jhartwg/scoutbase/internal/storage"
)

const (
	// StateKey holds the multi-team planner document.
	StateKey = "scouting_shadow_teams_v2"
	// LegacyKey is the pre-multi-team document: a bare player array with
	// no team wrapper and no slot assignments.
	LegacyKey = "scouting_shadow_team"

	// DefaultTeamName names the team created on first use and the
	// synthetic team wrapped around a migrated legacy roster.
	DefaultTeamName = "Mein Kader"

	legacyTeamID = "default"
)

// PlannerRepository loads and saves the planner state document.
type PlannerRepository interface {
	LoadState(userID uint) (*State, error)
	SaveState(userID uint, s *State) error
}

type plannerRepository struct {
	docs storage.DocumentRepository
}

// NewPlannerRepository creates a new planner repository on top of the
// document store.
func NewPlannerRepository(docs storage.DocumentRepository) PlannerRepository {
	return &plannerRepository{docs: docs}
}

// LoadState reads the planner document for the user, migrating from the
// legacy schema or initializing a default state as needed. The legacy
// document is never deleted or rewritten.
func (r *plannerRepository) LoadState(userID uint) (*State, error) {
	current, _, err := r.docs.Get(userID, StateKey)
	if err != nil {
		return nil, err
	}
	legacy, _, err := r.docs.Get(userID, LegacyKey)
	if err != nil {
		return nil, err
	}
	return DecodeState(current, legacy), nil
}

// SaveState writes the full planner document back under the current key.
func (r *plannerRepository) SaveState(userID uint, s *State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.docs.Put(userID, StateKey, raw)
}

// DecodeState resolves the persisted planner state from the two possible
// schema variants, in order of precedence:
//
//  1. current schema (teams + currentTeamId), trusted as stored;
//  2. legacy schema (bare player array), wrapped into one synthetic team
//     with every player unassigned;
//  3. a fresh default state.
//
// A variant that is absent or fails to decode falls through to the next,
// so a corrupted document degrades instead of crashing the load.
func DecodeState(current, legacy []byte) *State {
	if len(current) > 0 {
		if s, ok := decodeCurrent(current); ok {
			return s
		}
		log.Printf("planner: current state document malformed, falling back")
	}
	if len(legacy) > 0 {
		if s, ok := decodeLegacy(legacy); ok {
			return s
		}
		log.Printf("planner: legacy state document malformed, falling back")
	}
	return NewState()
}

func decodeCurrent(raw []byte) (*State, bool) {
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	if len(s.Teams) == 0 {
		return nil, false
	}
	for i := range s.Teams {
		if s.Teams[i].Players == nil {
			s.Teams[i].Players = []ShadowPlayer{}
		}
		// A slot index is non-negative when set; repair violations to
		// the bench instead of letting projections index with them.
		for j := range s.Teams[i].Players {
			if slot := s.Teams[i].Players[j].AssignedSlot; slot != nil && *slot < 0 {
				s.Teams[i].Players[j].AssignedSlot = nil
			}
		}
	}
	// Repair a dangling selection deterministically.
	if s.teamByID(s.CurrentTeamID) == nil {
		s.CurrentTeamID = s.Teams[0].ID
	}
	return &s, true
}

func decodeLegacy(raw []byte) (*State, bool) {
	var players []ShadowPlayer
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, false
	}
	// The legacy schema had no slot assignments; migrated players start
	// on the bench even if the field somehow appears in the document.
	for i := range players {
		players[i].AssignedSlot = nil
	}
	if players == nil {
		players = []ShadowPlayer{}
	}
	team := ShadowTeam{
		ID:        legacyTeamID,
		Name:      DefaultTeamName,
		Formation: DefaultFormationKey,
		Players:   players,
	}
	return &State{
		Teams:         []ShadowTeam{team},
		CurrentTeamID: team.ID,
	}, true
}
