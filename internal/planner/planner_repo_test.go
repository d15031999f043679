package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeState(t *testing.T) {
	currentDoc := []byte(`{
		"teams": [
			{"id": "t1", "name": "Profis", "formation": "4-2-3-1", "players": [
				{"id": "1", "name": "Max", "position": "MIT", "priority": "A", "assignedSlot": 8}
			]},
			{"id": "t2", "name": "U19", "formation": "4-4-2", "players": []}
		],
		"currentTeamId": "t2"
	}`)
	legacyDoc := []byte(`[{"id": "1", "name": "Max", "currentClub": "FC Beispiel", "position": "MIT", "priority": "A"}]`)

	t.Run("current schema wins over legacy", func(t *testing.T) {
		withBoth := DecodeState(currentDoc, legacyDoc)
		currentOnly := DecodeState(currentDoc, nil)
		assert.Equal(t, currentOnly, withBoth, "legacy document must be ignored when the current one exists")
		require.Len(t, withBoth.Teams, 2)
		assert.Equal(t, "t2", withBoth.CurrentTeamID)
		require.NotNil(t, withBoth.Teams[0].Players[0].AssignedSlot)
		assert.Equal(t, 8, *withBoth.Teams[0].Players[0].AssignedSlot)
	})

	t.Run("legacy array becomes one synthetic team", func(t *testing.T) {
		s := DecodeState(nil, legacyDoc)
		require.Len(t, s.Teams, 1)
		team := s.Teams[0]
		assert.Equal(t, "default", team.ID)
		assert.Equal(t, DefaultTeamName, team.Name)
		assert.Equal(t, DefaultFormationKey, team.Formation)
		assert.Equal(t, team.ID, s.CurrentTeamID)

		require.Len(t, team.Players, 1)
		p := team.Players[0]
		assert.Equal(t, "1", p.ID)
		assert.Equal(t, "Max", p.Name)
		assert.Equal(t, PositionMIT, p.Position)
		assert.Equal(t, PriorityA, p.Priority)
		assert.Nil(t, p.AssignedSlot, "legacy players migrate unassigned")
	})

	t.Run("no documents yields one empty default team", func(t *testing.T) {
		s := DecodeState(nil, nil)
		require.Len(t, s.Teams, 1)
		assert.Equal(t, DefaultTeamName, s.Teams[0].Name)
		assert.Equal(t, DefaultFormationKey, s.Teams[0].Formation)
		assert.Empty(t, s.Teams[0].Players)
		assert.Equal(t, s.Teams[0].ID, s.CurrentTeamID)
	})

	t.Run("malformed current falls back to legacy", func(t *testing.T) {
		s := DecodeState([]byte(`{not json`), legacyDoc)
		require.Len(t, s.Teams, 1)
		assert.Equal(t, "default", s.Teams[0].ID)
		assert.Len(t, s.Teams[0].Players, 1)
	})

	t.Run("malformed everything falls back to default", func(t *testing.T) {
		s := DecodeState([]byte(`{not json`), []byte(`also not json`))
		require.Len(t, s.Teams, 1)
		assert.Empty(t, s.Teams[0].Players)
	})

	t.Run("empty team list counts as malformed", func(t *testing.T) {
		s := DecodeState([]byte(`{"teams": [], "currentTeamId": ""}`), legacyDoc)
		require.Len(t, s.Teams, 1)
		assert.Equal(t, "default", s.Teams[0].ID)
	})

	t.Run("dangling selection is repaired to the first team", func(t *testing.T) {
		s := DecodeState([]byte(`{"teams": [{"id": "t1", "name": "A", "formation": "4-4-2", "players": []}], "currentTeamId": "gone"}`), nil)
		assert.Equal(t, "t1", s.CurrentTeamID)
		require.NotNil(t, s.CurrentTeam())
	})

	t.Run("negative assignedSlot is repaired to the bench", func(t *testing.T) {
		doc := []byte(`{"teams": [{"id": "t1", "name": "A", "formation": "4-4-2", "players": [
			{"id": "1", "name": "Max", "position": "MIT", "priority": "A", "assignedSlot": -1},
			{"id": "2", "name": "Moritz", "position": "ABW", "priority": "B", "assignedSlot": 2}
		]}], "currentTeamId": "t1"}`)
		s := DecodeState(doc, nil)
		require.Len(t, s.Teams[0].Players, 2)
		assert.Nil(t, s.Teams[0].Players[0].AssignedSlot)
		require.NotNil(t, s.Teams[0].Players[1].AssignedSlot)
		assert.Equal(t, 2, *s.Teams[0].Players[1].AssignedSlot)

		view := s.PitchView()
		require.Len(t, view.Bench, 1)
		assert.Equal(t, "1", view.Bench[0].ID)
		assert.Len(t, view.Slots[2].Players, 1)
	})

	t.Run("legacy assignedSlot values are dropped", func(t *testing.T) {
		doc := []byte(`[{"id": "1", "name": "Max", "position": "MIT", "priority": "A", "assignedSlot": 3}]`)
		s := DecodeState(nil, doc)
		assert.Nil(t, s.Teams[0].Players[0].AssignedSlot)
	})
}

func TestStateRoundTrip(t *testing.T) {
	s := NewState()
	s.CreateTeam("U19 Kader")
	id, err := s.AddPlayer(PlayerInput{Name: "Jon Doe", Position: PositionABW, Priority: PriorityA})
	require.NoError(t, err)
	require.NoError(t, s.AssignToSlot(id, 2))

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	decoded := DecodeState(raw, nil)
	assert.Equal(t, s, decoded)
}
