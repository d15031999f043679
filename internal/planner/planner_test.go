package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	t.Run("appends and selects the new team", func(t *testing.T) {
		s := NewState()
		id, err := s.CreateTeam("U19 Kader")
		require.NoError(t, err)
		assert.Len(t, s.Teams, 2)
		assert.Equal(t, id, s.CurrentTeamID)
		assert.Equal(t, "U19 Kader", s.CurrentTeam().Name)
		assert.Equal(t, DefaultFormationKey, s.CurrentTeam().Formation)
		assert.Empty(t, s.CurrentTeam().Players)
	})

	t.Run("rejects empty and whitespace names", func(t *testing.T) {
		s := NewState()
		_, err := s.CreateTeam("")
		assert.ErrorIs(t, err, ErrEmptyName)
		_, err = s.CreateTeam("   ")
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Len(t, s.Teams, 1)
	})

	t.Run("team ids stay unique across many creates", func(t *testing.T) {
		s := NewState()
		seen := map[string]bool{s.Teams[0].ID: true}
		for i := 0; i < 50; i++ {
			id, err := s.CreateTeam("Team")
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate team id %s", id)
			seen[id] = true
		}
	})
}

func TestDeleteTeam(t *testing.T) {
	t.Run("refuses to delete the last team", func(t *testing.T) {
		s := NewState()
		onlyID := s.Teams[0].ID
		err := s.DeleteTeam(onlyID)
		assert.ErrorIs(t, err, ErrLastTeam)
		require.Len(t, s.Teams, 1)
		assert.Equal(t, onlyID, s.Teams[0].ID)
		assert.Equal(t, onlyID, s.CurrentTeamID)
	})

	t.Run("selects the first remaining team when the current one goes", func(t *testing.T) {
		s := NewState()
		firstID := s.Teams[0].ID
		secondID, err := s.CreateTeam("Zweites Team")
		require.NoError(t, err)
		require.Equal(t, secondID, s.CurrentTeamID)

		require.NoError(t, s.DeleteTeam(secondID))
		assert.Len(t, s.Teams, 1)
		assert.Equal(t, firstID, s.CurrentTeamID)
		assert.NotNil(t, s.CurrentTeam())
	})

	t.Run("keeps the selection when another team goes", func(t *testing.T) {
		s := NewState()
		firstID := s.Teams[0].ID
		secondID, _ := s.CreateTeam("Zweites Team")

		require.NoError(t, s.DeleteTeam(firstID))
		assert.Equal(t, secondID, s.CurrentTeamID)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := NewState()
		s.CreateTeam("Zweites Team")
		assert.ErrorIs(t, s.DeleteTeam("nope"), ErrTeamNotFound)
		assert.Len(t, s.Teams, 2)
	})

	t.Run("collection is never empty under repeated deletes", func(t *testing.T) {
		s := NewState()
		for i := 0; i < 5; i++ {
			s.CreateTeam("T")
		}
		for len(s.Teams) > 1 {
			require.NoError(t, s.DeleteTeam(s.Teams[0].ID))
			assert.NotNil(t, s.CurrentTeam(), "selection must stay valid")
		}
		assert.ErrorIs(t, s.DeleteTeam(s.Teams[0].ID), ErrLastTeam)
		assert.Len(t, s.Teams, 1)
	})
}

func TestRenameTeam(t *testing.T) {
	s := NewState()
	id := s.Teams[0].ID
	s.AddPlayer(PlayerInput{Name: "Max"})

	t.Run("replaces the name in place", func(t *testing.T) {
		require.NoError(t, s.RenameTeam(id, "Profis"))
		assert.Equal(t, "Profis", s.Teams[0].Name)
		assert.Equal(t, id, s.Teams[0].ID)
		assert.Len(t, s.Teams[0].Players, 1)
	})

	t.Run("empty name is refused", func(t *testing.T) {
		assert.ErrorIs(t, s.RenameTeam(id, "  "), ErrEmptyName)
		assert.Equal(t, "Profis", s.Teams[0].Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, s.RenameTeam("nope", "X"), ErrTeamNotFound)
	})
}

func TestSetCurrentTeam(t *testing.T) {
	s := NewState()
	firstID := s.Teams[0].ID
	s.CreateTeam("Zweites Team")

	require.NoError(t, s.SetCurrentTeam(firstID))
	assert.Equal(t, firstID, s.CurrentTeamID)

	assert.ErrorIs(t, s.SetCurrentTeam("nope"), ErrTeamNotFound)
	assert.Equal(t, firstID, s.CurrentTeamID)
}

func TestAddPlayer(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		s := NewState()
		_, err := s.AddPlayer(PlayerInput{Name: " "})
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Empty(t, s.CurrentTeam().Players)
	})

	t.Run("applies neutral defaults", func(t *testing.T) {
		s := NewState()
		id, err := s.AddPlayer(PlayerInput{Name: "Jon Doe"})
		require.NoError(t, err)

		p := s.CurrentTeam().Players[0]
		assert.Equal(t, id, p.ID)
		assert.Equal(t, PositionMIT, p.Position)
		assert.Equal(t, FootRechts, p.Foot)
		assert.Equal(t, PriorityB, p.Priority)
		assert.Nil(t, p.AssignedSlot, "new players start on the bench")
	})

	t.Run("optional slot assigns directly", func(t *testing.T) {
		s := NewState()
		slot := 2
		_, err := s.AddPlayer(PlayerInput{Name: "Jon Doe", Slot: &slot})
		require.NoError(t, err)
		require.NotNil(t, s.CurrentTeam().Players[0].AssignedSlot)
		assert.Equal(t, 2, *s.CurrentTeam().Players[0].AssignedSlot)
	})

	t.Run("negative slot is refused", func(t *testing.T) {
		s := NewState()
		slot := -1
		_, err := s.AddPlayer(PlayerInput{Name: "Jon Doe", Slot: &slot})
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("ids stay unique even within one millisecond", func(t *testing.T) {
		frozen := time.UnixMilli(1700000000000)
		restore := timeNow
		timeNow = func() time.Time { return frozen }
		defer func() { timeNow = restore }()

		s := NewState()
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			id, err := s.AddPlayer(PlayerInput{Name: "Spieler"})
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate player id %s", id)
			seen[id] = true
		}
	})
}

func TestRemovePlayer(t *testing.T) {
	s := NewState()
	id, _ := s.AddPlayer(PlayerInput{Name: "Max"})
	keep, _ := s.AddPlayer(PlayerInput{Name: "Moritz"})

	s.RemovePlayer(id)
	require.Len(t, s.CurrentTeam().Players, 1)
	assert.Equal(t, keep, s.CurrentTeam().Players[0].ID)

	// Idempotent on unknown ids.
	s.RemovePlayer(id)
	s.RemovePlayer("nope")
	assert.Len(t, s.CurrentTeam().Players, 1)
}

func TestSlotAssignment(t *testing.T) {
	t.Run("assign and unassign round-trip", func(t *testing.T) {
		s := NewState()
		id, _ := s.AddPlayer(PlayerInput{Name: "Max"})

		require.NoError(t, s.AssignToSlot(id, 5))
		require.NotNil(t, s.CurrentTeam().Players[0].AssignedSlot)
		assert.Equal(t, 5, *s.CurrentTeam().Players[0].AssignedSlot)

		require.NoError(t, s.UnassignFromSlot(id))
		assert.Nil(t, s.CurrentTeam().Players[0].AssignedSlot)
	})

	t.Run("unassign is idempotent", func(t *testing.T) {
		s := NewState()
		id, _ := s.AddPlayer(PlayerInput{Name: "Max"})
		require.NoError(t, s.UnassignFromSlot(id))
		require.NoError(t, s.UnassignFromSlot(id))
		assert.Nil(t, s.CurrentTeam().Players[0].AssignedSlot)
	})

	t.Run("multiple players may share a slot", func(t *testing.T) {
		s := NewState()
		a, _ := s.AddPlayer(PlayerInput{Name: "Erster"})
		b, _ := s.AddPlayer(PlayerInput{Name: "Zweiter"})
		require.NoError(t, s.AssignToSlot(a, 5))
		require.NoError(t, s.AssignToSlot(b, 5))

		view := s.PitchView()
		assert.Len(t, view.Slots[5].Players, 2)
	})

	t.Run("errors", func(t *testing.T) {
		s := NewState()
		id, _ := s.AddPlayer(PlayerInput{Name: "Max"})
		assert.ErrorIs(t, s.AssignToSlot(id, -1), ErrInvalidSlot)
		assert.ErrorIs(t, s.AssignToSlot("nope", 1), ErrPlayerNotFound)
		assert.ErrorIs(t, s.UnassignFromSlot("nope"), ErrPlayerNotFound)
	})
}

func TestFormationSwitchIsNonDestructive(t *testing.T) {
	s := NewState()
	teamID := s.Teams[0].ID
	id, _ := s.AddPlayer(PlayerInput{Name: "Max"})
	require.NoError(t, s.AssignToSlot(id, 10)) // last slot of 4-4-2

	// Pretend a smaller formation: stored index survives untouched.
	small := Formation{Name: "testform", Slots: formationCatalog["4-4-2"].Slots[:5]}
	formationCatalog["klein"] = small
	formationKeys = append(formationKeys, "klein")
	defer func() {
		delete(formationCatalog, "klein")
		formationKeys = formationKeys[:len(formationKeys)-1]
	}()

	require.NoError(t, s.SetFormation(teamID, "klein"))
	require.NotNil(t, s.CurrentTeam().Players[0].AssignedSlot)
	assert.Equal(t, 10, *s.CurrentTeam().Players[0].AssignedSlot, "slot index must not be renumbered or cleared")

	view := s.PitchView()
	require.Len(t, view.Bench, 1, "out-of-range assignment shows as bench")
	assert.Equal(t, id, view.Bench[0].ID)

	// Switching back revives the assignment.
	require.NoError(t, s.SetFormation(teamID, "4-4-2"))
	view = s.PitchView()
	assert.Empty(t, view.Bench)
	assert.Len(t, view.Slots[10].Players, 1)
}

func TestSetFormationFallsBackToDefault(t *testing.T) {
	s := NewState()
	teamID := s.Teams[0].ID
	require.NoError(t, s.SetFormation(teamID, "2-2-2"))
	assert.Equal(t, DefaultFormationKey, s.CurrentTeam().Formation)

	require.NoError(t, s.SetFormation(teamID, "3-5-2"))
	assert.Equal(t, "3-5-2", s.CurrentTeam().Formation)
}
