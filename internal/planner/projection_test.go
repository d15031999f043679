package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListView(t *testing.T) {
	s := NewState()
	s.AddPlayer(PlayerInput{Name: "Torwart", Position: PositionTW})
	s.AddPlayer(PlayerInput{Name: "Perspektive", Position: PositionMIT, Priority: PriorityC})
	s.AddPlayer(PlayerInput{Name: "Top", Position: PositionMIT, Priority: PriorityA})

	t.Run("groups by position in display order", func(t *testing.T) {
		groups := s.ListView("")
		require.Len(t, groups, 4)
		assert.Equal(t, PositionTW, groups[0].Position)
		assert.Equal(t, PositionABW, groups[1].Position)
		assert.Equal(t, PositionMIT, groups[2].Position)
		assert.Equal(t, PositionANG, groups[3].Position)

		assert.Len(t, groups[0].Players, 1)
		assert.Empty(t, groups[1].Players)
		assert.Len(t, groups[2].Players, 2)
	})

	t.Run("sorts within a group by priority", func(t *testing.T) {
		groups := s.ListView("")
		mit := groups[2].Players
		assert.Equal(t, "Top", mit[0].Name)
		assert.Equal(t, "Perspektive", mit[1].Name)
	})

	t.Run("position filter returns a single group", func(t *testing.T) {
		groups := s.ListView(PositionMIT)
		require.Len(t, groups, 1)
		assert.Equal(t, PositionMIT, groups[0].Position)
		assert.Len(t, groups[0].Players, 2)
	})

	t.Run("invalid filter means no filter", func(t *testing.T) {
		assert.Len(t, s.ListView("XYZ"), 4)
	})
}

func TestPitchView(t *testing.T) {
	t.Run("assigned player appears at the slot with an empty bench", func(t *testing.T) {
		s := NewState()
		_, err := s.CreateTeam("U19 Kader")
		require.NoError(t, err)
		id, err := s.AddPlayer(PlayerInput{Name: "Jon Doe", Position: PositionABW})
		require.NoError(t, err)
		require.NoError(t, s.AssignToSlot(id, 2))

		groups := s.ListView("")
		assert.Len(t, groups[1].Players, 1, "Jon Doe listed under ABW")
		assert.Equal(t, "Jon Doe", groups[1].Players[0].Name)

		view := s.PitchView()
		require.Len(t, view.Slots, 11)
		assert.Equal(t, PositionABW, view.Slots[2].Role)
		require.Len(t, view.Slots[2].Players, 1)
		assert.Equal(t, "Jon Doe", view.Slots[2].Players[0].Name)
		assert.Empty(t, view.Bench)
	})

	t.Run("shared slot stacks by priority then insertion order", func(t *testing.T) {
		s := NewState()
		b1, _ := s.AddPlayer(PlayerInput{Name: "Erster B", Priority: PriorityB})
		a, _ := s.AddPlayer(PlayerInput{Name: "Der Top", Priority: PriorityA})
		b2, _ := s.AddPlayer(PlayerInput{Name: "Zweiter B", Priority: PriorityB})
		require.NoError(t, s.AssignToSlot(b1, 5))
		require.NoError(t, s.AssignToSlot(a, 5))
		require.NoError(t, s.AssignToSlot(b2, 5))

		view := s.PitchView()
		require.Len(t, view.Slots[5].Players, 3)
		assert.Equal(t, a, view.Slots[5].Players[0].ID)
		assert.Equal(t, b1, view.Slots[5].Players[1].ID)
		assert.Equal(t, b2, view.Slots[5].Players[2].ID)
	})

	t.Run("unassigned and overflow players form the bench", func(t *testing.T) {
		s := NewState()
		bench, _ := s.AddPlayer(PlayerInput{Name: "Bank"})
		over, _ := s.AddPlayer(PlayerInput{Name: "Zu weit"})
		require.NoError(t, s.AssignToSlot(over, 25))

		view := s.PitchView()
		require.Len(t, view.Bench, 2)
		assert.Equal(t, bench, view.Bench[0].ID)
		assert.Equal(t, over, view.Bench[1].ID)
		assert.Equal(t, view.Bench, s.Bench())
	})

	t.Run("resolves unknown formation keys to the default", func(t *testing.T) {
		s := NewState()
		s.Teams[0].Formation = "formation-from-the-future"
		view := s.PitchView()
		assert.Equal(t, DefaultFormationKey, view.FormationKey)
		assert.Len(t, view.Slots, 11)
	})
}

func TestFormationCatalog(t *testing.T) {
	t.Run("every formation fields eleven with one keeper", func(t *testing.T) {
		for _, key := range FormationKeys() {
			f, ok := FormationByKey(key)
			require.True(t, ok, key)
			assert.Len(t, f.Slots, 11, key)

			keepers := 0
			for _, slot := range f.Slots {
				assert.True(t, slot.Role.Valid(), key)
				assert.GreaterOrEqual(t, slot.X, 0.0)
				assert.LessOrEqual(t, slot.X, 100.0)
				assert.GreaterOrEqual(t, slot.Y, 0.0)
				assert.LessOrEqual(t, slot.Y, 100.0)
				if slot.Role == PositionTW {
					keepers++
				}
			}
			assert.Equal(t, 1, keepers, key)
		}
	})

	t.Run("default key resolves", func(t *testing.T) {
		_, ok := FormationByKey(DefaultFormationKey)
		assert.True(t, ok)
		assert.Equal(t, DefaultFormationKey, ResolveFormationKey("no-such-formation"))
		assert.Equal(t, "3-5-2", ResolveFormationKey("3-5-2"))
	})
}
