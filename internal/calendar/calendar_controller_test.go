package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextEventID(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	restore := timeNow
	timeNow = func() time.Time { return frozen }
	defer func() { timeNow = restore }()

	t.Run("ids stay unique even within one millisecond", func(t *testing.T) {
		events := []Event{}
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			id := nextEventID(events)
			assert.False(t, seen[id], "duplicate event id %s", id)
			seen[id] = true
			events = append(events, Event{ID: id, Title: "Termin"})
		}
	})

	t.Run("bumps past an existing id", func(t *testing.T) {
		events := []Event{{ID: "1700000000000"}}
		assert.Equal(t, "1700000000001", nextEventID(events))
	})
}
