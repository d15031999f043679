package calendar

// EventType classifies a calendar entry.
type EventType string

const (
	EventMatch    EventType = "Match"
	EventTraining EventType = "Training"
	EventMeeting  EventType = "Meeting"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventMatch, EventTraining, EventMeeting:
		return true
	}
	return false
}

// Event is one scouting appointment.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"` // YYYY-MM-DD
	Time     string    `json:"time"`
	Location string    `json:"location"`
	Type     EventType `json:"type"`
}

// EventInput is the request body for adding an appointment.
type EventInput struct {
	Title    string    `json:"title" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	Type     EventType `json:"type"`
}

// FixtureInput is the request body for adding a found fixture straight
// to the calendar.
type FixtureInput struct {
	HomeTeam string `json:"homeTeam" binding:"required"`
	AwayTeam string `json:"awayTeam" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Location string `json:"location"`
}
