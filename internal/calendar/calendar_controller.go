package calendar

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/internal/storage"
	"github.com/jhartwg/scoutbase/pkg/utils"
)

// EventsKey holds the appointment list as one document.
const EventsKey = "scouting_calendar_events"

// timeNow is overridable in tests for deterministic event ids.
var timeNow = time.Now

// nextEventID generates a timestamp-based id, bumping past collisions so
// rapid consecutive adds within one millisecond stay unique.
func nextEventID(events []Event) string {
	id := timeNow().UnixMilli()
	for {
		candidate := strconv.FormatInt(id, 10)
		if !eventIDTaken(events, candidate) {
			return candidate
		}
		id++
	}
}

func eventIDTaken(events []Event, id string) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}

// CalendarController handles scouting appointments
type CalendarController struct {
	docs storage.DocumentRepository
}

// NewCalendarController creates a new calendar controller
func NewCalendarController(docs storage.DocumentRepository) *CalendarController {
	return &CalendarController{docs: docs}
}

func (c *CalendarController) load(userID uint) ([]Event, error) {
	raw, found, err := c.docs.Get(userID, EventsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Event{}, nil
	}
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("calendar: stored document malformed, starting empty: %v", err)
		return []Event{}, nil
	}
	return events, nil
}

func (c *CalendarController) save(userID uint, events []Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.docs.Put(userID, EventsKey, raw)
}

// ListEvents godoc
// @Summary List scouting appointments
// @Tags calendar
// @Produce json
// @Success 200 {array} Event
// @Router /calendar/events [get]
// @Security Bearer
func (c *CalendarController) ListEvents(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	events, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load events: " + err.Error()})
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	ctx.JSON(http.StatusOK, events)
}

// AddEvent godoc
// @Summary Add a scouting appointment
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body EventInput true "Appointment"
// @Success 201 {object} Event
// @Failure 400 {object} utils.ErrorResponse "Missing title or date"
// @Router /calendar/events [post]
// @Security Bearer
func (c *CalendarController) AddEvent(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !input.Type.Valid() {
		input.Type = EventMeeting
	}

	events, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load events: " + err.Error()})
		return
	}

	event := Event{
		ID:       nextEventID(events),
		Title:    input.Title,
		Date:     input.Date,
		Time:     input.Time,
		Location: input.Location,
		Type:     input.Type,
	}
	events = append(events, event)

	if err := c.save(userID, events); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save events: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// AddFixture godoc
// @Summary Add a found fixture to the calendar as a match appointment
// @Tags calendar
// @Accept json
// @Produce json
// @Param fixture body FixtureInput true "Fixture"
// @Success 201 {object} Event
// @Router /calendar/events/from-fixture [post]
// @Security Bearer
func (c *CalendarController) AddFixture(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input FixtureInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	events, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load events: " + err.Error()})
		return
	}

	event := Event{
		ID:       nextEventID(events),
		Title:    input.HomeTeam + " vs " + input.AwayTeam,
		Date:     input.Date,
		Time:     input.Time,
		Location: input.Location,
		Type:     EventMatch,
	}
	events = append(events, event)

	if err := c.save(userID, events); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save events: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// RemoveEvent godoc
// @Summary Remove a scouting appointment
// @Description Idempotent: unknown ids are ignored
// @Tags calendar
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} Event
// @Router /calendar/events/{event_id} [delete]
// @Security Bearer
func (c *CalendarController) RemoveEvent(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	events, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load events: " + err.Error()})
		return
	}

	id := ctx.Param("event_id")
	kept := events[:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}

	if err := c.save(userID, kept); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save events: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, kept)
}
