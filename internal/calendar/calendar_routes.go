package calendar

import (
	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/internal/storage"
)

// RegisterCalendarRoutes wires the appointment endpoints.
func RegisterCalendarRoutes(router *gin.RouterGroup, docs storage.DocumentRepository) {
	controller := NewCalendarController(docs)

	calendarGroup := router.Group("/calendar")
	{
		calendarGroup.GET("/events", controller.ListEvents)
		calendarGroup.POST("/events", controller.AddEvent)
		calendarGroup.POST("/events/from-fixture", controller.AddFixture)
		calendarGroup.DELETE("/events/:event_id", controller.RemoveEvent)
	}
}
