package playerreport

import (
	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/storage"
)

// RegisterPlayerReportRoutes wires the player-scouting endpoints.
func RegisterPlayerReportRoutes(router *gin.RouterGroup, docs storage.DocumentRepository, appConfig *config.Config) {
	controller := NewPlayerReportController(docs, appConfig)

	reportGroup := router.Group("/reports/player")
	{
		reportGroup.GET("", controller.GetReport)
		reportGroup.PUT("", controller.PutReport)
		reportGroup.DELETE("", controller.ResetReport)
		reportGroup.GET("/attributes", controller.GetAttributes)
		reportGroup.PUT("/attributes", controller.PutAttributes)
		reportGroup.POST("/image", controller.UploadImage)
		reportGroup.GET("/export.pdf", controller.ExportPDF)
	}
}
