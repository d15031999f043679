package matchreport

import (
	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/storage"
)

// RegisterMatchReportRoutes wires the match-scouting endpoints.
func RegisterMatchReportRoutes(router *gin.RouterGroup, docs storage.DocumentRepository, appConfig *config.Config) {
	controller := NewMatchReportController(docs, appConfig)

	reportGroup := router.Group("/reports/match")
	{
		reportGroup.GET("", controller.GetReport)
		reportGroup.PUT("", controller.PutReport)
		reportGroup.DELETE("", controller.ResetReport)
		reportGroup.POST("/images", controller.UploadImage)
		reportGroup.GET("/export.pdf", controller.ExportPDF)
	}
}
