package planner

import (
	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/storage"
)

// RegisterPlannerRoutes wires the squad/formation planner endpoints.
// The router group is expected to carry the auth middleware already.
func RegisterPlannerRoutes(router *gin.RouterGroup, docs storage.DocumentRepository, appConfig *config.Config) {
	repo := NewPlannerRepository(docs)
	controller := NewPlannerController(repo, appConfig)

	plannerGroup := router.Group("/planner")
	{
		plannerGroup.GET("/state", controller.GetState)
		plannerGroup.GET("/formations", controller.GetFormations)

		plannerGroup.POST("/teams", controller.CreateTeam)
		plannerGroup.PUT("/teams/:team_id", controller.RenameTeam)
		plannerGroup.DELETE("/teams/:team_id", controller.DeleteTeam)
		plannerGroup.PUT("/teams/:team_id/select", controller.SelectTeam)
		plannerGroup.PUT("/teams/:team_id/formation", controller.SetFormation)

		plannerGroup.POST("/players", controller.AddPlayer)
		plannerGroup.DELETE("/players/:player_id", controller.RemovePlayer)
		plannerGroup.PUT("/players/:player_id/slot", controller.AssignPlayer)
		plannerGroup.DELETE("/players/:player_id/slot", controller.UnassignPlayer)

		plannerGroup.GET("/views/list", controller.GetListView)
		plannerGroup.GET("/views/pitch", controller.GetPitchView)

		plannerGroup.GET("/export/list.pdf", controller.ExportListPDF)
		plannerGroup.GET("/export/pitch.pdf", controller.ExportPitchPDF)
	}
}
