package fixtures

import (
	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
)

// RegisterFixturesRoutes wires the fixture search endpoint.
func RegisterFixturesRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	client := NewClient(Config{
		APIHost: appConfig.Fixtures.APIHost,
		APIKey:  appConfig.Fixtures.APIKey,
	})
	controller := NewFixturesController(client)

	fixturesGroup := router.Group("/fixtures")
	{
		fixturesGroup.GET("/search", controller.Search)
	}
}
