package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/auth"
	"github.com/jhartwg/scoutbase/internal/calendar"
	"github.com/jhartwg/scoutbase/internal/fixtures"
	"github.com/jhartwg/scoutbase/internal/matchreport"
	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/internal/planner"
	"github.com/jhartwg/scoutbase/internal/playerreport"
	"github.com/jhartwg/scoutbase/internal/storage"
)

func SetupRoutes() *gin.Engine {
	appConfig := config.GetConfig()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>ScoutBase</title></head>
				<body style="text-align:center; margin-top: 40px;">
				<h1>ScoutBase ⚽</h1>
				<p>Scouting reports, shadow teams and fixtures.</p>
				<a href="/swagger/index.html">API documentation</a>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	docs := storage.NewDocumentRepository(config.DB)

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, config.DB, appConfig)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret))
	{
		planner.RegisterPlannerRoutes(protected, docs, appConfig)
		matchreport.RegisterMatchReportRoutes(protected, docs, appConfig)
		playerreport.RegisterPlayerReportRoutes(protected, docs, appConfig)
		calendar.RegisterCalendarRoutes(protected, docs)
		fixtures.RegisterFixturesRoutes(protected, appConfig)
	}

	return r
}
