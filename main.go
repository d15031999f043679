package main

import (
	"log"

	"github.com/jhartwg/scoutbase/config"
	_ "github.com/jhartwg/scoutbase/docs"
	"github.com/jhartwg/scoutbase/internal/auth"
	"github.com/jhartwg/scoutbase/internal/storage"
	"github.com/jhartwg/scoutbase/routes"
)

// @title ScoutBase REST API
// @version 1.0
// @description Backend for football scouting: shadow teams, match and player reports, calendar and fixtures search.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.User{},
		&storage.Document{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
