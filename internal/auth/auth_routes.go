package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/middleware"
)

// RegisterAuthRoutes wires the account endpoints.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret))
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
