package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupGamificationRoutes(router *gin.RouterGroup, gamification *controllers.GamificationController) {
	router.GET("/gamification", gamification.GetState)
}
