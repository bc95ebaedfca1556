package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoadmapRoutes(router *gin.RouterGroup, roadmap *controllers.RoadmapController) {
	group := router.Group("/roadmap")
	{
		group.POST("/generate", roadmap.Generate)
		group.GET("/history", roadmap.History)
	}
}
