package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupCoverLetterRoutes(router *gin.RouterGroup, coverLetter *controllers.CoverLetterController) {
	group := router.Group("/cover-letter")
	{
		group.POST("/generate", coverLetter.Generate)
		group.GET("/history", coverLetter.History)
	}
}
