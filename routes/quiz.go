package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupQuizRoutes(router *gin.RouterGroup, quiz *controllers.QuizController) {
	group := router.Group("/quiz")
	{
		group.POST("/generate", quiz.Generate)
		group.POST("/submit", quiz.Submit)
	}
}
