package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupResumeRoutes(router *gin.RouterGroup, resume *controllers.ResumeController) {
	group := router.Group("/resume")
	{
		group.GET("", resume.Get)
		group.POST("", resume.Save)
		group.POST("/improve", resume.Improve)
		group.POST("/ats-check", resume.CheckATS)
	}
}
