package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupStreakRoutes(visit *gin.RouterGroup, read *gin.RouterGroup, streak *controllers.StreakController) {
	visit.POST("/streak/visit", streak.RecordVisit)
	read.GET("/streak", streak.GetStreak)
	read.GET("/streak/calendar", streak.GetCalendar)
}
