package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupListingRoutes registers the job, internship and course search
// endpoints.
func SetupListingRoutes(router *gin.RouterGroup, jobs *controllers.JobsController, internships *controllers.InternshipsController, courses *controllers.CoursesController) {
	router.GET("/jobs/search", jobs.Search)
	router.GET("/internships", internships.List)
	router.GET("/courses/search", courses.Search)
}
