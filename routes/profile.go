package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupProfileRoutes(router *gin.RouterGroup, profile *controllers.ProfileController) {
	router.GET("/user/fetchprofile", profile.GetProfile)
	router.PUT("/user/updateprofile", profile.UpdateProfile)
	router.GET("/leaderboard", profile.Leaderboard)
}
