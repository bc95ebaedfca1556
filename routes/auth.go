package routes

import (
	"careerhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the public authentication endpoints.
func SetupAuthRoutes(router *gin.Engine, auth *controllers.AuthController) {
	router.POST("/signup", auth.SignUp)
	router.POST("/verifyEmail", auth.VerifyEmail)
	router.POST("/login", auth.Login)
	router.POST("/forgotPassword", auth.ForgotPassword)
	router.POST("/confirmForgotPassword", auth.VerifyForgotPassword)
	router.POST("/verifyToken", auth.VerifyToken)
}
