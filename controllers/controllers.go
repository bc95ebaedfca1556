package controllers

import (
	"errors"
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

// currentEmail pulls the authenticated email set by the auth middleware.
// The bool is false for anonymous requests.
func currentEmail(c *gin.Context) (string, bool) {
	email := c.GetString("email")
	return email, email != ""
}

// respondServiceError maps service errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
	case errors.Is(err, services.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service unavailable"})
	case errors.Is(err, services.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": "Update conflicted with another request, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
