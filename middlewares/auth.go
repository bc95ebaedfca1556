package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"careerhub/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and sets the user email in
// context. Handlers read it with ctx.GetString("email").
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}
		token := parts[1]

		valid, email, err := utils.ValidateTokenAndFetchEmail(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Token validation error: %v", err)})
			c.Abort()
			return
		}
		if !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Next()
	}
}

// OptionalAuth resolves the email when a valid token is present but lets
// anonymous requests through. Read-only views degrade to defaults for
// anonymous callers instead of failing.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if valid, email, err := utils.ValidateTokenAndFetchEmail(parts[1]); err == nil && valid {
					c.Set("email", email)
				}
			}
		}
		c.Next()
	}
}
