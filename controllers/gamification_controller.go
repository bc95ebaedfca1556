package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

// GamificationController exposes the read-only gamification state.
// Mutations go through the action services (resume, roadmap, quiz,
// cover letter), which call ApplyAction exactly once per completion.
type GamificationController struct {
	svc *services.GamificationService
}

func NewGamificationController(svc *services.GamificationService) *GamificationController {
	return &GamificationController{svc: svc}
}

// GetState returns the caller's points, level, badges and streak.
func (gc *GamificationController) GetState(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	state, err := gc.svc.GetState(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Decorate badge IDs with their display names for rendering.
	badges := make([]gin.H, 0, len(state.Badges))
	for _, id := range state.Badges {
		badges = append(badges, gin.H{"id": id, "name": id.DisplayName()})
	}

	c.JSON(http.StatusOK, gin.H{
		"points":       state.Points,
		"level":        state.Level,
		"badges":       badges,
		"streak":       state.Streak,
		"lastActivity": state.LastActivity,
	})
}
