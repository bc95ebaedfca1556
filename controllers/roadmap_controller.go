package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	svc *services.RoadmapService
}

func NewRoadmapController(svc *services.RoadmapService) *RoadmapController {
	return &RoadmapController{svc: svc}
}

type generateRoadmapRequest struct {
	CurrentSkills string `json:"currentSkills"`
	TargetRole    string `json:"targetRole" binding:"required"`
	TimeFrame     string `json:"timeFrame"`
}

// Generate builds a learning roadmap toward the target role.
func (rc *RoadmapController) Generate(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req generateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	roadmap, gamification, err := rc.svc.Generate(c.Request.Context(), email, req.CurrentSkills, req.TargetRole, req.TimeFrame)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmap": roadmap, "gamification": gamification})
}

// History lists the caller's previously generated roadmaps.
func (rc *RoadmapController) History(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roadmaps, err := rc.svc.History(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmaps": roadmaps})
}
