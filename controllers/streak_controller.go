package controllers

import (
	"net/http"

	"careerhub/models"
	"careerhub/services"

	"github.com/gin-gonic/gin"
)

// StreakController exposes the daily-visit streak tracker.
type StreakController struct {
	svc *services.StreakService
}

func NewStreakController(svc *services.StreakService) *StreakController {
	return &StreakController{svc: svc}
}

// RecordVisit records today's visit. Pages call this once per render
// and only show the streak popup when isNewDay is true.
func (sc *StreakController) RecordVisit(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := sc.svc.RecordVisit(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStreak returns the current streak. Anonymous callers get the zero
// value rather than an error.
func (sc *StreakController) GetStreak(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusOK, models.StreakInfo{})
		return
	}

	info, err := sc.svc.GetStreak(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetCalendar returns the streak's activity calendar. The days are
// inferred from the streak range; each entry is tagged accordingly.
func (sc *StreakController) GetCalendar(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"calendar": []models.CalendarDay{}})
		return
	}

	calendar, err := sc.svc.GetCalendar(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calendar": calendar})
}
