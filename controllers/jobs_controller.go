package controllers

import (
	"net/http"
	"strconv"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type JobsController struct {
	svc *services.JobsService
}

func NewJobsController(svc *services.JobsService) *JobsController {
	return &JobsController{svc: svc}
}

// Search queries job listings. The response carries a source field so
// clients can tell live results from fallback data.
func (jc *JobsController) Search(c *gin.Context) {
	if _, ok := currentEmail(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := c.DefaultQuery("query", "software developer")
	location := c.DefaultQuery("location", "")
	page := 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}

	result, err := jc.svc.Search(c.Request.Context(), query, location, page)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
