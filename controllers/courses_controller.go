package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type CoursesController struct {
	svc *services.CoursesService
}

func NewCoursesController(svc *services.CoursesService) *CoursesController {
	return &CoursesController{svc: svc}
}

// Search recommends courses for a topic. platform=coursera searches the
// Coursera catalog; the default searches YouTube.
func (cc *CoursesController) Search(c *gin.Context) {
	if _, ok := currentEmail(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	var err error
	var result interface{}
	if c.Query("platform") == "coursera" {
		result, err = cc.svc.SearchCoursera(c.Request.Context(), query)
	} else {
		result, err = cc.svc.SearchYouTube(c.Request.Context(), query)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
