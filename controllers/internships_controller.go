package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type InternshipsController struct {
	svc *services.InternshipsService
}

func NewInternshipsController(svc *services.InternshipsService) *InternshipsController {
	return &InternshipsController{svc: svc}
}

// List aggregates internships. provider=adzuna searches the Adzuna API;
// the default scrapes the TechieHelp training page.
func (ic *InternshipsController) List(c *gin.Context) {
	if _, ok := currentEmail(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var result interface{}
	var err error
	if c.Query("provider") == "adzuna" {
		query := c.DefaultQuery("query", "software")
		result, err = ic.svc.SearchAdzuna(c.Request.Context(), query)
	} else {
		result, err = ic.svc.FetchTechieHelp(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
