package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type CoverLetterController struct {
	svc *services.CoverLetterService
}

func NewCoverLetterController(svc *services.CoverLetterService) *CoverLetterController {
	return &CoverLetterController{svc: svc}
}

type generateCoverLetterRequest struct {
	CompanyName    string `json:"companyName" binding:"required"`
	JobTitle       string `json:"jobTitle" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

// Generate writes a tailored cover letter for a job posting.
func (cc *CoverLetterController) Generate(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req generateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	letter, gamification, err := cc.svc.Generate(c.Request.Context(), email, req.CompanyName, req.JobTitle, req.JobDescription)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coverLetter": letter, "gamification": gamification})
}

// History lists the caller's generated cover letters.
func (cc *CoverLetterController) History(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	letters, err := cc.svc.History(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coverLetters": letters})
}
