package controllers

import (
	"io"
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

// maxResumeUploadSize caps ATS checker uploads at 5 MB.
const maxResumeUploadSize = 5 << 20

type ResumeController struct {
	svc *services.ResumeService
}

func NewResumeController(svc *services.ResumeService) *ResumeController {
	return &ResumeController{svc: svc}
}

type saveResumeRequest struct {
	Content string `json:"content" binding:"required"`
}

// Save upserts the caller's resume and reports the gamification delta.
func (rc *ResumeController) Save(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req saveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	resume, gamification, err := rc.svc.SaveResume(c.Request.Context(), email, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume, "gamification": gamification})
}

// Get returns the stored resume, or null when none exists yet.
func (rc *ResumeController) Get(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resume, err := rc.svc.GetResume(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume})
}

type improveRequest struct {
	Current string `json:"current" binding:"required"`
	Type    string `json:"type" binding:"required"` // "experience", "summary", ...
}

// Improve rewrites a resume section with the AI.
func (rc *ResumeController) Improve(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	improved, err := rc.svc.ImproveWithAI(c.Request.Context(), email, req.Current, req.Type)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"improved": improved})
}

// CheckATS scores an uploaded resume PDF for ATS compatibility.
func (rc *ResumeController) CheckATS(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing resume file"})
		return
	}
	if fileHeader.Size > maxResumeUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}

	report, err := rc.svc.CheckATS(c.Request.Context(), email, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
