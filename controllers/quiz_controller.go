package controllers

import (
	"net/http"

	"careerhub/services"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	svc *services.QuizService
}

func NewQuizController(svc *services.QuizService) *QuizController {
	return &QuizController{svc: svc}
}

type generateQuizRequest struct {
	Role string `json:"role" binding:"required"`
}

// Generate creates an interview-practice quiz for a role.
func (qc *QuizController) Generate(c *gin.Context) {
	if _, ok := currentEmail(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	quiz, err := qc.svc.Generate(c.Request.Context(), req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

type submitQuizRequest struct {
	QuizID  string   `json:"quizId" binding:"required"`
	Answers []string `json:"answers" binding:"required"`
}

// Submit grades a quiz attempt and reports the gamification delta.
func (qc *QuizController) Submit(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	attempt, gamification, err := qc.svc.Submit(c.Request.Context(), email, req.QuizID, req.Answers)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempt": attempt, "gamification": gamification})
}
