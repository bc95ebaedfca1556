package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"careerhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrQuizNotFound is returned when a submitted quiz ID does not exist.
var ErrQuizNotFound = errors.New("quiz not found")

// QuizService generates interview-practice quizzes and grades attempts.
type QuizService struct {
	quizzes      *mongo.Collection
	attempts     *mongo.Collection
	ai           *AIClient
	gamification *GamificationService
}

func NewQuizService(database *mongo.Database, ai *AIClient, gamification *GamificationService) *QuizService {
	return &QuizService{
		quizzes:      database.Collection("quizzes"),
		attempts:     database.Collection("quiz_attempts"),
		ai:           ai,
		gamification: gamification,
	}
}

// Generate builds a 10-question multiple-choice quiz for a role. When
// generation or parsing fails the stock question set is used instead,
// tagged Fallback so callers can tell.
func (s *QuizService) Generate(ctx context.Context, role string) (*models.Quiz, error) {
	prompt := fmt.Sprintf(`Generate 10 technical interview questions for a %s position.
Each question should be multiple choice with 4 options.

Return only valid JSON in this format, no markdown, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string - must be one of the options",
      "explanation": "string - brief explanation of the answer"
    }
  ]
}`, role)

	quiz := &models.Quiz{
		ID:        uuid.NewString(),
		Role:      role,
		CreatedAt: time.Now(),
	}

	response, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Quiz generation failed for %q: %v", role, err)
		quiz.Questions = fallbackQuestions(role)
		quiz.Fallback = true
	} else {
		var parsed struct {
			Questions []models.QuizQuestion `json:"questions"`
		}
		if err := json.Unmarshal([]byte(cleanModelOutput(response)), &parsed); err != nil || len(parsed.Questions) == 0 {
			log.Printf("Failed to parse quiz response: %v", err)
			quiz.Questions = fallbackQuestions(role)
			quiz.Fallback = true
		} else {
			quiz.Questions = parsed.Questions
		}
	}

	if _, err := s.quizzes.InsertOne(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Submit grades the answers against the stored quiz, records the
// attempt and awards the quiz_completed action exactly once.
func (s *QuizService) Submit(ctx context.Context, email, quizID string, answers []string) (*models.QuizAttempt, *models.GamificationUpdate, error) {
	var quiz models.Quiz
	err := s.quizzes.FindOne(ctx, bson.M{"_id": quizID}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	score := 0
	for i, question := range quiz.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			score++
		}
	}

	attempt := &models.QuizAttempt{
		ID:        uuid.NewString(),
		Email:     email,
		QuizID:    quizID,
		Role:      quiz.Role,
		Answers:   answers,
		Score:     score,
		Total:     len(quiz.Questions),
		CreatedAt: time.Now(),
	}
	if _, err := s.attempts.InsertOne(ctx, attempt); err != nil {
		return nil, nil, err
	}

	update, err := s.gamification.ApplyAction(ctx, email, models.ActionQuizCompleted)
	if err != nil {
		return nil, nil, err
	}

	return attempt, update, nil
}

// fallbackQuestions is the stock quiz served when generation fails.
func fallbackQuestions(role string) []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Question:      fmt.Sprintf("Which practice most improves maintainability of a %s codebase?", role),
			Options:       []string{"Code reviews", "Longer functions", "Fewer tests", "Manual deployments"},
			CorrectAnswer: "Code reviews",
			Explanation:   "Regular reviews catch defects early and spread knowledge across the team.",
		},
		{
			Question:      "What does a version control system primarily provide?",
			Options:       []string{"History of changes", "Faster runtime", "Smaller binaries", "Automatic bug fixes"},
			CorrectAnswer: "History of changes",
			Explanation:   "Version control records every change so work can be traced and reverted.",
		},
		{
			Question:      "Which HTTP status code indicates a client-side error?",
			Options:       []string{"404", "200", "301", "502"},
			CorrectAnswer: "404",
			Explanation:   "4xx codes are client errors; 404 means the resource was not found.",
		},
	}
}
