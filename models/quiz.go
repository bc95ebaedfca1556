package models

import "time"

// QuizQuestion is one multiple-choice question of a generated quiz.
type QuizQuestion struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

// Quiz is a generated interview-practice quiz. Fallback marks the stock
// question set used when generation fails.
type Quiz struct {
	ID        string         `bson:"_id" json:"id"`
	Role      string         `bson:"role" json:"role"`
	Questions []QuizQuestion `bson:"questions" json:"questions"`
	Fallback  bool           `bson:"fallback,omitempty" json:"fallback,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// QuizAttempt records a submitted quiz with the user's answers and score.
type QuizAttempt struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	QuizID    string    `bson:"quizId" json:"quizId"`
	Role      string    `bson:"role" json:"role"`
	Answers   []string  `bson:"answers" json:"answers"`
	Score     int       `bson:"score" json:"score"`
	Total     int       `bson:"total" json:"total"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
