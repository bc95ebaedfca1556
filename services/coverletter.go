package services

import (
	"context"
	"fmt"
	"time"

	"careerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CoverLetterService tailors cover letters to a job description.
type CoverLetterService struct {
	coverLetters *mongo.Collection
	users        *mongo.Collection
	ai           *AIClient
	gamification *GamificationService
}

func NewCoverLetterService(database *mongo.Database, ai *AIClient, gamification *GamificationService) *CoverLetterService {
	return &CoverLetterService{
		coverLetters: database.Collection("cover_letters"),
		users:        database.Collection("users"),
		ai:           ai,
		gamification: gamification,
	}
}

// Generate writes a cover letter for the given role, persists it and
// awards the cover_letter_created action.
func (s *CoverLetterService) Generate(ctx context.Context, email, companyName, jobTitle, jobDescription string) (*models.CoverLetter, *models.GamificationUpdate, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	name := user.DisplayName
	if name == "" {
		name = email
	}

	prompt := fmt.Sprintf(`Write a professional cover letter for %s applying for the %s position at %s.

Job description:
%s

Requirements:
1. Professional, enthusiastic tone
2. Three to four paragraphs
3. Connect the candidate's background to the role's requirements
4. No placeholders - write a complete, ready-to-send letter

Return only the letter text, no additional commentary.`,
		name, jobTitle, companyName, jobDescription)

	content, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate cover letter: %w", err)
	}

	letter := models.CoverLetter{
		UserID:         user.ID,
		CompanyName:    companyName,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if _, err := s.coverLetters.InsertOne(ctx, letter); err != nil {
		return nil, nil, err
	}

	update, err := s.gamification.ApplyAction(ctx, email, models.ActionCoverLetterCreated)
	if err != nil {
		return nil, nil, err
	}

	return &letter, update, nil
}

// History returns the user's generated cover letters, newest first.
func (s *CoverLetterService) History(ctx context.Context, email string) ([]models.CoverLetter, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return []models.CoverLetter{}, nil
	}
	if err != nil {
		return nil, err
	}

	cursor, err := s.coverLetters.Find(
		ctx,
		bson.M{"userId": user.ID},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(20),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var letters []models.CoverLetter
	if err := cursor.All(ctx, &letters); err != nil {
		return nil, err
	}
	return letters, nil
}
