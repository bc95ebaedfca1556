package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"careerhub/models"

	"github.com/ledongthuc/pdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResumeService owns resume storage, AI-assisted improvement and the
// ATS compatibility checker.
type ResumeService struct {
	resumes      *mongo.Collection
	users        *mongo.Collection
	ai           *AIClient
	gamification *GamificationService
}

func NewResumeService(database *mongo.Database, ai *AIClient, gamification *GamificationService) *ResumeService {
	return &ResumeService{
		resumes:      database.Collection("resumes"),
		users:        database.Collection("users"),
		ai:           ai,
		gamification: gamification,
	}
}

func (s *ResumeService) findUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveResume upserts the user's resume and awards the resume_created
// action.
func (s *ResumeService) SaveResume(ctx context.Context, email, content string) (*models.Resume, *models.GamificationUpdate, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	var resume models.Resume
	err = s.resumes.FindOneAndUpdate(
		ctx,
		bson.M{"userId": user.ID},
		bson.M{
			"$set":         bson.M{"content": content, "updatedAt": now},
			"$setOnInsert": bson.M{"userId": user.ID, "createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&resume)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save resume: %w", err)
	}

	update, err := s.gamification.ApplyAction(ctx, email, models.ActionResumeCreated)
	if err != nil {
		return nil, nil, err
	}

	return &resume, update, nil
}

// GetResume returns the stored resume, or nil when none exists yet.
func (s *ResumeService) GetResume(ctx context.Context, email string) (*models.Resume, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	var resume models.Resume
	err = s.resumes.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&resume)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// ImproveWithAI rewrites one resume section to be more impactful.
func (s *ResumeService) ImproveWithAI(ctx context.Context, email, current, sectionType string) (string, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return "", err
	}

	industry := user.Industry
	if industry == "" {
		industry = "technology"
	}

	prompt := fmt.Sprintf(`As an expert resume writer, improve the following %s description for a %s professional.
Make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`,
		sectionType, industry, current)

	improved, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to improve content: %w", err)
	}
	return improved, nil
}

// CheckATS extracts text from an uploaded resume PDF, scores it with
// the AI and persists the result. When the AI response cannot be parsed
// the stock report is returned with Fallback set, so callers can tell.
func (s *ResumeService) CheckATS(ctx context.Context, email string, pdfData []byte) (*models.ATSReport, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	resumeText, err := extractPDFText(pdfData)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Analyze the following resume for ATS (Applicant Tracking System) compatibility. Provide:
1. An ATS score out of 100 (as a number)
2. Detailed feedback on what to improve for better ATS performance

Resume content:
%s

Consider factors like:
- Keyword optimization
- Format and structure
- Length and readability
- Use of standard sections
- Contact information format
- Skills presentation

Return the response in JSON format with keys: "atsScore" (number) and "feedback" (string).`, resumeText)

	response, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	report := parseATSResponse(response)

	now := time.Now()
	_, err = s.resumes.UpdateOne(
		ctx,
		bson.M{"userId": user.ID},
		bson.M{
			"$set":         bson.M{"atsScore": report.Score, "feedback": report.Feedback, "updatedAt": now},
			"$setOnInsert": bson.M{"userId": user.ID, "content": resumeText, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// parseATSResponse decodes the AI's JSON report, substituting the stock
// report (tagged Fallback) when parsing fails.
func parseATSResponse(response string) *models.ATSReport {
	var parsed struct {
		AtsScore int    `json:"atsScore"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(cleanModelOutput(response)), &parsed); err != nil {
		log.Printf("Failed to parse ATS response: %v", err)
		return &models.ATSReport{
			Score:    70,
			Feedback: "Unable to parse AI response. Please review your resume manually.",
			Fallback: true,
		}
	}
	return &models.ATSReport{Score: parsed.AtsScore, Feedback: parsed.Feedback}
}

// extractPDFText pulls plain text out of a PDF upload.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}

	extracted := strings.TrimSpace(textBuilder.String())
	if extracted == "" {
		return "", errors.New("could not extract text from file")
	}
	return extracted, nil
}
