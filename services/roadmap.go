package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"careerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoadmapService generates learning roadmaps with real tutorial links
// and keeps a per-user history.
type RoadmapService struct {
	roadmaps     *mongo.Collection
	users        *mongo.Collection
	ai           *AIClient
	youtube      *YouTubeClient
	gamification *GamificationService
}

func NewRoadmapService(database *mongo.Database, ai *AIClient, yt *YouTubeClient, gamification *GamificationService) *RoadmapService {
	return &RoadmapService{
		roadmaps:     database.Collection("roadmaps"),
		users:        database.Collection("users"),
		ai:           ai,
		youtube:      yt,
		gamification: gamification,
	}
}

// Generate builds a step-by-step roadmap toward the target role,
// resolves a YouTube tutorial per step, persists it and awards the
// roadmap_generated action.
func (s *RoadmapService) Generate(ctx context.Context, email, currentSkills, targetRole, timeFrame string) (*models.Roadmap, *models.GamificationUpdate, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if currentSkills == "" {
		currentSkills = "beginner level"
	}
	if timeFrame == "" {
		timeFrame = "6 months"
	}

	prompt := fmt.Sprintf(`Generate a detailed learning roadmap for someone aiming to become a %s.
Current skills: %s.
Time frame: %s.

Create a step-by-step roadmap with milestones, resources, and estimated time for each step.
Also, include self-growth content at the end with tips on how to complete the roadmap and stay motivated.

Return only valid JSON in this format, no markdown, no additional text. Start with {:
{
  "roadmap": {
    "title": "Roadmap to %s",
    "steps": [
      {
        "title": "string",
        "description": "string",
        "duration": "string (e.g., 2 weeks)",
        "prerequisites": ["string"],
        "resources": ["string"]
      }
    ],
    "selfGrowthTips": {
      "howToComplete": "string - detailed tips on completing the roadmap",
      "motivationTips": "string - tips to stay motivated throughout the journey"
    }
  }
}`, targetRole, currentSkills, timeFrame, targetRole)

	response, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate roadmap: %w", err)
	}

	var parsed struct {
		Roadmap struct {
			Title          string                `json:"title"`
			Steps          []models.RoadmapStep  `json:"steps"`
			SelfGrowthTips models.SelfGrowthTips `json:"selfGrowthTips"`
		} `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(cleanModelOutput(response)), &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse roadmap: %w", err)
	}

	// Replace hallucination-prone links with real search results.
	for i := range parsed.Roadmap.Steps {
		link, err := s.youtube.FindTutorial(ctx, parsed.Roadmap.Steps[i].Title)
		if err != nil {
			log.Printf("YouTube lookup failed for %q: %v", parsed.Roadmap.Steps[i].Title, err)
			continue
		}
		parsed.Roadmap.Steps[i].VideoLink = link
	}

	roadmap := models.Roadmap{
		UserID:         user.ID,
		TargetRole:     targetRole,
		Title:          parsed.Roadmap.Title,
		Steps:          parsed.Roadmap.Steps,
		SelfGrowthTips: parsed.Roadmap.SelfGrowthTips,
		CreatedAt:      time.Now(),
	}
	if _, err := s.roadmaps.InsertOne(ctx, roadmap); err != nil {
		return nil, nil, err
	}

	update, err := s.gamification.ApplyAction(ctx, email, models.ActionRoadmapGenerated)
	if err != nil {
		return nil, nil, err
	}

	return &roadmap, update, nil
}

// History returns the user's generated roadmaps, newest first.
func (s *RoadmapService) History(ctx context.Context, email string) ([]models.Roadmap, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return []models.Roadmap{}, nil
	}
	if err != nil {
		return nil, err
	}

	cursor, err := s.roadmaps.Find(
		ctx,
		bson.M{"userId": user.ID},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(20),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roadmaps []models.Roadmap
	if err := cursor.All(ctx, &roadmaps); err != nil {
		return nil, err
	}
	return roadmaps, nil
}
