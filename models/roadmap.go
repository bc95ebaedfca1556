package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoadmapStep is one milestone of a generated learning roadmap.
type RoadmapStep struct {
	Title         string   `bson:"title" json:"title"`
	Description   string   `bson:"description" json:"description"`
	Duration      string   `bson:"duration" json:"duration"`
	Prerequisites []string `bson:"prerequisites" json:"prerequisites"`
	Resources     []string `bson:"resources" json:"resources"`
	VideoLink     string   `bson:"videoLink,omitempty" json:"videoLink,omitempty"`
}

// SelfGrowthTips closes out a roadmap with completion and motivation advice.
type SelfGrowthTips struct {
	HowToComplete  string `bson:"howToComplete" json:"howToComplete"`
	MotivationTips string `bson:"motivationTips" json:"motivationTips"`
}

// Roadmap is a generated learning roadmap persisted per user.
type Roadmap struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	TargetRole     string             `bson:"targetRole" json:"targetRole"`
	Title          string             `bson:"title" json:"title"`
	Steps          []RoadmapStep      `bson:"steps" json:"steps"`
	SelfGrowthTips SelfGrowthTips     `bson:"selfGrowthTips" json:"selfGrowthTips"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
