package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resume is the single saved resume per user.
type Resume struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	AtsScore  int                `bson:"atsScore,omitempty" json:"atsScore,omitempty"`
	Feedback  string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ATSReport is the result of an ATS compatibility check. Fallback is
// true when the AI response could not be parsed and the stock score was
// substituted, so callers can tell canned data from a real analysis.
type ATSReport struct {
	Score    int    `json:"atsScore"`
	Feedback string `json:"feedback"`
	Fallback bool   `json:"fallback,omitempty"`
}
