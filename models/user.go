package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity. Gamification state lives directly on the
// user record: points, derived level, earned badge IDs and both streak
// trackers (action streak via lastActivity, daily-visit streak via
// lastStreakDate/streakStartDate).
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Bio         string             `bson:"bio" json:"bio"`
	Industry    string             `bson:"industry,omitempty" json:"industry,omitempty"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	Points int       `bson:"points" json:"points"`
	Level  int       `bson:"level" json:"level"`
	Badges []BadgeID `bson:"badges" json:"badges"`
	Streak int       `bson:"streak" json:"streak"`

	QuizCount    int `bson:"quizCount" json:"quizCount"`
	RoadmapCount int `bson:"roadmapCount" json:"roadmapCount"`

	LastActivity    *time.Time `bson:"lastActivity,omitempty" json:"lastActivity,omitempty"`
	LastStreakDate  *time.Time `bson:"lastStreakDate,omitempty" json:"lastStreakDate,omitempty"`
	StreakStartDate *time.Time `bson:"streakStartDate,omitempty" json:"streakStartDate,omitempty"`

	// Optimistic concurrency token for the gamification read-modify-write.
	GamificationVersion int64 `bson:"gamificationVersion" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
