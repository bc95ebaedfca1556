package utils

import (
	"context"
	"time"

	"careerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUser upserts the user record for an authenticated email so that
// gamification state exists (with zero points/streak) before the first
// qualifying action.
func EnsureUser(ctx context.Context, database *mongo.Database, email string) error {
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":               email,
			"displayName":         ExtractNameFromEmail(email),
			"points":              0,
			"level":               1,
			"badges":              []models.BadgeID{},
			"streak":              0,
			"quizCount":           0,
			"roadmapCount":        0,
			"gamificationVersion": int64(0),
			"createdAt":           now,
		},
		"$set": bson.M{"updatedAt": now},
	}
	_, err := database.Collection("users").UpdateOne(
		ctx,
		bson.M{"email": email},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}
