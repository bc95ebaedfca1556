package controllers

import (
	"context"
	"net/http"
	"time"

	"careerhub/models"
	"careerhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileController struct {
	database *mongo.Database
}

func NewProfileController(database *mongo.Database) *ProfileController {
	return &ProfileController{database: database}
}

// GetProfile retrieves and returns user profile data with gamification
// summary.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := pc.database.Collection("users").FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Set avatar URL with DiceBear fallback
	avatarURL := user.AvatarURL
	if avatarURL == "" {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(email)
		}
		avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
	}

	badges := make([]gin.H, 0, len(user.Badges))
	for _, id := range user.Badges {
		badges = append(badges, gin.H{"id": id, "name": id.DisplayName()})
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"displayName": user.DisplayName,
			"email":       user.Email,
			"bio":         user.Bio,
			"industry":    user.Industry,
			"avatarUrl":   avatarURL,
		},
		"gamification": gin.H{
			"points": user.Points,
			"level":  user.Level,
			"streak": user.Streak,
			"badges": badges,
		},
	})
}

// UpdateProfile modifies user display name, bio and industry.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updateData struct {
		DisplayName string `json:"displayName"`
		Bio         string `json:"bio"`
		Industry    string `json:"industry"`
	}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{
		"displayName": updateData.DisplayName,
		"bio":         updateData.Bio,
		"industry":    updateData.Industry,
		"updatedAt":   time.Now(),
	}}
	if _, err := pc.database.Collection("users").UpdateOne(dbCtx, filter, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// Leaderboard returns the top users ranked by points.
func (pc *ProfileController) Leaderboard(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit := int64(50)

	dbCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cursor, err := pc.database.Collection("users").Find(
		dbCtx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "points", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}
	defer cursor.Close(dbCtx)

	var users []models.User
	if err := cursor.All(dbCtx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard data"})
		return
	}

	type entry struct {
		Rank        int    `json:"rank"`
		Name        string `json:"name"`
		Points      int    `json:"points"`
		Level       int    `json:"level"`
		Streak      int    `json:"streak"`
		AvatarURL   string `json:"avatarUrl"`
		CurrentUser bool   `json:"currentUser"`
	}

	entries := make([]entry, 0, len(users))
	for i, user := range users {
		name := user.DisplayName
		if name == "" {
			name = user.Email
		}

		avatarURL := user.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
		}

		entries = append(entries, entry{
			Rank:        i + 1,
			Name:        name,
			Points:      user.Points,
			Level:       user.Level,
			Streak:      user.Streak,
			AvatarURL:   avatarURL,
			CurrentUser: user.Email == email,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": entries,
		"total":       len(entries),
	})
}
