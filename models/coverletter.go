package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoverLetter is a generated cover letter kept for later editing.
type CoverLetter struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	CompanyName    string             `bson:"companyName" json:"companyName"`
	JobTitle       string             `bson:"jobTitle" json:"jobTitle"`
	JobDescription string             `bson:"jobDescription" json:"jobDescription"`
	Content        string             `bson:"content" json:"content"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
