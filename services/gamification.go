package services

import (
	"context"
	"errors"
	"time"

	"careerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrUserNotFound is returned by mutation paths when the identity
	// does not map to a stored user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrConcurrentUpdate is returned when the optimistic update loses
	// to concurrent writers on every attempt.
	ErrConcurrentUpdate = errors.New("concurrent gamification update, retries exhausted")
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop.
const maxUpdateAttempts = 3

// EventBroadcaster pushes gamification events to connected clients.
// The websocket hub implements it; a nil broadcaster disables pushes.
type EventBroadcaster interface {
	Broadcast(event models.GamificationEvent)
}

// GamificationService owns the points/level/badge ledger. Each
// qualifying action translates into exactly one points update, a level
// recomputation, a streak continuation and at-most-once badge unlocks.
type GamificationService struct {
	users *mongo.Collection
	hub   EventBroadcaster
}

func NewGamificationService(database *mongo.Database, hub EventBroadcaster) *GamificationService {
	return &GamificationService{
		users: database.Collection("users"),
		hub:   hub,
	}
}

// ledgerState is the slice of the user record the ledger reads and rewrites.
type ledgerState struct {
	Points       int
	Streak       int
	Badges       []models.BadgeID
	LastActivity *time.Time
	QuizCount    int
	RoadmapCount int
}

func ledgerStateFrom(user models.User) ledgerState {
	return ledgerState{
		Points:       user.Points,
		Streak:       user.Streak,
		Badges:       user.Badges,
		LastActivity: user.LastActivity,
		QuizCount:    user.QuizCount,
		RoadmapCount: user.RoadmapCount,
	}
}

func levelForPoints(points int) int {
	return points/100 + 1
}

// startOfDay truncates a timestamp to midnight UTC. All calendar-day
// comparisons in both streak trackers go through this.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the calendar-day difference between two
// timestamps, ignoring the time of day.
func daysBetween(earlier, later time.Time) int {
	return int(startOfDay(later).Sub(startOfDay(earlier)) / (24 * time.Hour))
}

func hasBadge(badges []models.BadgeID, id models.BadgeID) bool {
	for _, b := range badges {
		if b == id {
			return true
		}
	}
	return false
}

var badgeDescriptions = map[models.BadgeID]string{
	models.BadgeFirstQuiz:        "Completed your first technical quiz!",
	models.BadgeFirstRoadmap:     "Generated your first career roadmap!",
	models.BadgeFirstResume:      "Created your first professional resume!",
	models.BadgeFirstCoverLetter: "Generated your first cover letter!",
	models.BadgeQuizMaster:       "Completed 5 quizzes - true dedication!",
	models.BadgeRoadmapExplorer:  "Generated 3 career roadmaps!",
	models.BadgeLevel5:           "Reached Level 5 - Keep going!",
	models.BadgeStreak7:          "Maintained a 7-day streak - Amazing consistency!",
}

var firstActionBadges = map[models.ActionType]models.BadgeID{
	models.ActionQuizCompleted:      models.BadgeFirstQuiz,
	models.ActionRoadmapGenerated:   models.BadgeFirstRoadmap,
	models.ActionResumeCreated:      models.BadgeFirstResume,
	models.ActionCoverLetterCreated: models.BadgeFirstCoverLetter,
}

// acknowledgements are the transient congratulation badges returned for
// every action. They are never added to the persisted badge set.
var acknowledgements = map[models.ActionType]models.EarnedBadge{
	models.ActionQuizCompleted:      {Name: "Quiz Completed", Description: "Great job finishing the quiz! Keep learning."},
	models.ActionRoadmapGenerated:   {Name: "Roadmap Generated", Description: "Your career path is taking shape!"},
	models.ActionResumeCreated:      {Name: "Resume Saved", Description: "Your resume is ready to impress!"},
	models.ActionCoverLetterCreated: {Name: "Cover Letter Generated", Description: "Tailored cover letter created successfully!"},
}

// advanceLedger computes the next ledger state for one action performed
// at `now`, plus the badges newly earned by this update. It is pure so
// the edge cases are testable without storage.
func advanceLedger(st ledgerState, action models.ActionType, now time.Time) (ledgerState, []models.EarnedBadge) {
	next := st
	next.Points = st.Points + models.PointsFor(action)

	// Streak continuation keyed on the last qualifying activity.
	if st.LastActivity == nil {
		next.Streak = 1
	} else {
		switch diff := daysBetween(*st.LastActivity, now); {
		case diff == 1:
			next.Streak = st.Streak + 1
		case diff > 1:
			next.Streak = 1
		}
		// Same day: streak unchanged.
	}
	if next.Streak < 1 {
		next.Streak = 1
	}

	switch action {
	case models.ActionQuizCompleted:
		next.QuizCount = st.QuizCount + 1
	case models.ActionRoadmapGenerated:
		next.RoadmapCount = st.RoadmapCount + 1
	}

	activity := now
	next.LastActivity = &activity

	next.Badges = append([]models.BadgeID(nil), st.Badges...)
	var earned []models.EarnedBadge
	unlock := func(id models.BadgeID) {
		if hasBadge(next.Badges, id) {
			return
		}
		next.Badges = append(next.Badges, id)
		earned = append(earned, models.EarnedBadge{
			ID:          id,
			Name:        id.DisplayName(),
			Description: badgeDescriptions[id],
		})
	}

	if id, ok := firstActionBadges[action]; ok {
		unlock(id)
	}
	if next.QuizCount >= 5 {
		unlock(models.BadgeQuizMaster)
	}
	if next.RoadmapCount >= 3 {
		unlock(models.BadgeRoadmapExplorer)
	}
	if levelForPoints(next.Points) >= 5 {
		unlock(models.BadgeLevel5)
	}
	if next.Streak >= 7 {
		unlock(models.BadgeStreak7)
	}

	if ack, ok := acknowledgements[action]; ok {
		earned = append(earned, ack)
	}

	return next, earned
}

// ApplyAction awards points for a completed action, recomputes level and
// streak, unlocks any newly qualifying badges and persists the result.
// The read-modify-write is guarded by the user's gamificationVersion
// token; a lost race is retried with fresh state.
func (s *GamificationService) ApplyAction(ctx context.Context, email string, action models.ActionType) (*models.GamificationUpdate, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var user models.User
		err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}

		now := time.Now()
		next, earned := advanceLedger(ledgerStateFrom(user), action, now)
		newLevel := levelForPoints(next.Points)

		res, err := s.users.UpdateOne(
			ctx,
			bson.M{"email": email, "gamificationVersion": user.GamificationVersion},
			bson.M{
				"$set": bson.M{
					"points":       next.Points,
					"level":        newLevel,
					"badges":       next.Badges,
					"streak":       next.Streak,
					"quizCount":    next.QuizCount,
					"roadmapCount": next.RoadmapCount,
					"lastActivity": now,
					"updatedAt":    now,
				},
				"$inc": bson.M{"gamificationVersion": 1},
			},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			// A concurrent writer bumped the version; reread and retry.
			continue
		}

		update := &models.GamificationUpdate{
			Points:       next.Points,
			Level:        newLevel,
			Badges:       next.Badges,
			Streak:       next.Streak,
			EarnedBadges: earned,
		}
		s.publish(email, action, user.Points, update)
		return update, nil
	}

	return nil, ErrConcurrentUpdate
}

// GetState returns the current gamification state without mutating it.
func (s *GamificationService) GetState(ctx context.Context, email string) (*models.GamificationState, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.GamificationState{
		Points:       user.Points,
		Level:        user.Level,
		Badges:       user.Badges,
		Streak:       user.Streak,
		LastActivity: user.LastActivity,
	}, nil
}

func (s *GamificationService) publish(email string, action models.ActionType, previousPoints int, update *models.GamificationUpdate) {
	if s.hub == nil {
		return
	}

	now := time.Now()
	if earned := update.Points - previousPoints; earned > 0 {
		s.hub.Broadcast(models.GamificationEvent{
			Type:      "points_awarded",
			Email:     email,
			Points:    earned,
			NewPoints: update.Points,
			Action:    string(action),
			Timestamp: now,
		})
	}
	for _, badge := range update.EarnedBadges {
		if badge.ID == "" {
			continue // transient acknowledgement, not an unlock
		}
		s.hub.Broadcast(models.GamificationEvent{
			Type:      "badge_unlocked",
			Email:     email,
			BadgeID:   badge.ID,
			BadgeName: badge.Name,
			Timestamp: now,
		})
	}
}
