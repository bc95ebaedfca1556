package models

import "time"

// ActionType enumerates the user actions that earn points.
type ActionType string

const (
	ActionQuizCompleted      ActionType = "quiz_completed"
	ActionRoadmapGenerated   ActionType = "roadmap_generated"
	ActionResumeCreated      ActionType = "resume_created"
	ActionCoverLetterCreated ActionType = "cover_letter_created"
)

// actionPoints is the fixed point table. Unknown actions award 0 points
// rather than failing.
var actionPoints = map[ActionType]int{
	ActionQuizCompleted:      50,
	ActionRoadmapGenerated:   30,
	ActionResumeCreated:      40,
	ActionCoverLetterCreated: 20,
}

// PointsFor returns the points awarded for an action, 0 for unknown ones.
func PointsFor(action ActionType) int {
	return actionPoints[action]
}

// BadgeID is the stable identifier a badge is persisted under. Display
// copy can change without touching stored data.
type BadgeID string

const (
	BadgeFirstQuiz        BadgeID = "first_quiz"
	BadgeFirstRoadmap     BadgeID = "first_roadmap"
	BadgeFirstResume      BadgeID = "first_resume"
	BadgeFirstCoverLetter BadgeID = "first_cover_letter"
	BadgeQuizMaster       BadgeID = "quiz_master"
	BadgeRoadmapExplorer  BadgeID = "roadmap_explorer"
	BadgeStreak7          BadgeID = "streak_7"
	BadgeLevel5           BadgeID = "level_5"
)

var badgeNames = map[BadgeID]string{
	BadgeFirstQuiz:        "First Quiz Completed",
	BadgeFirstRoadmap:     "First Roadmap Generated",
	BadgeFirstResume:      "Resume Builder",
	BadgeFirstCoverLetter: "Cover Letter Creator",
	BadgeQuizMaster:       "Quiz Master (5 quizzes)",
	BadgeRoadmapExplorer:  "Roadmap Explorer (3 roadmaps)",
	BadgeStreak7:          "Week Warrior (7 day streak)",
	BadgeLevel5:           "Level 5 Achiever",
}

// DisplayName returns the human-readable badge name.
func (b BadgeID) DisplayName() string {
	if name, ok := badgeNames[b]; ok {
		return name
	}
	return string(b)
}

// EarnedBadge is a badge reported back to the caller of an update.
// Permanent unlocks carry their BadgeID; transient per-action
// acknowledgements have an empty ID and are never persisted.
type EarnedBadge struct {
	ID          BadgeID `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// GamificationUpdate is the delta returned by ApplyAction: the persisted
// state after the update plus the badges earned by this call.
type GamificationUpdate struct {
	Points       int           `json:"points"`
	Level        int           `json:"level"`
	Badges       []BadgeID     `json:"badges"`
	Streak       int           `json:"streak"`
	EarnedBadges []EarnedBadge `json:"earnedBadges"`
}

// GamificationState is the read-only view of a user's ledger.
type GamificationState struct {
	Points       int        `json:"points"`
	Level        int        `json:"level"`
	Badges       []BadgeID  `json:"badges"`
	Streak       int        `json:"streak"`
	LastActivity *time.Time `json:"lastActivity"`
}

// GamificationEvent is broadcast over the websocket hub after an update.
type GamificationEvent struct {
	Type      string    `json:"type"` // "points_awarded", "badge_unlocked"
	Email     string    `json:"email"`
	BadgeID   BadgeID   `json:"badgeId,omitempty"`
	BadgeName string    `json:"badgeName,omitempty"`
	Points    int       `json:"points,omitempty"`
	NewPoints int       `json:"newPoints,omitempty"`
	Action    string    `json:"action,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitResult is returned by the daily-visit streak tracker.
type VisitResult struct {
	Streak   int  `json:"streak"`
	IsNewDay bool `json:"isNewDay"`
}

// StreakInfo is the read-only view of the visit streak.
type StreakInfo struct {
	Streak          int        `json:"streak"`
	LastStreakDate  *time.Time `json:"lastStreakDate"`
	StreakStartDate *time.Time `json:"streakStartDate"`
}

// CalendarDay marks one day of the streak calendar. Days are inferred
// from the [streakStartDate, lastStreakDate] range, not from a log of
// real visits, and are tagged as such.
type CalendarDay struct {
	Date     time.Time `json:"date"`
	Active   bool      `json:"active"`
	Inferred bool      `json:"inferred"`
}
