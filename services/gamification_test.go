package services

import (
	"testing"
	"time"

	"careerhub/models"
)

func day(yearDay int) time.Time {
	return time.Date(2025, 1, yearDay, 10, 30, 0, 0, time.UTC)
}

func containsBadge(badges []models.BadgeID, id models.BadgeID) bool {
	for _, b := range badges {
		if b == id {
			return true
		}
	}
	return false
}

func TestFirstQuizAwardsPointsAndBadges(t *testing.T) {
	next, earned := advanceLedger(ledgerState{}, models.ActionQuizCompleted, day(1))

	if next.Points != 50 {
		t.Errorf("Expected 50 points after first quiz, got %d", next.Points)
	}
	if levelForPoints(next.Points) != 1 {
		t.Errorf("Expected level 1 at 50 points, got %d", levelForPoints(next.Points))
	}
	if next.Streak != 1 {
		t.Errorf("Expected streak 1 on first activity, got %d", next.Streak)
	}
	if next.QuizCount != 1 {
		t.Errorf("Expected quiz count 1, got %d", next.QuizCount)
	}
	if !containsBadge(next.Badges, models.BadgeFirstQuiz) {
		t.Errorf("Expected first_quiz badge to be unlocked, badges: %v", next.Badges)
	}

	// One permanent unlock plus the transient acknowledgement.
	if len(earned) != 2 {
		t.Fatalf("Expected 2 earned badges, got %d: %v", len(earned), earned)
	}
	if earned[0].ID != models.BadgeFirstQuiz || earned[0].Name != "First Quiz Completed" {
		t.Errorf("Unexpected unlock badge: %+v", earned[0])
	}
	if earned[1].ID != "" || earned[1].Name != "Quiz Completed" {
		t.Errorf("Expected transient acknowledgement last, got %+v", earned[1])
	}
	if containsBadge(next.Badges, models.BadgeID("")) {
		t.Errorf("Transient acknowledgement must not be persisted")
	}
}

func TestPointsAccumulateAcrossActions(t *testing.T) {
	st := ledgerState{}
	for i := 0; i < 4; i++ {
		st, _ = advanceLedger(st, models.ActionQuizCompleted, day(1))
	}
	if st.Points != 200 {
		t.Errorf("Expected 200 points after 4 quizzes, got %d", st.Points)
	}
	if levelForPoints(st.Points) != 3 {
		t.Errorf("Expected level 3 at 200 points, got %d", levelForPoints(st.Points))
	}

	st, _ = advanceLedger(st, models.ActionResumeCreated, day(1))
	if st.Points != 240 {
		t.Errorf("Expected 240 points after resume save, got %d", st.Points)
	}
	st, _ = advanceLedger(st, models.ActionRoadmapGenerated, day(1))
	if st.Points != 270 {
		t.Errorf("Expected 270 points after roadmap, got %d", st.Points)
	}
	st, _ = advanceLedger(st, models.ActionCoverLetterCreated, day(1))
	if st.Points != 290 {
		t.Errorf("Expected 290 points after cover letter, got %d", st.Points)
	}
}

func TestLevelFormula(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{400, 5},
		{510, 6},
	}
	for _, c := range cases {
		if got := levelForPoints(c.points); got != c.level {
			t.Errorf("levelForPoints(%d) = %d, want %d", c.points, got, c.level)
		}
	}
}

func TestLevelFiveBadgeUnlocksOnce(t *testing.T) {
	last := day(1)
	st := ledgerState{Points: 460, LastActivity: &last}

	next, earned := advanceLedger(st, models.ActionQuizCompleted, day(1))
	if next.Points != 510 {
		t.Errorf("Expected 510 points, got %d", next.Points)
	}
	if levelForPoints(next.Points) != 6 {
		t.Errorf("Expected level 6, got %d", levelForPoints(next.Points))
	}
	if !containsBadge(next.Badges, models.BadgeLevel5) {
		t.Errorf("Expected level_5 badge at level 6")
	}

	found := false
	for _, b := range earned {
		if b.ID == models.BadgeLevel5 {
			found = true
		}
	}
	if !found {
		t.Errorf("level_5 unlock missing from earned badges: %v", earned)
	}

	// A later action must not unlock it again.
	again, earned2 := advanceLedger(next, models.ActionQuizCompleted, day(1))
	for _, b := range earned2 {
		if b.ID == models.BadgeLevel5 {
			t.Errorf("level_5 badge unlocked twice")
		}
	}
	count := 0
	for _, b := range again.Badges {
		if b == models.BadgeLevel5 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected level_5 badge exactly once, got %d", count)
	}
}

func TestActivityStreakRules(t *testing.T) {
	// First activity starts the streak.
	st, _ := advanceLedger(ledgerState{}, models.ActionQuizCompleted, day(1))
	if st.Streak != 1 {
		t.Fatalf("Expected streak 1, got %d", st.Streak)
	}

	// Same day leaves it unchanged.
	st, _ = advanceLedger(st, models.ActionResumeCreated, day(1))
	if st.Streak != 1 {
		t.Errorf("Same-day action changed streak: %d", st.Streak)
	}

	// Next day increments.
	st, _ = advanceLedger(st, models.ActionQuizCompleted, day(2))
	if st.Streak != 2 {
		t.Errorf("Expected streak 2 on consecutive day, got %d", st.Streak)
	}

	// A gap longer than one day resets to 1.
	st, _ = advanceLedger(st, models.ActionQuizCompleted, day(5))
	if st.Streak != 1 {
		t.Errorf("Expected streak reset to 1 after gap, got %d", st.Streak)
	}
}

func TestWeekStreakBadge(t *testing.T) {
	last := day(6)
	st := ledgerState{Streak: 6, LastActivity: &last}

	next, earned := advanceLedger(st, models.ActionQuizCompleted, day(7))
	if next.Streak != 7 {
		t.Fatalf("Expected streak 7, got %d", next.Streak)
	}
	if !containsBadge(next.Badges, models.BadgeStreak7) {
		t.Errorf("Expected streak_7 badge at a 7-day streak")
	}

	unlocks := 0
	for _, b := range earned {
		if b.ID == models.BadgeStreak7 {
			unlocks++
		}
	}
	if unlocks != 1 {
		t.Errorf("Expected exactly one streak_7 unlock, got %d", unlocks)
	}

	// Day 8 keeps the badge without re-unlocking.
	_, earned2 := advanceLedger(next, models.ActionQuizCompleted, day(8))
	for _, b := range earned2 {
		if b.ID == models.BadgeStreak7 {
			t.Errorf("streak_7 badge unlocked twice")
		}
	}
}

func TestCountBadges(t *testing.T) {
	st := ledgerState{}
	for i := 0; i < 4; i++ {
		st, _ = advanceLedger(st, models.ActionQuizCompleted, day(1))
		if containsBadge(st.Badges, models.BadgeQuizMaster) {
			t.Fatalf("quiz_master unlocked too early at %d quizzes", st.QuizCount)
		}
	}
	st, earned := advanceLedger(st, models.ActionQuizCompleted, day(1))
	if !containsBadge(st.Badges, models.BadgeQuizMaster) {
		t.Errorf("Expected quiz_master badge after 5 quizzes")
	}
	found := false
	for _, b := range earned {
		if b.ID == models.BadgeQuizMaster {
			found = true
		}
	}
	if !found {
		t.Errorf("quiz_master unlock missing from earned badges")
	}

	rm := ledgerState{}
	for i := 0; i < 2; i++ {
		rm, _ = advanceLedger(rm, models.ActionRoadmapGenerated, day(1))
		if containsBadge(rm.Badges, models.BadgeRoadmapExplorer) {
			t.Fatalf("roadmap_explorer unlocked too early at %d roadmaps", rm.RoadmapCount)
		}
	}
	rm, _ = advanceLedger(rm, models.ActionRoadmapGenerated, day(1))
	if !containsBadge(rm.Badges, models.BadgeRoadmapExplorer) {
		t.Errorf("Expected roadmap_explorer badge after 3 roadmaps")
	}
}

func TestUnknownActionAwardsNothing(t *testing.T) {
	next, earned := advanceLedger(ledgerState{}, models.ActionType("profile_viewed"), day(1))
	if next.Points != 0 {
		t.Errorf("Unknown action awarded %d points", next.Points)
	}
	if len(next.Badges) != 0 {
		t.Errorf("Unknown action unlocked badges: %v", next.Badges)
	}
	if len(earned) != 0 {
		t.Errorf("Unknown action earned badges: %v", earned)
	}
	// The streak still counts the activity.
	if next.Streak != 1 {
		t.Errorf("Expected streak 1, got %d", next.Streak)
	}
}

func TestBadgeSetIsMonotonic(t *testing.T) {
	st := ledgerState{}
	var previous []models.BadgeID
	actions := []models.ActionType{
		models.ActionQuizCompleted,
		models.ActionRoadmapGenerated,
		models.ActionResumeCreated,
		models.ActionCoverLetterCreated,
		models.ActionQuizCompleted,
	}
	for i, action := range actions {
		st, _ = advanceLedger(st, action, day(i+1))
		for _, b := range previous {
			if !containsBadge(st.Badges, b) {
				t.Errorf("Badge %s disappeared after %s", b, action)
			}
		}
		previous = st.Badges
	}
}
