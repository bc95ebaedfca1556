package services

import (
	"context"
	"time"

	"careerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StreakService tracks daily-visit continuity, independent of which
// action the user performed. It is deliberately kept separate from the
// ledger's action streak; the two can diverge for the same user.
type StreakService struct {
	users *mongo.Collection
}

func NewStreakService(database *mongo.Database) *StreakService {
	return &StreakService{users: database.Collection("users")}
}

// visitOutcome is the result of applying the visit rules for one day.
type visitOutcome struct {
	Streak    int
	IsNewDay  bool
	LastDate  time.Time
	StartDate time.Time
}

// resolveVisit applies the daily-visit rules for a visit on `today`
// (already midnight-normalized). Pure so the same-day/consecutive/gap
// cases are testable without storage.
func resolveVisit(streak int, lastDate, startDate *time.Time, today time.Time) visitOutcome {
	if lastDate == nil {
		return visitOutcome{Streak: 1, IsNewDay: true, LastDate: today, StartDate: today}
	}

	start := today
	if startDate != nil {
		start = startOfDay(*startDate)
	}

	switch daysBetween(*lastDate, today) {
	case 0:
		return visitOutcome{Streak: streak, IsNewDay: false, LastDate: startOfDay(*lastDate), StartDate: start}
	case 1:
		return visitOutcome{Streak: streak + 1, IsNewDay: true, LastDate: today, StartDate: start}
	default:
		return visitOutcome{Streak: 1, IsNewDay: true, LastDate: today, StartDate: today}
	}
}

// RecordVisit records today's visit. Repeated calls within the same
// calendar day are idempotent and do not write to storage.
func (s *StreakService) RecordVisit(ctx context.Context, email string) (models.VisitResult, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var user models.User
		err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return models.VisitResult{}, ErrUserNotFound
		}
		if err != nil {
			return models.VisitResult{}, err
		}

		today := startOfDay(time.Now())
		out := resolveVisit(user.Streak, user.LastStreakDate, user.StreakStartDate, today)
		if !out.IsNewDay {
			return models.VisitResult{Streak: out.Streak, IsNewDay: false}, nil
		}

		now := time.Now()
		res, err := s.users.UpdateOne(
			ctx,
			bson.M{"email": email, "gamificationVersion": user.GamificationVersion},
			bson.M{
				"$set": bson.M{
					"streak":          out.Streak,
					"lastStreakDate":  out.LastDate,
					"streakStartDate": out.StartDate,
					"lastActivity":    now,
					"updatedAt":       now,
				},
				"$inc": bson.M{"gamificationVersion": 1},
			},
		)
		if err != nil {
			return models.VisitResult{}, err
		}
		if res.MatchedCount == 0 {
			continue
		}

		return models.VisitResult{Streak: out.Streak, IsNewDay: true}, nil
	}

	return models.VisitResult{}, ErrConcurrentUpdate
}

// GetStreak returns the current visit streak. Missing users degrade to
// the zero value; read-only views tolerate anonymous callers.
func (s *StreakService) GetStreak(ctx context.Context, email string) (models.StreakInfo, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.StreakInfo{}, nil
	}
	if err != nil {
		return models.StreakInfo{}, err
	}

	return models.StreakInfo{
		Streak:          user.Streak,
		LastStreakDate:  user.LastStreakDate,
		StreakStartDate: user.StreakStartDate,
	}, nil
}

// GetCalendar marks every day in [streakStartDate, lastStreakDate] as
// active. The days are inferred from the streak range rather than a log
// of real visits, and each entry says so.
func (s *StreakService) GetCalendar(ctx context.Context, email string) ([]models.CalendarDay, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return []models.CalendarDay{}, nil
	}
	if err != nil {
		return nil, err
	}

	return buildCalendar(user.StreakStartDate, user.LastStreakDate), nil
}

func buildCalendar(start, end *time.Time) []models.CalendarDay {
	if start == nil {
		return []models.CalendarDay{}
	}

	first := startOfDay(*start)
	last := first
	if end != nil {
		last = startOfDay(*end)
	}

	var calendar []models.CalendarDay
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		calendar = append(calendar, models.CalendarDay{Date: d, Active: true, Inferred: true})
	}
	return calendar
}
