package services

import (
	"testing"
	"time"
)

func midnight(yearDay int) time.Time {
	return time.Date(2025, 3, yearDay, 0, 0, 0, 0, time.UTC)
}

func TestFirstVisitStartsStreak(t *testing.T) {
	out := resolveVisit(0, nil, nil, midnight(10))

	if out.Streak != 1 {
		t.Errorf("Expected streak 1 on first visit, got %d", out.Streak)
	}
	if !out.IsNewDay {
		t.Errorf("First visit should be a new day")
	}
	if !out.LastDate.Equal(midnight(10)) || !out.StartDate.Equal(midnight(10)) {
		t.Errorf("First visit should anchor both dates to today: %v / %v", out.LastDate, out.StartDate)
	}
}

func TestSameDayVisitIsNoOp(t *testing.T) {
	last := midnight(10)
	start := midnight(8)

	out := resolveVisit(3, &last, &start, midnight(10))

	if out.IsNewDay {
		t.Errorf("Same-day visit reported as new day")
	}
	if out.Streak != 3 {
		t.Errorf("Same-day visit changed streak: %d", out.Streak)
	}
	if !out.LastDate.Equal(last) || !out.StartDate.Equal(start) {
		t.Errorf("Same-day visit moved dates: %v / %v", out.LastDate, out.StartDate)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	last := midnight(10)
	start := midnight(8)

	out := resolveVisit(3, &last, &start, midnight(11))

	if out.Streak != 4 {
		t.Errorf("Expected streak 4 on consecutive day, got %d", out.Streak)
	}
	if !out.IsNewDay {
		t.Errorf("Consecutive-day visit should be a new day")
	}
	if !out.StartDate.Equal(start) {
		t.Errorf("Consecutive day moved the streak start: %v", out.StartDate)
	}
	if !out.LastDate.Equal(midnight(11)) {
		t.Errorf("Expected last date to advance, got %v", out.LastDate)
	}
}

func TestGapResetsStreak(t *testing.T) {
	last := midnight(10)
	start := midnight(5)

	out := resolveVisit(6, &last, &start, midnight(13))

	if out.Streak != 1 {
		t.Errorf("Expected streak reset to 1 after a gap, got %d", out.Streak)
	}
	if !out.IsNewDay {
		t.Errorf("Visit after a gap should be a new day")
	}
	if !out.StartDate.Equal(midnight(13)) {
		t.Errorf("Reset should restart the streak range today, got %v", out.StartDate)
	}
}

func TestVisitIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC)

	out := resolveVisit(2, &last, &last, midnight(11))

	if out.Streak != 3 {
		t.Errorf("Expected late-night visit to count as previous day, streak %d", out.Streak)
	}
}

func TestCalendarCoversInclusiveRange(t *testing.T) {
	start := midnight(1)
	end := midnight(5)

	calendar := buildCalendar(&start, &end)

	if len(calendar) != 5 {
		t.Fatalf("Expected 5 calendar days, got %d", len(calendar))
	}
	for i, d := range calendar {
		if !d.Date.Equal(midnight(i + 1)) {
			t.Errorf("Day %d has date %v, want %v", i, d.Date, midnight(i+1))
		}
		if !d.Active {
			t.Errorf("Day %d not marked active", i)
		}
		if !d.Inferred {
			t.Errorf("Day %d not tagged inferred", i)
		}
	}
}

func TestCalendarSingleDay(t *testing.T) {
	start := midnight(7)

	calendar := buildCalendar(&start, nil)

	if len(calendar) != 1 {
		t.Fatalf("Expected 1 calendar day without an end date, got %d", len(calendar))
	}
	if !calendar[0].Date.Equal(midnight(7)) {
		t.Errorf("Unexpected calendar date %v", calendar[0].Date)
	}
}

func TestCalendarEmptyWithoutStreak(t *testing.T) {
	calendar := buildCalendar(nil, nil)

	if calendar == nil {
		t.Fatalf("Expected empty slice, got nil")
	}
	if len(calendar) != 0 {
		t.Errorf("Expected empty calendar, got %d days", len(calendar))
	}
}
