package insights

import (
	"testing"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

func completedSession(start time.Time, minutes int) models.FocusSession {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return models.FocusSession{
		UserID:    "u1",
		Task:      "deep work",
		Category:  "General",
		StartTime: start,
		EndTime:   &end,
		Duration:  &minutes,
		Completed: true,
	}
}

func TestComputeFocusInsightsEmpty(t *testing.T) {
	got := ComputeFocusInsights(nil, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	if got.TotalHours != "0.0" {
		t.Errorf("TotalHours = %q, want \"0.0\"", got.TotalHours)
	}
	if got.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", got.TotalSessions)
	}
	if got.AverageSessionLength != 0 {
		t.Errorf("AverageSessionLength = %d, want 0", got.AverageSessionLength)
	}
	if len(got.Last7Days) != 7 {
		t.Fatalf("Last7Days length = %d, want 7", len(got.Last7Days))
	}
	for _, d := range got.Last7Days {
		if d.Hours != "0.0" {
			t.Errorf("day %s hours = %q, want \"0.0\"", d.Date, d.Hours)
		}
	}
}

func TestComputeFocusInsightsTotals(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []models.FocusSession{
		completedSession(now.Add(-2*time.Hour), 60),
		completedSession(now.Add(-26*time.Hour), 30),
		completedSession(now.Add(-50*time.Hour), 90),
	}

	got := ComputeFocusInsights(sessions, now)

	if got.TotalMinutes != 180 {
		t.Errorf("TotalMinutes = %d, want 180", got.TotalMinutes)
	}
	if got.TotalHours != "3.0" {
		t.Errorf("TotalHours = %q, want \"3.0\"", got.TotalHours)
	}
	if got.AverageSessionLength != 60 {
		t.Errorf("AverageSessionLength = %d, want 60", got.AverageSessionLength)
	}
}

func TestLast7DaysRollup(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []models.FocusSession{
		completedSession(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), 30),  // today
		completedSession(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC), 30), // today
		completedSession(time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC), 60),   // oldest bucket
		completedSession(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), 120),  // outside window
	}

	got := ComputeFocusInsights(sessions, now).Last7Days

	if got[0].Date != "2025-06-09" || got[0].Hours != "1.0" {
		t.Errorf("oldest bucket = %+v, want 2025-06-09 / 1.0", got[0])
	}
	if got[6].Date != "2025-06-15" || got[6].Hours != "1.0" {
		t.Errorf("newest bucket = %+v, want 2025-06-15 / 1.0", got[6])
	}
	for _, d := range got[1:6] {
		if d.Hours != "0.0" {
			t.Errorf("day %s hours = %q, want \"0.0\"", d.Date, d.Hours)
		}
	}
}

func TestProductivityPatternsPeaks(t *testing.T) {
	// June 9 2025 is a Monday.
	sessions := []models.FocusSession{
		completedSession(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), 60),
		completedSession(time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), 30),
		completedSession(time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC), 20),
	}

	got := ComputeProductivityPatterns(sessions)

	if got.PeakHour != 9 {
		t.Errorf("PeakHour = %d, want 9", got.PeakHour)
	}
	if got.PeakDay != 1 { // Monday
		t.Errorf("PeakDay = %d, want 1", got.PeakDay)
	}
	if got.HourlyDistribution[9] != 90 {
		t.Errorf("HourlyDistribution[9] = %d, want 90", got.HourlyDistribution[9])
	}
}

func TestProductivityPatternsTieKeepsFirst(t *testing.T) {
	// Equal minutes at 8:00 and 16:00; the lower hour must win.
	sessions := []models.FocusSession{
		completedSession(time.Date(2025, 6, 9, 16, 0, 0, 0, time.UTC), 45),
		completedSession(time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC), 45),
	}

	if got := ComputeProductivityPatterns(sessions).PeakHour; got != 8 {
		t.Errorf("PeakHour = %d, want 8 on tie", got)
	}
}

func TestProductivityPatternsEmpty(t *testing.T) {
	got := ComputeProductivityPatterns(nil)
	if got.PeakHour != 0 || got.PeakDay != 0 {
		t.Errorf("empty patterns = %+v, want zero peaks", got)
	}
	if len(got.HourlyDistribution) != 0 {
		t.Errorf("HourlyDistribution = %v, want empty", got.HourlyDistribution)
	}
}
