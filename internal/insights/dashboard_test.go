package insights

import (
	"testing"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

func TestComputeDashboardJoinsBranches(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := nSessions(2, 90) // 3 hours
	entries := entriesWithScores(1, 1)
	records := []models.ChallengeProgress{
		{Completed: true},
		{Completed: true},
	}

	got := ComputeDashboard(sessions, entries, records, now)

	if got.Focus.TotalMinutes != 180 {
		t.Errorf("Focus.TotalMinutes = %d, want 180", got.Focus.TotalMinutes)
	}
	if got.Journal.RecentMood != MoodPositive {
		t.Errorf("Journal.RecentMood = %q, want %q", got.Journal.RecentMood, MoodPositive)
	}
	if got.Challenges.CompletionRate != 100 {
		t.Errorf("Challenges.CompletionRate = %d, want 100", got.Challenges.CompletionRate)
	}

	// 3h/50h*40 = 2.4, mood 35, challenges 25 -> round(62.4) = 62
	if got.AuraScore != 62 {
		t.Errorf("AuraScore = %d, want 62", got.AuraScore)
	}
}

func TestComputeDashboardEmptySnapshot(t *testing.T) {
	got := ComputeDashboard(nil, nil, nil, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	if got.Focus.TotalHours != "0.0" {
		t.Errorf("Focus.TotalHours = %q, want \"0.0\"", got.Focus.TotalHours)
	}
	if got.AuraScore != 18 {
		t.Errorf("AuraScore = %d, want 18 for an empty snapshot", got.AuraScore)
	}
}
