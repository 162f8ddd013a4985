package insights

import (
	"testing"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

func TestComputeChallengeInsights(t *testing.T) {
	records := []models.ChallengeProgress{
		{ChallengeID: "c1", Progress: 10, GoalValue: 10, Completed: true},
		{ChallengeID: "c2", Progress: 3, GoalValue: 10},
		{ChallengeID: "c3", Progress: 0, GoalValue: 5},
		{ChallengeID: "c4", Progress: 1, GoalValue: 7},
	}

	got := ComputeChallengeInsights(records)

	if got.TotalChallenges != 4 {
		t.Errorf("TotalChallenges = %d, want 4", got.TotalChallenges)
	}
	if got.Completed != 1 {
		t.Errorf("Completed = %d, want 1", got.Completed)
	}
	if got.Active != 3 {
		t.Errorf("Active = %d, want 3", got.Active)
	}
	if got.CompletionRate != 25 {
		t.Errorf("CompletionRate = %d, want 25", got.CompletionRate)
	}
}

func TestComputeChallengeInsightsEmpty(t *testing.T) {
	got := ComputeChallengeInsights(nil)
	if got.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0", got.CompletionRate)
	}
	if got.TotalChallenges != 0 || got.Completed != 0 || got.Active != 0 {
		t.Errorf("empty insights = %+v, want all zeros", got)
	}
}

func TestCompletionRateRounds(t *testing.T) {
	records := []models.ChallengeProgress{
		{Completed: true},
		{Completed: true},
		{Completed: false},
	}
	// 2/3 = 66.67 rounds to 67.
	if got := ComputeChallengeInsights(records).CompletionRate; got != 67 {
		t.Errorf("CompletionRate = %d, want 67", got)
	}
}
