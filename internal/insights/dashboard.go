package insights

import (
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// Dashboard joins the three analytics branches with the composite score.
type Dashboard struct {
	AuraScore  int               `json:"aura_score"`
	Focus      FocusInsights     `json:"focus"`
	Journal    MoodInsights      `json:"journal"`
	Challenges ChallengeInsights `json:"challenges"`
}

// ComputeDashboard runs all three analytics branches over an immutable
// snapshot of one user's records and blends them into the aura score. The
// branches have no data dependency on each other; only the score joins them.
func ComputeDashboard(sessions []models.FocusSession, entries []models.JournalEntry,
	records []models.ChallengeProgress, now time.Time) Dashboard {
	focus := ComputeFocusInsights(sessions, now)
	journal := ComputeMoodInsights(entries)
	challenges := ComputeChallengeInsights(records)

	return Dashboard{
		AuraScore: ComputeAuraScore(
			float64(focus.TotalMinutes)/60,
			meanSentiment(entries),
			challenges.CompletionRate,
		),
		Focus:      focus,
		Journal:    journal,
		Challenges: challenges,
	}
}
