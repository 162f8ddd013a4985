package insights

import (
	"fmt"
	"strings"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// Sentence fragments for the weekly summary. Selection is deterministic:
// one mood sentence by average-sentiment band, one consistency sentence by
// session count.
const (
	summaryMoodPositive = "Your journal entries show a positive emotional trajectory, with consistent feelings of calm and focus. "
	summaryMoodNeutral  = "Your mood has been relatively balanced this week. "
	summaryMoodSupport  = "Your entries suggest some challenges this week. Consider reaching out for support. "

	summaryExcellent = "You're maintaining excellent consistency with your focus practice. Keep up the great work!"
	summaryMomentum  = "You're building good momentum. Try to maintain this consistency."
	summarySetGoals  = "Consider setting daily focus goals to build more consistent habits."
)

// ComputeWeeklySummary renders the templated natural-language summary for a
// week of completed sessions and journal entries.
func ComputeWeeklySummary(sessions []models.FocusSession, entries []models.JournalEntry) string {
	totalMinutes := 0
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes()
	}
	totalFocusHours := float64(totalMinutes) / 60
	avgMood := meanSentiment(entries)

	var b strings.Builder
	fmt.Fprintf(&b, "This week, you completed %.1f hours of focused work across %d sessions. ",
		totalFocusHours, len(sessions))

	switch {
	case avgMood > moodPositiveThreshold:
		b.WriteString(summaryMoodPositive)
	case avgMood > moodSupportThreshold:
		b.WriteString(summaryMoodNeutral)
	default:
		b.WriteString(summaryMoodSupport)
	}

	switch {
	case len(sessions) > excellentConsistencySessions:
		b.WriteString(summaryExcellent)
	case len(sessions) > momentumSessions:
		b.WriteString(summaryMomentum)
	default:
		b.WriteString(summarySetGoals)
	}

	return b.String()
}
