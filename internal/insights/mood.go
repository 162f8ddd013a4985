package insights

import (
	"fmt"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

const (
	MoodPositive     = "Positive"
	MoodNeutral      = "Neutral"
	MoodNeedsSupport = "Needs Support"
)

type MoodInsights struct {
	TotalEntries     int    `json:"total_entries"`
	AverageSentiment string `json:"average_sentiment"`
	RecentMood       string `json:"recent_mood"`
}

// MoodTrendPoint is one entry's trailing moving average, tagged with the
// entry's creation date.
type MoodTrendPoint struct {
	Date          string `json:"date"` // ISO date (YYYY-MM-DD)
	MovingAverage string `json:"moving_average"`
}

// ComputeMoodInsights summarizes a set of journal entries into an average
// sentiment and a coarse mood band.
func ComputeMoodInsights(entries []models.JournalEntry) MoodInsights {
	avg := meanSentiment(entries)
	return MoodInsights{
		TotalEntries:     len(entries),
		AverageSentiment: fmt.Sprintf("%.2f", avg),
		RecentMood:       moodBand(avg),
	}
}

func moodBand(avg float64) string {
	switch {
	case avg > moodPositiveThreshold:
		return MoodPositive
	case avg > moodSupportThreshold:
		return MoodNeutral
	default:
		return MoodNeedsSupport
	}
}

// ComputeMoodTrends emits one trend point per entry: the mean sentiment of
// the up-to-7 most recent entries ending at that entry. Entries must be in
// chronological order.
func ComputeMoodTrends(entries []models.JournalEntry) []MoodTrendPoint {
	trends := make([]MoodTrendPoint, 0, len(entries))
	for i := range entries {
		start := i - (movingAverageWindow - 1)
		if start < 0 {
			start = 0
		}
		window := entries[start : i+1]

		sum := 0.0
		for _, e := range window {
			sum += e.SentimentScore
		}

		trends = append(trends, MoodTrendPoint{
			Date:          entries[i].CreatedAt.Format("2006-01-02"),
			MovingAverage: fmt.Sprintf("%.2f", sum/float64(len(window))),
		})
	}
	return trends
}

// MoodStability classifies sentiment volatility by population variance.
// Fewer than two entries is reported as stable; variance is undefined there.
func MoodStability(entries []models.JournalEntry) string {
	if len(entries) < 2 {
		return "stable"
	}

	mean := meanSentiment(entries)
	variance := 0.0
	for _, e := range entries {
		d := e.SentimentScore - mean
		variance += d * d
	}
	variance /= float64(len(entries))

	switch {
	case variance < veryStableVariance:
		return "very_stable"
	case variance < stableVariance:
		return "stable"
	case variance < somewhatVariableVariance:
		return "somewhat_variable"
	default:
		return "highly_variable"
	}
}

// ShortTermTrend compares the mean of the 5 most recent entries against the
// mean of the next 5 older ones. Entries must be supplied most-recent-first;
// callers fetching in chronological order have to reverse before calling.
func ShortTermTrend(entries []models.JournalEntry) string {
	if len(entries) < 2 {
		return "stable"
	}

	recent := entries[:min(trendWindow, len(entries))]
	older := entries[min(trendWindow, len(entries)):min(2*trendWindow, len(entries))]

	recentAvg := meanSentiment(recent)
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = meanSentiment(older)
	}

	switch {
	case recentAvg > olderAvg+trendDelta:
		return "improving"
	case recentAvg < olderAvg-trendDelta:
		return "declining"
	default:
		return "stable"
	}
}

func meanSentiment(entries []models.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.SentimentScore
	}
	return sum / float64(len(entries))
}
