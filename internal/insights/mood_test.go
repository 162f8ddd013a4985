package insights

import (
	"testing"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

func entriesWithScores(scores ...float64) []models.JournalEntry {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	entries := make([]models.JournalEntry, len(scores))
	for i, s := range scores {
		entries[i] = models.JournalEntry{
			UserID:         "u1",
			SentimentScore: s,
			CreatedAt:      base.AddDate(0, 0, i),
		}
	}
	return entries
}

func TestComputeMoodInsightsBands(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"positive", []float64{0.5, 0.5}, MoodPositive},
		{"neutral", []float64{0.1, 0.2}, MoodNeutral},
		{"neutral at boundary", []float64{0.3, 0.3}, MoodNeutral},
		{"needs support", []float64{-0.6, -0.4}, MoodNeedsSupport},
		{"empty", nil, MoodNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMoodInsights(entriesWithScores(tt.scores...))
			if got.RecentMood != tt.want {
				t.Errorf("RecentMood = %q, want %q", got.RecentMood, tt.want)
			}
		})
	}
}

func TestComputeMoodInsightsEmpty(t *testing.T) {
	got := ComputeMoodInsights(nil)
	if got.AverageSentiment != "0.00" {
		t.Errorf("AverageSentiment = %q, want \"0.00\"", got.AverageSentiment)
	}
	if got.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d, want 0", got.TotalEntries)
	}
}

func TestComputeMoodTrendsWindow(t *testing.T) {
	// 9 chronological entries; point i averages entries[max(0,i-6)..i].
	entries := entriesWithScores(1, 1, 1, 1, 1, 1, 1, 0, 0)

	trends := ComputeMoodTrends(entries)
	if len(trends) != 9 {
		t.Fatalf("trend points = %d, want 9", len(trends))
	}
	if trends[0].MovingAverage != "1.00" {
		t.Errorf("first point = %q, want \"1.00\"", trends[0].MovingAverage)
	}
	// Point 7 covers entries 1..7: six 1s and one 0.
	if trends[7].MovingAverage != "0.86" {
		t.Errorf("point 7 = %q, want \"0.86\"", trends[7].MovingAverage)
	}
	// Point 8 covers entries 2..8: five 1s and two 0s.
	if trends[8].MovingAverage != "0.71" {
		t.Errorf("point 8 = %q, want \"0.71\"", trends[8].MovingAverage)
	}
	if trends[8].Date != "2025-06-09" {
		t.Errorf("point 8 date = %q, want 2025-06-09", trends[8].Date)
	}
}

func TestMoodStabilityBands(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"constant sequence", []float64{0.2, 0.2, 0.2, 0.2}, "very_stable"},
		{"alternating extremes", []float64{1, -1, 1, -1}, "highly_variable"},
		{"single entry", []float64{0.9}, "stable"},
		{"empty", nil, "stable"},
		{"mild swing", []float64{0.6, -0.2, 0.6, -0.2}, "stable"},
		{"wider swing", []float64{0.6, -0.6, 0.6, -0.6}, "somewhat_variable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoodStability(entriesWithScores(tt.scores...))
			if got != tt.want {
				t.Errorf("MoodStability = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortTermTrend(t *testing.T) {
	tests := []struct {
		name string
		// most-recent-first per the caller contract
		scores []float64
		want   string
	}{
		{
			"declining",
			[]float64{-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			"declining",
		},
		{
			"improving",
			[]float64{0.5, 0.5, 0.5, 0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5},
			"improving",
		},
		{
			"flat",
			[]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.2, 0.2, 0.2, 0.2, 0.2},
			"stable",
		},
		{
			"no older window falls back to stable",
			[]float64{0.9, 0.8, 0.7},
			"stable",
		},
		{"single entry", []float64{0.9}, "stable"},
		{"empty", nil, "stable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortTermTrend(entriesWithScores(tt.scores...))
			if got != tt.want {
				t.Errorf("ShortTermTrend = %q, want %q", got, tt.want)
			}
		})
	}
}
