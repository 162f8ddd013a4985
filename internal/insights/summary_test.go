package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

func nSessions(n, minutesEach int) []models.FocusSession {
	start := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)
	sessions := make([]models.FocusSession, n)
	for i := range sessions {
		sessions[i] = completedSession(start.Add(time.Duration(i)*time.Hour*3), minutesEach)
	}
	return sessions
}

func TestComputeWeeklySummaryLeadIn(t *testing.T) {
	got := ComputeWeeklySummary(nSessions(3, 60), nil)
	if !strings.HasPrefix(got, "This week, you completed 3.0 hours of focused work across 3 sessions. ") {
		t.Errorf("unexpected lead-in: %q", got)
	}
}

func TestComputeWeeklySummaryMoodSentence(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"positive band", []float64{0.6, 0.6}, summaryMoodPositive},
		{"neutral band", []float64{0.1, 0.1}, summaryMoodNeutral},
		{"support band", []float64{-0.7, -0.5}, summaryMoodSupport},
		{"no entries read as neutral", nil, summaryMoodNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWeeklySummary(nil, entriesWithScores(tt.scores...))
			if !strings.Contains(got, tt.want) {
				t.Errorf("summary %q missing fragment %q", got, tt.want)
			}
		})
	}
}

func TestComputeWeeklySummaryConsistencySentence(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		want     string
	}{
		{"eight sessions is excellent", 8, summaryExcellent},
		{"five sessions builds momentum", 5, summaryMomentum},
		{"four sessions builds momentum", 4, summaryMomentum},
		{"three sessions suggests goals", 3, summarySetGoals},
		{"zero sessions suggests goals", 0, summarySetGoals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWeeklySummary(nSessions(tt.sessions, 30), nil)
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("summary %q should end with %q", got, tt.want)
			}
		})
	}
}
