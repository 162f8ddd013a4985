package insights

import (
	"math"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

type ChallengeInsights struct {
	TotalChallenges int `json:"total_challenges"`
	Completed       int `json:"completed"`
	Active          int `json:"active"`
	CompletionRate  int `json:"completion_rate"` // 0-100
}

// ComputeChallengeInsights partitions a user's challenge records by the
// completed flag. An empty record set yields a zero completion rate.
func ComputeChallengeInsights(records []models.ChallengeProgress) ChallengeInsights {
	completed := 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
	}

	rate := 0
	if len(records) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(records)) * 100))
	}

	return ChallengeInsights{
		TotalChallenges: len(records),
		Completed:       completed,
		Active:          len(records) - completed,
		CompletionRate:  rate,
	}
}
