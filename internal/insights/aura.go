package insights

import "math"

// ComputeAuraScore blends focus time, mood and challenge completion into a
// single 0-100 wellness score. Weighting: focus 40, mood 35, challenges 25.
// The focus term saturates once totalFocusHours reaches focusTargetHours;
// missing inputs are their zero-equivalents, so the score never errors.
func ComputeAuraScore(totalFocusHours, averageSentiment float64, completionRate int) int {
	focusComponent := math.Min(totalFocusHours/focusTargetHours*focusWeight, focusWeight)
	moodComponent := (averageSentiment + 1) / 2 * moodWeight
	challengeComponent := float64(completionRate) / 100 * challengeWeight

	return int(math.Round(focusComponent + moodComponent + challengeComponent))
}
