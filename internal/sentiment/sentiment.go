// Package sentiment maps journal text to a bounded sentiment score.
//
// This is a simple lexicon-based stand-in for a real sentiment model: each
// keyword hit shifts the score by a fixed step. Replace with an AI service
// when one is wired up; callers only depend on the [-1, 1] contract.
package sentiment

import "strings"

var positiveWords = []string{"happy", "grateful", "excited", "calm", "focused", "productive"}

var negativeWords = []string{"stressed", "anxious", "tired", "sad", "frustrated"}

const keywordStep = 0.2

// Analyze scores free text in [-1, 1]. Text with no keyword hits scores 0.
func Analyze(text string) float64 {
	lower := strings.ToLower(text)

	score := 0.0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			score += keywordStep
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			score -= keywordStep
		}
	}

	return clamp(score)
}

func clamp(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
