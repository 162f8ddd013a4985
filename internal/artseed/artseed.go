// Package artseed derives deterministic presentation seeds for journal
// entries. The seed feeds an external generative-art renderer; the only
// contract is that the same (text, sentiment) pair always produces the same
// seed and style.
package artseed

import (
	"fmt"
	"math"
)

// Seed computes a deterministic seed string from entry text and its
// sentiment score. The rolling hash wraps with 32-bit arithmetic.
func Seed(text string, sentiment float64) string {
	var hash int32
	for _, r := range text {
		hash = int32(r) + (hash<<5 - hash)
	}
	return fmt.Sprintf("%d-%d", hash, int(math.Round(sentiment*100)))
}

// Style classifies a sentiment score into one of four render styles.
func Style(sentiment float64) string {
	switch {
	case sentiment > 0.5:
		return "vibrant"
	case sentiment > 0:
		return "calm"
	case sentiment > -0.5:
		return "muted"
	default:
		return "dark"
	}
}
