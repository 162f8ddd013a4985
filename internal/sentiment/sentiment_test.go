package sentiment

import (
	"strings"
	"testing"
)

func TestAnalyzeNeutralText(t *testing.T) {
	if got := Analyze("the weather report said nothing unusual"); got != 0 {
		t.Errorf("Analyze = %v, want 0", got)
	}
}

func TestAnalyzePositiveAndNegative(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"one positive", "feeling happy today", 0.2},
		{"two positive", "happy and grateful", 0.4},
		{"one negative", "so tired", -0.2},
		{"mixed cancels", "happy but tired", 0.0},
		{"case insensitive", "FOCUSED and Productive", 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Analyze(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeClampsToRange(t *testing.T) {
	// Every keyword hits, but each word only counts once, so the positive
	// ceiling comes from the full lexicon. Either way the contract is the
	// [-1, 1] bound.
	allPositive := strings.Join(positiveWords, " ")
	if got := Analyze(allPositive); got > 1 {
		t.Errorf("Analyze(all positive) = %v, exceeds 1", got)
	}
	allNegative := strings.Join(negativeWords, " ")
	if got := Analyze(allNegative); got < -1 {
		t.Errorf("Analyze(all negative) = %v, below -1", got)
	}
}

func TestAnalyzeRepeatedKeywordCountsOnce(t *testing.T) {
	// Substring matching means repetition does not stack.
	if got := Analyze("happy happy happy happy happy happy happy"); got != 0.2 {
		t.Errorf("Analyze(repeated) = %v, want 0.2", got)
	}
}
