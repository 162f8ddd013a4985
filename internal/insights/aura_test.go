package insights

import "testing"

func TestComputeAuraScoreScenarios(t *testing.T) {
	tests := []struct {
		name           string
		hours          float64
		sentiment      float64
		completionRate int
		want           int
	}{
		{"all maxed", 50, 1.0, 100, 100},
		{"focus saturates past 50 hours", 120, 1.0, 100, 100},
		{"no data", 0, 0, 0, 18}, // neutral mood alone contributes 17.5
		{"worst case", 0, -1, 0, 0},
		{"half focus only", 25, -1, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAuraScore(tt.hours, tt.sentiment, tt.completionRate)
			if got != tt.want {
				t.Errorf("ComputeAuraScore(%v, %v, %d) = %d, want %d",
					tt.hours, tt.sentiment, tt.completionRate, got, tt.want)
			}
		})
	}
}

func TestComputeAuraScoreBounds(t *testing.T) {
	for _, hours := range []float64{0, 10, 50, 500} {
		for _, s := range []float64{-1, -0.5, 0, 0.5, 1} {
			for _, rate := range []int{0, 25, 50, 100} {
				got := ComputeAuraScore(hours, s, rate)
				if got < 0 || got > 100 {
					t.Errorf("ComputeAuraScore(%v, %v, %d) = %d, out of [0,100]",
						hours, s, rate, got)
				}
			}
		}
	}
}

func TestComputeAuraScoreMonotonic(t *testing.T) {
	base := ComputeAuraScore(10, 0, 50)

	if got := ComputeAuraScore(20, 0, 50); got < base {
		t.Errorf("more focus hours lowered score: %d < %d", got, base)
	}
	if got := ComputeAuraScore(10, 0.5, 50); got < base {
		t.Errorf("better sentiment lowered score: %d < %d", got, base)
	}
	if got := ComputeAuraScore(10, 0, 80); got < base {
		t.Errorf("higher completion rate lowered score: %d < %d", got, base)
	}
}
