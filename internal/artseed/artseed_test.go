package artseed

import "testing"

func TestSeedDeterministic(t *testing.T) {
	a := Seed("today was a good day", 0.4)
	b := Seed("today was a good day", 0.4)
	if a != b {
		t.Errorf("Seed not deterministic: %q vs %q", a, b)
	}
}

func TestSeedVariesWithInput(t *testing.T) {
	base := Seed("today was a good day", 0.4)
	if got := Seed("today was a bad day", 0.4); got == base {
		t.Errorf("Seed should change with text, got %q twice", got)
	}
	if got := Seed("today was a good day", -0.4); got == base {
		t.Errorf("Seed should change with sentiment, got %q twice", got)
	}
}

func TestSeedEncodesSentiment(t *testing.T) {
	// The suffix is round(sentiment*100).
	got := Seed("x", 0.55)
	want := "120-55" // 'x' = 120
	if got != want {
		t.Errorf("Seed(\"x\", 0.55) = %q, want %q", got, want)
	}
}

func TestStyleBands(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      string
	}{
		{0.9, "vibrant"},
		{0.51, "vibrant"},
		{0.5, "calm"},
		{0.1, "calm"},
		{0, "muted"},
		{-0.4, "muted"},
		{-0.5, "dark"},
		{-1, "dark"},
	}
	for _, tt := range tests {
		if got := Style(tt.sentiment); got != tt.want {
			t.Errorf("Style(%v) = %q, want %q", tt.sentiment, got, tt.want)
		}
	}
}
