package insights

import (
	"strings"
	"testing"
)

func TestComputeRecommendations(t *testing.T) {
	pattern := ProductivityPattern{PeakHour: 9, PeakDay: 2}

	recs := ComputeRecommendations(pattern)
	if len(recs) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(recs))
	}

	if recs[0].Type != "peak_time" {
		t.Errorf("first type = %q, want \"peak_time\"", recs[0].Type)
	}
	if !strings.Contains(recs[0].Message, "9:00") {
		t.Errorf("peak-time message %q missing hour", recs[0].Message)
	}

	if recs[1].Type != "best_day" {
		t.Errorf("second type = %q, want \"best_day\"", recs[1].Type)
	}
	if !strings.Contains(recs[1].Message, "Tuesday") {
		t.Errorf("best-day message %q missing weekday name", recs[1].Message)
	}
}

func TestComputeRecommendationsWeekStartsSunday(t *testing.T) {
	recs := ComputeRecommendations(ProductivityPattern{PeakDay: 0})
	if !strings.Contains(recs[1].Message, "Sunday") {
		t.Errorf("day 0 message %q should name Sunday", recs[1].Message)
	}

	recs = ComputeRecommendations(ProductivityPattern{PeakDay: 6})
	if !strings.Contains(recs[1].Message, "Saturday") {
		t.Errorf("day 6 message %q should name Saturday", recs[1].Message)
	}
}
