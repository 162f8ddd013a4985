package insights

import "fmt"

type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ComputeRecommendations derives actionable suggestions from a user's
// productivity pattern: the peak focus hour and the most productive weekday.
func ComputeRecommendations(pattern ProductivityPattern) []Recommendation {
	return []Recommendation{
		{
			Type: "peak_time",
			Message: fmt.Sprintf("Your peak productivity is at %d:00. Schedule important tasks during this time.",
				pattern.PeakHour),
		},
		{
			Type: "best_day",
			Message: fmt.Sprintf("%s is your most productive day. Plan deep work sessions accordingly.",
				dayNames[pattern.PeakDay]),
		},
	}
}
