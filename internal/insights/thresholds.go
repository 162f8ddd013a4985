package insights

// Classification thresholds and score weights. These encode product tuning,
// not algorithmic necessity; adjust here without touching the computations.
const (
	// Mood band cutoffs on average sentiment.
	moodPositiveThreshold = 0.3
	moodSupportThreshold  = -0.3

	// Population-variance bands for mood stability.
	veryStableVariance       = 0.1
	stableVariance           = 0.3
	somewhatVariableVariance = 0.5

	// Short-term trend: recent vs older mean must differ by more than this.
	trendDelta = 0.2

	// Window sizes, in entries.
	movingAverageWindow = 7
	trendWindow         = 5

	// Aura score weights. Focus contribution saturates at focusTargetHours.
	focusWeight      = 40.0
	focusTargetHours = 50.0
	moodWeight       = 35.0
	challengeWeight  = 25.0

	// Weekly summary consistency cutoffs on session count.
	excellentConsistencySessions = 7
	momentumSessions             = 3
)
