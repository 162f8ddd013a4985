package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Password is never exposed in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Profile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	TotalFocusHours float64   `json:"total_focus_hours"` // running sum of completed-session hours
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FocusSession is created when the timer starts and mutated exactly once on
// completion, which sets EndTime, Duration and Completed together.
type FocusSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Task      string     `json:"task"`
	Category  string     `json:"category"` // defaults to "General"
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  *int       `json:"duration,omitempty"` // minutes, 1-480, set on completion
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
}

// DurationMinutes returns the recorded duration or 0 when the session is
// still running.
func (s FocusSession) DurationMinutes() int {
	if s.Duration == nil {
		return 0
	}
	return *s.Duration
}

type JournalEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Text           string    `json:"text"`
	SentimentScore float64   `json:"sentiment_score"` // -1..1, computed once at creation
	ArtStyle       string    `json:"art_style"`       // vibrant | calm | muted | dark
	ArtSeed        string    `json:"art_seed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GoalValue   int       `json:"goal_value"`
	Metric      string    `json:"metric"` // e.g. "sessions", "entries", "minutes"
	CreatedAt   time.Time `json:"created_at"`
}

// ChallengeProgress tracks one user's run at a challenge. Progress is
// monotonically non-decreasing while active; Completed flips exactly once,
// when progress reaches the challenge's goal value, and stamps CompletedAt.
type ChallengeProgress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ChallengeID string     `json:"challenge_id"`
	Progress    int        `json:"progress"`
	GoalValue   int        `json:"goal_value"` // joined from the challenge definition
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type IdempotencyRecord struct {
	Key         string    `json:"key"`
	UserID      string    `json:"user_id"`
	RequestHash string    `json:"request_hash"`
	Response    string    `json:"response"`
	Status      string    `json:"status"` // "pending", "completed", "failed"
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
