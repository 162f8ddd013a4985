package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// Session durations are stored in minutes; 8 hours is the hard cap.
const (
	MinSessionMinutes = 1
	MaxSessionMinutes = 480
)

// CreateFocusSession starts a new session for the user. Sessions begin
// incomplete with no duration.
func CreateFocusSession(ctx context.Context, userID, task, category string) (*models.FocusSession, error) {
	if category == "" {
		category = "General"
	}

	s := models.FocusSession{
		UserID:    userID,
		Task:      task,
		Category:  category,
		StartTime: time.Now(),
	}
	err := db.DB.QueryRowContext(ctx,
		`INSERT INTO focus_sessions (user_id, task, category, start_time, completed)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, created_at`,
		userID, task, category, s.StartTime).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating focus session: %v", err)
	}
	return &s, nil
}

// CompleteFocusSession sets the session's end time, derives its duration in
// whole minutes and adds the hours to the profile aggregate, all in one
// transaction. Completing an already-completed or foreign session fails.
func CompleteFocusSession(ctx context.Context, userID, sessionID string, endTime time.Time) (*models.FocusSession, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	var s models.FocusSession
	err = tx.QueryRowContext(ctx,
		`SELECT id, user_id, task, category, start_time, completed, created_at
		FROM focus_sessions WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		sessionID, userID).
		Scan(&s.ID, &s.UserID, &s.Task, &s.Category, &s.StartTime, &s.Completed, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading focus session: %v", err)
	}
	if s.Completed {
		return nil, ErrAlreadyCompleted
	}

	duration := int(math.Round(endTime.Sub(s.StartTime).Minutes()))
	if duration < MinSessionMinutes {
		duration = MinSessionMinutes
	}
	if duration > MaxSessionMinutes {
		duration = MaxSessionMinutes
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE focus_sessions SET end_time = $1, duration = $2, completed = TRUE
		WHERE id = $3`, endTime, duration, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error completing focus session: %v", err)
	}

	// Keep the profile's running total in sync with completed sessions.
	_, err = tx.ExecContext(ctx,
		`UPDATE profiles SET total_focus_hours = total_focus_hours + $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2`, float64(duration)/60, userID)
	if err != nil {
		return nil, fmt.Errorf("error updating focus hours: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing session completion: %v", err)
	}

	s.EndTime = &endTime
	s.Duration = &duration
	s.Completed = true
	return &s, nil
}

// DeleteFocusSession removes a session owned by the user.
func DeleteFocusSession(ctx context.Context, userID, sessionID string) error {
	result, err := db.DB.ExecContext(ctx,
		`DELETE FROM focus_sessions WHERE id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return fmt.Errorf("error deleting focus session: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
