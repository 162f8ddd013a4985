// Package store is the record store adapter over Postgres. It exposes the
// read-by-filter operations the insights engine consumes and the write
// operations the route handlers use to enforce record lifecycle invariants.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

type FocusFilter struct {
	Since         *time.Time
	CompletedOnly bool
	Limit         int
}

type JournalFilter struct {
	Since       *time.Time
	Limit       int
	NewestFirst bool // short-term trend callers need most-recent-first
}

// FetchFocusSessions returns a user's sessions newest-first.
func FetchFocusSessions(ctx context.Context, userID string, filter FocusFilter) ([]models.FocusSession, error) {
	query := `SELECT id, user_id, task, category, start_time, end_time, duration, completed, created_at
		FROM focus_sessions WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Since != nil {
		args = append(args, *filter.Since)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if filter.CompletedOnly {
		query += " AND completed = TRUE"
	}
	query += " ORDER BY start_time DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching focus sessions: %v", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var s models.FocusSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Task, &s.Category, &s.StartTime,
			&s.EndTime, &s.Duration, &s.Completed, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning focus session: %v", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// FetchJournalEntries returns a user's entries, chronological by default.
func FetchJournalEntries(ctx context.Context, userID string, filter JournalFilter) ([]models.JournalEntry, error) {
	query := `SELECT id, user_id, text, sentiment_score, art_style, art_seed, created_at, updated_at
		FROM journal_entries WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Since != nil {
		args = append(args, *filter.Since)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.NewestFirst {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY created_at ASC"
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching journal entries: %v", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Text, &e.SentimentScore,
			&e.ArtStyle, &e.ArtSeed, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning journal entry: %v", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FetchChallengeProgress returns all of a user's challenge records joined
// with each challenge's goal value.
func FetchChallengeProgress(ctx context.Context, userID string) ([]models.ChallengeProgress, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT uc.id, uc.user_id, uc.challenge_id, uc.progress, c.goal_value,
			uc.completed, uc.completed_at, uc.created_at
		FROM user_challenges uc
		JOIN challenges c ON c.id = uc.challenge_id
		WHERE uc.user_id = $1
		ORDER BY uc.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching challenge progress: %v", err)
	}
	defer rows.Close()

	var records []models.ChallengeProgress
	for rows.Next() {
		var r models.ChallengeProgress
		if err := rows.Scan(&r.ID, &r.UserID, &r.ChallengeID, &r.Progress,
			&r.GoalValue, &r.Completed, &r.CompletedAt, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning challenge progress: %v", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// FetchProfile returns the user's profile aggregate, or nil when none exists.
func FetchProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := db.DB.QueryRowContext(ctx,
		`SELECT id, user_id, COALESCE(name, ''), total_focus_hours, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.TotalFocusHours, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %v", err)
	}
	return &p, nil
}
