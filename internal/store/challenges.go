package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// ListChallenges returns the challenge catalog, oldest first.
func ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT id, title, COALESCE(description, ''), goal_value, COALESCE(metric, ''), created_at
		FROM challenges ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("error fetching challenges: %v", err)
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		var c models.Challenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.GoalValue, &c.Metric, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning challenge: %v", err)
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

// JoinChallenge enrolls the user with zero progress. Joining twice fails.
func JoinChallenge(ctx context.Context, userID, challengeID string) (*models.ChallengeProgress, error) {
	var goalValue int
	err := db.DB.QueryRowContext(ctx,
		`SELECT goal_value FROM challenges WHERE id = $1`, challengeID).Scan(&goalValue)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading challenge: %v", err)
	}

	r := models.ChallengeProgress{
		UserID:      userID,
		ChallengeID: challengeID,
		GoalValue:   goalValue,
	}
	err = db.DB.QueryRowContext(ctx,
		`INSERT INTO user_challenges (user_id, challenge_id, progress, completed)
		VALUES ($1, $2, 0, FALSE)
		ON CONFLICT (user_id, challenge_id) DO NOTHING
		RETURNING id, created_at`,
		userID, challengeID).
		Scan(&r.ID, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAlreadyJoined
	}
	if err != nil {
		return nil, fmt.Errorf("error joining challenge: %v", err)
	}
	return &r, nil
}

// AdvanceChallenge increments progress for an active challenge. Progress
// never decreases, and when it reaches the goal value the record flips to
// completed exactly once, stamping completed_at.
func AdvanceChallenge(ctx context.Context, userID, challengeID string, increment int) (*models.ChallengeProgress, error) {
	if increment < 1 {
		increment = 1
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	var r models.ChallengeProgress
	err = tx.QueryRowContext(ctx,
		`SELECT uc.id, uc.user_id, uc.challenge_id, uc.progress, c.goal_value,
			uc.completed, uc.completed_at, uc.created_at
		FROM user_challenges uc
		JOIN challenges c ON c.id = uc.challenge_id
		WHERE uc.user_id = $1 AND uc.challenge_id = $2 FOR UPDATE OF uc`,
		userID, challengeID).
		Scan(&r.ID, &r.UserID, &r.ChallengeID, &r.Progress, &r.GoalValue,
			&r.Completed, &r.CompletedAt, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading challenge progress: %v", err)
	}
	if r.Completed {
		return nil, ErrAlreadyCompleted
	}

	r.Progress += increment
	if r.Progress >= r.GoalValue {
		r.Completed = true
		now := time.Now()
		r.CompletedAt = &now
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE user_challenges SET progress = $1, completed = $2, completed_at = $3
		WHERE id = $4`, r.Progress, r.Completed, r.CompletedAt, r.ID)
	if err != nil {
		return nil, fmt.Errorf("error updating challenge progress: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing progress update: %v", err)
	}
	return &r, nil
}

// QuitChallenge removes an active (not yet completed) enrollment.
func QuitChallenge(ctx context.Context, userID, challengeID string) error {
	result, err := db.DB.ExecContext(ctx,
		`DELETE FROM user_challenges
		WHERE user_id = $1 AND challenge_id = $2 AND completed = FALSE`,
		userID, challengeID)
	if err != nil {
		return fmt.Errorf("error quitting challenge: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
