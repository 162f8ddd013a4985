package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// CreateJournalEntry inserts an entry with its already-derived sentiment,
// style and seed, filling ID and timestamps from the database.
func CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	err := db.DB.QueryRowContext(ctx,
		`INSERT INTO journal_entries (user_id, text, sentiment_score, art_style, art_seed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		entry.UserID, entry.Text, entry.SentimentScore, entry.ArtStyle, entry.ArtSeed).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating journal entry: %v", err)
	}
	return nil
}

// JournalPatch holds optional fields for a partial update; nil fields are
// left untouched.
type JournalPatch struct {
	Text           *string
	SentimentScore *float64
	ArtStyle       *string
	ArtSeed        *string
}

// UpdateJournalEntry applies a patch to an entry owned by the user.
func UpdateJournalEntry(ctx context.Context, userID, entryID string, patch JournalPatch) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := db.DB.QueryRowContext(ctx,
		`UPDATE journal_entries SET
			text = COALESCE($1, text),
			sentiment_score = COALESCE($2, sentiment_score),
			art_style = COALESCE($3, art_style),
			art_seed = COALESCE($4, art_seed),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, text, sentiment_score, art_style, art_seed, created_at, updated_at`,
		patch.Text, patch.SentimentScore, patch.ArtStyle, patch.ArtSeed, entryID, userID).
		Scan(&e.ID, &e.UserID, &e.Text, &e.SentimentScore, &e.ArtStyle, &e.ArtSeed,
			&e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating journal entry: %v", err)
	}
	return &e, nil
}

// DeleteJournalEntry removes an entry owned by the user.
func DeleteJournalEntry(ctx context.Context, userID, entryID string) error {
	result, err := db.DB.ExecContext(ctx,
		`DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return fmt.Errorf("error deleting journal entry: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
