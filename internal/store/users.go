package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// CreateUser inserts a user with an already-hashed password and an empty
// profile row, returning the new user ID.
func CreateUser(ctx context.Context, email, hashedPassword, name string) (string, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	var userID string
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id`,
		email, hashedPassword).Scan(&userID)
	if err != nil {
		return "", fmt.Errorf("error creating user: %v", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, name, total_focus_hours) VALUES ($1, $2, 0)`,
		userID, name)
	if err != nil {
		return "", fmt.Errorf("error creating profile: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("error committing user creation: %v", err)
	}
	return userID, nil
}

// GetUserByEmail returns the user including the password hash, for login.
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.DB.QueryRowContext(ctx,
		`SELECT id, email, password, created_at, updated_at FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %v", err)
	}
	return &u, nil
}
