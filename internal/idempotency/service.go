package idempotency

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

// Records expire after this window; expired keys are reusable.
const recordTTL = 24 * time.Hour

// GenerateIdempotencyKey creates a unique key for the request
func GenerateIdempotencyKey(userID, endpoint, requestBody string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", userID, endpoint, requestBody)))
	return hex.EncodeToString(hash[:])
}

// GenerateRequestHash creates a hash of the request for comparison
func GenerateRequestHash(requestBody string) string {
	hash := sha256.Sum256([]byte(requestBody))
	return hex.EncodeToString(hash[:])
}

// CheckIdempotency returns the stored record for a key, or nil if none
// exists or the existing one has expired.
func CheckIdempotency(ctx context.Context, key string) (*models.IdempotencyRecord, error) {
	var record models.IdempotencyRecord
	var response sql.NullString
	err := db.DB.QueryRowContext(ctx,
		`SELECT key, user_id, request_hash, response, status, created_at, expires_at
		FROM idempotency_keys WHERE key = $1`, key).
		Scan(&record.Key, &record.UserID, &record.RequestHash, &response,
			&record.Status, &record.CreatedAt, &record.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil // No existing record
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency: %v", err)
	}
	record.Response = response.String

	if time.Now().After(record.ExpiresAt) {
		// Record expired, delete it
		DeleteIdempotencyRecord(ctx, key)
		return nil, nil
	}

	return &record, nil
}

// StoreIdempotencyRecord stores a new idempotency record
func StoreIdempotencyRecord(ctx context.Context, record *models.IdempotencyRecord) error {
	result, err := db.DB.ExecContext(ctx,
		`INSERT INTO idempotency_keys (key, user_id, request_hash, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO NOTHING`,
		record.Key, record.UserID, record.RequestHash, record.Status,
		record.CreatedAt, record.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to store idempotency record: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("idempotency key already exists")
	}
	return nil
}

// UpdateIdempotencyRecord updates an existing idempotency record with response
func UpdateIdempotencyRecord(ctx context.Context, key, response, status string) error {
	_, err := db.DB.ExecContext(ctx,
		`UPDATE idempotency_keys SET response = $1, status = $2 WHERE key = $3`,
		response, status, key)
	if err != nil {
		return fmt.Errorf("failed to update idempotency record: %v", err)
	}
	return nil
}

// DeleteIdempotencyRecord deletes an idempotency record
func DeleteIdempotencyRecord(ctx context.Context, key string) error {
	_, err := db.DB.ExecContext(ctx,
		`DELETE FROM idempotency_keys WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete idempotency record: %v", err)
	}
	return nil
}

// ProcessIdempotentRequest handles the complete idempotency flow: replay a
// completed response, reject a pending duplicate or conflicting key, and
// otherwise run the handler and record its result.
func ProcessIdempotentRequest(
	ctx context.Context,
	userID, endpoint, requestBody string,
	handler func() (interface{}, error),
) (interface{}, error) {
	key := GenerateIdempotencyKey(userID, endpoint, requestBody)
	requestHash := GenerateRequestHash(requestBody)

	existingRecord, err := CheckIdempotency(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency: %v", err)
	}

	// If record exists and request hash matches, return cached response
	if existingRecord != nil && existingRecord.RequestHash == requestHash {
		if existingRecord.Status == "completed" {
			var response interface{}
			if err := json.Unmarshal([]byte(existingRecord.Response), &response); err != nil {
				return nil, fmt.Errorf("failed to unmarshal cached response: %v", err)
			}
			return response, nil
		} else if existingRecord.Status == "pending" {
			return nil, fmt.Errorf("request is already being processed")
		}
	}

	if existingRecord != nil && existingRecord.RequestHash != requestHash {
		return nil, fmt.Errorf("idempotency key conflict: same key used for different request")
	}

	record := &models.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		Status:      "pending",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(recordTTL),
	}
	if err := StoreIdempotencyRecord(ctx, record); err != nil {
		return nil, err
	}

	response, err := handler()
	if err != nil {
		UpdateIdempotencyRecord(ctx, key, "", "failed")
		return nil, err
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		UpdateIdempotencyRecord(ctx, key, "", "failed")
		return nil, fmt.Errorf("failed to marshal response: %v", err)
	}
	if err := UpdateIdempotencyRecord(ctx, key, string(responseJSON), "completed"); err != nil {
		return nil, err
	}

	return response, nil
}
