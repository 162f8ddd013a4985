package store

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyCompleted = errors.New("already completed")
	ErrAlreadyJoined    = errors.New("already joined")
)
