package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a unique constraint violation (email, username).
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference reports a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
)
