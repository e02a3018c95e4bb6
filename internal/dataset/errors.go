package dataset

import "errors"

// Dataset errors.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a table holds two rows with the same identity.
	// Source tables are snapshots, so a duplicate is a data error, not an update.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidInput is returned when a row lacks its identifying fields.
	ErrInvalidInput = errors.New("invalid input")
)
