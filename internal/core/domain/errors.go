package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoWorkspace indicates no persisted workspace state was found.
	// Recovered locally by seeding a welcome document; never surfaced.
	ErrNoWorkspace = errors.New("no persisted workspace")
)
