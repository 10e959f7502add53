package db

import "errors"

var (
	// ErrInvalidInput rejects locally-invalid commands (empty title or
	// name). The store is left untouched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound signals an unknown session code. Mistyped codes are an
	// expected, retryable case.
	ErrNotFound = errors.New("session not found")

	// ErrNoSnapshot is returned by a Backend when no snapshot has been
	// persisted yet. The store starts empty in that case.
	ErrNoSnapshot = errors.New("no snapshot stored")
)
