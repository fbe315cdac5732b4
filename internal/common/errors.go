// Package common defines shared constants and sentinel errors used across
// client and server layers of markbook. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// User-facing, recoverable conditions.
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoRecordsYet       = errors.New("no records yet")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Validation errors.
	ErrInvalidScores  = errors.New("invalid score set")
	ErrInvalidAccount = errors.New("invalid account data")

	// Storage failures. The committed document is left intact when this is
	// returned from a write path.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInternal = errors.New("internal error")
)
