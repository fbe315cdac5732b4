// Package records provides durable storage for per-user subject scores.
// Each user's record set lives in its own namespace; one user's writes are
// never visible through another user's reads.
package records

import (
	"context"

	"markbook/internal/server/models"
)

// Repository is the record store contract.
type Repository interface {
	// WriteScores replaces the user's full record set with scores,
	// preserving the given order.
	WriteScores(ctx context.Context, userName string, scores []models.SubjectScore) error

	// ReadScores returns the user's record set in stored order.
	// A user who has never submitted yields common.ErrNoRecordsYet,
	// which is distinct from a malformed or unreadable document.
	ReadScores(ctx context.Context, userName string) ([]models.SubjectScore, error)
}
