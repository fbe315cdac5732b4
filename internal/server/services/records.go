package services

import (
	"context"
	"fmt"

	"markbook/internal/common"
	"markbook/internal/server/models"
	"markbook/internal/server/repositories/records"
)

// RecordService validates and stores per-user subject scores.
type RecordService struct {
	records records.Repository
}

func NewRecordService(repo records.Repository) *RecordService {
	return &RecordService{records: repo}
}

// SubmitScores replaces the user's record set with the given full, ordered
// set of subject scores.
func (s *RecordService) SubmitScores(ctx context.Context, userName string, scores []models.SubjectScore) error {
	if err := models.ValidateScores(scores); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidScores, err)
	}
	return s.records.WriteScores(ctx, userName, scores)
}

// FetchScores returns the user's record set in stored order, or
// ErrNoRecordsYet when the user has never submitted.
func (s *RecordService) FetchScores(ctx context.Context, userName string) ([]models.SubjectScore, error) {
	return s.records.ReadScores(ctx, userName)
}
