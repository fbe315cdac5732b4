package records

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"markbook/internal/common"
	"markbook/internal/filex"
	"markbook/internal/server/models"
)

const marksFileName = "marks.csv"

var csvHeader = []string{"Subject", "Marks"}

// FileRepository stores one marks.csv per user under
// <dataDir>/users/<name>/. A submission is a full replacement committed via
// atomic rename, so readers never observe a half-written document.
type FileRepository struct {
	dataDir string
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := filex.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return &FileRepository{dataDir: dataDir}, nil
}

func (r *FileRepository) documentPath(userName string) string {
	return filepath.Join(r.dataDir, "users", userName, marksFileName)
}

func (r *FileRepository) WriteScores(ctx context.Context, userName string, scores []models.SubjectScore) error {
	path := r.documentPath(userName)

	if err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: encode scores: %v", common.ErrStorageUnavailable, err)
	}
	for _, s := range scores {
		if err := w.Write([]string{s.Subject, strconv.Itoa(s.Marks)}); err != nil {
			return fmt.Errorf("%w: encode scores: %v", common.ErrStorageUnavailable, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: encode scores: %v", common.ErrStorageUnavailable, err)
	}

	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o660); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *FileRepository) ReadScores(ctx context.Context, userName string) ([]models.SubjectScore, error) {
	data, err := os.ReadFile(r.documentPath(userName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrNoRecordsYet
		}
		return nil, fmt.Errorf("%w: read scores: %v", common.ErrStorageUnavailable, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse scores: %v", common.ErrStorageUnavailable, err)
	}
	if len(rows) == 0 || len(rows[0]) != 2 || rows[0][0] != csvHeader[0] || rows[0][1] != csvHeader[1] {
		return nil, fmt.Errorf("%w: parse scores: missing header", common.ErrStorageUnavailable)
	}

	scores := make([]models.SubjectScore, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: parse scores: bad row %v", common.ErrStorageUnavailable, row)
		}
		marks, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: parse scores: bad marks %q", common.ErrStorageUnavailable, row[1])
		}
		scores = append(scores, models.SubjectScore{Subject: row[0], Marks: marks})
	}
	return scores, nil
}
