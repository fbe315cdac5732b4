package records

import (
	"context"
	"database/sql"
	"fmt"

	"markbook/internal/common"
	"markbook/internal/dbx"
	"markbook/internal/server/models"
)

// PostgresRepository stores record sets as ordered rows keyed by the owning
// user's name. The delete-and-insert replacement runs inside one
// transaction, which is the critical section closing the lost-update race.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) WriteScores(ctx context.Context, userName string, scores []models.SubjectScore) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE user_name = $1`, userName); err != nil {
			return err
		}
		query := `INSERT INTO scores (user_name, position, subject, marks) VALUES ($1, $2, $3, $4)`
		for i, s := range scores {
			if _, err := tx.ExecContext(ctx, query, userName, i, s.Subject, s.Marks); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *PostgresRepository) ReadScores(ctx context.Context, userName string) ([]models.SubjectScore, error) {
	query := `SELECT subject, marks FROM scores WHERE user_name = $1 ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var scores []models.SubjectScore
	for rows.Next() {
		var s models.SubjectScore
		if err := rows.Scan(&s.Subject, &s.Marks); err != nil {
			return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}

	if len(scores) == 0 {
		return nil, common.ErrNoRecordsYet
	}
	return scores, nil
}
