package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"markbook/internal/common"
	"markbook/internal/dbx"
	"markbook/internal/server/models"
)

// pgerrUniqueViolation is the PostgreSQL error code for a unique
// constraint hit.
const pgerrUniqueViolation = "23505"

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The schema enforces uniqueness of email and name;
// the per-user namespace is the set of rows keyed by the account name, so
// no extra provisioning step is needed on Save.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) LoadAll(ctx context.Context) (map[string]models.Account, error) {
	query := `SELECT id, name, phone, dob, email, password_hash, created_at FROM accounts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	accounts := map[string]models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.DateOfBirth, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
		}
		accounts[a.Email] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return accounts, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return exists, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id, name, phone, dob, email, password_hash, created_at FROM accounts WHERE email = $1`

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Name, &a.Phone, &a.DateOfBirth, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return a, nil
}

func (r *PostgresRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE name = $1)`

	var taken bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&taken); err != nil {
		return false, fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return taken, nil
}

// Save relies on the unique constraints on email and name, so a concurrent
// duplicate registration fails on insert instead of silently replacing the
// stored account.
func (r *PostgresRepository) Save(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, name, phone, dob, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Phone, account.DateOfBirth,
		account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return common.ErrAccountExists
		}
		return fmt.Errorf("%w: db: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
