package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"markbook/internal/server/migrations"
	"markbook/internal/server/repositories/accounts"
	"markbook/internal/server/repositories/records"
)

// PostgresManager backs both stores with one PostgreSQL database.
type PostgresManager struct {
	db       *sql.DB
	accounts accounts.Repository
	records  records.Repository
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:       db,
		accounts: accounts.NewPostgresRepository(db),
		records:  records.NewPostgresRepository(db),
	}

	if err := m.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresManager) Records() records.Repository {
	return m.records
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
