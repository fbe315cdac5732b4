package repomanager

import (
	"fmt"
	"time"

	"markbook/internal/server/repositories/accounts"
	"markbook/internal/server/repositories/records"
)

// FileManager keeps both stores under one data directory: the accounts
// document at its root and one record namespace per user below it.
type FileManager struct {
	accounts accounts.Repository
	records  records.Repository
}

func NewFileManager(dataDir string, lockTimeout time.Duration) (*FileManager, error) {
	accountRepo, err := accounts.NewFileRepository(dataDir, lockTimeout)
	if err != nil {
		return nil, fmt.Errorf("account repo creation error: %w", err)
	}

	recordRepo, err := records.NewFileRepository(dataDir)
	if err != nil {
		return nil, fmt.Errorf("record repo creation error: %w", err)
	}

	return &FileManager{accounts: accountRepo, records: recordRepo}, nil
}

func (m *FileManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *FileManager) Records() records.Repository {
	return m.records
}

func (m *FileManager) Close() error {
	return nil
}
