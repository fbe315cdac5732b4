package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"markbook/internal/common"
	"markbook/internal/filex"
	"markbook/internal/server/models"
)

const accountsFileName = "users.json"

// FileRepository stores the account mapping as a single JSON document under
// the data directory. Every write reloads the full document, mutates it, and
// replaces it atomically while holding an exclusive lock file.
type FileRepository struct {
	dataDir     string
	lockTimeout time.Duration
}

func NewFileRepository(dataDir string, lockTimeout time.Duration) (*FileRepository, error) {
	if err := filex.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return &FileRepository{dataDir: dataDir, lockTimeout: lockTimeout}, nil
}

func (r *FileRepository) documentPath() string {
	return filepath.Join(r.dataDir, accountsFileName)
}

func (r *FileRepository) namespaceDir(name string) string {
	return filepath.Join(r.dataDir, "users", name)
}

func (r *FileRepository) LoadAll(ctx context.Context) (map[string]models.Account, error) {
	data, err := os.ReadFile(r.documentPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Store absent means empty, not broken.
			return map[string]models.Account{}, nil
		}
		return nil, fmt.Errorf("%w: read accounts: %v", common.ErrStorageUnavailable, err)
	}

	accounts := map[string]models.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: parse accounts: %v", common.ErrStorageUnavailable, err)
	}
	return accounts, nil
}

func (r *FileRepository) Exists(ctx context.Context, email string) (bool, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	_, ok := accounts[email]
	return ok, nil
}

func (r *FileRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	account, ok := accounts[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &account, nil
}

func (r *FileRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range accounts {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Save holds the document lock for the whole check-and-insert cycle so that
// two concurrent registrations cannot both claim the same email or name,
// then commits via atomic rename.
func (r *FileRepository) Save(ctx context.Context, account *models.Account) error {
	lock, err := filex.AcquireLock(ctx, r.documentPath()+".lock", r.lockTimeout)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer lock.Release()

	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := accounts[account.Email]; ok {
		return fmt.Errorf("%w: email already registered", common.ErrAccountExists)
	}
	for _, a := range accounts {
		if a.Name == account.Name {
			return fmt.Errorf("%w: name %q", common.ErrAccountExists, account.Name)
		}
	}
	accounts[account.Email] = *account

	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: encode accounts: %v", common.ErrStorageUnavailable, err)
	}
	if err := filex.WriteFileAtomic(r.documentPath(), data, 0o660); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := filex.EnsureDir(r.namespaceDir(account.Name)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
