package accounts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markbook/internal/common"
	"markbook/internal/server/models"
)

func newFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewFileRepository(dir, time.Second)
	require.NoError(t, err)
	return repo, dir
}

func testAccount(name, email string) *models.Account {
	return &models.Account{
		ID:           "id-" + name,
		Name:         name,
		Phone:        "555-0100",
		DateOfBirth:  "1990-05-01",
		Email:        email,
		PasswordHash: []byte("$2a$10$fakehash"),
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestFileRepository_LoadAll_AbsentStoreIsEmpty(t *testing.T) {
	repo, _ := newFileRepo(t)

	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileRepository_SaveAndLoadRoundTrip(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	a := testAccount("Alice", "a@x.com")
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *a, got["a@x.com"])
}

func TestFileRepository_Exists(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, testAccount("Alice", "a@x.com")))

	ok, err = repo.Exists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileRepository_GetByEmail(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)

	a := testAccount("Alice", "a@x.com")
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestFileRepository_NameTaken(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testAccount("Alice", "a@x.com")))

	taken, err := repo.NameTaken(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.NameTaken(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestFileRepository_SaveProvisionsNamespace(t *testing.T) {
	repo, dir := newFileRepo(t)

	require.NoError(t, repo.Save(context.Background(), testAccount("Alice", "a@x.com")))

	fi, err := os.Stat(filepath.Join(dir, "users", "Alice"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestFileRepository_SaveRejectsDuplicateEmail(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	first := testAccount("Alice", "a@x.com")
	require.NoError(t, repo.Save(ctx, first))

	// Same email under a fresh name must not replace the stored account.
	second := testAccount("Mallory", "a@x.com")
	second.Phone = "555-0199"
	err := repo.Save(ctx, second)
	require.ErrorIs(t, err, common.ErrAccountExists)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "555-0100", got.Phone)
}

func TestFileRepository_SaveRejectsDuplicateName(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testAccount("Alice", "a@x.com")))

	err := repo.Save(ctx, testAccount("Alice", "other@x.com"))
	require.ErrorIs(t, err, common.ErrAccountExists)

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFileRepository_LoadAll_MalformedDocument(t *testing.T) {
	repo, dir := newFileRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{broken"), 0o660))

	_, err := repo.LoadAll(context.Background())
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestFileRepository_Save_ReleasesLock(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testAccount("Alice", "a@x.com")))
	// A second save must not block on a stale lock.
	require.NoError(t, repo.Save(ctx, testAccount("Bob", "b@x.com")))
}
