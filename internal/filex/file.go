// Package filex provides file-system helpers shared by the file-backed
// repositories: directory provisioning, atomic document replacement, and a
// cross-process exclusive lock based on a lock file.
package filex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-retry"
)

// EnsureDir creates dir (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic replaces the file at path with data in one step: the
// content is written to a temporary file in the same directory and then
// renamed over the target. A concurrent reader observes either the old or
// the new document, never a partial write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s -> %s: %w", tmpName, path, err)
	}
	return nil
}

// Lock is an exclusive advisory lock held via a lock file. It serializes
// read-modify-write cycles on a document across processes.
type Lock struct {
	path string
	f    *os.File
}

// AcquireLock takes the lock at path, retrying with fibonacci backoff until
// timeout elapses or ctx is cancelled. The lock file is created with
// O_CREATE|O_EXCL, so exactly one holder can exist at a time.
func AcquireLock(ctx context.Context, path string, timeout time.Duration) (*Lock, error) {
	lock := &Lock{path: path}

	b := retry.WithMaxDuration(timeout, retry.NewFibonacci(10*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err != nil {
			if os.IsExist(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		lock.f = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}

	return lock, nil
}

// Release drops the lock. Safe to call once per acquired lock.
func (l *Lock) Release() error {
	if l.f == nil {
		return nil
	}
	l.f.Close()
	l.f = nil
	if err := os.Remove(l.path); err != nil {
		return fmt.Errorf("remove lock %s: %w", l.path, err)
	}
	return nil
}
