// Package repomanager wires concrete repository implementations behind one
// interface so the services stay independent of the storage backend.
package repomanager

import (
	"markbook/internal/server/repositories/accounts"
	"markbook/internal/server/repositories/records"
)

type Manager interface {
	Accounts() accounts.Repository
	Records() records.Repository
	Close() error
}
