// Package accounts provides durable storage for registered accounts, keyed
// by email.
package accounts

import (
	"context"

	"markbook/internal/server/models"
)

// Repository is the account store contract. Save performs a full
// read-modify-write of the persisted mapping and must commit atomically; an
// absent store is a valid empty state, never an error.
type Repository interface {
	// LoadAll returns the full persisted email -> account mapping,
	// empty when no store exists yet.
	LoadAll(ctx context.Context) (map[string]models.Account, error)

	// Exists reports whether an account with the given email is stored.
	Exists(ctx context.Context, email string) (bool, error)

	// GetByEmail returns the account stored under email, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// NameTaken reports whether any stored account already uses name.
	// Name doubles as the record-store namespace, so it must stay unique.
	NameTaken(ctx context.Context, name string) (bool, error)

	// Save inserts the account and provisions its record namespace, so
	// "account exists" implies "namespace exists". An email or name that is
	// already stored fails with common.ErrAccountExists; the check happens
	// inside the store's own critical section, so concurrent registrations
	// cannot both claim the same identity.
	Save(ctx context.Context, account *models.Account) error
}
