// Package session holds the ephemeral binding of one client to at most one
// authenticated account. Sessions are explicit objects with their own
// lifecycle, never process-wide state.
package session

import (
	"sync"

	"markbook/internal/server/models"
)

// Session belongs to a single client connection.
type Session struct {
	mu      sync.Mutex
	account *models.Account
}

func New() *Session {
	return &Session{}
}

// Establish binds the session to account, replacing any prior binding.
// Re-login replaces, it does not stack.
func (s *Session) Establish(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
}

// Clear removes the binding. Clearing an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
}

// Current returns the bound account, or nil when not logged in.
func (s *Session) Current() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}
