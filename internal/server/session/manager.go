package session

import (
	"sync"

	"github.com/google/uuid"

	"markbook/internal/server/models"
)

// Manager tracks live sessions keyed by an opaque per-client id, so
// stateless transports can rebind a request to its session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Open creates a session bound to account and returns its id.
func (m *Manager) Open(account *models.Account) string {
	id := uuid.NewString()
	s := New()
	s.Establish(account)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return id
}

// Get returns the session for id, if it exists.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close clears and removes the session for id. Unknown ids are ignored.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.Clear()
		delete(m.sessions, id)
	}
}
