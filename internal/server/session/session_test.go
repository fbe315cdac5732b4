package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markbook/internal/server/models"
)

func TestSession_EstablishAndCurrent(t *testing.T) {
	s := New()
	assert.Nil(t, s.Current())

	alice := &models.Account{Name: "Alice", Email: "a@x.com"}
	s.Establish(alice)
	assert.Equal(t, alice, s.Current())
}

func TestSession_ReLoginReplaces(t *testing.T) {
	s := New()
	s.Establish(&models.Account{Name: "Alice", Email: "a@x.com"})

	bob := &models.Account{Name: "Bob", Email: "b@x.com"}
	s.Establish(bob)
	assert.Equal(t, bob, s.Current())
}

func TestSession_ClearIsIdempotent(t *testing.T) {
	s := New()
	s.Establish(&models.Account{Name: "Alice"})

	s.Clear()
	assert.Nil(t, s.Current())

	// Second clear is a no-op, not an error.
	s.Clear()
	assert.Nil(t, s.Current())
}

func TestManager_OpenGetClose(t *testing.T) {
	m := NewManager()
	alice := &models.Account{Name: "Alice"}

	id := m.Open(alice)
	require.NotEmpty(t, id)

	s, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, alice, s.Current())

	m.Close(id)
	_, ok = m.Get(id)
	assert.False(t, ok)

	// Closing again is safe.
	m.Close(id)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager()

	idA := m.Open(&models.Account{Name: "Alice"})
	idB := m.Open(&models.Account{Name: "Bob"})
	require.NotEqual(t, idA, idB)

	m.Close(idA)

	sb, ok := m.Get(idB)
	require.True(t, ok)
	assert.Equal(t, "Bob", sb.Current().Name)
}
