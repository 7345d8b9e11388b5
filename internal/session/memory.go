package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-process Store used by tests and local development
// without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]Identity{}}
}

func (s *MemoryStore) Create(_ context.Context, id Identity) (string, error) {
	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = id
	s.mu.Unlock()
	return sessionID, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Identity, error) {
	s.mu.RLock()
	id, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return Identity{}, ErrNotFound
	}
	return id, nil
}

func (s *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
