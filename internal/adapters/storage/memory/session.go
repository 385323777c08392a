package memory

import (
	"context"
	"sync"

	"pet-care-platform/internal/domain/users"
)

// SessionStore in-memory para tests y modo dev sin data dir.
type SessionStore struct {
	mu   sync.RWMutex
	cur  users.User
	live bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Get(ctx context.Context) (users.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, s.live, nil
}

func (s *SessionStore) Put(ctx context.Context, u users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = u
	s.live = true
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = users.User{}
	s.live = false
	return nil
}
