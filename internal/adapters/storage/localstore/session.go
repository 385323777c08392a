package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"pet-care-platform/internal/domain/users"
)

// SessionStore persiste el usuario logueado como un registro aparte del
// snapshot principal. Guarda el User completo (hash incluido) para poder
// restaurar la sesión sin tocar el snapshot.
type SessionStore struct {
	mu   sync.Mutex
	path string
}

func NewSessionStore(st *Store) *SessionStore {
	return &SessionStore{path: st.SessionPath()}
}

func (s *SessionStore) Get(ctx context.Context) (users.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return users.User{}, false, nil
		}
		return users.User{}, false, fmt.Errorf("localstore: read session: %w", err)
	}

	var r userRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return users.User{}, false, fmt.Errorf("localstore: decode session: %w", err)
	}
	if r.ID == "" {
		return users.User{}, false, nil
	}
	return fromUserRecord(r), true, nil
}

func (s *SessionStore) Put(ctx context.Context, u users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(toUserRecord(u), "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("localstore: write session: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: clear session: %w", err)
	}
	return nil
}
