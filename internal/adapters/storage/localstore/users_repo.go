package localstore

import (
	"context"
	"errors"
	"strings"

	"pet-care-platform/internal/domain/users"
)

type userRepo struct {
	st *Store
}

func NewUserRepo(st *Store) users.Repository {
	return &userRepo{st: st}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for _, rec := range s.Users {
			if rec.ID == u.ID {
				return errors.New("user already exists")
			}
		}
		s.Users = append(s.Users, toUserRecord(u))
		return nil
	})
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var out users.User
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Users {
			if rec.ID == id {
				out = fromUserRecord(rec)
				return nil
			}
		}
		return users.ErrNotFound
	})
	return out, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var out users.User
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Users {
			// Match exacto case-sensitive; no se normaliza el email.
			if rec.Email == email {
				out = fromUserRecord(rec)
				return nil
			}
		}
		return users.ErrNotFound
	})
	return out, err
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for i, rec := range s.Users {
			if rec.ID == u.ID {
				s.Users[i] = toUserRecord(u)
				return nil
			}
		}
		return users.ErrNotFound
	})
}
