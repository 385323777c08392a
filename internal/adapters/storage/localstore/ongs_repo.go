package localstore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-platform/internal/domain/ongs"
)

type ongRepo struct {
	st *Store
}

func NewOngRepo(st *Store) ongs.Repository {
	return &ongRepo{st: st}
}

func (r *ongRepo) Create(ctx context.Context, o ongs.Ong) error {
	if strings.TrimSpace(o.ID) == "" {
		return errors.New("ong id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for _, rec := range s.Ongs {
			if rec.ID == o.ID {
				return errors.New("ong already exists")
			}
		}
		s.Ongs = append(s.Ongs, toOngRecord(o))
		return nil
	})
}

func (r *ongRepo) GetByID(ctx context.Context, id string) (ongs.Ong, error) {
	var out ongs.Ong
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Ongs {
			if rec.ID == id {
				out = fromOngRecord(rec)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *ongRepo) Update(ctx context.Context, o ongs.Ong) error {
	if strings.TrimSpace(o.ID) == "" {
		return errors.New("ong id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for i, rec := range s.Ongs {
			if rec.ID == o.ID {
				s.Ongs[i] = toOngRecord(o)
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *ongRepo) ListAll(ctx context.Context) ([]ongs.Ong, error) {
	out := make([]ongs.Ong, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Ongs {
			out = append(out, fromOngRecord(rec))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ongRepo) ListByOwner(ctx context.Context, ownerID string) ([]ongs.Ong, error) {
	if strings.TrimSpace(ownerID) == "" {
		return []ongs.Ong{}, nil
	}

	out := make([]ongs.Ong, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Ongs {
			if rec.OwnerID == ownerID {
				out = append(out, fromOngRecord(rec))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
