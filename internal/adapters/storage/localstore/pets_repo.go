package localstore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-platform/internal/domain/pets"
)

type petRepo struct {
	st *Store
}

func NewPetRepo(st *Store) pets.Repository {
	return &petRepo{st: st}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for _, rec := range s.Pets {
			if rec.ID == p.ID {
				return errors.New("pet already exists")
			}
		}
		s.Pets = append(s.Pets, toPetRecord(p))
		return nil
	})
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var out pets.Pet
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Pets {
			if rec.ID == id {
				out = fromPetRecord(rec)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for i, rec := range s.Pets {
			if rec.ID == p.ID {
				s.Pets[i] = toPetRecord(p)
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete saca solo la mascota del snapshot. El cascade de turnos lo
// decide la capa de servicio, no el repo.
func (r *petRepo) Delete(ctx context.Context, id string) error {
	return r.st.mutate(func(s *schemaRecord) error {
		for i, rec := range s.Pets {
			if rec.ID == id {
				s.Pets = append(s.Pets[:i], s.Pets[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Pets {
			if rec.OwnerID == ownerID {
				out = append(out, fromPetRecord(rec))
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

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Pets {
			out = append(out, fromPetRecord(rec))
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
