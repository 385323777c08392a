package localstore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-platform/internal/domain/adoption"
)

type interestRepo struct {
	st *Store
}

func NewInterestRepo(st *Store) adoption.Repository {
	return &interestRepo{st: st}
}

func (r *interestRepo) Create(ctx context.Context, i adoption.Interest) error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("interest id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for _, rec := range s.AdoptionInterests {
			if rec.ID == i.ID {
				return errors.New("interest already exists")
			}
		}
		s.AdoptionInterests = append(s.AdoptionInterests, toInterestRecord(i))
		return nil
	})
}

func (r *interestRepo) GetByID(ctx context.Context, id string) (adoption.Interest, error) {
	var out adoption.Interest
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.AdoptionInterests {
			if rec.ID == id {
				out = fromInterestRecord(rec)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *interestRepo) Update(ctx context.Context, i adoption.Interest) error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("interest id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for idx, rec := range s.AdoptionInterests {
			if rec.ID == i.ID {
				s.AdoptionInterests[idx] = toInterestRecord(i)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ListByUser devuelve los intereses más recientes primero.
func (r *interestRepo) ListByUser(ctx context.Context, userID string) ([]adoption.Interest, error) {
	out := make([]adoption.Interest, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.AdoptionInterests {
			if rec.UserID == userID {
				out = append(out, fromInterestRecord(rec))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *interestRepo) ListByPet(ctx context.Context, petID string) ([]adoption.Interest, error) {
	out := make([]adoption.Interest, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.AdoptionInterests {
			if rec.PetID == petID {
				out = append(out, fromInterestRecord(rec))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
