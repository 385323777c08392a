package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-platform/internal/domain/adoption"
)

type interestRepo struct {
	mu   sync.RWMutex
	byID map[string]adoption.Interest
}

func NewInterestRepo() adoption.Repository {
	return &interestRepo{
		byID: make(map[string]adoption.Interest),
	}
}

func (r *interestRepo) Create(ctx context.Context, i adoption.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(i.ID) == "" {
		return errors.New("interest id required")
	}
	if _, exists := r.byID[i.ID]; exists {
		return errors.New("interest already exists")
	}
	r.byID[i.ID] = i
	return nil
}

func (r *interestRepo) GetByID(ctx context.Context, id string) (adoption.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return adoption.Interest{}, ErrNotFound
	}
	return i, nil
}

func (r *interestRepo) Update(ctx context.Context, i adoption.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(i.ID) == "" {
		return errors.New("interest id required")
	}
	if _, exists := r.byID[i.ID]; !exists {
		return ErrNotFound
	}
	r.byID[i.ID] = i
	return nil
}

func (r *interestRepo) ListByUser(ctx context.Context, userID string) ([]adoption.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoption.Interest, 0)
	for _, i := range r.byID {
		if i.UserID == userID {
			out = append(out, i)
		}
	}

	// Más recientes primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *interestRepo) ListByPet(ctx context.Context, petID string) ([]adoption.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoption.Interest, 0)
	for _, i := range r.byID {
		if i.PetID == petID {
			out = append(out, i)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
