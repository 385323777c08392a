package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-platform/internal/domain/ongs"
)

type ongRepo struct {
	mu   sync.RWMutex
	byID map[string]ongs.Ong
}

func NewOngRepo() ongs.Repository {
	return &ongRepo{
		byID: make(map[string]ongs.Ong),
	}
}

func (r *ongRepo) Create(ctx context.Context, o ongs.Ong) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("ong id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("ong already exists")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ongRepo) GetByID(ctx context.Context, id string) (ongs.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return ongs.Ong{}, ErrNotFound
	}
	return o, nil
}

func (r *ongRepo) Update(ctx context.Context, o ongs.Ong) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("ong id required")
	}
	if _, exists := r.byID[o.ID]; !exists {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ongRepo) ListAll(ctx context.Context) ([]ongs.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ongs.Ong, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *ongRepo) ListByOwner(ctx context.Context, ownerID string) ([]ongs.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ongs.Ong, 0)
	if strings.TrimSpace(ownerID) == "" {
		return out, nil
	}
	for _, o := range r.byID {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
