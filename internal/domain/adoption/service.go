package adoption

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Express registra interés de adopción con status pending.
// Si el usuario ya tiene un interés por esa mascota, lo devuelve tal cual
// (idempotente: un segundo Express del mismo par user/pet devuelve el existente).
func (s *Service) Express(ctx context.Context, userID, petID string) (Interest, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return Interest{}, ErrInvalidInput
	}

	// Sin la lista previa no podemos garantizar la idempotencia: la falla
	// del repo se propaga en vez de crear un posible duplicado.
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Interest{}, err
	}
	for _, i := range existing {
		if i.PetID == petID {
			return i, nil
		}
	}

	now := s.now()
	i := Interest{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return Interest{}, err
	}
	return i, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Interest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Interest, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Interest, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Interest, error) {
	if !ValidStatus(status) {
		return Interest{}, ErrInvalidInput
	}

	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Interest{}, ErrNotFound
	}

	i.Status = status
	i.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, i); err != nil {
		return Interest{}, err
	}
	return i, nil
}
