package appointments

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
	ErrForbidden    = errors.New("forbidden")
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

type BookInput struct {
	PetID        string
	ProviderID   string
	ProviderName string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
}

func (s *Service) Book(ctx context.Context, userID string, in BookInput) (Appointment, error) {
	if strings.TrimSpace(userID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.ProviderName) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return Appointment{}, ErrInvalidInput
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return Appointment{}, ErrInvalidInput
	}

	now := s.now()
	a := Appointment{
		ID:           uuid.NewString(),
		UserID:       userID,
		PetID:        strings.TrimSpace(in.PetID),
		ProviderID:   strings.TrimSpace(in.ProviderID),
		ProviderName: strings.TrimSpace(in.ProviderName),
		Date:         in.Date,
		Time:         in.Time,
		Status:       StatusScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus es el único patch parcial del sistema: solo cambia status.
func (s *Service) UpdateStatus(ctx context.Context, id, actorID string, status Status) (Appointment, error) {
	if !ValidStatus(status) {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}
	if a.UserID != actorID {
		return Appointment{}, ErrForbidden
	}

	a.Status = status
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// DeleteByPet implementa pets.AppointmentPurger.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}
