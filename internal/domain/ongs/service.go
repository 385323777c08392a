package ongs

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

type RegisterInput struct {
	Name        string
	Description string
	Location    string
	Phone       string
	Image       string
	PixKey      string
	BankInfo    string
}

// Register da de alta una ONG. ownerID puede venir vacío
// (alta administrativa / seed sin dueño reclamado).
func (s *Service) Register(ctx context.Context, ownerID string, in RegisterInput) (Ong, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Ong{}, ErrInvalidInput
	}

	now := s.now()
	o := Ong{
		ID:          uuid.NewString(),
		OwnerID:     strings.TrimSpace(ownerID),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Phone:       strings.TrimSpace(in.Phone),
		Image:       strings.TrimSpace(in.Image),
		PixKey:      strings.TrimSpace(in.PixKey),
		BankInfo:    strings.TrimSpace(in.BankInfo),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Ong{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Ong, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Ong, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Ong, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update reemplaza el registro completo. Solo el dueño puede editar;
// una ONG sin dueño no es editable por esta vía.
func (s *Service) Update(ctx context.Context, ongID, actorID string, in RegisterInput) (Ong, error) {
	current, err := s.repo.GetByID(ctx, ongID)
	if err != nil {
		return Ong{}, ErrNotFound
	}
	if current.OwnerID == "" || current.OwnerID != actorID {
		return Ong{}, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return Ong{}, ErrInvalidInput
	}

	updated := Ong{
		ID:          current.ID,
		OwnerID:     current.OwnerID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Phone:       strings.TrimSpace(in.Phone),
		Image:       strings.TrimSpace(in.Image),
		PixKey:      strings.TrimSpace(in.PixKey),
		BankInfo:    strings.TrimSpace(in.BankInfo),
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   s.now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Ong{}, err
	}
	return updated, nil
}
