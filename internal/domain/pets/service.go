package pets

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

// AppointmentPurger borra los turnos de una mascota al eliminarla.
// Definido acá para evitar ciclos de imports (pets <-> appointments).
type AppointmentPurger interface {
	DeleteByPet(ctx context.Context, petID string) error
}

type Service struct {
	repo   Repository
	purger AppointmentPurger // puede ser nil en tests
	now    func() time.Time
}

func NewService(repo Repository, purger AppointmentPurger) *Service {
	return &Service{
		repo:   repo,
		purger: purger,
		now:    time.Now,
	}
}

type VaccineInput struct {
	Name        string
	Date        time.Time
	NextDueDate *time.Time
}

type CreateInput struct {
	Name               string
	Breed              string
	Age                int
	Weight             float64
	Type               Type
	Image              string
	Bio                string
	Vaccines           []VaccineInput
	AvailableForDating bool
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:                 uuid.NewString(),
		OwnerID:            ownerID,
		Name:               strings.TrimSpace(in.Name),
		Breed:              strings.TrimSpace(in.Breed),
		Age:                in.Age,
		Weight:             in.Weight,
		Type:               in.Type,
		Image:              strings.TrimSpace(in.Image),
		Bio:                strings.TrimSpace(in.Bio),
		Vaccines:           buildVaccines(in.Vaccines),
		AvailableForDating: in.AvailableForDating,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListForAdoption devuelve todas las mascotas que no son del viewer.
func (s *Service) ListForAdoption(ctx context.Context, viewerID string) ([]Pet, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if p.OwnerID == viewerID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type UpdateInput struct {
	Name               string
	Breed              string
	Age                int
	Weight             float64
	Type               Type
	Image              string
	Bio                string
	Vaccines           []VaccineInput
	AvailableForDating bool
}

// Update reemplaza el registro completo (no hay patch parcial en este diseño).
func (s *Service) Update(ctx context.Context, petID string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	updated := Pet{
		ID:                 current.ID,
		OwnerID:            current.OwnerID,
		Name:               strings.TrimSpace(in.Name),
		Breed:              strings.TrimSpace(in.Breed),
		Age:                in.Age,
		Weight:             in.Weight,
		Type:               in.Type,
		Image:              strings.TrimSpace(in.Image),
		Bio:                strings.TrimSpace(in.Bio),
		Vaccines:           mergeVaccines(current.Vaccines, in.Vaccines),
		AvailableForDating: in.AvailableForDating,
		CreatedAt:          current.CreatedAt,
		UpdatedAt:          s.now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Pet{}, err
	}
	return updated, nil
}

// Delete borra la mascota y cascadea sus turnos.
// Los intereses de adopción que la referencian quedan intactos:
// sobreviven como huérfanos y su status deja de ser editable.
func (s *Service) Delete(ctx context.Context, petID string) error {
	if err := s.repo.Delete(ctx, petID); err != nil {
		return err
	}
	if s.purger != nil {
		if err := s.purger.DeleteByPet(ctx, petID); err != nil {
			return err
		}
	}
	return nil
}

func buildVaccines(in []VaccineInput) []Vaccine {
	out := make([]Vaccine, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v.Name) == "" || v.Date.IsZero() {
			continue
		}
		out = append(out, Vaccine{
			ID:          uuid.NewString(),
			Name:        strings.TrimSpace(v.Name),
			Date:        v.Date,
			NextDueDate: v.NextDueDate,
		})
	}
	return out
}

// mergeVaccines conserva IDs de vacunas cuyo (nombre, fecha) ya existía,
// para que un update completo no regenere identidades sin necesidad.
func mergeVaccines(current []Vaccine, in []VaccineInput) []Vaccine {
	out := make([]Vaccine, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v.Name) == "" || v.Date.IsZero() {
			continue
		}

		id := ""
		for _, c := range current {
			if c.Name == strings.TrimSpace(v.Name) && c.Date.Equal(v.Date) {
				id = c.ID
				break
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		out = append(out, Vaccine{
			ID:          id,
			Name:        strings.TrimSpace(v.Name),
			Date:        v.Date,
			NextDueDate: v.NextDueDate,
		})
	}
	return out
}
