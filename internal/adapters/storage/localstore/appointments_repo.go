package localstore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-platform/internal/domain/appointments"
)

type appointmentRepo struct {
	st *Store
}

func NewAppointmentRepo(st *Store) appointments.Repository {
	return &appointmentRepo{st: st}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for _, rec := range s.Appointments {
			if rec.ID == a.ID {
				return errors.New("appointment already exists")
			}
		}
		s.Appointments = append(s.Appointments, toAppointmentRecord(a))
		return nil
	})
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Appointments {
			if rec.ID == id {
				out = fromAppointmentRecord(rec)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	return r.st.mutate(func(s *schemaRecord) error {
		for i, rec := range s.Appointments {
			if rec.ID == a.ID {
				s.Appointments[i] = toAppointmentRecord(a)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ListByUser devuelve los turnos ascendente por (Date, Time); el formato
// ISO hace que el orden lexicográfico sea el cronológico.
func (r *appointmentRepo) ListByUser(ctx context.Context, userID string) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, 0)
	err := r.st.view(func(s schemaRecord) error {
		for _, rec := range s.Appointments {
			if rec.UserID == userID {
				out = append(out, fromAppointmentRecord(rec))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// DeleteByPet borra todos los turnos de la mascota. Sin turnos que borrar
// no es error: el cascade es idempotente.
func (r *appointmentRepo) DeleteByPet(ctx context.Context, petID string) error {
	if strings.TrimSpace(petID) == "" {
		return nil
	}
	return r.st.mutate(func(s *schemaRecord) error {
		kept := make([]appointmentRecord, 0, len(s.Appointments))
		for _, rec := range s.Appointments {
			if rec.PetID != petID {
				kept = append(kept, rec)
			}
		}
		s.Appointments = kept
		return nil
	})
}
