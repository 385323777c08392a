package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	Update(ctx context.Context, a Appointment) error
	// ListByUser devuelve los turnos ordenados ascendente por (Date, Time).
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	// DeleteByPet borra todos los turnos de una mascota (cascade de pets).
	DeleteByPet(ctx context.Context, petID string) error
}
