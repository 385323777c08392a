package appointments

import "time"

// Status define el estado de un turno.
// @Enum scheduled, confirmed, done, cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment es un turno con un proveedor de servicios
// (veterinaria, peluquería, hotel).
type Appointment struct {
	ID     string
	UserID string
	PetID  string

	ProviderID   string
	ProviderName string

	// Date en formato YYYY-MM-DD y Time en HH:MM, como los maneja la UI.
	// El orden lexicográfico de (Date, Time) coincide con el cronológico.
	Date string
	Time string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
