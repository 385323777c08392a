package adoption

import "time"

// Status define el estado de un interés de adopción.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Interest registra que un usuario quiere adoptar una mascota.
// NO se borra al eliminar la mascota: queda huérfano y solo listable.
type Interest struct {
	ID     string
	UserID string
	PetID  string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
