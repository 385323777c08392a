package pets

import "time"

// Type define los tipos de mascota soportados.
// @Enum dog, cat, bird, other
type Type string

const (
	TypeDog   Type = "dog"
	TypeCat   Type = "cat"
	TypeBird  Type = "bird"
	TypeOther Type = "other"
)

func ValidType(t Type) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeOther:
		return true
	default:
		return false
	}
}

// Vaccine es un registro embebido en Pet, no una tabla propia.
type Vaccine struct {
	ID          string
	Name        string
	Date        time.Time
	NextDueDate *time.Time
}

// Pet representa el perfil de una mascota.
type Pet struct {
	ID      string
	OwnerID string

	Name  string
	Breed string
	Age   int
	// Weight en kg.
	Weight float64
	Type   Type

	Image string
	Bio   string

	Vaccines []Vaccine

	AvailableForDating bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
