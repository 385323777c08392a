package users

import "time"

// Plan define los planes de suscripción soportados.
// @Enum basic, start, premium
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanStart   Plan = "start"
	PlanPremium Plan = "premium"
)

// ValidPlan reporta si el plan es uno de los soportados.
func ValidPlan(p Plan) bool {
	switch p {
	case PlanBasic, PlanStart, PlanPremium:
		return true
	default:
		return false
	}
}

// LatLng es una coordenada simple (la UI la usa para distancias).
type LatLng struct {
	Lat float64
	Lng float64
}

// User representa una cuenta de la plataforma.
type User struct {
	ID    string
	Name  string
	Email string

	// PasswordHash guarda bcrypt del password. Nunca texto plano.
	PasswordHash string

	Phone string
	Image string

	Plan     Plan
	Location *LatLng

	// Favorites son IDs de mascotas marcadas como favoritas (semántica de set).
	Favorites []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFavorite reporta si petID está en favoritos.
func (u User) HasFavorite(petID string) bool {
	for _, id := range u.Favorites {
		if id == petID {
			return true
		}
	}
	return false
}
