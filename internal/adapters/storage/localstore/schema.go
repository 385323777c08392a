package localstore

import (
	"time"

	"pet-care-platform/internal/domain/adoption"
	"pet-care-platform/internal/domain/appointments"
	"pet-care-platform/internal/domain/ongs"
	"pet-care-platform/internal/domain/pets"
	"pet-care-platform/internal/domain/users"
)

// SchemaVersion actual del blob persistido.
// v1: users + pets. v2: + ongs. v3: + appointments + adoptionInterests.
// La versión viaja como tag explícito en el blob, no se infiere por
// presencia de campos.
const SchemaVersion = 3

// schemaRecord es el blob completo tal cual se serializa.
// Un registro sin schemaVersion (0) se trata como v1 legacy.
type schemaRecord struct {
	SchemaVersion     int                 `json:"schemaVersion"`
	Users             []userRecord        `json:"users"`
	Pets              []petRecord         `json:"pets"`
	Ongs              []ongRecord         `json:"ongs"`
	Appointments      []appointmentRecord `json:"appointments"`
	AdoptionInterests []interestRecord    `json:"adoptionInterests"`
}

type latLngRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type userRecord struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"passwordHash"`
	Phone        string        `json:"phone"`
	Image        string        `json:"image"`
	Plan         string        `json:"plan"`
	Location     *latLngRecord `json:"location,omitempty"`
	Favorites    []string      `json:"favorites"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type vaccineRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
}

type petRecord struct {
	ID                 string          `json:"id"`
	OwnerID            string          `json:"ownerId"`
	Name               string          `json:"name"`
	Breed              string          `json:"breed"`
	Age                int             `json:"age"`
	Weight             float64         `json:"weight"`
	Type               string          `json:"type"`
	Image              string          `json:"image"`
	Bio                string          `json:"bio"`
	Vaccines           []vaccineRecord `json:"vaccines"`
	AvailableForDating bool            `json:"availableForDating"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type ongRecord struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Phone       string    `json:"phone"`
	Image       string    `json:"image"`
	PixKey      string    `json:"pixKey,omitempty"`
	BankInfo    string    `json:"bankInfo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type appointmentRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	PetID        string    `json:"petId"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type interestRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PetID     string    `json:"petId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ---- mapeos dominio <-> record ----

func toUserRecord(u users.User) userRecord {
	var loc *latLngRecord
	if u.Location != nil {
		loc = &latLngRecord{Lat: u.Location.Lat, Lng: u.Location.Lng}
	}
	favs := u.Favorites
	if favs == nil {
		favs = []string{}
	}
	return userRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Image:        u.Image,
		Plan:         string(u.Plan),
		Location:     loc,
		Favorites:    favs,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserRecord(r userRecord) users.User {
	var loc *users.LatLng
	if r.Location != nil {
		loc = &users.LatLng{Lat: r.Location.Lat, Lng: r.Location.Lng}
	}
	plan := users.Plan(r.Plan)
	if plan == "" {
		// Registros legacy anteriores a planes: default basic.
		plan = users.PlanBasic
	}
	favs := r.Favorites
	if favs == nil {
		favs = []string{}
	}
	return users.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Phone:        r.Phone,
		Image:        r.Image,
		Plan:         plan,
		Location:     loc,
		Favorites:    favs,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toPetRecord(p pets.Pet) petRecord {
	vaccines := make([]vaccineRecord, 0, len(p.Vaccines))
	for _, v := range p.Vaccines {
		vaccines = append(vaccines, vaccineRecord(v))
	}
	return petRecord{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		Breed:              p.Breed,
		Age:                p.Age,
		Weight:             p.Weight,
		Type:               string(p.Type),
		Image:              p.Image,
		Bio:                p.Bio,
		Vaccines:           vaccines,
		AvailableForDating: p.AvailableForDating,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func fromPetRecord(r petRecord) pets.Pet {
	vaccines := make([]pets.Vaccine, 0, len(r.Vaccines))
	for _, v := range r.Vaccines {
		vaccines = append(vaccines, pets.Vaccine(v))
	}
	return pets.Pet{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Name:               r.Name,
		Breed:              r.Breed,
		Age:                r.Age,
		Weight:             r.Weight,
		Type:               pets.Type(r.Type),
		Image:              r.Image,
		Bio:                r.Bio,
		Vaccines:           vaccines,
		AvailableForDating: r.AvailableForDating,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func toOngRecord(o ongs.Ong) ongRecord {
	return ongRecord{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		Name:        o.Name,
		Description: o.Description,
		Location:    o.Location,
		Phone:       o.Phone,
		Image:       o.Image,
		PixKey:      o.PixKey,
		BankInfo:    o.BankInfo,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func fromOngRecord(r ongRecord) ongs.Ong {
	return ongs.Ong{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Phone:       r.Phone,
		Image:       r.Image,
		PixKey:      r.PixKey,
		BankInfo:    r.BankInfo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAppointmentRecord(a appointments.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:           a.ID,
		UserID:       a.UserID,
		PetID:        a.PetID,
		ProviderID:   a.ProviderID,
		ProviderName: a.ProviderName,
		Date:         a.Date,
		Time:         a.Time,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func fromAppointmentRecord(r appointmentRecord) appointments.Appointment {
	status := appointments.Status(r.Status)
	if status == "" {
		status = appointments.StatusScheduled
	}
	return appointments.Appointment{
		ID:           r.ID,
		UserID:       r.UserID,
		PetID:        r.PetID,
		ProviderID:   r.ProviderID,
		ProviderName: r.ProviderName,
		Date:         r.Date,
		Time:         r.Time,
		Status:       status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toInterestRecord(i adoption.Interest) interestRecord {
	return interestRecord{
		ID:        i.ID,
		UserID:    i.UserID,
		PetID:     i.PetID,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func fromInterestRecord(r interestRecord) adoption.Interest {
	status := adoption.Status(r.Status)
	if status == "" {
		status = adoption.StatusPending
	}
	return adoption.Interest{
		ID:        r.ID,
		UserID:    r.UserID,
		PetID:     r.PetID,
		Status:    status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
