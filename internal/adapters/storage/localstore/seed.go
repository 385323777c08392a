package localstore

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Password del usuario demo. Solo existe para entornos de dev/demo.
const seedUserPassword = "123456"

// seedSchema arma el dataset inicial: un usuario demo con dos mascotas,
// ONGs de ejemplo, un turno que referencia a pet-1 y sin intereses.
// Los IDs fijos (u1, pet-1, pet-2, apt-1) son parte del contrato del seed.
func seedSchema(now time.Time) schemaRecord {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt solo falla con costos inválidos; acá es constante.
		panic(err)
	}

	demoLoc := &latLngRecord{Lat: -23.5505, Lng: -46.6333}

	return schemaRecord{
		SchemaVersion: SchemaVersion,
		Users: []userRecord{
			{
				ID:           "u1",
				Name:         "Demo User",
				Email:        "demo@petcare.local",
				PasswordHash: string(hash),
				Phone:        "+55 11 99999-0000",
				Plan:         "basic",
				Location:     demoLoc,
				Favorites:    []string{},
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		Pets: []petRecord{
			{
				ID:        "pet-1",
				OwnerID:   "u1",
				Name:      "Rex",
				Breed:     "labrador",
				Age:       3,
				Weight:    28.5,
				Type:      "dog",
				Bio:       "Loves long walks and stealing socks.",
				Vaccines:  []vaccineRecord{},
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:        "pet-2",
				OwnerID:   "u1",
				Name:      "Mia",
				Breed:     "siamese",
				Age:       2,
				Weight:    4.2,
				Type:      "cat",
				Bio:       "Professional sunbeam hunter.",
				Vaccines:  []vaccineRecord{},
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Ongs: []ongRecord{
			{
				ID:          "ong-1",
				Name:        "Patas Felizes",
				Description: "Refugio y adopción responsable.",
				Location:    "São Paulo, SP",
				Phone:       "+55 11 98888-1111",
				PixKey:      "patasfelizes@pix.local",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          "ong-2",
				Name:        "Amigos de Rua",
				Description: "Rescate de animales en situación de calle.",
				Location:    "Rio de Janeiro, RJ",
				Phone:       "+55 21 97777-2222",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		Appointments: []appointmentRecord{
			{
				ID:           "apt-1",
				UserID:       "u1",
				PetID:        "pet-1",
				ProviderID:   "vet-1",
				ProviderName: "Clínica VetCenter",
				Date:         now.AddDate(0, 0, 7).Format("2006-01-02"),
				Time:         "10:00",
				Status:       "scheduled",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		AdoptionInterests: []interestRecord{},
	}
}
