package ongs

import "time"

// Ong representa un refugio/ONG registrada en la plataforma.
// OwnerID es opcional: hay ONGs sembradas sin dueño reclamado.
type Ong struct {
	ID      string
	OwnerID string

	Name        string
	Description string
	Location    string
	Phone       string
	Image       string

	// Datos de donación, opcionales.
	PixKey   string
	BankInfo string

	CreatedAt time.Time
	UpdatedAt time.Time
}
