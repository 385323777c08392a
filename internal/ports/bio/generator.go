package bio

import "context"

// Request describe la mascota para la que se quiere generar una bio.
type Request struct {
	Name     string
	Breed    string
	Traits   string
	Language string
}

// Generator genera una bio de mascota en texto libre.
// Implementaciones NUNCA deberían fallar hacia el caller: ante upstream
// caído o credenciales ausentes devuelven un texto fijo de fallback.
type Generator interface {
	Generate(ctx context.Context, in Request) (string, error)
}
