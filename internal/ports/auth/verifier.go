package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token de sesión para un usuario ya autenticado.
// Si no hay issuer configurado, los handlers devuelven token vacío (modo dev).
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}
