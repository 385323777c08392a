package users

import "context"

// Repository: cuando el usuario no existe, las implementaciones devuelven
// un error que matchea ErrNotFound (errors.Is); el resto son fallas del store.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	// GetByEmail hace match exacto (case-sensitive); no se normaliza el email.
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
}

// SessionStore persiste el usuario "logueado" del contexto actual.
// Es un registro aparte del snapshot principal.
type SessionStore interface {
	Get(ctx context.Context) (User, bool, error)
	Put(ctx context.Context, u User) error
	Clear(ctx context.Context) error
}
