package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	// ListAll alimenta adopción y dating; el filtrado es lineal.
	ListAll(ctx context.Context) ([]Pet, error)
}
