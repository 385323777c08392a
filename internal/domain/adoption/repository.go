package adoption

import "context"

type Repository interface {
	Create(ctx context.Context, i Interest) error
	GetByID(ctx context.Context, id string) (Interest, error)
	Update(ctx context.Context, i Interest) error
	// ListByUser devuelve los intereses ordenados descendente por CreatedAt.
	ListByUser(ctx context.Context, userID string) ([]Interest, error)
	ListByPet(ctx context.Context, petID string) ([]Interest, error)
}
