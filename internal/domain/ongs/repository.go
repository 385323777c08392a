package ongs

import "context"

type Repository interface {
	Create(ctx context.Context, o Ong) error
	GetByID(ctx context.Context, id string) (Ong, error)
	Update(ctx context.Context, o Ong) error
	ListAll(ctx context.Context) ([]Ong, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Ong, error)
}
