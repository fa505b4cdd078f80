package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, name, svcType, description string, priceCents int64, durationMinutes int) (*Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	Update(ctx context.Context, id int, name, svcType, description string, priceCents int64, durationMinutes int) (*Service, error)
	Delete(ctx context.Context, id int) error
}
