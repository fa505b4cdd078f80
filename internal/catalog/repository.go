package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, svcType, description string, priceCents int64, durationMinutes int) (*Service, error) {
	query := `
		INSERT INTO services (name, type, description, price_cents, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, type, description, price_cents, duration_minutes, created_at
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, name, svcType, description, priceCents, durationMinutes)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, type, description, price_cents, duration_minutes, created_at
		FROM services
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, type, description, price_cents, duration_minutes, created_at
		FROM services
		WHERE id = $1
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Update(ctx context.Context, id int, name, svcType, description string, priceCents int64, durationMinutes int) (*Service, error) {
	query := `
		UPDATE services
		SET name = $2, type = $3, description = $4, price_cents = $5, duration_minutes = $6
		WHERE id = $1
		RETURNING id, name, type, description, price_cents, duration_minutes, created_at
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id, name, svcType, description, priceCents, durationMinutes)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}
