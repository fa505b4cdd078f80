package trainer

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

func (r *repository) Create(ctx context.Context, firstName, lastName, email, phone, bio string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (first_name, last_name, email, phone, bio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, phone, bio, created_at
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, firstName, lastName, email, phone, bio)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, bio, created_at
		FROM trainers
		ORDER BY last_name ASC, first_name ASC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, bio, created_at
		FROM trainers
		WHERE id = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) Update(ctx context.Context, id int, firstName, lastName, email, phone, bio string) (*Trainer, error) {
	query := `
		UPDATE trainers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, bio = $6
		WHERE id = $1
		RETURNING id, first_name, last_name, email, phone, bio, created_at
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id, firstName, lastName, email, phone, bio)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	return err
}

func (r *repository) GetWorkingHours(ctx context.Context, trainerID int) ([]WorkingHoursRow, error) {
	// Ordered by (day_of_week, id) so duplicate rows for one day resolve to
	// the lowest ID, matching the schedule index's first-row-wins policy.
	query := `
		SELECT id, trainer_id, day_of_week, start_time, end_time
		FROM trainer_working_hours
		WHERE trainer_id = $1
		ORDER BY day_of_week ASC, id ASC
	`

	var rows []WorkingHoursRow
	err := r.db.SelectContext(ctx, &rows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *repository) ReplaceWorkingHours(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (*WorkingHoursRow, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM trainer_working_hours WHERE trainer_id = $1 AND day_of_week = $2`,
		trainerID, dayOfWeek,
	)
	if err != nil {
		return nil, err
	}

	var row WorkingHoursRow
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO trainer_working_hours (trainer_id, day_of_week, start_time, end_time)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, trainer_id, day_of_week, start_time, end_time`,
		trainerID, dayOfWeek, startTime, endTime,
	).StructScan(&row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *repository) DeleteWorkingHours(ctx context.Context, trainerID, dayOfWeek int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM trainer_working_hours WHERE trainer_id = $1 AND day_of_week = $2`,
		trainerID, dayOfWeek,
	)
	return err
}

func (r *repository) GetExpertise(ctx context.Context, trainerID int) ([]int, error) {
	query := `
		SELECT service_id
		FROM trainer_expertises
		WHERE trainer_id = $1
		ORDER BY service_id ASC
	`

	var serviceIDs []int
	err := r.db.SelectContext(ctx, &serviceIDs, query, trainerID)
	if err != nil {
		return nil, err
	}

	return serviceIDs, nil
}

func (r *repository) ReplaceExpertise(ctx context.Context, trainerID int, serviceIDs []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM trainer_expertises WHERE trainer_id = $1`, trainerID)
	if err != nil {
		return err
	}

	for _, serviceID := range serviceIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO trainer_expertises (trainer_id, service_id) VALUES ($1, $2)`,
			trainerID, serviceID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetQualifiedFor(ctx context.Context, serviceID int) ([]Trainer, error) {
	query := `
		SELECT t.id, t.first_name, t.last_name, t.email, t.phone, t.bio, t.created_at
		FROM trainers t
		JOIN trainer_expertises te ON te.trainer_id = t.id
		WHERE te.service_id = $1
		ORDER BY t.last_name ASC, t.first_name ASC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query, serviceID)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}
