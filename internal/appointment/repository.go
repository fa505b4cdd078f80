package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fitbook/internal/scheduling"
)

// ErrSlotTaken means the requested interval is already held by a
// non-cancelled appointment for the trainer.
var ErrSlotTaken = errors.New("time slot already taken")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const appointmentColumns = `id, member_id, trainer_id, service_id, starts_at, duration_minutes, price_cents, status, notes, created_at`

func (r *repository) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Serialize bookings per trainer for the rest of the transaction so the
	// overlap re-check below cannot race a concurrent insert.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, a.TrainerID); err != nil {
		return nil, err
	}

	var taken bool
	err = tx.GetContext(ctx, &taken, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE trainer_id = $1
			  AND status <> 'cancelled'
			  AND starts_at < $3
			  AND starts_at + (duration_minutes || ' minutes')::interval > $2
		)
	`, a.TrainerID, a.StartsAt, a.EndsAt())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	var created Appointment
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO appointments (member_id, trainer_id, service_id, starts_at, duration_minutes, price_cents, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+appointmentColumns,
		a.MemberID, a.TrainerID, a.ServiceID, a.StartsAt, a.DurationMinutes, a.PriceCents, a.Status, a.Notes,
	).StructScan(&created)
	if err != nil {
		// 23P01: the exclusion constraint caught an overlap the lock did not.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23P01" {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	var a Appointment
	err := r.db.GetContext(ctx, &a,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const detailsQuery = `
	SELECT a.id, a.member_id, a.trainer_id, a.service_id, a.starts_at,
	       a.duration_minutes, a.price_cents, a.status, a.notes, a.created_at,
	       u.name AS member_name,
	       t.first_name || ' ' || t.last_name AS trainer_name,
	       s.name AS service_name
	FROM appointments a
	JOIN users u ON u.id = a.member_id
	JOIN trainers t ON t.id = a.trainer_id
	JOIN services s ON s.id = a.service_id
`

func (f ListFilter) apply(where []string, args []interface{}) ([]string, []interface{}) {
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("a.starts_at >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("a.starts_at < $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(t.first_name || ' ' || t.last_name ILIKE $%d OR s.name ILIKE $%d OR a.notes ILIKE $%d)", n, n, n))
	}
	return where, args
}

func (r *repository) ListForMember(ctx context.Context, memberID int, f ListFilter) ([]AppointmentDetails, error) {
	where := []string{"a.member_id = $1"}
	args := []interface{}{memberID}
	where, args = f.apply(where, args)

	return r.list(ctx, where, args)
}

func (r *repository) ListAll(ctx context.Context, f ListFilter) ([]AppointmentDetails, error) {
	where, args := f.apply(nil, nil)
	return r.list(ctx, where, args)
}

func (r *repository) list(ctx context.Context, where []string, args []interface{}) ([]AppointmentDetails, error) {
	query := detailsQuery
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY a.starts_at DESC"

	var appointments []AppointmentDetails
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*Appointment, error) {
	var a Appointment
	err := r.db.GetContext(ctx, &a, `
		UPDATE appointments SET status = $2 WHERE id = $1
		RETURNING `+appointmentColumns,
		id, status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.GetContext(ctx, &s, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending')   AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
			COUNT(*) FILTER (WHERE status IN ('pending', 'confirmed') AND starts_at > now()) AS upcoming,
			COALESCE(SUM(price_cents) FILTER (WHERE status = 'completed'), 0) AS revenue_cents
		FROM appointments
	`)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetTrainerBookingsOn(ctx context.Context, trainerID int, day time.Time) ([]scheduling.Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows := []struct {
		ID              int       `db:"id"`
		StartsAt        time.Time `db:"starts_at"`
		DurationMinutes int       `db:"duration_minutes"`
		Status          string    `db:"status"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, starts_at, duration_minutes, status
		FROM appointments
		WHERE trainer_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at ASC
	`, trainerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	bookings := make([]scheduling.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, scheduling.Booking{
			ID:              row.ID,
			Start:           row.StartsAt,
			DurationMinutes: row.DurationMinutes,
			Cancelled:       row.Status == StatusCancelled,
		})
	}
	return bookings, nil
}
