package appointment

import (
	"context"
	"time"

	"fitbook/internal/scheduling"
)

type Repository interface {
	// Create inserts the appointment under a per-trainer advisory lock,
	// re-checking for overlap inside the transaction. Returns ErrSlotTaken
	// when another appointment holds the interval.
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	ListForMember(ctx context.Context, memberID int, f ListFilter) ([]AppointmentDetails, error)
	ListAll(ctx context.Context, f ListFilter) ([]AppointmentDetails, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Appointment, error)
	Stats(ctx context.Context) (*Stats, error)

	// GetTrainerBookingsOn returns the trainer's appointments starting on the
	// given calendar day as conflict-check input. Cancelled rows are included
	// and flagged; the checker skips them.
	GetTrainerBookingsOn(ctx context.Context, trainerID int, day time.Time) ([]scheduling.Booking, error)
}
