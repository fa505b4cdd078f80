package appointment

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID              int       `db:"id" json:"id"`
	MemberID        int       `db:"member_id" json:"member_id"`
	TrainerID       int       `db:"trainer_id" json:"trainer_id"`
	ServiceID       int       `db:"service_id" json:"service_id"`
	StartsAt        time.Time `db:"starts_at" json:"starts_at"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	Status          string    `db:"status" json:"status"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

func (a Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// AppointmentDetails is an appointment joined with display names for lists.
type AppointmentDetails struct {
	Appointment
	MemberName  string `db:"member_name" json:"member_name"`
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	ServiceName string `db:"service_name" json:"service_name"`
}

type CreateAppointmentRequest struct {
	TrainerID int       `json:"trainer_id" binding:"required"`
	ServiceID int       `json:"service_id" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	Notes     string    `json:"notes" binding:"max=500"`
	// MemberID is honored only for admin callers booking on behalf of a member.
	MemberID int `json:"member_id" binding:"omitempty"`
}

// ListQuery is the handler-level filter; the service resolves Window into a
// concrete time range before hitting the repository.
type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Window string `form:"window" binding:"omitempty,oneof=today week month past upcoming"`
	Search string `form:"search" binding:"max=100"`
}

// ListFilter is what the repository actually filters on.
type ListFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Search string
}

type Stats struct {
	Pending      int   `db:"pending" json:"pending"`
	Confirmed    int   `db:"confirmed" json:"confirmed"`
	Completed    int   `db:"completed" json:"completed"`
	Cancelled    int   `db:"cancelled" json:"cancelled"`
	Upcoming     int   `db:"upcoming" json:"upcoming"`
	RevenueCents int64 `db:"revenue_cents" json:"revenue_cents"`
}
