package trainer

import "time"

type Trainer struct {
	ID        int       `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Bio       string    `db:"bio" json:"bio"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (t Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

// WorkingHoursRow is one recurring weekly window. A trainer is expected to
// have at most one row per weekday; reads order by (day_of_week, id) so a
// duplicate-day anomaly always resolves to the lowest-ID row.
type WorkingHoursRow struct {
	ID        int    `db:"id" json:"id"`
	TrainerID int    `db:"trainer_id" json:"trainer_id"`
	DayOfWeek int    `db:"day_of_week" json:"day_of_week"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

// TrainerDetails is a trainer with schedule and qualifications attached.
type TrainerDetails struct {
	Trainer
	WorkingHours []WorkingHoursRow `json:"working_hours"`
	ServiceIDs   []int             `json:"service_ids"`
}

type CreateTrainerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Phone     string `json:"phone" binding:"max=20"`
	Bio       string `json:"bio" binding:"max=500"`
}

type UpdateTrainerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Phone     string `json:"phone" binding:"max=20"`
	Bio       string `json:"bio" binding:"max=500"`
}

type SetWorkingHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SetExpertiseRequest struct {
	ServiceIDs []int `json:"service_ids" binding:"required"`
}
