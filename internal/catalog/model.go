package catalog

import "time"

// Service is a bookable offering. Appointments copy its duration and price at
// booking time; later edits never touch existing appointments.
type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Type            string    `db:"type" json:"type"`
	Description     string    `db:"description" json:"description"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

const (
	TypeFitness = "fitness"
	TypeYoga    = "yoga"
	TypePilates = "pilates"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Type            string `json:"type" binding:"required,oneof=fitness yoga pilates"`
	Description     string `json:"description" binding:"max=500"`
	PriceCents      int64  `json:"price_cents" binding:"required,gt=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Type            string `json:"type" binding:"required,oneof=fitness yoga pilates"`
	Description     string `json:"description" binding:"max=500"`
	PriceCents      int64  `json:"price_cents" binding:"required,gt=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}
