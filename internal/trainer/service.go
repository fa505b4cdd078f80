package trainer

import (
	"context"
	"errors"
	"time"

	"fitbook/internal/scheduling"
)

var (
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrInvalidWorkingHour = errors.New("invalid working hours")
)

type Service interface {
	Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	GetAll(ctx context.Context) ([]Trainer, error)
	GetDetails(ctx context.Context, id int) (*TrainerDetails, error)
	Update(ctx context.Context, id int, req UpdateTrainerRequest) (*Trainer, error)
	Delete(ctx context.Context, id int) error

	SetWorkingHours(ctx context.Context, trainerID int, req SetWorkingHoursRequest) (*WorkingHoursRow, error)
	DeleteWorkingHours(ctx context.Context, trainerID, dayOfWeek int) error
	SetExpertise(ctx context.Context, trainerID int, req SetExpertiseRequest) error

	// WeekSchedule loads a trainer's working hours as a scheduling index.
	WeekSchedule(ctx context.Context, trainerID int) (scheduling.WeekSchedule, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	return s.repo.Create(ctx, req.FirstName, req.LastName, req.Email, req.Phone, req.Bio)
}

func (s *service) GetAll(ctx context.Context) ([]Trainer, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetDetails(ctx context.Context, id int) (*TrainerDetails, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTrainerNotFound
	}

	hours, err := s.repo.GetWorkingHours(ctx, id)
	if err != nil {
		return nil, err
	}

	serviceIDs, err := s.repo.GetExpertise(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TrainerDetails{
		Trainer:      *t,
		WorkingHours: hours,
		ServiceIDs:   serviceIDs,
	}, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainerRequest) (*Trainer, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrTrainerNotFound
	}
	return s.repo.Update(ctx, id, req.FirstName, req.LastName, req.Email, req.Phone, req.Bio)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrTrainerNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetWorkingHours(ctx context.Context, trainerID int, req SetWorkingHoursRequest) (*WorkingHoursRow, error) {
	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return nil, ErrTrainerNotFound
	}

	start, err := scheduling.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidWorkingHour
	}
	end, err := scheduling.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, ErrInvalidWorkingHour
	}
	if start >= end {
		return nil, ErrInvalidWorkingHour
	}

	return s.repo.ReplaceWorkingHours(ctx, trainerID, req.DayOfWeek, start.String(), end.String())
}

func (s *service) DeleteWorkingHours(ctx context.Context, trainerID, dayOfWeek int) error {
	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return ErrTrainerNotFound
	}
	return s.repo.DeleteWorkingHours(ctx, trainerID, dayOfWeek)
}

func (s *service) SetExpertise(ctx context.Context, trainerID int, req SetExpertiseRequest) error {
	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return ErrTrainerNotFound
	}
	return s.repo.ReplaceExpertise(ctx, trainerID, req.ServiceIDs)
}

func (s *service) WeekSchedule(ctx context.Context, trainerID int) (scheduling.WeekSchedule, error) {
	rows, err := s.repo.GetWorkingHours(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return BuildSchedule(rows), nil
}

// BuildSchedule converts stored rows into the scheduling index, dropping rows
// with malformed times. Rows arrive ordered by (day_of_week, id), so the
// index's first-row-wins policy keeps the lowest-ID row per day.
func BuildSchedule(rows []WorkingHoursRow) scheduling.WeekSchedule {
	hours := make([]scheduling.WorkingHours, 0, len(rows))
	for _, row := range rows {
		start, err := scheduling.ParseTimeOfDay(row.StartTime)
		if err != nil {
			continue
		}
		end, err := scheduling.ParseTimeOfDay(row.EndTime)
		if err != nil {
			continue
		}
		hours = append(hours, scheduling.WorkingHours{
			Day:   time.Weekday(row.DayOfWeek),
			Start: start,
			End:   end,
		})
	}
	return scheduling.BuildWeekSchedule(hours)
}
