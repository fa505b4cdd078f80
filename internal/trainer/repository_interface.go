package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, firstName, lastName, email, phone, bio string) (*Trainer, error)
	GetAll(ctx context.Context) ([]Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	Update(ctx context.Context, id int, firstName, lastName, email, phone, bio string) (*Trainer, error)
	Delete(ctx context.Context, id int) error

	GetWorkingHours(ctx context.Context, trainerID int) ([]WorkingHoursRow, error)
	ReplaceWorkingHours(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (*WorkingHoursRow, error)
	DeleteWorkingHours(ctx context.Context, trainerID, dayOfWeek int) error

	GetExpertise(ctx context.Context, trainerID int) ([]int, error)
	ReplaceExpertise(ctx context.Context, trainerID int, serviceIDs []int) error
	GetQualifiedFor(ctx context.Context, serviceID int) ([]Trainer, error)
}
