package appointment

import (
	"context"
	"errors"
	"time"

	"fitbook/internal/catalog"
	"fitbook/internal/email"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"
	"fitbook/internal/scheduling"
	"fitbook/internal/trainer"
	"fitbook/internal/user"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrTrainerNotFound     = errors.New("trainer not found")
	ErrTrainerNotQualified = errors.New("trainer does not offer this service")
	ErrPastStart           = errors.New("cannot book in the past")
	ErrOutsideWorkingHours = errors.New("requested time is outside the trainer's working hours")
	ErrForbidden           = errors.New("not allowed")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

type Service interface {
	Book(ctx context.Context, actorID int, actorRole string, req CreateAppointmentRequest) (*Appointment, error)
	List(ctx context.Context, actorID int, actorRole string, q ListQuery) ([]AppointmentDetails, error)
	Cancel(ctx context.Context, actorID int, actorRole string, id int) (*Appointment, error)
	Approve(ctx context.Context, id int) (*Appointment, error)
	Complete(ctx context.Context, id int) (*Appointment, error)
	Stats(ctx context.Context) (*Stats, error)

	// Slots lists the "HH:MM" starts on date at which the trainer could take
	// an appointment for the service. Unknown trainer or service yields an
	// empty list, not an error.
	Slots(ctx context.Context, trainerID, serviceID int, date, now time.Time) ([]string, error)

	// AvailableTrainers lists trainers qualified for the service and free at
	// the given instant, ordered by last name, first name, ID.
	AvailableTrainers(ctx context.Context, serviceID int, at time.Time) ([]trainer.Trainer, error)
}

type service struct {
	repo         Repository
	catalogRepo  catalog.Repository
	trainerRepo  trainer.Repository
	userRepo     user.Repository
	emailService *email.Service
	slotStep     int
}

func NewService(
	repo Repository,
	catalogRepo catalog.Repository,
	trainerRepo trainer.Repository,
	userRepo user.Repository,
	emailService *email.Service,
	slotStepMinutes int,
) Service {
	if slotStepMinutes <= 0 {
		slotStepMinutes = scheduling.DefaultSlotStepMinutes
	}
	return &service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		trainerRepo:  trainerRepo,
		userRepo:     userRepo,
		emailService: emailService,
		slotStep:     slotStepMinutes,
	}
}

func (s *service) Book(ctx context.Context, actorID int, actorRole string, req CreateAppointmentRequest) (*Appointment, error) {
	if req.StartsAt.Before(time.Now()) {
		return nil, ErrPastStart
	}

	svc, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	tr, err := s.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		return nil, ErrTrainerNotFound
	}

	serviceIDs, err := s.trainerRepo.GetExpertise(ctx, tr.ID)
	if err != nil {
		return nil, err
	}
	if !containsInt(serviceIDs, svc.ID) {
		return nil, ErrTrainerNotQualified
	}

	schedule, bookings, err := s.snapshot(ctx, tr.ID, req.StartsAt)
	if err != nil {
		return nil, err
	}
	if !scheduling.IsAvailable(schedule, bookings, req.StartsAt, svc.DurationMinutes, 0) {
		if scheduling.HasConflict(req.StartsAt, svc.DurationMinutes, bookings, 0) {
			metrics.RecordBookingConflict()
			return nil, ErrSlotTaken
		}
		return nil, ErrOutsideWorkingHours
	}

	memberID := actorID
	status := StatusPending
	if actorRole == "admin" {
		status = StatusConfirmed
		if req.MemberID != 0 {
			memberID = req.MemberID
		}
	}

	appt, err := s.repo.Create(ctx, &Appointment{
		MemberID:        memberID,
		TrainerID:       tr.ID,
		ServiceID:       svc.ID,
		StartsAt:        req.StartsAt,
		DurationMinutes: svc.DurationMinutes,
		PriceCents:      svc.PriceCents,
		Status:          status,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	metrics.RecordAppointment(appt.Status)
	s.notifyConfirmation(ctx, appt, svc.Name, tr.FullName())

	return appt, nil
}

func (s *service) snapshot(ctx context.Context, trainerID int, day time.Time) (scheduling.WeekSchedule, []scheduling.Booking, error) {
	rows, err := s.trainerRepo.GetWorkingHours(ctx, trainerID)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.repo.GetTrainerBookingsOn(ctx, trainerID, day)
	if err != nil {
		return nil, nil, err
	}
	return trainer.BuildSchedule(rows), bookings, nil
}

func (s *service) List(ctx context.Context, actorID int, actorRole string, q ListQuery) ([]AppointmentDetails, error) {
	filter := resolveFilter(q, time.Now())
	if actorRole == "admin" {
		return s.repo.ListAll(ctx, filter)
	}
	return s.repo.ListForMember(ctx, actorID, filter)
}

// resolveFilter turns the named window into a concrete time range.
func resolveFilter(q ListQuery, now time.Time) ListFilter {
	f := ListFilter{Status: q.Status, Search: q.Search}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch q.Window {
	case "today":
		dayEnd := dayStart.AddDate(0, 0, 1)
		f.From, f.To = &dayStart, &dayEnd
	case "week":
		weekEnd := dayStart.AddDate(0, 0, 7)
		f.From, f.To = &dayStart, &weekEnd
	case "month":
		monthEnd := dayStart.AddDate(0, 1, 0)
		f.From, f.To = &dayStart, &monthEnd
	case "past":
		f.To = &now
	case "upcoming":
		f.From = &now
	}
	return f
}

func (s *service) Cancel(ctx context.Context, actorID int, actorRole string, id int) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	if actorRole != "admin" && appt.MemberID != actorID {
		return nil, ErrForbidden
	}
	if appt.Status == StatusCompleted {
		return nil, ErrInvalidTransition
	}
	if appt.Status == StatusCancelled {
		return appt, nil
	}

	cancelled, err := s.repo.UpdateStatus(ctx, id, StatusCancelled)
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition(StatusCancelled)
	s.notifyCancellation(ctx, cancelled)

	return cancelled, nil
}

func (s *service) Approve(ctx context.Context, id int) (*Appointment, error) {
	return s.transition(ctx, id, StatusPending, StatusConfirmed)
}

func (s *service) Complete(ctx context.Context, id int) (*Appointment, error) {
	return s.transition(ctx, id, StatusConfirmed, StatusCompleted)
}

func (s *service) transition(ctx context.Context, id int, from, to string) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.Status != from {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition(to)
	return updated, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *service) Slots(ctx context.Context, trainerID, serviceID int, date, now time.Time) ([]string, error) {
	metrics.RecordSlotQuery()

	svc, err := s.catalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return []string{}, nil
	}
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		return []string{}, nil
	}

	schedule, bookings, err := s.snapshot(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	slots := scheduling.AvailableSlots(schedule, bookings, date, svc.DurationMinutes, now, s.slotStep)
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.String())
	}
	return out, nil
}

func (s *service) AvailableTrainers(ctx context.Context, serviceID int, at time.Time) ([]trainer.Trainer, error) {
	metrics.RecordTrainerSearch()

	svc, err := s.catalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return []trainer.Trainer{}, nil
	}

	qualified, err := s.trainerRepo.GetQualifiedFor(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]trainer.Trainer, len(qualified))
	candidates := make([]scheduling.Candidate, 0, len(qualified))
	for _, tr := range qualified {
		schedule, bookings, err := s.snapshot(ctx, tr.ID, at)
		if err != nil {
			return nil, err
		}
		byID[tr.ID] = tr
		candidates = append(candidates, scheduling.Candidate{
			Trainer:  scheduling.TrainerRef{ID: tr.ID, FirstName: tr.FirstName, LastName: tr.LastName},
			Hours:    schedule,
			Bookings: bookings,
		})
	}

	refs := scheduling.AvailableTrainers(candidates, at, svc.DurationMinutes)
	available := make([]trainer.Trainer, 0, len(refs))
	for _, ref := range refs {
		available = append(available, byID[ref.ID])
	}
	return available, nil
}

func (s *service) notifyConfirmation(ctx context.Context, appt *Appointment, serviceName, trainerName string) {
	member, err := s.userRepo.FindByID(ctx, appt.MemberID)
	if err != nil {
		logger.Errorf("Failed to load member %d for confirmation email: %v", appt.MemberID, err)
		return
	}
	s.emailService.SendAppointmentConfirmation(ctx, member.Email, member.Name, serviceName, trainerName, appt.StartsAt)
}

func (s *service) notifyCancellation(ctx context.Context, appt *Appointment) {
	member, err := s.userRepo.FindByID(ctx, appt.MemberID)
	if err != nil {
		logger.Errorf("Failed to load member %d for cancellation email: %v", appt.MemberID, err)
		return
	}

	serviceName := "Appointment"
	if svc, err := s.catalogRepo.GetByID(ctx, appt.ServiceID); err == nil {
		serviceName = svc.Name
	}
	trainerName := ""
	if tr, err := s.trainerRepo.GetByID(ctx, appt.TrainerID); err == nil {
		trainerName = tr.FullName()
	}

	s.emailService.SendAppointmentCancellation(ctx, member.Email, member.Name, serviceName, trainerName, appt.StartsAt)
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
