package scheduling

import (
	"sort"
	"time"
)

// TrainerRef identifies a trainer in finder results.
type TrainerRef struct {
	ID        int
	FirstName string
	LastName  string
}

func (t TrainerRef) FullName() string {
	return t.FirstName + " " + t.LastName
}

// Candidate pairs a trainer with the snapshot the availability check needs.
// Callers pre-filter candidates to trainers qualified for the requested
// service.
type Candidate struct {
	Trainer  TrainerRef
	Hours    WeekSchedule
	Bookings []Booking
}

// AvailableTrainers filters candidates down to those available for an
// appointment of durationMinutes starting at. Results are sorted by last
// name, first name, then ID (byte-wise compare), so equally available
// trainers always come back in the same order.
func AvailableTrainers(candidates []Candidate, at time.Time, durationMinutes int) []TrainerRef {
	var available []TrainerRef
	for _, c := range candidates {
		if IsAvailable(c.Hours, c.Bookings, at, durationMinutes, 0) {
			available = append(available, c.Trainer)
		}
	}

	sort.Slice(available, func(i, j int) bool {
		a, b := available[i], available[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.ID < b.ID
	})

	return available
}
