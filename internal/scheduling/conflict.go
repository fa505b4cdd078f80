package scheduling

import "time"

// Booking is the slice of an appointment the conflict check needs: when it
// starts, how long it runs, and whether it still occupies the trainer.
type Booking struct {
	ID              int
	Start           time.Time
	DurationMinutes int
	Cancelled       bool
}

func (b Booking) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// HasConflict reports whether a candidate window [start, start+duration)
// overlaps any non-cancelled booking. Intervals are half-open, so a booking
// ending exactly when the candidate starts does not conflict; back-to-back
// appointments are fine.
//
// excludeID skips one booking by ID so an edit can ignore the appointment
// being moved. Pass 0 to exclude nothing.
func HasConflict(start time.Time, durationMinutes int, existing []Booking, excludeID int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, b := range existing {
		if b.Cancelled {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Start.Before(end) && b.End().After(start) {
			return true
		}
	}
	return false
}
