package scheduling

import "time"

// IsAvailable reports whether a trainer with the given schedule and bookings
// can take an appointment of durationMinutes starting at start.
//
// Checks short-circuit in order: no working hours on that weekday, requested
// window outside the working hours, then conflicts with existing bookings.
// Pure decision over the snapshot; the commit-time guard lives in storage.
func IsAvailable(schedule WeekSchedule, bookings []Booking, start time.Time, durationMinutes int, excludeID int) bool {
	wh, ok := schedule.For(start.Weekday())
	if !ok {
		return false
	}

	reqStart := FromClock(start)
	reqEnd := reqStart.Add(durationMinutes)
	if reqStart < wh.Start || reqEnd > wh.End {
		return false
	}

	return !HasConflict(start, durationMinutes, bookings, excludeID)
}
