package scheduling

import "time"

// DefaultSlotStepMinutes is the default spacing between candidate slot
// starts. Overridable through config; the requested duration never changes
// the grid.
const DefaultSlotStepMinutes = 30

// AvailableSlots returns the start times on day at which an appointment of
// durationMinutes would fit: inside working hours, clear of the given
// bookings, and strictly after now when day is today. Past days produce no
// slots. Results are in ascending order.
//
// now is passed in rather than read from the wall clock so callers control
// the as-of instant.
func AvailableSlots(schedule WeekSchedule, bookings []Booking, day time.Time, durationMinutes int, now time.Time, stepMinutes int) []TimeOfDay {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return nil
	}

	wh, ok := schedule.For(day.Weekday())
	if !ok {
		return nil
	}

	nowLocal := now.In(day.Location())
	if pastDay(day, nowLocal) {
		return nil
	}
	today := sameDay(day, nowLocal)
	nowClock := FromClock(nowLocal)

	var slots []TimeOfDay
	for cur := wh.Start; cur.Add(durationMinutes) <= wh.End; cur = cur.Add(stepMinutes) {
		if today && cur <= nowClock {
			continue
		}
		if HasConflict(cur.At(day), durationMinutes, bookings, 0) {
			continue
		}
		slots = append(slots, cur)
	}
	return slots
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func pastDay(day, now time.Time) bool {
	dy, dm, dd := day.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}
