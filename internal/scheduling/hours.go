package scheduling

import "time"

// WorkingHours is a recurring weekly availability window for a trainer.
// Start must be before End; windows never cross midnight.
type WorkingHours struct {
	Day   time.Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// WeekSchedule indexes working hours by weekday. A missing day means the
// trainer does not work that day.
type WeekSchedule map[time.Weekday]WorkingHours

// BuildWeekSchedule indexes rows by weekday, keeping the first row seen for
// each day. Callers feed rows ordered by row ID, so duplicate rows for the
// same day resolve deterministically to the lowest-ID row.
func BuildWeekSchedule(rows []WorkingHours) WeekSchedule {
	schedule := make(WeekSchedule, len(rows))
	for _, row := range rows {
		if _, ok := schedule[row.Day]; ok {
			continue
		}
		schedule[row.Day] = row
	}
	return schedule
}

// For returns the working hours for day, or ok=false if the trainer does not
// work that day.
func (s WeekSchedule) For(day time.Weekday) (WorkingHours, bool) {
	wh, ok := s[day]
	return wh, ok
}
