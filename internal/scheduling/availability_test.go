package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-03-10 is a Monday.
func mondaySchedule(start, end TimeOfDay) WeekSchedule {
	return BuildWeekSchedule([]WorkingHours{
		{Day: time.Monday, Start: start, End: end},
	})
}

func TestIsAvailable_NoWorkingHoursForDay(t *testing.T) {
	schedule := BuildWeekSchedule([]WorkingHours{
		{Day: time.Tuesday, Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(17, 0)},
	})

	// Monday request, Tuesday-only schedule: unavailable even with zero bookings.
	assert.False(t, IsAvailable(schedule, nil, at(10, 0), 60, 0))
}

func TestIsAvailable_WorkingHoursGate(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0))

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"inside hours", at(10, 0), 60, true},
		{"starts before opening", at(8, 30), 60, false},
		{"runs past closing", at(16, 30), 60, false},
		{"exactly fills the day", at(9, 0), 480, true},
		{"ends exactly at closing", at(16, 0), 60, true},
		{"entirely outside hours", at(20, 0), 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(schedule, nil, tt.start, tt.duration, 0))
		})
	}
}

func TestIsAvailable_DelegatesToConflictCheck(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0))
	bookings := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60}}

	assert.False(t, IsAvailable(schedule, bookings, at(10, 30), 60, 0))
	assert.True(t, IsAvailable(schedule, bookings, at(11, 0), 60, 0))

	// Editing booking 1 in place ignores its own interval.
	assert.True(t, IsAvailable(schedule, bookings, at(10, 0), 60, 1))
}

func TestIsAvailable_CancelledBookingFreesSlot(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0))
	bookings := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60, Cancelled: true}}

	assert.True(t, IsAvailable(schedule, bookings, at(10, 0), 60, 0))
}

func TestBuildWeekSchedule_DuplicateDayFirstRowWins(t *testing.T) {
	schedule := BuildWeekSchedule([]WorkingHours{
		{Day: time.Monday, Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(12, 0)},
		{Day: time.Monday, Start: NewTimeOfDay(13, 0), End: NewTimeOfDay(18, 0)},
	})

	wh, ok := schedule.For(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, NewTimeOfDay(9, 0), wh.Start)
	assert.Equal(t, NewTimeOfDay(12, 0), wh.End)
}

func TestWeekSchedule_ForMissingDay(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0))

	_, ok := schedule.For(time.Sunday)
	assert.False(t, ok)
}
