package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	monday  = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
)

func todStrings(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestAvailableSlots_FixedGrid(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))

	// Future date, 60-minute duration, empty diary: the 30-minute grid with
	// the last slot fitting exactly against closing time.
	slots := AvailableSlots(schedule, nil, monday, 60, sunday, DefaultSlotStepMinutes)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, todStrings(slots))
}

func TestAvailableSlots_SkipsConflicts(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))
	bookings := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60}}

	slots := AvailableSlots(schedule, bookings, monday, 60, sunday, DefaultSlotStepMinutes)
	// 09:30 and 10:30 overlap the 10:00-11:00 booking; 11:00 touches it and fits.
	assert.Equal(t, []string{"09:00", "11:00"}, todStrings(slots))
}

func TestAvailableSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))
	bookings := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60, Cancelled: true}}

	slots := AvailableSlots(schedule, bookings, monday, 60, sunday, DefaultSlotStepMinutes)
	assert.Len(t, slots, 5)
}

func TestAvailableSlots_NoWorkingHours(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))

	assert.Empty(t, AvailableSlots(schedule, nil, tuesday, 60, sunday, DefaultSlotStepMinutes))
}

func TestAvailableSlots_PastDateProducesNothing(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))

	now := time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC)
	assert.Empty(t, AvailableSlots(schedule, nil, monday, 60, now, DefaultSlotStepMinutes))
}

func TestAvailableSlots_TodayFiltersElapsedTimes(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))

	// 10:00 on the requested day itself: slots at or before now are dropped,
	// strictly-later ones kept.
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	slots := AvailableSlots(schedule, nil, monday, 60, now, DefaultSlotStepMinutes)
	assert.Equal(t, []string{"10:30", "11:00"}, todStrings(slots))
}

func TestAvailableSlots_DurationLongerThanWindow(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(10, 0))

	assert.Empty(t, AvailableSlots(schedule, nil, monday, 90, sunday, DefaultSlotStepMinutes))
}

func TestAvailableSlots_InvalidInputs(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))

	assert.Empty(t, AvailableSlots(schedule, nil, monday, 0, sunday, DefaultSlotStepMinutes))
	assert.Empty(t, AvailableSlots(schedule, nil, monday, -15, sunday, DefaultSlotStepMinutes))
	assert.Empty(t, AvailableSlots(schedule, nil, monday, 60, sunday, 0))
}

func TestAvailableSlots_CustomStep(t *testing.T) {
	schedule := mondaySchedule(NewTimeOfDay(9, 0), NewTimeOfDay(11, 0))

	slots := AvailableSlots(schedule, nil, monday, 60, sunday, 15)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45", "10:00"}, todStrings(slots))
}
