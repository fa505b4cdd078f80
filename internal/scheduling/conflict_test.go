package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestHasConflict_Overlaps(t *testing.T) {
	existing := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60}}

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"contained inside", at(10, 30), 15, true},
		{"overlaps start", at(9, 30), 45, true},
		{"overlaps end", at(10, 45), 60, true},
		{"covers entirely", at(9, 0), 180, true},
		{"identical window", at(10, 0), 60, true},
		{"starts at existing end", at(11, 0), 60, false},
		{"ends at existing start", at(9, 0), 60, false},
		{"well before", at(7, 0), 60, false},
		{"well after", at(13, 0), 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.start, tt.duration, existing, 0))
		})
	}
}

func TestHasConflict_IgnoresCancelled(t *testing.T) {
	existing := []Booking{{ID: 1, Start: at(10, 0), DurationMinutes: 60, Cancelled: true}}

	assert.False(t, HasConflict(at(10, 0), 60, existing, 0))
	assert.False(t, HasConflict(at(10, 15), 30, existing, 0))
}

func TestHasConflict_ExcludesOwnID(t *testing.T) {
	existing := []Booking{{ID: 7, Start: at(10, 0), DurationMinutes: 60}}

	// Re-checking an appointment against a dataset containing only itself
	// must never self-conflict.
	assert.False(t, HasConflict(at(10, 0), 60, existing, 7))
	assert.True(t, HasConflict(at(10, 0), 60, existing, 0))
	assert.True(t, HasConflict(at(10, 0), 60, existing, 8))
}

func TestHasConflict_EmptyDataset(t *testing.T) {
	assert.False(t, HasConflict(at(10, 0), 60, nil, 0))
}

func TestBooking_End(t *testing.T) {
	b := Booking{Start: at(10, 0), DurationMinutes: 45}
	assert.Equal(t, at(10, 45), b.End())
}
