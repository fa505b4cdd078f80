package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:00", NewTimeOfDay(9, 0), false},
		{"00:00", NewTimeOfDay(0, 0), false},
		{"23:59", NewTimeOfDay(23, 59), false},
		{"9:30", NewTimeOfDay(9, 30), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
	assert.Equal(t, "23:30", NewTimeOfDay(23, 30).String())
	assert.Equal(t, "00:00", NewTimeOfDay(0, 0).String())
}

func TestTimeOfDay_At(t *testing.T) {
	day := time.Date(2025, time.March, 10, 15, 42, 7, 0, time.UTC)
	got := NewTimeOfDay(9, 30).At(day)

	assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC), got)
}

func TestFromClock(t *testing.T) {
	clock := time.Date(2025, time.March, 10, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, NewTimeOfDay(14, 45), FromClock(clock))
}

func TestTimeOfDay_Add(t *testing.T) {
	assert.Equal(t, NewTimeOfDay(10, 30), NewTimeOfDay(9, 45).Add(45))
}
