package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTripWindow_DayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2025, 1, 1), date(2025, 1, 1), 1},
		{"three days", date(2025, 1, 1), date(2025, 1, 3), 3},
		{"across month", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"clock ignored", time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC), time.Date(2025, 1, 2, 0, 15, 0, 0, time.UTC), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewTripWindow(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.DayCount())
		})
	}
}

func TestTripWindow_DSTDoesNotShiftCount(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	w, err := NewTripWindow(time.Date(2025, 3, 8, 12, 0, 0, 0, ny), time.Date(2025, 3, 10, 12, 0, 0, 0, ny))
	require.NoError(t, err)
	assert.Equal(t, 3, w.DayCount())
}

func TestTripWindow_EndBeforeStart(t *testing.T) {
	_, err := NewTripWindow(date(2025, 1, 3), date(2025, 1, 1))
	assert.ErrorIs(t, err, ErrEndBeforeStart)
	assert.True(t, IsValidation(err))
}

func TestParseTripWindow(t *testing.T) {
	w, err := ParseTripWindow("2025-06-01", "2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, 5, w.DayCount())
	assert.Equal(t, date(2025, 6, 3), w.Date(3))

	_, err = ParseTripWindow("06/01/2025", "2025-06-05")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestTripWindow_Contains(t *testing.T) {
	w, err := NewTripWindow(date(2025, 1, 1), date(2025, 1, 2))
	require.NoError(t, err)
	assert.False(t, w.Contains(0))
	assert.True(t, w.Contains(1))
	assert.True(t, w.Contains(2))
	assert.False(t, w.Contains(3))
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 5}, tod)
	assert.Equal(t, "09:05", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.ErrorIs(t, err, ErrInvalidTime)

	assert.Nil(t, FormatTime(nil))
	assert.Equal(t, "18:30", *FormatTime(&TimeOfDay{Hour: 18, Minute: 30}))
}

func TestParseOptionalTime(t *testing.T) {
	got, err := ParseOptionalTime(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseOptionalTime(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "07:45"
	got, err = ParseOptionalTime(&s)
	require.NoError(t, err)
	assert.Equal(t, "07:45", got.String())

	bad := "7pm"
	_, err = ParseOptionalTime(&bad)
	assert.ErrorIs(t, err, ErrInvalidTime)
}
