package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC(t *testing.T) {
	loc, err := LoadZone("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("IST morning projects to UTC", func(t *testing.T) {
		got, err := ToUTC("2025-06-15", "10:00", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC), got)
	})

	t.Run("midnight wraps to previous UTC day", func(t *testing.T) {
		got, err := ToUTC("2025-06-15", "00:30", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects malformed clock", func(t *testing.T) {
		_, err := ToUTC("2025-06-15", "25:00", loc)
		assert.Error(t, err)
	})
}

func TestWindow(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)

	start, end, err := Window("2025-06-15", "10:00", "10:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 15, 5, 0, 0, 0, time.UTC), end)

	_, _, err = Window("2025-06-15", "10:30", "10:00", loc)
	assert.Error(t, err, "inverted window must fail")

	_, _, err = Window("2025-06-15", "10:00", "10:00", loc)
	assert.Error(t, err, "empty window must fail")
}

func TestClockHelpers(t *testing.T) {
	before, err := ClockBefore("09:00", "17:30")
	require.NoError(t, err)
	assert.True(t, before)

	before, err = ClockBefore("17:30", "09:00")
	require.NoError(t, err)
	assert.False(t, before)

	mins, err := Minutes("10:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 30, mins)

	assert.True(t, ValidDate("2025-06-15"))
	assert.False(t, ValidDate("15/06/2025"))
	assert.True(t, ValidClock("10:00"))
	assert.False(t, ValidClock("10am"))
}

func TestAddWeeks(t *testing.T) {
	next, err := AddWeeks("2025-06-15", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-22", next)

	same, err := AddWeeks("2025-06-15", 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", same)
}

func TestFormatInZone(t *testing.T) {
	loc, err := LoadZone("Asia/Kolkata")
	require.NoError(t, err)

	s := FormatInZone(time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC), loc)
	assert.Equal(t, "Sunday, 15 June 2025 at 10:00 AM IST", s)
}
