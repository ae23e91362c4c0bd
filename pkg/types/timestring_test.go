package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:30:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("21:30")

	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:30"), end)

	// Crossing midnight is not allowed.
	_, err = ts.AddMinutes(180)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("13:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("12:45:00"))
	assert.Equal(t, TimeString("12:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
