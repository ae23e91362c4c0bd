package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 types.TimeString
		want           bool
	}{
		{"full containment", "12:00", "14:00", "13:00", "14:00", true},
		{"partial overlap", "11:30", "12:00", "11:20", "11:40", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"touching end to start", "12:00", "13:00", "13:00", "14:00", false},
		{"touching start to end", "13:00", "14:00", "12:00", "13:00", false},
		{"disjoint", "10:00", "11:00", "15:00", "16:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Перекрытие симметрично
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime("12:00", 120)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), end)

	// Выход за полночь запрещён
	_, err = ComputeEndTime("23:30", 60)
	assert.Error(t, err)
}

func TestStatusIsOccupying(t *testing.T) {
	occupying := map[ReservationStatus]bool{
		StatusNew:       true,
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusCancelled: false,
		StatusNoShow:    false,
	}

	for status, want := range occupying {
		assert.Equal(t, want, status.IsOccupying(), "status %s", status)
	}

	for _, status := range OccupyingStatuses {
		assert.True(t, status.IsOccupying())
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.IsValid())
	}
	assert.False(t, ReservationStatus("PENDING").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}
