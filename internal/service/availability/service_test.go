package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// --- фейки ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListOccupying(_ context.Context, date time.Time, tableID *int64, excludeID *int64) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range f.reservations {
		if !res.Date.Equal(date) || !res.IsOccupying() {
			continue
		}
		if tableID != nil && res.TableID != *tableID {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) ListBookable(_ context.Context, minSeats int) ([]*domain.Table, error) {
	out := make([]*domain.Table, 0)
	for _, t := range f.tables {
		if t.IsActive && t.Capacity >= minSeats {
			out = append(out, t)
		}
	}
	return out, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func reservation(id, tableID int64, start, end types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		TableID:   tableID,
		Date:      testDate,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

// --- тесты ---

func TestIsTableFree(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		reservation(1, 1, "12:00", "14:00", domain.StatusConfirmed),
	}}
	svc := NewService(resRepo, &fakeTableRepo{}, noopLogger{})

	free, err := svc.IsTableFree(context.Background(), 1, testDate, "13:00", "15:00", nil)
	require.NoError(t, err)
	assert.False(t, free)

	// Полуоткрытые интервалы: конец в 14:00 не мешает началу в 14:00
	free, err = svc.IsTableFree(context.Background(), 1, testDate, "14:00", "16:00", nil)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestIsTableFreeExcludesReservation(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		reservation(7, 1, "12:00", "14:00", domain.StatusConfirmed),
	}}
	svc := NewService(resRepo, &fakeTableRepo{}, noopLogger{})

	var exclude int64 = 7
	free, err := svc.IsTableFree(context.Background(), 1, testDate, "12:00", "14:00", &exclude)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestAvailableTables(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		reservation(1, 1, "10:00", "12:00", domain.StatusNew),
		reservation(2, 2, "10:00", "12:00", domain.StatusCancelled),
	}}
	tblRepo := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Малый", Capacity: 2, IsActive: true},
		{ID: 2, Name: "Большой", Capacity: 6, IsActive: true},
	}}
	svc := NewService(resRepo, tblRepo, noopLogger{})

	// Стол 1 занят активной бронью, отмененная на столе 2 не считается
	free, err := svc.AvailableTables(context.Background(), testDate, "11:00", "13:00", 2)
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, int64(2), free[0].ID)

	// Вне занятого окна свободны оба
	free, err = svc.AvailableTables(context.Background(), testDate, "12:00", "14:00", 2)
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestAvailableTablesSeatsFilter(t *testing.T) {
	tblRepo := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Малый", Capacity: 2, IsActive: true},
		{ID: 2, Name: "Большой", Capacity: 6, IsActive: true},
	}}
	svc := NewService(&fakeReservationRepo{}, tblRepo, noopLogger{})

	free, err := svc.AvailableTables(context.Background(), testDate, "10:00", "11:00", 4)
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, int64(2), free[0].ID)
}
