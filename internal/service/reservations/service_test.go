package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/reservation"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

type fakeRepo struct {
	byID       map[int64]*domain.Reservation
	updated    map[int64]domain.ReservationStatus
	listResult []*domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeRepo) GetByPublicCode(_ context.Context, code string) (*domain.Reservation, error) {
	for _, res := range f.byID {
		if res.PublicCode == code {
			copied := *res
			return &copied, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.listResult, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.byID[id].Status = status
	if f.updated == nil {
		f.updated = make(map[int64]domain.ReservationStatus)
	}
	f.updated[id] = status
	return nil
}

type fakeConflicts struct {
	free   bool
	called bool
}

func (f *fakeConflicts) IsTableFree(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, _ *int64) (bool, error) {
	f.called = true
	return f.free, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func seedReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		TableID:   3,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("12:00"),
		EndTime:   types.TimeString("14:00"),
		Status:    status,
	}
}

func TestUpdateStatus_SimpleTransition(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: seedReservation(domain.StatusNew)}}
	conflicts := &fakeConflicts{free: true}
	svc := NewService(repo, conflicts, noopLogger{})

	res, err := svc.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	// Переход между занимающими статусами не требует проверки занятости
	assert.False(t, conflicts.called)
}

func TestUpdateStatus_ReactivateChecksConflict(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: seedReservation(domain.StatusCancelled)}}
	conflicts := &fakeConflicts{free: true}
	svc := NewService(repo, conflicts, noopLogger{})

	res, err := svc.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.True(t, conflicts.called)
}

func TestUpdateStatus_ReactivateTableBusy(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: seedReservation(domain.StatusCancelled)}}
	conflicts := &fakeConflicts{free: false}
	svc := NewService(repo, conflicts, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrTableBusy)
	assert.Empty(t, repo.updated)
}

func TestUpdateStatus_CancelDoesNotCheckConflict(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: seedReservation(domain.StatusConfirmed)}}
	conflicts := &fakeConflicts{free: false}
	svc := NewService(repo, conflicts, noopLogger{})

	res, err := svc.UpdateStatus(context.Background(), 1, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
	assert.False(t, conflicts.called)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{}}
	svc := NewService(repo, &fakeConflicts{free: true}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: seedReservation(domain.StatusNew)}}
	svc := NewService(repo, &fakeConflicts{free: true}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, domain.ReservationStatus("BOGUS"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeConflicts{}, noopLogger{})

	bad := domain.ReservationStatus("BOGUS")
	_, err := svc.List(context.Background(), domain.ReservationsFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByPublicCode(t *testing.T) {
	res := seedReservation(domain.StatusNew)
	res.PublicCode = "A1B2C3D4E5F6"
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{1: res}}
	svc := NewService(repo, &fakeConflicts{}, noopLogger{})

	found, err := svc.GetByPublicCode(context.Background(), "A1B2C3D4E5F6")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)

	_, err = svc.GetByPublicCode(context.Background(), "MISSING00000")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
