package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
	"github.com/dev4ox/anti-cafe-reservation/internal/service/availability"
	"github.com/dev4ox/anti-cafe-reservation/pkg/ptr"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// --- фейки ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListOccupying(_ context.Context, date time.Time, tableID *int64, _ *int64) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range f.reservations {
		if !res.Date.Equal(date) || !res.IsOccupying() {
			continue
		}
		if tableID != nil && res.TableID != *tableID {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	for _, t := range f.tables {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, tableRepo.ErrTableNotFound
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

type fakeCalendar struct {
	window *domain.WorkingWindow
}

func (f *fakeCalendar) WindowFor(_ context.Context, _ time.Time) (*domain.WorkingWindow, error) {
	return f.window, nil
}

type fakeSettings struct {
	cfg *domain.SiteSettings
}

func (f *fakeSettings) GetOrInit(_ context.Context) (*domain.SiteSettings, error) {
	return f.cfg, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- окружение ---

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func occupying(tableID int64, start, end types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		TableID:   tableID,
		Date:      testDate,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func newUC(resRepo *fakeReservationRepo, tblRepo *fakeTableRepo) *UseCase {
	cal := &fakeCalendar{window: &domain.WorkingWindow{OpenTime: "10:00", CloseTime: "12:00"}}
	cfg := &fakeSettings{cfg: &domain.SiteSettings{
		SlotDurationChoices: []int{60, 120},
		MinNoticeMinutes:    0,
	}}

	avail := availability.NewService(resRepo, tblRepo, noopLogger{})
	uc := NewUseCase(resRepo, tblRepo, avail, cal, cfg, time.UTC, noopLogger{})
	// Накануне вечером: отсечка не мешает дневным тестам
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	return uc
}

func twoTables() *fakeTableRepo {
	return &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Малый", Capacity: 2, IsActive: true},
		{ID: 2, Name: "Большой", Capacity: 6, IsActive: true},
	}}
}

// --- тесты ---

func TestGetAvailabilityClosedDate(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())
	uc.calendar = &fakeCalendar{window: nil}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Tables)
	assert.Empty(t, resp.StartTimes)
}

func TestGetAvailabilityExactWindow(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		occupying(1, "10:00", "11:00"),
	}}
	uc := newUC(resRepo, twoTables())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		StartTime:       ptr.Ptr(types.TimeString("10:00")),
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)

	// Стол 1 занят, стол 2 свободен
	require.Len(t, resp.Tables, 1)
	assert.Equal(t, int64(2), resp.Tables[0].ID)

	// Бронь до 11:00 не мешает окну с 11:00
	resp, err = uc.Execute(context.Background(), &Request{
		Date:            testDate,
		StartTime:       ptr.Ptr(types.TimeString("11:00")),
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Tables, 2)
}

func TestGetAvailabilityGridScan(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)

	// Окно 10:00-12:00, длительность 60, шаг 30:
	// 11:30 не входит, потому что конец 12:30 позже закрытия
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00"}, resp.StartTimes)

	// Столы по возрастанию вместимости
	require.Len(t, resp.Tables, 2)
	assert.Equal(t, int64(1), resp.Tables[0].ID)
	assert.Equal(t, int64(2), resp.Tables[1].ID)
}

func TestGetAvailabilityGridSkipsBusySteps(t *testing.T) {
	// Единственный стол занят с 10:00 до 11:00
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		occupying(1, "10:00", "11:00"),
	}}
	tblRepo := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Малый", Capacity: 2, IsActive: true},
	}}
	uc := newUC(resRepo, tblRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)

	// 10:00 и 10:30 пересекаются с бронью, остается только 11:00
	assert.Equal(t, []types.TimeString{"11:00"}, resp.StartTimes)
	assert.Len(t, resp.Tables, 1)
}

func TestGetAvailabilityNoticeCutoffSkipsWithoutTerminating(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	// Сегодня 10:15: ранние узлы отсекаются, поздние остаются
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)}
	uc.settings = &fakeSettings{cfg: &domain.SiteSettings{
		SlotDurationChoices: []int{60},
		MinNoticeMinutes:    30,
	}}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
	})
	require.NoError(t, err)

	// Отсечка 10:45: узлы 10:00 и 10:30 пропущены, 11:00 валиден
	assert.Equal(t, []types.TimeString{"11:00"}, resp.StartTimes)
}

func TestGetAvailabilityStartsForTable(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		occupying(2, "10:00", "11:00"),
		occupying(1, "10:00", "12:00"),
	}}
	uc := newUC(resRepo, twoTables())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
		TableID:         ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)

	// Занятость стола 1 на стол 2 не влияет
	assert.Equal(t, []types.TimeString{"11:00"}, resp.StartTimes)
}

func TestGetAvailabilityStartsForTableCapacity(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	// Стол 1 вмещает двоих, запрошено пять мест
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           5,
		TableID:         ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.StartTimes)
}

func TestGetAvailabilityTableNotFound(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
		TableID:         ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestGetAvailabilityCustomStep(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
		StepMinutes:     60,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, resp.StartTimes)
}

func TestGetAvailabilityValidation(t *testing.T) {
	uc := newUC(&fakeReservationRepo{}, twoTables())

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		Seats:           2,
		StepMinutes:     3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 0,
		Seats:           2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		DurationMinutes: 60,
		Seats:           2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
