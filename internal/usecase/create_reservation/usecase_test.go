package create_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/reservation"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// --- фейки ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	takenCodes   map[string]bool
	nextID       int64
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{takenCodes: map[string]bool{}}
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.takenCodes[res.PublicCode] {
		return nil, reservationRepo.ErrDuplicateCode
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.reservations = append(f.reservations, &created)
	f.takenCodes[res.PublicCode] = true
	return &created, nil
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
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return t, nil
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

type fakeNotifier struct {
	delivered []*domain.Reservation
	emailOK   bool
}

func (f *fakeNotifier) Deliver(res *domain.Reservation, _ string) bool {
	f.delivered = append(f.delivered, res)
	return f.emailOK
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type seqCodeGen struct {
	codes []string
	idx   int
}

func (g *seqCodeGen) NewCode() string {
	code := g.codes[g.idx%len(g.codes)]
	g.idx++
	return code
}

// countingCodeGen выдаёт уникальный код на каждый вызов,
// чтобы соседние вставки не спотыкались о коллизии.
type countingCodeGen struct {
	n int
}

func (g *countingCodeGen) NewCode() string {
	g.n++
	return fmt.Sprintf("%012X", g.n)
}

type noopMetrics struct {
	created  int
	rejected map[string]int
}

func newNoopMetrics() *noopMetrics { return &noopMetrics{rejected: map[string]int{}} }

func (m *noopMetrics) IncReservationCreated()               { m.created++ }
func (m *noopMetrics) IncReservationRejected(reason string) { m.rejected[reason]++ }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- окружение ---

type env struct {
	uc       *UseCase
	resRepo  *fakeReservationRepo
	notifier *fakeNotifier
	metrics  *noopMetrics
}

func newEnv(t *testing.T) *env {
	t.Helper()

	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{
		1: {ID: 1, Name: "У окна", Capacity: 4, IsActive: true},
		2: {ID: 2, Name: "Чердак", Capacity: 8, IsActive: false},
	}}
	cal := &fakeCalendar{window: &domain.WorkingWindow{OpenTime: "10:00", CloseTime: "22:00"}}
	cfg := &fakeSettings{cfg: &domain.SiteSettings{
		DepositAmount:       decimal.Zero,
		SlotDurationChoices: []int{60, 120},
		MinNoticeMinutes:    30,
	}}
	notifier := &fakeNotifier{emailOK: true}
	metrics := newNoopMetrics()

	uc := NewUseCase(resRepo, tblRepo, cal, cfg, notifier, &fakeTxManager{}, metrics, time.UTC, noopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	uc.codeGen = &countingCodeGen{}

	return &env{uc: uc, resRepo: resRepo, notifier: notifier, metrics: metrics}
}

func validRequest() *Request {
	return &Request{
		TableID:         1,
		Date:            time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "12:00",
		DurationMinutes: 60,
		Seats:           2,
		CustomerName:    "Мария",
		CustomerEmail:   "maria@example.com",
	}
}

// --- тесты ---

func TestCreateReservationSuccess(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusNew), resp.Status)
	assert.Equal(t, types.TimeString("13:00"), resp.EndTime)
	assert.Equal(t, "000000000001", resp.PublicCode)
	assert.Equal(t, "У окна", resp.TableName)
	assert.True(t, resp.EmailSent)
	assert.Len(t, e.notifier.delivered, 1)
	assert.Equal(t, 1, e.metrics.created)
}

func TestCreateReservationOutsideWorkingHours(t *testing.T) {
	e := newEnv(t)

	// Начало до открытия
	req := validRequest()
	req.StartTime = "09:00"
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Конец позже закрытия: 21:30 + 60 минут = 22:30
	req = validRequest()
	req.StartTime = "21:30"
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Конец ровно в закрытие допустим
	req = validRequest()
	req.StartTime = "21:00"
	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateReservationOverlap(t *testing.T) {
	e := newEnv(t)

	first := validRequest()
	first.StartTime = "12:00"
	first.DurationMinutes = 120
	_, err := e.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// 13:00-14:00 пересекается с 12:00-14:00
	second := validRequest()
	second.StartTime = "13:00"
	_, err = e.uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrTableBusy)

	// 14:00-15:00 граничит, но не пересекается
	third := validRequest()
	third.StartTime = "14:00"
	_, err = e.uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestCreateReservationSequentialCodesDistinct(t *testing.T) {
	e := newEnv(t)

	first := validRequest()
	resp1, err := e.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.StartTime = "14:00"
	resp2, err := e.uc.Execute(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, resp1.PublicCode, resp2.PublicCode)
	assert.Len(t, e.resRepo.reservations, 2)
}

func TestCreateReservationCancelledDoesNotBlock(t *testing.T) {
	e := newEnv(t)

	first := validRequest()
	_, err := e.uc.Execute(context.Background(), first)
	require.NoError(t, err)
	e.resRepo.reservations[0].Status = domain.StatusCancelled

	second := validRequest()
	_, err = e.uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestCreateReservationMinNotice(t *testing.T) {
	e := newEnv(t)
	e.uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}

	cfg, _ := e.uc.settings.GetOrInit(context.Background())
	cfg.MinNoticeMinutes = 120

	// Сейчас 09:00, предупреждение 120 минут: 10:00 уже поздно...

	req := validRequest()
	req.StartTime = "10:00"
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// ...а 12:00 проходит
	req = validRequest()
	req.StartTime = "12:00"
	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateReservationCapacityExceeded(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.Seats = 5
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotEnoughCapacity)
	assert.Equal(t, 1, e.metrics.rejected["capacity"])
}

func TestCreateReservationTableChecks(t *testing.T) {
	e := newEnv(t)

	// Несуществующий стол
	req := validRequest()
	req.TableID = 99
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)

	// Неактивный стол неотличим от несуществующего
	req = validRequest()
	req.TableID = 2
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestCreateReservationDisallowedDuration(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.DurationMinutes = 90
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCreateReservationVenueClosed(t *testing.T) {
	e := newEnv(t)
	e.uc.calendar = &fakeCalendar{window: nil}

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueClosed)
	assert.Equal(t, 1, e.metrics.rejected["closed"])
}

func TestCreateReservationCodeCollisionRetries(t *testing.T) {
	e := newEnv(t)
	e.uc.codeGen = &seqCodeGen{codes: []string{"A1B2C3D4E5F6", "FFFFFFFFFFFF"}}

	// Первый код уже занят
	e.resRepo.takenCodes["A1B2C3D4E5F6"] = true

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "FFFFFFFFFFFF", resp.PublicCode)
}

func TestCreateReservationCodeCollisionExhausted(t *testing.T) {
	e := newEnv(t)
	e.uc.codeGen = &seqCodeGen{codes: []string{"A1B2C3D4E5F6"}}
	e.resRepo.takenCodes["A1B2C3D4E5F6"] = true

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeCollision)
}

func TestCreateReservationNotifyFailureIsNotFatal(t *testing.T) {
	e := newEnv(t)
	e.notifier.emailOK = false

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Len(t, e.resRepo.reservations, 1)
}

func TestCreateReservationInputValidation(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.CustomerEmail = "not-an-email"
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CustomerName = "  "
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Seats = 0
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUUIDCodeGeneratorFormat(t *testing.T) {
	g := &UUIDCodeGenerator{}

	code := g.NewCode()
	assert.Len(t, code, domain.PublicCodeLength)
	for _, c := range code {
		assert.Contains(t, "0123456789ABCDEF", string(c))
	}

	// Коды не повторяются между вызовами
	assert.NotEqual(t, code, g.NewCode())
}
