package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// UseCase use case подбора вариантов бронирования. Читает данные без
// блокировок: устаревший ответ лишь меняет предлагаемые варианты,
// корректность гарантирует повторная проверка при создании брони.
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	availability    AvailabilityService
	calendar        CalendarService
	settings        SettingsProvider
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	availability AvailabilityService,
	calendar CalendarService,
	settings SettingsProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		availability:    availability,
		calendar:        calendar,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет подбор вариантов бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, duration=%d, seats=%d, start=%v, table=%v",
		req.Date.Format(domain.DateFormat), req.DurationMinutes, req.Seats, req.StartTime, req.TableID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	step := req.StepMinutes
	if step == 0 {
		step = domain.DefaultStepMinutes
	}

	now := uc.timeProvider.Now()

	cfg, err := uc.settings.GetOrInit(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	// Рабочее окно на дату
	window, err := uc.calendar.WindowFor(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
	}
	if window == nil {
		uc.logger.Info("GetAvailability: venue closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:       req.Date,
			IsOpen:     false,
			Tables:     []TableOption{},
			StartTimes: []types.TimeString{},
		}, nil
	}

	// Отсечка минимального предупреждения вычисляется один раз на запрос
	cutoff := now.In(uc.location).Add(time.Duration(cfg.MinNoticeMinutes) * time.Minute)

	resp := &Response{
		Date:       req.Date,
		IsOpen:     true,
		OpenTime:   window.OpenTime,
		CloseTime:  window.CloseTime,
		Tables:     []TableOption{},
		StartTimes: []types.TimeString{},
	}

	switch {
	case req.StartTime != nil:
		err = uc.fillExactWindow(ctx, req, resp)
	case req.TableID != nil:
		err = uc.fillStartsForTable(ctx, req, resp, window, step, cutoff)
	default:
		err = uc.fillGrid(ctx, req, resp, window, step, cutoff)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailability: date=%s, %d tables, %d start times",
		req.Date.Format(domain.DateFormat), len(resp.Tables), len(resp.StartTimes))
	return resp, nil
}

// fillExactWindow подбирает столы, свободные ровно в запрошенном окне
func (uc *UseCase) fillExactWindow(ctx context.Context, req *Request, resp *Response) error {
	end, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		// Окно переходит через полночь - подходящих столов нет
		uc.logger.Warn("GetAvailability: window overflows the day: %v", err)
		return nil
	}

	free, err := uc.availability.AvailableTables(ctx, req.Date, *req.StartTime, end, req.Seats)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to pick free tables: %v", err)
		return fmt.Errorf("%w: failed to pick free tables: %v", ErrInternal, err)
	}

	for _, t := range free {
		resp.Tables = append(resp.Tables, toOption(t))
	}
	return nil
}

// fillStartsForTable подбирает времена начала для конкретного стола
func (uc *UseCase) fillStartsForTable(
	ctx context.Context,
	req *Request,
	resp *Response,
	window *domain.WorkingWindow,
	step int,
	cutoff time.Time,
) error {
	t, err := uc.tableRepo.GetByID(ctx, *req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetAvailability: table id=%d not found", *req.TableID)
			return ErrTableNotFound
		}
		uc.logger.Error("GetAvailability: failed to get table id=%d: %v", *req.TableID, err)
		return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !t.IsActive || !t.CanSeat(req.Seats) {
		return nil
	}

	busy, err := uc.reservationRepo.ListOccupying(ctx, req.Date, req.TableID, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	for _, start := range gridCandidates(window, req.DurationMinutes, step) {
		// Ранние узлы пропускаются, но сканирование продолжается:
		// поздние слоты сегодня еще могут проходить по отсечке
		if beforeCutoff(req.Date, start, uc.location, cutoff) {
			continue
		}
		end, err := start.AddMinutes(req.DurationMinutes)
		if err != nil {
			continue
		}
		if tableFree(busy, start, end) {
			resp.StartTimes = append(resp.StartTimes, start)
		}
	}
	return nil
}

// fillGrid сканирует сетку: собирает допустимые времена начала и объединяет
// столы, свободные хотя бы на один шаг
func (uc *UseCase) fillGrid(
	ctx context.Context,
	req *Request,
	resp *Response,
	window *domain.WorkingWindow,
	step int,
	cutoff time.Time,
) error {
	tables, byTable, err := uc.loadTablesAndBusy(ctx, req.Date, req.Seats)
	if err != nil {
		return err
	}

	seenTables := make(map[int64]bool, len(tables))

	for _, start := range gridCandidates(window, req.DurationMinutes, step) {
		if beforeCutoff(req.Date, start, uc.location, cutoff) {
			continue
		}
		end, err := start.AddMinutes(req.DurationMinutes)
		if err != nil {
			continue
		}

		anyFree := false
		for _, t := range tables {
			if tableFree(byTable[t.ID], start, end) {
				anyFree = true
				seenTables[t.ID] = true
			}
		}
		if anyFree {
			resp.StartTimes = append(resp.StartTimes, start)
		}
	}

	// tables уже отсортированы по (вместимость, имя), порядок сохраняется
	for _, t := range tables {
		if seenTables[t.ID] {
			resp.Tables = append(resp.Tables, toOption(t))
		}
	}
	return nil
}

// loadTablesAndBusy загружает подходящие столы и их занятость на дату
func (uc *UseCase) loadTablesAndBusy(
	ctx context.Context,
	date time.Time,
	seats int,
) ([]*domain.Table, map[int64][]*domain.Reservation, error) {
	tables, err := uc.tableRepo.ListBookable(ctx, seats)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list tables: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	occupying, err := uc.reservationRepo.ListOccupying(ctx, date, nil, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	return tables, groupByTable(occupying), nil
}

func toOption(t *domain.Table) TableOption {
	return TableOption{
		ID:           t.ID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		LocationNote: t.LocationNote,
	}
}
