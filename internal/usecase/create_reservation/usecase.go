package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/reservation"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// UseCase use case для создания бронирования.
// Все проверки и вставка выполняются в одной сериализуемой транзакции,
// занятые брони блокируются через FOR UPDATE - две конкурентные заявки
// на пересекающееся время одного стола не могут пройти обе.
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	calendar        CalendarService
	settings        SettingsProvider
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	codeGen         CodeGenerator
	metrics         Metrics
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	calendar CalendarService,
	settings SettingsProvider,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		calendar:        calendar,
		settings:        settings,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		codeGen:         &UUIDCodeGenerator{},
		metrics:         metrics,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: table=%d, date=%s, time=%s, duration=%d, seats=%d",
		req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.Seats)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservationRejected("invalid_input")
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Настройки площадки (длительности, мин. предупреждение)
	cfg, err := uc.settings.GetOrInit(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	var result *domain.Reservation
	var table *domain.Table

	// 3. Проверки допуска и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Стол существует и активен
		t, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}
		if !t.IsActive {
			uc.logger.Warn("CreateReservation: table id=%d is inactive", req.TableID)
			return ErrTableNotFound
		}
		table = t

		// 3.2. Вместимость стола
		if !t.CanSeat(req.Seats) {
			uc.logger.Warn("CreateReservation: table id=%d capacity=%d < seats=%d", t.ID, t.Capacity, req.Seats)
			return ErrNotEnoughCapacity
		}

		// 3.3. Длительность из списка допустимых
		if !cfg.IsAllowedDuration(req.DurationMinutes) {
			uc.logger.Warn("CreateReservation: duration=%d not in %v", req.DurationMinutes, cfg.SlotDurationChoices)
			return ErrInvalidDuration
		}

		endTime, err := domain.ComputeEndTime(req.StartTime, req.DurationMinutes)
		if err != nil {
			// Переход через полночь - бронь не помещается в сутки
			uc.logger.Warn("CreateReservation: end time overflows the day: %v", err)
			return ErrOutsideWorkingHours
		}

		// 3.4. Рабочее окно на дату, границы включительно
		window, err := uc.calendar.WindowFor(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to resolve window for %s: %v", req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
		}
		if window == nil {
			uc.logger.Warn("CreateReservation: venue closed on %s", req.Date.Format(domain.DateFormat))
			return ErrVenueClosed
		}
		if !window.Contains(req.StartTime, endTime) {
			uc.logger.Warn("CreateReservation: %s-%s outside window %s-%s",
				req.StartTime, endTime, window.OpenTime, window.CloseTime)
			return ErrOutsideWorkingHours
		}

		// 3.5. Занятость стола, строки блокируются FOR UPDATE
		occupying, err := uc.reservationRepo.ListOccupying(txCtx, req.Date, &req.TableID, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}
		for _, res := range occupying {
			if domain.Overlaps(req.StartTime, endTime, res.StartTime, res.EndTime) {
				uc.logger.Warn("CreateReservation: table id=%d busy, conflicts with reservation id=%d", req.TableID, res.ID)
				return ErrTableBusy
			}
		}

		// 3.6. Минимальное время предупреждения
		if err := validateNotice(req.Date, req.StartTime, now, cfg.MinNoticeMinutes, uc.location); err != nil {
			uc.logger.Warn("CreateReservation: notice validation failed: %v", err)
			return err
		}

		// 3.7. Вставка с генерацией уникального кода билета
		created, err := uc.insertWithCode(txCtx, req, endTime)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.IncReservationRejected(rejectionReason(err))
		return nil, err
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: reservation id=%d code=%s created", result.ID, result.PublicCode)

	// 4. Уведомления после коммита. Сбой доставки бронь не отменяет.
	emailSent := uc.notifier.Deliver(result, table.Name)

	return &Response{
		ID:              result.ID,
		TableID:         result.TableID,
		TableName:       table.Name,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Seats:           result.Seats,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		Comment:         result.Comment,
		Status:          string(result.Status),
		PublicCode:      result.PublicCode,
		EmailSent:       emailSent,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// insertWithCode вставляет бронь, перегенерируя код билета при коллизии
func (uc *UseCase) insertWithCode(ctx context.Context, req *Request, endTime types.TimeString) (*domain.Reservation, error) {
	for attempt := 1; attempt <= domain.MaxCodeGenAttempts; attempt++ {
		reservation := &domain.Reservation{
			TableID:         req.TableID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: req.DurationMinutes,
			Seats:           req.Seats,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
			Comment:         strings.TrimSpace(req.Comment),
			Status:          domain.StatusNew,
			PublicCode:      uc.codeGen.NewCode(),
		}

		created, err := uc.reservationRepo.Create(ctx, reservation)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, reservationRepo.ErrDuplicateCode) {
			uc.logger.Warn("CreateReservation: public code collision, attempt %d/%d", attempt, domain.MaxCodeGenAttempts)
			continue
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
	return nil, ErrCodeCollision
}

// rejectionReason сводит ошибку допуска к метке метрики
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTableNotFound):
		return "table_not_found"
	case errors.Is(err, ErrNotEnoughCapacity):
		return "capacity"
	case errors.Is(err, ErrInvalidDuration):
		return "duration"
	case errors.Is(err, ErrVenueClosed):
		return "closed"
	case errors.Is(err, ErrOutsideWorkingHours):
		return "outside_hours"
	case errors.Is(err, ErrTableBusy):
		return "conflict"
	case errors.Is(err, ErrTooLateToBook):
		return "too_late"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
