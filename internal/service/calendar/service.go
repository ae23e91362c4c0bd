package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	scheduleRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/schedule"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// Service определяет рабочее окно заведения на конкретную дату.
// Особый день (праздник, техработы) полностью перекрывает недельное
// расписание: если на дату есть запись особого дня, недельная запись
// не рассматривается вовсе.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// WindowFor возвращает рабочее окно на дату или nil, если заведение закрыто.
func (s *Service) WindowFor(ctx context.Context, date time.Time) (*domain.WorkingWindow, error) {
	special, err := s.scheduleRepo.GetSpecialByDate(ctx, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrEntryNotFound) {
		s.logger.Error("WindowFor: failed to fetch special day for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: WindowFor - special day lookup: %v", ErrInternal, err)
	}

	var weekly *domain.WeeklySchedule
	if special == nil {
		day := domain.DayOfWeekFromDate(date)
		weekly, err = s.scheduleRepo.GetWeeklyByDay(ctx, day)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
				// Нет записи на день недели - считаем день закрытым
				return nil, nil
			}
			s.logger.Error("WindowFor: failed to fetch weekly entry for day=%d: %v", day, err)
			return nil, fmt.Errorf("%w: WindowFor - weekly lookup: %v", ErrInternal, err)
		}
	}

	return domain.ResolveWindow(special, weekly), nil
}

// WeeklySchedule возвращает все записи недельного расписания.
func (s *Service) WeeklySchedule(ctx context.Context) ([]*domain.WeeklySchedule, error) {
	entries, err := s.scheduleRepo.ListWeekly(ctx)
	if err != nil {
		s.logger.Error("WeeklySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: WeeklySchedule - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

// UpcomingSpecialDays возвращает особые дни начиная с указанной даты.
func (s *Service) UpcomingSpecialDays(ctx context.Context, from *time.Time) ([]*domain.SpecialDay, error) {
	days, err := s.scheduleRepo.ListSpecial(ctx, from)
	if err != nil {
		s.logger.Error("UpcomingSpecialDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpcomingSpecialDays - repository error: %v", ErrInternal, err)
	}
	return days, nil
}

// SetWeeklyEntry создает или обновляет запись недельного расписания.
func (s *Service) SetWeeklyEntry(ctx context.Context, entry *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day_of_week must be in 0..6, got %d", ErrInvalidInput, entry.DayOfWeek)
	}
	if err := validateHours(entry.IsOpen, entry.OpenTime, entry.CloseTime); err != nil {
		return nil, err
	}

	saved, err := s.scheduleRepo.UpsertWeekly(ctx, entry)
	if err != nil {
		s.logger.Error("SetWeeklyEntry: repository error for day=%d: %v", entry.DayOfWeek, err)
		return nil, fmt.Errorf("%w: SetWeeklyEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeeklyEntry: day=%d is_open=%t saved", saved.DayOfWeek, saved.IsOpen)
	return saved, nil
}

// AddSpecialDay создает особый день (праздник, техработы).
func (s *Service) AddSpecialDay(ctx context.Context, day *domain.SpecialDay) (*domain.SpecialDay, error) {
	if day.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := validateHours(day.IsOpen, day.OpenTime, day.CloseTime); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.CreateSpecial(ctx, day)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateEntry) {
			s.logger.Warn("AddSpecialDay: duplicate entry for %s", day.Date.Format(domain.DateFormat))
			return nil, ErrDuplicateSpecialDay
		}
		s.logger.Error("AddSpecialDay: repository error for %s: %v", day.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: AddSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSpecialDay: special day id=%d date=%s created", created.ID, created.Date.Format(domain.DateFormat))
	return created, nil
}

// UpdateSpecialDay обновляет особый день.
func (s *Service) UpdateSpecialDay(ctx context.Context, id int64, day *domain.SpecialDay) (*domain.SpecialDay, error) {
	if err := validateHours(day.IsOpen, day.OpenTime, day.CloseTime); err != nil {
		return nil, err
	}

	updated, err := s.scheduleRepo.UpdateSpecial(ctx, id, day)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("UpdateSpecialDay: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpecialDay: special day id=%d updated", id)
	return updated, nil
}

// RemoveSpecialDay удаляет особый день, дата возвращается к недельному расписанию.
func (s *Service) RemoveSpecialDay(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.DeleteSpecial(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		s.logger.Error("RemoveSpecialDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveSpecialDay: special day id=%d deleted", id)
	return nil
}

// validateHours проверяет согласованность флага is_open и границ окна.
func validateHours(isOpen bool, open, close *types.TimeString) error {
	if !isOpen {
		return nil
	}
	if open == nil || close == nil {
		return fmt.Errorf("%w: open and close times are required for an open day", ErrInvalidInput)
	}
	if err := open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidInput, err)
	}
	if err := close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidInput, err)
	}
	if !open.IsBefore(*close) {
		return fmt.Errorf("%w: open time must be before close time", ErrInvalidInput)
	}
	return nil
}
