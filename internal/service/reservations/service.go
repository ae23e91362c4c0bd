package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/reservation"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	reservationRepo ReservationRepository
	conflicts       ConflictChecker
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, conflicts ConflictChecker, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		conflicts:       conflicts,
		logger:          logger,
	}
}

// GetByPublicCode получает бронирование по публичному коду билета
func (s *Service) GetByPublicCode(ctx context.Context, code string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByPublicCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByPublicCode: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByPublicCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByPublicCode - repository error: %v", ErrInternal, err)
	}
	return res, nil
}

// List получает бронирования с фильтрацией по столу, дате и статусу
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		s.logger.Warn("List: invalid status filter %q", *filter.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *filter.Status)
	}

	list, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return list, nil
}

// UpdateStatus переводит бронирование в новый статус. Переходы между
// статусами не ограничены: персонал может исправить любую ошибку,
// в том числе вернуть отменённую бронь в работу. Возврат в занимающий
// статус требует, чтобы стол всё ещё был свободен в это время.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status %q for reservation id=%d", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !current.Status.IsOccupying() && status.IsOccupying() {
		free, err := s.conflicts.IsTableFree(ctx, current.TableID, current.Date, current.StartTime, current.EndTime, &id)
		if err != nil {
			s.logger.Error("UpdateStatus: conflict check failed for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - conflict check: %v", ErrInternal, err)
		}
		if !free {
			s.logger.Warn("UpdateStatus: table=%d busy, cannot reactivate reservation id=%d", current.TableID, id)
			return nil, ErrTableBusy
		}
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-fetch reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - re-fetch: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%d moved to status=%s", id, status)
	return res, nil
}
