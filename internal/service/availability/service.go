package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// Service проверяет конфликты бронирований. Интервалы полуоткрытые:
// бронь, заканчивающаяся в 15:00, не конфликтует с бронью с 15:00.
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		logger:          logger,
	}
}

// IsTableFree проверяет, свободен ли стол на дату в интервале [start, end).
// excludeID исключает бронь из проверки (используется при смене статуса/переносе).
func (s *Service) IsTableFree(
	ctx context.Context,
	tableID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) (bool, error) {
	occupying, err := s.reservationRepo.ListOccupying(ctx, date, &tableID, excludeID)
	if err != nil {
		s.logger.Error("IsTableFree: repository error for table=%d date=%s: %v", tableID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: IsTableFree - repository error: %v", ErrInternal, err)
	}

	for _, res := range occupying {
		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableTables возвращает активные столы с вместимостью не меньше minSeats,
// свободные на дату в интервале [start, end). Порядок: вместимость, затем имя.
func (s *Service) AvailableTables(
	ctx context.Context,
	date time.Time,
	start, end types.TimeString,
	minSeats int,
) ([]*domain.Table, error) {
	tables, err := s.tableRepo.ListBookable(ctx, minSeats)
	if err != nil {
		s.logger.Error("AvailableTables: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: AvailableTables - table lookup: %v", ErrInternal, err)
	}
	if len(tables) == 0 {
		return nil, nil
	}

	// Занятость всех столов на дату вытягиваем одним запросом,
	// пересечения проверяем в памяти.
	occupying, err := s.reservationRepo.ListOccupying(ctx, date, nil, nil)
	if err != nil {
		s.logger.Error("AvailableTables: failed to list reservations for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: AvailableTables - reservation lookup: %v", ErrInternal, err)
	}

	busy := make(map[int64]bool, len(tables))
	for _, res := range occupying {
		if busy[res.TableID] {
			continue
		}
		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			busy[res.TableID] = true
		}
	}

	free := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if !busy[t.ID] {
			free = append(free, t)
		}
	}
	return free, nil
}
