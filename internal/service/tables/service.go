package tables

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
)

// Service сервис управления столами заведения
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List возвращает столы. onlyActive скрывает выведенные из обращения.
func (s *Service) List(ctx context.Context, onlyActive bool) ([]*domain.Table, error) {
	list, err := s.tableRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetByID возвращает стол по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	t, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return t, nil
}

// Create добавляет стол
func (s *Service) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	if err := validate(t); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.tableRepo.Create(ctx, t)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d name=%q capacity=%d created", created.ID, created.Name, created.Capacity)
	return created, nil
}

// Update обновляет параметры стола
func (s *Service) Update(ctx context.Context, id int64, t *domain.Table) (*domain.Table, error) {
	if err := validate(t); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.tableRepo.Update(ctx, id, t)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: table id=%d updated", id)
	return updated, nil
}

// Delete удаляет стол. Стол с бронированиями удалить нельзя -
// вместо этого его следует деактивировать.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		if errors.Is(err, tableRepo.ErrTableInUse) {
			s.logger.Warn("Delete: table id=%d has reservations", id)
			return ErrTableInUse
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: table id=%d deleted", id)
	return nil
}

func validate(t *domain.Table) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}
