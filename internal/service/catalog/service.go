package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	catalogRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/catalog"
)

// Service сервис каталога настольных игр и товаров
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListGames возвращает игры каталога. onlyAvailable скрывает снятые с полки.
func (s *Service) ListGames(ctx context.Context, onlyAvailable bool) ([]*domain.BoardGame, error) {
	games, err := s.catalogRepo.ListGames(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("ListGames: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGames - repository error: %v", ErrInternal, err)
	}
	return games, nil
}

// CreateGame добавляет игру в каталог
func (s *Service) CreateGame(ctx context.Context, g *domain.BoardGame) (*domain.BoardGame, error) {
	if err := validateGame(g); err != nil {
		s.logger.Warn("CreateGame: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.CreateGame(ctx, g)
	if err != nil {
		s.logger.Error("CreateGame: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateGame - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGame: game id=%d title=%q created", created.ID, created.Title)
	return created, nil
}

// UpdateGame обновляет игру каталога
func (s *Service) UpdateGame(ctx context.Context, id int64, g *domain.BoardGame) (*domain.BoardGame, error) {
	if err := validateGame(g); err != nil {
		s.logger.Warn("UpdateGame: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.UpdateGame(ctx, id, g)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateGame: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateGame - repository error: %v", ErrInternal, err)
	}
	return updated, nil
}

// DeleteGame удаляет игру из каталога
func (s *Service) DeleteGame(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteGame(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("DeleteGame: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteGame - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteGame: game id=%d deleted", id)
	return nil
}

// ListProducts возвращает товары каталога
func (s *Service) ListProducts(ctx context.Context, onlyAvailable bool) ([]*domain.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - repository error: %v", ErrInternal, err)
	}
	return products, nil
}

// CreateProduct добавляет товар в каталог
func (s *Service) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		s.logger.Warn("CreateProduct: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.CreateProduct(ctx, p)
	if err != nil {
		s.logger.Error("CreateProduct: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProduct - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProduct: product id=%d title=%q created", created.ID, created.Title)
	return created, nil
}

// UpdateProduct обновляет товар каталога
func (s *Service) UpdateProduct(ctx context.Context, id int64, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		s.logger.Warn("UpdateProduct: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.UpdateProduct(ctx, id, p)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateProduct: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProduct - repository error: %v", ErrInternal, err)
	}
	return updated, nil
}

// DeleteProduct удаляет товар из каталога
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("DeleteProduct: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteProduct - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteProduct: product id=%d deleted", id)
	return nil
}

func validateGame(g *domain.BoardGame) error {
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if g.PlayersMin != nil && g.PlayersMax != nil && *g.PlayersMin > *g.PlayersMax {
		return fmt.Errorf("%w: players_min exceeds players_max", ErrInvalidInput)
	}
	return nil
}

func validateProduct(p *domain.Product) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
