package catalog

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога игр и товаров
type CatalogRepository interface {
	ListGames(ctx context.Context, onlyAvailable bool) ([]*domain.BoardGame, error)
	CreateGame(ctx context.Context, g *domain.BoardGame) (*domain.BoardGame, error)
	UpdateGame(ctx context.Context, id int64, g *domain.BoardGame) (*domain.BoardGame, error)
	DeleteGame(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, onlyAvailable bool) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
