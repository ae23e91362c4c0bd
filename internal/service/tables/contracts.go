package tables

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Table, error)
	Update(ctx context.Context, id int64, t *domain.Table) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
