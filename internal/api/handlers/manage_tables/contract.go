package manage_tables

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type TablesService interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Table, error)
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	Update(ctx context.Context, id int64, t *domain.Table) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
