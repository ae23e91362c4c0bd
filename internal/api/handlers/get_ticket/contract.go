package get_ticket

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type ReservationsService interface {
	GetByPublicCode(ctx context.Context, code string) (*domain.Reservation, error)
}

type TablesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
