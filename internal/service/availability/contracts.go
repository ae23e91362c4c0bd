package availability

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListOccupying(ctx context.Context, date time.Time, tableID *int64, excludeID *int64) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListBookable(ctx context.Context, minSeats int) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
