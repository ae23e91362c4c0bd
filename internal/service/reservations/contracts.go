package reservations

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByPublicCode(ctx context.Context, code string) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// ConflictChecker интерфейс проверки занятости стола
type ConflictChecker interface {
	IsTableFree(ctx context.Context, tableID int64, date time.Time, start, end types.TimeString, excludeID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
