package get_availability

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListOccupying(ctx context.Context, date time.Time, tableID *int64, excludeID *int64) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListBookable(ctx context.Context, minSeats int) ([]*domain.Table, error)
}

// AvailabilityService интерфейс сервиса доступности столов
type AvailabilityService interface {
	AvailableTables(ctx context.Context, date time.Time, start, end types.TimeString, minSeats int) ([]*domain.Table, error)
}

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	WindowFor(ctx context.Context, date time.Time) (*domain.WorkingWindow, error)
}

// SettingsProvider интерфейс доступа к настройкам сайта
type SettingsProvider interface {
	GetOrInit(ctx context.Context) (*domain.SiteSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
