package create_reservation

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListOccupying(ctx context.Context, date time.Time, tableID *int64, excludeID *int64) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	WindowFor(ctx context.Context, date time.Time) (*domain.WorkingWindow, error)
}

// SettingsProvider интерфейс доступа к настройкам сайта
type SettingsProvider interface {
	GetOrInit(ctx context.Context) (*domain.SiteSettings, error)
}

// Notifier интерфейс доставки уведомлений о созданной брони
type Notifier interface {
	Deliver(res *domain.Reservation, tableName string) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// CodeGenerator интерфейс генерации публичного кода билета (для тестирования)
type CodeGenerator interface {
	NewCode() string
}

// Metrics интерфейс счетчиков созданных и отклоненных бронирований
type Metrics interface {
	IncReservationCreated()
	IncReservationRejected(reason string)
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

// UUIDCodeGenerator генератор кода билета на основе UUID
type UUIDCodeGenerator struct{}

// NewCode возвращает код из 12 шестнадцатеричных символов в верхнем регистре
func (g *UUIDCodeGenerator) NewCode() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:])[:domain.PublicCodeLength])
}
