package calendar

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyByDay(ctx context.Context, dayOfWeek int) (*domain.WeeklySchedule, error)
	ListWeekly(ctx context.Context) ([]*domain.WeeklySchedule, error)
	GetSpecialByDate(ctx context.Context, date time.Time) (*domain.SpecialDay, error)
	ListSpecial(ctx context.Context, from *time.Time) ([]*domain.SpecialDay, error)
	UpsertWeekly(ctx context.Context, entry *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
	CreateSpecial(ctx context.Context, day *domain.SpecialDay) (*domain.SpecialDay, error)
	UpdateSpecial(ctx context.Context, id int64, day *domain.SpecialDay) (*domain.SpecialDay, error)
	DeleteSpecial(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
