package manage_schedule

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type CalendarService interface {
	WeeklySchedule(ctx context.Context) ([]*domain.WeeklySchedule, error)
	SetWeeklyEntry(ctx context.Context, entry *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
	UpcomingSpecialDays(ctx context.Context, from *time.Time) ([]*domain.SpecialDay, error)
	AddSpecialDay(ctx context.Context, day *domain.SpecialDay) (*domain.SpecialDay, error)
	UpdateSpecialDay(ctx context.Context, id int64, day *domain.SpecialDay) (*domain.SpecialDay, error)
	RemoveSpecialDay(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
