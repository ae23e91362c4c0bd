package settings

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Create(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error)
	Update(ctx context.Context, id int64, s *domain.SiteSettings) (*domain.SiteSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
