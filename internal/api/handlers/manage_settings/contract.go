package manage_settings

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type SettingsService interface {
	GetOrInit(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, in *domain.SiteSettings) (*domain.SiteSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
