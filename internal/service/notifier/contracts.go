package notifier

import (
	"context"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/internal/integrations/mailer"
)

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// TelegramClient интерфейс клиента Telegram Bot API
type TelegramClient interface {
	SendMessage(ctx context.Context, token, chatID, text string) error
}

// SettingsProvider интерфейс доступа к настройкам сайта
type SettingsProvider interface {
	GetOrInit(ctx context.Context) (*domain.SiteSettings, error)
}

// ReservationRepository интерфейс репозитория для отметки об отправке письма
type ReservationRepository interface {
	SetEmailSent(ctx context.Context, id int64, at time.Time) error
}

// Metrics интерфейс счетчиков ошибок уведомлений
type Metrics interface {
	IncNotifyFailure(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
