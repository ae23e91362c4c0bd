package inbox

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// MessageRepository интерфейс репозитория входящих сообщений
type MessageRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context, status *domain.MessageStatus) ([]*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
