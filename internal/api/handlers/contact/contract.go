package contact

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type InboxService interface {
	Submit(ctx context.Context, name, phone, message string) (*domain.ContactMessage, error)
	List(ctx context.Context, status *domain.MessageStatus) ([]*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
