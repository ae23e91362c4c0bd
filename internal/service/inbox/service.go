package inbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	inboxRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/inbox"
)

// Service сервис входящих сообщений с публичной формы обратной связи
type Service struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(messageRepo MessageRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Submit принимает сообщение с формы обратной связи
func (s *Service) Submit(ctx context.Context, name, phone, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	created, err := s.messageRepo.Create(ctx, &domain.ContactMessage{
		Name:    name,
		Phone:   phone,
		Message: message,
		Status:  domain.MessageStatusNew,
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: contact message id=%d from %q accepted", created.ID, created.Name)
	return created, nil
}

// List возвращает сообщения, опционально по статусу
func (s *Service) List(ctx context.Context, status *domain.MessageStatus) ([]*domain.ContactMessage, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
	}

	messages, err := s.messageRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return messages, nil
}

// UpdateStatus переводит сообщение в новый статус обработки
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.messageRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, inboxRepo.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: message id=%d moved to status=%s", id, status)
	return nil
}
