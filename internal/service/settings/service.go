package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	settingsRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/settings"
)

// Service управляет настройками сайта. Настройки хранятся как единственная
// запись, при первом обращении создаются со значениями по умолчанию.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetOrInit возвращает настройки, создавая запись с дефолтами, если её нет.
func (s *Service) GetOrInit(ctx context.Context) (*domain.SiteSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("GetOrInit: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetOrInit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrInit: no settings record, creating defaults")
	created, err := s.settingsRepo.Create(ctx, domain.DefaultSettings())
	if err != nil {
		s.logger.Error("GetOrInit: failed to create defaults: %v", err)
		return nil, fmt.Errorf("%w: GetOrInit - create defaults: %v", ErrInternal, err)
	}
	return created, nil
}

// Update валидирует и сохраняет настройки.
func (s *Service) Update(ctx context.Context, in *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := validate(in); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	current, err := s.GetOrInit(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, current.ID, in)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, min_notice=%d, durations=%v", updated.MinNoticeMinutes, updated.SlotDurationChoices)
	return updated, nil
}

func validate(in *domain.SiteSettings) error {
	if in.DepositAmount.IsNegative() {
		return fmt.Errorf("%w: deposit amount must not be negative", ErrInvalidInput)
	}
	if in.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: min notice must not be negative", ErrInvalidInput)
	}
	if len(in.SlotDurationChoices) == 0 {
		return fmt.Errorf("%w: at least one slot duration is required", ErrInvalidInput)
	}
	for _, d := range in.SlotDurationChoices {
		if d <= 0 {
			return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidInput, d)
		}
	}
	if in.TelegramEnabled && (in.TelegramToken == "" || in.TelegramChatID == "") {
		return fmt.Errorf("%w: telegram token and chat id are required when telegram is enabled", ErrInvalidInput)
	}
	return nil
}
