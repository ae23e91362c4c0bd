package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/internal/integrations/mailer"
)

const deliverTimeout = 15 * time.Second

// Service доставляет уведомления о новой брони: письмо с билетом гостю
// и сообщение персоналу в Telegram. Ошибки доставки не фатальны -
// бронь уже создана, сбой канала лишь логируется и попадает в метрики.
type Service struct {
	mailer          Mailer
	telegram        TelegramClient
	settings        SettingsProvider
	reservationRepo ReservationRepository
	metrics         Metrics
	baseURL         string
	logger          Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	mailer Mailer,
	telegram TelegramClient,
	settings SettingsProvider,
	reservationRepo ReservationRepository,
	metrics Metrics,
	baseURL string,
	logger Logger,
) *Service {
	return &Service{
		mailer:          mailer,
		telegram:        telegram,
		settings:        settings,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		baseURL:         baseURL,
		logger:          logger,
	}
}

// Deliver отправляет уведомления по всем каналам. Возвращает true,
// если письмо гостю ушло успешно. Вызывается после коммита транзакции.
func (s *Service) Deliver(res *domain.Reservation, tableName string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	cfg, err := s.settings.GetOrInit(ctx)
	if err != nil {
		s.logger.Error("Deliver: failed to load settings for reservation id=%d: %v", res.ID, err)
		s.metrics.IncNotifyFailure("email")
		return false
	}

	emailSent := s.sendEmail(ctx, cfg, res, tableName)
	s.sendTelegram(ctx, cfg, res, tableName)
	return emailSent
}

func (s *Service) sendEmail(ctx context.Context, cfg *domain.SiteSettings, res *domain.Reservation, tableName string) bool {
	if cfg.FromEmail == "" {
		s.logger.Warn("sendEmail: from address not configured, skipping email for reservation id=%d", res.ID)
		return false
	}

	ticketURL := fmt.Sprintf("%s/api/v1/tickets/%s", s.baseURL, res.PublicCode)
	msg := mailer.Message{
		From:    cfg.FromEmail,
		ReplyTo: cfg.ReplyToEmail,
		To:      res.CustomerEmail,
		Subject: fmt.Sprintf("Бронь подтверждена - %s", cfg.SiteName),
		Body:    buildTicketEmail(cfg, res, tableName, ticketURL),
		HTML:    true,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("sendEmail: delivery failed for reservation id=%d to=%s: %v", res.ID, res.CustomerEmail, err)
		s.metrics.IncNotifyFailure("email")
		return false
	}

	now := time.Now().UTC()
	if err := s.reservationRepo.SetEmailSent(ctx, res.ID, now); err != nil {
		// Письмо ушло, но отметка не записалась - логируем и живем дальше
		s.logger.Error("sendEmail: failed to mark email sent for reservation id=%d: %v", res.ID, err)
	} else {
		res.EmailSentAt = &now
	}

	s.logger.Info("sendEmail: ticket sent for reservation id=%d to=%s", res.ID, res.CustomerEmail)
	return true
}

func (s *Service) sendTelegram(ctx context.Context, cfg *domain.SiteSettings, res *domain.Reservation, tableName string) {
	if !cfg.TelegramEnabled || cfg.TelegramToken == "" || cfg.TelegramChatID == "" {
		return
	}

	text := fmt.Sprintf(
		"<b>Новая бронь #%d</b>\n%s, %s-%s\nСтол: %s\nГостей: %d\n%s (%s)\nКод: %s",
		res.ID,
		res.Date.Format(domain.DateFormat),
		res.StartTime, res.EndTime,
		tableName,
		res.Seats,
		res.CustomerName, res.CustomerEmail,
		res.PublicCode,
	)

	if err := s.telegram.SendMessage(ctx, cfg.TelegramToken, cfg.TelegramChatID, text); err != nil {
		s.logger.Warn("sendTelegram: delivery failed for reservation id=%d: %v", res.ID, err)
		s.metrics.IncNotifyFailure("telegram")
		return
	}
	s.logger.Info("sendTelegram: staff notified about reservation id=%d", res.ID)
}

func buildTicketEmail(cfg *domain.SiteSettings, res *domain.Reservation, tableName, ticketURL string) string {
	return fmt.Sprintf(
		`<h2>%s</h2>
<p>Здравствуйте, %s!</p>
<p>Ваша бронь подтверждена:</p>
<ul>
<li>Дата: <b>%s</b></li>
<li>Время: <b>%s - %s</b></li>
<li>Стол: <b>%s</b></li>
<li>Гостей: <b>%d</b></li>
</ul>
<p>Код вашего билета: <b>%s</b></p>
<p>Посмотреть билет: <a href="%s">%s</a></p>`,
		cfg.SiteName,
		res.CustomerName,
		res.Date.Format(domain.DateFormat),
		res.StartTime, res.EndTime,
		tableName,
		res.Seats,
		res.PublicCode,
		ticketURL, ticketURL,
	)
}
