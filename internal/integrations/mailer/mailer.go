package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/dev4ox/anti-cafe-reservation/internal/config"
)

// Mailer отправляет письма с билетами через SMTP
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer создает новый экземпляр почтового клиента
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Message письмо для отправки
type Message struct {
	From    string
	ReplyTo string
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Send отправляет письмо. Клиент создается на каждую отправку,
// соединения с SMTP-сервером не переиспользуются.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	client, err := mail.NewClient(
		m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(time.Duration(m.cfg.Timeout)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to create smtp client: %v", ErrInternal, err)
	}

	mm := mail.NewMsg()
	if err := mm.From(msg.From); err != nil {
		return fmt.Errorf("%w: invalid from address %q: %v", ErrInternal, msg.From, err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid to address %q: %v", ErrInternal, msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := mm.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("%w: invalid reply-to address %q: %v", ErrInternal, msg.ReplyTo, err)
		}
	}
	mm.Subject(msg.Subject)
	if msg.HTML {
		mm.SetBodyString(mail.TypeTextHTML, msg.Body)
	} else {
		mm.SetBodyString(mail.TypeTextPlain, msg.Body)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
