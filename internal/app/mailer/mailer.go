package mailer

import (
	"fmt"

	"carparts/internal/app/config"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет письма формы обратной связи через SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// Send отправляет письмо с заданной темой и телом
func (m *Mailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
