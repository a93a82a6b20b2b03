package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

const reminderSubject = "Ekeukwu Market payment reminder"

// Sender delivers a plain-text message to a single recipient. Delivery is
// best-effort: no retry, no confirmation.
type Sender interface {
	Send(recipient, body string) error
}

// SMTPSender sends mail through a TLS-secured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// Config carries the outbound relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPSender constructs the sender. The connection is opened per send.
func NewSMTPSender(cfg Config) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.Port == 465

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPSender{dialer: dialer, from: from}
}

// Send delivers the message with the fixed reminder subject.
func (s *SMTPSender) Send(recipient, body string) error {
	if s.dialer.Host == "" {
		return fmt.Errorf("smtp relay is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", reminderSubject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
