package service

import (
	"errors"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// ErrMailerDisabled reports that no SMTP relay is configured. Callers must
// treat the mail as not delivered.
var ErrMailerDisabled = errors.New("mailer disabled, no smtp host configured")

// Mailer delivers plain-text notification mail.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host   string
	port   string
	from   string
	logger *zap.Logger
}

// NewSMTPMailer returns a Mailer speaking plain SMTP. With an empty host
// Send logs the outgoing mail and fails with ErrMailerDisabled, so local
// setups keep working without a relay but nothing gets recorded as
// delivered.
func NewSMTPMailer(host, port, from string, logger *zap.Logger) Mailer {
	return &smtpMailer{host: host, port: port, from: from, logger: logger}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	if m.host == "" {
		m.logger.Warn("smtp disabled, mail not sent",
			zap.String("to", to),
			zap.String("subject", subject))
		return ErrMailerDisabled
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
