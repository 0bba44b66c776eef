package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"anima/config"
)

// Mailer delivers a plain-text message. Delivery is an external concern;
// callers only depend on this interface.
type Mailer interface {
	Send(to, subject, body string) error
}

// New returns an SMTP-backed mailer, or a log-only mailer when no SMTP host
// is configured so local setups keep working.
func New(cfg *config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return logMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg *config.SMTPConfig
}

func (m *smtpMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}

type logMailer struct{}

func (logMailer) Send(to, subject, _ string) error {
	log.Printf("[mailer] smtp not configured, dropping mail to=%s subject=%q", to, subject)
	return nil
}
