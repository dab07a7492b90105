package notification

import (
	"workforce-backend/config"

	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv: kanal email via SMTP. Return nil kalau SMTP_HOST kosong
// (notifikasi tetap tercatat di DB, hanya emailnya yang dimatikan).
func NewMailerFromEnv() Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	dialer := gomail.NewDialer(
		host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)
	return &smtpMailer{
		dialer: dialer,
		from:   config.GetEnv("SMTP_FROM", "no-reply@workforce.local"),
	}
}

func (m *smtpMailer) Send(to string, subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
