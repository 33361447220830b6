package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/eduboard/academy/pkg/config"
)

// Mailer delivers account credentials to newly provisioned students over
// SMTP. Delivery is best effort; callers decide what a failure means.
type Mailer struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func NewMailer(cfg config.Mailer) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Mailer{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (m *Mailer) SendStudentCredentials(_ context.Context, email, name, password, loginURL string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your academy account is ready")

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your enrollment payment has been confirmed and a student account has been created for you.\n\n"+
			"Login: %s\nTemporary password: %s\n\n"+
			"Sign in at %s. You will be asked to choose a new password on first login.\n",
		name, email, password, loginURL,
	)

	msg.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// LogOnly is wired when SMTP is disabled; it records that a notification
// would have been sent without exposing the secret.
type LogOnly struct{}

func (LogOnly) SendStudentCredentials(ctx context.Context, email, _, _, _ string) error {
	slog.InfoContext(ctx, "mailer disabled, credentials not delivered", "recipient", email)
	return nil
}
