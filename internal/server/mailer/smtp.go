package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/server/config"
)

// SMTPMailer sends mail over plain SMTP with AUTH when credentials are
// configured. When SMTPUser or SMTPPassword is empty it degrades to a
// no-op that logs the skip, matching the behavior of a deployment without
// mail credentials.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   logging.Logger

	// sendMail is a test seam for smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg *config.Config, l logging.Logger) *SMTPMailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		logger:   l.With("module", "mailer"),
		sendMail: smtp.SendMail,
	}
}

func (m *SMTPMailer) configured() bool {
	return m.user != "" && m.password != ""
}

// SendWelcome delivers the signup greeting to email. Returns nil when mail
// is not configured.
func (m *SMTPMailer) SendWelcome(ctx context.Context, email, name string) error {
	if !m.configured() {
		m.logger.Info(ctx, "email not configured, skipping welcome email", "email", email)
		return nil
	}

	msg := welcomeMessage(m.from, email, name)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.password, m.host)

	if err := m.sendMail(addr, auth, m.from, []string{email}, msg); err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}

	m.logger.Info(ctx, "welcome email sent", "email", email)
	return nil
}

func welcomeMessage(from, to, name string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Welcome to CareKeeper!\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", name)
	b.WriteString("Thank you for signing up for CareKeeper! With our app you can:\r\n")
	b.WriteString("  - Create and manage care tasks\r\n")
	b.WriteString("  - Schedule appointments and reminders\r\n")
	b.WriteString("  - Track medication schedules\r\n")
	b.WriteString("  - Manage emergency contacts\r\n\r\n")
	b.WriteString("Your account has been successfully created.\r\n\r\n")
	b.WriteString("Best regards,\r\nThe CareKeeper Team\r\n")
	return []byte(b.String())
}
