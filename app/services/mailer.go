package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
)

// Mailer is the outbound mail transport. Callers own logging of outcomes so
// each caller controls its own log shape.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	fromName string
	replyTo  string
}

func NewSMTPMailer(cfg config.SMTPConfig, fromName string) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, fromName: fromName}
}

// WithReplyTo returns a copy of the mailer that sets a Reply-To header, used
// for contact-form relays so staff can answer the sender directly.
func (m *SMTPMailer) WithReplyTo(replyTo string) *SMTPMailer {
	clone := *m
	clone.replyTo = replyTo
	return &clone
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %q <%s>\r\n", m.fromName, m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	if m.replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", m.replyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// BrandedHTML wraps a body fragment in the foundation's email chrome.
func BrandedHTML(title, body string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #4A90E2, #5AAFE5); padding: 30px; text-align: center;">
				<h1 style="color: white; margin: 0;">%s</h1>
			</div>
			<div style="padding: 30px; background: #f8f9fa;">
				%s
			</div>
			<div style="background: #1E3A5F; padding: 20px; text-align: center; color: white;">
				<p style="margin: 0; font-size: 14px;">&copy; 2026 Make A Splash Foundation Inc.</p>
			</div>
		</div>`, title, body)
}

// TextToHTML converts template newlines for the HTML email body.
func TextToHTML(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
