package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hireloop/hireloop/pkg/config"
)

// smtpSender delivers invites over plain SMTP with optional AUTH.
// The standard library client is sufficient here: one short-lived
// connection per invite, no pooling or HTML needed.
type smtpSender struct {
	addr string
	auth smtp.Auth
	from string
}

func newSMTPSender(cfg *config.NotifyConfig) *smtpSender {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &smtpSender{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.FromAddress,
	}
}

func (s *smtpSender) Send(ctx context.Context, inv Invite) error {
	if inv.To == "" {
		return fmt.Errorf("invite has no recipient")
	}

	msg := buildMessage(s.from, inv.To, BuildInviteSubject(inv), BuildInviteBody(inv))

	// smtp.SendMail has no context support; run it under the caller's
	// deadline by racing it against ctx.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from, []string{inv.To}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
