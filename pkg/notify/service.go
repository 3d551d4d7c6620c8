// Package notify delivers interview invites through SMTP or an HTTP
// webhook. The sink is optional: a nil *Service is a valid, silent one.
package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hireloop/hireloop/pkg/config"
)

// Invite is one outbound interview invitation.
type Invite struct {
	To            string
	CandidateName string
	JobTitle      string
	// StartsAtLocal is the interview start preformatted in the interview
	// timezone, e.g. "Sunday, 15 June 2025 at 10:00 AM IST".
	StartsAtLocal string
	// URL is the candidate portal link; empty when the deployment refused
	// to include one (see BuildInviteURL).
	URL string
}

// sender is the delivery mechanism behind the service.
type sender interface {
	Send(ctx context.Context, inv Invite) error
}

// Service delivers invites.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	sender sender
	logger *slog.Logger
}

// NewService creates a notification service from configuration.
// Returns nil when no sink is configured.
func NewService(cfg *config.NotifyConfig) *Service {
	if cfg == nil || !cfg.Enabled() {
		return nil
	}

	var s sender
	if cfg.SMTPHost != "" {
		s = newSMTPSender(cfg)
	} else {
		s = newWebhookSender(cfg.WebhookURL)
	}

	return &Service{
		sender: s,
		logger: slog.Default().With("component", "notify"),
	}
}

// NewServiceWithSender creates a Service backed by a pre-built sender.
// Useful for testing.
func NewServiceWithSender(s sender) *Service {
	return &Service{
		sender: s,
		logger: slog.Default().With("component", "notify"),
	}
}

// SendInvite delivers one invitation. The error is informational: booking
// callers record it as booking_ok_email_failed and proceed.
func (s *Service) SendInvite(ctx context.Context, inv Invite) error {
	if s == nil {
		return nil
	}
	if err := s.sender.Send(ctx, inv); err != nil {
		s.logger.Error("Failed to send interview invite",
			"to", inv.To, "error", err)
		return err
	}
	s.logger.Info("Interview invite sent", "to", inv.To)
	return nil
}

// BuildInviteURL assembles the candidate portal link. Outside development,
// an unset or localhost base URL means the link is withheld from outbound
// mail; the caller gets an empty URL and included=false.
func BuildInviteURL(baseURL string, development bool, sessionKey string) (string, bool) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	local := base == "" ||
		strings.Contains(base, "localhost") ||
		strings.Contains(base, "127.0.0.1")

	if local && !development {
		slog.Warn("BASE_URL unset or local in non-development deployment; sending invite without link")
		return "", false
	}
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + "/interview/?session_key=" + sessionKey, true
}
