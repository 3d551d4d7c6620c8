package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// webhookSender POSTs invites as JSON to a configured endpoint, for
// deployments that route mail through an external notification provider.
type webhookSender struct {
	url    string
	client *http.Client
}

func newWebhookSender(url string) *webhookSender {
	return &webhookSender{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	To            string `json:"to"`
	CandidateName string `json:"candidate_name"`
	JobTitle      string `json:"job_title,omitempty"`
	StartsAtLocal string `json:"starts_at_local"`
	URL           string `json:"url,omitempty"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

func (w *webhookSender) Send(ctx context.Context, inv Invite) error {
	payload := webhookPayload{
		To:            inv.To,
		CandidateName: inv.CandidateName,
		JobTitle:      inv.JobTitle,
		StartsAtLocal: inv.StartsAtLocal,
		URL:           inv.URL,
		Subject:       BuildInviteSubject(inv),
		Body:          BuildInviteBody(inv),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
