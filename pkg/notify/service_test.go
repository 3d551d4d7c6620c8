package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDisabledWhenUnconfigured(t *testing.T) {
	var svc *Service
	assert.Nil(t, NewService(&config.NotifyConfig{}))
	assert.Nil(t, NewService(nil))

	// Nil service swallows sends.
	err := svc.SendInvite(context.Background(), Invite{To: "a@example.com"})
	assert.NoError(t, err)
}

func TestBuildInviteBody(t *testing.T) {
	inv := Invite{
		To:            "asha@example.com",
		CandidateName: "Asha Rao",
		JobTitle:      "Backend Engineer",
		StartsAtLocal: "Sunday, 15 June 2025 at 10:00 AM IST",
		URL:           "https://hire.example.com/interview/?session_key=abc123",
	}

	body := BuildInviteBody(inv)
	assert.Contains(t, body, "Hi Asha Rao,")
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Sunday, 15 June 2025 at 10:00 AM IST")
	assert.Contains(t, body, "session_key=abc123")
	assert.Contains(t, body, "15 minutes before")

	subject := BuildInviteSubject(inv)
	assert.Equal(t, "Your interview for Backend Engineer is scheduled", subject)
}

func TestBuildInviteBodyWithoutLink(t *testing.T) {
	body := BuildInviteBody(Invite{
		CandidateName: "Asha",
		StartsAtLocal: "Sunday, 15 June 2025 at 10:00 AM IST",
	})
	assert.NotContains(t, body, "Join here")
	assert.Contains(t, body, "separately")
}

func TestBuildInviteURL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		development  bool
		wantIncluded bool
		wantURL      string
	}{
		{
			name:         "production with real base",
			baseURL:      "https://hire.example.com",
			development:  false,
			wantIncluded: true,
			wantURL:      "https://hire.example.com/interview/?session_key=k1",
		},
		{
			name:         "trailing slash trimmed",
			baseURL:      "https://hire.example.com/",
			development:  false,
			wantIncluded: true,
			wantURL:      "https://hire.example.com/interview/?session_key=k1",
		},
		{
			name:         "production with unset base withholds link",
			baseURL:      "",
			development:  false,
			wantIncluded: false,
		},
		{
			name:         "production with localhost withholds link",
			baseURL:      "http://localhost:8080",
			development:  false,
			wantIncluded: false,
		},
		{
			name:         "development with unset base falls back",
			baseURL:      "",
			development:  true,
			wantIncluded: true,
			wantURL:      "http://localhost:8080/interview/?session_key=k1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, included := BuildInviteURL(tt.baseURL, tt.development, "k1")
			assert.Equal(t, tt.wantIncluded, included)
			if tt.wantIncluded {
				assert.Equal(t, tt.wantURL, url)
			} else {
				assert.Empty(t, url)
			}
		})
	}
}

func TestWebhookSender(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewServiceWithSender(newWebhookSender(srv.URL))
	err := svc.SendInvite(context.Background(), Invite{
		To:            "asha@example.com",
		CandidateName: "Asha Rao",
		JobTitle:      "Backend Engineer",
		StartsAtLocal: "Sunday, 15 June 2025 at 10:00 AM IST",
		URL:           "https://hire.example.com/interview/?session_key=k1",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", got.To)
	assert.Equal(t, "Your interview for Backend Engineer is scheduled", got.Subject)
	assert.Contains(t, got.Body, "session_key=k1")
}

func TestWebhookSenderNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewServiceWithSender(newWebhookSender(srv.URL))
	err := svc.SendInvite(context.Background(), Invite{To: "asha@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
