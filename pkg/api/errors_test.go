package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/services"
)

func mapThrough(t *testing.T, mapper func(*gin.Context, error), err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/under-test", nil)

	mapper(c, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "validation carries the field",
			err:        services.NewValidationError("slot_id", "required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"field": "slot_id"},
		},
		{
			name:       "state conflict carries the code",
			err:        services.NewStateError(services.CodeSlotFull, "slot %s is full", "s1"),
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"code": services.CodeSlotFull, "error": "slot s1 is full"},
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "resource not found"},
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"error": "resource already exists"},
		},
		{
			name:       "concurrent modification",
			err:        services.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"error": "concurrent modification, retry"},
		},
		{
			name:       "unexpected errors stay opaque",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "internal server error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapThrough(t, mapServiceError, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			for k, v := range tt.wantBody {
				assert.Equal(t, v, body[k])
			}
		})
	}
}

// The candidate surface collapses every authorization failure into one
// opaque message; only the two window states get their own wording, and
// neither names the interview.
func TestMapPublicError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
	}{
		{
			name:       "not yet active",
			err:        services.NewStateError(services.CodeLinkNotYetActive, "interview link is not active yet"),
			wantStatus: http.StatusForbidden,
			wantError:  "interview is not active yet",
		},
		{
			name:       "expired is indistinguishable from invalid",
			err:        services.NewStateError(services.CodeLinkExpired, "interview link has expired"),
			wantStatus: http.StatusForbidden,
			wantError:  publicInvalidLink,
		},
		{
			name:       "unknown entity is indistinguishable from invalid",
			err:        services.ErrNotFound,
			wantStatus: http.StatusForbidden,
			wantError:  publicInvalidLink,
		},
		{
			name:       "domain conflicts keep their code",
			err:        services.NewStateError(services.CodeAlreadyAnswered, "question q1 is already answered"),
			wantStatus: http.StatusConflict,
			wantCode:   services.CodeAlreadyAnswered,
		},
		{
			name:       "validation is reported",
			err:        services.NewValidationError("payload.text", "text answer must not be empty"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "infrastructure faults stay generic",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "something went wrong, please retry",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapThrough(t, mapPublicError, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
		})
	}
}
