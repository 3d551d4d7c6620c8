package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
)

// quotaState is the process-wide QUOTA_EXHAUSTED flag. Once set, every LLM
// operation short-circuits to its fallback until an operator reset or a
// process restart. ASR and TTS health is tracked separately (breakers).
type quotaState struct {
	mu        sync.Mutex
	exhausted bool
	since     time.Time
	reason    string
}

// MarkExhausted latches the flag. Returns true on the first set.
func (q *quotaState) MarkExhausted(reason string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.exhausted {
		return false
	}
	q.exhausted = true
	q.since = time.Now()
	q.reason = reason
	return true
}

// Exhausted reports the flag.
func (q *quotaState) Exhausted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.exhausted
}

// Reset clears the flag. Returns true when it was set.
func (q *quotaState) Reset() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	was := q.exhausted
	q.exhausted = false
	q.since = time.Time{}
	q.reason = ""
	return was
}

// Since returns when the flag was set, nil when clear.
func (q *quotaState) Since() *time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.exhausted {
		return nil
	}
	t := q.since
	return &t
}

// errorClass buckets provider errors for retry and quota policy.
type errorClass int

const (
	classTransient errorClass = iota // network, 5xx: retried
	classQuota                       // 429 / quota signatures: latch the flag
	classFatal                       // auth, bad request, cancellation: never retried
)

// classifyError maps a provider error to its policy bucket.
func classifyError(err error) errorClass {
	if err == nil {
		return classFatal
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return classFatal
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return classQuota
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return classFatal
		case apiErr.StatusCode >= 500:
			return classTransient
		default:
			return classFatal
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests") {
		return classQuota
	}

	// Anything else without an API payload is assumed to be a network fault.
	return classTransient
}

// noteQuota latches the flag when an error carries a quota signature and
// logs the transition once.
func (q *quotaState) noteQuota(err error) {
	if classifyError(err) != classQuota {
		return
	}
	if q.MarkExhausted(err.Error()) {
		slog.Error("AI quota exhausted; LLM operations will use fallbacks until reset",
			"error", err)
	}
}
