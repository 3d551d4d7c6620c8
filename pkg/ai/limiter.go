package ai

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Limiter is the process-wide request limiter shared by all LLM operations.
// It sits at the provider client boundary: one instance per process,
// acquired before every outbound chat call. Saturated callers wait until
// the oldest request ages out, bounded by maxWait; past that the operation
// degrades instead of queueing forever.
type Limiter struct {
	limiter *rate.Limiter
	maxWait time.Duration
}

// NewLimiter builds a limiter admitting perMinute requests per minute with a
// same-size burst. perMinute <= 0 disables limiting.
func NewLimiter(perMinute int, maxWait time.Duration) *Limiter {
	if perMinute <= 0 {
		return &Limiter{}
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		maxWait: maxWait,
	}
}

// Acquire blocks until a request slot is available. Returns ErrRateLimited
// when the bounded wait elapses first, or the context error when the caller
// was cancelled while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return nil
	}

	waitCtx := ctx
	if l.maxWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.maxWait)
		defer cancel()
	}

	if err := l.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrRateLimited
		}
		return err
	}
	return nil
}
