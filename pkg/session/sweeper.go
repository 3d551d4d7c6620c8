package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/services"
)

// Sweeper periodically expires lapsed sessions:
//   - SCHEDULED sessions whose link window fully closed (never joined)
//   - ACTIVE sessions idle past the timeout once their window has passed
//
// Expired sessions release their proctoring attachment. The sweep is
// idempotent and safe to run from multiple pods.
type Sweeper struct {
	config   *config.SessionConfig
	sessions *services.SessionService
	monitor  Monitor

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a new Sweeper. monitor may be nil.
func NewSweeper(cfg *config.SessionConfig, sessions *services.SessionService, monitor Monitor) *Sweeper {
	if cfg == nil {
		cfg = config.DefaultSessionConfig()
	}
	return &Sweeper{
		config:   cfg,
		sessions: sessions,
		monitor:  monitor,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Session sweeper started",
		"interval", s.config.SweepInterval,
		"idle_timeout", s.config.IdleTimeout)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Session sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one expiry pass. Exported so operators and tests can force a
// pass without waiting out the interval.
func (s *Sweeper) Sweep(ctx context.Context) int {
	expired, err := s.sessions.ExpireLapsedSessions(ctx, s.config.IdleTimeout)
	if err != nil {
		slog.Error("Session sweep failed", "error", err)
		return 0
	}

	for _, id := range expired {
		if s.monitor != nil {
			s.monitor.Detach(id)
		}
	}
	if len(expired) > 0 {
		slog.Info("Expired lapsed sessions", "count", len(expired))
	}
	return len(expired)
}
