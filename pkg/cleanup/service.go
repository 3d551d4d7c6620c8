// Package cleanup enforces retention on stored interview artifacts.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/storage"
)

// tmpMaxAge bounds how long interrupted-upload scratch files may linger.
const tmpMaxAge = 24 * time.Hour

// Service periodically enforces retention policies on the object store:
//   - Evidence frames and session recordings past the evidence window
//   - Response audio past the audio window (transcripts are permanent)
//   - Abandoned temp objects from interrupted uploads
//
// All operations are idempotent. A failed sweep raises a system warning so
// recruiters learn that artifacts may be outliving their window; the warning
// clears on the next successful pass.
type Service struct {
	config   *config.RetentionConfig
	store    *storage.Store
	warnings *services.SystemWarningsService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	store *storage.Store,
	warnings *services.SystemWarningsService,
) *Service {
	return &Service{
		config:   cfg,
		store:    store,
		warnings: warnings,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"evidence_retention_days", s.config.EvidenceRetentionDays,
		"audio_retention_days", s.config.AudioRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll()
		}
	}
}

func (s *Service) runAll() {
	evidenceCutoff := time.Now().AddDate(0, 0, -s.config.EvidenceRetentionDays)
	audioCutoff := time.Now().AddDate(0, 0, -s.config.AudioRetentionDays)

	// Recordings carry the same retention window as evidence frames.
	s.prune(storage.PrefixEvidence, evidenceCutoff)
	s.prune(storage.PrefixRecordings, evidenceCutoff)
	s.prune(storage.PrefixAudio, audioCutoff)
	s.prune(storage.PrefixTmp, time.Now().Add(-tmpMaxAge))
}

func (s *Service) prune(prefix string, cutoff time.Time) {
	count, err := s.store.RemoveOlderThan(prefix, cutoff)
	if err != nil {
		slog.Error("Retention: prune failed", "prefix", prefix, "error", err)
		s.warnings.AddWarning(services.WarningCategoryRetention,
			fmt.Sprintf("Retention sweep for %s failed", prefix),
			err.Error(), prefix)
		return
	}
	s.warnings.ClearByComponent(services.WarningCategoryRetention, prefix)
	if count > 0 {
		slog.Info("Retention: pruned expired objects", "prefix", prefix, "count", count)
	}
}
