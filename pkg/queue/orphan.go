package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/session"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu             sync.Mutex
	lastScan       time.Time
	claimsReleased int
}

// runOrphanRecovery periodically releases claims whose worker stopped
// heartbeating. All pods run this independently; releasing an already
// released claim is a no-op.
func (p *Pool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverStalledClaims(ctx); err != nil {
				slog.Error("Orphan recovery failed", "error", err)
			}
		}
	}
}

// recoverStalledClaims releases evaluation claims with stale heartbeats. The
// session goes back to the pool instead of a terminal state: the attempt
// counter already rose when the dead worker claimed it, so a session that
// keeps killing workers still converges on the fallback result.
func (p *Pool) recoverStalledClaims(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	released, err := p.client.Session.Update().
		Where(
			session.StatusEQ(session.StatusCompleted),
			session.IsEvaluated(false),
			session.ClaimedByNotNil(),
			session.LastInteractionAtNotNil(),
			session.LastInteractionAtLT(threshold),
		).
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release stalled claims: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.claimsReleased += released
	p.orphans.mu.Unlock()

	if released > 0 {
		slog.Warn("Released stalled evaluation claims", "count", released)
	}
	return nil
}

// CleanupStartupOrphans releases claims held by this pod before it restarted.
// Called once during startup, before the pool begins processing, so sessions
// interrupted by a crash go straight back into the queue.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	released, err := client.Session.Update().
		Where(
			session.StatusEQ(session.StatusCompleted),
			session.IsEvaluated(false),
			session.ClaimedByEQ(podID),
		).
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release startup orphans: %w", err)
	}

	if released > 0 {
		slog.Warn("Released claims held before restart", "pod_id", podID, "count", released)
	}
	return nil
}
