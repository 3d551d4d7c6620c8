package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/config"
)

// Worker is a single evaluation worker that polls for and scores completed
// sessions.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	evaluator Evaluator
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentSessionID string
	evaluated        int
	lastActivity     time.Time
}

// NewWorker creates a new evaluation worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, evaluator Evaluator) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		evaluator:    evaluator,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight evaluation to
// finish. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           w.status,
		CurrentSessionID: w.currentSessionID,
		Evaluated:        w.evaluated,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Evaluation worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Evaluation worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, evaluation worker shutting down")
			return
		default:
			if err := w.pollAndEvaluate(ctx); err != nil {
				if errors.Is(err, ErrQueueEmpty) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error evaluating session", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndEvaluate claims the next completed session and scores it.
func (w *Worker) pollAndEvaluate(ctx context.Context) error {
	sess, err := w.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("session_id", sess.ID, "worker_id", w.id, "attempt", sess.EvaluationAttempts)
	log.Info("Evaluation claim taken")

	w.setStatus(WorkerStatusWorking, sess.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	evalCtx, cancelEval := context.WithTimeout(ctx, w.config.EvaluationTimeout)
	defer cancelEval()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(evalCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, sess.ID)

	result, err := w.evaluator.Evaluate(evalCtx, sess.ID)
	cancelHeartbeat()

	// The claim must be settled even when the surrounding context is gone.
	settleCtx := context.WithoutCancel(ctx)

	if err != nil {
		log.Warn("Evaluation attempt failed", "error", err)
		if sess.EvaluationAttempts >= w.config.MaxAttempts {
			return w.persistExhausted(settleCtx, sess)
		}
		if relErr := w.releaseClaim(settleCtx, sess.ID); relErr != nil {
			return fmt.Errorf("failed to release claim after attempt %d: %w", sess.EvaluationAttempts, relErr)
		}
		return nil
	}

	if relErr := w.releaseClaim(settleCtx, sess.ID); relErr != nil {
		return fmt.Errorf("failed to release claim after evaluation: %w", relErr)
	}

	w.mu.Lock()
	w.evaluated++
	w.mu.Unlock()

	log.Info("Evaluation complete", "overall_score", result.OverallScore, "fallback", result.IsFallback)
	return nil
}

// claimNext atomically claims the oldest unevaluated completed session using
// FOR UPDATE SKIP LOCKED, so concurrent workers and replicas never pick the
// same session. The attempt counter rides along with the claim.
func (w *Worker) claimNext(ctx context.Context) (*ent.Session, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := tx.Session.Query().
		Where(
			session.StatusEQ(session.StatusCompleted),
			session.IsEvaluated(false),
			session.ClaimedByIsNil(),
		).
		Order(ent.Asc(session.FieldSessionEndedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrQueueEmpty
		}
		return nil, fmt.Errorf("failed to query unevaluated sessions: %w", err)
	}

	sess, err = sess.Update().
		SetClaimedBy(w.podID).
		AddEvaluationAttempts(1).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return sess, nil
}

// persistExhausted writes the neutral fallback result once a session has
// burned through its attempts, then drops the claim. The fallback write
// flips is_evaluated, so the session leaves the queue for good.
func (w *Worker) persistExhausted(ctx context.Context, sess *ent.Session) error {
	reason := fmt.Sprintf("evaluation failed %d times", sess.EvaluationAttempts)
	if _, err := w.evaluator.PersistFallback(ctx, sess.ID, reason); err != nil {
		// Leave the claim released so another worker can retry the fallback.
		if relErr := w.releaseClaim(ctx, sess.ID); relErr != nil {
			slog.Error("Failed to release claim after fallback failure", "session_id", sess.ID, "error", relErr)
		}
		return fmt.Errorf("failed to persist fallback result: %w", err)
	}
	if err := w.releaseClaim(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to release claim after fallback: %w", err)
	}
	slog.Warn("Session evaluation attempts exhausted, fallback result persisted",
		"session_id", sess.ID, "attempts", sess.EvaluationAttempts)
	return nil
}

// releaseClaim clears claimed_by so the session can be claimed again (or,
// when is_evaluated flipped, simply leaves the queue).
func (w *Worker) releaseClaim(ctx context.Context, sessionID string) error {
	return w.client.Session.UpdateOneID(sessionID).
		ClearClaimedBy().
		Exec(ctx)
}

// runHeartbeat refreshes last_interaction_at while the evaluation runs so
// orphan recovery can tell a live claim from a dead one.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Session.UpdateOneID(sessionID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
