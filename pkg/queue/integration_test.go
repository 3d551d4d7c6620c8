package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/ai/mock"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/evaluation"
	testdb "github.com/hireloop/hireloop/test/database"
)

// seedCompletedSession creates the candidate/job/interview chain plus one
// completed, unevaluated session that ended endedAgo in the past.
func seedCompletedSession(t *testing.T, client *database.Client, endedAgo time.Duration) *ent.Session {
	t.Helper()
	ctx := context.Background()

	j, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetTitle("Backend Engineer").
		SetCompanyName("Acme Systems").
		SetDescription("Design and operate the ingestion services.").
		Save(ctx)
	require.NoError(t, err)

	c, err := client.Candidate.Create().
		SetID(uuid.NewString()).
		SetFullName("Dana Smith").
		SetEmail(uuid.NewString() + "@example.com").
		Save(ctx)
	require.NoError(t, err)

	iv, err := client.Interview.Create().
		SetID(uuid.NewString()).
		SetCandidateID(c.ID).
		SetJobID(j.ID).
		SetStatus(interview.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	ended := time.Now().Add(-endedAgo)
	sess, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetSessionKey(uuid.NewString()).
		SetInterviewID(iv.ID).
		SetCandidateName(c.FullName).
		SetCandidateEmail(c.Email).
		SetJobDescription(j.Description).
		SetResumeText("Five years building data pipelines.").
		SetStatus(session.StatusCompleted).
		SetSessionStartedAt(ended.Add(-30 * time.Minute)).
		SetSessionEndedAt(ended).
		Save(ctx)
	require.NoError(t, err)
	return sess
}

// newTestEngine wires the real evaluation engine to the scripted gateway.
func newTestEngine(t *testing.T, client *database.Client) *evaluation.Engine {
	t.Helper()
	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)
	return evaluation.NewEngine(client.Client, mock.New(bank), "mock")
}

// failingEvaluator always fails the evaluation but still persists the real
// fallback, mirroring a gateway that is down for good.
type failingEvaluator struct {
	engine *evaluation.Engine
	calls  atomic.Int64
}

func (f *failingEvaluator) Evaluate(ctx context.Context, sessionID string) (*ent.EvaluationResult, error) {
	f.calls.Add(1)
	return nil, errors.New("scripted evaluation failure")
}

func (f *failingEvaluator) PersistFallback(ctx context.Context, sessionID, reason string) (*ent.EvaluationResult, error) {
	return f.engine.PersistFallback(ctx, sessionID, reason)
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		EvaluationTimeout:       30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		// Recovery is exercised directly; the loop would race the
		// assertions below.
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         5 * time.Minute,
		MaxAttempts:             8,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestClaimNext(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	older := seedCompletedSession(t, dbClient, 2*time.Hour)
	newer := seedCompletedSession(t, dbClient, 1*time.Hour)

	// Neither an active session nor an evaluated one belongs in the queue.
	active := seedCompletedSession(t, dbClient, 30*time.Minute)
	require.NoError(t, client.Session.UpdateOneID(active.ID).SetStatus(session.StatusActive).Exec(ctx))
	done := seedCompletedSession(t, dbClient, 30*time.Minute)
	require.NoError(t, client.Session.UpdateOneID(done.ID).SetIsEvaluated(true).Exec(ctx))

	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), nil)

	claimed, err := w.claimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, claimed.ID, "oldest completed session should be claimed first")
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod", *claimed.ClaimedBy)
	assert.Equal(t, 1, claimed.EvaluationAttempts)
	assert.NotNil(t, claimed.LastInteractionAt)

	claimed2, err := w.claimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, claimed2.ID)

	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestConcurrentClaimsDistinctSessions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sessionIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		s := seedCompletedSession(t, dbClient, time.Duration(i+1)*time.Hour)
		sessionIDs[s.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil)
			sess, err := w.claimNext(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, sess.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 sessions should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "session %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := sessionIDs[id]
		assert.True(t, ok, "claimed session %s was not in the seeded set", id)
	}
}

func TestWorkerEvaluatesClaim(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sess := seedCompletedSession(t, dbClient, time.Hour)

	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), newTestEngine(t, dbClient))
	require.NoError(t, w.pollAndEvaluate(ctx))

	updated, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsEvaluated)
	assert.Nil(t, updated.ClaimedBy, "claim should be released after evaluation")
	assert.Equal(t, 1, updated.EvaluationAttempts)

	result, err := client.EvaluationResult.Query().
		Where(evaluationresult.SessionIDEQ(sess.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.8, result.OverallScore)
	assert.False(t, result.IsFallback)

	assert.Equal(t, 1, w.Health().Evaluated)
}

func TestFailedAttemptReleasesClaim(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sess := seedCompletedSession(t, dbClient, time.Hour)

	ev := &failingEvaluator{engine: newTestEngine(t, dbClient)}
	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), ev)

	// Two failed rounds: each claims, fails, and releases.
	require.NoError(t, w.pollAndEvaluate(ctx))
	require.NoError(t, w.pollAndEvaluate(ctx))

	updated, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsEvaluated)
	assert.Nil(t, updated.ClaimedBy, "failed claim should be released for retry")
	assert.Equal(t, 2, updated.EvaluationAttempts)
	assert.Equal(t, int64(2), ev.calls.Load())

	count, err := client.EvaluationResult.Query().
		Where(evaluationresult.SessionIDEQ(sess.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "no result row before attempts are exhausted")
}

func TestExhaustedAttemptsPersistFallback(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sess := seedCompletedSession(t, dbClient, time.Hour)
	cfg := intTestQueueConfig()

	// The next claim is the final allowed attempt.
	require.NoError(t, client.Session.UpdateOneID(sess.ID).
		SetEvaluationAttempts(cfg.MaxAttempts-1).
		Exec(ctx))

	ev := &failingEvaluator{engine: newTestEngine(t, dbClient)}
	w := NewWorker("test-worker-0", "test-pod", client, cfg, ev)
	require.NoError(t, w.pollAndEvaluate(ctx))

	updated, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsEvaluated, "fallback result should close out the session")
	assert.Nil(t, updated.ClaimedBy)
	assert.Equal(t, cfg.MaxAttempts, updated.EvaluationAttempts)

	result, err := client.EvaluationResult.Query().
		Where(evaluationresult.SessionIDEQ(sess.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, result.IsFallback)
	assert.Equal(t, 7.0, result.OverallScore)

	// Nothing left to claim.
	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestOrphanRecoveryReleasesStaleClaims(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// A claim whose worker died mid-evaluation.
	stale := seedCompletedSession(t, dbClient, 2*time.Hour)
	require.NoError(t, client.Session.UpdateOneID(stale.ID).
		SetClaimedBy("crashed-pod").
		SetEvaluationAttempts(1).
		SetLastInteractionAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	// A claim still heartbeating.
	live := seedCompletedSession(t, dbClient, time.Hour)
	require.NoError(t, client.Session.UpdateOneID(live.ID).
		SetClaimedBy("healthy-pod").
		SetEvaluationAttempts(1).
		SetLastInteractionAt(time.Now()).
		Exec(ctx))

	cfg := intTestQueueConfig()
	pool := &Pool{podID: "test-pod", client: client, config: cfg}

	require.NoError(t, pool.recoverStalledClaims(ctx))

	updated, err := client.Session.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.ClaimedBy, "stale claim should be released")
	assert.Equal(t, session.StatusCompleted, updated.Status, "release must not move the session to a terminal error")
	assert.False(t, updated.IsEvaluated)
	assert.Equal(t, 1, updated.EvaluationAttempts, "release must not consume an attempt")

	untouched, err := client.Session.Get(ctx, live.ID)
	require.NoError(t, err)
	require.NotNil(t, untouched.ClaimedBy)
	assert.Equal(t, "healthy-pod", *untouched.ClaimedBy)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.claimsReleased)
	pool.orphans.mu.Unlock()
}

func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	mine := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		s := seedCompletedSession(t, dbClient, time.Hour)
		require.NoError(t, client.Session.UpdateOneID(s.ID).
			SetClaimedBy(podID).
			SetEvaluationAttempts(1).
			Exec(ctx))
		mine = append(mine, s.ID)
	}

	other := seedCompletedSession(t, dbClient, time.Hour)
	require.NoError(t, client.Session.UpdateOneID(other.ID).
		SetClaimedBy("other-pod").
		SetEvaluationAttempts(1).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID))

	for _, id := range mine {
		s, err := client.Session.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, s.ClaimedBy, "session %s should be back in the queue", id)
		assert.Equal(t, session.StatusCompleted, s.Status)
	}

	kept, err := client.Session.Get(ctx, other.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.ClaimedBy)
	assert.Equal(t, "other-pod", *kept.ClaimedBy, "other pod's claim should be untouched")
}

func TestPoolEndToEnd(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedCompletedSession(t, dbClient, time.Duration(i+1)*time.Hour)
	}

	cfg := intTestQueueConfig()
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewPool("test-pod", client, cfg, newTestEngine(t, dbClient))
	require.NoError(t, pool.Start(ctx))

	evaluatedCount := func() int {
		n, err := client.Session.Query().Where(session.IsEvaluated(true)).Count(ctx)
		require.NoError(t, err)
		return n
	}
	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for all sessions to be evaluated",
		func() bool { return evaluatedCount() == 3 })

	pool.Stop()

	results, err := client.EvaluationResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, results)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Zero(t, health.QueueDepth)
	assert.Zero(t, health.ActiveEvaluations)
}

// TestRacingPools runs two pools against the same schema, the way two
// replicas share one database. SKIP LOCKED claiming must hand every session
// to exactly one worker.
func TestRacingPools(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	const sessions = 6
	ids := make([]string, 0, sessions)
	for i := 0; i < sessions; i++ {
		s := seedCompletedSession(t, clientA, time.Duration(i+1)*time.Hour)
		ids = append(ids, s.ID)
	}

	cfg := intTestQueueConfig()
	cfg.PollInterval = 20 * time.Millisecond

	poolA := NewPool("pod-a", clientA.Client, cfg, newTestEngine(t, clientA))
	poolB := NewPool("pod-b", clientB.Client, cfg, newTestEngine(t, clientB))
	require.NoError(t, poolA.Start(ctx))
	require.NoError(t, poolB.Start(ctx))

	evaluatedCount := func() int {
		n, err := clientA.Client.Session.Query().Where(session.IsEvaluated(true)).Count(ctx)
		require.NoError(t, err)
		return n
	}
	awaitCondition(t, 15*time.Second, 100*time.Millisecond,
		"waiting for both pools to drain the queue",
		func() bool { return evaluatedCount() == sessions })

	poolA.Stop()
	poolB.Stop()

	// Exactly one result row and one attempt per session: nobody
	// double-evaluated.
	for _, id := range ids {
		count, err := clientA.Client.EvaluationResult.Query().
			Where(evaluationresult.SessionIDEQ(id)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "session %s should have exactly one result", id)

		s, err := clientA.Client.Session.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, s.EvaluationAttempts, "session %s should be claimed exactly once", id)
		assert.Nil(t, s.ClaimedBy)
	}
}
