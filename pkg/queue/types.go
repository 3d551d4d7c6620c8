// Package queue turns completed interview sessions into evaluation results.
// Workers poll for sessions with status=completed and is_evaluated=false,
// claim them with FOR UPDATE SKIP LOCKED so replicas never double-evaluate,
// and hand each claim to the evaluation engine. A claim that stops
// heartbeating is released back to the pool rather than marked terminal;
// once a session exhausts its attempts the neutral fallback result is
// persisted so recruiters always get a row.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/hireloop/hireloop/ent"
)

// ErrQueueEmpty indicates no completed sessions are waiting for evaluation.
var ErrQueueEmpty = errors.New("no sessions awaiting evaluation")

// Evaluator scores one session. Evaluate persists the result row and flips
// is_evaluated in one transaction; an error return means nothing was written
// and the claim should be released for retry. PersistFallback writes the
// neutral result once attempts are exhausted.
type Evaluator interface {
	Evaluate(ctx context.Context, sessionID string) (*ent.EvaluationResult, error)
	PersistFallback(ctx context.Context, sessionID, reason string) (*ent.EvaluationResult, error)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy         bool           `json:"is_healthy"`
	DBReachable       bool           `json:"db_reachable"`
	DBError           string         `json:"db_error,omitempty"`
	PodID             string         `json:"pod_id"`
	ActiveWorkers     int            `json:"active_workers"`
	TotalWorkers      int            `json:"total_workers"`
	ActiveEvaluations int            `json:"active_evaluations"`
	QueueDepth        int            `json:"queue_depth"`
	WorkerStats       []WorkerHealth `json:"worker_stats"`
	LastOrphanScan    time.Time      `json:"last_orphan_scan"`
	ClaimsReleased    int            `json:"claims_released"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string       `json:"id"`
	Status           WorkerStatus `json:"status"`
	CurrentSessionID string       `json:"current_session_id,omitempty"`
	Evaluated        int          `json:"evaluated"`
	LastActivity     time.Time    `json:"last_activity"`
}
