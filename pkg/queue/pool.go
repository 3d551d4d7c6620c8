package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/config"
)

// Pool manages a set of evaluation workers plus the orphan recovery loop.
type Pool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	evaluator Evaluator
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	orphans orphanState
}

// NewPool creates a new evaluation worker pool.
func NewPool(podID string, client *ent.Client, cfg *config.QueueConfig, evaluator Evaluator) *Pool {
	return &Pool{
		podID:     podID,
		client:    client,
		config:    cfg,
		evaluator: evaluator,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan recovery background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Evaluation pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting evaluation pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.evaluator)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanRecovery(ctx)
	}()

	slog.Info("Evaluation pool started")
	return nil
}

// Stop signals all workers to stop and waits for in-flight evaluations to
// finish.
func (p *Pool) Stop() {
	slog.Info("Stopping evaluation pool")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Evaluation pool stopped")
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusCompleted),
			session.IsEvaluated(false),
			session.ClaimedByIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}

	active, errA := p.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusCompleted),
			session.IsEvaluated(false),
			session.ClaimedByEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active evaluations for health check", "pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	claimsReleased := p.orphans.claimsReleased
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active evaluations query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:         isHealthy,
		DBReachable:       dbHealthy,
		DBError:           dbError,
		PodID:             p.podID,
		ActiveWorkers:     activeWorkers,
		TotalWorkers:      len(p.workers),
		ActiveEvaluations: active,
		QueueDepth:        queueDepth,
		WorkerStats:       workerStats,
		LastOrphanScan:    lastOrphanScan,
		ClaimsReleased:    claimsReleased,
	}
}
