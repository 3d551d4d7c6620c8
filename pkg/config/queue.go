package config

import "time"

// QueueConfig contains evaluation worker pool configuration. These values
// control how completed sessions are polled, claimed, and evaluated.
type QueueConfig struct {
	// WorkerCount is the number of evaluation workers per replica/pod.
	// Each worker independently polls and claims completed sessions.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking unevaluated sessions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// EvaluationTimeout is the maximum time one evaluation may run.
	EvaluationTimeout time.Duration `yaml:"evaluation_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim while an
	// evaluation is running. Claims without a heartbeat past OrphanThreshold
	// are released back to the pool.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// evaluations during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for claimed-but-stalled
	// sessions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claim may go without a heartbeat before
	// it is released back to the pool.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxAttempts caps evaluation retries; past it the fallback result is
	// persisted unconditionally.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		PollInterval:            15 * time.Second,
		PollIntervalJitter:      5 * time.Second,
		EvaluationTimeout:       5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 2 * time.Minute,
		OrphanThreshold:         10 * time.Minute,
		MaxAttempts:             8,
	}
}

func loadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("EVAL_WORKER_COUNT", cfg.WorkerCount)
	return cfg
}
