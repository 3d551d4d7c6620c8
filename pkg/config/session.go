package config

import "time"

// SessionConfig controls the session orchestrator and its expiry sweeper.
type SessionConfig struct {
	// IdleTimeout is how long an ACTIVE session may go without a heartbeat
	// before the sweeper may expire it (once the scheduled window has also
	// passed).
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// SweepInterval is how often the expiry sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// QuestionCount is the number of MAIN questions generated per session.
	QuestionCount int `yaml:"question_count"`

	// CompleteEvalBudget bounds the synchronous evaluation attempt on
	// complete; the queue worker picks up anything that misses it.
	CompleteEvalBudget time.Duration `yaml:"complete_eval_budget"`
}

// DefaultSessionConfig returns the built-in session defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		IdleTimeout:        10 * time.Minute,
		SweepInterval:      time.Minute,
		QuestionCount:      5,
		CompleteEvalBudget: 2 * time.Minute,
	}
}

func loadSessionConfig() *SessionConfig {
	cfg := DefaultSessionConfig()
	cfg.IdleTimeout = getEnvSeconds("SESSION_IDLE_TIMEOUT_SECONDS", cfg.IdleTimeout)
	return cfg
}
