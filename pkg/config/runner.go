package config

import "time"

// RunnerConfig controls the sandboxed code runner.
type RunnerConfig struct {
	// TestTimeout is the wall-clock limit per test case.
	TestTimeout time.Duration `yaml:"test_timeout"`

	// WorkDir is where per-test temporary directories are created; empty
	// uses the OS default.
	WorkDir string `yaml:"work_dir"`

	// BwrapPath overrides sandbox binary discovery; empty means probe PATH.
	BwrapPath string `yaml:"bwrap_path"`

	// AllowUnsandboxed permits execution without an isolation primitive.
	// Only ever set in development; the runner refuses otherwise.
	AllowUnsandboxed bool `yaml:"allow_unsandboxed"`

	// MaxSourceBytes rejects oversized submissions before they hit disk.
	MaxSourceBytes int `yaml:"max_source_bytes"`

	// MaxOutputBytes truncates runaway stdout/stderr.
	MaxOutputBytes int `yaml:"max_output_bytes"`
}

// DefaultRunnerConfig returns the built-in code runner defaults.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		TestTimeout:    15 * time.Second,
		MaxSourceBytes: 256 * 1024,
		MaxOutputBytes: 64 * 1024,
	}
}

func loadRunnerConfig() *RunnerConfig {
	cfg := DefaultRunnerConfig()
	cfg.TestTimeout = getEnvSeconds("CODE_RUNNER_TIMEOUT_SECONDS", cfg.TestTimeout)
	cfg.WorkDir = getEnvOrDefault("CODE_RUNNER_WORK_DIR", cfg.WorkDir)
	cfg.BwrapPath = getEnvOrDefault("CODE_RUNNER_BWRAP_PATH", cfg.BwrapPath)
	cfg.AllowUnsandboxed = getEnvBool("CODE_RUNNER_ALLOW_UNSANDBOXED", cfg.AllowUnsandboxed)
	return cfg
}
