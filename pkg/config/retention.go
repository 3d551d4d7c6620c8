package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EvidenceRetentionDays is how many days proctoring evidence frames and
	// recordings are kept before deletion.
	EvidenceRetentionDays int `yaml:"evidence_retention_days"`

	// AudioRetentionDays is how many days response audio blobs are kept;
	// transcripts are permanent.
	AudioRetentionDays int `yaml:"audio_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EvidenceRetentionDays: 90,
		AudioRetentionDays:    30,
		CleanupInterval:       12 * time.Hour,
	}
}

func loadRetentionConfig() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.EvidenceRetentionDays = getEnvInt("EVIDENCE_RETENTION_DAYS", cfg.EvidenceRetentionDays)
	cfg.AudioRetentionDays = getEnvInt("AUDIO_RETENTION_DAYS", cfg.AudioRetentionDays)
	return cfg
}
