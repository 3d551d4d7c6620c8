package config

import (
	"errors"
	"time"
)

// LinkConfig controls interview link minting and verification.
type LinkConfig struct {
	// Secret is the process-wide HMAC secret. Rotating it invalidates every
	// outstanding link.
	Secret string `yaml:"-"`

	// EarlyGrace is how long before the scheduled start a link verifies OK.
	EarlyGrace time.Duration `yaml:"early_grace"`

	// LateGrace is how long past the scheduled end a link stays valid;
	// link_expires_at = ended_at + LateGrace.
	LateGrace time.Duration `yaml:"late_grace"`
}

// DefaultLinkConfig returns the built-in link defaults.
func DefaultLinkConfig() *LinkConfig {
	return &LinkConfig{
		EarlyGrace: 15 * time.Minute,
		LateGrace:  2 * time.Hour,
	}
}

func loadLinkConfig() (*LinkConfig, error) {
	cfg := DefaultLinkConfig()
	cfg.Secret = getEnvOrDefault("INTERVIEW_LINK_SECRET", "")
	if cfg.Secret == "" {
		return nil, errors.New("INTERVIEW_LINK_SECRET is required")
	}
	cfg.EarlyGrace = getEnvSeconds("LINK_EARLY_GRACE_SECONDS", cfg.EarlyGrace)
	cfg.LateGrace = getEnvSeconds("LINK_LATE_GRACE_SECONDS", cfg.LateGrace)
	return cfg, nil
}

// ScheduleConfig holds the civil-time zone for Slot ↔ Interview conversions.
type ScheduleConfig struct {
	Timezone string `yaml:"timezone"`
}

// DefaultScheduleConfig returns the built-in scheduling defaults.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{Timezone: "Asia/Kolkata"}
}

func loadScheduleConfig() *ScheduleConfig {
	cfg := DefaultScheduleConfig()
	cfg.Timezone = getEnvOrDefault("INTERVIEW_TIMEZONE", cfg.Timezone)
	return cfg
}
