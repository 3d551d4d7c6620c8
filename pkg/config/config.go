// Package config assembles the service configuration from environment
// variables and the optional question-bank YAML file. Each concern has its
// own section struct with built-in defaults; Load applies the environment on
// top of them.
package config

import (
	"fmt"
)

// Config is the umbrella configuration object handed to the application
// wiring in main.
type Config struct {
	Server    *ServerConfig
	Link      *LinkConfig
	Schedule  *ScheduleConfig
	Session   *SessionConfig
	AI        *AIConfig
	Proctor   *ProctorConfig
	Runner    *RunnerConfig
	Notify    *NotifyConfig
	Storage   *StorageConfig
	Queue     *QueueConfig
	Retention *RetentionConfig

	// QuestionBank is the deterministic content served when the AI gateway
	// is degraded, plus the coding questions (with test cases) per language.
	QuestionBank *QuestionBank
}

// ServerConfig covers the HTTP listener and deployment identity.
type ServerConfig struct {
	Port        int    `yaml:"port"`
	BaseURL     string `yaml:"base_url"`
	Environment string `yaml:"environment"`
	APIToken    string `yaml:"-"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:        8080,
		Environment: "development",
		LogLevel:    "info",
	}
}

// IsDevelopment reports whether the deployment is a development one; invite
// links are withheld from outbound mail when BASE_URL is unset or local in
// any other environment.
func (s *ServerConfig) IsDevelopment() bool {
	return s.Environment == "" || s.Environment == "development"
}

// Load builds the full configuration from the environment plus the optional
// question-bank override file.
func Load() (*Config, error) {
	server := DefaultServerConfig()
	server.Port = getEnvInt("HTTP_PORT", server.Port)
	server.BaseURL = getEnvOrDefault("BASE_URL", "")
	server.Environment = getEnvOrDefault("ENVIRONMENT", server.Environment)
	server.APIToken = getEnvOrDefault("HIRELOOP_API_TOKEN", "")
	server.LogLevel = getEnvOrDefault("LOG_LEVEL", server.LogLevel)

	link, err := loadLinkConfig()
	if err != nil {
		return nil, err
	}

	bank, err := LoadQuestionBank(getEnvOrDefault("QUESTION_BANK_PATH", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	cfg := &Config{
		Server:       server,
		Link:         link,
		Schedule:     loadScheduleConfig(),
		Session:      loadSessionConfig(),
		AI:           loadAIConfig(),
		Proctor:      loadProctorConfig(),
		Runner:       loadRunnerConfig(),
		Notify:       loadNotifyConfig(),
		Storage:      loadStorageConfig(),
		Queue:        loadQueueConfig(),
		Retention:    loadRetentionConfig(),
		QuestionBank: bank,
	}
	return cfg, nil
}
