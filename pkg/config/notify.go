package config

// NotifyConfig selects and configures the notification sink. Mode is
// derived: smtp when SMTP_HOST is set, webhook when NOTIFY_WEBHOOK_URL is
// set, disabled otherwise.
type NotifyConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_username"`
	SMTPPassword string `yaml:"-"`
	FromAddress  string `yaml:"from_address"`

	WebhookURL string `yaml:"webhook_url"`
}

// DefaultNotifyConfig returns the built-in notification defaults.
func DefaultNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		SMTPPort:    587,
		FromAddress: "no-reply@hireloop.dev",
	}
}

// Enabled reports whether any sink is configured.
func (n *NotifyConfig) Enabled() bool {
	return n.SMTPHost != "" || n.WebhookURL != ""
}

func loadNotifyConfig() *NotifyConfig {
	cfg := DefaultNotifyConfig()
	cfg.SMTPHost = getEnvOrDefault("SMTP_HOST", "")
	cfg.SMTPPort = getEnvInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUsername = getEnvOrDefault("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnvOrDefault("SMTP_PASSWORD", "")
	cfg.FromAddress = getEnvOrDefault("SMTP_FROM", cfg.FromAddress)
	cfg.WebhookURL = getEnvOrDefault("NOTIFY_WEBHOOK_URL", "")
	return cfg
}

// StorageConfig locates the local object store for audio, evidence frames,
// recordings, and résumé uploads.
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{Dir: "./data"}
}

func loadStorageConfig() *StorageConfig {
	cfg := DefaultStorageConfig()
	cfg.Dir = getEnvOrDefault("STORAGE_DIR", cfg.Dir)
	return cfg
}
