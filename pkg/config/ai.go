package config

import "time"

// AIConfig controls the AI gateway: models, rate limiting, quota handling,
// and retry behavior. The OpenAI API key is read by the SDK from
// OPENAI_API_KEY; only the optional base URL override is carried here.
type AIConfig struct {
	BaseURL string `yaml:"base_url"`

	ChatModel       string `yaml:"chat_model"`
	TranscribeModel string `yaml:"transcribe_model"`
	SpeechModel     string `yaml:"speech_model"`
	SpeechVoice     string `yaml:"speech_voice"`

	// RateLimitPerMinute is the process-wide ceiling across all LLM
	// operations. The limiter blocks callers until the window frees up.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// RateLimitMaxWait bounds how long a caller waits on the limiter before
	// the operation degrades instead.
	RateLimitMaxWait time.Duration `yaml:"rate_limit_max_wait"`

	// QuotaHardFail turns fallback paths into hard errors once the
	// process-wide quota flag is set.
	QuotaHardFail bool `yaml:"quota_hard_fail"`

	// CallTimeout is the hard ceiling on a single provider call including
	// retries and limiter wait.
	CallTimeout time.Duration `yaml:"call_timeout"`

	// TTSCacheTTL bounds the content-addressed synthesis cache.
	TTSCacheTTL time.Duration `yaml:"tts_cache_ttl"`
}

// DefaultAIConfig returns the built-in AI gateway defaults.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		ChatModel:          "gpt-4o-mini",
		TranscribeModel:    "whisper-1",
		SpeechModel:        "tts-1",
		SpeechVoice:        "alloy",
		RateLimitPerMinute: 10,
		RateLimitMaxWait:   60 * time.Second,
		CallTimeout:        90 * time.Second,
		TTSCacheTTL:        30 * time.Minute,
	}
}

func loadAIConfig() *AIConfig {
	cfg := DefaultAIConfig()
	cfg.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", "")
	cfg.ChatModel = getEnvOrDefault("AI_CHAT_MODEL", cfg.ChatModel)
	cfg.TranscribeModel = getEnvOrDefault("AI_TRANSCRIBE_MODEL", cfg.TranscribeModel)
	cfg.SpeechModel = getEnvOrDefault("AI_SPEECH_MODEL", cfg.SpeechModel)
	cfg.SpeechVoice = getEnvOrDefault("AI_SPEECH_VOICE", cfg.SpeechVoice)
	cfg.RateLimitPerMinute = getEnvInt("AI_RATE_LIMIT_PER_MINUTE", cfg.RateLimitPerMinute)
	cfg.QuotaHardFail = getEnvBool("AI_QUOTA_HARD_FAIL", cfg.QuotaHardFail)
	return cfg
}
