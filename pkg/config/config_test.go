package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERVIEW_LINK_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "Asia/Kolkata", cfg.Schedule.Timezone)
	assert.Equal(t, 15*time.Minute, cfg.Link.EarlyGrace)
	assert.Equal(t, 2*time.Hour, cfg.Link.LateGrace)
	assert.Equal(t, 10, cfg.AI.RateLimitPerMinute)
	assert.False(t, cfg.AI.QuotaHardFail)
	assert.Equal(t, 15*time.Second, cfg.Runner.TestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 15, cfg.Proctor.HeavyDetectorEveryN)
	assert.NotNil(t, cfg.QuestionBank)
}

func TestLoadRequiresLinkSecret(t *testing.T) {
	t.Setenv("INTERVIEW_LINK_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW_LINK_SECRET")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INTERVIEW_LINK_SECRET", "test-secret")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("INTERVIEW_TIMEZONE", "UTC")
	t.Setenv("AI_RATE_LIMIT_PER_MINUTE", "3")
	t.Setenv("AI_QUOTA_HARD_FAIL", "true")
	t.Setenv("CODE_RUNNER_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_IDLE_TIMEOUT_SECONDS", "120")
	t.Setenv("LINK_EARLY_GRACE_SECONDS", "60")
	t.Setenv("LINK_LATE_GRACE_SECONDS", "3600")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "UTC", cfg.Schedule.Timezone)
	assert.Equal(t, 3, cfg.AI.RateLimitPerMinute)
	assert.True(t, cfg.AI.QuotaHardFail)
	assert.Equal(t, 5*time.Second, cfg.Runner.TestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Link.EarlyGrace)
	assert.Equal(t, time.Hour, cfg.Link.LateGrace)
}

func TestDefaultQuestionBank(t *testing.T) {
	bank, err := LoadQuestionBank("")
	require.NoError(t, err)

	assert.NotEmpty(t, bank.IceBreakers)
	assert.NotEmpty(t, bank.Technical)
	assert.NotEmpty(t, bank.Behavioral)

	// Every supported language has at least one coding question with tests.
	for _, lang := range []string{"python", "javascript", "java", "c_sharp", "php", "ruby", "sql"} {
		q, ok := bank.CodingFor(lang)
		require.True(t, ok, "missing coding question for %s", lang)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.TestCases)
	}
}

func TestQuestionBankOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	override := `
ice_breakers: ["hi"]
technical: ["t1"]
behavioral: ["b1"]
coding:
  python:
    - text: "sum two ints as solve(a, b)"
      test_cases:
        - input: "1, 2"
          expected: "3"
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	bank, err := LoadQuestionBank(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, bank.IceBreakers)

	q, ok := bank.CodingFor("python")
	require.True(t, ok)
	assert.Equal(t, "sum two ints as solve(a, b)", q.Text)

	_, ok = bank.CodingFor("ruby")
	assert.False(t, ok, "override replaces the bank wholesale")
}

func TestQuestionBankValidation(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		yaml string
	}{
		{"missing sections", `ice_breakers: ["hi"]`},
		{"unknown language", `
ice_breakers: ["hi"]
technical: ["t"]
behavioral: ["b"]
coding:
  cobol:
    - text: "x"
      test_cases: [{input: "1", expected: "1"}]
`},
		{"coding question without tests", `
ice_breakers: ["hi"]
technical: ["t"]
behavioral: ["b"]
coding:
  python:
    - text: "x"
      test_cases: []
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o600))
			_, err := LoadQuestionBank(path)
			assert.Error(t, err)
		})
	}
}
