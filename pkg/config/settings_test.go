package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsEnvKeys = []string{
	"AGENTS_ENABLED", "AGENT_ANALYTICS_SCHEDULE_HOURS", "AGENT_REVIEW_SLA_HOURS",
	"HISTORY_SIZE", "CHAT_DEFAULT_CHANNEL", "DESIGN_WEBHOOK_SECRET",
	"ANTHROPIC_API_KEY", "LLM_MODEL", "LLM_MAX_TOKENS", "LLM_TEMPERATURE",
	"DEPLOY_REQUIRE_MONITORING", "AUDIT_RETENTION_DAYS", "PORT",
}

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range settingsEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range settingsEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := Load("")
	require.NoError(t, err)

	assert.True(t, s.AgentsEnabled)
	assert.Equal(t, 24, s.AnalyticsScheduleHours)
	assert.Equal(t, 24, s.ReviewSLAHours)
	assert.Equal(t, 1000, s.HistorySize)
	assert.Equal(t, 2048, s.LLMMaxTokens)
	assert.InDelta(t, 0.3, s.LLMTemperature, 1e-9)
	assert.True(t, s.DeployRequireMonitoring)
	assert.Equal(t, 30, s.AuditRetentionDays)
	assert.Equal(t, 8080, s.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearSettingsEnv(t)
	os.Setenv("AGENT_ANALYTICS_SCHEDULE_HOURS", "6")
	os.Setenv("CHAT_DEFAULT_CHANNEL", "#from-env")

	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
agent_analytics_schedule_hours: 12
agent_review_sla_hours: 8
chat_default_channel: "#from-file"
agent_defaults:
  review_coordination:
    min_reviewers: 3
`), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	// Env wins over file
	assert.Equal(t, 6, s.AnalyticsScheduleHours)
	assert.Equal(t, "#from-env", s.ChatDefaultChannel)
	// File wins over defaults
	assert.Equal(t, 8, s.ReviewSLAHours)
	assert.Equal(t, 3, s.AgentDefaults["review_coordination"]["min_reviewers"])
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearSettingsEnv(t)

	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 24, s.AnalyticsScheduleHours)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	clearSettingsEnv(t)
	os.Setenv("HISTORY_SIZE", "lots")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISTORY_SIZE")
}

func TestExpandEnv(t *testing.T) {
	os.Setenv("FLEET_TEST_SECRET", "s3cr3t")
	t.Cleanup(func() { os.Unsetenv("FLEET_TEST_SECRET") })

	in := []byte("design_webhook_secret: ${FLEET_TEST_SECRET}\npattern: a$b ${MISSING_VAR}x")
	out := string(expandEnv(in))

	assert.Contains(t, out, "design_webhook_secret: s3cr3t")
	// Bare $ untouched, missing vars become empty
	assert.Contains(t, out, "pattern: a$b x")
}
