// Package config loads process settings: compiled defaults, overridden by
// an optional config/fleet.yaml file, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings is the closed set of process configuration.
type Settings struct {
	// Fleet
	AgentsEnabled          bool
	AnalyticsScheduleHours int
	ReviewSLAHours         int
	HistorySize            int

	// Chat and webhooks
	ChatDefaultChannel  string
	DesignWebhookSecret string

	// LLM
	AnthropicAPIKey string
	LLMModel        string
	LLMMaxTokens    int
	LLMTemperature  float64

	// Deployment and audit
	DeployRequireMonitoring bool
	AuditRetentionDays      int

	// HTTP
	Port int

	// AgentDefaults holds per-agent default option maps from the config
	// file. Database rows override these per project.
	AgentDefaults map[string]map[string]any
}

// fileSettings is the YAML shape of config/fleet.yaml. Pointer fields
// distinguish "absent" from zero values.
type fileSettings struct {
	AgentsEnabled           *bool                     `yaml:"agents_enabled"`
	AnalyticsScheduleHours  *int                      `yaml:"agent_analytics_schedule_hours"`
	ReviewSLAHours          *int                      `yaml:"agent_review_sla_hours"`
	HistorySize             *int                      `yaml:"history_size"`
	ChatDefaultChannel      *string                   `yaml:"chat_default_channel"`
	DesignWebhookSecret     *string                   `yaml:"design_webhook_secret"`
	LLMModel                *string                   `yaml:"llm_model"`
	LLMMaxTokens            *int                      `yaml:"llm_max_tokens"`
	LLMTemperature          *float64                  `yaml:"llm_temperature"`
	DeployRequireMonitoring *bool                     `yaml:"deploy_require_monitoring"`
	AuditRetentionDays      *int                      `yaml:"audit_retention_days"`
	Port                    *int                      `yaml:"port"`
	AgentDefaults           map[string]map[string]any `yaml:"agent_defaults"`
}

// Defaults returns the compiled-in settings.
func Defaults() *Settings {
	return &Settings{
		AgentsEnabled:           true,
		AnalyticsScheduleHours:  24,
		ReviewSLAHours:          24,
		HistorySize:             1000,
		LLMModel:                "claude-sonnet-4-20250514",
		LLMMaxTokens:            2048,
		LLMTemperature:          0.3,
		DeployRequireMonitoring: true,
		AuditRetentionDays:      30,
		Port:                    8080,
	}
}

// Load builds settings from defaults, the optional file at path (empty
// path means skip), and the environment, in that precedence order.
func Load(path string) (*Settings, error) {
	s := Defaults()

	if path != "" {
		if err := s.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(expandEnv(raw), &fs); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fs.AgentsEnabled != nil {
		s.AgentsEnabled = *fs.AgentsEnabled
	}
	if fs.AnalyticsScheduleHours != nil {
		s.AnalyticsScheduleHours = *fs.AnalyticsScheduleHours
	}
	if fs.ReviewSLAHours != nil {
		s.ReviewSLAHours = *fs.ReviewSLAHours
	}
	if fs.HistorySize != nil {
		s.HistorySize = *fs.HistorySize
	}
	if fs.ChatDefaultChannel != nil {
		s.ChatDefaultChannel = *fs.ChatDefaultChannel
	}
	if fs.DesignWebhookSecret != nil {
		s.DesignWebhookSecret = *fs.DesignWebhookSecret
	}
	if fs.LLMModel != nil {
		s.LLMModel = *fs.LLMModel
	}
	if fs.LLMMaxTokens != nil {
		s.LLMMaxTokens = *fs.LLMMaxTokens
	}
	if fs.LLMTemperature != nil {
		s.LLMTemperature = *fs.LLMTemperature
	}
	if fs.DeployRequireMonitoring != nil {
		s.DeployRequireMonitoring = *fs.DeployRequireMonitoring
	}
	if fs.AuditRetentionDays != nil {
		s.AuditRetentionDays = *fs.AuditRetentionDays
	}
	if fs.Port != nil {
		s.Port = *fs.Port
	}
	if fs.AgentDefaults != nil {
		s.AgentDefaults = fs.AgentDefaults
	}
	return nil
}

func (s *Settings) applyEnv() error {
	var err error
	if s.AgentsEnabled, err = envBool("AGENTS_ENABLED", s.AgentsEnabled); err != nil {
		return err
	}
	if s.AnalyticsScheduleHours, err = envInt("AGENT_ANALYTICS_SCHEDULE_HOURS", s.AnalyticsScheduleHours); err != nil {
		return err
	}
	if s.ReviewSLAHours, err = envInt("AGENT_REVIEW_SLA_HOURS", s.ReviewSLAHours); err != nil {
		return err
	}
	if s.HistorySize, err = envInt("HISTORY_SIZE", s.HistorySize); err != nil {
		return err
	}
	s.ChatDefaultChannel = envString("CHAT_DEFAULT_CHANNEL", s.ChatDefaultChannel)
	s.DesignWebhookSecret = envString("DESIGN_WEBHOOK_SECRET", s.DesignWebhookSecret)
	s.AnthropicAPIKey = envString("ANTHROPIC_API_KEY", s.AnthropicAPIKey)
	s.LLMModel = envString("LLM_MODEL", s.LLMModel)
	if s.LLMMaxTokens, err = envInt("LLM_MAX_TOKENS", s.LLMMaxTokens); err != nil {
		return err
	}
	if s.LLMTemperature, err = envFloat("LLM_TEMPERATURE", s.LLMTemperature); err != nil {
		return err
	}
	if s.DeployRequireMonitoring, err = envBool("DEPLOY_REQUIRE_MONITORING", s.DeployRequireMonitoring); err != nil {
		return err
	}
	if s.AuditRetentionDays, err = envInt("AUDIT_RETENTION_DAYS", s.AuditRetentionDays); err != nil {
		return err
	}
	if s.Port, err = envInt("PORT", s.Port); err != nil {
		return err
	}
	return nil
}

var envRefRE = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnv substitutes ${VAR} references in the file with environment
// values. Only the braced form expands; bare $ is left alone so tokens
// and passwords containing $ survive.
func expandEnv(data []byte) []byte {
	return envRefRE.ReplaceAllFunc(data, func(ref []byte) []byte {
		key := string(ref[2 : len(ref)-1])
		return []byte(os.Getenv(key))
	})
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
