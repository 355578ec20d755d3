// Package services contains the database-backed stores the fleet depends
// on: per-project agent configuration, service credentials, and the
// persisted event audit trail.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shipfleet/shipfleet/ent"
	"github.com/shipfleet/shipfleet/ent/agentconfig"
)

// AgentSettings is the merged per-project view of one agent's
// configuration. A missing row yields the default: enabled with empty
// options.
type AgentSettings struct {
	Name            string         `json:"name"`
	Enabled         bool           `json:"enabled"`
	Config          map[string]any `json:"config"`
	LastRunAt       *time.Time     `json:"last_run_at,omitempty"`
	EventsProcessed int64          `json:"events_processed"`
}

// Bool reads a boolean option.
func (s *AgentSettings) Bool(key string) bool {
	if s == nil || s.Config == nil {
		return false
	}
	b, _ := s.Config[key].(bool)
	return b
}

// Int reads an integer option, falling back to def when absent or not a
// number.
func (s *AgentSettings) Int(key string, def int) int {
	if s == nil || s.Config == nil {
		return def
	}
	switch v := s.Config[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// Strings reads a string-list option.
func (s *AgentSettings) Strings(key string) []string {
	if s == nil || s.Config == nil {
		return nil
	}
	switch v := s.Config[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// ConfigService manages per-project agent configuration rows.
type ConfigService struct {
	client *ent.Client
}

// NewConfigService creates a new ConfigService.
func NewConfigService(client *ent.Client) *ConfigService {
	return &ConfigService{client: client}
}

// Get returns the merged settings for one agent in one project.
func (s *ConfigService) Get(ctx context.Context, project int, name string) (*AgentSettings, error) {
	row, err := s.client.AgentConfig.Query().
		Where(
			agentconfig.ProjectIDEQ(project),
			agentconfig.AgentNameEQ(name),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &AgentSettings{Name: name, Enabled: true, Config: map[string]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get agent config: %w", err)
	}
	return settingsFromRow(row), nil
}

// List returns settings for every named agent in the project, filling
// defaults where no row exists.
func (s *ConfigService) List(ctx context.Context, project int, names []string) ([]*AgentSettings, error) {
	rows, err := s.client.AgentConfig.Query().
		Where(agentconfig.ProjectIDEQ(project)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent configs: %w", err)
	}

	byName := make(map[string]*ent.AgentConfig, len(rows))
	for _, row := range rows {
		byName[row.AgentName] = row
	}

	out := make([]*AgentSettings, 0, len(names))
	for _, name := range names {
		if row, ok := byName[name]; ok {
			out = append(out, settingsFromRow(row))
			continue
		}
		out = append(out, &AgentSettings{Name: name, Enabled: true, Config: map[string]any{}})
	}
	return out, nil
}

// Upsert creates or updates the row for (project, name). Nil enabled or
// config fields leave the stored value untouched.
func (s *ConfigService) Upsert(ctx context.Context, project int, name string, enabled *bool, config map[string]any) (*AgentSettings, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.AgentConfig.Query().
		Where(
			agentconfig.ProjectIDEQ(project),
			agentconfig.AgentNameEQ(name),
		).
		Only(writeCtx)

	switch {
	case ent.IsNotFound(err):
		create := s.client.AgentConfig.Create().
			SetProjectID(project).
			SetAgentName(name)
		if enabled != nil {
			create.SetEnabled(*enabled)
		}
		if config != nil {
			create.SetConfig(config)
		}
		row, err = create.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to query agent config: %w", err)
	default:
		update := row.Update()
		if enabled != nil {
			update.SetEnabled(*enabled)
		}
		if config != nil {
			update.SetConfig(config)
		}
		row, err = update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update agent config: %w", err)
		}
	}

	return settingsFromRow(row), nil
}

// RecordRun stamps last_run_at and bumps the processed counter. Missing
// rows are created so the counter survives without prior configuration.
func (s *ConfigService) RecordRun(ctx context.Context, project int, name string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.AgentConfig.Update().
		Where(
			agentconfig.ProjectIDEQ(project),
			agentconfig.AgentNameEQ(name),
		).
		SetLastRunAt(time.Now()).
		AddEventsProcessed(1).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record agent run: %w", err)
	}
	if updated == 0 {
		_, err = s.client.AgentConfig.Create().
			SetProjectID(project).
			SetAgentName(name).
			SetLastRunAt(time.Now()).
			SetEventsProcessed(1).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to create agent run row: %w", err)
		}
	}
	return nil
}

// EnabledProjects returns the distinct projects where the agent is
// explicitly enabled.
func (s *ConfigService) EnabledProjects(ctx context.Context, name string) ([]int, error) {
	var projects []int
	err := s.client.AgentConfig.Query().
		Where(
			agentconfig.AgentNameEQ(name),
			agentconfig.EnabledEQ(true),
		).
		Select(agentconfig.FieldProjectID).
		Scan(ctx, &projects)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled projects: %w", err)
	}
	return projects, nil
}

func settingsFromRow(row *ent.AgentConfig) *AgentSettings {
	cfg := row.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	return &AgentSettings{
		Name:            row.AgentName,
		Enabled:         row.Enabled,
		Config:          cfg,
		LastRunAt:       row.LastRunAt,
		EventsProcessed: row.EventsProcessed,
	}
}
