package services

import "context"

// DefaultedConfigService layers file-level agent defaults under the stored
// per-project configuration: a key set in the database wins, a key only in
// the defaults fills the gap. Writes pass straight through to the store.
type DefaultedConfigService struct {
	inner    *ConfigService
	defaults map[string]map[string]any
}

// WithDefaults wraps a ConfigService with per-agent default option maps
// (usually from config/fleet.yaml). A nil or empty map is a no-op wrapper.
func WithDefaults(inner *ConfigService, defaults map[string]map[string]any) *DefaultedConfigService {
	return &DefaultedConfigService{inner: inner, defaults: defaults}
}

// Get returns the merged settings for one agent in one project.
func (s *DefaultedConfigService) Get(ctx context.Context, project int, name string) (*AgentSettings, error) {
	settings, err := s.inner.Get(ctx, project, name)
	if err != nil {
		return nil, err
	}
	return s.applyDefaults(settings), nil
}

// List returns merged settings for every named agent in the project.
func (s *DefaultedConfigService) List(ctx context.Context, project int, names []string) ([]*AgentSettings, error) {
	settings, err := s.inner.List(ctx, project, names)
	if err != nil {
		return nil, err
	}
	for i, item := range settings {
		settings[i] = s.applyDefaults(item)
	}
	return settings, nil
}

// Upsert writes through to the store.
func (s *DefaultedConfigService) Upsert(ctx context.Context, project int, name string, enabled *bool, config map[string]any) (*AgentSettings, error) {
	settings, err := s.inner.Upsert(ctx, project, name, enabled, config)
	if err != nil {
		return nil, err
	}
	return s.applyDefaults(settings), nil
}

// RecordRun writes through to the store.
func (s *DefaultedConfigService) RecordRun(ctx context.Context, project int, name string) error {
	return s.inner.RecordRun(ctx, project, name)
}

// EnabledProjects reads through to the store.
func (s *DefaultedConfigService) EnabledProjects(ctx context.Context, name string) ([]int, error) {
	return s.inner.EnabledProjects(ctx, name)
}

func (s *DefaultedConfigService) applyDefaults(settings *AgentSettings) *AgentSettings {
	defaults := s.defaults[settings.Name]
	if len(defaults) == 0 {
		return settings
	}
	if settings.Config == nil {
		settings.Config = make(map[string]any, len(defaults))
	}
	for key, value := range defaults {
		if _, set := settings.Config[key]; !set {
			settings.Config[key] = value
		}
	}
	return settings
}
