package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentConfig holds the per-project, per-agent configuration row. A missing
// row means "enabled with empty options".
type AgentConfig struct {
	ent.Schema
}

// Fields of the AgentConfig.
func (AgentConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.String("agent_name"),
		field.Bool("enabled").
			Default(true),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Arbitrary option map (error_threshold, min_reviewers, auto_merge, ...)"),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Int64("events_processed").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentConfig.
func (AgentConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "agent_name").
			Unique(),
	}
}
