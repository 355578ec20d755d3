package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentEvent is the persisted audit mirror of a bus event: what happened,
// who published it, and whether handling succeeded.
type AgentEvent struct {
	ent.Schema
}

// Fields of the AgentEvent.
func (AgentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("kind").
			Immutable(),
		field.String("source").
			Immutable(),
		field.Int("project_id").
			Default(0).
			Immutable(),
		field.String("correlation_id").
			Optional().
			Default("").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("processed", "error").
			Default("processed"),
		field.String("error_message").
			Optional().
			Default(""),
		field.Float("processing_ms").
			Optional().
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentEvent.
func (AgentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("project_id"),
		index.Fields("correlation_id"),
		index.Fields("created_at"),
	}
}
