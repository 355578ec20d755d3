package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServiceConnection binds a service kind to opaque credentials and
// per-service configuration. project_id 0 means project-less (fleet-wide
// fallback, used by chat).
type ServiceConnection struct {
	ent.Schema
}

// Fields of the ServiceConnection.
func (ServiceConnection) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Default(0),
		field.String("service_kind").
			Comment("gitlab, figma, slack, sentry, datadog"),
		field.String("base_url").
			Optional().
			Default(""),
		field.String("token").
			Sensitive(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("external_project_id, org_slug, project_slug, app_key, default_channel, file_key, monitor_tags"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_sync_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ServiceConnection.
func (ServiceConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "service_kind").
			Unique(),
	}
}
