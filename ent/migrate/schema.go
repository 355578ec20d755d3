// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentConfigsColumns holds the columns for the "agent_configs" table.
	AgentConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "events_processed", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentConfigsTable holds the schema information for the "agent_configs" table.
	AgentConfigsTable = &schema.Table{
		Name:       "agent_configs",
		Columns:    AgentConfigsColumns,
		PrimaryKey: []*schema.Column{AgentConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentconfig_project_id_agent_name",
				Unique:  true,
				Columns: []*schema.Column{AgentConfigsColumns[1], AgentConfigsColumns[2]},
			},
		},
	}
	// AgentEventsColumns holds the columns for the "agent_events" table.
	AgentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeInt, Default: 0},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processed", "error"}, Default: "processed"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "processing_ms", Type: field.TypeFloat64, Nullable: true, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentEventsTable holds the schema information for the "agent_events" table.
	AgentEventsTable = &schema.Table{
		Name:       "agent_events",
		Columns:    AgentEventsColumns,
		PrimaryKey: []*schema.Column{AgentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentevent_kind",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[2]},
			},
			{
				Name:    "agentevent_project_id",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[4]},
			},
			{
				Name:    "agentevent_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[5]},
			},
			{
				Name:    "agentevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[10]},
			},
		},
	}
	// ServiceConnectionsColumns holds the columns for the "service_connections" table.
	ServiceConnectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeInt, Default: 0},
		{Name: "service_kind", Type: field.TypeString},
		{Name: "base_url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "token", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServiceConnectionsTable holds the schema information for the "service_connections" table.
	ServiceConnectionsTable = &schema.Table{
		Name:       "service_connections",
		Columns:    ServiceConnectionsColumns,
		PrimaryKey: []*schema.Column{ServiceConnectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "serviceconnection_project_id_service_kind",
				Unique:  true,
				Columns: []*schema.Column{ServiceConnectionsColumns[1], ServiceConnectionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentConfigsTable,
		AgentEventsTable,
		ServiceConnectionsTable,
	}
)

func init() {
}
