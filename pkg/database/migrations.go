package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL. The audit
// trail's data column is queried by payload fields from the operator
// surface; a GIN index keeps those lookups cheap as history grows.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agent_events_data_gin
		ON agent_events USING gin(data jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create agent_events data GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_service_connections_config_gin
		ON service_connections USING gin(config jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create service_connections config GIN index: %w", err)
	}

	return nil
}
