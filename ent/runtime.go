// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shipfleet/shipfleet/ent/agentconfig"
	"github.com/shipfleet/shipfleet/ent/agentevent"
	"github.com/shipfleet/shipfleet/ent/schema"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentconfigFields := schema.AgentConfig{}.Fields()
	_ = agentconfigFields
	// agentconfigDescEnabled is the schema descriptor for enabled field.
	agentconfigDescEnabled := agentconfigFields[2].Descriptor()
	// agentconfig.DefaultEnabled holds the default value on creation for the enabled field.
	agentconfig.DefaultEnabled = agentconfigDescEnabled.Default.(bool)
	// agentconfigDescEventsProcessed is the schema descriptor for events_processed field.
	agentconfigDescEventsProcessed := agentconfigFields[5].Descriptor()
	// agentconfig.DefaultEventsProcessed holds the default value on creation for the events_processed field.
	agentconfig.DefaultEventsProcessed = agentconfigDescEventsProcessed.Default.(int64)
	// agentconfigDescCreatedAt is the schema descriptor for created_at field.
	agentconfigDescCreatedAt := agentconfigFields[6].Descriptor()
	// agentconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentconfig.DefaultCreatedAt = agentconfigDescCreatedAt.Default.(func() time.Time)
	// agentconfigDescUpdatedAt is the schema descriptor for updated_at field.
	agentconfigDescUpdatedAt := agentconfigFields[7].Descriptor()
	// agentconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentconfig.DefaultUpdatedAt = agentconfigDescUpdatedAt.Default.(func() time.Time)
	// agentconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentconfig.UpdateDefaultUpdatedAt = agentconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	agenteventFields := schema.AgentEvent{}.Fields()
	_ = agenteventFields
	// agenteventDescProjectID is the schema descriptor for project_id field.
	agenteventDescProjectID := agenteventFields[3].Descriptor()
	// agentevent.DefaultProjectID holds the default value on creation for the project_id field.
	agentevent.DefaultProjectID = agenteventDescProjectID.Default.(int)
	// agenteventDescCorrelationID is the schema descriptor for correlation_id field.
	agenteventDescCorrelationID := agenteventFields[4].Descriptor()
	// agentevent.DefaultCorrelationID holds the default value on creation for the correlation_id field.
	agentevent.DefaultCorrelationID = agenteventDescCorrelationID.Default.(string)
	// agenteventDescErrorMessage is the schema descriptor for error_message field.
	agenteventDescErrorMessage := agenteventFields[7].Descriptor()
	// agentevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	agentevent.DefaultErrorMessage = agenteventDescErrorMessage.Default.(string)
	// agenteventDescProcessingMs is the schema descriptor for processing_ms field.
	agenteventDescProcessingMs := agenteventFields[8].Descriptor()
	// agentevent.DefaultProcessingMs holds the default value on creation for the processing_ms field.
	agentevent.DefaultProcessingMs = agenteventDescProcessingMs.Default.(float64)
	// agenteventDescCreatedAt is the schema descriptor for created_at field.
	agenteventDescCreatedAt := agenteventFields[9].Descriptor()
	// agentevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentevent.DefaultCreatedAt = agenteventDescCreatedAt.Default.(func() time.Time)
	serviceconnectionFields := schema.ServiceConnection{}.Fields()
	_ = serviceconnectionFields
	// serviceconnectionDescProjectID is the schema descriptor for project_id field.
	serviceconnectionDescProjectID := serviceconnectionFields[0].Descriptor()
	// serviceconnection.DefaultProjectID holds the default value on creation for the project_id field.
	serviceconnection.DefaultProjectID = serviceconnectionDescProjectID.Default.(int)
	// serviceconnectionDescBaseURL is the schema descriptor for base_url field.
	serviceconnectionDescBaseURL := serviceconnectionFields[2].Descriptor()
	// serviceconnection.DefaultBaseURL holds the default value on creation for the base_url field.
	serviceconnection.DefaultBaseURL = serviceconnectionDescBaseURL.Default.(string)
	// serviceconnectionDescEnabled is the schema descriptor for enabled field.
	serviceconnectionDescEnabled := serviceconnectionFields[5].Descriptor()
	// serviceconnection.DefaultEnabled holds the default value on creation for the enabled field.
	serviceconnection.DefaultEnabled = serviceconnectionDescEnabled.Default.(bool)
	// serviceconnectionDescCreatedAt is the schema descriptor for created_at field.
	serviceconnectionDescCreatedAt := serviceconnectionFields[7].Descriptor()
	// serviceconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceconnection.DefaultCreatedAt = serviceconnectionDescCreatedAt.Default.(func() time.Time)
	// serviceconnectionDescUpdatedAt is the schema descriptor for updated_at field.
	serviceconnectionDescUpdatedAt := serviceconnectionFields[8].Descriptor()
	// serviceconnection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	serviceconnection.DefaultUpdatedAt = serviceconnectionDescUpdatedAt.Default.(func() time.Time)
	// serviceconnection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	serviceconnection.UpdateDefaultUpdatedAt = serviceconnectionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
