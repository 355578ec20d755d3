// Code generated by ent, DO NOT EDIT.

package agentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipfleet/shipfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldProjectID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldAgentName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldEnabled, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldLastRunAt, v))
}

// EventsProcessed applies equality check predicate on the "events_processed" field. It's identical to EventsProcessedEQ.
func EventsProcessed(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldEventsProcessed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v int) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldProjectID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldContainsFold(FieldAgentName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldEnabled, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotNull(FieldConfig))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotNull(FieldLastRunAt))
}

// EventsProcessedEQ applies the EQ predicate on the "events_processed" field.
func EventsProcessedEQ(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldEventsProcessed, v))
}

// EventsProcessedNEQ applies the NEQ predicate on the "events_processed" field.
func EventsProcessedNEQ(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldEventsProcessed, v))
}

// EventsProcessedIn applies the In predicate on the "events_processed" field.
func EventsProcessedIn(vs ...int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldEventsProcessed, vs...))
}

// EventsProcessedNotIn applies the NotIn predicate on the "events_processed" field.
func EventsProcessedNotIn(vs ...int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldEventsProcessed, vs...))
}

// EventsProcessedGT applies the GT predicate on the "events_processed" field.
func EventsProcessedGT(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldEventsProcessed, v))
}

// EventsProcessedGTE applies the GTE predicate on the "events_processed" field.
func EventsProcessedGTE(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldEventsProcessed, v))
}

// EventsProcessedLT applies the LT predicate on the "events_processed" field.
func EventsProcessedLT(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldEventsProcessed, v))
}

// EventsProcessedLTE applies the LTE predicate on the "events_processed" field.
func EventsProcessedLTE(v int64) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldEventsProcessed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentConfig {
	return predicate.AgentConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentConfig) predicate.AgentConfig {
	return predicate.AgentConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentConfig) predicate.AgentConfig {
	return predicate.AgentConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentConfig) predicate.AgentConfig {
	return predicate.AgentConfig(sql.NotPredicates(p))
}
