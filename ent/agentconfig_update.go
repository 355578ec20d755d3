// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipfleet/shipfleet/ent/agentconfig"
	"github.com/shipfleet/shipfleet/ent/predicate"
)

// AgentConfigUpdate is the builder for updating AgentConfig entities.
type AgentConfigUpdate struct {
	config
	hooks    []Hook
	mutation *AgentConfigMutation
}

// Where appends a list predicates to the AgentConfigUpdate builder.
func (_u *AgentConfigUpdate) Where(ps ...predicate.AgentConfig) *AgentConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentConfigUpdate) SetProjectID(v int) *AgentConfigUpdate {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableProjectID(v *int) *AgentConfigUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *AgentConfigUpdate) AddProjectID(v int) *AgentConfigUpdate {
	_u.mutation.AddProjectID(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentConfigUpdate) SetAgentName(v string) *AgentConfigUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableAgentName(v *string) *AgentConfigUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentConfigUpdate) SetEnabled(v bool) *AgentConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableEnabled(v *bool) *AgentConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentConfigUpdate) SetConfig(v map[string]interface{}) *AgentConfigUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentConfigUpdate) ClearConfig() *AgentConfigUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *AgentConfigUpdate) SetLastRunAt(v time.Time) *AgentConfigUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableLastRunAt(v *time.Time) *AgentConfigUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *AgentConfigUpdate) ClearLastRunAt() *AgentConfigUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetEventsProcessed sets the "events_processed" field.
func (_u *AgentConfigUpdate) SetEventsProcessed(v int64) *AgentConfigUpdate {
	_u.mutation.ResetEventsProcessed()
	_u.mutation.SetEventsProcessed(v)
	return _u
}

// SetNillableEventsProcessed sets the "events_processed" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableEventsProcessed(v *int64) *AgentConfigUpdate {
	if v != nil {
		_u.SetEventsProcessed(*v)
	}
	return _u
}

// AddEventsProcessed adds value to the "events_processed" field.
func (_u *AgentConfigUpdate) AddEventsProcessed(v int64) *AgentConfigUpdate {
	_u.mutation.AddEventsProcessed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentConfigUpdate) SetUpdatedAt(v time.Time) *AgentConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentConfigMutation object of the builder.
func (_u *AgentConfigUpdate) Mutation() *AgentConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentconfig.Table, agentconfig.Columns, sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(agentconfig.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(agentconfig.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentconfig.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentconfig.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentconfig.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(agentconfig.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(agentconfig.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventsProcessed(); ok {
		_spec.SetField(agentconfig.FieldEventsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsProcessed(); ok {
		_spec.AddField(agentconfig.FieldEventsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentConfigUpdateOne is the builder for updating a single AgentConfig entity.
type AgentConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentConfigMutation
}

// SetProjectID sets the "project_id" field.
func (_u *AgentConfigUpdateOne) SetProjectID(v int) *AgentConfigUpdateOne {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableProjectID(v *int) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *AgentConfigUpdateOne) AddProjectID(v int) *AgentConfigUpdateOne {
	_u.mutation.AddProjectID(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentConfigUpdateOne) SetAgentName(v string) *AgentConfigUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableAgentName(v *string) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentConfigUpdateOne) SetEnabled(v bool) *AgentConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableEnabled(v *bool) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentConfigUpdateOne) SetConfig(v map[string]interface{}) *AgentConfigUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentConfigUpdateOne) ClearConfig() *AgentConfigUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *AgentConfigUpdateOne) SetLastRunAt(v time.Time) *AgentConfigUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableLastRunAt(v *time.Time) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *AgentConfigUpdateOne) ClearLastRunAt() *AgentConfigUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetEventsProcessed sets the "events_processed" field.
func (_u *AgentConfigUpdateOne) SetEventsProcessed(v int64) *AgentConfigUpdateOne {
	_u.mutation.ResetEventsProcessed()
	_u.mutation.SetEventsProcessed(v)
	return _u
}

// SetNillableEventsProcessed sets the "events_processed" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableEventsProcessed(v *int64) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetEventsProcessed(*v)
	}
	return _u
}

// AddEventsProcessed adds value to the "events_processed" field.
func (_u *AgentConfigUpdateOne) AddEventsProcessed(v int64) *AgentConfigUpdateOne {
	_u.mutation.AddEventsProcessed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentConfigUpdateOne) SetUpdatedAt(v time.Time) *AgentConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentConfigMutation object of the builder.
func (_u *AgentConfigUpdateOne) Mutation() *AgentConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentConfigUpdate builder.
func (_u *AgentConfigUpdateOne) Where(ps ...predicate.AgentConfig) *AgentConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentConfigUpdateOne) Select(field string, fields ...string) *AgentConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentConfig entity.
func (_u *AgentConfigUpdateOne) Save(ctx context.Context) (*AgentConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentConfigUpdateOne) SaveX(ctx context.Context) *AgentConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentConfigUpdateOne) sqlSave(ctx context.Context) (_node *AgentConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentconfig.Table, agentconfig.Columns, sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentconfig.FieldID)
		for _, f := range fields {
			if !agentconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(agentconfig.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(agentconfig.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentconfig.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentconfig.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentconfig.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(agentconfig.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(agentconfig.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventsProcessed(); ok {
		_spec.SetField(agentconfig.FieldEventsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsProcessed(); ok {
		_spec.AddField(agentconfig.FieldEventsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
