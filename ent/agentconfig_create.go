// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipfleet/shipfleet/ent/agentconfig"
)

// AgentConfigCreate is the builder for creating a AgentConfig entity.
type AgentConfigCreate struct {
	config
	mutation *AgentConfigMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *AgentConfigCreate) SetProjectID(v int) *AgentConfigCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentConfigCreate) SetAgentName(v string) *AgentConfigCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AgentConfigCreate) SetEnabled(v bool) *AgentConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AgentConfigCreate) SetNillableEnabled(v *bool) *AgentConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *AgentConfigCreate) SetConfig(v map[string]interface{}) *AgentConfigCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *AgentConfigCreate) SetLastRunAt(v time.Time) *AgentConfigCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *AgentConfigCreate) SetNillableLastRunAt(v *time.Time) *AgentConfigCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetEventsProcessed sets the "events_processed" field.
func (_c *AgentConfigCreate) SetEventsProcessed(v int64) *AgentConfigCreate {
	_c.mutation.SetEventsProcessed(v)
	return _c
}

// SetNillableEventsProcessed sets the "events_processed" field if the given value is not nil.
func (_c *AgentConfigCreate) SetNillableEventsProcessed(v *int64) *AgentConfigCreate {
	if v != nil {
		_c.SetEventsProcessed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentConfigCreate) SetCreatedAt(v time.Time) *AgentConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentConfigCreate) SetNillableCreatedAt(v *time.Time) *AgentConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentConfigCreate) SetUpdatedAt(v time.Time) *AgentConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentConfigCreate) SetNillableUpdatedAt(v *time.Time) *AgentConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentConfigMutation object of the builder.
func (_c *AgentConfigCreate) Mutation() *AgentConfigMutation {
	return _c.mutation
}

// Save creates the AgentConfig in the database.
func (_c *AgentConfigCreate) Save(ctx context.Context) (*AgentConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentConfigCreate) SaveX(ctx context.Context) *AgentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := agentconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.EventsProcessed(); !ok {
		v := agentconfig.DefaultEventsProcessed
		_c.mutation.SetEventsProcessed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentConfigCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "AgentConfig.project_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentConfig.agent_name"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AgentConfig.enabled"`)}
	}
	if _, ok := _c.mutation.EventsProcessed(); !ok {
		return &ValidationError{Name: "events_processed", err: errors.New(`ent: missing required field "AgentConfig.events_processed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentConfig.updated_at"`)}
	}
	return nil
}

func (_c *AgentConfigCreate) sqlSave(ctx context.Context) (*AgentConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentConfigCreate) createSpec() (*AgentConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentconfig.Table, sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(agentconfig.FieldProjectID, field.TypeInt, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentconfig.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(agentconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(agentconfig.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(agentconfig.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.EventsProcessed(); ok {
		_spec.SetField(agentconfig.FieldEventsProcessed, field.TypeInt64, value)
		_node.EventsProcessed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentConfigCreateBulk is the builder for creating many AgentConfig entities in bulk.
type AgentConfigCreateBulk struct {
	config
	err      error
	builders []*AgentConfigCreate
}

// Save creates the AgentConfig entities in the database.
func (_c *AgentConfigCreateBulk) Save(ctx context.Context) ([]*AgentConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentConfigCreateBulk) SaveX(ctx context.Context) []*AgentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
