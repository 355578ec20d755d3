// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipfleet/shipfleet/ent/agentevent"
)

// AgentEventCreate is the builder for creating a AgentEvent entity.
type AgentEventCreate struct {
	config
	mutation *AgentEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *AgentEventCreate) SetEventID(v string) *AgentEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentEventCreate) SetKind(v string) *AgentEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AgentEventCreate) SetSource(v string) *AgentEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentEventCreate) SetProjectID(v int) *AgentEventCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableProjectID(v *int) *AgentEventCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *AgentEventCreate) SetCorrelationID(v string) *AgentEventCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableCorrelationID(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *AgentEventCreate) SetData(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentEventCreate) SetStatus(v agentevent.Status) *AgentEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableStatus(v *agentevent.Status) *AgentEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentEventCreate) SetErrorMessage(v string) *AgentEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableErrorMessage(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingMs sets the "processing_ms" field.
func (_c *AgentEventCreate) SetProcessingMs(v float64) *AgentEventCreate {
	_c.mutation.SetProcessingMs(v)
	return _c
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableProcessingMs(v *float64) *AgentEventCreate {
	if v != nil {
		_c.SetProcessingMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentEventCreate) SetCreatedAt(v time.Time) *AgentEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableCreatedAt(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentEventMutation object of the builder.
func (_c *AgentEventCreate) Mutation() *AgentEventMutation {
	return _c.mutation
}

// Save creates the AgentEvent in the database.
func (_c *AgentEventCreate) Save(ctx context.Context) (*AgentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentEventCreate) SaveX(ctx context.Context) *AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentEventCreate) defaults() {
	if _, ok := _c.mutation.ProjectID(); !ok {
		v := agentevent.DefaultProjectID
		_c.mutation.SetProjectID(v)
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		v := agentevent.DefaultCorrelationID
		_c.mutation.SetCorrelationID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := agentevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.ProcessingMs(); !ok {
		v := agentevent.DefaultProcessingMs
		_c.mutation.SetProcessingMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "AgentEvent.event_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentEvent.kind"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AgentEvent.source"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "AgentEvent.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentEvent.created_at"`)}
	}
	return nil
}

func (_c *AgentEventCreate) sqlSave(ctx context.Context) (*AgentEvent, error) {
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

func (_c *AgentEventCreate) createSpec() (*AgentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentevent.Table, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(agentevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(agentevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(agentevent.FieldProjectID, field.TypeInt, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(agentevent.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(agentevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProcessingMs(); ok {
		_spec.SetField(agentevent.FieldProcessingMs, field.TypeFloat64, value)
		_node.ProcessingMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentEventCreateBulk is the builder for creating many AgentEvent entities in bulk.
type AgentEventCreateBulk struct {
	config
	err      error
	builders []*AgentEventCreate
}

// Save creates the AgentEvent entities in the database.
func (_c *AgentEventCreateBulk) Save(ctx context.Context) ([]*AgentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentEventMutation)
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
func (_c *AgentEventCreateBulk) SaveX(ctx context.Context) []*AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
