// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
)

// ServiceConnectionCreate is the builder for creating a ServiceConnection entity.
type ServiceConnectionCreate struct {
	config
	mutation *ServiceConnectionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ServiceConnectionCreate) SetProjectID(v int) *ServiceConnectionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableProjectID(v *int) *ServiceConnectionCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetServiceKind sets the "service_kind" field.
func (_c *ServiceConnectionCreate) SetServiceKind(v string) *ServiceConnectionCreate {
	_c.mutation.SetServiceKind(v)
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *ServiceConnectionCreate) SetBaseURL(v string) *ServiceConnectionCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableBaseURL(v *string) *ServiceConnectionCreate {
	if v != nil {
		_c.SetBaseURL(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *ServiceConnectionCreate) SetToken(v string) *ServiceConnectionCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ServiceConnectionCreate) SetConfig(v map[string]interface{}) *ServiceConnectionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ServiceConnectionCreate) SetEnabled(v bool) *ServiceConnectionCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableEnabled(v *bool) *ServiceConnectionCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *ServiceConnectionCreate) SetLastSyncAt(v time.Time) *ServiceConnectionCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableLastSyncAt(v *time.Time) *ServiceConnectionCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceConnectionCreate) SetCreatedAt(v time.Time) *ServiceConnectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableCreatedAt(v *time.Time) *ServiceConnectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceConnectionCreate) SetUpdatedAt(v time.Time) *ServiceConnectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceConnectionCreate) SetNillableUpdatedAt(v *time.Time) *ServiceConnectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ServiceConnectionMutation object of the builder.
func (_c *ServiceConnectionCreate) Mutation() *ServiceConnectionMutation {
	return _c.mutation
}

// Save creates the ServiceConnection in the database.
func (_c *ServiceConnectionCreate) Save(ctx context.Context) (*ServiceConnection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceConnectionCreate) SaveX(ctx context.Context) *ServiceConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceConnectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceConnectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceConnectionCreate) defaults() {
	if _, ok := _c.mutation.ProjectID(); !ok {
		v := serviceconnection.DefaultProjectID
		_c.mutation.SetProjectID(v)
	}
	if _, ok := _c.mutation.BaseURL(); !ok {
		v := serviceconnection.DefaultBaseURL
		_c.mutation.SetBaseURL(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := serviceconnection.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceconnection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := serviceconnection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceConnectionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ServiceConnection.project_id"`)}
	}
	if _, ok := _c.mutation.ServiceKind(); !ok {
		return &ValidationError{Name: "service_kind", err: errors.New(`ent: missing required field "ServiceConnection.service_kind"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "ServiceConnection.token"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ServiceConnection.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceConnection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ServiceConnection.updated_at"`)}
	}
	return nil
}

func (_c *ServiceConnectionCreate) sqlSave(ctx context.Context) (*ServiceConnection, error) {
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

func (_c *ServiceConnectionCreate) createSpec() (*ServiceConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceConnection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceconnection.Table, sqlgraph.NewFieldSpec(serviceconnection.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(serviceconnection.FieldProjectID, field.TypeInt, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ServiceKind(); ok {
		_spec.SetField(serviceconnection.FieldServiceKind, field.TypeString, value)
		_node.ServiceKind = value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(serviceconnection.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(serviceconnection.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(serviceconnection.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(serviceconnection.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(serviceconnection.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceconnection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ServiceConnectionCreateBulk is the builder for creating many ServiceConnection entities in bulk.
type ServiceConnectionCreateBulk struct {
	config
	err      error
	builders []*ServiceConnectionCreate
}

// Save creates the ServiceConnection entities in the database.
func (_c *ServiceConnectionCreateBulk) Save(ctx context.Context) ([]*ServiceConnection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceConnection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceConnectionMutation)
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
func (_c *ServiceConnectionCreateBulk) SaveX(ctx context.Context) []*ServiceConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
