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
	"github.com/shipfleet/shipfleet/ent/predicate"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
)

// ServiceConnectionUpdate is the builder for updating ServiceConnection entities.
type ServiceConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceConnectionMutation
}

// Where appends a list predicates to the ServiceConnectionUpdate builder.
func (_u *ServiceConnectionUpdate) Where(ps ...predicate.ServiceConnection) *ServiceConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ServiceConnectionUpdate) SetProjectID(v int) *ServiceConnectionUpdate {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableProjectID(v *int) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *ServiceConnectionUpdate) AddProjectID(v int) *ServiceConnectionUpdate {
	_u.mutation.AddProjectID(v)
	return _u
}

// SetServiceKind sets the "service_kind" field.
func (_u *ServiceConnectionUpdate) SetServiceKind(v string) *ServiceConnectionUpdate {
	_u.mutation.SetServiceKind(v)
	return _u
}

// SetNillableServiceKind sets the "service_kind" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableServiceKind(v *string) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetServiceKind(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ServiceConnectionUpdate) SetBaseURL(v string) *ServiceConnectionUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableBaseURL(v *string) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ServiceConnectionUpdate) ClearBaseURL() *ServiceConnectionUpdate {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetToken sets the "token" field.
func (_u *ServiceConnectionUpdate) SetToken(v string) *ServiceConnectionUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableToken(v *string) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ServiceConnectionUpdate) SetConfig(v map[string]interface{}) *ServiceConnectionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ServiceConnectionUpdate) ClearConfig() *ServiceConnectionUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServiceConnectionUpdate) SetEnabled(v bool) *ServiceConnectionUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableEnabled(v *bool) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *ServiceConnectionUpdate) SetLastSyncAt(v time.Time) *ServiceConnectionUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *ServiceConnectionUpdate) SetNillableLastSyncAt(v *time.Time) *ServiceConnectionUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *ServiceConnectionUpdate) ClearLastSyncAt() *ServiceConnectionUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceConnectionUpdate) SetUpdatedAt(v time.Time) *ServiceConnectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServiceConnectionMutation object of the builder.
func (_u *ServiceConnectionUpdate) Mutation() *ServiceConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceConnectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceConnectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServiceConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceconnection.Table, serviceconnection.Columns, sqlgraph.NewFieldSpec(serviceconnection.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(serviceconnection.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(serviceconnection.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ServiceKind(); ok {
		_spec.SetField(serviceconnection.FieldServiceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(serviceconnection.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(serviceconnection.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(serviceconnection.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(serviceconnection.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(serviceconnection.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(serviceconnection.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(serviceconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(serviceconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceConnectionUpdateOne is the builder for updating a single ServiceConnection entity.
type ServiceConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceConnectionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ServiceConnectionUpdateOne) SetProjectID(v int) *ServiceConnectionUpdateOne {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableProjectID(v *int) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *ServiceConnectionUpdateOne) AddProjectID(v int) *ServiceConnectionUpdateOne {
	_u.mutation.AddProjectID(v)
	return _u
}

// SetServiceKind sets the "service_kind" field.
func (_u *ServiceConnectionUpdateOne) SetServiceKind(v string) *ServiceConnectionUpdateOne {
	_u.mutation.SetServiceKind(v)
	return _u
}

// SetNillableServiceKind sets the "service_kind" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableServiceKind(v *string) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetServiceKind(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ServiceConnectionUpdateOne) SetBaseURL(v string) *ServiceConnectionUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableBaseURL(v *string) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ServiceConnectionUpdateOne) ClearBaseURL() *ServiceConnectionUpdateOne {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetToken sets the "token" field.
func (_u *ServiceConnectionUpdateOne) SetToken(v string) *ServiceConnectionUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableToken(v *string) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ServiceConnectionUpdateOne) SetConfig(v map[string]interface{}) *ServiceConnectionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ServiceConnectionUpdateOne) ClearConfig() *ServiceConnectionUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServiceConnectionUpdateOne) SetEnabled(v bool) *ServiceConnectionUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableEnabled(v *bool) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *ServiceConnectionUpdateOne) SetLastSyncAt(v time.Time) *ServiceConnectionUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *ServiceConnectionUpdateOne) SetNillableLastSyncAt(v *time.Time) *ServiceConnectionUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *ServiceConnectionUpdateOne) ClearLastSyncAt() *ServiceConnectionUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceConnectionUpdateOne) SetUpdatedAt(v time.Time) *ServiceConnectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServiceConnectionMutation object of the builder.
func (_u *ServiceConnectionUpdateOne) Mutation() *ServiceConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceConnectionUpdate builder.
func (_u *ServiceConnectionUpdateOne) Where(ps ...predicate.ServiceConnection) *ServiceConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceConnectionUpdateOne) Select(field string, fields ...string) *ServiceConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceConnection entity.
func (_u *ServiceConnectionUpdateOne) Save(ctx context.Context) (*ServiceConnection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceConnectionUpdateOne) SaveX(ctx context.Context) *ServiceConnection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceConnectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServiceConnectionUpdateOne) sqlSave(ctx context.Context) (_node *ServiceConnection, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceconnection.Table, serviceconnection.Columns, sqlgraph.NewFieldSpec(serviceconnection.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceconnection.FieldID)
		for _, f := range fields {
			if !serviceconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serviceconnection.FieldID {
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
		_spec.SetField(serviceconnection.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(serviceconnection.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ServiceKind(); ok {
		_spec.SetField(serviceconnection.FieldServiceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(serviceconnection.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(serviceconnection.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(serviceconnection.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(serviceconnection.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(serviceconnection.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(serviceconnection.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(serviceconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(serviceconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ServiceConnection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
