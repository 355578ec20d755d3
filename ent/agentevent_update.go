// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipfleet/shipfleet/ent/agentevent"
	"github.com/shipfleet/shipfleet/ent/predicate"
)

// AgentEventUpdate is the builder for updating AgentEvent entities.
type AgentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AgentEventMutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdate) Where(ps ...predicate.AgentEvent) *AgentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentEventUpdate) SetStatus(v agentevent.Status) *AgentEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableStatus(v *agentevent.Status) *AgentEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentEventUpdate) SetErrorMessage(v string) *AgentEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableErrorMessage(v *string) *AgentEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentEventUpdate) ClearErrorMessage() *AgentEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *AgentEventUpdate) SetProcessingMs(v float64) *AgentEventUpdate {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableProcessingMs(v *float64) *AgentEventUpdate {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *AgentEventUpdate) AddProcessingMs(v float64) *AgentEventUpdate {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *AgentEventUpdate) ClearProcessingMs() *AgentEventUpdate {
	_u.mutation.ClearProcessingMs()
	return _u
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdate) Mutation() *AgentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentevent.FieldCorrelationID, field.TypeString)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(agentevent.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(agentevent.FieldProcessingMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(agentevent.FieldProcessingMs, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(agentevent.FieldProcessingMs, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentEventUpdateOne is the builder for updating a single AgentEvent entity.
type AgentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentEventMutation
}

// SetStatus sets the "status" field.
func (_u *AgentEventUpdateOne) SetStatus(v agentevent.Status) *AgentEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableStatus(v *agentevent.Status) *AgentEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentEventUpdateOne) SetErrorMessage(v string) *AgentEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableErrorMessage(v *string) *AgentEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentEventUpdateOne) ClearErrorMessage() *AgentEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *AgentEventUpdateOne) SetProcessingMs(v float64) *AgentEventUpdateOne {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableProcessingMs(v *float64) *AgentEventUpdateOne {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *AgentEventUpdateOne) AddProcessingMs(v float64) *AgentEventUpdateOne {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *AgentEventUpdateOne) ClearProcessingMs() *AgentEventUpdateOne {
	_u.mutation.ClearProcessingMs()
	return _u
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdateOne) Mutation() *AgentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdateOne) Where(ps ...predicate.AgentEvent) *AgentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentEventUpdateOne) Select(field string, fields ...string) *AgentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentEvent entity.
func (_u *AgentEventUpdateOne) Save(ctx context.Context) (*AgentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdateOne) SaveX(ctx context.Context) *AgentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentEventUpdateOne) sqlSave(ctx context.Context) (_node *AgentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentevent.FieldID)
		for _, f := range fields {
			if !agentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentevent.FieldID {
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
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentevent.FieldCorrelationID, field.TypeString)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(agentevent.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(agentevent.FieldProcessingMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(agentevent.FieldProcessingMs, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(agentevent.FieldProcessingMs, field.TypeFloat64)
	}
	_node = &AgentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
