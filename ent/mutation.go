// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipfleet/shipfleet/ent/agentconfig"
	"github.com/shipfleet/shipfleet/ent/agentevent"
	"github.com/shipfleet/shipfleet/ent/predicate"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentConfig       = "AgentConfig"
	TypeAgentEvent        = "AgentEvent"
	TypeServiceConnection = "ServiceConnection"
)

// AgentConfigMutation represents an operation that mutates the AgentConfig nodes in the graph.
type AgentConfigMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	project_id          *int
	addproject_id       *int
	agent_name          *string
	enabled             *bool
	_config             *map[string]interface{}
	last_run_at         *time.Time
	events_processed    *int64
	addevents_processed *int64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentConfig, error)
	predicates          []predicate.AgentConfig
}

var _ ent.Mutation = (*AgentConfigMutation)(nil)

// agentconfigOption allows management of the mutation configuration using functional options.
type agentconfigOption func(*AgentConfigMutation)

// newAgentConfigMutation creates new mutation for the AgentConfig entity.
func newAgentConfigMutation(c config, op Op, opts ...agentconfigOption) *AgentConfigMutation {
	m := &AgentConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentConfigID sets the ID field of the mutation.
func withAgentConfigID(id int) agentconfigOption {
	return func(m *AgentConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentConfig
		)
		m.oldValue = func(ctx context.Context) (*AgentConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentConfig sets the old AgentConfig of the mutation.
func withAgentConfig(node *AgentConfig) agentconfigOption {
	return func(m *AgentConfigMutation) {
		m.oldValue = func(context.Context) (*AgentConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *AgentConfigMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentConfigMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *AgentConfigMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *AgentConfigMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentConfigMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentConfigMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentConfigMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentConfigMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetEnabled sets the "enabled" field.
func (m *AgentConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AgentConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AgentConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConfig sets the "config" field.
func (m *AgentConfigMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentConfigMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentConfigMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agentconfig.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentConfigMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agentconfig.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentConfigMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agentconfig.FieldConfig)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *AgentConfigMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *AgentConfigMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *AgentConfigMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[agentconfig.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *AgentConfigMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[agentconfig.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *AgentConfigMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, agentconfig.FieldLastRunAt)
}

// SetEventsProcessed sets the "events_processed" field.
func (m *AgentConfigMutation) SetEventsProcessed(i int64) {
	m.events_processed = &i
	m.addevents_processed = nil
}

// EventsProcessed returns the value of the "events_processed" field in the mutation.
func (m *AgentConfigMutation) EventsProcessed() (r int64, exists bool) {
	v := m.events_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsProcessed returns the old "events_processed" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldEventsProcessed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsProcessed: %w", err)
	}
	return oldValue.EventsProcessed, nil
}

// AddEventsProcessed adds i to the "events_processed" field.
func (m *AgentConfigMutation) AddEventsProcessed(i int64) {
	if m.addevents_processed != nil {
		*m.addevents_processed += i
	} else {
		m.addevents_processed = &i
	}
}

// AddedEventsProcessed returns the value that was added to the "events_processed" field in this mutation.
func (m *AgentConfigMutation) AddedEventsProcessed() (r int64, exists bool) {
	v := m.addevents_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsProcessed resets all changes to the "events_processed" field.
func (m *AgentConfigMutation) ResetEventsProcessed() {
	m.events_processed = nil
	m.addevents_processed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentConfigMutation builder.
func (m *AgentConfigMutation) Where(ps ...predicate.AgentConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentConfig).
func (m *AgentConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentConfigMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project_id != nil {
		fields = append(fields, agentconfig.FieldProjectID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentconfig.FieldAgentName)
	}
	if m.enabled != nil {
		fields = append(fields, agentconfig.FieldEnabled)
	}
	if m._config != nil {
		fields = append(fields, agentconfig.FieldConfig)
	}
	if m.last_run_at != nil {
		fields = append(fields, agentconfig.FieldLastRunAt)
	}
	if m.events_processed != nil {
		fields = append(fields, agentconfig.FieldEventsProcessed)
	}
	if m.created_at != nil {
		fields = append(fields, agentconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentconfig.FieldProjectID:
		return m.ProjectID()
	case agentconfig.FieldAgentName:
		return m.AgentName()
	case agentconfig.FieldEnabled:
		return m.Enabled()
	case agentconfig.FieldConfig:
		return m.Config()
	case agentconfig.FieldLastRunAt:
		return m.LastRunAt()
	case agentconfig.FieldEventsProcessed:
		return m.EventsProcessed()
	case agentconfig.FieldCreatedAt:
		return m.CreatedAt()
	case agentconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentconfig.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentconfig.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case agentconfig.FieldConfig:
		return m.OldConfig(ctx)
	case agentconfig.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case agentconfig.FieldEventsProcessed:
		return m.OldEventsProcessed(ctx)
	case agentconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentconfig.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentconfig.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case agentconfig.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agentconfig.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case agentconfig.FieldEventsProcessed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsProcessed(v)
		return nil
	case agentconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentConfigMutation) AddedFields() []string {
	var fields []string
	if m.addproject_id != nil {
		fields = append(fields, agentconfig.FieldProjectID)
	}
	if m.addevents_processed != nil {
		fields = append(fields, agentconfig.FieldEventsProcessed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentconfig.FieldProjectID:
		return m.AddedProjectID()
	case agentconfig.FieldEventsProcessed:
		return m.AddedEventsProcessed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentconfig.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	case agentconfig.FieldEventsProcessed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsProcessed(v)
		return nil
	}
	return fmt.Errorf("unknown AgentConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentconfig.FieldConfig) {
		fields = append(fields, agentconfig.FieldConfig)
	}
	if m.FieldCleared(agentconfig.FieldLastRunAt) {
		fields = append(fields, agentconfig.FieldLastRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentConfigMutation) ClearField(name string) error {
	switch name {
	case agentconfig.FieldConfig:
		m.ClearConfig()
		return nil
	case agentconfig.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	}
	return fmt.Errorf("unknown AgentConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentConfigMutation) ResetField(name string) error {
	switch name {
	case agentconfig.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentconfig.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case agentconfig.FieldConfig:
		m.ResetConfig()
		return nil
	case agentconfig.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case agentconfig.FieldEventsProcessed:
		m.ResetEventsProcessed()
		return nil
	case agentconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentConfig edge %s", name)
}

// AgentEventMutation represents an operation that mutates the AgentEvent nodes in the graph.
type AgentEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	event_id         *string
	kind             *string
	source           *string
	project_id       *int
	addproject_id    *int
	correlation_id   *string
	data             *map[string]interface{}
	status           *agentevent.Status
	error_message    *string
	processing_ms    *float64
	addprocessing_ms *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AgentEvent, error)
	predicates       []predicate.AgentEvent
}

var _ ent.Mutation = (*AgentEventMutation)(nil)

// agenteventOption allows management of the mutation configuration using functional options.
type agenteventOption func(*AgentEventMutation)

// newAgentEventMutation creates new mutation for the AgentEvent entity.
func newAgentEventMutation(c config, op Op, opts ...agenteventOption) *AgentEventMutation {
	m := &AgentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentEventID sets the ID field of the mutation.
func withAgentEventID(id int) agenteventOption {
	return func(m *AgentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentEvent
		)
		m.oldValue = func(ctx context.Context) (*AgentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentEvent sets the old AgentEvent of the mutation.
func withAgentEvent(node *AgentEvent) agenteventOption {
	return func(m *AgentEventMutation) {
		m.oldValue = func(context.Context) (*AgentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *AgentEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AgentEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AgentEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetKind sets the "kind" field.
func (m *AgentEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentEventMutation) ResetKind() {
	m.kind = nil
}

// SetSource sets the "source" field.
func (m *AgentEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AgentEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AgentEventMutation) ResetSource() {
	m.source = nil
}

// SetProjectID sets the "project_id" field.
func (m *AgentEventMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentEventMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *AgentEventMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *AgentEventMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentEventMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AgentEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AgentEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AgentEventMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[agentevent.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AgentEventMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AgentEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, agentevent.FieldCorrelationID)
}

// SetData sets the "data" field.
func (m *AgentEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *AgentEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *AgentEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[agentevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *AgentEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *AgentEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, agentevent.FieldData)
}

// SetStatus sets the "status" field.
func (m *AgentEventMutation) SetStatus(a agentevent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentEventMutation) Status() (r agentevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldStatus(ctx context.Context) (v agentevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentEventMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentevent.FieldErrorMessage)
}

// SetProcessingMs sets the "processing_ms" field.
func (m *AgentEventMutation) SetProcessingMs(f float64) {
	m.processing_ms = &f
	m.addprocessing_ms = nil
}

// ProcessingMs returns the value of the "processing_ms" field in the mutation.
func (m *AgentEventMutation) ProcessingMs() (r float64, exists bool) {
	v := m.processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMs returns the old "processing_ms" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldProcessingMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMs: %w", err)
	}
	return oldValue.ProcessingMs, nil
}

// AddProcessingMs adds f to the "processing_ms" field.
func (m *AgentEventMutation) AddProcessingMs(f float64) {
	if m.addprocessing_ms != nil {
		*m.addprocessing_ms += f
	} else {
		m.addprocessing_ms = &f
	}
}

// AddedProcessingMs returns the value that was added to the "processing_ms" field in this mutation.
func (m *AgentEventMutation) AddedProcessingMs() (r float64, exists bool) {
	v := m.addprocessing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (m *AgentEventMutation) ClearProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	m.clearedFields[agentevent.FieldProcessingMs] = struct{}{}
}

// ProcessingMsCleared returns if the "processing_ms" field was cleared in this mutation.
func (m *AgentEventMutation) ProcessingMsCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldProcessingMs]
	return ok
}

// ResetProcessingMs resets all changes to the "processing_ms" field.
func (m *AgentEventMutation) ResetProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	delete(m.clearedFields, agentevent.FieldProcessingMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentEventMutation builder.
func (m *AgentEventMutation) Where(ps ...predicate.AgentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentEvent).
func (m *AgentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.event_id != nil {
		fields = append(fields, agentevent.FieldEventID)
	}
	if m.kind != nil {
		fields = append(fields, agentevent.FieldKind)
	}
	if m.source != nil {
		fields = append(fields, agentevent.FieldSource)
	}
	if m.project_id != nil {
		fields = append(fields, agentevent.FieldProjectID)
	}
	if m.correlation_id != nil {
		fields = append(fields, agentevent.FieldCorrelationID)
	}
	if m.data != nil {
		fields = append(fields, agentevent.FieldData)
	}
	if m.status != nil {
		fields = append(fields, agentevent.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, agentevent.FieldErrorMessage)
	}
	if m.processing_ms != nil {
		fields = append(fields, agentevent.FieldProcessingMs)
	}
	if m.created_at != nil {
		fields = append(fields, agentevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldEventID:
		return m.EventID()
	case agentevent.FieldKind:
		return m.Kind()
	case agentevent.FieldSource:
		return m.Source()
	case agentevent.FieldProjectID:
		return m.ProjectID()
	case agentevent.FieldCorrelationID:
		return m.CorrelationID()
	case agentevent.FieldData:
		return m.Data()
	case agentevent.FieldStatus:
		return m.Status()
	case agentevent.FieldErrorMessage:
		return m.ErrorMessage()
	case agentevent.FieldProcessingMs:
		return m.ProcessingMs()
	case agentevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentevent.FieldEventID:
		return m.OldEventID(ctx)
	case agentevent.FieldKind:
		return m.OldKind(ctx)
	case agentevent.FieldSource:
		return m.OldSource(ctx)
	case agentevent.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case agentevent.FieldData:
		return m.OldData(ctx)
	case agentevent.FieldStatus:
		return m.OldStatus(ctx)
	case agentevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentevent.FieldProcessingMs:
		return m.OldProcessingMs(ctx)
	case agentevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case agentevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case agentevent.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case agentevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case agentevent.FieldStatus:
		v, ok := value.(agentevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentevent.FieldProcessingMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMs(v)
		return nil
	case agentevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentEventMutation) AddedFields() []string {
	var fields []string
	if m.addproject_id != nil {
		fields = append(fields, agentevent.FieldProjectID)
	}
	if m.addprocessing_ms != nil {
		fields = append(fields, agentevent.FieldProcessingMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldProjectID:
		return m.AddedProjectID()
	case agentevent.FieldProcessingMs:
		return m.AddedProcessingMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	case agentevent.FieldProcessingMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentevent.FieldCorrelationID) {
		fields = append(fields, agentevent.FieldCorrelationID)
	}
	if m.FieldCleared(agentevent.FieldData) {
		fields = append(fields, agentevent.FieldData)
	}
	if m.FieldCleared(agentevent.FieldErrorMessage) {
		fields = append(fields, agentevent.FieldErrorMessage)
	}
	if m.FieldCleared(agentevent.FieldProcessingMs) {
		fields = append(fields, agentevent.FieldProcessingMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentEventMutation) ClearField(name string) error {
	switch name {
	case agentevent.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case agentevent.FieldData:
		m.ClearData()
		return nil
	case agentevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentevent.FieldProcessingMs:
		m.ClearProcessingMs()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentEventMutation) ResetField(name string) error {
	switch name {
	case agentevent.FieldEventID:
		m.ResetEventID()
		return nil
	case agentevent.FieldKind:
		m.ResetKind()
		return nil
	case agentevent.FieldSource:
		m.ResetSource()
		return nil
	case agentevent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case agentevent.FieldData:
		m.ResetData()
		return nil
	case agentevent.FieldStatus:
		m.ResetStatus()
		return nil
	case agentevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentevent.FieldProcessingMs:
		m.ResetProcessingMs()
		return nil
	case agentevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent edge %s", name)
}

// ServiceConnectionMutation represents an operation that mutates the ServiceConnection nodes in the graph.
type ServiceConnectionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	project_id    *int
	addproject_id *int
	service_kind  *string
	base_url      *string
	token         *string
	_config       *map[string]interface{}
	enabled       *bool
	last_sync_at  *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ServiceConnection, error)
	predicates    []predicate.ServiceConnection
}

var _ ent.Mutation = (*ServiceConnectionMutation)(nil)

// serviceconnectionOption allows management of the mutation configuration using functional options.
type serviceconnectionOption func(*ServiceConnectionMutation)

// newServiceConnectionMutation creates new mutation for the ServiceConnection entity.
func newServiceConnectionMutation(c config, op Op, opts ...serviceconnectionOption) *ServiceConnectionMutation {
	m := &ServiceConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceConnectionID sets the ID field of the mutation.
func withServiceConnectionID(id int) serviceconnectionOption {
	return func(m *ServiceConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceConnection
		)
		m.oldValue = func(ctx context.Context) (*ServiceConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceConnection sets the old ServiceConnection of the mutation.
func withServiceConnection(node *ServiceConnection) serviceconnectionOption {
	return func(m *ServiceConnectionMutation) {
		m.oldValue = func(context.Context) (*ServiceConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceConnectionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceConnectionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ServiceConnectionMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ServiceConnectionMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *ServiceConnectionMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *ServiceConnectionMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ServiceConnectionMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
}

// SetServiceKind sets the "service_kind" field.
func (m *ServiceConnectionMutation) SetServiceKind(s string) {
	m.service_kind = &s
}

// ServiceKind returns the value of the "service_kind" field in the mutation.
func (m *ServiceConnectionMutation) ServiceKind() (r string, exists bool) {
	v := m.service_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceKind returns the old "service_kind" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldServiceKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceKind: %w", err)
	}
	return oldValue.ServiceKind, nil
}

// ResetServiceKind resets all changes to the "service_kind" field.
func (m *ServiceConnectionMutation) ResetServiceKind() {
	m.service_kind = nil
}

// SetBaseURL sets the "base_url" field.
func (m *ServiceConnectionMutation) SetBaseURL(s string) {
	m.base_url = &s
}

// BaseURL returns the value of the "base_url" field in the mutation.
func (m *ServiceConnectionMutation) BaseURL() (r string, exists bool) {
	v := m.base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseURL returns the old "base_url" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldBaseURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseURL: %w", err)
	}
	return oldValue.BaseURL, nil
}

// ClearBaseURL clears the value of the "base_url" field.
func (m *ServiceConnectionMutation) ClearBaseURL() {
	m.base_url = nil
	m.clearedFields[serviceconnection.FieldBaseURL] = struct{}{}
}

// BaseURLCleared returns if the "base_url" field was cleared in this mutation.
func (m *ServiceConnectionMutation) BaseURLCleared() bool {
	_, ok := m.clearedFields[serviceconnection.FieldBaseURL]
	return ok
}

// ResetBaseURL resets all changes to the "base_url" field.
func (m *ServiceConnectionMutation) ResetBaseURL() {
	m.base_url = nil
	delete(m.clearedFields, serviceconnection.FieldBaseURL)
}

// SetToken sets the "token" field.
func (m *ServiceConnectionMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *ServiceConnectionMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *ServiceConnectionMutation) ResetToken() {
	m.token = nil
}

// SetConfig sets the "config" field.
func (m *ServiceConnectionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ServiceConnectionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ServiceConnectionMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[serviceconnection.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ServiceConnectionMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[serviceconnection.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ServiceConnectionMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, serviceconnection.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *ServiceConnectionMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ServiceConnectionMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ServiceConnectionMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *ServiceConnectionMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *ServiceConnectionMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *ServiceConnectionMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[serviceconnection.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *ServiceConnectionMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[serviceconnection.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *ServiceConnectionMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, serviceconnection.FieldLastSyncAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServiceConnectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServiceConnectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ServiceConnection entity.
// If the ServiceConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceConnectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServiceConnectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ServiceConnectionMutation builder.
func (m *ServiceConnectionMutation) Where(ps ...predicate.ServiceConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceConnection).
func (m *ServiceConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceConnectionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project_id != nil {
		fields = append(fields, serviceconnection.FieldProjectID)
	}
	if m.service_kind != nil {
		fields = append(fields, serviceconnection.FieldServiceKind)
	}
	if m.base_url != nil {
		fields = append(fields, serviceconnection.FieldBaseURL)
	}
	if m.token != nil {
		fields = append(fields, serviceconnection.FieldToken)
	}
	if m._config != nil {
		fields = append(fields, serviceconnection.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, serviceconnection.FieldEnabled)
	}
	if m.last_sync_at != nil {
		fields = append(fields, serviceconnection.FieldLastSyncAt)
	}
	if m.created_at != nil {
		fields = append(fields, serviceconnection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, serviceconnection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceconnection.FieldProjectID:
		return m.ProjectID()
	case serviceconnection.FieldServiceKind:
		return m.ServiceKind()
	case serviceconnection.FieldBaseURL:
		return m.BaseURL()
	case serviceconnection.FieldToken:
		return m.Token()
	case serviceconnection.FieldConfig:
		return m.Config()
	case serviceconnection.FieldEnabled:
		return m.Enabled()
	case serviceconnection.FieldLastSyncAt:
		return m.LastSyncAt()
	case serviceconnection.FieldCreatedAt:
		return m.CreatedAt()
	case serviceconnection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceconnection.FieldProjectID:
		return m.OldProjectID(ctx)
	case serviceconnection.FieldServiceKind:
		return m.OldServiceKind(ctx)
	case serviceconnection.FieldBaseURL:
		return m.OldBaseURL(ctx)
	case serviceconnection.FieldToken:
		return m.OldToken(ctx)
	case serviceconnection.FieldConfig:
		return m.OldConfig(ctx)
	case serviceconnection.FieldEnabled:
		return m.OldEnabled(ctx)
	case serviceconnection.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case serviceconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case serviceconnection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceconnection.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case serviceconnection.FieldServiceKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceKind(v)
		return nil
	case serviceconnection.FieldBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseURL(v)
		return nil
	case serviceconnection.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case serviceconnection.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case serviceconnection.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case serviceconnection.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case serviceconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case serviceconnection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceConnectionMutation) AddedFields() []string {
	var fields []string
	if m.addproject_id != nil {
		fields = append(fields, serviceconnection.FieldProjectID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceConnectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case serviceconnection.FieldProjectID:
		return m.AddedProjectID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case serviceconnection.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceConnectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(serviceconnection.FieldBaseURL) {
		fields = append(fields, serviceconnection.FieldBaseURL)
	}
	if m.FieldCleared(serviceconnection.FieldConfig) {
		fields = append(fields, serviceconnection.FieldConfig)
	}
	if m.FieldCleared(serviceconnection.FieldLastSyncAt) {
		fields = append(fields, serviceconnection.FieldLastSyncAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceConnectionMutation) ClearField(name string) error {
	switch name {
	case serviceconnection.FieldBaseURL:
		m.ClearBaseURL()
		return nil
	case serviceconnection.FieldConfig:
		m.ClearConfig()
		return nil
	case serviceconnection.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceConnectionMutation) ResetField(name string) error {
	switch name {
	case serviceconnection.FieldProjectID:
		m.ResetProjectID()
		return nil
	case serviceconnection.FieldServiceKind:
		m.ResetServiceKind()
		return nil
	case serviceconnection.FieldBaseURL:
		m.ResetBaseURL()
		return nil
	case serviceconnection.FieldToken:
		m.ResetToken()
		return nil
	case serviceconnection.FieldConfig:
		m.ResetConfig()
		return nil
	case serviceconnection.FieldEnabled:
		m.ResetEnabled()
		return nil
	case serviceconnection.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case serviceconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case serviceconnection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceConnectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceConnectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceConnectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceConnectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceConnection edge %s", name)
}
