// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/shipfleet/shipfleet/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/shipfleet/shipfleet/ent/agentconfig"
	"github.com/shipfleet/shipfleet/ent/agentevent"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentConfig is the client for interacting with the AgentConfig builders.
	AgentConfig *AgentConfigClient
	// AgentEvent is the client for interacting with the AgentEvent builders.
	AgentEvent *AgentEventClient
	// ServiceConnection is the client for interacting with the ServiceConnection builders.
	ServiceConnection *ServiceConnectionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentConfig = NewAgentConfigClient(c.config)
	c.AgentEvent = NewAgentEventClient(c.config)
	c.ServiceConnection = NewServiceConnectionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AgentConfig:       NewAgentConfigClient(cfg),
		AgentEvent:        NewAgentEventClient(cfg),
		ServiceConnection: NewServiceConnectionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AgentConfig:       NewAgentConfigClient(cfg),
		AgentEvent:        NewAgentEventClient(cfg),
		ServiceConnection: NewServiceConnectionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentConfig.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AgentConfig.Use(hooks...)
	c.AgentEvent.Use(hooks...)
	c.ServiceConnection.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentConfig.Intercept(interceptors...)
	c.AgentEvent.Intercept(interceptors...)
	c.ServiceConnection.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentConfigMutation:
		return c.AgentConfig.mutate(ctx, m)
	case *AgentEventMutation:
		return c.AgentEvent.mutate(ctx, m)
	case *ServiceConnectionMutation:
		return c.ServiceConnection.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentConfigClient is a client for the AgentConfig schema.
type AgentConfigClient struct {
	config
}

// NewAgentConfigClient returns a client for the AgentConfig from the given config.
func NewAgentConfigClient(c config) *AgentConfigClient {
	return &AgentConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentconfig.Hooks(f(g(h())))`.
func (c *AgentConfigClient) Use(hooks ...Hook) {
	c.hooks.AgentConfig = append(c.hooks.AgentConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentconfig.Intercept(f(g(h())))`.
func (c *AgentConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentConfig = append(c.inters.AgentConfig, interceptors...)
}

// Create returns a builder for creating a AgentConfig entity.
func (c *AgentConfigClient) Create() *AgentConfigCreate {
	mutation := newAgentConfigMutation(c.config, OpCreate)
	return &AgentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentConfig entities.
func (c *AgentConfigClient) CreateBulk(builders ...*AgentConfigCreate) *AgentConfigCreateBulk {
	return &AgentConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentConfigClient) MapCreateBulk(slice any, setFunc func(*AgentConfigCreate, int)) *AgentConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentConfigCreateBulk{err: fmt.Errorf("calling to AgentConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentConfig.
func (c *AgentConfigClient) Update() *AgentConfigUpdate {
	mutation := newAgentConfigMutation(c.config, OpUpdate)
	return &AgentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentConfigClient) UpdateOne(_m *AgentConfig) *AgentConfigUpdateOne {
	mutation := newAgentConfigMutation(c.config, OpUpdateOne, withAgentConfig(_m))
	return &AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentConfigClient) UpdateOneID(id int) *AgentConfigUpdateOne {
	mutation := newAgentConfigMutation(c.config, OpUpdateOne, withAgentConfigID(id))
	return &AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentConfig.
func (c *AgentConfigClient) Delete() *AgentConfigDelete {
	mutation := newAgentConfigMutation(c.config, OpDelete)
	return &AgentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentConfigClient) DeleteOne(_m *AgentConfig) *AgentConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentConfigClient) DeleteOneID(id int) *AgentConfigDeleteOne {
	builder := c.Delete().Where(agentconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentConfigDeleteOne{builder}
}

// Query returns a query builder for AgentConfig.
func (c *AgentConfigClient) Query() *AgentConfigQuery {
	return &AgentConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentConfig entity by its id.
func (c *AgentConfigClient) Get(ctx context.Context, id int) (*AgentConfig, error) {
	return c.Query().Where(agentconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentConfigClient) GetX(ctx context.Context, id int) *AgentConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentConfigClient) Hooks() []Hook {
	return c.hooks.AgentConfig
}

// Interceptors returns the client interceptors.
func (c *AgentConfigClient) Interceptors() []Interceptor {
	return c.inters.AgentConfig
}

func (c *AgentConfigClient) mutate(ctx context.Context, m *AgentConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentConfig mutation op: %q", m.Op())
	}
}

// AgentEventClient is a client for the AgentEvent schema.
type AgentEventClient struct {
	config
}

// NewAgentEventClient returns a client for the AgentEvent from the given config.
func NewAgentEventClient(c config) *AgentEventClient {
	return &AgentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentevent.Hooks(f(g(h())))`.
func (c *AgentEventClient) Use(hooks ...Hook) {
	c.hooks.AgentEvent = append(c.hooks.AgentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentevent.Intercept(f(g(h())))`.
func (c *AgentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentEvent = append(c.inters.AgentEvent, interceptors...)
}

// Create returns a builder for creating a AgentEvent entity.
func (c *AgentEventClient) Create() *AgentEventCreate {
	mutation := newAgentEventMutation(c.config, OpCreate)
	return &AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentEvent entities.
func (c *AgentEventClient) CreateBulk(builders ...*AgentEventCreate) *AgentEventCreateBulk {
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentEventClient) MapCreateBulk(slice any, setFunc func(*AgentEventCreate, int)) *AgentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentEventCreateBulk{err: fmt.Errorf("calling to AgentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentEvent.
func (c *AgentEventClient) Update() *AgentEventUpdate {
	mutation := newAgentEventMutation(c.config, OpUpdate)
	return &AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentEventClient) UpdateOne(_m *AgentEvent) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEvent(_m))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentEventClient) UpdateOneID(id int) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEventID(id))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentEvent.
func (c *AgentEventClient) Delete() *AgentEventDelete {
	mutation := newAgentEventMutation(c.config, OpDelete)
	return &AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentEventClient) DeleteOne(_m *AgentEvent) *AgentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentEventClient) DeleteOneID(id int) *AgentEventDeleteOne {
	builder := c.Delete().Where(agentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentEventDeleteOne{builder}
}

// Query returns a query builder for AgentEvent.
func (c *AgentEventClient) Query() *AgentEventQuery {
	return &AgentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentEvent entity by its id.
func (c *AgentEventClient) Get(ctx context.Context, id int) (*AgentEvent, error) {
	return c.Query().Where(agentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentEventClient) GetX(ctx context.Context, id int) *AgentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentEventClient) Hooks() []Hook {
	return c.hooks.AgentEvent
}

// Interceptors returns the client interceptors.
func (c *AgentEventClient) Interceptors() []Interceptor {
	return c.inters.AgentEvent
}

func (c *AgentEventClient) mutate(ctx context.Context, m *AgentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentEvent mutation op: %q", m.Op())
	}
}

// ServiceConnectionClient is a client for the ServiceConnection schema.
type ServiceConnectionClient struct {
	config
}

// NewServiceConnectionClient returns a client for the ServiceConnection from the given config.
func NewServiceConnectionClient(c config) *ServiceConnectionClient {
	return &ServiceConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceconnection.Hooks(f(g(h())))`.
func (c *ServiceConnectionClient) Use(hooks ...Hook) {
	c.hooks.ServiceConnection = append(c.hooks.ServiceConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceconnection.Intercept(f(g(h())))`.
func (c *ServiceConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceConnection = append(c.inters.ServiceConnection, interceptors...)
}

// Create returns a builder for creating a ServiceConnection entity.
func (c *ServiceConnectionClient) Create() *ServiceConnectionCreate {
	mutation := newServiceConnectionMutation(c.config, OpCreate)
	return &ServiceConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceConnection entities.
func (c *ServiceConnectionClient) CreateBulk(builders ...*ServiceConnectionCreate) *ServiceConnectionCreateBulk {
	return &ServiceConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceConnectionClient) MapCreateBulk(slice any, setFunc func(*ServiceConnectionCreate, int)) *ServiceConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceConnectionCreateBulk{err: fmt.Errorf("calling to ServiceConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceConnection.
func (c *ServiceConnectionClient) Update() *ServiceConnectionUpdate {
	mutation := newServiceConnectionMutation(c.config, OpUpdate)
	return &ServiceConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceConnectionClient) UpdateOne(_m *ServiceConnection) *ServiceConnectionUpdateOne {
	mutation := newServiceConnectionMutation(c.config, OpUpdateOne, withServiceConnection(_m))
	return &ServiceConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceConnectionClient) UpdateOneID(id int) *ServiceConnectionUpdateOne {
	mutation := newServiceConnectionMutation(c.config, OpUpdateOne, withServiceConnectionID(id))
	return &ServiceConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceConnection.
func (c *ServiceConnectionClient) Delete() *ServiceConnectionDelete {
	mutation := newServiceConnectionMutation(c.config, OpDelete)
	return &ServiceConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceConnectionClient) DeleteOne(_m *ServiceConnection) *ServiceConnectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceConnectionClient) DeleteOneID(id int) *ServiceConnectionDeleteOne {
	builder := c.Delete().Where(serviceconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceConnectionDeleteOne{builder}
}

// Query returns a query builder for ServiceConnection.
func (c *ServiceConnectionClient) Query() *ServiceConnectionQuery {
	return &ServiceConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceConnection entity by its id.
func (c *ServiceConnectionClient) Get(ctx context.Context, id int) (*ServiceConnection, error) {
	return c.Query().Where(serviceconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceConnectionClient) GetX(ctx context.Context, id int) *ServiceConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceConnectionClient) Hooks() []Hook {
	return c.hooks.ServiceConnection
}

// Interceptors returns the client interceptors.
func (c *ServiceConnectionClient) Interceptors() []Interceptor {
	return c.inters.ServiceConnection
}

func (c *ServiceConnectionClient) mutate(ctx context.Context, m *ServiceConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceConnection mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentConfig, AgentEvent, ServiceConnection []ent.Hook
	}
	inters struct {
		AgentConfig, AgentEvent, ServiceConnection []ent.Interceptor
	}
)
