// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/learnaura/aura/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/academicevent"
	"github.com/learnaura/aura/ent/classificationevent"
	"github.com/learnaura/aura/ent/cognitiveevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AcademicEvent is the client for interacting with the AcademicEvent builders.
	AcademicEvent *AcademicEventClient
	// ClassificationEvent is the client for interacting with the ClassificationEvent builders.
	ClassificationEvent *ClassificationEventClient
	// CognitiveEvent is the client for interacting with the CognitiveEvent builders.
	CognitiveEvent *CognitiveEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AcademicEvent = NewAcademicEventClient(c.config)
	c.ClassificationEvent = NewClassificationEventClient(c.config)
	c.CognitiveEvent = NewCognitiveEventClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AcademicEvent:       NewAcademicEventClient(cfg),
		ClassificationEvent: NewClassificationEventClient(cfg),
		CognitiveEvent:      NewCognitiveEventClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AcademicEvent:       NewAcademicEventClient(cfg),
		ClassificationEvent: NewClassificationEventClient(cfg),
		CognitiveEvent:      NewCognitiveEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AcademicEvent.
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
	c.AcademicEvent.Use(hooks...)
	c.ClassificationEvent.Use(hooks...)
	c.CognitiveEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AcademicEvent.Intercept(interceptors...)
	c.ClassificationEvent.Intercept(interceptors...)
	c.CognitiveEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AcademicEventMutation:
		return c.AcademicEvent.mutate(ctx, m)
	case *ClassificationEventMutation:
		return c.ClassificationEvent.mutate(ctx, m)
	case *CognitiveEventMutation:
		return c.CognitiveEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AcademicEventClient is a client for the AcademicEvent schema.
type AcademicEventClient struct {
	config
}

// NewAcademicEventClient returns a client for the AcademicEvent from the given config.
func NewAcademicEventClient(c config) *AcademicEventClient {
	return &AcademicEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `academicevent.Hooks(f(g(h())))`.
func (c *AcademicEventClient) Use(hooks ...Hook) {
	c.hooks.AcademicEvent = append(c.hooks.AcademicEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `academicevent.Intercept(f(g(h())))`.
func (c *AcademicEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AcademicEvent = append(c.inters.AcademicEvent, interceptors...)
}

// Create returns a builder for creating a AcademicEvent entity.
func (c *AcademicEventClient) Create() *AcademicEventCreate {
	mutation := newAcademicEventMutation(c.config, OpCreate)
	return &AcademicEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AcademicEvent entities.
func (c *AcademicEventClient) CreateBulk(builders ...*AcademicEventCreate) *AcademicEventCreateBulk {
	return &AcademicEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AcademicEventClient) MapCreateBulk(slice any, setFunc func(*AcademicEventCreate, int)) *AcademicEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AcademicEventCreateBulk{err: fmt.Errorf("calling to AcademicEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AcademicEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AcademicEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AcademicEvent.
func (c *AcademicEventClient) Update() *AcademicEventUpdate {
	mutation := newAcademicEventMutation(c.config, OpUpdate)
	return &AcademicEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AcademicEventClient) UpdateOne(_m *AcademicEvent) *AcademicEventUpdateOne {
	mutation := newAcademicEventMutation(c.config, OpUpdateOne, withAcademicEvent(_m))
	return &AcademicEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AcademicEventClient) UpdateOneID(id int) *AcademicEventUpdateOne {
	mutation := newAcademicEventMutation(c.config, OpUpdateOne, withAcademicEventID(id))
	return &AcademicEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AcademicEvent.
func (c *AcademicEventClient) Delete() *AcademicEventDelete {
	mutation := newAcademicEventMutation(c.config, OpDelete)
	return &AcademicEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AcademicEventClient) DeleteOne(_m *AcademicEvent) *AcademicEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AcademicEventClient) DeleteOneID(id int) *AcademicEventDeleteOne {
	builder := c.Delete().Where(academicevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AcademicEventDeleteOne{builder}
}

// Query returns a query builder for AcademicEvent.
func (c *AcademicEventClient) Query() *AcademicEventQuery {
	return &AcademicEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAcademicEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AcademicEvent entity by its id.
func (c *AcademicEventClient) Get(ctx context.Context, id int) (*AcademicEvent, error) {
	return c.Query().Where(academicevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AcademicEventClient) GetX(ctx context.Context, id int) *AcademicEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AcademicEventClient) Hooks() []Hook {
	return c.hooks.AcademicEvent
}

// Interceptors returns the client interceptors.
func (c *AcademicEventClient) Interceptors() []Interceptor {
	return c.inters.AcademicEvent
}

func (c *AcademicEventClient) mutate(ctx context.Context, m *AcademicEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AcademicEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AcademicEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AcademicEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AcademicEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AcademicEvent mutation op: %q", m.Op())
	}
}

// ClassificationEventClient is a client for the ClassificationEvent schema.
type ClassificationEventClient struct {
	config
}

// NewClassificationEventClient returns a client for the ClassificationEvent from the given config.
func NewClassificationEventClient(c config) *ClassificationEventClient {
	return &ClassificationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `classificationevent.Hooks(f(g(h())))`.
func (c *ClassificationEventClient) Use(hooks ...Hook) {
	c.hooks.ClassificationEvent = append(c.hooks.ClassificationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `classificationevent.Intercept(f(g(h())))`.
func (c *ClassificationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClassificationEvent = append(c.inters.ClassificationEvent, interceptors...)
}

// Create returns a builder for creating a ClassificationEvent entity.
func (c *ClassificationEventClient) Create() *ClassificationEventCreate {
	mutation := newClassificationEventMutation(c.config, OpCreate)
	return &ClassificationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClassificationEvent entities.
func (c *ClassificationEventClient) CreateBulk(builders ...*ClassificationEventCreate) *ClassificationEventCreateBulk {
	return &ClassificationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClassificationEventClient) MapCreateBulk(slice any, setFunc func(*ClassificationEventCreate, int)) *ClassificationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClassificationEventCreateBulk{err: fmt.Errorf("calling to ClassificationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClassificationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClassificationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClassificationEvent.
func (c *ClassificationEventClient) Update() *ClassificationEventUpdate {
	mutation := newClassificationEventMutation(c.config, OpUpdate)
	return &ClassificationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClassificationEventClient) UpdateOne(_m *ClassificationEvent) *ClassificationEventUpdateOne {
	mutation := newClassificationEventMutation(c.config, OpUpdateOne, withClassificationEvent(_m))
	return &ClassificationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClassificationEventClient) UpdateOneID(id int) *ClassificationEventUpdateOne {
	mutation := newClassificationEventMutation(c.config, OpUpdateOne, withClassificationEventID(id))
	return &ClassificationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClassificationEvent.
func (c *ClassificationEventClient) Delete() *ClassificationEventDelete {
	mutation := newClassificationEventMutation(c.config, OpDelete)
	return &ClassificationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClassificationEventClient) DeleteOne(_m *ClassificationEvent) *ClassificationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClassificationEventClient) DeleteOneID(id int) *ClassificationEventDeleteOne {
	builder := c.Delete().Where(classificationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClassificationEventDeleteOne{builder}
}

// Query returns a query builder for ClassificationEvent.
func (c *ClassificationEventClient) Query() *ClassificationEventQuery {
	return &ClassificationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClassificationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ClassificationEvent entity by its id.
func (c *ClassificationEventClient) Get(ctx context.Context, id int) (*ClassificationEvent, error) {
	return c.Query().Where(classificationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClassificationEventClient) GetX(ctx context.Context, id int) *ClassificationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClassificationEventClient) Hooks() []Hook {
	return c.hooks.ClassificationEvent
}

// Interceptors returns the client interceptors.
func (c *ClassificationEventClient) Interceptors() []Interceptor {
	return c.inters.ClassificationEvent
}

func (c *ClassificationEventClient) mutate(ctx context.Context, m *ClassificationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClassificationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClassificationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClassificationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClassificationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClassificationEvent mutation op: %q", m.Op())
	}
}

// CognitiveEventClient is a client for the CognitiveEvent schema.
type CognitiveEventClient struct {
	config
}

// NewCognitiveEventClient returns a client for the CognitiveEvent from the given config.
func NewCognitiveEventClient(c config) *CognitiveEventClient {
	return &CognitiveEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cognitiveevent.Hooks(f(g(h())))`.
func (c *CognitiveEventClient) Use(hooks ...Hook) {
	c.hooks.CognitiveEvent = append(c.hooks.CognitiveEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cognitiveevent.Intercept(f(g(h())))`.
func (c *CognitiveEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CognitiveEvent = append(c.inters.CognitiveEvent, interceptors...)
}

// Create returns a builder for creating a CognitiveEvent entity.
func (c *CognitiveEventClient) Create() *CognitiveEventCreate {
	mutation := newCognitiveEventMutation(c.config, OpCreate)
	return &CognitiveEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CognitiveEvent entities.
func (c *CognitiveEventClient) CreateBulk(builders ...*CognitiveEventCreate) *CognitiveEventCreateBulk {
	return &CognitiveEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CognitiveEventClient) MapCreateBulk(slice any, setFunc func(*CognitiveEventCreate, int)) *CognitiveEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CognitiveEventCreateBulk{err: fmt.Errorf("calling to CognitiveEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CognitiveEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CognitiveEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CognitiveEvent.
func (c *CognitiveEventClient) Update() *CognitiveEventUpdate {
	mutation := newCognitiveEventMutation(c.config, OpUpdate)
	return &CognitiveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CognitiveEventClient) UpdateOne(_m *CognitiveEvent) *CognitiveEventUpdateOne {
	mutation := newCognitiveEventMutation(c.config, OpUpdateOne, withCognitiveEvent(_m))
	return &CognitiveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CognitiveEventClient) UpdateOneID(id int) *CognitiveEventUpdateOne {
	mutation := newCognitiveEventMutation(c.config, OpUpdateOne, withCognitiveEventID(id))
	return &CognitiveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CognitiveEvent.
func (c *CognitiveEventClient) Delete() *CognitiveEventDelete {
	mutation := newCognitiveEventMutation(c.config, OpDelete)
	return &CognitiveEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CognitiveEventClient) DeleteOne(_m *CognitiveEvent) *CognitiveEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CognitiveEventClient) DeleteOneID(id int) *CognitiveEventDeleteOne {
	builder := c.Delete().Where(cognitiveevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CognitiveEventDeleteOne{builder}
}

// Query returns a query builder for CognitiveEvent.
func (c *CognitiveEventClient) Query() *CognitiveEventQuery {
	return &CognitiveEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCognitiveEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CognitiveEvent entity by its id.
func (c *CognitiveEventClient) Get(ctx context.Context, id int) (*CognitiveEvent, error) {
	return c.Query().Where(cognitiveevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CognitiveEventClient) GetX(ctx context.Context, id int) *CognitiveEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CognitiveEventClient) Hooks() []Hook {
	return c.hooks.CognitiveEvent
}

// Interceptors returns the client interceptors.
func (c *CognitiveEventClient) Interceptors() []Interceptor {
	return c.inters.CognitiveEvent
}

func (c *CognitiveEventClient) mutate(ctx context.Context, m *CognitiveEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CognitiveEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CognitiveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CognitiveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CognitiveEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CognitiveEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AcademicEvent, ClassificationEvent, CognitiveEvent []ent.Hook
	}
	inters struct {
		AcademicEvent, ClassificationEvent, CognitiveEvent []ent.Interceptor
	}
)
