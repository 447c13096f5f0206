// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/invoiceline"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// InvoiceLine is the client for interacting with the InvoiceLine builders.
	InvoiceLine *InvoiceLineClient
	// ProcessingRun is the client for interacting with the ProcessingRun builders.
	ProcessingRun *ProcessingRunClient
	// Supplier is the client for interacting with the Supplier builders.
	Supplier *SupplierClient
	// SupplierTemplate is the client for interacting with the SupplierTemplate builders.
	SupplierTemplate *SupplierTemplateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Invoice = NewInvoiceClient(c.config)
	c.InvoiceLine = NewInvoiceLineClient(c.config)
	c.ProcessingRun = NewProcessingRunClient(c.config)
	c.Supplier = NewSupplierClient(c.config)
	c.SupplierTemplate = NewSupplierTemplateClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Invoice:          NewInvoiceClient(cfg),
		InvoiceLine:      NewInvoiceLineClient(cfg),
		ProcessingRun:    NewProcessingRunClient(cfg),
		Supplier:         NewSupplierClient(cfg),
		SupplierTemplate: NewSupplierTemplateClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Invoice:          NewInvoiceClient(cfg),
		InvoiceLine:      NewInvoiceLineClient(cfg),
		ProcessingRun:    NewProcessingRunClient(cfg),
		Supplier:         NewSupplierClient(cfg),
		SupplierTemplate: NewSupplierTemplateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Invoice.
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
	c.Invoice.Use(hooks...)
	c.InvoiceLine.Use(hooks...)
	c.ProcessingRun.Use(hooks...)
	c.Supplier.Use(hooks...)
	c.SupplierTemplate.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Invoice.Intercept(interceptors...)
	c.InvoiceLine.Intercept(interceptors...)
	c.ProcessingRun.Intercept(interceptors...)
	c.Supplier.Intercept(interceptors...)
	c.SupplierTemplate.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *InvoiceLineMutation:
		return c.InvoiceLine.mutate(ctx, m)
	case *ProcessingRunMutation:
		return c.ProcessingRun.mutate(ctx, m)
	case *SupplierMutation:
		return c.Supplier.mutate(ctx, m)
	case *SupplierTemplateMutation:
		return c.SupplierTemplate.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySupplier queries the supplier edge of a Invoice.
func (c *InvoiceClient) QuerySupplier(_m *Invoice) *SupplierQuery {
	query := (&SupplierClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(supplier.Table, supplier.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoice.SupplierTable, invoice.SupplierColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLines queries the lines edge of a Invoice.
func (c *InvoiceClient) QueryLines(_m *Invoice) *InvoiceLineQuery {
	query := (&InvoiceLineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(invoiceline.Table, invoiceline.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoice.LinesTable, invoice.LinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Invoice.
func (c *InvoiceClient) QueryRuns(_m *Invoice) *ProcessingRunQuery {
	query := (&ProcessingRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(processingrun.Table, processingrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoice.RunsTable, invoice.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// InvoiceLineClient is a client for the InvoiceLine schema.
type InvoiceLineClient struct {
	config
}

// NewInvoiceLineClient returns a client for the InvoiceLine from the given config.
func NewInvoiceLineClient(c config) *InvoiceLineClient {
	return &InvoiceLineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoiceline.Hooks(f(g(h())))`.
func (c *InvoiceLineClient) Use(hooks ...Hook) {
	c.hooks.InvoiceLine = append(c.hooks.InvoiceLine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoiceline.Intercept(f(g(h())))`.
func (c *InvoiceLineClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceLine = append(c.inters.InvoiceLine, interceptors...)
}

// Create returns a builder for creating a InvoiceLine entity.
func (c *InvoiceLineClient) Create() *InvoiceLineCreate {
	mutation := newInvoiceLineMutation(c.config, OpCreate)
	return &InvoiceLineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceLine entities.
func (c *InvoiceLineClient) CreateBulk(builders ...*InvoiceLineCreate) *InvoiceLineCreateBulk {
	return &InvoiceLineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceLineClient) MapCreateBulk(slice any, setFunc func(*InvoiceLineCreate, int)) *InvoiceLineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceLineCreateBulk{err: fmt.Errorf("calling to InvoiceLineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceLineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceLineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceLine.
func (c *InvoiceLineClient) Update() *InvoiceLineUpdate {
	mutation := newInvoiceLineMutation(c.config, OpUpdate)
	return &InvoiceLineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceLineClient) UpdateOne(_m *InvoiceLine) *InvoiceLineUpdateOne {
	mutation := newInvoiceLineMutation(c.config, OpUpdateOne, withInvoiceLine(_m))
	return &InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceLineClient) UpdateOneID(id uuid.UUID) *InvoiceLineUpdateOne {
	mutation := newInvoiceLineMutation(c.config, OpUpdateOne, withInvoiceLineID(id))
	return &InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceLine.
func (c *InvoiceLineClient) Delete() *InvoiceLineDelete {
	mutation := newInvoiceLineMutation(c.config, OpDelete)
	return &InvoiceLineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceLineClient) DeleteOne(_m *InvoiceLine) *InvoiceLineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceLineClient) DeleteOneID(id uuid.UUID) *InvoiceLineDeleteOne {
	builder := c.Delete().Where(invoiceline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceLineDeleteOne{builder}
}

// Query returns a query builder for InvoiceLine.
func (c *InvoiceLineClient) Query() *InvoiceLineQuery {
	return &InvoiceLineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceLine},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceLine entity by its id.
func (c *InvoiceLineClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceLine, error) {
	return c.Query().Where(invoiceline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceLineClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceLine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a InvoiceLine.
func (c *InvoiceLineClient) QueryInvoice(_m *InvoiceLine) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoiceline.Table, invoiceline.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoiceline.InvoiceTable, invoiceline.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceLineClient) Hooks() []Hook {
	return c.hooks.InvoiceLine
}

// Interceptors returns the client interceptors.
func (c *InvoiceLineClient) Interceptors() []Interceptor {
	return c.inters.InvoiceLine
}

func (c *InvoiceLineClient) mutate(ctx context.Context, m *InvoiceLineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceLineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceLineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceLineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceLine mutation op: %q", m.Op())
	}
}

// ProcessingRunClient is a client for the ProcessingRun schema.
type ProcessingRunClient struct {
	config
}

// NewProcessingRunClient returns a client for the ProcessingRun from the given config.
func NewProcessingRunClient(c config) *ProcessingRunClient {
	return &ProcessingRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingrun.Hooks(f(g(h())))`.
func (c *ProcessingRunClient) Use(hooks ...Hook) {
	c.hooks.ProcessingRun = append(c.hooks.ProcessingRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingrun.Intercept(f(g(h())))`.
func (c *ProcessingRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingRun = append(c.inters.ProcessingRun, interceptors...)
}

// Create returns a builder for creating a ProcessingRun entity.
func (c *ProcessingRunClient) Create() *ProcessingRunCreate {
	mutation := newProcessingRunMutation(c.config, OpCreate)
	return &ProcessingRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingRun entities.
func (c *ProcessingRunClient) CreateBulk(builders ...*ProcessingRunCreate) *ProcessingRunCreateBulk {
	return &ProcessingRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingRunClient) MapCreateBulk(slice any, setFunc func(*ProcessingRunCreate, int)) *ProcessingRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingRunCreateBulk{err: fmt.Errorf("calling to ProcessingRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingRun.
func (c *ProcessingRunClient) Update() *ProcessingRunUpdate {
	mutation := newProcessingRunMutation(c.config, OpUpdate)
	return &ProcessingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingRunClient) UpdateOne(_m *ProcessingRun) *ProcessingRunUpdateOne {
	mutation := newProcessingRunMutation(c.config, OpUpdateOne, withProcessingRun(_m))
	return &ProcessingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingRunClient) UpdateOneID(id uuid.UUID) *ProcessingRunUpdateOne {
	mutation := newProcessingRunMutation(c.config, OpUpdateOne, withProcessingRunID(id))
	return &ProcessingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingRun.
func (c *ProcessingRunClient) Delete() *ProcessingRunDelete {
	mutation := newProcessingRunMutation(c.config, OpDelete)
	return &ProcessingRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingRunClient) DeleteOne(_m *ProcessingRun) *ProcessingRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingRunClient) DeleteOneID(id uuid.UUID) *ProcessingRunDeleteOne {
	builder := c.Delete().Where(processingrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingRunDeleteOne{builder}
}

// Query returns a query builder for ProcessingRun.
func (c *ProcessingRunClient) Query() *ProcessingRunQuery {
	return &ProcessingRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingRun entity by its id.
func (c *ProcessingRunClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingRun, error) {
	return c.Query().Where(processingrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingRunClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a ProcessingRun.
func (c *ProcessingRunClient) QueryInvoice(_m *ProcessingRun) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingrun.Table, processingrun.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingrun.InvoiceTable, processingrun.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a ProcessingRun.
func (c *ProcessingRunClient) QueryTemplate(_m *ProcessingRun) *SupplierTemplateQuery {
	query := (&SupplierTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingrun.Table, processingrun.FieldID, id),
			sqlgraph.To(suppliertemplate.Table, suppliertemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingrun.TemplateTable, processingrun.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingRunClient) Hooks() []Hook {
	return c.hooks.ProcessingRun
}

// Interceptors returns the client interceptors.
func (c *ProcessingRunClient) Interceptors() []Interceptor {
	return c.inters.ProcessingRun
}

func (c *ProcessingRunClient) mutate(ctx context.Context, m *ProcessingRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingRun mutation op: %q", m.Op())
	}
}

// SupplierClient is a client for the Supplier schema.
type SupplierClient struct {
	config
}

// NewSupplierClient returns a client for the Supplier from the given config.
func NewSupplierClient(c config) *SupplierClient {
	return &SupplierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplier.Hooks(f(g(h())))`.
func (c *SupplierClient) Use(hooks ...Hook) {
	c.hooks.Supplier = append(c.hooks.Supplier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplier.Intercept(f(g(h())))`.
func (c *SupplierClient) Intercept(interceptors ...Interceptor) {
	c.inters.Supplier = append(c.inters.Supplier, interceptors...)
}

// Create returns a builder for creating a Supplier entity.
func (c *SupplierClient) Create() *SupplierCreate {
	mutation := newSupplierMutation(c.config, OpCreate)
	return &SupplierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Supplier entities.
func (c *SupplierClient) CreateBulk(builders ...*SupplierCreate) *SupplierCreateBulk {
	return &SupplierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierClient) MapCreateBulk(slice any, setFunc func(*SupplierCreate, int)) *SupplierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierCreateBulk{err: fmt.Errorf("calling to SupplierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Supplier.
func (c *SupplierClient) Update() *SupplierUpdate {
	mutation := newSupplierMutation(c.config, OpUpdate)
	return &SupplierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierClient) UpdateOne(_m *Supplier) *SupplierUpdateOne {
	mutation := newSupplierMutation(c.config, OpUpdateOne, withSupplier(_m))
	return &SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierClient) UpdateOneID(id uuid.UUID) *SupplierUpdateOne {
	mutation := newSupplierMutation(c.config, OpUpdateOne, withSupplierID(id))
	return &SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Supplier.
func (c *SupplierClient) Delete() *SupplierDelete {
	mutation := newSupplierMutation(c.config, OpDelete)
	return &SupplierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierClient) DeleteOne(_m *Supplier) *SupplierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierClient) DeleteOneID(id uuid.UUID) *SupplierDeleteOne {
	builder := c.Delete().Where(supplier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierDeleteOne{builder}
}

// Query returns a query builder for Supplier.
func (c *SupplierClient) Query() *SupplierQuery {
	return &SupplierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplier},
		inters: c.Interceptors(),
	}
}

// Get returns a Supplier entity by its id.
func (c *SupplierClient) Get(ctx context.Context, id uuid.UUID) (*Supplier, error) {
	return c.Query().Where(supplier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierClient) GetX(ctx context.Context, id uuid.UUID) *Supplier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplates queries the templates edge of a Supplier.
func (c *SupplierClient) QueryTemplates(_m *Supplier) *SupplierTemplateQuery {
	query := (&SupplierTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supplier.Table, supplier.FieldID, id),
			sqlgraph.To(suppliertemplate.Table, suppliertemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, supplier.TemplatesTable, supplier.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvoices queries the invoices edge of a Supplier.
func (c *SupplierClient) QueryInvoices(_m *Supplier) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supplier.Table, supplier.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, supplier.InvoicesTable, supplier.InvoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierClient) Hooks() []Hook {
	return c.hooks.Supplier
}

// Interceptors returns the client interceptors.
func (c *SupplierClient) Interceptors() []Interceptor {
	return c.inters.Supplier
}

func (c *SupplierClient) mutate(ctx context.Context, m *SupplierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Supplier mutation op: %q", m.Op())
	}
}

// SupplierTemplateClient is a client for the SupplierTemplate schema.
type SupplierTemplateClient struct {
	config
}

// NewSupplierTemplateClient returns a client for the SupplierTemplate from the given config.
func NewSupplierTemplateClient(c config) *SupplierTemplateClient {
	return &SupplierTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suppliertemplate.Hooks(f(g(h())))`.
func (c *SupplierTemplateClient) Use(hooks ...Hook) {
	c.hooks.SupplierTemplate = append(c.hooks.SupplierTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suppliertemplate.Intercept(f(g(h())))`.
func (c *SupplierTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierTemplate = append(c.inters.SupplierTemplate, interceptors...)
}

// Create returns a builder for creating a SupplierTemplate entity.
func (c *SupplierTemplateClient) Create() *SupplierTemplateCreate {
	mutation := newSupplierTemplateMutation(c.config, OpCreate)
	return &SupplierTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierTemplate entities.
func (c *SupplierTemplateClient) CreateBulk(builders ...*SupplierTemplateCreate) *SupplierTemplateCreateBulk {
	return &SupplierTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierTemplateClient) MapCreateBulk(slice any, setFunc func(*SupplierTemplateCreate, int)) *SupplierTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierTemplateCreateBulk{err: fmt.Errorf("calling to SupplierTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierTemplate.
func (c *SupplierTemplateClient) Update() *SupplierTemplateUpdate {
	mutation := newSupplierTemplateMutation(c.config, OpUpdate)
	return &SupplierTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierTemplateClient) UpdateOne(_m *SupplierTemplate) *SupplierTemplateUpdateOne {
	mutation := newSupplierTemplateMutation(c.config, OpUpdateOne, withSupplierTemplate(_m))
	return &SupplierTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierTemplateClient) UpdateOneID(id uuid.UUID) *SupplierTemplateUpdateOne {
	mutation := newSupplierTemplateMutation(c.config, OpUpdateOne, withSupplierTemplateID(id))
	return &SupplierTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierTemplate.
func (c *SupplierTemplateClient) Delete() *SupplierTemplateDelete {
	mutation := newSupplierTemplateMutation(c.config, OpDelete)
	return &SupplierTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierTemplateClient) DeleteOne(_m *SupplierTemplate) *SupplierTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierTemplateClient) DeleteOneID(id uuid.UUID) *SupplierTemplateDeleteOne {
	builder := c.Delete().Where(suppliertemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierTemplateDeleteOne{builder}
}

// Query returns a query builder for SupplierTemplate.
func (c *SupplierTemplateClient) Query() *SupplierTemplateQuery {
	return &SupplierTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierTemplate entity by its id.
func (c *SupplierTemplateClient) Get(ctx context.Context, id uuid.UUID) (*SupplierTemplate, error) {
	return c.Query().Where(suppliertemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierTemplateClient) GetX(ctx context.Context, id uuid.UUID) *SupplierTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySupplier queries the supplier edge of a SupplierTemplate.
func (c *SupplierTemplateClient) QuerySupplier(_m *SupplierTemplate) *SupplierQuery {
	query := (&SupplierClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suppliertemplate.Table, suppliertemplate.FieldID, id),
			sqlgraph.To(supplier.Table, supplier.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suppliertemplate.SupplierTable, suppliertemplate.SupplierColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a SupplierTemplate.
func (c *SupplierTemplateClient) QueryRuns(_m *SupplierTemplate) *ProcessingRunQuery {
	query := (&ProcessingRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suppliertemplate.Table, suppliertemplate.FieldID, id),
			sqlgraph.To(processingrun.Table, processingrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, suppliertemplate.RunsTable, suppliertemplate.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierTemplateClient) Hooks() []Hook {
	return c.hooks.SupplierTemplate
}

// Interceptors returns the client interceptors.
func (c *SupplierTemplateClient) Interceptors() []Interceptor {
	return c.inters.SupplierTemplate
}

func (c *SupplierTemplateClient) mutate(ctx context.Context, m *SupplierTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierTemplate mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Invoice, InvoiceLine, ProcessingRun, Supplier, SupplierTemplate []ent.Hook
	}
	inters struct {
		Invoice, InvoiceLine, ProcessingRun, Supplier,
		SupplierTemplate []ent.Interceptor
	}
)
