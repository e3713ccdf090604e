// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tracklane/tracklane/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tracklane/tracklane/ent/compensationsettings"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CompensationSettings is the client for interacting with the CompensationSettings builders.
	CompensationSettings *CompensationSettingsClient
	// PayoutRecord is the client for interacting with the PayoutRecord builders.
	PayoutRecord *PayoutRecordClient
	// PayoutRun is the client for interacting with the PayoutRun builders.
	PayoutRun *PayoutRunClient
	// Sale is the client for interacting with the Sale builders.
	Sale *SaleClient
	// SyncProposal is the client for interacting with the SyncProposal builders.
	SyncProposal *SyncProposalClient
	// Track is the client for interacting with the Track builders.
	Track *TrackClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CompensationSettings = NewCompensationSettingsClient(c.config)
	c.PayoutRecord = NewPayoutRecordClient(c.config)
	c.PayoutRun = NewPayoutRunClient(c.config)
	c.Sale = NewSaleClient(c.config)
	c.SyncProposal = NewSyncProposalClient(c.config)
	c.Track = NewTrackClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		CompensationSettings: NewCompensationSettingsClient(cfg),
		PayoutRecord:         NewPayoutRecordClient(cfg),
		PayoutRun:            NewPayoutRunClient(cfg),
		Sale:                 NewSaleClient(cfg),
		SyncProposal:         NewSyncProposalClient(cfg),
		Track:                NewTrackClient(cfg),
		User:                 NewUserClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		CompensationSettings: NewCompensationSettingsClient(cfg),
		PayoutRecord:         NewPayoutRecordClient(cfg),
		PayoutRun:            NewPayoutRunClient(cfg),
		Sale:                 NewSaleClient(cfg),
		SyncProposal:         NewSyncProposalClient(cfg),
		Track:                NewTrackClient(cfg),
		User:                 NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CompensationSettings.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.CompensationSettings, c.PayoutRecord, c.PayoutRun, c.Sale, c.SyncProposal,
		c.Track, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CompensationSettings, c.PayoutRecord, c.PayoutRun, c.Sale, c.SyncProposal,
		c.Track, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompensationSettingsMutation:
		return c.CompensationSettings.mutate(ctx, m)
	case *PayoutRecordMutation:
		return c.PayoutRecord.mutate(ctx, m)
	case *PayoutRunMutation:
		return c.PayoutRun.mutate(ctx, m)
	case *SaleMutation:
		return c.Sale.mutate(ctx, m)
	case *SyncProposalMutation:
		return c.SyncProposal.mutate(ctx, m)
	case *TrackMutation:
		return c.Track.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompensationSettingsClient is a client for the CompensationSettings schema.
type CompensationSettingsClient struct {
	config
}

// NewCompensationSettingsClient returns a client for the CompensationSettings from the given config.
func NewCompensationSettingsClient(c config) *CompensationSettingsClient {
	return &CompensationSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compensationsettings.Hooks(f(g(h())))`.
func (c *CompensationSettingsClient) Use(hooks ...Hook) {
	c.hooks.CompensationSettings = append(c.hooks.CompensationSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compensationsettings.Intercept(f(g(h())))`.
func (c *CompensationSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompensationSettings = append(c.inters.CompensationSettings, interceptors...)
}

// Create returns a builder for creating a CompensationSettings entity.
func (c *CompensationSettingsClient) Create() *CompensationSettingsCreate {
	mutation := newCompensationSettingsMutation(c.config, OpCreate)
	return &CompensationSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompensationSettings entities.
func (c *CompensationSettingsClient) CreateBulk(builders ...*CompensationSettingsCreate) *CompensationSettingsCreateBulk {
	return &CompensationSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompensationSettingsClient) MapCreateBulk(slice any, setFunc func(*CompensationSettingsCreate, int)) *CompensationSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompensationSettingsCreateBulk{err: fmt.Errorf("calling to CompensationSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompensationSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompensationSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompensationSettings.
func (c *CompensationSettingsClient) Update() *CompensationSettingsUpdate {
	mutation := newCompensationSettingsMutation(c.config, OpUpdate)
	return &CompensationSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompensationSettingsClient) UpdateOne(_m *CompensationSettings) *CompensationSettingsUpdateOne {
	mutation := newCompensationSettingsMutation(c.config, OpUpdateOne, withCompensationSettings(_m))
	return &CompensationSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompensationSettingsClient) UpdateOneID(id int) *CompensationSettingsUpdateOne {
	mutation := newCompensationSettingsMutation(c.config, OpUpdateOne, withCompensationSettingsID(id))
	return &CompensationSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompensationSettings.
func (c *CompensationSettingsClient) Delete() *CompensationSettingsDelete {
	mutation := newCompensationSettingsMutation(c.config, OpDelete)
	return &CompensationSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompensationSettingsClient) DeleteOne(_m *CompensationSettings) *CompensationSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompensationSettingsClient) DeleteOneID(id int) *CompensationSettingsDeleteOne {
	builder := c.Delete().Where(compensationsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompensationSettingsDeleteOne{builder}
}

// Query returns a query builder for CompensationSettings.
func (c *CompensationSettingsClient) Query() *CompensationSettingsQuery {
	return &CompensationSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompensationSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a CompensationSettings entity by its id.
func (c *CompensationSettingsClient) Get(ctx context.Context, id int) (*CompensationSettings, error) {
	return c.Query().Where(compensationsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompensationSettingsClient) GetX(ctx context.Context, id int) *CompensationSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompensationSettingsClient) Hooks() []Hook {
	return c.hooks.CompensationSettings
}

// Interceptors returns the client interceptors.
func (c *CompensationSettingsClient) Interceptors() []Interceptor {
	return c.inters.CompensationSettings
}

func (c *CompensationSettingsClient) mutate(ctx context.Context, m *CompensationSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompensationSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompensationSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompensationSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompensationSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompensationSettings mutation op: %q", m.Op())
	}
}

// PayoutRecordClient is a client for the PayoutRecord schema.
type PayoutRecordClient struct {
	config
}

// NewPayoutRecordClient returns a client for the PayoutRecord from the given config.
func NewPayoutRecordClient(c config) *PayoutRecordClient {
	return &PayoutRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payoutrecord.Hooks(f(g(h())))`.
func (c *PayoutRecordClient) Use(hooks ...Hook) {
	c.hooks.PayoutRecord = append(c.hooks.PayoutRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payoutrecord.Intercept(f(g(h())))`.
func (c *PayoutRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayoutRecord = append(c.inters.PayoutRecord, interceptors...)
}

// Create returns a builder for creating a PayoutRecord entity.
func (c *PayoutRecordClient) Create() *PayoutRecordCreate {
	mutation := newPayoutRecordMutation(c.config, OpCreate)
	return &PayoutRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayoutRecord entities.
func (c *PayoutRecordClient) CreateBulk(builders ...*PayoutRecordCreate) *PayoutRecordCreateBulk {
	return &PayoutRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayoutRecordClient) MapCreateBulk(slice any, setFunc func(*PayoutRecordCreate, int)) *PayoutRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayoutRecordCreateBulk{err: fmt.Errorf("calling to PayoutRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayoutRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayoutRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayoutRecord.
func (c *PayoutRecordClient) Update() *PayoutRecordUpdate {
	mutation := newPayoutRecordMutation(c.config, OpUpdate)
	return &PayoutRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayoutRecordClient) UpdateOne(_m *PayoutRecord) *PayoutRecordUpdateOne {
	mutation := newPayoutRecordMutation(c.config, OpUpdateOne, withPayoutRecord(_m))
	return &PayoutRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayoutRecordClient) UpdateOneID(id int) *PayoutRecordUpdateOne {
	mutation := newPayoutRecordMutation(c.config, OpUpdateOne, withPayoutRecordID(id))
	return &PayoutRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayoutRecord.
func (c *PayoutRecordClient) Delete() *PayoutRecordDelete {
	mutation := newPayoutRecordMutation(c.config, OpDelete)
	return &PayoutRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayoutRecordClient) DeleteOne(_m *PayoutRecord) *PayoutRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayoutRecordClient) DeleteOneID(id int) *PayoutRecordDeleteOne {
	builder := c.Delete().Where(payoutrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayoutRecordDeleteOne{builder}
}

// Query returns a query builder for PayoutRecord.
func (c *PayoutRecordClient) Query() *PayoutRecordQuery {
	return &PayoutRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayoutRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PayoutRecord entity by its id.
func (c *PayoutRecordClient) Get(ctx context.Context, id int) (*PayoutRecord, error) {
	return c.Query().Where(payoutrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayoutRecordClient) GetX(ctx context.Context, id int) *PayoutRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProducer queries the producer edge of a PayoutRecord.
func (c *PayoutRecordClient) QueryProducer(_m *PayoutRecord) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payoutrecord.Table, payoutrecord.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, payoutrecord.ProducerTable, payoutrecord.ProducerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PayoutRecordClient) Hooks() []Hook {
	return c.hooks.PayoutRecord
}

// Interceptors returns the client interceptors.
func (c *PayoutRecordClient) Interceptors() []Interceptor {
	return c.inters.PayoutRecord
}

func (c *PayoutRecordClient) mutate(ctx context.Context, m *PayoutRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayoutRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayoutRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayoutRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayoutRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayoutRecord mutation op: %q", m.Op())
	}
}

// PayoutRunClient is a client for the PayoutRun schema.
type PayoutRunClient struct {
	config
}

// NewPayoutRunClient returns a client for the PayoutRun from the given config.
func NewPayoutRunClient(c config) *PayoutRunClient {
	return &PayoutRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payoutrun.Hooks(f(g(h())))`.
func (c *PayoutRunClient) Use(hooks ...Hook) {
	c.hooks.PayoutRun = append(c.hooks.PayoutRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payoutrun.Intercept(f(g(h())))`.
func (c *PayoutRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayoutRun = append(c.inters.PayoutRun, interceptors...)
}

// Create returns a builder for creating a PayoutRun entity.
func (c *PayoutRunClient) Create() *PayoutRunCreate {
	mutation := newPayoutRunMutation(c.config, OpCreate)
	return &PayoutRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayoutRun entities.
func (c *PayoutRunClient) CreateBulk(builders ...*PayoutRunCreate) *PayoutRunCreateBulk {
	return &PayoutRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayoutRunClient) MapCreateBulk(slice any, setFunc func(*PayoutRunCreate, int)) *PayoutRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayoutRunCreateBulk{err: fmt.Errorf("calling to PayoutRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayoutRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayoutRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayoutRun.
func (c *PayoutRunClient) Update() *PayoutRunUpdate {
	mutation := newPayoutRunMutation(c.config, OpUpdate)
	return &PayoutRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayoutRunClient) UpdateOne(_m *PayoutRun) *PayoutRunUpdateOne {
	mutation := newPayoutRunMutation(c.config, OpUpdateOne, withPayoutRun(_m))
	return &PayoutRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayoutRunClient) UpdateOneID(id int) *PayoutRunUpdateOne {
	mutation := newPayoutRunMutation(c.config, OpUpdateOne, withPayoutRunID(id))
	return &PayoutRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayoutRun.
func (c *PayoutRunClient) Delete() *PayoutRunDelete {
	mutation := newPayoutRunMutation(c.config, OpDelete)
	return &PayoutRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayoutRunClient) DeleteOne(_m *PayoutRun) *PayoutRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayoutRunClient) DeleteOneID(id int) *PayoutRunDeleteOne {
	builder := c.Delete().Where(payoutrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayoutRunDeleteOne{builder}
}

// Query returns a query builder for PayoutRun.
func (c *PayoutRunClient) Query() *PayoutRunQuery {
	return &PayoutRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayoutRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PayoutRun entity by its id.
func (c *PayoutRunClient) Get(ctx context.Context, id int) (*PayoutRun, error) {
	return c.Query().Where(payoutrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayoutRunClient) GetX(ctx context.Context, id int) *PayoutRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PayoutRunClient) Hooks() []Hook {
	return c.hooks.PayoutRun
}

// Interceptors returns the client interceptors.
func (c *PayoutRunClient) Interceptors() []Interceptor {
	return c.inters.PayoutRun
}

func (c *PayoutRunClient) mutate(ctx context.Context, m *PayoutRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayoutRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayoutRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayoutRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayoutRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayoutRun mutation op: %q", m.Op())
	}
}

// SaleClient is a client for the Sale schema.
type SaleClient struct {
	config
}

// NewSaleClient returns a client for the Sale from the given config.
func NewSaleClient(c config) *SaleClient {
	return &SaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sale.Hooks(f(g(h())))`.
func (c *SaleClient) Use(hooks ...Hook) {
	c.hooks.Sale = append(c.hooks.Sale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sale.Intercept(f(g(h())))`.
func (c *SaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sale = append(c.inters.Sale, interceptors...)
}

// Create returns a builder for creating a Sale entity.
func (c *SaleClient) Create() *SaleCreate {
	mutation := newSaleMutation(c.config, OpCreate)
	return &SaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sale entities.
func (c *SaleClient) CreateBulk(builders ...*SaleCreate) *SaleCreateBulk {
	return &SaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SaleClient) MapCreateBulk(slice any, setFunc func(*SaleCreate, int)) *SaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SaleCreateBulk{err: fmt.Errorf("calling to SaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sale.
func (c *SaleClient) Update() *SaleUpdate {
	mutation := newSaleMutation(c.config, OpUpdate)
	return &SaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SaleClient) UpdateOne(_m *Sale) *SaleUpdateOne {
	mutation := newSaleMutation(c.config, OpUpdateOne, withSale(_m))
	return &SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SaleClient) UpdateOneID(id int) *SaleUpdateOne {
	mutation := newSaleMutation(c.config, OpUpdateOne, withSaleID(id))
	return &SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sale.
func (c *SaleClient) Delete() *SaleDelete {
	mutation := newSaleMutation(c.config, OpDelete)
	return &SaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SaleClient) DeleteOne(_m *Sale) *SaleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SaleClient) DeleteOneID(id int) *SaleDeleteOne {
	builder := c.Delete().Where(sale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SaleDeleteOne{builder}
}

// Query returns a query builder for Sale.
func (c *SaleClient) Query() *SaleQuery {
	return &SaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSale},
		inters: c.Interceptors(),
	}
}

// Get returns a Sale entity by its id.
func (c *SaleClient) Get(ctx context.Context, id int) (*Sale, error) {
	return c.Query().Where(sale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SaleClient) GetX(ctx context.Context, id int) *Sale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTrack queries the track edge of a Sale.
func (c *SaleClient) QueryTrack(_m *Sale) *TrackQuery {
	query := (&TrackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sale.Table, sale.FieldID, id),
			sqlgraph.To(track.Table, track.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sale.TrackTable, sale.TrackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyer queries the buyer edge of a Sale.
func (c *SaleClient) QueryBuyer(_m *Sale) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sale.Table, sale.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sale.BuyerTable, sale.BuyerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SaleClient) Hooks() []Hook {
	return c.hooks.Sale
}

// Interceptors returns the client interceptors.
func (c *SaleClient) Interceptors() []Interceptor {
	return c.inters.Sale
}

func (c *SaleClient) mutate(ctx context.Context, m *SaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sale mutation op: %q", m.Op())
	}
}

// SyncProposalClient is a client for the SyncProposal schema.
type SyncProposalClient struct {
	config
}

// NewSyncProposalClient returns a client for the SyncProposal from the given config.
func NewSyncProposalClient(c config) *SyncProposalClient {
	return &SyncProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncproposal.Hooks(f(g(h())))`.
func (c *SyncProposalClient) Use(hooks ...Hook) {
	c.hooks.SyncProposal = append(c.hooks.SyncProposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncproposal.Intercept(f(g(h())))`.
func (c *SyncProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncProposal = append(c.inters.SyncProposal, interceptors...)
}

// Create returns a builder for creating a SyncProposal entity.
func (c *SyncProposalClient) Create() *SyncProposalCreate {
	mutation := newSyncProposalMutation(c.config, OpCreate)
	return &SyncProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncProposal entities.
func (c *SyncProposalClient) CreateBulk(builders ...*SyncProposalCreate) *SyncProposalCreateBulk {
	return &SyncProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncProposalClient) MapCreateBulk(slice any, setFunc func(*SyncProposalCreate, int)) *SyncProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncProposalCreateBulk{err: fmt.Errorf("calling to SyncProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncProposal.
func (c *SyncProposalClient) Update() *SyncProposalUpdate {
	mutation := newSyncProposalMutation(c.config, OpUpdate)
	return &SyncProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncProposalClient) UpdateOne(_m *SyncProposal) *SyncProposalUpdateOne {
	mutation := newSyncProposalMutation(c.config, OpUpdateOne, withSyncProposal(_m))
	return &SyncProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncProposalClient) UpdateOneID(id int) *SyncProposalUpdateOne {
	mutation := newSyncProposalMutation(c.config, OpUpdateOne, withSyncProposalID(id))
	return &SyncProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncProposal.
func (c *SyncProposalClient) Delete() *SyncProposalDelete {
	mutation := newSyncProposalMutation(c.config, OpDelete)
	return &SyncProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncProposalClient) DeleteOne(_m *SyncProposal) *SyncProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncProposalClient) DeleteOneID(id int) *SyncProposalDeleteOne {
	builder := c.Delete().Where(syncproposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncProposalDeleteOne{builder}
}

// Query returns a query builder for SyncProposal.
func (c *SyncProposalClient) Query() *SyncProposalQuery {
	return &SyncProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncProposal entity by its id.
func (c *SyncProposalClient) Get(ctx context.Context, id int) (*SyncProposal, error) {
	return c.Query().Where(syncproposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncProposalClient) GetX(ctx context.Context, id int) *SyncProposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncProposalClient) Hooks() []Hook {
	return c.hooks.SyncProposal
}

// Interceptors returns the client interceptors.
func (c *SyncProposalClient) Interceptors() []Interceptor {
	return c.inters.SyncProposal
}

func (c *SyncProposalClient) mutate(ctx context.Context, m *SyncProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncProposal mutation op: %q", m.Op())
	}
}

// TrackClient is a client for the Track schema.
type TrackClient struct {
	config
}

// NewTrackClient returns a client for the Track from the given config.
func NewTrackClient(c config) *TrackClient {
	return &TrackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `track.Hooks(f(g(h())))`.
func (c *TrackClient) Use(hooks ...Hook) {
	c.hooks.Track = append(c.hooks.Track, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `track.Intercept(f(g(h())))`.
func (c *TrackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Track = append(c.inters.Track, interceptors...)
}

// Create returns a builder for creating a Track entity.
func (c *TrackClient) Create() *TrackCreate {
	mutation := newTrackMutation(c.config, OpCreate)
	return &TrackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Track entities.
func (c *TrackClient) CreateBulk(builders ...*TrackCreate) *TrackCreateBulk {
	return &TrackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackClient) MapCreateBulk(slice any, setFunc func(*TrackCreate, int)) *TrackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackCreateBulk{err: fmt.Errorf("calling to TrackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Track.
func (c *TrackClient) Update() *TrackUpdate {
	mutation := newTrackMutation(c.config, OpUpdate)
	return &TrackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackClient) UpdateOne(_m *Track) *TrackUpdateOne {
	mutation := newTrackMutation(c.config, OpUpdateOne, withTrack(_m))
	return &TrackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackClient) UpdateOneID(id int) *TrackUpdateOne {
	mutation := newTrackMutation(c.config, OpUpdateOne, withTrackID(id))
	return &TrackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Track.
func (c *TrackClient) Delete() *TrackDelete {
	mutation := newTrackMutation(c.config, OpDelete)
	return &TrackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackClient) DeleteOne(_m *Track) *TrackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackClient) DeleteOneID(id int) *TrackDeleteOne {
	builder := c.Delete().Where(track.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackDeleteOne{builder}
}

// Query returns a query builder for Track.
func (c *TrackClient) Query() *TrackQuery {
	return &TrackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrack},
		inters: c.Interceptors(),
	}
}

// Get returns a Track entity by its id.
func (c *TrackClient) Get(ctx context.Context, id int) (*Track, error) {
	return c.Query().Where(track.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackClient) GetX(ctx context.Context, id int) *Track {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProducer queries the producer edge of a Track.
func (c *TrackClient) QueryProducer(_m *Track) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(track.Table, track.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, track.ProducerTable, track.ProducerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySales queries the sales edge of a Track.
func (c *TrackClient) QuerySales(_m *Track) *SaleQuery {
	query := (&SaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(track.Table, track.FieldID, id),
			sqlgraph.To(sale.Table, sale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, track.SalesTable, track.SalesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackClient) Hooks() []Hook {
	return c.hooks.Track
}

// Interceptors returns the client interceptors.
func (c *TrackClient) Interceptors() []Interceptor {
	return c.inters.Track
}

func (c *TrackClient) mutate(ctx context.Context, m *TrackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Track mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracks queries the tracks edge of a User.
func (c *UserClient) QueryTracks(_m *User) *TrackQuery {
	query := (&TrackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(track.Table, track.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TracksTable, user.TracksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayouts queries the payouts edge of a User.
func (c *UserClient) QueryPayouts(_m *User) *PayoutRecordQuery {
	query := (&PayoutRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(payoutrecord.Table, payoutrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PayoutsTable, user.PayoutsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPurchases queries the purchases edge of a User.
func (c *UserClient) QueryPurchases(_m *User) *SaleQuery {
	query := (&SaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(sale.Table, sale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PurchasesTable, user.PurchasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CompensationSettings, PayoutRecord, PayoutRun, Sale, SyncProposal, Track,
		User []ent.Hook
	}
	inters struct {
		CompensationSettings, PayoutRecord, PayoutRun, Sale, SyncProposal, Track,
		User []ent.Interceptor
	}
)
