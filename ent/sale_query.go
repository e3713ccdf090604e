// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/predicate"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// SaleQuery is the builder for querying Sale entities.
type SaleQuery struct {
	config
	ctx        *QueryContext
	order      []sale.OrderOption
	inters     []Interceptor
	predicates []predicate.Sale
	withTrack  *TrackQuery
	withBuyer  *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SaleQuery builder.
func (_q *SaleQuery) Where(ps ...predicate.Sale) *SaleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SaleQuery) Limit(limit int) *SaleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SaleQuery) Offset(offset int) *SaleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SaleQuery) Unique(unique bool) *SaleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SaleQuery) Order(o ...sale.OrderOption) *SaleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTrack chains the current query on the "track" edge.
func (_q *SaleQuery) QueryTrack() *TrackQuery {
	query := (&TrackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sale.Table, sale.FieldID, selector),
			sqlgraph.To(track.Table, track.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sale.TrackTable, sale.TrackColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBuyer chains the current query on the "buyer" edge.
func (_q *SaleQuery) QueryBuyer() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sale.Table, sale.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sale.BuyerTable, sale.BuyerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Sale entity from the query.
// Returns a *NotFoundError when no Sale was found.
func (_q *SaleQuery) First(ctx context.Context) (*Sale, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sale.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SaleQuery) FirstX(ctx context.Context) *Sale {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Sale ID from the query.
// Returns a *NotFoundError when no Sale ID was found.
func (_q *SaleQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sale.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SaleQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Sale entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Sale entity is found.
// Returns a *NotFoundError when no Sale entities are found.
func (_q *SaleQuery) Only(ctx context.Context) (*Sale, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sale.Label}
	default:
		return nil, &NotSingularError{sale.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SaleQuery) OnlyX(ctx context.Context) *Sale {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Sale ID in the query.
// Returns a *NotSingularError when more than one Sale ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SaleQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sale.Label}
	default:
		err = &NotSingularError{sale.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SaleQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Sales.
func (_q *SaleQuery) All(ctx context.Context) ([]*Sale, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Sale, *SaleQuery]()
	return withInterceptors[[]*Sale](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SaleQuery) AllX(ctx context.Context) []*Sale {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Sale IDs.
func (_q *SaleQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sale.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SaleQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SaleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SaleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SaleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SaleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SaleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SaleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SaleQuery) Clone() *SaleQuery {
	if _q == nil {
		return nil
	}
	return &SaleQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]sale.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Sale{}, _q.predicates...),
		withTrack:  _q.withTrack.Clone(),
		withBuyer:  _q.withBuyer.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTrack tells the query-builder to eager-load the nodes that are connected to
// the "track" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SaleQuery) WithTrack(opts ...func(*TrackQuery)) *SaleQuery {
	query := (&TrackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrack = query
	return _q
}

// WithBuyer tells the query-builder to eager-load the nodes that are connected to
// the "buyer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SaleQuery) WithBuyer(opts ...func(*UserQuery)) *SaleQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBuyer = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TrackID int `json:"track_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Sale.Query().
//		GroupBy(sale.FieldTrackID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SaleQuery) GroupBy(field string, fields ...string) *SaleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SaleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sale.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TrackID int `json:"track_id,omitempty"`
//	}
//
//	client.Sale.Query().
//		Select(sale.FieldTrackID).
//		Scan(ctx, &v)
func (_q *SaleQuery) Select(fields ...string) *SaleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SaleSelect{SaleQuery: _q}
	sbuild.label = sale.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SaleSelect configured with the given aggregations.
func (_q *SaleQuery) Aggregate(fns ...AggregateFunc) *SaleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SaleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !sale.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SaleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Sale, error) {
	var (
		nodes       = []*Sale{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withTrack != nil,
			_q.withBuyer != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Sale).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Sale{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTrack; query != nil {
		if err := _q.loadTrack(ctx, query, nodes, nil,
			func(n *Sale, e *Track) { n.Edges.Track = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBuyer; query != nil {
		if err := _q.loadBuyer(ctx, query, nodes, nil,
			func(n *Sale, e *User) { n.Edges.Buyer = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SaleQuery) loadTrack(ctx context.Context, query *TrackQuery, nodes []*Sale, init func(*Sale), assign func(*Sale, *Track)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Sale)
	for i := range nodes {
		fk := nodes[i].TrackID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(track.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "track_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SaleQuery) loadBuyer(ctx context.Context, query *UserQuery, nodes []*Sale, init func(*Sale), assign func(*Sale, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Sale)
	for i := range nodes {
		fk := nodes[i].BuyerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "buyer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SaleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SaleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sale.Table, sale.Columns, sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sale.FieldID)
		for i := range fields {
			if fields[i] != sale.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTrack != nil {
			_spec.Node.AddColumnOnce(sale.FieldTrackID)
		}
		if _q.withBuyer != nil {
			_spec.Node.AddColumnOnce(sale.FieldBuyerID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SaleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sale.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sale.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SaleGroupBy is the group-by builder for Sale entities.
type SaleGroupBy struct {
	selector
	build *SaleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SaleGroupBy) Aggregate(fns ...AggregateFunc) *SaleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SaleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SaleQuery, *SaleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SaleGroupBy) sqlScan(ctx context.Context, root *SaleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SaleSelect is the builder for selecting fields of Sale entities.
type SaleSelect struct {
	*SaleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SaleSelect) Aggregate(fns ...AggregateFunc) *SaleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SaleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SaleQuery, *SaleSelect](ctx, _s.SaleQuery, _s, _s.inters, v)
}

func (_s *SaleSelect) sqlScan(ctx context.Context, root *SaleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
