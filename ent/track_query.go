// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// TrackQuery is the builder for querying Track entities.
type TrackQuery struct {
	config
	ctx          *QueryContext
	order        []track.OrderOption
	inters       []Interceptor
	predicates   []predicate.Track
	withProducer *UserQuery
	withSales    *SaleQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TrackQuery builder.
func (_q *TrackQuery) Where(ps ...predicate.Track) *TrackQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TrackQuery) Limit(limit int) *TrackQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TrackQuery) Offset(offset int) *TrackQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TrackQuery) Unique(unique bool) *TrackQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TrackQuery) Order(o ...track.OrderOption) *TrackQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProducer chains the current query on the "producer" edge.
func (_q *TrackQuery) QueryProducer() *UserQuery {
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
			sqlgraph.From(track.Table, track.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, track.ProducerTable, track.ProducerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySales chains the current query on the "sales" edge.
func (_q *TrackQuery) QuerySales() *SaleQuery {
	query := (&SaleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(track.Table, track.FieldID, selector),
			sqlgraph.To(sale.Table, sale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, track.SalesTable, track.SalesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Track entity from the query.
// Returns a *NotFoundError when no Track was found.
func (_q *TrackQuery) First(ctx context.Context) (*Track, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{track.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TrackQuery) FirstX(ctx context.Context) *Track {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Track ID from the query.
// Returns a *NotFoundError when no Track ID was found.
func (_q *TrackQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{track.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TrackQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Track entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Track entity is found.
// Returns a *NotFoundError when no Track entities are found.
func (_q *TrackQuery) Only(ctx context.Context) (*Track, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{track.Label}
	default:
		return nil, &NotSingularError{track.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TrackQuery) OnlyX(ctx context.Context) *Track {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Track ID in the query.
// Returns a *NotSingularError when more than one Track ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TrackQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{track.Label}
	default:
		err = &NotSingularError{track.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TrackQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Tracks.
func (_q *TrackQuery) All(ctx context.Context) ([]*Track, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Track, *TrackQuery]()
	return withInterceptors[[]*Track](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TrackQuery) AllX(ctx context.Context) []*Track {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Track IDs.
func (_q *TrackQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(track.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TrackQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TrackQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TrackQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TrackQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TrackQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TrackQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TrackQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TrackQuery) Clone() *TrackQuery {
	if _q == nil {
		return nil
	}
	return &TrackQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]track.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Track{}, _q.predicates...),
		withProducer: _q.withProducer.Clone(),
		withSales:    _q.withSales.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProducer tells the query-builder to eager-load the nodes that are connected to
// the "producer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TrackQuery) WithProducer(opts ...func(*UserQuery)) *TrackQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProducer = query
	return _q
}

// WithSales tells the query-builder to eager-load the nodes that are connected to
// the "sales" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TrackQuery) WithSales(opts ...func(*SaleQuery)) *TrackQuery {
	query := (&SaleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSales = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProducerID int `json:"producer_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Track.Query().
//		GroupBy(track.FieldProducerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TrackQuery) GroupBy(field string, fields ...string) *TrackGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TrackGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = track.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProducerID int `json:"producer_id,omitempty"`
//	}
//
//	client.Track.Query().
//		Select(track.FieldProducerID).
//		Scan(ctx, &v)
func (_q *TrackQuery) Select(fields ...string) *TrackSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TrackSelect{TrackQuery: _q}
	sbuild.label = track.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TrackSelect configured with the given aggregations.
func (_q *TrackQuery) Aggregate(fns ...AggregateFunc) *TrackSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TrackQuery) prepareQuery(ctx context.Context) error {
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
		if !track.ValidColumn(f) {
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

func (_q *TrackQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Track, error) {
	var (
		nodes       = []*Track{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withProducer != nil,
			_q.withSales != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Track).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Track{config: _q.config}
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
	if query := _q.withProducer; query != nil {
		if err := _q.loadProducer(ctx, query, nodes, nil,
			func(n *Track, e *User) { n.Edges.Producer = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSales; query != nil {
		if err := _q.loadSales(ctx, query, nodes,
			func(n *Track) { n.Edges.Sales = []*Sale{} },
			func(n *Track, e *Sale) { n.Edges.Sales = append(n.Edges.Sales, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TrackQuery) loadProducer(ctx context.Context, query *UserQuery, nodes []*Track, init func(*Track), assign func(*Track, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Track)
	for i := range nodes {
		fk := nodes[i].ProducerID
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
			return fmt.Errorf(`unexpected foreign-key "producer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TrackQuery) loadSales(ctx context.Context, query *SaleQuery, nodes []*Track, init func(*Track), assign func(*Track, *Sale)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Track)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sale.FieldTrackID)
	}
	query.Where(predicate.Sale(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(track.SalesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TrackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "track_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TrackQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TrackQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(track.Table, track.Columns, sqlgraph.NewFieldSpec(track.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, track.FieldID)
		for i := range fields {
			if fields[i] != track.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProducer != nil {
			_spec.Node.AddColumnOnce(track.FieldProducerID)
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

func (_q *TrackQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(track.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = track.Columns
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

// TrackGroupBy is the group-by builder for Track entities.
type TrackGroupBy struct {
	selector
	build *TrackQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TrackGroupBy) Aggregate(fns ...AggregateFunc) *TrackGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TrackGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrackQuery, *TrackGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TrackGroupBy) sqlScan(ctx context.Context, root *TrackQuery, v any) error {
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

// TrackSelect is the builder for selecting fields of Track entities.
type TrackSelect struct {
	*TrackQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TrackSelect) Aggregate(fns ...AggregateFunc) *TrackSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TrackSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrackQuery, *TrackSelect](ctx, _s.TrackQuery, _s, _s.inters, v)
}

func (_s *TrackSelect) sqlScan(ctx context.Context, root *TrackQuery, v any) error {
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
