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
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// SupplierTemplateQuery is the builder for querying SupplierTemplate entities.
type SupplierTemplateQuery struct {
	config
	ctx          *QueryContext
	order        []suppliertemplate.OrderOption
	inters       []Interceptor
	predicates   []predicate.SupplierTemplate
	withSupplier *SupplierQuery
	withRuns     *ProcessingRunQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SupplierTemplateQuery builder.
func (_q *SupplierTemplateQuery) Where(ps ...predicate.SupplierTemplate) *SupplierTemplateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SupplierTemplateQuery) Limit(limit int) *SupplierTemplateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SupplierTemplateQuery) Offset(offset int) *SupplierTemplateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SupplierTemplateQuery) Unique(unique bool) *SupplierTemplateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SupplierTemplateQuery) Order(o ...suppliertemplate.OrderOption) *SupplierTemplateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySupplier chains the current query on the "supplier" edge.
func (_q *SupplierTemplateQuery) QuerySupplier() *SupplierQuery {
	query := (&SupplierClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(suppliertemplate.Table, suppliertemplate.FieldID, selector),
			sqlgraph.To(supplier.Table, supplier.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suppliertemplate.SupplierTable, suppliertemplate.SupplierColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRuns chains the current query on the "runs" edge.
func (_q *SupplierTemplateQuery) QueryRuns() *ProcessingRunQuery {
	query := (&ProcessingRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(suppliertemplate.Table, suppliertemplate.FieldID, selector),
			sqlgraph.To(processingrun.Table, processingrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, suppliertemplate.RunsTable, suppliertemplate.RunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SupplierTemplate entity from the query.
// Returns a *NotFoundError when no SupplierTemplate was found.
func (_q *SupplierTemplateQuery) First(ctx context.Context) (*SupplierTemplate, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{suppliertemplate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SupplierTemplateQuery) FirstX(ctx context.Context) *SupplierTemplate {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SupplierTemplate ID from the query.
// Returns a *NotFoundError when no SupplierTemplate ID was found.
func (_q *SupplierTemplateQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{suppliertemplate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SupplierTemplateQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SupplierTemplate entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SupplierTemplate entity is found.
// Returns a *NotFoundError when no SupplierTemplate entities are found.
func (_q *SupplierTemplateQuery) Only(ctx context.Context) (*SupplierTemplate, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{suppliertemplate.Label}
	default:
		return nil, &NotSingularError{suppliertemplate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SupplierTemplateQuery) OnlyX(ctx context.Context) *SupplierTemplate {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SupplierTemplate ID in the query.
// Returns a *NotSingularError when more than one SupplierTemplate ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SupplierTemplateQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{suppliertemplate.Label}
	default:
		err = &NotSingularError{suppliertemplate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SupplierTemplateQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SupplierTemplates.
func (_q *SupplierTemplateQuery) All(ctx context.Context) ([]*SupplierTemplate, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SupplierTemplate, *SupplierTemplateQuery]()
	return withInterceptors[[]*SupplierTemplate](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SupplierTemplateQuery) AllX(ctx context.Context) []*SupplierTemplate {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SupplierTemplate IDs.
func (_q *SupplierTemplateQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(suppliertemplate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SupplierTemplateQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SupplierTemplateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SupplierTemplateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SupplierTemplateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SupplierTemplateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SupplierTemplateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SupplierTemplateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SupplierTemplateQuery) Clone() *SupplierTemplateQuery {
	if _q == nil {
		return nil
	}
	return &SupplierTemplateQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]suppliertemplate.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.SupplierTemplate{}, _q.predicates...),
		withSupplier: _q.withSupplier.Clone(),
		withRuns:     _q.withRuns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSupplier tells the query-builder to eager-load the nodes that are connected to
// the "supplier" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SupplierTemplateQuery) WithSupplier(opts ...func(*SupplierQuery)) *SupplierTemplateQuery {
	query := (&SupplierClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSupplier = query
	return _q
}

// WithRuns tells the query-builder to eager-load the nodes that are connected to
// the "runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SupplierTemplateQuery) WithRuns(opts ...func(*ProcessingRunQuery)) *SupplierTemplateQuery {
	query := (&ProcessingRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRuns = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SupplierID uuid.UUID `json:"supplier_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SupplierTemplate.Query().
//		GroupBy(suppliertemplate.FieldSupplierID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SupplierTemplateQuery) GroupBy(field string, fields ...string) *SupplierTemplateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SupplierTemplateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = suppliertemplate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SupplierID uuid.UUID `json:"supplier_id,omitempty"`
//	}
//
//	client.SupplierTemplate.Query().
//		Select(suppliertemplate.FieldSupplierID).
//		Scan(ctx, &v)
func (_q *SupplierTemplateQuery) Select(fields ...string) *SupplierTemplateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SupplierTemplateSelect{SupplierTemplateQuery: _q}
	sbuild.label = suppliertemplate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SupplierTemplateSelect configured with the given aggregations.
func (_q *SupplierTemplateQuery) Aggregate(fns ...AggregateFunc) *SupplierTemplateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SupplierTemplateQuery) prepareQuery(ctx context.Context) error {
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
		if !suppliertemplate.ValidColumn(f) {
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

func (_q *SupplierTemplateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SupplierTemplate, error) {
	var (
		nodes       = []*SupplierTemplate{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSupplier != nil,
			_q.withRuns != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SupplierTemplate).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SupplierTemplate{config: _q.config}
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
	if query := _q.withSupplier; query != nil {
		if err := _q.loadSupplier(ctx, query, nodes, nil,
			func(n *SupplierTemplate, e *Supplier) { n.Edges.Supplier = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRuns; query != nil {
		if err := _q.loadRuns(ctx, query, nodes,
			func(n *SupplierTemplate) { n.Edges.Runs = []*ProcessingRun{} },
			func(n *SupplierTemplate, e *ProcessingRun) { n.Edges.Runs = append(n.Edges.Runs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SupplierTemplateQuery) loadSupplier(ctx context.Context, query *SupplierQuery, nodes []*SupplierTemplate, init func(*SupplierTemplate), assign func(*SupplierTemplate, *Supplier)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SupplierTemplate)
	for i := range nodes {
		fk := nodes[i].SupplierID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(supplier.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "supplier_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SupplierTemplateQuery) loadRuns(ctx context.Context, query *ProcessingRunQuery, nodes []*SupplierTemplate, init func(*SupplierTemplate), assign func(*SupplierTemplate, *ProcessingRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*SupplierTemplate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processingrun.FieldTemplateID)
	}
	query.Where(predicate.ProcessingRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(suppliertemplate.RunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TemplateID
		if fk == nil {
			return fmt.Errorf(`foreign-key "template_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "template_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SupplierTemplateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SupplierTemplateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(suppliertemplate.Table, suppliertemplate.Columns, sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suppliertemplate.FieldID)
		for i := range fields {
			if fields[i] != suppliertemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSupplier != nil {
			_spec.Node.AddColumnOnce(suppliertemplate.FieldSupplierID)
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

func (_q *SupplierTemplateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(suppliertemplate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = suppliertemplate.Columns
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

// SupplierTemplateGroupBy is the group-by builder for SupplierTemplate entities.
type SupplierTemplateGroupBy struct {
	selector
	build *SupplierTemplateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SupplierTemplateGroupBy) Aggregate(fns ...AggregateFunc) *SupplierTemplateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SupplierTemplateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SupplierTemplateQuery, *SupplierTemplateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SupplierTemplateGroupBy) sqlScan(ctx context.Context, root *SupplierTemplateQuery, v any) error {
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

// SupplierTemplateSelect is the builder for selecting fields of SupplierTemplate entities.
type SupplierTemplateSelect struct {
	*SupplierTemplateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SupplierTemplateSelect) Aggregate(fns ...AggregateFunc) *SupplierTemplateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SupplierTemplateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SupplierTemplateQuery, *SupplierTemplateSelect](ctx, _s.SupplierTemplateQuery, _s, _s.inters, v)
}

func (_s *SupplierTemplateSelect) sqlScan(ctx context.Context, root *SupplierTemplateQuery, v any) error {
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
