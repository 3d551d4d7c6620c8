// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
)

// InterviewQuery is the builder for querying Interview entities.
type InterviewQuery struct {
	config
	ctx                   *QueryContext
	order                 []interview.OrderOption
	inters                []Interceptor
	predicates            []predicate.Interview
	withCandidate         *CandidateQuery
	withJob               *JobQuery
	withSchedules         *ScheduleQuery
	withSession           *SessionQuery
	withEvaluationResults *EvaluationResultQuery
	modifiers             []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InterviewQuery builder.
func (_q *InterviewQuery) Where(ps ...predicate.Interview) *InterviewQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InterviewQuery) Limit(limit int) *InterviewQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InterviewQuery) Offset(offset int) *InterviewQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InterviewQuery) Unique(unique bool) *InterviewQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InterviewQuery) Order(o ...interview.OrderOption) *InterviewQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCandidate chains the current query on the "candidate" edge.
func (_q *InterviewQuery) QueryCandidate() *CandidateQuery {
	query := (&CandidateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interview.Table, interview.FieldID, selector),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interview.CandidateTable, interview.CandidateColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJob chains the current query on the "job" edge.
func (_q *InterviewQuery) QueryJob() *JobQuery {
	query := (&JobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interview.Table, interview.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interview.JobTable, interview.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySchedules chains the current query on the "schedules" edge.
func (_q *InterviewQuery) QuerySchedules() *ScheduleQuery {
	query := (&ScheduleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interview.Table, interview.FieldID, selector),
			sqlgraph.To(schedule.Table, schedule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interview.SchedulesTable, interview.SchedulesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySession chains the current query on the "session" edge.
func (_q *InterviewQuery) QuerySession() *SessionQuery {
	query := (&SessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interview.Table, interview.FieldID, selector),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, interview.SessionTable, interview.SessionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvaluationResults chains the current query on the "evaluation_results" edge.
func (_q *InterviewQuery) QueryEvaluationResults() *EvaluationResultQuery {
	query := (&EvaluationResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interview.Table, interview.FieldID, selector),
			sqlgraph.To(evaluationresult.Table, evaluationresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interview.EvaluationResultsTable, interview.EvaluationResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Interview entity from the query.
// Returns a *NotFoundError when no Interview was found.
func (_q *InterviewQuery) First(ctx context.Context) (*Interview, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{interview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InterviewQuery) FirstX(ctx context.Context) *Interview {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Interview ID from the query.
// Returns a *NotFoundError when no Interview ID was found.
func (_q *InterviewQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{interview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InterviewQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Interview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Interview entity is found.
// Returns a *NotFoundError when no Interview entities are found.
func (_q *InterviewQuery) Only(ctx context.Context) (*Interview, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{interview.Label}
	default:
		return nil, &NotSingularError{interview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InterviewQuery) OnlyX(ctx context.Context) *Interview {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Interview ID in the query.
// Returns a *NotSingularError when more than one Interview ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InterviewQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{interview.Label}
	default:
		err = &NotSingularError{interview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InterviewQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Interviews.
func (_q *InterviewQuery) All(ctx context.Context) ([]*Interview, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Interview, *InterviewQuery]()
	return withInterceptors[[]*Interview](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InterviewQuery) AllX(ctx context.Context) []*Interview {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Interview IDs.
func (_q *InterviewQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(interview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InterviewQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InterviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InterviewQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InterviewQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InterviewQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InterviewQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InterviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InterviewQuery) Clone() *InterviewQuery {
	if _q == nil {
		return nil
	}
	return &InterviewQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]interview.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Interview{}, _q.predicates...),
		withCandidate:         _q.withCandidate.Clone(),
		withJob:               _q.withJob.Clone(),
		withSchedules:         _q.withSchedules.Clone(),
		withSession:           _q.withSession.Clone(),
		withEvaluationResults: _q.withEvaluationResults.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCandidate tells the query-builder to eager-load the nodes that are connected to
// the "candidate" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewQuery) WithCandidate(opts ...func(*CandidateQuery)) *InterviewQuery {
	query := (&CandidateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCandidate = query
	return _q
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewQuery) WithJob(opts ...func(*JobQuery)) *InterviewQuery {
	query := (&JobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJob = query
	return _q
}

// WithSchedules tells the query-builder to eager-load the nodes that are connected to
// the "schedules" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewQuery) WithSchedules(opts ...func(*ScheduleQuery)) *InterviewQuery {
	query := (&ScheduleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSchedules = query
	return _q
}

// WithSession tells the query-builder to eager-load the nodes that are connected to
// the "session" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewQuery) WithSession(opts ...func(*SessionQuery)) *InterviewQuery {
	query := (&SessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSession = query
	return _q
}

// WithEvaluationResults tells the query-builder to eager-load the nodes that are connected to
// the "evaluation_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewQuery) WithEvaluationResults(opts ...func(*EvaluationResultQuery)) *InterviewQuery {
	query := (&EvaluationResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvaluationResults = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CandidateID string `json:"candidate_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Interview.Query().
//		GroupBy(interview.FieldCandidateID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InterviewQuery) GroupBy(field string, fields ...string) *InterviewGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InterviewGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = interview.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CandidateID string `json:"candidate_id,omitempty"`
//	}
//
//	client.Interview.Query().
//		Select(interview.FieldCandidateID).
//		Scan(ctx, &v)
func (_q *InterviewQuery) Select(fields ...string) *InterviewSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InterviewSelect{InterviewQuery: _q}
	sbuild.label = interview.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InterviewSelect configured with the given aggregations.
func (_q *InterviewQuery) Aggregate(fns ...AggregateFunc) *InterviewSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InterviewQuery) prepareQuery(ctx context.Context) error {
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
		if !interview.ValidColumn(f) {
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

func (_q *InterviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Interview, error) {
	var (
		nodes       = []*Interview{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withCandidate != nil,
			_q.withJob != nil,
			_q.withSchedules != nil,
			_q.withSession != nil,
			_q.withEvaluationResults != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Interview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Interview{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withCandidate; query != nil {
		if err := _q.loadCandidate(ctx, query, nodes, nil,
			func(n *Interview, e *Candidate) { n.Edges.Candidate = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withJob; query != nil {
		if err := _q.loadJob(ctx, query, nodes, nil,
			func(n *Interview, e *Job) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSchedules; query != nil {
		if err := _q.loadSchedules(ctx, query, nodes,
			func(n *Interview) { n.Edges.Schedules = []*Schedule{} },
			func(n *Interview, e *Schedule) { n.Edges.Schedules = append(n.Edges.Schedules, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSession; query != nil {
		if err := _q.loadSession(ctx, query, nodes, nil,
			func(n *Interview, e *Session) { n.Edges.Session = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvaluationResults; query != nil {
		if err := _q.loadEvaluationResults(ctx, query, nodes,
			func(n *Interview) { n.Edges.EvaluationResults = []*EvaluationResult{} },
			func(n *Interview, e *EvaluationResult) {
				n.Edges.EvaluationResults = append(n.Edges.EvaluationResults, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InterviewQuery) loadCandidate(ctx context.Context, query *CandidateQuery, nodes []*Interview, init func(*Interview), assign func(*Interview, *Candidate)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Interview)
	for i := range nodes {
		fk := nodes[i].CandidateID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(candidate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "candidate_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InterviewQuery) loadJob(ctx context.Context, query *JobQuery, nodes []*Interview, init func(*Interview), assign func(*Interview, *Job)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Interview)
	for i := range nodes {
		fk := nodes[i].JobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(job.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InterviewQuery) loadSchedules(ctx context.Context, query *ScheduleQuery, nodes []*Interview, init func(*Interview), assign func(*Interview, *Schedule)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interview)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(schedule.FieldInterviewID)
	}
	query.Where(predicate.Schedule(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interview.SchedulesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InterviewID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interview_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InterviewQuery) loadSession(ctx context.Context, query *SessionQuery, nodes []*Interview, init func(*Interview), assign func(*Interview, *Session)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interview)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(session.FieldInterviewID)
	}
	query.Where(predicate.Session(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interview.SessionColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InterviewID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interview_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InterviewQuery) loadEvaluationResults(ctx context.Context, query *EvaluationResultQuery, nodes []*Interview, init func(*Interview), assign func(*Interview, *EvaluationResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interview)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evaluationresult.FieldInterviewID)
	}
	query.Where(predicate.EvaluationResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interview.EvaluationResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InterviewID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interview_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InterviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InterviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interview.FieldID)
		for i := range fields {
			if fields[i] != interview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCandidate != nil {
			_spec.Node.AddColumnOnce(interview.FieldCandidateID)
		}
		if _q.withJob != nil {
			_spec.Node.AddColumnOnce(interview.FieldJobID)
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

func (_q *InterviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(interview.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = interview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *InterviewQuery) ForUpdate(opts ...sql.LockOption) *InterviewQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *InterviewQuery) ForShare(opts ...sql.LockOption) *InterviewQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// InterviewGroupBy is the group-by builder for Interview entities.
type InterviewGroupBy struct {
	selector
	build *InterviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InterviewGroupBy) Aggregate(fns ...AggregateFunc) *InterviewGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InterviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterviewQuery, *InterviewGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InterviewGroupBy) sqlScan(ctx context.Context, root *InterviewQuery, v any) error {
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

// InterviewSelect is the builder for selecting fields of Interview entities.
type InterviewSelect struct {
	*InterviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InterviewSelect) Aggregate(fns ...AggregateFunc) *InterviewSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InterviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterviewQuery, *InterviewSelect](ctx, _s.InterviewQuery, _s, _s.inters, v)
}

func (_s *InterviewSelect) sqlScan(ctx context.Context, root *InterviewQuery, v any) error {
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
