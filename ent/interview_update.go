// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
)

// InterviewUpdate is the builder for updating Interview entities.
type InterviewUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewMutation
}

// Where appends a list predicates to the InterviewUpdate builder.
func (_u *InterviewUpdate) Where(ps ...predicate.Interview) *InterviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundLabel sets the "round_label" field.
func (_u *InterviewUpdate) SetRoundLabel(v string) *InterviewUpdate {
	_u.mutation.SetRoundLabel(v)
	return _u
}

// SetNillableRoundLabel sets the "round_label" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableRoundLabel(v *string) *InterviewUpdate {
	if v != nil {
		_u.SetRoundLabel(*v)
	}
	return _u
}

// ClearRoundLabel clears the value of the "round_label" field.
func (_u *InterviewUpdate) ClearRoundLabel() *InterviewUpdate {
	_u.mutation.ClearRoundLabel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterviewUpdate) SetStatus(v interview.Status) *InterviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableStatus(v *interview.Status) *InterviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewUpdate) SetStartedAt(v time.Time) *InterviewUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableStartedAt(v *time.Time) *InterviewUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterviewUpdate) ClearStartedAt() *InterviewUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InterviewUpdate) SetEndedAt(v time.Time) *InterviewUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableEndedAt(v *time.Time) *InterviewUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InterviewUpdate) ClearEndedAt() *InterviewUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (_u *InterviewUpdate) SetLinkExpiresAt(v time.Time) *InterviewUpdate {
	_u.mutation.SetLinkExpiresAt(v)
	return _u
}

// SetNillableLinkExpiresAt sets the "link_expires_at" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableLinkExpiresAt(v *time.Time) *InterviewUpdate {
	if v != nil {
		_u.SetLinkExpiresAt(*v)
	}
	return _u
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (_u *InterviewUpdate) ClearLinkExpiresAt() *InterviewUpdate {
	_u.mutation.ClearLinkExpiresAt()
	return _u
}

// SetEmailSent sets the "email_sent" field.
func (_u *InterviewUpdate) SetEmailSent(v bool) *InterviewUpdate {
	_u.mutation.SetEmailSent(v)
	return _u
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableEmailSent(v *bool) *InterviewUpdate {
	if v != nil {
		_u.SetEmailSent(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewUpdate) SetUpdatedAt(v time.Time) *InterviewUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *InterviewUpdate) AddScheduleIDs(ids ...string) *InterviewUpdate {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *InterviewUpdate) AddSchedules(v ...*Schedule) *InterviewUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *InterviewUpdate) SetSessionID(id string) *InterviewUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_u *InterviewUpdate) SetNillableSessionID(id *string) *InterviewUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *InterviewUpdate) SetSession(v *Session) *InterviewUpdate {
	return _u.SetSessionID(v.ID)
}

// AddEvaluationResultIDs adds the "evaluation_results" edge to the EvaluationResult entity by IDs.
func (_u *InterviewUpdate) AddEvaluationResultIDs(ids ...string) *InterviewUpdate {
	_u.mutation.AddEvaluationResultIDs(ids...)
	return _u
}

// AddEvaluationResults adds the "evaluation_results" edges to the EvaluationResult entity.
func (_u *InterviewUpdate) AddEvaluationResults(v ...*EvaluationResult) *InterviewUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationResultIDs(ids...)
}

// Mutation returns the InterviewMutation object of the builder.
func (_u *InterviewUpdate) Mutation() *InterviewMutation {
	return _u.mutation
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *InterviewUpdate) ClearSchedules() *InterviewUpdate {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *InterviewUpdate) RemoveScheduleIDs(ids ...string) *InterviewUpdate {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *InterviewUpdate) RemoveSchedules(v ...*Schedule) *InterviewUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *InterviewUpdate) ClearSession() *InterviewUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearEvaluationResults clears all "evaluation_results" edges to the EvaluationResult entity.
func (_u *InterviewUpdate) ClearEvaluationResults() *InterviewUpdate {
	_u.mutation.ClearEvaluationResults()
	return _u
}

// RemoveEvaluationResultIDs removes the "evaluation_results" edge to EvaluationResult entities by IDs.
func (_u *InterviewUpdate) RemoveEvaluationResultIDs(ids ...string) *InterviewUpdate {
	_u.mutation.RemoveEvaluationResultIDs(ids...)
	return _u
}

// RemoveEvaluationResults removes "evaluation_results" edges to EvaluationResult entities.
func (_u *InterviewUpdate) RemoveEvaluationResults(v ...*EvaluationResult) *InterviewUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interview.candidate"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interview.job"`)
	}
	return nil
}

func (_u *InterviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundLabel(); ok {
		_spec.SetField(interview.FieldRoundLabel, field.TypeString, value)
	}
	if _u.mutation.RoundLabelCleared() {
		_spec.ClearField(interview.FieldRoundLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interview.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interview.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interview.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interview.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LinkExpiresAt(); ok {
		_spec.SetField(interview.FieldLinkExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LinkExpiresAtCleared() {
		_spec.ClearField(interview.FieldLinkExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailSent(); ok {
		_spec.SetField(interview.FieldEmailSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSchedulesIDs(); len(nodes) > 0 && !_u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchedulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interview.SessionTable,
			Columns: []string{interview.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interview.SessionTable,
			Columns: []string{interview.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationResultsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewUpdateOne is the builder for updating a single Interview entity.
type InterviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewMutation
}

// SetRoundLabel sets the "round_label" field.
func (_u *InterviewUpdateOne) SetRoundLabel(v string) *InterviewUpdateOne {
	_u.mutation.SetRoundLabel(v)
	return _u
}

// SetNillableRoundLabel sets the "round_label" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableRoundLabel(v *string) *InterviewUpdateOne {
	if v != nil {
		_u.SetRoundLabel(*v)
	}
	return _u
}

// ClearRoundLabel clears the value of the "round_label" field.
func (_u *InterviewUpdateOne) ClearRoundLabel() *InterviewUpdateOne {
	_u.mutation.ClearRoundLabel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterviewUpdateOne) SetStatus(v interview.Status) *InterviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableStatus(v *interview.Status) *InterviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewUpdateOne) SetStartedAt(v time.Time) *InterviewUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableStartedAt(v *time.Time) *InterviewUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterviewUpdateOne) ClearStartedAt() *InterviewUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InterviewUpdateOne) SetEndedAt(v time.Time) *InterviewUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableEndedAt(v *time.Time) *InterviewUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InterviewUpdateOne) ClearEndedAt() *InterviewUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (_u *InterviewUpdateOne) SetLinkExpiresAt(v time.Time) *InterviewUpdateOne {
	_u.mutation.SetLinkExpiresAt(v)
	return _u
}

// SetNillableLinkExpiresAt sets the "link_expires_at" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableLinkExpiresAt(v *time.Time) *InterviewUpdateOne {
	if v != nil {
		_u.SetLinkExpiresAt(*v)
	}
	return _u
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (_u *InterviewUpdateOne) ClearLinkExpiresAt() *InterviewUpdateOne {
	_u.mutation.ClearLinkExpiresAt()
	return _u
}

// SetEmailSent sets the "email_sent" field.
func (_u *InterviewUpdateOne) SetEmailSent(v bool) *InterviewUpdateOne {
	_u.mutation.SetEmailSent(v)
	return _u
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableEmailSent(v *bool) *InterviewUpdateOne {
	if v != nil {
		_u.SetEmailSent(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewUpdateOne) SetUpdatedAt(v time.Time) *InterviewUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *InterviewUpdateOne) AddScheduleIDs(ids ...string) *InterviewUpdateOne {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *InterviewUpdateOne) AddSchedules(v ...*Schedule) *InterviewUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *InterviewUpdateOne) SetSessionID(id string) *InterviewUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableSessionID(id *string) *InterviewUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *InterviewUpdateOne) SetSession(v *Session) *InterviewUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddEvaluationResultIDs adds the "evaluation_results" edge to the EvaluationResult entity by IDs.
func (_u *InterviewUpdateOne) AddEvaluationResultIDs(ids ...string) *InterviewUpdateOne {
	_u.mutation.AddEvaluationResultIDs(ids...)
	return _u
}

// AddEvaluationResults adds the "evaluation_results" edges to the EvaluationResult entity.
func (_u *InterviewUpdateOne) AddEvaluationResults(v ...*EvaluationResult) *InterviewUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationResultIDs(ids...)
}

// Mutation returns the InterviewMutation object of the builder.
func (_u *InterviewUpdateOne) Mutation() *InterviewMutation {
	return _u.mutation
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *InterviewUpdateOne) ClearSchedules() *InterviewUpdateOne {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *InterviewUpdateOne) RemoveScheduleIDs(ids ...string) *InterviewUpdateOne {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *InterviewUpdateOne) RemoveSchedules(v ...*Schedule) *InterviewUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *InterviewUpdateOne) ClearSession() *InterviewUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearEvaluationResults clears all "evaluation_results" edges to the EvaluationResult entity.
func (_u *InterviewUpdateOne) ClearEvaluationResults() *InterviewUpdateOne {
	_u.mutation.ClearEvaluationResults()
	return _u
}

// RemoveEvaluationResultIDs removes the "evaluation_results" edge to EvaluationResult entities by IDs.
func (_u *InterviewUpdateOne) RemoveEvaluationResultIDs(ids ...string) *InterviewUpdateOne {
	_u.mutation.RemoveEvaluationResultIDs(ids...)
	return _u
}

// RemoveEvaluationResults removes "evaluation_results" edges to EvaluationResult entities.
func (_u *InterviewUpdateOne) RemoveEvaluationResults(v ...*EvaluationResult) *InterviewUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationResultIDs(ids...)
}

// Where appends a list predicates to the InterviewUpdate builder.
func (_u *InterviewUpdateOne) Where(ps ...predicate.Interview) *InterviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewUpdateOne) Select(field string, fields ...string) *InterviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interview entity.
func (_u *InterviewUpdateOne) Save(ctx context.Context) (*Interview, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewUpdateOne) SaveX(ctx context.Context) *Interview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interview.candidate"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interview.job"`)
	}
	return nil
}

func (_u *InterviewUpdateOne) sqlSave(ctx context.Context) (_node *Interview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interview.FieldID)
		for _, f := range fields {
			if !interview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interview.FieldID {
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
	if value, ok := _u.mutation.RoundLabel(); ok {
		_spec.SetField(interview.FieldRoundLabel, field.TypeString, value)
	}
	if _u.mutation.RoundLabelCleared() {
		_spec.ClearField(interview.FieldRoundLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interview.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interview.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interview.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interview.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LinkExpiresAt(); ok {
		_spec.SetField(interview.FieldLinkExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LinkExpiresAtCleared() {
		_spec.ClearField(interview.FieldLinkExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailSent(); ok {
		_spec.SetField(interview.FieldEmailSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSchedulesIDs(); len(nodes) > 0 && !_u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchedulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.SchedulesTable,
			Columns: []string{interview.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interview.SessionTable,
			Columns: []string{interview.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interview.SessionTable,
			Columns: []string{interview.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationResultsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interview.EvaluationResultsTable,
			Columns: []string{interview.EvaluationResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
