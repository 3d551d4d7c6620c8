// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
)

// InterviewCreate is the builder for creating a Interview entity.
type InterviewCreate struct {
	config
	mutation *InterviewMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCandidateID sets the "candidate_id" field.
func (_c *InterviewCreate) SetCandidateID(v string) *InterviewCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *InterviewCreate) SetJobID(v string) *InterviewCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRoundLabel sets the "round_label" field.
func (_c *InterviewCreate) SetRoundLabel(v string) *InterviewCreate {
	_c.mutation.SetRoundLabel(v)
	return _c
}

// SetNillableRoundLabel sets the "round_label" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableRoundLabel(v *string) *InterviewCreate {
	if v != nil {
		_c.SetRoundLabel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterviewCreate) SetStatus(v interview.Status) *InterviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableStatus(v *interview.Status) *InterviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InterviewCreate) SetStartedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableStartedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *InterviewCreate) SetEndedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableEndedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (_c *InterviewCreate) SetLinkExpiresAt(v time.Time) *InterviewCreate {
	_c.mutation.SetLinkExpiresAt(v)
	return _c
}

// SetNillableLinkExpiresAt sets the "link_expires_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableLinkExpiresAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetLinkExpiresAt(*v)
	}
	return _c
}

// SetEmailSent sets the "email_sent" field.
func (_c *InterviewCreate) SetEmailSent(v bool) *InterviewCreate {
	_c.mutation.SetEmailSent(v)
	return _c
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableEmailSent(v *bool) *InterviewCreate {
	if v != nil {
		_c.SetEmailSent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewCreate) SetCreatedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableCreatedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterviewCreate) SetUpdatedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableUpdatedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewCreate) SetID(v string) *InterviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *InterviewCreate) SetCandidate(v *Candidate) *InterviewCreate {
	return _c.SetCandidateID(v.ID)
}

// SetJob sets the "job" edge to the Job entity.
func (_c *InterviewCreate) SetJob(v *Job) *InterviewCreate {
	return _c.SetJobID(v.ID)
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_c *InterviewCreate) AddScheduleIDs(ids ...string) *InterviewCreate {
	_c.mutation.AddScheduleIDs(ids...)
	return _c
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_c *InterviewCreate) AddSchedules(v ...*Schedule) *InterviewCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduleIDs(ids...)
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_c *InterviewCreate) SetSessionID(id string) *InterviewCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_c *InterviewCreate) SetNillableSessionID(id *string) *InterviewCreate {
	if id != nil {
		_c = _c.SetSessionID(*id)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *InterviewCreate) SetSession(v *Session) *InterviewCreate {
	return _c.SetSessionID(v.ID)
}

// AddEvaluationResultIDs adds the "evaluation_results" edge to the EvaluationResult entity by IDs.
func (_c *InterviewCreate) AddEvaluationResultIDs(ids ...string) *InterviewCreate {
	_c.mutation.AddEvaluationResultIDs(ids...)
	return _c
}

// AddEvaluationResults adds the "evaluation_results" edges to the EvaluationResult entity.
func (_c *InterviewCreate) AddEvaluationResults(v ...*EvaluationResult) *InterviewCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationResultIDs(ids...)
}

// Mutation returns the InterviewMutation object of the builder.
func (_c *InterviewCreate) Mutation() *InterviewMutation {
	return _c.mutation
}

// Save creates the Interview in the database.
func (_c *InterviewCreate) Save(ctx context.Context) (*Interview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewCreate) SaveX(ctx context.Context) *Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := interview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EmailSent(); !ok {
		v := interview.DefaultEmailSent
		_c.mutation.SetEmailSent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interview.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewCreate) check() error {
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "Interview.candidate_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Interview.job_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Interview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailSent(); !ok {
		return &ValidationError{Name: "email_sent", err: errors.New(`ent: missing required field "Interview.email_sent"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interview.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interview.updated_at"`)}
	}
	if len(_c.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "Interview.candidate"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Interview.job"`)}
	}
	return nil
}

func (_c *InterviewCreate) sqlSave(ctx context.Context) (*Interview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Interview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewCreate) createSpec() (*Interview, *sqlgraph.CreateSpec) {
	var (
		_node = &Interview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interview.Table, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoundLabel(); ok {
		_spec.SetField(interview.FieldRoundLabel, field.TypeString, value)
		_node.RoundLabel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interview.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(interview.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.LinkExpiresAt(); ok {
		_spec.SetField(interview.FieldLinkExpiresAt, field.TypeTime, value)
		_node.LinkExpiresAt = &value
	}
	if value, ok := _c.mutation.EmailSent(); ok {
		_spec.SetField(interview.FieldEmailSent, field.TypeBool, value)
		_node.EmailSent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interview.CandidateTable,
			Columns: []string{interview.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interview.JobTable,
			Columns: []string{interview.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SchedulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interview.Create().
//		SetCandidateID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterviewUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterviewCreate) OnConflict(opts ...sql.ConflictOption) *InterviewUpsertOne {
	_c.conflict = opts
	return &InterviewUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterviewCreate) OnConflictColumns(columns ...string) *InterviewUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterviewUpsertOne{
		create: _c,
	}
}

type (
	// InterviewUpsertOne is the builder for "upsert"-ing
	//  one Interview node.
	InterviewUpsertOne struct {
		create *InterviewCreate
	}

	// InterviewUpsert is the "OnConflict" setter.
	InterviewUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoundLabel sets the "round_label" field.
func (u *InterviewUpsert) SetRoundLabel(v string) *InterviewUpsert {
	u.Set(interview.FieldRoundLabel, v)
	return u
}

// UpdateRoundLabel sets the "round_label" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateRoundLabel() *InterviewUpsert {
	u.SetExcluded(interview.FieldRoundLabel)
	return u
}

// ClearRoundLabel clears the value of the "round_label" field.
func (u *InterviewUpsert) ClearRoundLabel() *InterviewUpsert {
	u.SetNull(interview.FieldRoundLabel)
	return u
}

// SetStatus sets the "status" field.
func (u *InterviewUpsert) SetStatus(v interview.Status) *InterviewUpsert {
	u.Set(interview.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateStatus() *InterviewUpsert {
	u.SetExcluded(interview.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewUpsert) SetStartedAt(v time.Time) *InterviewUpsert {
	u.Set(interview.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateStartedAt() *InterviewUpsert {
	u.SetExcluded(interview.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewUpsert) ClearStartedAt() *InterviewUpsert {
	u.SetNull(interview.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *InterviewUpsert) SetEndedAt(v time.Time) *InterviewUpsert {
	u.Set(interview.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateEndedAt() *InterviewUpsert {
	u.SetExcluded(interview.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InterviewUpsert) ClearEndedAt() *InterviewUpsert {
	u.SetNull(interview.FieldEndedAt)
	return u
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (u *InterviewUpsert) SetLinkExpiresAt(v time.Time) *InterviewUpsert {
	u.Set(interview.FieldLinkExpiresAt, v)
	return u
}

// UpdateLinkExpiresAt sets the "link_expires_at" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateLinkExpiresAt() *InterviewUpsert {
	u.SetExcluded(interview.FieldLinkExpiresAt)
	return u
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (u *InterviewUpsert) ClearLinkExpiresAt() *InterviewUpsert {
	u.SetNull(interview.FieldLinkExpiresAt)
	return u
}

// SetEmailSent sets the "email_sent" field.
func (u *InterviewUpsert) SetEmailSent(v bool) *InterviewUpsert {
	u.Set(interview.FieldEmailSent, v)
	return u
}

// UpdateEmailSent sets the "email_sent" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateEmailSent() *InterviewUpsert {
	u.SetExcluded(interview.FieldEmailSent)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewUpsert) SetUpdatedAt(v time.Time) *InterviewUpsert {
	u.Set(interview.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewUpsert) UpdateUpdatedAt() *InterviewUpsert {
	u.SetExcluded(interview.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Interview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterviewUpsertOne) UpdateNewValues() *InterviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interview.FieldID)
		}
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(interview.FieldCandidateID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(interview.FieldJobID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interview.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interview.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InterviewUpsertOne) Ignore() *InterviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterviewUpsertOne) DoNothing() *InterviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterviewCreate.OnConflict
// documentation for more info.
func (u *InterviewUpsertOne) Update(set func(*InterviewUpsert)) *InterviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundLabel sets the "round_label" field.
func (u *InterviewUpsertOne) SetRoundLabel(v string) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetRoundLabel(v)
	})
}

// UpdateRoundLabel sets the "round_label" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateRoundLabel() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateRoundLabel()
	})
}

// ClearRoundLabel clears the value of the "round_label" field.
func (u *InterviewUpsertOne) ClearRoundLabel() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearRoundLabel()
	})
}

// SetStatus sets the "status" field.
func (u *InterviewUpsertOne) SetStatus(v interview.Status) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateStatus() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewUpsertOne) SetStartedAt(v time.Time) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateStartedAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewUpsertOne) ClearStartedAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *InterviewUpsertOne) SetEndedAt(v time.Time) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateEndedAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InterviewUpsertOne) ClearEndedAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearEndedAt()
	})
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (u *InterviewUpsertOne) SetLinkExpiresAt(v time.Time) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetLinkExpiresAt(v)
	})
}

// UpdateLinkExpiresAt sets the "link_expires_at" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateLinkExpiresAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateLinkExpiresAt()
	})
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (u *InterviewUpsertOne) ClearLinkExpiresAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearLinkExpiresAt()
	})
}

// SetEmailSent sets the "email_sent" field.
func (u *InterviewUpsertOne) SetEmailSent(v bool) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetEmailSent(v)
	})
}

// UpdateEmailSent sets the "email_sent" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateEmailSent() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateEmailSent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewUpsertOne) SetUpdatedAt(v time.Time) *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewUpsertOne) UpdateUpdatedAt() *InterviewUpsertOne {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InterviewUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterviewCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterviewUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InterviewUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InterviewUpsertOne.ID is not supported by MySQL driver. Use InterviewUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InterviewUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InterviewCreateBulk is the builder for creating many Interview entities in bulk.
type InterviewCreateBulk struct {
	config
	err      error
	builders []*InterviewCreate
	conflict []sql.ConflictOption
}

// Save creates the Interview entities in the database.
func (_c *InterviewCreateBulk) Save(ctx context.Context) ([]*Interview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewCreateBulk) SaveX(ctx context.Context) []*Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interview.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterviewUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterviewCreateBulk) OnConflict(opts ...sql.ConflictOption) *InterviewUpsertBulk {
	_c.conflict = opts
	return &InterviewUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterviewCreateBulk) OnConflictColumns(columns ...string) *InterviewUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterviewUpsertBulk{
		create: _c,
	}
}

// InterviewUpsertBulk is the builder for "upsert"-ing
// a bulk of Interview nodes.
type InterviewUpsertBulk struct {
	create *InterviewCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Interview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterviewUpsertBulk) UpdateNewValues() *InterviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interview.FieldID)
			}
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(interview.FieldCandidateID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(interview.FieldJobID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interview.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interview.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InterviewUpsertBulk) Ignore() *InterviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterviewUpsertBulk) DoNothing() *InterviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterviewCreateBulk.OnConflict
// documentation for more info.
func (u *InterviewUpsertBulk) Update(set func(*InterviewUpsert)) *InterviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundLabel sets the "round_label" field.
func (u *InterviewUpsertBulk) SetRoundLabel(v string) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetRoundLabel(v)
	})
}

// UpdateRoundLabel sets the "round_label" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateRoundLabel() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateRoundLabel()
	})
}

// ClearRoundLabel clears the value of the "round_label" field.
func (u *InterviewUpsertBulk) ClearRoundLabel() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearRoundLabel()
	})
}

// SetStatus sets the "status" field.
func (u *InterviewUpsertBulk) SetStatus(v interview.Status) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateStatus() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewUpsertBulk) SetStartedAt(v time.Time) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateStartedAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewUpsertBulk) ClearStartedAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *InterviewUpsertBulk) SetEndedAt(v time.Time) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateEndedAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InterviewUpsertBulk) ClearEndedAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearEndedAt()
	})
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (u *InterviewUpsertBulk) SetLinkExpiresAt(v time.Time) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetLinkExpiresAt(v)
	})
}

// UpdateLinkExpiresAt sets the "link_expires_at" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateLinkExpiresAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateLinkExpiresAt()
	})
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (u *InterviewUpsertBulk) ClearLinkExpiresAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.ClearLinkExpiresAt()
	})
}

// SetEmailSent sets the "email_sent" field.
func (u *InterviewUpsertBulk) SetEmailSent(v bool) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetEmailSent(v)
	})
}

// UpdateEmailSent sets the "email_sent" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateEmailSent() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateEmailSent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewUpsertBulk) SetUpdatedAt(v time.Time) *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewUpsertBulk) UpdateUpdatedAt() *InterviewUpsertBulk {
	return u.Update(func(s *InterviewUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InterviewUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InterviewCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterviewCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterviewUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
