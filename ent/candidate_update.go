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
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/predicate"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *CandidateUpdate) SetFullName(v string) *CandidateUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableFullName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdate) SetPhone(v string) *CandidateUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePhone(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdate) ClearPhone() *CandidateUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *CandidateUpdate) SetResumeText(v string) *CandidateUpdate {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableResumeText(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *CandidateUpdate) ClearResumeText() *CandidateUpdate {
	_u.mutation.ClearResumeText()
	return _u
}

// SetResumePath sets the "resume_path" field.
func (_u *CandidateUpdate) SetResumePath(v string) *CandidateUpdate {
	_u.mutation.SetResumePath(v)
	return _u
}

// SetNillableResumePath sets the "resume_path" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableResumePath(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetResumePath(*v)
	}
	return _u
}

// ClearResumePath clears the value of the "resume_path" field.
func (_u *CandidateUpdate) ClearResumePath() *CandidateUpdate {
	_u.mutation.ClearResumePath()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *CandidateUpdate) AddInterviewIDs(ids ...string) *CandidateUpdate {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *CandidateUpdate) AddInterviews(v ...*Interview) *CandidateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *CandidateUpdate) ClearInterviews() *CandidateUpdate {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *CandidateUpdate) RemoveInterviewIDs(ids ...string) *CandidateUpdate {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *CandidateUpdate) RemoveInterviews(v ...*Interview) *CandidateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(candidate.FieldResumeText, field.TypeString)
	}
	if value, ok := _u.mutation.ResumePath(); ok {
		_spec.SetField(candidate.FieldResumePath, field.TypeString, value)
	}
	if _u.mutation.ResumePathCleared() {
		_spec.ClearField(candidate.FieldResumePath, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetFullName sets the "full_name" field.
func (_u *CandidateUpdateOne) SetFullName(v string) *CandidateUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableFullName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdateOne) SetPhone(v string) *CandidateUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePhone(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdateOne) ClearPhone() *CandidateUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *CandidateUpdateOne) SetResumeText(v string) *CandidateUpdateOne {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableResumeText(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *CandidateUpdateOne) ClearResumeText() *CandidateUpdateOne {
	_u.mutation.ClearResumeText()
	return _u
}

// SetResumePath sets the "resume_path" field.
func (_u *CandidateUpdateOne) SetResumePath(v string) *CandidateUpdateOne {
	_u.mutation.SetResumePath(v)
	return _u
}

// SetNillableResumePath sets the "resume_path" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableResumePath(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetResumePath(*v)
	}
	return _u
}

// ClearResumePath clears the value of the "resume_path" field.
func (_u *CandidateUpdateOne) ClearResumePath() *CandidateUpdateOne {
	_u.mutation.ClearResumePath()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *CandidateUpdateOne) AddInterviewIDs(ids ...string) *CandidateUpdateOne {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *CandidateUpdateOne) AddInterviews(v ...*Interview) *CandidateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *CandidateUpdateOne) ClearInterviews() *CandidateUpdateOne {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *CandidateUpdateOne) RemoveInterviewIDs(ids ...string) *CandidateUpdateOne {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *CandidateUpdateOne) RemoveInterviews(v ...*Interview) *CandidateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(candidate.FieldResumeText, field.TypeString)
	}
	if value, ok := _u.mutation.ResumePath(); ok {
		_spec.SetField(candidate.FieldResumePath, field.TypeString, value)
	}
	if _u.mutation.ResumePathCleared() {
		_spec.ClearField(candidate.FieldResumePath, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.InterviewsTable,
			Columns: []string{candidate.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
