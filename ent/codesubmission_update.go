// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/predicate"
)

// CodeSubmissionUpdate is the builder for updating CodeSubmission entities.
type CodeSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *CodeSubmissionMutation
}

// Where appends a list predicates to the CodeSubmissionUpdate builder.
func (_u *CodeSubmissionUpdate) Where(ps ...predicate.CodeSubmission) *CodeSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (_u *CodeSubmissionUpdate) SetPassedAllTests(v bool) *CodeSubmissionUpdate {
	_u.mutation.SetPassedAllTests(v)
	return _u
}

// SetNillablePassedAllTests sets the "passed_all_tests" field if the given value is not nil.
func (_u *CodeSubmissionUpdate) SetNillablePassedAllTests(v *bool) *CodeSubmissionUpdate {
	if v != nil {
		_u.SetPassedAllTests(*v)
	}
	return _u
}

// SetOutputLog sets the "output_log" field.
func (_u *CodeSubmissionUpdate) SetOutputLog(v string) *CodeSubmissionUpdate {
	_u.mutation.SetOutputLog(v)
	return _u
}

// SetNillableOutputLog sets the "output_log" field if the given value is not nil.
func (_u *CodeSubmissionUpdate) SetNillableOutputLog(v *string) *CodeSubmissionUpdate {
	if v != nil {
		_u.SetOutputLog(*v)
	}
	return _u
}

// ClearOutputLog clears the value of the "output_log" field.
func (_u *CodeSubmissionUpdate) ClearOutputLog() *CodeSubmissionUpdate {
	_u.mutation.ClearOutputLog()
	return _u
}

// Mutation returns the CodeSubmissionMutation object of the builder.
func (_u *CodeSubmissionUpdate) Mutation() *CodeSubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeSubmissionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeSubmission.session"`)
	}
	return nil
}

func (_u *CodeSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codesubmission.Table, codesubmission.Columns, sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PassedAllTests(); ok {
		_spec.SetField(codesubmission.FieldPassedAllTests, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputLog(); ok {
		_spec.SetField(codesubmission.FieldOutputLog, field.TypeString, value)
	}
	if _u.mutation.OutputLogCleared() {
		_spec.ClearField(codesubmission.FieldOutputLog, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codesubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeSubmissionUpdateOne is the builder for updating a single CodeSubmission entity.
type CodeSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeSubmissionMutation
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (_u *CodeSubmissionUpdateOne) SetPassedAllTests(v bool) *CodeSubmissionUpdateOne {
	_u.mutation.SetPassedAllTests(v)
	return _u
}

// SetNillablePassedAllTests sets the "passed_all_tests" field if the given value is not nil.
func (_u *CodeSubmissionUpdateOne) SetNillablePassedAllTests(v *bool) *CodeSubmissionUpdateOne {
	if v != nil {
		_u.SetPassedAllTests(*v)
	}
	return _u
}

// SetOutputLog sets the "output_log" field.
func (_u *CodeSubmissionUpdateOne) SetOutputLog(v string) *CodeSubmissionUpdateOne {
	_u.mutation.SetOutputLog(v)
	return _u
}

// SetNillableOutputLog sets the "output_log" field if the given value is not nil.
func (_u *CodeSubmissionUpdateOne) SetNillableOutputLog(v *string) *CodeSubmissionUpdateOne {
	if v != nil {
		_u.SetOutputLog(*v)
	}
	return _u
}

// ClearOutputLog clears the value of the "output_log" field.
func (_u *CodeSubmissionUpdateOne) ClearOutputLog() *CodeSubmissionUpdateOne {
	_u.mutation.ClearOutputLog()
	return _u
}

// Mutation returns the CodeSubmissionMutation object of the builder.
func (_u *CodeSubmissionUpdateOne) Mutation() *CodeSubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeSubmissionUpdate builder.
func (_u *CodeSubmissionUpdateOne) Where(ps ...predicate.CodeSubmission) *CodeSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeSubmissionUpdateOne) Select(field string, fields ...string) *CodeSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeSubmission entity.
func (_u *CodeSubmissionUpdateOne) Save(ctx context.Context) (*CodeSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeSubmissionUpdateOne) SaveX(ctx context.Context) *CodeSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeSubmissionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeSubmission.session"`)
	}
	return nil
}

func (_u *CodeSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *CodeSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codesubmission.Table, codesubmission.Columns, sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codesubmission.FieldID)
		for _, f := range fields {
			if !codesubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codesubmission.FieldID {
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
	if value, ok := _u.mutation.PassedAllTests(); ok {
		_spec.SetField(codesubmission.FieldPassedAllTests, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputLog(); ok {
		_spec.SetField(codesubmission.FieldOutputLog, field.TypeString, value)
	}
	if _u.mutation.OutputLogCleared() {
		_spec.ClearField(codesubmission.FieldOutputLog, field.TypeString)
	}
	_node = &CodeSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codesubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
