// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/testcase"
)

// TestCaseUpdate is the builder for updating TestCase entities.
type TestCaseUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseMutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdate) Where(ps ...predicate.TestCase) *TestCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInput sets the "input" field.
func (_u *TestCaseUpdate) SetInput(v string) *TestCaseUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableInput(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *TestCaseUpdate) SetExpectedOutput(v string) *TestCaseUpdate {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// SetNillableExpectedOutput sets the "expected_output" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableExpectedOutput(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetExpectedOutput(*v)
	}
	return _u
}

// SetIsHidden sets the "is_hidden" field.
func (_u *TestCaseUpdate) SetIsHidden(v bool) *TestCaseUpdate {
	_u.mutation.SetIsHidden(v)
	return _u
}

// SetNillableIsHidden sets the "is_hidden" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableIsHidden(v *bool) *TestCaseUpdate {
	if v != nil {
		_u.SetIsHidden(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *TestCaseUpdate) SetOrdinal(v int) *TestCaseUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableOrdinal(v *int) *TestCaseUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *TestCaseUpdate) AddOrdinal(v int) *TestCaseUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdate) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.question"`)
	}
	return nil
}

func (_u *TestCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(testcase.FieldExpectedOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHidden(); ok {
		_spec.SetField(testcase.FieldIsHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(testcase.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(testcase.FieldOrdinal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseUpdateOne is the builder for updating a single TestCase entity.
type TestCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseMutation
}

// SetInput sets the "input" field.
func (_u *TestCaseUpdateOne) SetInput(v string) *TestCaseUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableInput(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *TestCaseUpdateOne) SetExpectedOutput(v string) *TestCaseUpdateOne {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// SetNillableExpectedOutput sets the "expected_output" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableExpectedOutput(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetExpectedOutput(*v)
	}
	return _u
}

// SetIsHidden sets the "is_hidden" field.
func (_u *TestCaseUpdateOne) SetIsHidden(v bool) *TestCaseUpdateOne {
	_u.mutation.SetIsHidden(v)
	return _u
}

// SetNillableIsHidden sets the "is_hidden" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableIsHidden(v *bool) *TestCaseUpdateOne {
	if v != nil {
		_u.SetIsHidden(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *TestCaseUpdateOne) SetOrdinal(v int) *TestCaseUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableOrdinal(v *int) *TestCaseUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *TestCaseUpdateOne) AddOrdinal(v int) *TestCaseUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdateOne) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdateOne) Where(ps ...predicate.TestCase) *TestCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseUpdateOne) Select(field string, fields ...string) *TestCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCase entity.
func (_u *TestCaseUpdateOne) Save(ctx context.Context) (*TestCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdateOne) SaveX(ctx context.Context) *TestCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.question"`)
	}
	return nil
}

func (_u *TestCaseUpdateOne) sqlSave(ctx context.Context) (_node *TestCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcase.FieldID)
		for _, f := range fields {
			if !testcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcase.FieldID {
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
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(testcase.FieldExpectedOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHidden(); ok {
		_spec.SetField(testcase.FieldIsHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(testcase.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(testcase.FieldOrdinal, field.TypeInt, value)
	}
	_node = &TestCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
