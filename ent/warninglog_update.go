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
	"github.com/hireloop/hireloop/ent/warninglog"
)

// WarningLogUpdate is the builder for updating WarningLog entities.
type WarningLogUpdate struct {
	config
	hooks    []Hook
	mutation *WarningLogMutation
}

// Where appends a list predicates to the WarningLogUpdate builder.
func (_u *WarningLogUpdate) Where(ps ...predicate.WarningLog) *WarningLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the WarningLogMutation object of the builder.
func (_u *WarningLogUpdate) Mutation() *WarningLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WarningLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarningLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WarningLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarningLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WarningLogUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WarningLog.session"`)
	}
	return nil
}

func (_u *WarningLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(warninglog.Table, warninglog.Columns, sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(warninglog.FieldMessage, field.TypeString)
	}
	if _u.mutation.EvidencePathCleared() {
		_spec.ClearField(warninglog.FieldEvidencePath, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warninglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WarningLogUpdateOne is the builder for updating a single WarningLog entity.
type WarningLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WarningLogMutation
}

// Mutation returns the WarningLogMutation object of the builder.
func (_u *WarningLogUpdateOne) Mutation() *WarningLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the WarningLogUpdate builder.
func (_u *WarningLogUpdateOne) Where(ps ...predicate.WarningLog) *WarningLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WarningLogUpdateOne) Select(field string, fields ...string) *WarningLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WarningLog entity.
func (_u *WarningLogUpdateOne) Save(ctx context.Context) (*WarningLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarningLogUpdateOne) SaveX(ctx context.Context) *WarningLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WarningLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarningLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WarningLogUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WarningLog.session"`)
	}
	return nil
}

func (_u *WarningLogUpdateOne) sqlSave(ctx context.Context) (_node *WarningLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(warninglog.Table, warninglog.Columns, sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WarningLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, warninglog.FieldID)
		for _, f := range fields {
			if !warninglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != warninglog.FieldID {
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
	if _u.mutation.MessageCleared() {
		_spec.ClearField(warninglog.FieldMessage, field.TypeString)
	}
	if _u.mutation.EvidencePathCleared() {
		_spec.ClearField(warninglog.FieldEvidencePath, field.TypeString)
	}
	_node = &WarningLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warninglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
