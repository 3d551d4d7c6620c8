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
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/schedule"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleUpdate) SetStatus(v schedule.Status) *ScheduleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableStatus(v *schedule.Status) *ScheduleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBookingNote sets the "booking_note" field.
func (_u *ScheduleUpdate) SetBookingNote(v string) *ScheduleUpdate {
	_u.mutation.SetBookingNote(v)
	return _u
}

// SetNillableBookingNote sets the "booking_note" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableBookingNote(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetBookingNote(*v)
	}
	return _u
}

// ClearBookingNote clears the value of the "booking_note" field.
func (_u *ScheduleUpdate) ClearBookingNote() *ScheduleUpdate {
	_u.mutation.ClearBookingNote()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ScheduleUpdate) SetCancelledAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCancelledAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ScheduleUpdate) ClearCancelledAt() *ScheduleUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Schedule.interview"`)
	}
	if _u.mutation.SlotCleared() && len(_u.mutation.SlotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Schedule.slot"`)
	}
	return nil
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BookingNote(); ok {
		_spec.SetField(schedule.FieldBookingNote, field.TypeString, value)
	}
	if _u.mutation.BookingNoteCleared() {
		_spec.ClearField(schedule.FieldBookingNote, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(schedule.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(schedule.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetStatus sets the "status" field.
func (_u *ScheduleUpdateOne) SetStatus(v schedule.Status) *ScheduleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableStatus(v *schedule.Status) *ScheduleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBookingNote sets the "booking_note" field.
func (_u *ScheduleUpdateOne) SetBookingNote(v string) *ScheduleUpdateOne {
	_u.mutation.SetBookingNote(v)
	return _u
}

// SetNillableBookingNote sets the "booking_note" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableBookingNote(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetBookingNote(*v)
	}
	return _u
}

// ClearBookingNote clears the value of the "booking_note" field.
func (_u *ScheduleUpdateOne) ClearBookingNote() *ScheduleUpdateOne {
	_u.mutation.ClearBookingNote()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ScheduleUpdateOne) SetCancelledAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCancelledAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ScheduleUpdateOne) ClearCancelledAt() *ScheduleUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Schedule.interview"`)
	}
	if _u.mutation.SlotCleared() && len(_u.mutation.SlotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Schedule.slot"`)
	}
	return nil
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BookingNote(); ok {
		_spec.SetField(schedule.FieldBookingNote, field.TypeString, value)
	}
	if _u.mutation.BookingNoteCleared() {
		_spec.ClearField(schedule.FieldBookingNote, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(schedule.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(schedule.FieldCancelledAt, field.TypeTime)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
