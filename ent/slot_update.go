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
	"github.com/hireloop/hireloop/ent/slot"
)

// SlotUpdate is the builder for updating Slot entities.
type SlotUpdate struct {
	config
	hooks    []Hook
	mutation *SlotMutation
}

// Where appends a list predicates to the SlotUpdate builder.
func (_u *SlotUpdate) Where(ps ...predicate.Slot) *SlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInterviewDate sets the "interview_date" field.
func (_u *SlotUpdate) SetInterviewDate(v string) *SlotUpdate {
	_u.mutation.SetInterviewDate(v)
	return _u
}

// SetNillableInterviewDate sets the "interview_date" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableInterviewDate(v *string) *SlotUpdate {
	if v != nil {
		_u.SetInterviewDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SlotUpdate) SetStartTime(v string) *SlotUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableStartTime(v *string) *SlotUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SlotUpdate) SetEndTime(v string) *SlotUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableEndTime(v *string) *SlotUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SlotUpdate) SetDurationMinutes(v int) *SlotUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableDurationMinutes(v *int) *SlotUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SlotUpdate) AddDurationMinutes(v int) *SlotUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetMaxCandidates sets the "max_candidates" field.
func (_u *SlotUpdate) SetMaxCandidates(v int) *SlotUpdate {
	_u.mutation.ResetMaxCandidates()
	_u.mutation.SetMaxCandidates(v)
	return _u
}

// SetNillableMaxCandidates sets the "max_candidates" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableMaxCandidates(v *int) *SlotUpdate {
	if v != nil {
		_u.SetMaxCandidates(*v)
	}
	return _u
}

// AddMaxCandidates adds value to the "max_candidates" field.
func (_u *SlotUpdate) AddMaxCandidates(v int) *SlotUpdate {
	_u.mutation.AddMaxCandidates(v)
	return _u
}

// SetCurrentBookings sets the "current_bookings" field.
func (_u *SlotUpdate) SetCurrentBookings(v int) *SlotUpdate {
	_u.mutation.ResetCurrentBookings()
	_u.mutation.SetCurrentBookings(v)
	return _u
}

// SetNillableCurrentBookings sets the "current_bookings" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableCurrentBookings(v *int) *SlotUpdate {
	if v != nil {
		_u.SetCurrentBookings(*v)
	}
	return _u
}

// AddCurrentBookings adds value to the "current_bookings" field.
func (_u *SlotUpdate) AddCurrentBookings(v int) *SlotUpdate {
	_u.mutation.AddCurrentBookings(v)
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *SlotUpdate) SetCancelled(v bool) *SlotUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableCancelled(v *bool) *SlotUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *SlotUpdate) SetRecurrence(v string) *SlotUpdate {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *SlotUpdate) SetNillableRecurrence(v *string) *SlotUpdate {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *SlotUpdate) ClearRecurrence() *SlotUpdate {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlotUpdate) SetUpdatedAt(v time.Time) *SlotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *SlotUpdate) AddScheduleIDs(ids ...string) *SlotUpdate {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *SlotUpdate) AddSchedules(v ...*Schedule) *SlotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// Mutation returns the SlotMutation object of the builder.
func (_u *SlotUpdate) Mutation() *SlotMutation {
	return _u.mutation
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *SlotUpdate) ClearSchedules() *SlotUpdate {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *SlotUpdate) RemoveScheduleIDs(ids ...string) *SlotUpdate {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *SlotUpdate) RemoveSchedules(v ...*Schedule) *SlotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlotUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slot.job"`)
	}
	return nil
}

func (_u *SlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slot.Table, slot.Columns, sqlgraph.NewFieldSpec(slot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InterviewDate(); ok {
		_spec.SetField(slot.FieldInterviewDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(slot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(slot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(slot.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(slot.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCandidates(); ok {
		_spec.SetField(slot.FieldMaxCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCandidates(); ok {
		_spec.AddField(slot.FieldMaxCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentBookings(); ok {
		_spec.SetField(slot.FieldCurrentBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentBookings(); ok {
		_spec.AddField(slot.FieldCurrentBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(slot.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(slot.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(slot.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlotUpdateOne is the builder for updating a single Slot entity.
type SlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlotMutation
}

// SetInterviewDate sets the "interview_date" field.
func (_u *SlotUpdateOne) SetInterviewDate(v string) *SlotUpdateOne {
	_u.mutation.SetInterviewDate(v)
	return _u
}

// SetNillableInterviewDate sets the "interview_date" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableInterviewDate(v *string) *SlotUpdateOne {
	if v != nil {
		_u.SetInterviewDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SlotUpdateOne) SetStartTime(v string) *SlotUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableStartTime(v *string) *SlotUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SlotUpdateOne) SetEndTime(v string) *SlotUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableEndTime(v *string) *SlotUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SlotUpdateOne) SetDurationMinutes(v int) *SlotUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableDurationMinutes(v *int) *SlotUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SlotUpdateOne) AddDurationMinutes(v int) *SlotUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetMaxCandidates sets the "max_candidates" field.
func (_u *SlotUpdateOne) SetMaxCandidates(v int) *SlotUpdateOne {
	_u.mutation.ResetMaxCandidates()
	_u.mutation.SetMaxCandidates(v)
	return _u
}

// SetNillableMaxCandidates sets the "max_candidates" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableMaxCandidates(v *int) *SlotUpdateOne {
	if v != nil {
		_u.SetMaxCandidates(*v)
	}
	return _u
}

// AddMaxCandidates adds value to the "max_candidates" field.
func (_u *SlotUpdateOne) AddMaxCandidates(v int) *SlotUpdateOne {
	_u.mutation.AddMaxCandidates(v)
	return _u
}

// SetCurrentBookings sets the "current_bookings" field.
func (_u *SlotUpdateOne) SetCurrentBookings(v int) *SlotUpdateOne {
	_u.mutation.ResetCurrentBookings()
	_u.mutation.SetCurrentBookings(v)
	return _u
}

// SetNillableCurrentBookings sets the "current_bookings" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableCurrentBookings(v *int) *SlotUpdateOne {
	if v != nil {
		_u.SetCurrentBookings(*v)
	}
	return _u
}

// AddCurrentBookings adds value to the "current_bookings" field.
func (_u *SlotUpdateOne) AddCurrentBookings(v int) *SlotUpdateOne {
	_u.mutation.AddCurrentBookings(v)
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *SlotUpdateOne) SetCancelled(v bool) *SlotUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableCancelled(v *bool) *SlotUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *SlotUpdateOne) SetRecurrence(v string) *SlotUpdateOne {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *SlotUpdateOne) SetNillableRecurrence(v *string) *SlotUpdateOne {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *SlotUpdateOne) ClearRecurrence() *SlotUpdateOne {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlotUpdateOne) SetUpdatedAt(v time.Time) *SlotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *SlotUpdateOne) AddScheduleIDs(ids ...string) *SlotUpdateOne {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *SlotUpdateOne) AddSchedules(v ...*Schedule) *SlotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// Mutation returns the SlotMutation object of the builder.
func (_u *SlotUpdateOne) Mutation() *SlotMutation {
	return _u.mutation
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *SlotUpdateOne) ClearSchedules() *SlotUpdateOne {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *SlotUpdateOne) RemoveScheduleIDs(ids ...string) *SlotUpdateOne {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *SlotUpdateOne) RemoveSchedules(v ...*Schedule) *SlotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// Where appends a list predicates to the SlotUpdate builder.
func (_u *SlotUpdateOne) Where(ps ...predicate.Slot) *SlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlotUpdateOne) Select(field string, fields ...string) *SlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Slot entity.
func (_u *SlotUpdateOne) Save(ctx context.Context) (*Slot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlotUpdateOne) SaveX(ctx context.Context) *Slot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlotUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slot.job"`)
	}
	return nil
}

func (_u *SlotUpdateOne) sqlSave(ctx context.Context) (_node *Slot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slot.Table, slot.Columns, sqlgraph.NewFieldSpec(slot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Slot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slot.FieldID)
		for _, f := range fields {
			if !slot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slot.FieldID {
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
	if value, ok := _u.mutation.InterviewDate(); ok {
		_spec.SetField(slot.FieldInterviewDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(slot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(slot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(slot.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(slot.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCandidates(); ok {
		_spec.SetField(slot.FieldMaxCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCandidates(); ok {
		_spec.AddField(slot.FieldMaxCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentBookings(); ok {
		_spec.SetField(slot.FieldCurrentBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentBookings(); ok {
		_spec.AddField(slot.FieldCurrentBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(slot.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(slot.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(slot.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchedulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
			Table:   slot.SchedulesTable,
			Columns: []string{slot.SchedulesColumn},
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
	_node = &Slot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
