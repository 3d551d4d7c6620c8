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
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/slot"
)

// SlotCreate is the builder for creating a Slot entity.
type SlotCreate struct {
	config
	mutation *SlotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *SlotCreate) SetJobID(v string) *SlotCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetInterviewDate sets the "interview_date" field.
func (_c *SlotCreate) SetInterviewDate(v string) *SlotCreate {
	_c.mutation.SetInterviewDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SlotCreate) SetStartTime(v string) *SlotCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *SlotCreate) SetEndTime(v string) *SlotCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SlotCreate) SetDurationMinutes(v int) *SlotCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetMaxCandidates sets the "max_candidates" field.
func (_c *SlotCreate) SetMaxCandidates(v int) *SlotCreate {
	_c.mutation.SetMaxCandidates(v)
	return _c
}

// SetNillableMaxCandidates sets the "max_candidates" field if the given value is not nil.
func (_c *SlotCreate) SetNillableMaxCandidates(v *int) *SlotCreate {
	if v != nil {
		_c.SetMaxCandidates(*v)
	}
	return _c
}

// SetCurrentBookings sets the "current_bookings" field.
func (_c *SlotCreate) SetCurrentBookings(v int) *SlotCreate {
	_c.mutation.SetCurrentBookings(v)
	return _c
}

// SetNillableCurrentBookings sets the "current_bookings" field if the given value is not nil.
func (_c *SlotCreate) SetNillableCurrentBookings(v *int) *SlotCreate {
	if v != nil {
		_c.SetCurrentBookings(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *SlotCreate) SetCancelled(v bool) *SlotCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *SlotCreate) SetNillableCancelled(v *bool) *SlotCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *SlotCreate) SetRecurrence(v string) *SlotCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_c *SlotCreate) SetNillableRecurrence(v *string) *SlotCreate {
	if v != nil {
		_c.SetRecurrence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlotCreate) SetCreatedAt(v time.Time) *SlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlotCreate) SetNillableCreatedAt(v *time.Time) *SlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlotCreate) SetUpdatedAt(v time.Time) *SlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlotCreate) SetNillableUpdatedAt(v *time.Time) *SlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlotCreate) SetID(v string) *SlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *SlotCreate) SetJob(v *Job) *SlotCreate {
	return _c.SetJobID(v.ID)
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_c *SlotCreate) AddScheduleIDs(ids ...string) *SlotCreate {
	_c.mutation.AddScheduleIDs(ids...)
	return _c
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_c *SlotCreate) AddSchedules(v ...*Schedule) *SlotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduleIDs(ids...)
}

// Mutation returns the SlotMutation object of the builder.
func (_c *SlotCreate) Mutation() *SlotMutation {
	return _c.mutation
}

// Save creates the Slot in the database.
func (_c *SlotCreate) Save(ctx context.Context) (*Slot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlotCreate) SaveX(ctx context.Context) *Slot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlotCreate) defaults() {
	if _, ok := _c.mutation.MaxCandidates(); !ok {
		v := slot.DefaultMaxCandidates
		_c.mutation.SetMaxCandidates(v)
	}
	if _, ok := _c.mutation.CurrentBookings(); !ok {
		v := slot.DefaultCurrentBookings
		_c.mutation.SetCurrentBookings(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := slot.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlotCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Slot.job_id"`)}
	}
	if _, ok := _c.mutation.InterviewDate(); !ok {
		return &ValidationError{Name: "interview_date", err: errors.New(`ent: missing required field "Slot.interview_date"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Slot.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Slot.end_time"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Slot.duration_minutes"`)}
	}
	if _, ok := _c.mutation.MaxCandidates(); !ok {
		return &ValidationError{Name: "max_candidates", err: errors.New(`ent: missing required field "Slot.max_candidates"`)}
	}
	if _, ok := _c.mutation.CurrentBookings(); !ok {
		return &ValidationError{Name: "current_bookings", err: errors.New(`ent: missing required field "Slot.current_bookings"`)}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "Slot.cancelled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Slot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Slot.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Slot.job"`)}
	}
	return nil
}

func (_c *SlotCreate) sqlSave(ctx context.Context) (*Slot, error) {
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
			return nil, fmt.Errorf("unexpected Slot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SlotCreate) createSpec() (*Slot, *sqlgraph.CreateSpec) {
	var (
		_node = &Slot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slot.Table, sqlgraph.NewFieldSpec(slot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.InterviewDate(); ok {
		_spec.SetField(slot.FieldInterviewDate, field.TypeString, value)
		_node.InterviewDate = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(slot.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(slot.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(slot.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.MaxCandidates(); ok {
		_spec.SetField(slot.FieldMaxCandidates, field.TypeInt, value)
		_node.MaxCandidates = value
	}
	if value, ok := _c.mutation.CurrentBookings(); ok {
		_spec.SetField(slot.FieldCurrentBookings, field.TypeInt, value)
		_node.CurrentBookings = value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(slot.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(slot.FieldRecurrence, field.TypeString, value)
		_node.Recurrence = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slot.JobTable,
			Columns: []string{slot.JobColumn},
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Slot.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlotUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlotCreate) OnConflict(opts ...sql.ConflictOption) *SlotUpsertOne {
	_c.conflict = opts
	return &SlotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Slot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlotCreate) OnConflictColumns(columns ...string) *SlotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlotUpsertOne{
		create: _c,
	}
}

type (
	// SlotUpsertOne is the builder for "upsert"-ing
	//  one Slot node.
	SlotUpsertOne struct {
		create *SlotCreate
	}

	// SlotUpsert is the "OnConflict" setter.
	SlotUpsert struct {
		*sql.UpdateSet
	}
)

// SetInterviewDate sets the "interview_date" field.
func (u *SlotUpsert) SetInterviewDate(v string) *SlotUpsert {
	u.Set(slot.FieldInterviewDate, v)
	return u
}

// UpdateInterviewDate sets the "interview_date" field to the value that was provided on create.
func (u *SlotUpsert) UpdateInterviewDate() *SlotUpsert {
	u.SetExcluded(slot.FieldInterviewDate)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *SlotUpsert) SetStartTime(v string) *SlotUpsert {
	u.Set(slot.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SlotUpsert) UpdateStartTime() *SlotUpsert {
	u.SetExcluded(slot.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *SlotUpsert) SetEndTime(v string) *SlotUpsert {
	u.Set(slot.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SlotUpsert) UpdateEndTime() *SlotUpsert {
	u.SetExcluded(slot.FieldEndTime)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SlotUpsert) SetDurationMinutes(v int) *SlotUpsert {
	u.Set(slot.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SlotUpsert) UpdateDurationMinutes() *SlotUpsert {
	u.SetExcluded(slot.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SlotUpsert) AddDurationMinutes(v int) *SlotUpsert {
	u.Add(slot.FieldDurationMinutes, v)
	return u
}

// SetMaxCandidates sets the "max_candidates" field.
func (u *SlotUpsert) SetMaxCandidates(v int) *SlotUpsert {
	u.Set(slot.FieldMaxCandidates, v)
	return u
}

// UpdateMaxCandidates sets the "max_candidates" field to the value that was provided on create.
func (u *SlotUpsert) UpdateMaxCandidates() *SlotUpsert {
	u.SetExcluded(slot.FieldMaxCandidates)
	return u
}

// AddMaxCandidates adds v to the "max_candidates" field.
func (u *SlotUpsert) AddMaxCandidates(v int) *SlotUpsert {
	u.Add(slot.FieldMaxCandidates, v)
	return u
}

// SetCurrentBookings sets the "current_bookings" field.
func (u *SlotUpsert) SetCurrentBookings(v int) *SlotUpsert {
	u.Set(slot.FieldCurrentBookings, v)
	return u
}

// UpdateCurrentBookings sets the "current_bookings" field to the value that was provided on create.
func (u *SlotUpsert) UpdateCurrentBookings() *SlotUpsert {
	u.SetExcluded(slot.FieldCurrentBookings)
	return u
}

// AddCurrentBookings adds v to the "current_bookings" field.
func (u *SlotUpsert) AddCurrentBookings(v int) *SlotUpsert {
	u.Add(slot.FieldCurrentBookings, v)
	return u
}

// SetCancelled sets the "cancelled" field.
func (u *SlotUpsert) SetCancelled(v bool) *SlotUpsert {
	u.Set(slot.FieldCancelled, v)
	return u
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *SlotUpsert) UpdateCancelled() *SlotUpsert {
	u.SetExcluded(slot.FieldCancelled)
	return u
}

// SetRecurrence sets the "recurrence" field.
func (u *SlotUpsert) SetRecurrence(v string) *SlotUpsert {
	u.Set(slot.FieldRecurrence, v)
	return u
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *SlotUpsert) UpdateRecurrence() *SlotUpsert {
	u.SetExcluded(slot.FieldRecurrence)
	return u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *SlotUpsert) ClearRecurrence() *SlotUpsert {
	u.SetNull(slot.FieldRecurrence)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotUpsert) SetUpdatedAt(v time.Time) *SlotUpsert {
	u.Set(slot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotUpsert) UpdateUpdatedAt() *SlotUpsert {
	u.SetExcluded(slot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Slot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SlotUpsertOne) UpdateNewValues() *SlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(slot.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(slot.FieldJobID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slot.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Slot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlotUpsertOne) Ignore() *SlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlotUpsertOne) DoNothing() *SlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlotCreate.OnConflict
// documentation for more info.
func (u *SlotUpsertOne) Update(set func(*SlotUpsert)) *SlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlotUpsert{UpdateSet: update})
	}))
	return u
}

// SetInterviewDate sets the "interview_date" field.
func (u *SlotUpsertOne) SetInterviewDate(v string) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetInterviewDate(v)
	})
}

// UpdateInterviewDate sets the "interview_date" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateInterviewDate() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateInterviewDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *SlotUpsertOne) SetStartTime(v string) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateStartTime() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *SlotUpsertOne) SetEndTime(v string) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateEndTime() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateEndTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SlotUpsertOne) SetDurationMinutes(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SlotUpsertOne) AddDurationMinutes(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateDurationMinutes() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetMaxCandidates sets the "max_candidates" field.
func (u *SlotUpsertOne) SetMaxCandidates(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetMaxCandidates(v)
	})
}

// AddMaxCandidates adds v to the "max_candidates" field.
func (u *SlotUpsertOne) AddMaxCandidates(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.AddMaxCandidates(v)
	})
}

// UpdateMaxCandidates sets the "max_candidates" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateMaxCandidates() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateMaxCandidates()
	})
}

// SetCurrentBookings sets the "current_bookings" field.
func (u *SlotUpsertOne) SetCurrentBookings(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetCurrentBookings(v)
	})
}

// AddCurrentBookings adds v to the "current_bookings" field.
func (u *SlotUpsertOne) AddCurrentBookings(v int) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.AddCurrentBookings(v)
	})
}

// UpdateCurrentBookings sets the "current_bookings" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateCurrentBookings() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateCurrentBookings()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *SlotUpsertOne) SetCancelled(v bool) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateCancelled() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateCancelled()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *SlotUpsertOne) SetRecurrence(v string) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateRecurrence() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *SlotUpsertOne) ClearRecurrence() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.ClearRecurrence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotUpsertOne) SetUpdatedAt(v time.Time) *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotUpsertOne) UpdateUpdatedAt() *SlotUpsertOne {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SlotUpsertOne.ID is not supported by MySQL driver. Use SlotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlotCreateBulk is the builder for creating many Slot entities in bulk.
type SlotCreateBulk struct {
	config
	err      error
	builders []*SlotCreate
	conflict []sql.ConflictOption
}

// Save creates the Slot entities in the database.
func (_c *SlotCreateBulk) Save(ctx context.Context) ([]*Slot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Slot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlotMutation)
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
func (_c *SlotCreateBulk) SaveX(ctx context.Context) []*Slot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Slot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlotUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlotCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlotUpsertBulk {
	_c.conflict = opts
	return &SlotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Slot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlotCreateBulk) OnConflictColumns(columns ...string) *SlotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlotUpsertBulk{
		create: _c,
	}
}

// SlotUpsertBulk is the builder for "upsert"-ing
// a bulk of Slot nodes.
type SlotUpsertBulk struct {
	create *SlotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Slot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SlotUpsertBulk) UpdateNewValues() *SlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(slot.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(slot.FieldJobID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slot.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Slot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlotUpsertBulk) Ignore() *SlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlotUpsertBulk) DoNothing() *SlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlotCreateBulk.OnConflict
// documentation for more info.
func (u *SlotUpsertBulk) Update(set func(*SlotUpsert)) *SlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlotUpsert{UpdateSet: update})
	}))
	return u
}

// SetInterviewDate sets the "interview_date" field.
func (u *SlotUpsertBulk) SetInterviewDate(v string) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetInterviewDate(v)
	})
}

// UpdateInterviewDate sets the "interview_date" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateInterviewDate() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateInterviewDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *SlotUpsertBulk) SetStartTime(v string) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateStartTime() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *SlotUpsertBulk) SetEndTime(v string) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateEndTime() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateEndTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SlotUpsertBulk) SetDurationMinutes(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SlotUpsertBulk) AddDurationMinutes(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateDurationMinutes() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetMaxCandidates sets the "max_candidates" field.
func (u *SlotUpsertBulk) SetMaxCandidates(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetMaxCandidates(v)
	})
}

// AddMaxCandidates adds v to the "max_candidates" field.
func (u *SlotUpsertBulk) AddMaxCandidates(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.AddMaxCandidates(v)
	})
}

// UpdateMaxCandidates sets the "max_candidates" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateMaxCandidates() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateMaxCandidates()
	})
}

// SetCurrentBookings sets the "current_bookings" field.
func (u *SlotUpsertBulk) SetCurrentBookings(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetCurrentBookings(v)
	})
}

// AddCurrentBookings adds v to the "current_bookings" field.
func (u *SlotUpsertBulk) AddCurrentBookings(v int) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.AddCurrentBookings(v)
	})
}

// UpdateCurrentBookings sets the "current_bookings" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateCurrentBookings() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateCurrentBookings()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *SlotUpsertBulk) SetCancelled(v bool) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateCancelled() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateCancelled()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *SlotUpsertBulk) SetRecurrence(v string) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateRecurrence() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *SlotUpsertBulk) ClearRecurrence() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.ClearRecurrence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotUpsertBulk) SetUpdatedAt(v time.Time) *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotUpsertBulk) UpdateUpdatedAt() *SlotUpsertBulk {
	return u.Update(func(s *SlotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SlotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
