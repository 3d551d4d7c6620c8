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
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/slot"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInterviewID sets the "interview_id" field.
func (_c *ScheduleCreate) SetInterviewID(v string) *ScheduleCreate {
	_c.mutation.SetInterviewID(v)
	return _c
}

// SetSlotID sets the "slot_id" field.
func (_c *ScheduleCreate) SetSlotID(v string) *ScheduleCreate {
	_c.mutation.SetSlotID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduleCreate) SetStatus(v schedule.Status) *ScheduleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableStatus(v *schedule.Status) *ScheduleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBookingNote sets the "booking_note" field.
func (_c *ScheduleCreate) SetBookingNote(v string) *ScheduleCreate {
	_c.mutation.SetBookingNote(v)
	return _c
}

// SetNillableBookingNote sets the "booking_note" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableBookingNote(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetBookingNote(*v)
	}
	return _c
}

// SetBookedAt sets the "booked_at" field.
func (_c *ScheduleCreate) SetBookedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetBookedAt(v)
	return _c
}

// SetNillableBookedAt sets the "booked_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableBookedAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetBookedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *ScheduleCreate) SetCancelledAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableCancelledAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleCreate) SetID(v string) *ScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInterview sets the "interview" edge to the Interview entity.
func (_c *ScheduleCreate) SetInterview(v *Interview) *ScheduleCreate {
	return _c.SetInterviewID(v.ID)
}

// SetSlot sets the "slot" edge to the Slot entity.
func (_c *ScheduleCreate) SetSlot(v *Slot) *ScheduleCreate {
	return _c.SetSlotID(v.ID)
}

// Mutation returns the ScheduleMutation object of the builder.
func (_c *ScheduleCreate) Mutation() *ScheduleMutation {
	return _c.mutation
}

// Save creates the Schedule in the database.
func (_c *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := schedule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BookedAt(); !ok {
		v := schedule.DefaultBookedAt()
		_c.mutation.SetBookedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleCreate) check() error {
	if _, ok := _c.mutation.InterviewID(); !ok {
		return &ValidationError{Name: "interview_id", err: errors.New(`ent: missing required field "Schedule.interview_id"`)}
	}
	if _, ok := _c.mutation.SlotID(); !ok {
		return &ValidationError{Name: "slot_id", err: errors.New(`ent: missing required field "Schedule.slot_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Schedule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BookedAt(); !ok {
		return &ValidationError{Name: "booked_at", err: errors.New(`ent: missing required field "Schedule.booked_at"`)}
	}
	if len(_c.mutation.InterviewIDs()) == 0 {
		return &ValidationError{Name: "interview", err: errors.New(`ent: missing required edge "Schedule.interview"`)}
	}
	if len(_c.mutation.SlotIDs()) == 0 {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required edge "Schedule.slot"`)}
	}
	return nil
}

func (_c *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
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
			return nil, fmt.Errorf("unexpected Schedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BookingNote(); ok {
		_spec.SetField(schedule.FieldBookingNote, field.TypeString, value)
		_node.BookingNote = value
	}
	if value, ok := _c.mutation.BookedAt(); ok {
		_spec.SetField(schedule.FieldBookedAt, field.TypeTime, value)
		_node.BookedAt = value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(schedule.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if nodes := _c.mutation.InterviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schedule.InterviewTable,
			Columns: []string{schedule.InterviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InterviewID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SlotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schedule.SlotTable,
			Columns: []string{schedule.SlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SlotID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.Create().
//		SetInterviewID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetInterviewID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertOne {
	_c.conflict = opts
	return &ScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflictColumns(columns ...string) *ScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ScheduleUpsertOne is the builder for "upsert"-ing
	//  one Schedule node.
	ScheduleUpsertOne struct {
		create *ScheduleCreate
	}

	// ScheduleUpsert is the "OnConflict" setter.
	ScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *ScheduleUpsert) SetStatus(v schedule.Status) *ScheduleUpsert {
	u.Set(schedule.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateStatus() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldStatus)
	return u
}

// SetBookingNote sets the "booking_note" field.
func (u *ScheduleUpsert) SetBookingNote(v string) *ScheduleUpsert {
	u.Set(schedule.FieldBookingNote, v)
	return u
}

// UpdateBookingNote sets the "booking_note" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateBookingNote() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldBookingNote)
	return u
}

// ClearBookingNote clears the value of the "booking_note" field.
func (u *ScheduleUpsert) ClearBookingNote() *ScheduleUpsert {
	u.SetNull(schedule.FieldBookingNote)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ScheduleUpsert) SetCancelledAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateCancelledAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ScheduleUpsert) ClearCancelledAt() *ScheduleUpsert {
	u.SetNull(schedule.FieldCancelledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertOne) UpdateNewValues() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(schedule.FieldID)
		}
		if _, exists := u.create.mutation.InterviewID(); exists {
			s.SetIgnore(schedule.FieldInterviewID)
		}
		if _, exists := u.create.mutation.SlotID(); exists {
			s.SetIgnore(schedule.FieldSlotID)
		}
		if _, exists := u.create.mutation.BookedAt(); exists {
			s.SetIgnore(schedule.FieldBookedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduleUpsertOne) Ignore() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertOne) DoNothing() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreate.OnConflict
// documentation for more info.
func (u *ScheduleUpsertOne) Update(set func(*ScheduleUpsert)) *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertOne) SetStatus(v schedule.Status) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateStatus() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetBookingNote sets the "booking_note" field.
func (u *ScheduleUpsertOne) SetBookingNote(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetBookingNote(v)
	})
}

// UpdateBookingNote sets the "booking_note" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateBookingNote() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateBookingNote()
	})
}

// ClearBookingNote clears the value of the "booking_note" field.
func (u *ScheduleUpsertOne) ClearBookingNote() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearBookingNote()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ScheduleUpsertOne) SetCancelledAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateCancelledAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ScheduleUpsertOne) ClearCancelledAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduleUpsertOne.ID is not supported by MySQL driver. Use ScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the Schedule entities in the database.
func (_c *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Schedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
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
func (_c *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetInterviewID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertBulk {
	_c.conflict = opts
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflictColumns(columns ...string) *ScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// ScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of Schedule nodes.
type ScheduleUpsertBulk struct {
	create *ScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) UpdateNewValues() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(schedule.FieldID)
			}
			if _, exists := b.mutation.InterviewID(); exists {
				s.SetIgnore(schedule.FieldInterviewID)
			}
			if _, exists := b.mutation.SlotID(); exists {
				s.SetIgnore(schedule.FieldSlotID)
			}
			if _, exists := b.mutation.BookedAt(); exists {
				s.SetIgnore(schedule.FieldBookedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) Ignore() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertBulk) DoNothing() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduleUpsertBulk) Update(set func(*ScheduleUpsert)) *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertBulk) SetStatus(v schedule.Status) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateStatus() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetBookingNote sets the "booking_note" field.
func (u *ScheduleUpsertBulk) SetBookingNote(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetBookingNote(v)
	})
}

// UpdateBookingNote sets the "booking_note" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateBookingNote() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateBookingNote()
	})
}

// ClearBookingNote clears the value of the "booking_note" field.
func (u *ScheduleUpsertBulk) ClearBookingNote() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearBookingNote()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ScheduleUpsertBulk) SetCancelledAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateCancelledAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ScheduleUpsertBulk) ClearCancelledAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
