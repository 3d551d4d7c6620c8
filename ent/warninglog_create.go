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
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/warninglog"
)

// WarningLogCreate is the builder for creating a WarningLog entity.
type WarningLogCreate struct {
	config
	mutation *WarningLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *WarningLogCreate) SetSessionID(v string) *WarningLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetWarningType sets the "warning_type" field.
func (_c *WarningLogCreate) SetWarningType(v warninglog.WarningType) *WarningLogCreate {
	_c.mutation.SetWarningType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *WarningLogCreate) SetMessage(v string) *WarningLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *WarningLogCreate) SetNillableMessage(v *string) *WarningLogCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetEvidencePath sets the "evidence_path" field.
func (_c *WarningLogCreate) SetEvidencePath(v string) *WarningLogCreate {
	_c.mutation.SetEvidencePath(v)
	return _c
}

// SetNillableEvidencePath sets the "evidence_path" field if the given value is not nil.
func (_c *WarningLogCreate) SetNillableEvidencePath(v *string) *WarningLogCreate {
	if v != nil {
		_c.SetEvidencePath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WarningLogCreate) SetCreatedAt(v time.Time) *WarningLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WarningLogCreate) SetNillableCreatedAt(v *time.Time) *WarningLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WarningLogCreate) SetID(v string) *WarningLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *WarningLogCreate) SetSession(v *Session) *WarningLogCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the WarningLogMutation object of the builder.
func (_c *WarningLogCreate) Mutation() *WarningLogMutation {
	return _c.mutation
}

// Save creates the WarningLog in the database.
func (_c *WarningLogCreate) Save(ctx context.Context) (*WarningLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WarningLogCreate) SaveX(ctx context.Context) *WarningLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarningLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarningLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WarningLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := warninglog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WarningLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "WarningLog.session_id"`)}
	}
	if _, ok := _c.mutation.WarningType(); !ok {
		return &ValidationError{Name: "warning_type", err: errors.New(`ent: missing required field "WarningLog.warning_type"`)}
	}
	if v, ok := _c.mutation.WarningType(); ok {
		if err := warninglog.WarningTypeValidator(v); err != nil {
			return &ValidationError{Name: "warning_type", err: fmt.Errorf(`ent: validator failed for field "WarningLog.warning_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WarningLog.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "WarningLog.session"`)}
	}
	return nil
}

func (_c *WarningLogCreate) sqlSave(ctx context.Context) (*WarningLog, error) {
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
			return nil, fmt.Errorf("unexpected WarningLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WarningLogCreate) createSpec() (*WarningLog, *sqlgraph.CreateSpec) {
	var (
		_node = &WarningLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(warninglog.Table, sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WarningType(); ok {
		_spec.SetField(warninglog.FieldWarningType, field.TypeEnum, value)
		_node.WarningType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(warninglog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.EvidencePath(); ok {
		_spec.SetField(warninglog.FieldEvidencePath, field.TypeString, value)
		_node.EvidencePath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(warninglog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   warninglog.SessionTable,
			Columns: []string{warninglog.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WarningLog.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WarningLogUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *WarningLogCreate) OnConflict(opts ...sql.ConflictOption) *WarningLogUpsertOne {
	_c.conflict = opts
	return &WarningLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WarningLogCreate) OnConflictColumns(columns ...string) *WarningLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WarningLogUpsertOne{
		create: _c,
	}
}

type (
	// WarningLogUpsertOne is the builder for "upsert"-ing
	//  one WarningLog node.
	WarningLogUpsertOne struct {
		create *WarningLogCreate
	}

	// WarningLogUpsert is the "OnConflict" setter.
	WarningLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(warninglog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WarningLogUpsertOne) UpdateNewValues() *WarningLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(warninglog.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(warninglog.FieldSessionID)
		}
		if _, exists := u.create.mutation.WarningType(); exists {
			s.SetIgnore(warninglog.FieldWarningType)
		}
		if _, exists := u.create.mutation.Message(); exists {
			s.SetIgnore(warninglog.FieldMessage)
		}
		if _, exists := u.create.mutation.EvidencePath(); exists {
			s.SetIgnore(warninglog.FieldEvidencePath)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(warninglog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WarningLogUpsertOne) Ignore() *WarningLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WarningLogUpsertOne) DoNothing() *WarningLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WarningLogCreate.OnConflict
// documentation for more info.
func (u *WarningLogUpsertOne) Update(set func(*WarningLogUpsert)) *WarningLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WarningLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *WarningLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WarningLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WarningLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WarningLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WarningLogUpsertOne.ID is not supported by MySQL driver. Use WarningLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WarningLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WarningLogCreateBulk is the builder for creating many WarningLog entities in bulk.
type WarningLogCreateBulk struct {
	config
	err      error
	builders []*WarningLogCreate
	conflict []sql.ConflictOption
}

// Save creates the WarningLog entities in the database.
func (_c *WarningLogCreateBulk) Save(ctx context.Context) ([]*WarningLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WarningLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WarningLogMutation)
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
func (_c *WarningLogCreateBulk) SaveX(ctx context.Context) []*WarningLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarningLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarningLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WarningLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WarningLogUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *WarningLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *WarningLogUpsertBulk {
	_c.conflict = opts
	return &WarningLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WarningLogCreateBulk) OnConflictColumns(columns ...string) *WarningLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WarningLogUpsertBulk{
		create: _c,
	}
}

// WarningLogUpsertBulk is the builder for "upsert"-ing
// a bulk of WarningLog nodes.
type WarningLogUpsertBulk struct {
	create *WarningLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(warninglog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WarningLogUpsertBulk) UpdateNewValues() *WarningLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(warninglog.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(warninglog.FieldSessionID)
			}
			if _, exists := b.mutation.WarningType(); exists {
				s.SetIgnore(warninglog.FieldWarningType)
			}
			if _, exists := b.mutation.Message(); exists {
				s.SetIgnore(warninglog.FieldMessage)
			}
			if _, exists := b.mutation.EvidencePath(); exists {
				s.SetIgnore(warninglog.FieldEvidencePath)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(warninglog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WarningLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WarningLogUpsertBulk) Ignore() *WarningLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WarningLogUpsertBulk) DoNothing() *WarningLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WarningLogCreateBulk.OnConflict
// documentation for more info.
func (u *WarningLogUpsertBulk) Update(set func(*WarningLogUpsert)) *WarningLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WarningLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *WarningLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WarningLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WarningLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WarningLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
