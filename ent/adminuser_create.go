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
	"github.com/hireloop/hireloop/ent/adminuser"
)

// AdminUserCreate is the builder for creating a AdminUser entity.
type AdminUserCreate struct {
	config
	mutation *AdminUserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUsername sets the "username" field.
func (_c *AdminUserCreate) SetUsername(v string) *AdminUserCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *AdminUserCreate) SetEmail(v string) *AdminUserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *AdminUserCreate) SetPasswordHash(v string) *AdminUserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetIsSuperuser sets the "is_superuser" field.
func (_c *AdminUserCreate) SetIsSuperuser(v bool) *AdminUserCreate {
	_c.mutation.SetIsSuperuser(v)
	return _c
}

// SetNillableIsSuperuser sets the "is_superuser" field if the given value is not nil.
func (_c *AdminUserCreate) SetNillableIsSuperuser(v *bool) *AdminUserCreate {
	if v != nil {
		_c.SetIsSuperuser(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminUserCreate) SetCreatedAt(v time.Time) *AdminUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminUserCreate) SetNillableCreatedAt(v *time.Time) *AdminUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdminUserCreate) SetUpdatedAt(v time.Time) *AdminUserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdminUserCreate) SetNillableUpdatedAt(v *time.Time) *AdminUserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdminUserCreate) SetID(v string) *AdminUserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AdminUserMutation object of the builder.
func (_c *AdminUserCreate) Mutation() *AdminUserMutation {
	return _c.mutation
}

// Save creates the AdminUser in the database.
func (_c *AdminUserCreate) Save(ctx context.Context) (*AdminUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminUserCreate) SaveX(ctx context.Context) *AdminUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminUserCreate) defaults() {
	if _, ok := _c.mutation.IsSuperuser(); !ok {
		v := adminuser.DefaultIsSuperuser
		_c.mutation.SetIsSuperuser(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminuser.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adminuser.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminUserCreate) check() error {
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "AdminUser.username"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "AdminUser.email"`)}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "AdminUser.password_hash"`)}
	}
	if _, ok := _c.mutation.IsSuperuser(); !ok {
		return &ValidationError{Name: "is_superuser", err: errors.New(`ent: missing required field "AdminUser.is_superuser"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminUser.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdminUser.updated_at"`)}
	}
	return nil
}

func (_c *AdminUserCreate) sqlSave(ctx context.Context) (*AdminUser, error) {
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
			return nil, fmt.Errorf("unexpected AdminUser.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminUserCreate) createSpec() (*AdminUser, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminuser.Table, sqlgraph.NewFieldSpec(adminuser.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(adminuser.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(adminuser.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(adminuser.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.IsSuperuser(); ok {
		_spec.SetField(adminuser.FieldIsSuperuser, field.TypeBool, value)
		_node.IsSuperuser = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminuser.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adminuser.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminUser.Create().
//		SetUsername(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminUserUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminUserCreate) OnConflict(opts ...sql.ConflictOption) *AdminUserUpsertOne {
	_c.conflict = opts
	return &AdminUserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminUserCreate) OnConflictColumns(columns ...string) *AdminUserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminUserUpsertOne{
		create: _c,
	}
}

type (
	// AdminUserUpsertOne is the builder for "upsert"-ing
	//  one AdminUser node.
	AdminUserUpsertOne struct {
		create *AdminUserCreate
	}

	// AdminUserUpsert is the "OnConflict" setter.
	AdminUserUpsert struct {
		*sql.UpdateSet
	}
)

// SetUsername sets the "username" field.
func (u *AdminUserUpsert) SetUsername(v string) *AdminUserUpsert {
	u.Set(adminuser.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *AdminUserUpsert) UpdateUsername() *AdminUserUpsert {
	u.SetExcluded(adminuser.FieldUsername)
	return u
}

// SetEmail sets the "email" field.
func (u *AdminUserUpsert) SetEmail(v string) *AdminUserUpsert {
	u.Set(adminuser.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AdminUserUpsert) UpdateEmail() *AdminUserUpsert {
	u.SetExcluded(adminuser.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *AdminUserUpsert) SetPasswordHash(v string) *AdminUserUpsert {
	u.Set(adminuser.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AdminUserUpsert) UpdatePasswordHash() *AdminUserUpsert {
	u.SetExcluded(adminuser.FieldPasswordHash)
	return u
}

// SetIsSuperuser sets the "is_superuser" field.
func (u *AdminUserUpsert) SetIsSuperuser(v bool) *AdminUserUpsert {
	u.Set(adminuser.FieldIsSuperuser, v)
	return u
}

// UpdateIsSuperuser sets the "is_superuser" field to the value that was provided on create.
func (u *AdminUserUpsert) UpdateIsSuperuser() *AdminUserUpsert {
	u.SetExcluded(adminuser.FieldIsSuperuser)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminUserUpsert) SetUpdatedAt(v time.Time) *AdminUserUpsert {
	u.Set(adminuser.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminUserUpsert) UpdateUpdatedAt() *AdminUserUpsert {
	u.SetExcluded(adminuser.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminuser.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminUserUpsertOne) UpdateNewValues() *AdminUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(adminuser.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(adminuser.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdminUserUpsertOne) Ignore() *AdminUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminUserUpsertOne) DoNothing() *AdminUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminUserCreate.OnConflict
// documentation for more info.
func (u *AdminUserUpsertOne) Update(set func(*AdminUserUpsert)) *AdminUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsername sets the "username" field.
func (u *AdminUserUpsertOne) SetUsername(v string) *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *AdminUserUpsertOne) UpdateUsername() *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateUsername()
	})
}

// SetEmail sets the "email" field.
func (u *AdminUserUpsertOne) SetEmail(v string) *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AdminUserUpsertOne) UpdateEmail() *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *AdminUserUpsertOne) SetPasswordHash(v string) *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AdminUserUpsertOne) UpdatePasswordHash() *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetIsSuperuser sets the "is_superuser" field.
func (u *AdminUserUpsertOne) SetIsSuperuser(v bool) *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetIsSuperuser(v)
	})
}

// UpdateIsSuperuser sets the "is_superuser" field to the value that was provided on create.
func (u *AdminUserUpsertOne) UpdateIsSuperuser() *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateIsSuperuser()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminUserUpsertOne) SetUpdatedAt(v time.Time) *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminUserUpsertOne) UpdateUpdatedAt() *AdminUserUpsertOne {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AdminUserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminUserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminUserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdminUserUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AdminUserUpsertOne.ID is not supported by MySQL driver. Use AdminUserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdminUserUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdminUserCreateBulk is the builder for creating many AdminUser entities in bulk.
type AdminUserCreateBulk struct {
	config
	err      error
	builders []*AdminUserCreate
	conflict []sql.ConflictOption
}

// Save creates the AdminUser entities in the database.
func (_c *AdminUserCreateBulk) Save(ctx context.Context) ([]*AdminUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminUserMutation)
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
func (_c *AdminUserCreateBulk) SaveX(ctx context.Context) []*AdminUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminUser.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminUserUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminUserCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdminUserUpsertBulk {
	_c.conflict = opts
	return &AdminUserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminUserCreateBulk) OnConflictColumns(columns ...string) *AdminUserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminUserUpsertBulk{
		create: _c,
	}
}

// AdminUserUpsertBulk is the builder for "upsert"-ing
// a bulk of AdminUser nodes.
type AdminUserUpsertBulk struct {
	create *AdminUserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminuser.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminUserUpsertBulk) UpdateNewValues() *AdminUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(adminuser.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(adminuser.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminUser.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdminUserUpsertBulk) Ignore() *AdminUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminUserUpsertBulk) DoNothing() *AdminUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminUserCreateBulk.OnConflict
// documentation for more info.
func (u *AdminUserUpsertBulk) Update(set func(*AdminUserUpsert)) *AdminUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsername sets the "username" field.
func (u *AdminUserUpsertBulk) SetUsername(v string) *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *AdminUserUpsertBulk) UpdateUsername() *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateUsername()
	})
}

// SetEmail sets the "email" field.
func (u *AdminUserUpsertBulk) SetEmail(v string) *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AdminUserUpsertBulk) UpdateEmail() *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *AdminUserUpsertBulk) SetPasswordHash(v string) *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AdminUserUpsertBulk) UpdatePasswordHash() *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetIsSuperuser sets the "is_superuser" field.
func (u *AdminUserUpsertBulk) SetIsSuperuser(v bool) *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetIsSuperuser(v)
	})
}

// UpdateIsSuperuser sets the "is_superuser" field to the value that was provided on create.
func (u *AdminUserUpsertBulk) UpdateIsSuperuser() *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateIsSuperuser()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminUserUpsertBulk) SetUpdatedAt(v time.Time) *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminUserUpsertBulk) UpdateUpdatedAt() *AdminUserUpsertBulk {
	return u.Update(func(s *AdminUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AdminUserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdminUserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminUserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminUserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
