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
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/interview"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFullName sets the "full_name" field.
func (_c *CandidateCreate) SetFullName(v string) *CandidateCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CandidateCreate) SetEmail(v string) *CandidateCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CandidateCreate) SetPhone(v string) *CandidateCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CandidateCreate) SetNillablePhone(v *string) *CandidateCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetResumeText sets the "resume_text" field.
func (_c *CandidateCreate) SetResumeText(v string) *CandidateCreate {
	_c.mutation.SetResumeText(v)
	return _c
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableResumeText(v *string) *CandidateCreate {
	if v != nil {
		_c.SetResumeText(*v)
	}
	return _c
}

// SetResumePath sets the "resume_path" field.
func (_c *CandidateCreate) SetResumePath(v string) *CandidateCreate {
	_c.mutation.SetResumePath(v)
	return _c
}

// SetNillableResumePath sets the "resume_path" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableResumePath(v *string) *CandidateCreate {
	if v != nil {
		_c.SetResumePath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CandidateCreate) SetUpdatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableUpdatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CandidateCreate) SetID(v string) *CandidateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_c *CandidateCreate) AddInterviewIDs(ids ...string) *CandidateCreate {
	_c.mutation.AddInterviewIDs(ids...)
	return _c
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_c *CandidateCreate) AddInterviews(v ...*Interview) *CandidateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInterviewIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := candidate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Candidate.full_name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Candidate.email"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Candidate.updated_at"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
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
			return nil, fmt.Errorf("unexpected Candidate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
		_node.ResumeText = &value
	}
	if value, ok := _c.mutation.ResumePath(); ok {
		_spec.SetField(candidate.FieldResumePath, field.TypeString, value)
		_node.ResumePath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InterviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.Create().
//		SetFullName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetFullName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertOne {
	_c.conflict = opts
	return &CandidateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflictColumns(columns ...string) *CandidateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertOne{
		create: _c,
	}
}

type (
	// CandidateUpsertOne is the builder for "upsert"-ing
	//  one Candidate node.
	CandidateUpsertOne struct {
		create *CandidateCreate
	}

	// CandidateUpsert is the "OnConflict" setter.
	CandidateUpsert struct {
		*sql.UpdateSet
	}
)

// SetFullName sets the "full_name" field.
func (u *CandidateUpsert) SetFullName(v string) *CandidateUpsert {
	u.Set(candidate.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateFullName() *CandidateUpsert {
	u.SetExcluded(candidate.FieldFullName)
	return u
}

// SetEmail sets the "email" field.
func (u *CandidateUpsert) SetEmail(v string) *CandidateUpsert {
	u.Set(candidate.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateEmail() *CandidateUpsert {
	u.SetExcluded(candidate.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsert) SetPhone(v string) *CandidateUpsert {
	u.Set(candidate.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsert) UpdatePhone() *CandidateUpsert {
	u.SetExcluded(candidate.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsert) ClearPhone() *CandidateUpsert {
	u.SetNull(candidate.FieldPhone)
	return u
}

// SetResumeText sets the "resume_text" field.
func (u *CandidateUpsert) SetResumeText(v string) *CandidateUpsert {
	u.Set(candidate.FieldResumeText, v)
	return u
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateResumeText() *CandidateUpsert {
	u.SetExcluded(candidate.FieldResumeText)
	return u
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *CandidateUpsert) ClearResumeText() *CandidateUpsert {
	u.SetNull(candidate.FieldResumeText)
	return u
}

// SetResumePath sets the "resume_path" field.
func (u *CandidateUpsert) SetResumePath(v string) *CandidateUpsert {
	u.Set(candidate.FieldResumePath, v)
	return u
}

// UpdateResumePath sets the "resume_path" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateResumePath() *CandidateUpsert {
	u.SetExcluded(candidate.FieldResumePath)
	return u
}

// ClearResumePath clears the value of the "resume_path" field.
func (u *CandidateUpsert) ClearResumePath() *CandidateUpsert {
	u.SetNull(candidate.FieldResumePath)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsert) SetUpdatedAt(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateUpdatedAt() *CandidateUpsert {
	u.SetExcluded(candidate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertOne) UpdateNewValues() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(candidate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(candidate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateUpsertOne) Ignore() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertOne) DoNothing() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreate.OnConflict
// documentation for more info.
func (u *CandidateUpsertOne) Update(set func(*CandidateUpsert)) *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetFullName sets the "full_name" field.
func (u *CandidateUpsertOne) SetFullName(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateFullName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFullName()
	})
}

// SetEmail sets the "email" field.
func (u *CandidateUpsertOne) SetEmail(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateEmail() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsertOne) SetPhone(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdatePhone() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsertOne) ClearPhone() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearPhone()
	})
}

// SetResumeText sets the "resume_text" field.
func (u *CandidateUpsertOne) SetResumeText(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetResumeText(v)
	})
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateResumeText() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateResumeText()
	})
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *CandidateUpsertOne) ClearResumeText() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearResumeText()
	})
}

// SetResumePath sets the "resume_path" field.
func (u *CandidateUpsertOne) SetResumePath(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetResumePath(v)
	})
}

// UpdateResumePath sets the "resume_path" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateResumePath() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateResumePath()
	})
}

// ClearResumePath clears the value of the "resume_path" field.
func (u *CandidateUpsertOne) ClearResumePath() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearResumePath()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertOne) SetUpdatedAt(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateUpdatedAt() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CandidateUpsertOne.ID is not supported by MySQL driver. Use CandidateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
	conflict []sql.ConflictOption
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
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
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetFullName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertBulk {
	_c.conflict = opts
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflictColumns(columns ...string) *CandidateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// CandidateUpsertBulk is the builder for "upsert"-ing
// a bulk of Candidate nodes.
type CandidateUpsertBulk struct {
	create *CandidateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertBulk) UpdateNewValues() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(candidate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(candidate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateUpsertBulk) Ignore() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertBulk) DoNothing() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateUpsertBulk) Update(set func(*CandidateUpsert)) *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetFullName sets the "full_name" field.
func (u *CandidateUpsertBulk) SetFullName(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateFullName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFullName()
	})
}

// SetEmail sets the "email" field.
func (u *CandidateUpsertBulk) SetEmail(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateEmail() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsertBulk) SetPhone(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdatePhone() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsertBulk) ClearPhone() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearPhone()
	})
}

// SetResumeText sets the "resume_text" field.
func (u *CandidateUpsertBulk) SetResumeText(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetResumeText(v)
	})
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateResumeText() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateResumeText()
	})
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *CandidateUpsertBulk) ClearResumeText() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearResumeText()
	})
}

// SetResumePath sets the "resume_path" field.
func (u *CandidateUpsertBulk) SetResumePath(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetResumePath(v)
	})
}

// UpdateResumePath sets the "resume_path" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateResumePath() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateResumePath()
	})
}

// ClearResumePath clears the value of the "resume_path" field.
func (u *CandidateUpsertBulk) ClearResumePath() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearResumePath()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertBulk) SetUpdatedAt(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateUpdatedAt() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
