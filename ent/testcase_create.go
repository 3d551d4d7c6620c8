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
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/testcase"
)

// TestCaseCreate is the builder for creating a TestCase entity.
type TestCaseCreate struct {
	config
	mutation *TestCaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *TestCaseCreate) SetQuestionID(v string) *TestCaseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *TestCaseCreate) SetInput(v string) *TestCaseCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetExpectedOutput sets the "expected_output" field.
func (_c *TestCaseCreate) SetExpectedOutput(v string) *TestCaseCreate {
	_c.mutation.SetExpectedOutput(v)
	return _c
}

// SetIsHidden sets the "is_hidden" field.
func (_c *TestCaseCreate) SetIsHidden(v bool) *TestCaseCreate {
	_c.mutation.SetIsHidden(v)
	return _c
}

// SetNillableIsHidden sets the "is_hidden" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableIsHidden(v *bool) *TestCaseCreate {
	if v != nil {
		_c.SetIsHidden(*v)
	}
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *TestCaseCreate) SetOrdinal(v int) *TestCaseCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableOrdinal(v *int) *TestCaseCreate {
	if v != nil {
		_c.SetOrdinal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestCaseCreate) SetCreatedAt(v time.Time) *TestCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableCreatedAt(v *time.Time) *TestCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestCaseCreate) SetID(v string) *TestCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *TestCaseCreate) SetQuestion(v *Question) *TestCaseCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_c *TestCaseCreate) Mutation() *TestCaseMutation {
	return _c.mutation
}

// Save creates the TestCase in the database.
func (_c *TestCaseCreate) Save(ctx context.Context) (*TestCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCaseCreate) SaveX(ctx context.Context) *TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCaseCreate) defaults() {
	if _, ok := _c.mutation.IsHidden(); !ok {
		v := testcase.DefaultIsHidden
		_c.mutation.SetIsHidden(v)
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		v := testcase.DefaultOrdinal
		_c.mutation.SetOrdinal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCaseCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "TestCase.question_id"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "TestCase.input"`)}
	}
	if _, ok := _c.mutation.ExpectedOutput(); !ok {
		return &ValidationError{Name: "expected_output", err: errors.New(`ent: missing required field "TestCase.expected_output"`)}
	}
	if _, ok := _c.mutation.IsHidden(); !ok {
		return &ValidationError{Name: "is_hidden", err: errors.New(`ent: missing required field "TestCase.is_hidden"`)}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "TestCase.ordinal"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestCase.created_at"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "TestCase.question"`)}
	}
	return nil
}

func (_c *TestCaseCreate) sqlSave(ctx context.Context) (*TestCase, error) {
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
			return nil, fmt.Errorf("unexpected TestCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestCaseCreate) createSpec() (*TestCase, *sqlgraph.CreateSpec) {
	var (
		_node = &TestCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testcase.Table, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.ExpectedOutput(); ok {
		_spec.SetField(testcase.FieldExpectedOutput, field.TypeString, value)
		_node.ExpectedOutput = value
	}
	if value, ok := _c.mutation.IsHidden(); ok {
		_spec.SetField(testcase.FieldIsHidden, field.TypeBool, value)
		_node.IsHidden = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(testcase.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.QuestionTable,
			Columns: []string{testcase.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestCase.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestCaseUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCaseCreate) OnConflict(opts ...sql.ConflictOption) *TestCaseUpsertOne {
	_c.conflict = opts
	return &TestCaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestCase.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCaseCreate) OnConflictColumns(columns ...string) *TestCaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestCaseUpsertOne{
		create: _c,
	}
}

type (
	// TestCaseUpsertOne is the builder for "upsert"-ing
	//  one TestCase node.
	TestCaseUpsertOne struct {
		create *TestCaseCreate
	}

	// TestCaseUpsert is the "OnConflict" setter.
	TestCaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetInput sets the "input" field.
func (u *TestCaseUpsert) SetInput(v string) *TestCaseUpsert {
	u.Set(testcase.FieldInput, v)
	return u
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *TestCaseUpsert) UpdateInput() *TestCaseUpsert {
	u.SetExcluded(testcase.FieldInput)
	return u
}

// SetExpectedOutput sets the "expected_output" field.
func (u *TestCaseUpsert) SetExpectedOutput(v string) *TestCaseUpsert {
	u.Set(testcase.FieldExpectedOutput, v)
	return u
}

// UpdateExpectedOutput sets the "expected_output" field to the value that was provided on create.
func (u *TestCaseUpsert) UpdateExpectedOutput() *TestCaseUpsert {
	u.SetExcluded(testcase.FieldExpectedOutput)
	return u
}

// SetIsHidden sets the "is_hidden" field.
func (u *TestCaseUpsert) SetIsHidden(v bool) *TestCaseUpsert {
	u.Set(testcase.FieldIsHidden, v)
	return u
}

// UpdateIsHidden sets the "is_hidden" field to the value that was provided on create.
func (u *TestCaseUpsert) UpdateIsHidden() *TestCaseUpsert {
	u.SetExcluded(testcase.FieldIsHidden)
	return u
}

// SetOrdinal sets the "ordinal" field.
func (u *TestCaseUpsert) SetOrdinal(v int) *TestCaseUpsert {
	u.Set(testcase.FieldOrdinal, v)
	return u
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *TestCaseUpsert) UpdateOrdinal() *TestCaseUpsert {
	u.SetExcluded(testcase.FieldOrdinal)
	return u
}

// AddOrdinal adds v to the "ordinal" field.
func (u *TestCaseUpsert) AddOrdinal(v int) *TestCaseUpsert {
	u.Add(testcase.FieldOrdinal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TestCase.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testcase.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestCaseUpsertOne) UpdateNewValues() *TestCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testcase.FieldID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(testcase.FieldQuestionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(testcase.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestCase.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestCaseUpsertOne) Ignore() *TestCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestCaseUpsertOne) DoNothing() *TestCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCaseCreate.OnConflict
// documentation for more info.
func (u *TestCaseUpsertOne) Update(set func(*TestCaseUpsert)) *TestCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestCaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetInput sets the "input" field.
func (u *TestCaseUpsertOne) SetInput(v string) *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *TestCaseUpsertOne) UpdateInput() *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateInput()
	})
}

// SetExpectedOutput sets the "expected_output" field.
func (u *TestCaseUpsertOne) SetExpectedOutput(v string) *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetExpectedOutput(v)
	})
}

// UpdateExpectedOutput sets the "expected_output" field to the value that was provided on create.
func (u *TestCaseUpsertOne) UpdateExpectedOutput() *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateExpectedOutput()
	})
}

// SetIsHidden sets the "is_hidden" field.
func (u *TestCaseUpsertOne) SetIsHidden(v bool) *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetIsHidden(v)
	})
}

// UpdateIsHidden sets the "is_hidden" field to the value that was provided on create.
func (u *TestCaseUpsertOne) UpdateIsHidden() *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateIsHidden()
	})
}

// SetOrdinal sets the "ordinal" field.
func (u *TestCaseUpsertOne) SetOrdinal(v int) *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *TestCaseUpsertOne) AddOrdinal(v int) *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *TestCaseUpsertOne) UpdateOrdinal() *TestCaseUpsertOne {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateOrdinal()
	})
}

// Exec executes the query.
func (u *TestCaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestCaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestCaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestCaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TestCaseUpsertOne.ID is not supported by MySQL driver. Use TestCaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestCaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestCaseCreateBulk is the builder for creating many TestCase entities in bulk.
type TestCaseCreateBulk struct {
	config
	err      error
	builders []*TestCaseCreate
	conflict []sql.ConflictOption
}

// Save creates the TestCase entities in the database.
func (_c *TestCaseCreateBulk) Save(ctx context.Context) ([]*TestCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestCaseMutation)
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
func (_c *TestCaseCreateBulk) SaveX(ctx context.Context) []*TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestCase.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestCaseUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestCaseUpsertBulk {
	_c.conflict = opts
	return &TestCaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestCase.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCaseCreateBulk) OnConflictColumns(columns ...string) *TestCaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestCaseUpsertBulk{
		create: _c,
	}
}

// TestCaseUpsertBulk is the builder for "upsert"-ing
// a bulk of TestCase nodes.
type TestCaseUpsertBulk struct {
	create *TestCaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestCase.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testcase.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestCaseUpsertBulk) UpdateNewValues() *TestCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testcase.FieldID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(testcase.FieldQuestionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(testcase.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestCase.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestCaseUpsertBulk) Ignore() *TestCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestCaseUpsertBulk) DoNothing() *TestCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCaseCreateBulk.OnConflict
// documentation for more info.
func (u *TestCaseUpsertBulk) Update(set func(*TestCaseUpsert)) *TestCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestCaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetInput sets the "input" field.
func (u *TestCaseUpsertBulk) SetInput(v string) *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *TestCaseUpsertBulk) UpdateInput() *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateInput()
	})
}

// SetExpectedOutput sets the "expected_output" field.
func (u *TestCaseUpsertBulk) SetExpectedOutput(v string) *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetExpectedOutput(v)
	})
}

// UpdateExpectedOutput sets the "expected_output" field to the value that was provided on create.
func (u *TestCaseUpsertBulk) UpdateExpectedOutput() *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateExpectedOutput()
	})
}

// SetIsHidden sets the "is_hidden" field.
func (u *TestCaseUpsertBulk) SetIsHidden(v bool) *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetIsHidden(v)
	})
}

// UpdateIsHidden sets the "is_hidden" field to the value that was provided on create.
func (u *TestCaseUpsertBulk) UpdateIsHidden() *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateIsHidden()
	})
}

// SetOrdinal sets the "ordinal" field.
func (u *TestCaseUpsertBulk) SetOrdinal(v int) *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *TestCaseUpsertBulk) AddOrdinal(v int) *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *TestCaseUpsertBulk) UpdateOrdinal() *TestCaseUpsertBulk {
	return u.Update(func(s *TestCaseUpsert) {
		s.UpdateOrdinal()
	})
}

// Exec executes the query.
func (u *TestCaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TestCaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestCaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestCaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
