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
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/session"
)

// CodeSubmissionCreate is the builder for creating a CodeSubmission entity.
type CodeSubmissionCreate struct {
	config
	mutation *CodeSubmissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *CodeSubmissionCreate) SetSessionID(v string) *CodeSubmissionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *CodeSubmissionCreate) SetQuestionID(v string) *CodeSubmissionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CodeSubmissionCreate) SetLanguage(v codesubmission.Language) *CodeSubmissionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetSourceCode sets the "source_code" field.
func (_c *CodeSubmissionCreate) SetSourceCode(v string) *CodeSubmissionCreate {
	_c.mutation.SetSourceCode(v)
	return _c
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (_c *CodeSubmissionCreate) SetPassedAllTests(v bool) *CodeSubmissionCreate {
	_c.mutation.SetPassedAllTests(v)
	return _c
}

// SetNillablePassedAllTests sets the "passed_all_tests" field if the given value is not nil.
func (_c *CodeSubmissionCreate) SetNillablePassedAllTests(v *bool) *CodeSubmissionCreate {
	if v != nil {
		_c.SetPassedAllTests(*v)
	}
	return _c
}

// SetOutputLog sets the "output_log" field.
func (_c *CodeSubmissionCreate) SetOutputLog(v string) *CodeSubmissionCreate {
	_c.mutation.SetOutputLog(v)
	return _c
}

// SetNillableOutputLog sets the "output_log" field if the given value is not nil.
func (_c *CodeSubmissionCreate) SetNillableOutputLog(v *string) *CodeSubmissionCreate {
	if v != nil {
		_c.SetOutputLog(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeSubmissionCreate) SetCreatedAt(v time.Time) *CodeSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeSubmissionCreate) SetNillableCreatedAt(v *time.Time) *CodeSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodeSubmissionCreate) SetID(v string) *CodeSubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *CodeSubmissionCreate) SetSession(v *Session) *CodeSubmissionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CodeSubmissionMutation object of the builder.
func (_c *CodeSubmissionCreate) Mutation() *CodeSubmissionMutation {
	return _c.mutation
}

// Save creates the CodeSubmission in the database.
func (_c *CodeSubmissionCreate) Save(ctx context.Context) (*CodeSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeSubmissionCreate) SaveX(ctx context.Context) *CodeSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeSubmissionCreate) defaults() {
	if _, ok := _c.mutation.PassedAllTests(); !ok {
		v := codesubmission.DefaultPassedAllTests
		_c.mutation.SetPassedAllTests(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codesubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeSubmissionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CodeSubmission.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "CodeSubmission.question_id"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CodeSubmission.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := codesubmission.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "CodeSubmission.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceCode(); !ok {
		return &ValidationError{Name: "source_code", err: errors.New(`ent: missing required field "CodeSubmission.source_code"`)}
	}
	if _, ok := _c.mutation.PassedAllTests(); !ok {
		return &ValidationError{Name: "passed_all_tests", err: errors.New(`ent: missing required field "CodeSubmission.passed_all_tests"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeSubmission.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "CodeSubmission.session"`)}
	}
	return nil
}

func (_c *CodeSubmissionCreate) sqlSave(ctx context.Context) (*CodeSubmission, error) {
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
			return nil, fmt.Errorf("unexpected CodeSubmission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodeSubmissionCreate) createSpec() (*CodeSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codesubmission.Table, sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(codesubmission.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(codesubmission.FieldLanguage, field.TypeEnum, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.SourceCode(); ok {
		_spec.SetField(codesubmission.FieldSourceCode, field.TypeString, value)
		_node.SourceCode = value
	}
	if value, ok := _c.mutation.PassedAllTests(); ok {
		_spec.SetField(codesubmission.FieldPassedAllTests, field.TypeBool, value)
		_node.PassedAllTests = value
	}
	if value, ok := _c.mutation.OutputLog(); ok {
		_spec.SetField(codesubmission.FieldOutputLog, field.TypeString, value)
		_node.OutputLog = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codesubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   codesubmission.SessionTable,
			Columns: []string{codesubmission.SessionColumn},
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
//	client.CodeSubmission.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CodeSubmissionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CodeSubmissionCreate) OnConflict(opts ...sql.ConflictOption) *CodeSubmissionUpsertOne {
	_c.conflict = opts
	return &CodeSubmissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CodeSubmissionCreate) OnConflictColumns(columns ...string) *CodeSubmissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CodeSubmissionUpsertOne{
		create: _c,
	}
}

type (
	// CodeSubmissionUpsertOne is the builder for "upsert"-ing
	//  one CodeSubmission node.
	CodeSubmissionUpsertOne struct {
		create *CodeSubmissionCreate
	}

	// CodeSubmissionUpsert is the "OnConflict" setter.
	CodeSubmissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPassedAllTests sets the "passed_all_tests" field.
func (u *CodeSubmissionUpsert) SetPassedAllTests(v bool) *CodeSubmissionUpsert {
	u.Set(codesubmission.FieldPassedAllTests, v)
	return u
}

// UpdatePassedAllTests sets the "passed_all_tests" field to the value that was provided on create.
func (u *CodeSubmissionUpsert) UpdatePassedAllTests() *CodeSubmissionUpsert {
	u.SetExcluded(codesubmission.FieldPassedAllTests)
	return u
}

// SetOutputLog sets the "output_log" field.
func (u *CodeSubmissionUpsert) SetOutputLog(v string) *CodeSubmissionUpsert {
	u.Set(codesubmission.FieldOutputLog, v)
	return u
}

// UpdateOutputLog sets the "output_log" field to the value that was provided on create.
func (u *CodeSubmissionUpsert) UpdateOutputLog() *CodeSubmissionUpsert {
	u.SetExcluded(codesubmission.FieldOutputLog)
	return u
}

// ClearOutputLog clears the value of the "output_log" field.
func (u *CodeSubmissionUpsert) ClearOutputLog() *CodeSubmissionUpsert {
	u.SetNull(codesubmission.FieldOutputLog)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(codesubmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CodeSubmissionUpsertOne) UpdateNewValues() *CodeSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(codesubmission.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(codesubmission.FieldSessionID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(codesubmission.FieldQuestionID)
		}
		if _, exists := u.create.mutation.Language(); exists {
			s.SetIgnore(codesubmission.FieldLanguage)
		}
		if _, exists := u.create.mutation.SourceCode(); exists {
			s.SetIgnore(codesubmission.FieldSourceCode)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(codesubmission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CodeSubmissionUpsertOne) Ignore() *CodeSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CodeSubmissionUpsertOne) DoNothing() *CodeSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CodeSubmissionCreate.OnConflict
// documentation for more info.
func (u *CodeSubmissionUpsertOne) Update(set func(*CodeSubmissionUpsert)) *CodeSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CodeSubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (u *CodeSubmissionUpsertOne) SetPassedAllTests(v bool) *CodeSubmissionUpsertOne {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.SetPassedAllTests(v)
	})
}

// UpdatePassedAllTests sets the "passed_all_tests" field to the value that was provided on create.
func (u *CodeSubmissionUpsertOne) UpdatePassedAllTests() *CodeSubmissionUpsertOne {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.UpdatePassedAllTests()
	})
}

// SetOutputLog sets the "output_log" field.
func (u *CodeSubmissionUpsertOne) SetOutputLog(v string) *CodeSubmissionUpsertOne {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.SetOutputLog(v)
	})
}

// UpdateOutputLog sets the "output_log" field to the value that was provided on create.
func (u *CodeSubmissionUpsertOne) UpdateOutputLog() *CodeSubmissionUpsertOne {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.UpdateOutputLog()
	})
}

// ClearOutputLog clears the value of the "output_log" field.
func (u *CodeSubmissionUpsertOne) ClearOutputLog() *CodeSubmissionUpsertOne {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.ClearOutputLog()
	})
}

// Exec executes the query.
func (u *CodeSubmissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CodeSubmissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CodeSubmissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CodeSubmissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CodeSubmissionUpsertOne.ID is not supported by MySQL driver. Use CodeSubmissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CodeSubmissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CodeSubmissionCreateBulk is the builder for creating many CodeSubmission entities in bulk.
type CodeSubmissionCreateBulk struct {
	config
	err      error
	builders []*CodeSubmissionCreate
	conflict []sql.ConflictOption
}

// Save creates the CodeSubmission entities in the database.
func (_c *CodeSubmissionCreateBulk) Save(ctx context.Context) ([]*CodeSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeSubmissionMutation)
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
func (_c *CodeSubmissionCreateBulk) SaveX(ctx context.Context) []*CodeSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CodeSubmission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CodeSubmissionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CodeSubmissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CodeSubmissionUpsertBulk {
	_c.conflict = opts
	return &CodeSubmissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CodeSubmissionCreateBulk) OnConflictColumns(columns ...string) *CodeSubmissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CodeSubmissionUpsertBulk{
		create: _c,
	}
}

// CodeSubmissionUpsertBulk is the builder for "upsert"-ing
// a bulk of CodeSubmission nodes.
type CodeSubmissionUpsertBulk struct {
	create *CodeSubmissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(codesubmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CodeSubmissionUpsertBulk) UpdateNewValues() *CodeSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(codesubmission.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(codesubmission.FieldSessionID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(codesubmission.FieldQuestionID)
			}
			if _, exists := b.mutation.Language(); exists {
				s.SetIgnore(codesubmission.FieldLanguage)
			}
			if _, exists := b.mutation.SourceCode(); exists {
				s.SetIgnore(codesubmission.FieldSourceCode)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(codesubmission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CodeSubmission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CodeSubmissionUpsertBulk) Ignore() *CodeSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CodeSubmissionUpsertBulk) DoNothing() *CodeSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CodeSubmissionCreateBulk.OnConflict
// documentation for more info.
func (u *CodeSubmissionUpsertBulk) Update(set func(*CodeSubmissionUpsert)) *CodeSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CodeSubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (u *CodeSubmissionUpsertBulk) SetPassedAllTests(v bool) *CodeSubmissionUpsertBulk {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.SetPassedAllTests(v)
	})
}

// UpdatePassedAllTests sets the "passed_all_tests" field to the value that was provided on create.
func (u *CodeSubmissionUpsertBulk) UpdatePassedAllTests() *CodeSubmissionUpsertBulk {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.UpdatePassedAllTests()
	})
}

// SetOutputLog sets the "output_log" field.
func (u *CodeSubmissionUpsertBulk) SetOutputLog(v string) *CodeSubmissionUpsertBulk {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.SetOutputLog(v)
	})
}

// UpdateOutputLog sets the "output_log" field to the value that was provided on create.
func (u *CodeSubmissionUpsertBulk) UpdateOutputLog() *CodeSubmissionUpsertBulk {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.UpdateOutputLog()
	})
}

// ClearOutputLog clears the value of the "output_log" field.
func (u *CodeSubmissionUpsertBulk) ClearOutputLog() *CodeSubmissionUpsertBulk {
	return u.Update(func(s *CodeSubmissionUpsert) {
		s.ClearOutputLog()
	})
}

// Exec executes the query.
func (u *CodeSubmissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CodeSubmissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CodeSubmissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CodeSubmissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
