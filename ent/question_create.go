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
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/testcase"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionCreate) SetSessionID(v string) *QuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetOrder sets the "order" field.
func (_c *QuestionCreate) SetOrder(v int) *QuestionCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuestionCreate) SetType(v question.Type) *QuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuestionCreate) SetLevel(v question.Level) *QuestionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableLevel(v *question.Level) *QuestionCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *QuestionCreate) SetParentID(v string) *QuestionCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableParentID(v *string) *QuestionCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCodingLanguage sets the "coding_language" field.
func (_c *QuestionCreate) SetCodingLanguage(v question.CodingLanguage) *QuestionCreate {
	_c.mutation.SetCodingLanguage(v)
	return _c
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCodingLanguage(v *question.CodingLanguage) *QuestionCreate {
	if v != nil {
		_c.SetCodingLanguage(*v)
	}
	return _c
}

// SetAudioPath sets the "audio_path" field.
func (_c *QuestionCreate) SetAudioPath(v string) *QuestionCreate {
	_c.mutation.SetAudioPath(v)
	return _c
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAudioPath(v *string) *QuestionCreate {
	if v != nil {
		_c.SetAudioPath(*v)
	}
	return _c
}

// SetTtsDegraded sets the "tts_degraded" field.
func (_c *QuestionCreate) SetTtsDegraded(v bool) *QuestionCreate {
	_c.mutation.SetTtsDegraded(v)
	return _c
}

// SetNillableTtsDegraded sets the "tts_degraded" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTtsDegraded(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetTtsDegraded(*v)
	}
	return _c
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (_c *QuestionCreate) SetGeneratedFallback(v bool) *QuestionCreate {
	_c.mutation.SetGeneratedFallback(v)
	return _c
}

// SetNillableGeneratedFallback sets the "generated_fallback" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableGeneratedFallback(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetGeneratedFallback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *QuestionCreate) SetSession(v *Session) *QuestionCreate {
	return _c.SetSessionID(v.ID)
}

// SetParent sets the "parent" edge to the Question entity.
func (_c *QuestionCreate) SetParent(v *Question) *QuestionCreate {
	return _c.SetParentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Question entity by IDs.
func (_c *QuestionCreate) AddFollowUpIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddFollowUpIDs(ids...)
	return _c
}

// AddFollowUps adds the "follow_ups" edges to the Question entity.
func (_c *QuestionCreate) AddFollowUps(v ...*Question) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFollowUpIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_c *QuestionCreate) AddResponseIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the Response entity.
func (_c *QuestionCreate) AddResponses(v ...*Response) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_c *QuestionCreate) AddTestCaseIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddTestCaseIDs(ids...)
	return _c
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_c *QuestionCreate) AddTestCases(v ...*TestCase) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTestCaseIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := question.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.TtsDegraded(); !ok {
		v := question.DefaultTtsDegraded
		_c.mutation.SetTtsDegraded(v)
	}
	if _, ok := _c.mutation.GeneratedFallback(); !ok {
		v := question.DefaultGeneratedFallback
		_c.mutation.SetGeneratedFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Question.session_id"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "Question.order"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Question.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Question.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.CodingLanguage(); ok {
		if err := question.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Question.coding_language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TtsDegraded(); !ok {
		return &ValidationError{Name: "tts_degraded", err: errors.New(`ent: missing required field "Question.tts_degraded"`)}
	}
	if _, ok := _c.mutation.GeneratedFallback(); !ok {
		return &ValidationError{Name: "generated_fallback", err: errors.New(`ent: missing required field "Question.generated_fallback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Question.session"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(question.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CodingLanguage(); ok {
		_spec.SetField(question.FieldCodingLanguage, field.TypeEnum, value)
		_node.CodingLanguage = &value
	}
	if value, ok := _c.mutation.AudioPath(); ok {
		_spec.SetField(question.FieldAudioPath, field.TypeString, value)
		_node.AudioPath = &value
	}
	if value, ok := _c.mutation.TtsDegraded(); ok {
		_spec.SetField(question.FieldTtsDegraded, field.TypeBool, value)
		_node.TtsDegraded = value
	}
	if value, ok := _c.mutation.GeneratedFallback(); ok {
		_spec.SetField(question.FieldGeneratedFallback, field.TypeBool, value)
		_node.GeneratedFallback = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
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
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.ParentTable,
			Columns: []string{question.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FollowUpsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.FollowUpsTable,
			Columns: []string{question.FollowUpsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ResponsesTable,
			Columns: []string{question.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(response.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestCasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.TestCasesTable,
			Columns: []string{question.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
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
//	client.Question.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrder sets the "order" field.
func (u *QuestionUpsert) SetOrder(v int) *QuestionUpsert {
	u.Set(question.FieldOrder, v)
	return u
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOrder() *QuestionUpsert {
	u.SetExcluded(question.FieldOrder)
	return u
}

// AddOrder adds v to the "order" field.
func (u *QuestionUpsert) AddOrder(v int) *QuestionUpsert {
	u.Add(question.FieldOrder, v)
	return u
}

// SetType sets the "type" field.
func (u *QuestionUpsert) SetType(v question.Type) *QuestionUpsert {
	u.Set(question.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateType() *QuestionUpsert {
	u.SetExcluded(question.FieldType)
	return u
}

// SetLevel sets the "level" field.
func (u *QuestionUpsert) SetLevel(v question.Level) *QuestionUpsert {
	u.Set(question.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateLevel() *QuestionUpsert {
	u.SetExcluded(question.FieldLevel)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *QuestionUpsert) SetParentID(v string) *QuestionUpsert {
	u.Set(question.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateParentID() *QuestionUpsert {
	u.SetExcluded(question.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionUpsert) ClearParentID() *QuestionUpsert {
	u.SetNull(question.FieldParentID)
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsert) SetText(v string) *QuestionUpsert {
	u.Set(question.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateText() *QuestionUpsert {
	u.SetExcluded(question.FieldText)
	return u
}

// SetCodingLanguage sets the "coding_language" field.
func (u *QuestionUpsert) SetCodingLanguage(v question.CodingLanguage) *QuestionUpsert {
	u.Set(question.FieldCodingLanguage, v)
	return u
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCodingLanguage() *QuestionUpsert {
	u.SetExcluded(question.FieldCodingLanguage)
	return u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *QuestionUpsert) ClearCodingLanguage() *QuestionUpsert {
	u.SetNull(question.FieldCodingLanguage)
	return u
}

// SetAudioPath sets the "audio_path" field.
func (u *QuestionUpsert) SetAudioPath(v string) *QuestionUpsert {
	u.Set(question.FieldAudioPath, v)
	return u
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAudioPath() *QuestionUpsert {
	u.SetExcluded(question.FieldAudioPath)
	return u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *QuestionUpsert) ClearAudioPath() *QuestionUpsert {
	u.SetNull(question.FieldAudioPath)
	return u
}

// SetTtsDegraded sets the "tts_degraded" field.
func (u *QuestionUpsert) SetTtsDegraded(v bool) *QuestionUpsert {
	u.Set(question.FieldTtsDegraded, v)
	return u
}

// UpdateTtsDegraded sets the "tts_degraded" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTtsDegraded() *QuestionUpsert {
	u.SetExcluded(question.FieldTtsDegraded)
	return u
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (u *QuestionUpsert) SetGeneratedFallback(v bool) *QuestionUpsert {
	u.Set(question.FieldGeneratedFallback, v)
	return u
}

// UpdateGeneratedFallback sets the "generated_fallback" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateGeneratedFallback() *QuestionUpsert {
	u.SetExcluded(question.FieldGeneratedFallback)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(question.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrder sets the "order" field.
func (u *QuestionUpsertOne) SetOrder(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *QuestionUpsertOne) AddOrder(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOrder() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOrder()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertOne) SetType(v question.Type) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetLevel sets the "level" field.
func (u *QuestionUpsertOne) SetLevel(v question.Level) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateLevel() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateLevel()
	})
}

// SetParentID sets the "parent_id" field.
func (u *QuestionUpsertOne) SetParentID(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateParentID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionUpsertOne) ClearParentID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearParentID()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertOne) SetText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetCodingLanguage sets the "coding_language" field.
func (u *QuestionUpsertOne) SetCodingLanguage(v question.CodingLanguage) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCodingLanguage(v)
	})
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCodingLanguage() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCodingLanguage()
	})
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *QuestionUpsertOne) ClearCodingLanguage() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCodingLanguage()
	})
}

// SetAudioPath sets the "audio_path" field.
func (u *QuestionUpsertOne) SetAudioPath(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAudioPath(v)
	})
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAudioPath() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAudioPath()
	})
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *QuestionUpsertOne) ClearAudioPath() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAudioPath()
	})
}

// SetTtsDegraded sets the "tts_degraded" field.
func (u *QuestionUpsertOne) SetTtsDegraded(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTtsDegraded(v)
	})
}

// UpdateTtsDegraded sets the "tts_degraded" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTtsDegraded() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTtsDegraded()
	})
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (u *QuestionUpsertOne) SetGeneratedFallback(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetGeneratedFallback(v)
	})
}

// UpdateGeneratedFallback sets the "generated_fallback" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateGeneratedFallback() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateGeneratedFallback()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(question.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrder sets the "order" field.
func (u *QuestionUpsertBulk) SetOrder(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *QuestionUpsertBulk) AddOrder(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOrder() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOrder()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertBulk) SetType(v question.Type) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetLevel sets the "level" field.
func (u *QuestionUpsertBulk) SetLevel(v question.Level) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateLevel() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateLevel()
	})
}

// SetParentID sets the "parent_id" field.
func (u *QuestionUpsertBulk) SetParentID(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateParentID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionUpsertBulk) ClearParentID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearParentID()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertBulk) SetText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetCodingLanguage sets the "coding_language" field.
func (u *QuestionUpsertBulk) SetCodingLanguage(v question.CodingLanguage) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCodingLanguage(v)
	})
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCodingLanguage() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCodingLanguage()
	})
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *QuestionUpsertBulk) ClearCodingLanguage() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCodingLanguage()
	})
}

// SetAudioPath sets the "audio_path" field.
func (u *QuestionUpsertBulk) SetAudioPath(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAudioPath(v)
	})
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAudioPath() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAudioPath()
	})
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *QuestionUpsertBulk) ClearAudioPath() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAudioPath()
	})
}

// SetTtsDegraded sets the "tts_degraded" field.
func (u *QuestionUpsertBulk) SetTtsDegraded(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTtsDegraded(v)
	})
}

// UpdateTtsDegraded sets the "tts_degraded" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTtsDegraded() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTtsDegraded()
	})
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (u *QuestionUpsertBulk) SetGeneratedFallback(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetGeneratedFallback(v)
	})
}

// UpdateGeneratedFallback sets the "generated_fallback" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateGeneratedFallback() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateGeneratedFallback()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
