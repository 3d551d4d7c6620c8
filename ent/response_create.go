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
)

// ResponseCreate is the builder for creating a Response entity.
type ResponseCreate struct {
	config
	mutation *ResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseCreate) SetQuestionID(v string) *ResponseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResponseCreate) SetSessionID(v string) *ResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResponseCreate) SetKind(v response.Kind) *ResponseCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableKind(v *response.Kind) *ResponseCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ResponseCreate) SetContent(v string) *ResponseCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAudioPath sets the "audio_path" field.
func (_c *ResponseCreate) SetAudioPath(v string) *ResponseCreate {
	_c.mutation.SetAudioPath(v)
	return _c
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableAudioPath(v *string) *ResponseCreate {
	if v != nil {
		_c.SetAudioPath(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ResponseCreate) SetDurationSeconds(v float64) *ResponseCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableDurationSeconds(v *float64) *ResponseCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetFillerCount sets the "filler_count" field.
func (_c *ResponseCreate) SetFillerCount(v int) *ResponseCreate {
	_c.mutation.SetFillerCount(v)
	return _c
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableFillerCount(v *int) *ResponseCreate {
	if v != nil {
		_c.SetFillerCount(*v)
	}
	return _c
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (_c *ResponseCreate) SetWordsPerMinute(v float64) *ResponseCreate {
	_c.mutation.SetWordsPerMinute(v)
	return _c
}

// SetNillableWordsPerMinute sets the "words_per_minute" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableWordsPerMinute(v *float64) *ResponseCreate {
	if v != nil {
		_c.SetWordsPerMinute(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *ResponseCreate) SetSentiment(v float64) *ResponseCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableSentiment(v *float64) *ResponseCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResponseCreate) SetCreatedAt(v time.Time) *ResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableCreatedAt(v *time.Time) *ResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResponseCreate) SetID(v string) *ResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *ResponseCreate) SetQuestion(v *Question) *ResponseCreate {
	return _c.SetQuestionID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ResponseCreate) SetSession(v *Session) *ResponseCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ResponseMutation object of the builder.
func (_c *ResponseCreate) Mutation() *ResponseMutation {
	return _c.mutation
}

// Save creates the Response in the database.
func (_c *ResponseCreate) Save(ctx context.Context) (*Response, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseCreate) SaveX(ctx context.Context) *Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := response.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := response.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := response.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Response.question_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Response.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Response.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := response.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Response.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Response.content"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "Response.duration_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Response.created_at"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Response.question"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Response.session"`)}
	}
	return nil
}

func (_c *ResponseCreate) sqlSave(ctx context.Context) (*Response, error) {
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
			return nil, fmt.Errorf("unexpected Response.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseCreate) createSpec() (*Response, *sqlgraph.CreateSpec) {
	var (
		_node = &Response{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(response.Table, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(response.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AudioPath(); ok {
		_spec.SetField(response.FieldAudioPath, field.TypeString, value)
		_node.AudioPath = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(response.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.FillerCount(); ok {
		_spec.SetField(response.FieldFillerCount, field.TypeInt, value)
		_node.FillerCount = &value
	}
	if value, ok := _c.mutation.WordsPerMinute(); ok {
		_spec.SetField(response.FieldWordsPerMinute, field.TypeFloat64, value)
		_node.WordsPerMinute = &value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(response.FieldSentiment, field.TypeFloat64, value)
		_node.Sentiment = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(response.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.QuestionTable,
			Columns: []string{response.QuestionColumn},
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
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.SessionTable,
			Columns: []string{response.SessionColumn},
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
//	client.Response.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResponseUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResponseCreate) OnConflict(opts ...sql.ConflictOption) *ResponseUpsertOne {
	_c.conflict = opts
	return &ResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Response.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResponseCreate) OnConflictColumns(columns ...string) *ResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResponseUpsertOne{
		create: _c,
	}
}

type (
	// ResponseUpsertOne is the builder for "upsert"-ing
	//  one Response node.
	ResponseUpsertOne struct {
		create *ResponseCreate
	}

	// ResponseUpsert is the "OnConflict" setter.
	ResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *ResponseUpsert) SetKind(v response.Kind) *ResponseUpsert {
	u.Set(response.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateKind() *ResponseUpsert {
	u.SetExcluded(response.FieldKind)
	return u
}

// SetContent sets the "content" field.
func (u *ResponseUpsert) SetContent(v string) *ResponseUpsert {
	u.Set(response.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateContent() *ResponseUpsert {
	u.SetExcluded(response.FieldContent)
	return u
}

// SetAudioPath sets the "audio_path" field.
func (u *ResponseUpsert) SetAudioPath(v string) *ResponseUpsert {
	u.Set(response.FieldAudioPath, v)
	return u
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateAudioPath() *ResponseUpsert {
	u.SetExcluded(response.FieldAudioPath)
	return u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *ResponseUpsert) ClearAudioPath() *ResponseUpsert {
	u.SetNull(response.FieldAudioPath)
	return u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *ResponseUpsert) SetDurationSeconds(v float64) *ResponseUpsert {
	u.Set(response.FieldDurationSeconds, v)
	return u
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateDurationSeconds() *ResponseUpsert {
	u.SetExcluded(response.FieldDurationSeconds)
	return u
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *ResponseUpsert) AddDurationSeconds(v float64) *ResponseUpsert {
	u.Add(response.FieldDurationSeconds, v)
	return u
}

// SetFillerCount sets the "filler_count" field.
func (u *ResponseUpsert) SetFillerCount(v int) *ResponseUpsert {
	u.Set(response.FieldFillerCount, v)
	return u
}

// UpdateFillerCount sets the "filler_count" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateFillerCount() *ResponseUpsert {
	u.SetExcluded(response.FieldFillerCount)
	return u
}

// AddFillerCount adds v to the "filler_count" field.
func (u *ResponseUpsert) AddFillerCount(v int) *ResponseUpsert {
	u.Add(response.FieldFillerCount, v)
	return u
}

// ClearFillerCount clears the value of the "filler_count" field.
func (u *ResponseUpsert) ClearFillerCount() *ResponseUpsert {
	u.SetNull(response.FieldFillerCount)
	return u
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (u *ResponseUpsert) SetWordsPerMinute(v float64) *ResponseUpsert {
	u.Set(response.FieldWordsPerMinute, v)
	return u
}

// UpdateWordsPerMinute sets the "words_per_minute" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateWordsPerMinute() *ResponseUpsert {
	u.SetExcluded(response.FieldWordsPerMinute)
	return u
}

// AddWordsPerMinute adds v to the "words_per_minute" field.
func (u *ResponseUpsert) AddWordsPerMinute(v float64) *ResponseUpsert {
	u.Add(response.FieldWordsPerMinute, v)
	return u
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (u *ResponseUpsert) ClearWordsPerMinute() *ResponseUpsert {
	u.SetNull(response.FieldWordsPerMinute)
	return u
}

// SetSentiment sets the "sentiment" field.
func (u *ResponseUpsert) SetSentiment(v float64) *ResponseUpsert {
	u.Set(response.FieldSentiment, v)
	return u
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ResponseUpsert) UpdateSentiment() *ResponseUpsert {
	u.SetExcluded(response.FieldSentiment)
	return u
}

// AddSentiment adds v to the "sentiment" field.
func (u *ResponseUpsert) AddSentiment(v float64) *ResponseUpsert {
	u.Add(response.FieldSentiment, v)
	return u
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *ResponseUpsert) ClearSentiment() *ResponseUpsert {
	u.SetNull(response.FieldSentiment)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Response.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(response.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResponseUpsertOne) UpdateNewValues() *ResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(response.FieldID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(response.FieldQuestionID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(response.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(response.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Response.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResponseUpsertOne) Ignore() *ResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResponseUpsertOne) DoNothing() *ResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResponseCreate.OnConflict
// documentation for more info.
func (u *ResponseUpsertOne) Update(set func(*ResponseUpsert)) *ResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ResponseUpsertOne) SetKind(v response.Kind) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateKind() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateKind()
	})
}

// SetContent sets the "content" field.
func (u *ResponseUpsertOne) SetContent(v string) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateContent() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateContent()
	})
}

// SetAudioPath sets the "audio_path" field.
func (u *ResponseUpsertOne) SetAudioPath(v string) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetAudioPath(v)
	})
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateAudioPath() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateAudioPath()
	})
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *ResponseUpsertOne) ClearAudioPath() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearAudioPath()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *ResponseUpsertOne) SetDurationSeconds(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *ResponseUpsertOne) AddDurationSeconds(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateDurationSeconds() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetFillerCount sets the "filler_count" field.
func (u *ResponseUpsertOne) SetFillerCount(v int) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetFillerCount(v)
	})
}

// AddFillerCount adds v to the "filler_count" field.
func (u *ResponseUpsertOne) AddFillerCount(v int) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.AddFillerCount(v)
	})
}

// UpdateFillerCount sets the "filler_count" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateFillerCount() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateFillerCount()
	})
}

// ClearFillerCount clears the value of the "filler_count" field.
func (u *ResponseUpsertOne) ClearFillerCount() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearFillerCount()
	})
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (u *ResponseUpsertOne) SetWordsPerMinute(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetWordsPerMinute(v)
	})
}

// AddWordsPerMinute adds v to the "words_per_minute" field.
func (u *ResponseUpsertOne) AddWordsPerMinute(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.AddWordsPerMinute(v)
	})
}

// UpdateWordsPerMinute sets the "words_per_minute" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateWordsPerMinute() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateWordsPerMinute()
	})
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (u *ResponseUpsertOne) ClearWordsPerMinute() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearWordsPerMinute()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *ResponseUpsertOne) SetSentiment(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.SetSentiment(v)
	})
}

// AddSentiment adds v to the "sentiment" field.
func (u *ResponseUpsertOne) AddSentiment(v float64) *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.AddSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ResponseUpsertOne) UpdateSentiment() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateSentiment()
	})
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *ResponseUpsertOne) ClearSentiment() *ResponseUpsertOne {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearSentiment()
	})
}

// Exec executes the query.
func (u *ResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResponseUpsertOne.ID is not supported by MySQL driver. Use ResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResponseCreateBulk is the builder for creating many Response entities in bulk.
type ResponseCreateBulk struct {
	config
	err      error
	builders []*ResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the Response entities in the database.
func (_c *ResponseCreateBulk) Save(ctx context.Context) ([]*Response, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Response, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseMutation)
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
func (_c *ResponseCreateBulk) SaveX(ctx context.Context) []*Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Response.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResponseUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResponseUpsertBulk {
	_c.conflict = opts
	return &ResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Response.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResponseCreateBulk) OnConflictColumns(columns ...string) *ResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResponseUpsertBulk{
		create: _c,
	}
}

// ResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of Response nodes.
type ResponseUpsertBulk struct {
	create *ResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Response.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(response.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResponseUpsertBulk) UpdateNewValues() *ResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(response.FieldID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(response.FieldQuestionID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(response.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(response.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Response.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResponseUpsertBulk) Ignore() *ResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResponseUpsertBulk) DoNothing() *ResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResponseCreateBulk.OnConflict
// documentation for more info.
func (u *ResponseUpsertBulk) Update(set func(*ResponseUpsert)) *ResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ResponseUpsertBulk) SetKind(v response.Kind) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateKind() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateKind()
	})
}

// SetContent sets the "content" field.
func (u *ResponseUpsertBulk) SetContent(v string) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateContent() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateContent()
	})
}

// SetAudioPath sets the "audio_path" field.
func (u *ResponseUpsertBulk) SetAudioPath(v string) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetAudioPath(v)
	})
}

// UpdateAudioPath sets the "audio_path" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateAudioPath() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateAudioPath()
	})
}

// ClearAudioPath clears the value of the "audio_path" field.
func (u *ResponseUpsertBulk) ClearAudioPath() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearAudioPath()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *ResponseUpsertBulk) SetDurationSeconds(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *ResponseUpsertBulk) AddDurationSeconds(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateDurationSeconds() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetFillerCount sets the "filler_count" field.
func (u *ResponseUpsertBulk) SetFillerCount(v int) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetFillerCount(v)
	})
}

// AddFillerCount adds v to the "filler_count" field.
func (u *ResponseUpsertBulk) AddFillerCount(v int) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.AddFillerCount(v)
	})
}

// UpdateFillerCount sets the "filler_count" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateFillerCount() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateFillerCount()
	})
}

// ClearFillerCount clears the value of the "filler_count" field.
func (u *ResponseUpsertBulk) ClearFillerCount() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearFillerCount()
	})
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (u *ResponseUpsertBulk) SetWordsPerMinute(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetWordsPerMinute(v)
	})
}

// AddWordsPerMinute adds v to the "words_per_minute" field.
func (u *ResponseUpsertBulk) AddWordsPerMinute(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.AddWordsPerMinute(v)
	})
}

// UpdateWordsPerMinute sets the "words_per_minute" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateWordsPerMinute() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateWordsPerMinute()
	})
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (u *ResponseUpsertBulk) ClearWordsPerMinute() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearWordsPerMinute()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *ResponseUpsertBulk) SetSentiment(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.SetSentiment(v)
	})
}

// AddSentiment adds v to the "sentiment" field.
func (u *ResponseUpsertBulk) AddSentiment(v float64) *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.AddSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ResponseUpsertBulk) UpdateSentiment() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.UpdateSentiment()
	})
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *ResponseUpsertBulk) ClearSentiment() *ResponseUpsertBulk {
	return u.Update(func(s *ResponseUpsert) {
		s.ClearSentiment()
	})
}

// Exec executes the query.
func (u *ResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
