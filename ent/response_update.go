// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/response"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResponseUpdate) SetKind(v response.Kind) *ResponseUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableKind(v *response.Kind) *ResponseUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ResponseUpdate) SetContent(v string) *ResponseUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableContent(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAudioPath sets the "audio_path" field.
func (_u *ResponseUpdate) SetAudioPath(v string) *ResponseUpdate {
	_u.mutation.SetAudioPath(v)
	return _u
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableAudioPath(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetAudioPath(*v)
	}
	return _u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (_u *ResponseUpdate) ClearAudioPath() *ResponseUpdate {
	_u.mutation.ClearAudioPath()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResponseUpdate) SetDurationSeconds(v float64) *ResponseUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableDurationSeconds(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResponseUpdate) AddDurationSeconds(v float64) *ResponseUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetFillerCount sets the "filler_count" field.
func (_u *ResponseUpdate) SetFillerCount(v int) *ResponseUpdate {
	_u.mutation.ResetFillerCount()
	_u.mutation.SetFillerCount(v)
	return _u
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableFillerCount(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetFillerCount(*v)
	}
	return _u
}

// AddFillerCount adds value to the "filler_count" field.
func (_u *ResponseUpdate) AddFillerCount(v int) *ResponseUpdate {
	_u.mutation.AddFillerCount(v)
	return _u
}

// ClearFillerCount clears the value of the "filler_count" field.
func (_u *ResponseUpdate) ClearFillerCount() *ResponseUpdate {
	_u.mutation.ClearFillerCount()
	return _u
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (_u *ResponseUpdate) SetWordsPerMinute(v float64) *ResponseUpdate {
	_u.mutation.ResetWordsPerMinute()
	_u.mutation.SetWordsPerMinute(v)
	return _u
}

// SetNillableWordsPerMinute sets the "words_per_minute" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableWordsPerMinute(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetWordsPerMinute(*v)
	}
	return _u
}

// AddWordsPerMinute adds value to the "words_per_minute" field.
func (_u *ResponseUpdate) AddWordsPerMinute(v float64) *ResponseUpdate {
	_u.mutation.AddWordsPerMinute(v)
	return _u
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (_u *ResponseUpdate) ClearWordsPerMinute() *ResponseUpdate {
	_u.mutation.ClearWordsPerMinute()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ResponseUpdate) SetSentiment(v float64) *ResponseUpdate {
	_u.mutation.ResetSentiment()
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableSentiment(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// AddSentiment adds value to the "sentiment" field.
func (_u *ResponseUpdate) AddSentiment(v float64) *ResponseUpdate {
	_u.mutation.AddSentiment(v)
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ResponseUpdate) ClearSentiment() *ResponseUpdate {
	_u.mutation.ClearSentiment()
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdate) Mutation() *ResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := response.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Response.kind": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.question"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.session"`)
	}
	return nil
}

func (_u *ResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(response.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioPath(); ok {
		_spec.SetField(response.FieldAudioPath, field.TypeString, value)
	}
	if _u.mutation.AudioPathCleared() {
		_spec.ClearField(response.FieldAudioPath, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(response.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(response.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FillerCount(); ok {
		_spec.SetField(response.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillerCount(); ok {
		_spec.AddField(response.FieldFillerCount, field.TypeInt, value)
	}
	if _u.mutation.FillerCountCleared() {
		_spec.ClearField(response.FieldFillerCount, field.TypeInt)
	}
	if value, ok := _u.mutation.WordsPerMinute(); ok {
		_spec.SetField(response.FieldWordsPerMinute, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWordsPerMinute(); ok {
		_spec.AddField(response.FieldWordsPerMinute, field.TypeFloat64, value)
	}
	if _u.mutation.WordsPerMinuteCleared() {
		_spec.ClearField(response.FieldWordsPerMinute, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(response.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentiment(); ok {
		_spec.AddField(response.FieldSentiment, field.TypeFloat64, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(response.FieldSentiment, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetKind sets the "kind" field.
func (_u *ResponseUpdateOne) SetKind(v response.Kind) *ResponseUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableKind(v *response.Kind) *ResponseUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ResponseUpdateOne) SetContent(v string) *ResponseUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableContent(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAudioPath sets the "audio_path" field.
func (_u *ResponseUpdateOne) SetAudioPath(v string) *ResponseUpdateOne {
	_u.mutation.SetAudioPath(v)
	return _u
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableAudioPath(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetAudioPath(*v)
	}
	return _u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (_u *ResponseUpdateOne) ClearAudioPath() *ResponseUpdateOne {
	_u.mutation.ClearAudioPath()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResponseUpdateOne) SetDurationSeconds(v float64) *ResponseUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableDurationSeconds(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResponseUpdateOne) AddDurationSeconds(v float64) *ResponseUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetFillerCount sets the "filler_count" field.
func (_u *ResponseUpdateOne) SetFillerCount(v int) *ResponseUpdateOne {
	_u.mutation.ResetFillerCount()
	_u.mutation.SetFillerCount(v)
	return _u
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableFillerCount(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetFillerCount(*v)
	}
	return _u
}

// AddFillerCount adds value to the "filler_count" field.
func (_u *ResponseUpdateOne) AddFillerCount(v int) *ResponseUpdateOne {
	_u.mutation.AddFillerCount(v)
	return _u
}

// ClearFillerCount clears the value of the "filler_count" field.
func (_u *ResponseUpdateOne) ClearFillerCount() *ResponseUpdateOne {
	_u.mutation.ClearFillerCount()
	return _u
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (_u *ResponseUpdateOne) SetWordsPerMinute(v float64) *ResponseUpdateOne {
	_u.mutation.ResetWordsPerMinute()
	_u.mutation.SetWordsPerMinute(v)
	return _u
}

// SetNillableWordsPerMinute sets the "words_per_minute" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableWordsPerMinute(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetWordsPerMinute(*v)
	}
	return _u
}

// AddWordsPerMinute adds value to the "words_per_minute" field.
func (_u *ResponseUpdateOne) AddWordsPerMinute(v float64) *ResponseUpdateOne {
	_u.mutation.AddWordsPerMinute(v)
	return _u
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (_u *ResponseUpdateOne) ClearWordsPerMinute() *ResponseUpdateOne {
	_u.mutation.ClearWordsPerMinute()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ResponseUpdateOne) SetSentiment(v float64) *ResponseUpdateOne {
	_u.mutation.ResetSentiment()
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableSentiment(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// AddSentiment adds value to the "sentiment" field.
func (_u *ResponseUpdateOne) AddSentiment(v float64) *ResponseUpdateOne {
	_u.mutation.AddSentiment(v)
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ResponseUpdateOne) ClearSentiment() *ResponseUpdateOne {
	_u.mutation.ClearSentiment()
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdateOne) Mutation() *ResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Response entity.
func (_u *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := response.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Response.kind": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.question"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.session"`)
	}
	return nil
}

func (_u *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(response.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioPath(); ok {
		_spec.SetField(response.FieldAudioPath, field.TypeString, value)
	}
	if _u.mutation.AudioPathCleared() {
		_spec.ClearField(response.FieldAudioPath, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(response.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(response.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FillerCount(); ok {
		_spec.SetField(response.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillerCount(); ok {
		_spec.AddField(response.FieldFillerCount, field.TypeInt, value)
	}
	if _u.mutation.FillerCountCleared() {
		_spec.ClearField(response.FieldFillerCount, field.TypeInt)
	}
	if value, ok := _u.mutation.WordsPerMinute(); ok {
		_spec.SetField(response.FieldWordsPerMinute, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWordsPerMinute(); ok {
		_spec.AddField(response.FieldWordsPerMinute, field.TypeFloat64, value)
	}
	if _u.mutation.WordsPerMinuteCleared() {
		_spec.ClearField(response.FieldWordsPerMinute, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(response.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentiment(); ok {
		_spec.AddField(response.FieldSentiment, field.TypeFloat64, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(response.FieldSentiment, field.TypeFloat64)
	}
	_node = &Response{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
