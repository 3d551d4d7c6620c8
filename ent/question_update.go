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
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/testcase"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrder sets the "order" field.
func (_u *QuestionUpdate) SetOrder(v int) *QuestionUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOrder(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *QuestionUpdate) AddOrder(v int) *QuestionUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdate) SetType(v question.Type) *QuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableType(v *question.Type) *QuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuestionUpdate) SetLevel(v question.Level) *QuestionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableLevel(v *question.Level) *QuestionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *QuestionUpdate) SetParentID(v string) *QuestionUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableParentID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QuestionUpdate) ClearParentID() *QuestionUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCodingLanguage sets the "coding_language" field.
func (_u *QuestionUpdate) SetCodingLanguage(v question.CodingLanguage) *QuestionUpdate {
	_u.mutation.SetCodingLanguage(v)
	return _u
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCodingLanguage(v *question.CodingLanguage) *QuestionUpdate {
	if v != nil {
		_u.SetCodingLanguage(*v)
	}
	return _u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (_u *QuestionUpdate) ClearCodingLanguage() *QuestionUpdate {
	_u.mutation.ClearCodingLanguage()
	return _u
}

// SetAudioPath sets the "audio_path" field.
func (_u *QuestionUpdate) SetAudioPath(v string) *QuestionUpdate {
	_u.mutation.SetAudioPath(v)
	return _u
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAudioPath(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAudioPath(*v)
	}
	return _u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (_u *QuestionUpdate) ClearAudioPath() *QuestionUpdate {
	_u.mutation.ClearAudioPath()
	return _u
}

// SetTtsDegraded sets the "tts_degraded" field.
func (_u *QuestionUpdate) SetTtsDegraded(v bool) *QuestionUpdate {
	_u.mutation.SetTtsDegraded(v)
	return _u
}

// SetNillableTtsDegraded sets the "tts_degraded" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTtsDegraded(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetTtsDegraded(*v)
	}
	return _u
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (_u *QuestionUpdate) SetGeneratedFallback(v bool) *QuestionUpdate {
	_u.mutation.SetGeneratedFallback(v)
	return _u
}

// SetNillableGeneratedFallback sets the "generated_fallback" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableGeneratedFallback(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetGeneratedFallback(*v)
	}
	return _u
}

// SetParent sets the "parent" edge to the Question entity.
func (_u *QuestionUpdate) SetParent(v *Question) *QuestionUpdate {
	return _u.SetParentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Question entity by IDs.
func (_u *QuestionUpdate) AddFollowUpIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddFollowUpIDs(ids...)
	return _u
}

// AddFollowUps adds the "follow_ups" edges to the Question entity.
func (_u *QuestionUpdate) AddFollowUps(v ...*Question) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowUpIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_u *QuestionUpdate) AddResponseIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the Response entity.
func (_u *QuestionUpdate) AddResponses(v ...*Response) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *QuestionUpdate) AddTestCaseIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *QuestionUpdate) AddTestCases(v ...*TestCase) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Question entity.
func (_u *QuestionUpdate) ClearParent() *QuestionUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearFollowUps clears all "follow_ups" edges to the Question entity.
func (_u *QuestionUpdate) ClearFollowUps() *QuestionUpdate {
	_u.mutation.ClearFollowUps()
	return _u
}

// RemoveFollowUpIDs removes the "follow_ups" edge to Question entities by IDs.
func (_u *QuestionUpdate) RemoveFollowUpIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemoveFollowUpIDs(ids...)
	return _u
}

// RemoveFollowUps removes "follow_ups" edges to Question entities.
func (_u *QuestionUpdate) RemoveFollowUps(v ...*Question) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowUpIDs(ids...)
}

// ClearResponses clears all "responses" edges to the Response entity.
func (_u *QuestionUpdate) ClearResponses() *QuestionUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to Response entities by IDs.
func (_u *QuestionUpdate) RemoveResponseIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to Response entities.
func (_u *QuestionUpdate) RemoveResponses(v ...*Response) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *QuestionUpdate) ClearTestCases() *QuestionUpdate {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *QuestionUpdate) RemoveTestCaseIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *QuestionUpdate) RemoveTestCases(v ...*TestCase) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CodingLanguage(); ok {
		if err := question.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Question.coding_language": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(question.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(question.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodingLanguage(); ok {
		_spec.SetField(question.FieldCodingLanguage, field.TypeEnum, value)
	}
	if _u.mutation.CodingLanguageCleared() {
		_spec.ClearField(question.FieldCodingLanguage, field.TypeEnum)
	}
	if value, ok := _u.mutation.AudioPath(); ok {
		_spec.SetField(question.FieldAudioPath, field.TypeString, value)
	}
	if _u.mutation.AudioPathCleared() {
		_spec.ClearField(question.FieldAudioPath, field.TypeString)
	}
	if value, ok := _u.mutation.TtsDegraded(); ok {
		_spec.SetField(question.FieldTtsDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeneratedFallback(); ok {
		_spec.SetField(question.FieldGeneratedFallback, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowUpsIDs(); len(nodes) > 0 && !_u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetOrder sets the "order" field.
func (_u *QuestionUpdateOne) SetOrder(v int) *QuestionUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOrder(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *QuestionUpdateOne) AddOrder(v int) *QuestionUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdateOne) SetType(v question.Type) *QuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableType(v *question.Type) *QuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuestionUpdateOne) SetLevel(v question.Level) *QuestionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableLevel(v *question.Level) *QuestionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *QuestionUpdateOne) SetParentID(v string) *QuestionUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableParentID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QuestionUpdateOne) ClearParentID() *QuestionUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCodingLanguage sets the "coding_language" field.
func (_u *QuestionUpdateOne) SetCodingLanguage(v question.CodingLanguage) *QuestionUpdateOne {
	_u.mutation.SetCodingLanguage(v)
	return _u
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCodingLanguage(v *question.CodingLanguage) *QuestionUpdateOne {
	if v != nil {
		_u.SetCodingLanguage(*v)
	}
	return _u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (_u *QuestionUpdateOne) ClearCodingLanguage() *QuestionUpdateOne {
	_u.mutation.ClearCodingLanguage()
	return _u
}

// SetAudioPath sets the "audio_path" field.
func (_u *QuestionUpdateOne) SetAudioPath(v string) *QuestionUpdateOne {
	_u.mutation.SetAudioPath(v)
	return _u
}

// SetNillableAudioPath sets the "audio_path" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAudioPath(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAudioPath(*v)
	}
	return _u
}

// ClearAudioPath clears the value of the "audio_path" field.
func (_u *QuestionUpdateOne) ClearAudioPath() *QuestionUpdateOne {
	_u.mutation.ClearAudioPath()
	return _u
}

// SetTtsDegraded sets the "tts_degraded" field.
func (_u *QuestionUpdateOne) SetTtsDegraded(v bool) *QuestionUpdateOne {
	_u.mutation.SetTtsDegraded(v)
	return _u
}

// SetNillableTtsDegraded sets the "tts_degraded" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTtsDegraded(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetTtsDegraded(*v)
	}
	return _u
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (_u *QuestionUpdateOne) SetGeneratedFallback(v bool) *QuestionUpdateOne {
	_u.mutation.SetGeneratedFallback(v)
	return _u
}

// SetNillableGeneratedFallback sets the "generated_fallback" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableGeneratedFallback(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetGeneratedFallback(*v)
	}
	return _u
}

// SetParent sets the "parent" edge to the Question entity.
func (_u *QuestionUpdateOne) SetParent(v *Question) *QuestionUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Question entity by IDs.
func (_u *QuestionUpdateOne) AddFollowUpIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddFollowUpIDs(ids...)
	return _u
}

// AddFollowUps adds the "follow_ups" edges to the Question entity.
func (_u *QuestionUpdateOne) AddFollowUps(v ...*Question) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowUpIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_u *QuestionUpdateOne) AddResponseIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the Response entity.
func (_u *QuestionUpdateOne) AddResponses(v ...*Response) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *QuestionUpdateOne) AddTestCaseIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *QuestionUpdateOne) AddTestCases(v ...*TestCase) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Question entity.
func (_u *QuestionUpdateOne) ClearParent() *QuestionUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearFollowUps clears all "follow_ups" edges to the Question entity.
func (_u *QuestionUpdateOne) ClearFollowUps() *QuestionUpdateOne {
	_u.mutation.ClearFollowUps()
	return _u
}

// RemoveFollowUpIDs removes the "follow_ups" edge to Question entities by IDs.
func (_u *QuestionUpdateOne) RemoveFollowUpIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemoveFollowUpIDs(ids...)
	return _u
}

// RemoveFollowUps removes "follow_ups" edges to Question entities.
func (_u *QuestionUpdateOne) RemoveFollowUps(v ...*Question) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowUpIDs(ids...)
}

// ClearResponses clears all "responses" edges to the Response entity.
func (_u *QuestionUpdateOne) ClearResponses() *QuestionUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to Response entities by IDs.
func (_u *QuestionUpdateOne) RemoveResponseIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to Response entities.
func (_u *QuestionUpdateOne) RemoveResponses(v ...*Response) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *QuestionUpdateOne) ClearTestCases() *QuestionUpdateOne {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *QuestionUpdateOne) RemoveTestCaseIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *QuestionUpdateOne) RemoveTestCases(v ...*TestCase) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CodingLanguage(); ok {
		if err := question.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Question.coding_language": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(question.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(question.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodingLanguage(); ok {
		_spec.SetField(question.FieldCodingLanguage, field.TypeEnum, value)
	}
	if _u.mutation.CodingLanguageCleared() {
		_spec.ClearField(question.FieldCodingLanguage, field.TypeEnum)
	}
	if value, ok := _u.mutation.AudioPath(); ok {
		_spec.SetField(question.FieldAudioPath, field.TypeString, value)
	}
	if _u.mutation.AudioPathCleared() {
		_spec.ClearField(question.FieldAudioPath, field.TypeString)
	}
	if value, ok := _u.mutation.TtsDegraded(); ok {
		_spec.SetField(question.FieldTtsDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeneratedFallback(); ok {
		_spec.SetField(question.FieldGeneratedFallback, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowUpsIDs(); len(nodes) > 0 && !_u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
