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
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/session"
)

// EvaluationResultCreate is the builder for creating a EvaluationResult entity.
type EvaluationResultCreate struct {
	config
	mutation *EvaluationResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *EvaluationResultCreate) SetSessionID(v string) *EvaluationResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInterviewID sets the "interview_id" field.
func (_c *EvaluationResultCreate) SetInterviewID(v string) *EvaluationResultCreate {
	_c.mutation.SetInterviewID(v)
	return _c
}

// SetResumeScore sets the "resume_score" field.
func (_c *EvaluationResultCreate) SetResumeScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetResumeScore(v)
	return _c
}

// SetAnswersScore sets the "answers_score" field.
func (_c *EvaluationResultCreate) SetAnswersScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetAnswersScore(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *EvaluationResultCreate) SetOverallScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetTechnicalScore sets the "technical_score" field.
func (_c *EvaluationResultCreate) SetTechnicalScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetTechnicalScore(v)
	return _c
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableTechnicalScore(v *float64) *EvaluationResultCreate {
	if v != nil {
		_c.SetTechnicalScore(*v)
	}
	return _c
}

// SetBehavioralScore sets the "behavioral_score" field.
func (_c *EvaluationResultCreate) SetBehavioralScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetBehavioralScore(v)
	return _c
}

// SetNillableBehavioralScore sets the "behavioral_score" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableBehavioralScore(v *float64) *EvaluationResultCreate {
	if v != nil {
		_c.SetBehavioralScore(*v)
	}
	return _c
}

// SetCodingScore sets the "coding_score" field.
func (_c *EvaluationResultCreate) SetCodingScore(v float64) *EvaluationResultCreate {
	_c.mutation.SetCodingScore(v)
	return _c
}

// SetNillableCodingScore sets the "coding_score" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableCodingScore(v *float64) *EvaluationResultCreate {
	if v != nil {
		_c.SetCodingScore(*v)
	}
	return _c
}

// SetResumeFeedback sets the "resume_feedback" field.
func (_c *EvaluationResultCreate) SetResumeFeedback(v string) *EvaluationResultCreate {
	_c.mutation.SetResumeFeedback(v)
	return _c
}

// SetNillableResumeFeedback sets the "resume_feedback" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableResumeFeedback(v *string) *EvaluationResultCreate {
	if v != nil {
		_c.SetResumeFeedback(*v)
	}
	return _c
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (_c *EvaluationResultCreate) SetAnswersFeedback(v string) *EvaluationResultCreate {
	_c.mutation.SetAnswersFeedback(v)
	return _c
}

// SetNillableAnswersFeedback sets the "answers_feedback" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableAnswersFeedback(v *string) *EvaluationResultCreate {
	if v != nil {
		_c.SetAnswersFeedback(*v)
	}
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *EvaluationResultCreate) SetRecommendation(v string) *EvaluationResultCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableRecommendation(v *string) *EvaluationResultCreate {
	if v != nil {
		_c.SetRecommendation(*v)
	}
	return _c
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (_c *EvaluationResultCreate) SetHireRecommendation(v bool) *EvaluationResultCreate {
	_c.mutation.SetHireRecommendation(v)
	return _c
}

// SetNillableHireRecommendation sets the "hire_recommendation" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableHireRecommendation(v *bool) *EvaluationResultCreate {
	if v != nil {
		_c.SetHireRecommendation(*v)
	}
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *EvaluationResultCreate) SetConfidenceLevel(v float64) *EvaluationResultCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableConfidenceLevel(v *float64) *EvaluationResultCreate {
	if v != nil {
		_c.SetConfidenceLevel(*v)
	}
	return _c
}

// SetWarningSummary sets the "warning_summary" field.
func (_c *EvaluationResultCreate) SetWarningSummary(v string) *EvaluationResultCreate {
	_c.mutation.SetWarningSummary(v)
	return _c
}

// SetNillableWarningSummary sets the "warning_summary" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableWarningSummary(v *string) *EvaluationResultCreate {
	if v != nil {
		_c.SetWarningSummary(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *EvaluationResultCreate) SetMetrics(v map[string]interface{}) *EvaluationResultCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetIsFallback sets the "is_fallback" field.
func (_c *EvaluationResultCreate) SetIsFallback(v bool) *EvaluationResultCreate {
	_c.mutation.SetIsFallback(v)
	return _c
}

// SetNillableIsFallback sets the "is_fallback" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableIsFallback(v *bool) *EvaluationResultCreate {
	if v != nil {
		_c.SetIsFallback(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *EvaluationResultCreate) SetModelUsed(v string) *EvaluationResultCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableModelUsed(v *string) *EvaluationResultCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationResultCreate) SetCreatedAt(v time.Time) *EvaluationResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationResultCreate) SetNillableCreatedAt(v *time.Time) *EvaluationResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationResultCreate) SetID(v string) *EvaluationResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *EvaluationResultCreate) SetSession(v *Session) *EvaluationResultCreate {
	return _c.SetSessionID(v.ID)
}

// SetInterview sets the "interview" edge to the Interview entity.
func (_c *EvaluationResultCreate) SetInterview(v *Interview) *EvaluationResultCreate {
	return _c.SetInterviewID(v.ID)
}

// Mutation returns the EvaluationResultMutation object of the builder.
func (_c *EvaluationResultCreate) Mutation() *EvaluationResultMutation {
	return _c.mutation
}

// Save creates the EvaluationResult in the database.
func (_c *EvaluationResultCreate) Save(ctx context.Context) (*EvaluationResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationResultCreate) SaveX(ctx context.Context) *EvaluationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationResultCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		v := evaluationresult.DefaultConfidenceLevel
		_c.mutation.SetConfidenceLevel(v)
	}
	if _, ok := _c.mutation.IsFallback(); !ok {
		v := evaluationresult.DefaultIsFallback
		_c.mutation.SetIsFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EvaluationResult.session_id"`)}
	}
	if _, ok := _c.mutation.InterviewID(); !ok {
		return &ValidationError{Name: "interview_id", err: errors.New(`ent: missing required field "EvaluationResult.interview_id"`)}
	}
	if _, ok := _c.mutation.ResumeScore(); !ok {
		return &ValidationError{Name: "resume_score", err: errors.New(`ent: missing required field "EvaluationResult.resume_score"`)}
	}
	if _, ok := _c.mutation.AnswersScore(); !ok {
		return &ValidationError{Name: "answers_score", err: errors.New(`ent: missing required field "EvaluationResult.answers_score"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "EvaluationResult.overall_score"`)}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "EvaluationResult.confidence_level"`)}
	}
	if _, ok := _c.mutation.IsFallback(); !ok {
		return &ValidationError{Name: "is_fallback", err: errors.New(`ent: missing required field "EvaluationResult.is_fallback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationResult.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "EvaluationResult.session"`)}
	}
	if len(_c.mutation.InterviewIDs()) == 0 {
		return &ValidationError{Name: "interview", err: errors.New(`ent: missing required edge "EvaluationResult.interview"`)}
	}
	return nil
}

func (_c *EvaluationResultCreate) sqlSave(ctx context.Context) (*EvaluationResult, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationResultCreate) createSpec() (*EvaluationResult, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationresult.Table, sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResumeScore(); ok {
		_spec.SetField(evaluationresult.FieldResumeScore, field.TypeFloat64, value)
		_node.ResumeScore = value
	}
	if value, ok := _c.mutation.AnswersScore(); ok {
		_spec.SetField(evaluationresult.FieldAnswersScore, field.TypeFloat64, value)
		_node.AnswersScore = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(evaluationresult.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.TechnicalScore(); ok {
		_spec.SetField(evaluationresult.FieldTechnicalScore, field.TypeFloat64, value)
		_node.TechnicalScore = &value
	}
	if value, ok := _c.mutation.BehavioralScore(); ok {
		_spec.SetField(evaluationresult.FieldBehavioralScore, field.TypeFloat64, value)
		_node.BehavioralScore = &value
	}
	if value, ok := _c.mutation.CodingScore(); ok {
		_spec.SetField(evaluationresult.FieldCodingScore, field.TypeFloat64, value)
		_node.CodingScore = &value
	}
	if value, ok := _c.mutation.ResumeFeedback(); ok {
		_spec.SetField(evaluationresult.FieldResumeFeedback, field.TypeString, value)
		_node.ResumeFeedback = value
	}
	if value, ok := _c.mutation.AnswersFeedback(); ok {
		_spec.SetField(evaluationresult.FieldAnswersFeedback, field.TypeString, value)
		_node.AnswersFeedback = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(evaluationresult.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.HireRecommendation(); ok {
		_spec.SetField(evaluationresult.FieldHireRecommendation, field.TypeBool, value)
		_node.HireRecommendation = &value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationresult.FieldConfidenceLevel, field.TypeFloat64, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.WarningSummary(); ok {
		_spec.SetField(evaluationresult.FieldWarningSummary, field.TypeString, value)
		_node.WarningSummary = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(evaluationresult.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.IsFallback(); ok {
		_spec.SetField(evaluationresult.FieldIsFallback, field.TypeBool, value)
		_node.IsFallback = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(evaluationresult.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationresult.SessionTable,
			Columns: []string{evaluationresult.SessionColumn},
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
	if nodes := _c.mutation.InterviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationresult.InterviewTable,
			Columns: []string{evaluationresult.InterviewColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationResult.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationResultUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationResultCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationResultUpsertOne {
	_c.conflict = opts
	return &EvaluationResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationResultCreate) OnConflictColumns(columns ...string) *EvaluationResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationResultUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationResultUpsertOne is the builder for "upsert"-ing
	//  one EvaluationResult node.
	EvaluationResultUpsertOne struct {
		create *EvaluationResultCreate
	}

	// EvaluationResultUpsert is the "OnConflict" setter.
	EvaluationResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetResumeScore sets the "resume_score" field.
func (u *EvaluationResultUpsert) SetResumeScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldResumeScore, v)
	return u
}

// UpdateResumeScore sets the "resume_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateResumeScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldResumeScore)
	return u
}

// AddResumeScore adds v to the "resume_score" field.
func (u *EvaluationResultUpsert) AddResumeScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldResumeScore, v)
	return u
}

// SetAnswersScore sets the "answers_score" field.
func (u *EvaluationResultUpsert) SetAnswersScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldAnswersScore, v)
	return u
}

// UpdateAnswersScore sets the "answers_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateAnswersScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldAnswersScore)
	return u
}

// AddAnswersScore adds v to the "answers_score" field.
func (u *EvaluationResultUpsert) AddAnswersScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldAnswersScore, v)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *EvaluationResultUpsert) SetOverallScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateOverallScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *EvaluationResultUpsert) AddOverallScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldOverallScore, v)
	return u
}

// SetTechnicalScore sets the "technical_score" field.
func (u *EvaluationResultUpsert) SetTechnicalScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldTechnicalScore, v)
	return u
}

// UpdateTechnicalScore sets the "technical_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateTechnicalScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldTechnicalScore)
	return u
}

// AddTechnicalScore adds v to the "technical_score" field.
func (u *EvaluationResultUpsert) AddTechnicalScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldTechnicalScore, v)
	return u
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (u *EvaluationResultUpsert) ClearTechnicalScore() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldTechnicalScore)
	return u
}

// SetBehavioralScore sets the "behavioral_score" field.
func (u *EvaluationResultUpsert) SetBehavioralScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldBehavioralScore, v)
	return u
}

// UpdateBehavioralScore sets the "behavioral_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateBehavioralScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldBehavioralScore)
	return u
}

// AddBehavioralScore adds v to the "behavioral_score" field.
func (u *EvaluationResultUpsert) AddBehavioralScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldBehavioralScore, v)
	return u
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (u *EvaluationResultUpsert) ClearBehavioralScore() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldBehavioralScore)
	return u
}

// SetCodingScore sets the "coding_score" field.
func (u *EvaluationResultUpsert) SetCodingScore(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldCodingScore, v)
	return u
}

// UpdateCodingScore sets the "coding_score" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateCodingScore() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldCodingScore)
	return u
}

// AddCodingScore adds v to the "coding_score" field.
func (u *EvaluationResultUpsert) AddCodingScore(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldCodingScore, v)
	return u
}

// ClearCodingScore clears the value of the "coding_score" field.
func (u *EvaluationResultUpsert) ClearCodingScore() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldCodingScore)
	return u
}

// SetResumeFeedback sets the "resume_feedback" field.
func (u *EvaluationResultUpsert) SetResumeFeedback(v string) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldResumeFeedback, v)
	return u
}

// UpdateResumeFeedback sets the "resume_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateResumeFeedback() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldResumeFeedback)
	return u
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (u *EvaluationResultUpsert) ClearResumeFeedback() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldResumeFeedback)
	return u
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (u *EvaluationResultUpsert) SetAnswersFeedback(v string) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldAnswersFeedback, v)
	return u
}

// UpdateAnswersFeedback sets the "answers_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateAnswersFeedback() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldAnswersFeedback)
	return u
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (u *EvaluationResultUpsert) ClearAnswersFeedback() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldAnswersFeedback)
	return u
}

// SetRecommendation sets the "recommendation" field.
func (u *EvaluationResultUpsert) SetRecommendation(v string) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldRecommendation, v)
	return u
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateRecommendation() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldRecommendation)
	return u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *EvaluationResultUpsert) ClearRecommendation() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldRecommendation)
	return u
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (u *EvaluationResultUpsert) SetHireRecommendation(v bool) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldHireRecommendation, v)
	return u
}

// UpdateHireRecommendation sets the "hire_recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateHireRecommendation() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldHireRecommendation)
	return u
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (u *EvaluationResultUpsert) ClearHireRecommendation() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldHireRecommendation)
	return u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *EvaluationResultUpsert) SetConfidenceLevel(v float64) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldConfidenceLevel, v)
	return u
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateConfidenceLevel() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldConfidenceLevel)
	return u
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *EvaluationResultUpsert) AddConfidenceLevel(v float64) *EvaluationResultUpsert {
	u.Add(evaluationresult.FieldConfidenceLevel, v)
	return u
}

// SetWarningSummary sets the "warning_summary" field.
func (u *EvaluationResultUpsert) SetWarningSummary(v string) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldWarningSummary, v)
	return u
}

// UpdateWarningSummary sets the "warning_summary" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateWarningSummary() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldWarningSummary)
	return u
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (u *EvaluationResultUpsert) ClearWarningSummary() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldWarningSummary)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationResultUpsert) SetMetrics(v map[string]interface{}) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateMetrics() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldMetrics)
	return u
}

// ClearMetrics clears the value of the "metrics" field.
func (u *EvaluationResultUpsert) ClearMetrics() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldMetrics)
	return u
}

// SetIsFallback sets the "is_fallback" field.
func (u *EvaluationResultUpsert) SetIsFallback(v bool) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldIsFallback, v)
	return u
}

// UpdateIsFallback sets the "is_fallback" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateIsFallback() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldIsFallback)
	return u
}

// SetModelUsed sets the "model_used" field.
func (u *EvaluationResultUpsert) SetModelUsed(v string) *EvaluationResultUpsert {
	u.Set(evaluationresult.FieldModelUsed, v)
	return u
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *EvaluationResultUpsert) UpdateModelUsed() *EvaluationResultUpsert {
	u.SetExcluded(evaluationresult.FieldModelUsed)
	return u
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *EvaluationResultUpsert) ClearModelUsed() *EvaluationResultUpsert {
	u.SetNull(evaluationresult.FieldModelUsed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationResultUpsertOne) UpdateNewValues() *EvaluationResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evaluationresult.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(evaluationresult.FieldSessionID)
		}
		if _, exists := u.create.mutation.InterviewID(); exists {
			s.SetIgnore(evaluationresult.FieldInterviewID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluationresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationResultUpsertOne) Ignore() *EvaluationResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationResultUpsertOne) DoNothing() *EvaluationResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationResultCreate.OnConflict
// documentation for more info.
func (u *EvaluationResultUpsertOne) Update(set func(*EvaluationResultUpsert)) *EvaluationResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetResumeScore sets the "resume_score" field.
func (u *EvaluationResultUpsertOne) SetResumeScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetResumeScore(v)
	})
}

// AddResumeScore adds v to the "resume_score" field.
func (u *EvaluationResultUpsertOne) AddResumeScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddResumeScore(v)
	})
}

// UpdateResumeScore sets the "resume_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateResumeScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateResumeScore()
	})
}

// SetAnswersScore sets the "answers_score" field.
func (u *EvaluationResultUpsertOne) SetAnswersScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetAnswersScore(v)
	})
}

// AddAnswersScore adds v to the "answers_score" field.
func (u *EvaluationResultUpsertOne) AddAnswersScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddAnswersScore(v)
	})
}

// UpdateAnswersScore sets the "answers_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateAnswersScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateAnswersScore()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *EvaluationResultUpsertOne) SetOverallScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *EvaluationResultUpsertOne) AddOverallScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateOverallScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateOverallScore()
	})
}

// SetTechnicalScore sets the "technical_score" field.
func (u *EvaluationResultUpsertOne) SetTechnicalScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetTechnicalScore(v)
	})
}

// AddTechnicalScore adds v to the "technical_score" field.
func (u *EvaluationResultUpsertOne) AddTechnicalScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddTechnicalScore(v)
	})
}

// UpdateTechnicalScore sets the "technical_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateTechnicalScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateTechnicalScore()
	})
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (u *EvaluationResultUpsertOne) ClearTechnicalScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearTechnicalScore()
	})
}

// SetBehavioralScore sets the "behavioral_score" field.
func (u *EvaluationResultUpsertOne) SetBehavioralScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetBehavioralScore(v)
	})
}

// AddBehavioralScore adds v to the "behavioral_score" field.
func (u *EvaluationResultUpsertOne) AddBehavioralScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddBehavioralScore(v)
	})
}

// UpdateBehavioralScore sets the "behavioral_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateBehavioralScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateBehavioralScore()
	})
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (u *EvaluationResultUpsertOne) ClearBehavioralScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearBehavioralScore()
	})
}

// SetCodingScore sets the "coding_score" field.
func (u *EvaluationResultUpsertOne) SetCodingScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetCodingScore(v)
	})
}

// AddCodingScore adds v to the "coding_score" field.
func (u *EvaluationResultUpsertOne) AddCodingScore(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddCodingScore(v)
	})
}

// UpdateCodingScore sets the "coding_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateCodingScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateCodingScore()
	})
}

// ClearCodingScore clears the value of the "coding_score" field.
func (u *EvaluationResultUpsertOne) ClearCodingScore() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearCodingScore()
	})
}

// SetResumeFeedback sets the "resume_feedback" field.
func (u *EvaluationResultUpsertOne) SetResumeFeedback(v string) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetResumeFeedback(v)
	})
}

// UpdateResumeFeedback sets the "resume_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateResumeFeedback() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateResumeFeedback()
	})
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (u *EvaluationResultUpsertOne) ClearResumeFeedback() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearResumeFeedback()
	})
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (u *EvaluationResultUpsertOne) SetAnswersFeedback(v string) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetAnswersFeedback(v)
	})
}

// UpdateAnswersFeedback sets the "answers_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateAnswersFeedback() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateAnswersFeedback()
	})
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (u *EvaluationResultUpsertOne) ClearAnswersFeedback() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearAnswersFeedback()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *EvaluationResultUpsertOne) SetRecommendation(v string) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateRecommendation() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateRecommendation()
	})
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *EvaluationResultUpsertOne) ClearRecommendation() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearRecommendation()
	})
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (u *EvaluationResultUpsertOne) SetHireRecommendation(v bool) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetHireRecommendation(v)
	})
}

// UpdateHireRecommendation sets the "hire_recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateHireRecommendation() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateHireRecommendation()
	})
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (u *EvaluationResultUpsertOne) ClearHireRecommendation() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearHireRecommendation()
	})
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *EvaluationResultUpsertOne) SetConfidenceLevel(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetConfidenceLevel(v)
	})
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *EvaluationResultUpsertOne) AddConfidenceLevel(v float64) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddConfidenceLevel(v)
	})
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateConfidenceLevel() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateConfidenceLevel()
	})
}

// SetWarningSummary sets the "warning_summary" field.
func (u *EvaluationResultUpsertOne) SetWarningSummary(v string) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetWarningSummary(v)
	})
}

// UpdateWarningSummary sets the "warning_summary" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateWarningSummary() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateWarningSummary()
	})
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (u *EvaluationResultUpsertOne) ClearWarningSummary() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearWarningSummary()
	})
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationResultUpsertOne) SetMetrics(v map[string]interface{}) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateMetrics() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *EvaluationResultUpsertOne) ClearMetrics() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearMetrics()
	})
}

// SetIsFallback sets the "is_fallback" field.
func (u *EvaluationResultUpsertOne) SetIsFallback(v bool) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetIsFallback(v)
	})
}

// UpdateIsFallback sets the "is_fallback" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateIsFallback() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateIsFallback()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *EvaluationResultUpsertOne) SetModelUsed(v string) *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *EvaluationResultUpsertOne) UpdateModelUsed() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *EvaluationResultUpsertOne) ClearModelUsed() *EvaluationResultUpsertOne {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearModelUsed()
	})
}

// Exec executes the query.
func (u *EvaluationResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvaluationResultUpsertOne.ID is not supported by MySQL driver. Use EvaluationResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationResultCreateBulk is the builder for creating many EvaluationResult entities in bulk.
type EvaluationResultCreateBulk struct {
	config
	err      error
	builders []*EvaluationResultCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationResult entities in the database.
func (_c *EvaluationResultCreateBulk) Save(ctx context.Context) ([]*EvaluationResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationResultMutation)
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
func (_c *EvaluationResultCreateBulk) SaveX(ctx context.Context) []*EvaluationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationResultUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationResultUpsertBulk {
	_c.conflict = opts
	return &EvaluationResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationResultCreateBulk) OnConflictColumns(columns ...string) *EvaluationResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationResultUpsertBulk{
		create: _c,
	}
}

// EvaluationResultUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationResult nodes.
type EvaluationResultUpsertBulk struct {
	create *EvaluationResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationResultUpsertBulk) UpdateNewValues() *EvaluationResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evaluationresult.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(evaluationresult.FieldSessionID)
			}
			if _, exists := b.mutation.InterviewID(); exists {
				s.SetIgnore(evaluationresult.FieldInterviewID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluationresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationResultUpsertBulk) Ignore() *EvaluationResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationResultUpsertBulk) DoNothing() *EvaluationResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationResultCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationResultUpsertBulk) Update(set func(*EvaluationResultUpsert)) *EvaluationResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetResumeScore sets the "resume_score" field.
func (u *EvaluationResultUpsertBulk) SetResumeScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetResumeScore(v)
	})
}

// AddResumeScore adds v to the "resume_score" field.
func (u *EvaluationResultUpsertBulk) AddResumeScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddResumeScore(v)
	})
}

// UpdateResumeScore sets the "resume_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateResumeScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateResumeScore()
	})
}

// SetAnswersScore sets the "answers_score" field.
func (u *EvaluationResultUpsertBulk) SetAnswersScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetAnswersScore(v)
	})
}

// AddAnswersScore adds v to the "answers_score" field.
func (u *EvaluationResultUpsertBulk) AddAnswersScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddAnswersScore(v)
	})
}

// UpdateAnswersScore sets the "answers_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateAnswersScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateAnswersScore()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *EvaluationResultUpsertBulk) SetOverallScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *EvaluationResultUpsertBulk) AddOverallScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateOverallScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateOverallScore()
	})
}

// SetTechnicalScore sets the "technical_score" field.
func (u *EvaluationResultUpsertBulk) SetTechnicalScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetTechnicalScore(v)
	})
}

// AddTechnicalScore adds v to the "technical_score" field.
func (u *EvaluationResultUpsertBulk) AddTechnicalScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddTechnicalScore(v)
	})
}

// UpdateTechnicalScore sets the "technical_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateTechnicalScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateTechnicalScore()
	})
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (u *EvaluationResultUpsertBulk) ClearTechnicalScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearTechnicalScore()
	})
}

// SetBehavioralScore sets the "behavioral_score" field.
func (u *EvaluationResultUpsertBulk) SetBehavioralScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetBehavioralScore(v)
	})
}

// AddBehavioralScore adds v to the "behavioral_score" field.
func (u *EvaluationResultUpsertBulk) AddBehavioralScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddBehavioralScore(v)
	})
}

// UpdateBehavioralScore sets the "behavioral_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateBehavioralScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateBehavioralScore()
	})
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (u *EvaluationResultUpsertBulk) ClearBehavioralScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearBehavioralScore()
	})
}

// SetCodingScore sets the "coding_score" field.
func (u *EvaluationResultUpsertBulk) SetCodingScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetCodingScore(v)
	})
}

// AddCodingScore adds v to the "coding_score" field.
func (u *EvaluationResultUpsertBulk) AddCodingScore(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddCodingScore(v)
	})
}

// UpdateCodingScore sets the "coding_score" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateCodingScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateCodingScore()
	})
}

// ClearCodingScore clears the value of the "coding_score" field.
func (u *EvaluationResultUpsertBulk) ClearCodingScore() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearCodingScore()
	})
}

// SetResumeFeedback sets the "resume_feedback" field.
func (u *EvaluationResultUpsertBulk) SetResumeFeedback(v string) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetResumeFeedback(v)
	})
}

// UpdateResumeFeedback sets the "resume_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateResumeFeedback() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateResumeFeedback()
	})
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (u *EvaluationResultUpsertBulk) ClearResumeFeedback() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearResumeFeedback()
	})
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (u *EvaluationResultUpsertBulk) SetAnswersFeedback(v string) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetAnswersFeedback(v)
	})
}

// UpdateAnswersFeedback sets the "answers_feedback" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateAnswersFeedback() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateAnswersFeedback()
	})
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (u *EvaluationResultUpsertBulk) ClearAnswersFeedback() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearAnswersFeedback()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *EvaluationResultUpsertBulk) SetRecommendation(v string) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateRecommendation() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateRecommendation()
	})
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *EvaluationResultUpsertBulk) ClearRecommendation() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearRecommendation()
	})
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (u *EvaluationResultUpsertBulk) SetHireRecommendation(v bool) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetHireRecommendation(v)
	})
}

// UpdateHireRecommendation sets the "hire_recommendation" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateHireRecommendation() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateHireRecommendation()
	})
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (u *EvaluationResultUpsertBulk) ClearHireRecommendation() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearHireRecommendation()
	})
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *EvaluationResultUpsertBulk) SetConfidenceLevel(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetConfidenceLevel(v)
	})
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *EvaluationResultUpsertBulk) AddConfidenceLevel(v float64) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.AddConfidenceLevel(v)
	})
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateConfidenceLevel() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateConfidenceLevel()
	})
}

// SetWarningSummary sets the "warning_summary" field.
func (u *EvaluationResultUpsertBulk) SetWarningSummary(v string) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetWarningSummary(v)
	})
}

// UpdateWarningSummary sets the "warning_summary" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateWarningSummary() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateWarningSummary()
	})
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (u *EvaluationResultUpsertBulk) ClearWarningSummary() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearWarningSummary()
	})
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationResultUpsertBulk) SetMetrics(v map[string]interface{}) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateMetrics() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *EvaluationResultUpsertBulk) ClearMetrics() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearMetrics()
	})
}

// SetIsFallback sets the "is_fallback" field.
func (u *EvaluationResultUpsertBulk) SetIsFallback(v bool) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetIsFallback(v)
	})
}

// UpdateIsFallback sets the "is_fallback" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateIsFallback() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateIsFallback()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *EvaluationResultUpsertBulk) SetModelUsed(v string) *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *EvaluationResultUpsertBulk) UpdateModelUsed() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *EvaluationResultUpsertBulk) ClearModelUsed() *EvaluationResultUpsertBulk {
	return u.Update(func(s *EvaluationResultUpsert) {
		s.ClearModelUsed()
	})
}

// Exec executes the query.
func (u *EvaluationResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
