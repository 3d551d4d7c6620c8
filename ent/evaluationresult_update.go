// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/predicate"
)

// EvaluationResultUpdate is the builder for updating EvaluationResult entities.
type EvaluationResultUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationResultMutation
}

// Where appends a list predicates to the EvaluationResultUpdate builder.
func (_u *EvaluationResultUpdate) Where(ps ...predicate.EvaluationResult) *EvaluationResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResumeScore sets the "resume_score" field.
func (_u *EvaluationResultUpdate) SetResumeScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetResumeScore()
	_u.mutation.SetResumeScore(v)
	return _u
}

// SetNillableResumeScore sets the "resume_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableResumeScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetResumeScore(*v)
	}
	return _u
}

// AddResumeScore adds value to the "resume_score" field.
func (_u *EvaluationResultUpdate) AddResumeScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddResumeScore(v)
	return _u
}

// SetAnswersScore sets the "answers_score" field.
func (_u *EvaluationResultUpdate) SetAnswersScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetAnswersScore()
	_u.mutation.SetAnswersScore(v)
	return _u
}

// SetNillableAnswersScore sets the "answers_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableAnswersScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetAnswersScore(*v)
	}
	return _u
}

// AddAnswersScore adds value to the "answers_score" field.
func (_u *EvaluationResultUpdate) AddAnswersScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddAnswersScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationResultUpdate) SetOverallScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableOverallScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationResultUpdate) AddOverallScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *EvaluationResultUpdate) SetTechnicalScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableTechnicalScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *EvaluationResultUpdate) AddTechnicalScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (_u *EvaluationResultUpdate) ClearTechnicalScore() *EvaluationResultUpdate {
	_u.mutation.ClearTechnicalScore()
	return _u
}

// SetBehavioralScore sets the "behavioral_score" field.
func (_u *EvaluationResultUpdate) SetBehavioralScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetBehavioralScore()
	_u.mutation.SetBehavioralScore(v)
	return _u
}

// SetNillableBehavioralScore sets the "behavioral_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableBehavioralScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetBehavioralScore(*v)
	}
	return _u
}

// AddBehavioralScore adds value to the "behavioral_score" field.
func (_u *EvaluationResultUpdate) AddBehavioralScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddBehavioralScore(v)
	return _u
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (_u *EvaluationResultUpdate) ClearBehavioralScore() *EvaluationResultUpdate {
	_u.mutation.ClearBehavioralScore()
	return _u
}

// SetCodingScore sets the "coding_score" field.
func (_u *EvaluationResultUpdate) SetCodingScore(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetCodingScore()
	_u.mutation.SetCodingScore(v)
	return _u
}

// SetNillableCodingScore sets the "coding_score" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableCodingScore(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetCodingScore(*v)
	}
	return _u
}

// AddCodingScore adds value to the "coding_score" field.
func (_u *EvaluationResultUpdate) AddCodingScore(v float64) *EvaluationResultUpdate {
	_u.mutation.AddCodingScore(v)
	return _u
}

// ClearCodingScore clears the value of the "coding_score" field.
func (_u *EvaluationResultUpdate) ClearCodingScore() *EvaluationResultUpdate {
	_u.mutation.ClearCodingScore()
	return _u
}

// SetResumeFeedback sets the "resume_feedback" field.
func (_u *EvaluationResultUpdate) SetResumeFeedback(v string) *EvaluationResultUpdate {
	_u.mutation.SetResumeFeedback(v)
	return _u
}

// SetNillableResumeFeedback sets the "resume_feedback" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableResumeFeedback(v *string) *EvaluationResultUpdate {
	if v != nil {
		_u.SetResumeFeedback(*v)
	}
	return _u
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (_u *EvaluationResultUpdate) ClearResumeFeedback() *EvaluationResultUpdate {
	_u.mutation.ClearResumeFeedback()
	return _u
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (_u *EvaluationResultUpdate) SetAnswersFeedback(v string) *EvaluationResultUpdate {
	_u.mutation.SetAnswersFeedback(v)
	return _u
}

// SetNillableAnswersFeedback sets the "answers_feedback" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableAnswersFeedback(v *string) *EvaluationResultUpdate {
	if v != nil {
		_u.SetAnswersFeedback(*v)
	}
	return _u
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (_u *EvaluationResultUpdate) ClearAnswersFeedback() *EvaluationResultUpdate {
	_u.mutation.ClearAnswersFeedback()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *EvaluationResultUpdate) SetRecommendation(v string) *EvaluationResultUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableRecommendation(v *string) *EvaluationResultUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *EvaluationResultUpdate) ClearRecommendation() *EvaluationResultUpdate {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (_u *EvaluationResultUpdate) SetHireRecommendation(v bool) *EvaluationResultUpdate {
	_u.mutation.SetHireRecommendation(v)
	return _u
}

// SetNillableHireRecommendation sets the "hire_recommendation" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableHireRecommendation(v *bool) *EvaluationResultUpdate {
	if v != nil {
		_u.SetHireRecommendation(*v)
	}
	return _u
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (_u *EvaluationResultUpdate) ClearHireRecommendation() *EvaluationResultUpdate {
	_u.mutation.ClearHireRecommendation()
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *EvaluationResultUpdate) SetConfidenceLevel(v float64) *EvaluationResultUpdate {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableConfidenceLevel(v *float64) *EvaluationResultUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *EvaluationResultUpdate) AddConfidenceLevel(v float64) *EvaluationResultUpdate {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// SetWarningSummary sets the "warning_summary" field.
func (_u *EvaluationResultUpdate) SetWarningSummary(v string) *EvaluationResultUpdate {
	_u.mutation.SetWarningSummary(v)
	return _u
}

// SetNillableWarningSummary sets the "warning_summary" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableWarningSummary(v *string) *EvaluationResultUpdate {
	if v != nil {
		_u.SetWarningSummary(*v)
	}
	return _u
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (_u *EvaluationResultUpdate) ClearWarningSummary() *EvaluationResultUpdate {
	_u.mutation.ClearWarningSummary()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationResultUpdate) SetMetrics(v map[string]interface{}) *EvaluationResultUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *EvaluationResultUpdate) ClearMetrics() *EvaluationResultUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetIsFallback sets the "is_fallback" field.
func (_u *EvaluationResultUpdate) SetIsFallback(v bool) *EvaluationResultUpdate {
	_u.mutation.SetIsFallback(v)
	return _u
}

// SetNillableIsFallback sets the "is_fallback" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableIsFallback(v *bool) *EvaluationResultUpdate {
	if v != nil {
		_u.SetIsFallback(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *EvaluationResultUpdate) SetModelUsed(v string) *EvaluationResultUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *EvaluationResultUpdate) SetNillableModelUsed(v *string) *EvaluationResultUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *EvaluationResultUpdate) ClearModelUsed() *EvaluationResultUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// Mutation returns the EvaluationResultMutation object of the builder.
func (_u *EvaluationResultUpdate) Mutation() *EvaluationResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationResultUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResult.session"`)
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResult.interview"`)
	}
	return nil
}

func (_u *EvaluationResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationresult.Table, evaluationresult.Columns, sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResumeScore(); ok {
		_spec.SetField(evaluationresult.FieldResumeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResumeScore(); ok {
		_spec.AddField(evaluationresult.FieldResumeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnswersScore(); ok {
		_spec.SetField(evaluationresult.FieldAnswersScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswersScore(); ok {
		_spec.AddField(evaluationresult.FieldAnswersScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluationresult.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluationresult.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(evaluationresult.FieldTechnicalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(evaluationresult.FieldTechnicalScore, field.TypeFloat64, value)
	}
	if _u.mutation.TechnicalScoreCleared() {
		_spec.ClearField(evaluationresult.FieldTechnicalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BehavioralScore(); ok {
		_spec.SetField(evaluationresult.FieldBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBehavioralScore(); ok {
		_spec.AddField(evaluationresult.FieldBehavioralScore, field.TypeFloat64, value)
	}
	if _u.mutation.BehavioralScoreCleared() {
		_spec.ClearField(evaluationresult.FieldBehavioralScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CodingScore(); ok {
		_spec.SetField(evaluationresult.FieldCodingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCodingScore(); ok {
		_spec.AddField(evaluationresult.FieldCodingScore, field.TypeFloat64, value)
	}
	if _u.mutation.CodingScoreCleared() {
		_spec.ClearField(evaluationresult.FieldCodingScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ResumeFeedback(); ok {
		_spec.SetField(evaluationresult.FieldResumeFeedback, field.TypeString, value)
	}
	if _u.mutation.ResumeFeedbackCleared() {
		_spec.ClearField(evaluationresult.FieldResumeFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AnswersFeedback(); ok {
		_spec.SetField(evaluationresult.FieldAnswersFeedback, field.TypeString, value)
	}
	if _u.mutation.AnswersFeedbackCleared() {
		_spec.ClearField(evaluationresult.FieldAnswersFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(evaluationresult.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(evaluationresult.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.HireRecommendation(); ok {
		_spec.SetField(evaluationresult.FieldHireRecommendation, field.TypeBool, value)
	}
	if _u.mutation.HireRecommendationCleared() {
		_spec.ClearField(evaluationresult.FieldHireRecommendation, field.TypeBool)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationresult.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(evaluationresult.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WarningSummary(); ok {
		_spec.SetField(evaluationresult.FieldWarningSummary, field.TypeString, value)
	}
	if _u.mutation.WarningSummaryCleared() {
		_spec.ClearField(evaluationresult.FieldWarningSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationresult.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(evaluationresult.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsFallback(); ok {
		_spec.SetField(evaluationresult.FieldIsFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(evaluationresult.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(evaluationresult.FieldModelUsed, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationResultUpdateOne is the builder for updating a single EvaluationResult entity.
type EvaluationResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationResultMutation
}

// SetResumeScore sets the "resume_score" field.
func (_u *EvaluationResultUpdateOne) SetResumeScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetResumeScore()
	_u.mutation.SetResumeScore(v)
	return _u
}

// SetNillableResumeScore sets the "resume_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableResumeScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetResumeScore(*v)
	}
	return _u
}

// AddResumeScore adds value to the "resume_score" field.
func (_u *EvaluationResultUpdateOne) AddResumeScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddResumeScore(v)
	return _u
}

// SetAnswersScore sets the "answers_score" field.
func (_u *EvaluationResultUpdateOne) SetAnswersScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetAnswersScore()
	_u.mutation.SetAnswersScore(v)
	return _u
}

// SetNillableAnswersScore sets the "answers_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableAnswersScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetAnswersScore(*v)
	}
	return _u
}

// AddAnswersScore adds value to the "answers_score" field.
func (_u *EvaluationResultUpdateOne) AddAnswersScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddAnswersScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationResultUpdateOne) SetOverallScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableOverallScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationResultUpdateOne) AddOverallScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *EvaluationResultUpdateOne) SetTechnicalScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableTechnicalScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *EvaluationResultUpdateOne) AddTechnicalScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (_u *EvaluationResultUpdateOne) ClearTechnicalScore() *EvaluationResultUpdateOne {
	_u.mutation.ClearTechnicalScore()
	return _u
}

// SetBehavioralScore sets the "behavioral_score" field.
func (_u *EvaluationResultUpdateOne) SetBehavioralScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetBehavioralScore()
	_u.mutation.SetBehavioralScore(v)
	return _u
}

// SetNillableBehavioralScore sets the "behavioral_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableBehavioralScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetBehavioralScore(*v)
	}
	return _u
}

// AddBehavioralScore adds value to the "behavioral_score" field.
func (_u *EvaluationResultUpdateOne) AddBehavioralScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddBehavioralScore(v)
	return _u
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (_u *EvaluationResultUpdateOne) ClearBehavioralScore() *EvaluationResultUpdateOne {
	_u.mutation.ClearBehavioralScore()
	return _u
}

// SetCodingScore sets the "coding_score" field.
func (_u *EvaluationResultUpdateOne) SetCodingScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetCodingScore()
	_u.mutation.SetCodingScore(v)
	return _u
}

// SetNillableCodingScore sets the "coding_score" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableCodingScore(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetCodingScore(*v)
	}
	return _u
}

// AddCodingScore adds value to the "coding_score" field.
func (_u *EvaluationResultUpdateOne) AddCodingScore(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddCodingScore(v)
	return _u
}

// ClearCodingScore clears the value of the "coding_score" field.
func (_u *EvaluationResultUpdateOne) ClearCodingScore() *EvaluationResultUpdateOne {
	_u.mutation.ClearCodingScore()
	return _u
}

// SetResumeFeedback sets the "resume_feedback" field.
func (_u *EvaluationResultUpdateOne) SetResumeFeedback(v string) *EvaluationResultUpdateOne {
	_u.mutation.SetResumeFeedback(v)
	return _u
}

// SetNillableResumeFeedback sets the "resume_feedback" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableResumeFeedback(v *string) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetResumeFeedback(*v)
	}
	return _u
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (_u *EvaluationResultUpdateOne) ClearResumeFeedback() *EvaluationResultUpdateOne {
	_u.mutation.ClearResumeFeedback()
	return _u
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (_u *EvaluationResultUpdateOne) SetAnswersFeedback(v string) *EvaluationResultUpdateOne {
	_u.mutation.SetAnswersFeedback(v)
	return _u
}

// SetNillableAnswersFeedback sets the "answers_feedback" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableAnswersFeedback(v *string) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetAnswersFeedback(*v)
	}
	return _u
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (_u *EvaluationResultUpdateOne) ClearAnswersFeedback() *EvaluationResultUpdateOne {
	_u.mutation.ClearAnswersFeedback()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *EvaluationResultUpdateOne) SetRecommendation(v string) *EvaluationResultUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableRecommendation(v *string) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *EvaluationResultUpdateOne) ClearRecommendation() *EvaluationResultUpdateOne {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (_u *EvaluationResultUpdateOne) SetHireRecommendation(v bool) *EvaluationResultUpdateOne {
	_u.mutation.SetHireRecommendation(v)
	return _u
}

// SetNillableHireRecommendation sets the "hire_recommendation" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableHireRecommendation(v *bool) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetHireRecommendation(*v)
	}
	return _u
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (_u *EvaluationResultUpdateOne) ClearHireRecommendation() *EvaluationResultUpdateOne {
	_u.mutation.ClearHireRecommendation()
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *EvaluationResultUpdateOne) SetConfidenceLevel(v float64) *EvaluationResultUpdateOne {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableConfidenceLevel(v *float64) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *EvaluationResultUpdateOne) AddConfidenceLevel(v float64) *EvaluationResultUpdateOne {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// SetWarningSummary sets the "warning_summary" field.
func (_u *EvaluationResultUpdateOne) SetWarningSummary(v string) *EvaluationResultUpdateOne {
	_u.mutation.SetWarningSummary(v)
	return _u
}

// SetNillableWarningSummary sets the "warning_summary" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableWarningSummary(v *string) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetWarningSummary(*v)
	}
	return _u
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (_u *EvaluationResultUpdateOne) ClearWarningSummary() *EvaluationResultUpdateOne {
	_u.mutation.ClearWarningSummary()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationResultUpdateOne) SetMetrics(v map[string]interface{}) *EvaluationResultUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *EvaluationResultUpdateOne) ClearMetrics() *EvaluationResultUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetIsFallback sets the "is_fallback" field.
func (_u *EvaluationResultUpdateOne) SetIsFallback(v bool) *EvaluationResultUpdateOne {
	_u.mutation.SetIsFallback(v)
	return _u
}

// SetNillableIsFallback sets the "is_fallback" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableIsFallback(v *bool) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetIsFallback(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *EvaluationResultUpdateOne) SetModelUsed(v string) *EvaluationResultUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *EvaluationResultUpdateOne) SetNillableModelUsed(v *string) *EvaluationResultUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *EvaluationResultUpdateOne) ClearModelUsed() *EvaluationResultUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// Mutation returns the EvaluationResultMutation object of the builder.
func (_u *EvaluationResultUpdateOne) Mutation() *EvaluationResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationResultUpdate builder.
func (_u *EvaluationResultUpdateOne) Where(ps ...predicate.EvaluationResult) *EvaluationResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationResultUpdateOne) Select(field string, fields ...string) *EvaluationResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationResult entity.
func (_u *EvaluationResultUpdateOne) Save(ctx context.Context) (*EvaluationResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationResultUpdateOne) SaveX(ctx context.Context) *EvaluationResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationResultUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResult.session"`)
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResult.interview"`)
	}
	return nil
}

func (_u *EvaluationResultUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationresult.Table, evaluationresult.Columns, sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationresult.FieldID)
		for _, f := range fields {
			if !evaluationresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationresult.FieldID {
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
	if value, ok := _u.mutation.ResumeScore(); ok {
		_spec.SetField(evaluationresult.FieldResumeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResumeScore(); ok {
		_spec.AddField(evaluationresult.FieldResumeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnswersScore(); ok {
		_spec.SetField(evaluationresult.FieldAnswersScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswersScore(); ok {
		_spec.AddField(evaluationresult.FieldAnswersScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluationresult.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluationresult.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(evaluationresult.FieldTechnicalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(evaluationresult.FieldTechnicalScore, field.TypeFloat64, value)
	}
	if _u.mutation.TechnicalScoreCleared() {
		_spec.ClearField(evaluationresult.FieldTechnicalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BehavioralScore(); ok {
		_spec.SetField(evaluationresult.FieldBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBehavioralScore(); ok {
		_spec.AddField(evaluationresult.FieldBehavioralScore, field.TypeFloat64, value)
	}
	if _u.mutation.BehavioralScoreCleared() {
		_spec.ClearField(evaluationresult.FieldBehavioralScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CodingScore(); ok {
		_spec.SetField(evaluationresult.FieldCodingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCodingScore(); ok {
		_spec.AddField(evaluationresult.FieldCodingScore, field.TypeFloat64, value)
	}
	if _u.mutation.CodingScoreCleared() {
		_spec.ClearField(evaluationresult.FieldCodingScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ResumeFeedback(); ok {
		_spec.SetField(evaluationresult.FieldResumeFeedback, field.TypeString, value)
	}
	if _u.mutation.ResumeFeedbackCleared() {
		_spec.ClearField(evaluationresult.FieldResumeFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AnswersFeedback(); ok {
		_spec.SetField(evaluationresult.FieldAnswersFeedback, field.TypeString, value)
	}
	if _u.mutation.AnswersFeedbackCleared() {
		_spec.ClearField(evaluationresult.FieldAnswersFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(evaluationresult.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(evaluationresult.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.HireRecommendation(); ok {
		_spec.SetField(evaluationresult.FieldHireRecommendation, field.TypeBool, value)
	}
	if _u.mutation.HireRecommendationCleared() {
		_spec.ClearField(evaluationresult.FieldHireRecommendation, field.TypeBool)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationresult.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(evaluationresult.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WarningSummary(); ok {
		_spec.SetField(evaluationresult.FieldWarningSummary, field.TypeString, value)
	}
	if _u.mutation.WarningSummaryCleared() {
		_spec.ClearField(evaluationresult.FieldWarningSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationresult.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(evaluationresult.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsFallback(); ok {
		_spec.SetField(evaluationresult.FieldIsFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(evaluationresult.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(evaluationresult.FieldModelUsed, field.TypeString)
	}
	_node = &EvaluationResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
