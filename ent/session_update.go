// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/warninglog"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *SessionUpdate) SetCandidateName(v string) *SessionUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCandidateName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetCandidateEmail sets the "candidate_email" field.
func (_u *SessionUpdate) SetCandidateEmail(v string) *SessionUpdate {
	_u.mutation.SetCandidateEmail(v)
	return _u
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCandidateEmail(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCandidateEmail(*v)
	}
	return _u
}

// SetJobDescription sets the "job_description" field.
func (_u *SessionUpdate) SetJobDescription(v string) *SessionUpdate {
	_u.mutation.SetJobDescription(v)
	return _u
}

// SetNillableJobDescription sets the "job_description" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableJobDescription(v *string) *SessionUpdate {
	if v != nil {
		_u.SetJobDescription(*v)
	}
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *SessionUpdate) SetResumeText(v string) *SessionUpdate {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableResumeText(v *string) *SessionUpdate {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *SessionUpdate) ClearResumeText() *SessionUpdate {
	_u.mutation.ClearResumeText()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionUpdate) SetLanguage(v string) *SessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLanguage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAccent sets the "accent" field.
func (_u *SessionUpdate) SetAccent(v string) *SessionUpdate {
	_u.mutation.SetAccent(v)
	return _u
}

// SetNillableAccent sets the "accent" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAccent(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAccent(*v)
	}
	return _u
}

// ClearAccent clears the value of the "accent" field.
func (_u *SessionUpdate) ClearAccent() *SessionUpdate {
	_u.mutation.ClearAccent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_u *SessionUpdate) SetCurrentQuestionIndex(v int) *SessionUpdate {
	_u.mutation.ResetCurrentQuestionIndex()
	_u.mutation.SetCurrentQuestionIndex(v)
	return _u
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCurrentQuestionIndex(v *int) *SessionUpdate {
	if v != nil {
		_u.SetCurrentQuestionIndex(*v)
	}
	return _u
}

// AddCurrentQuestionIndex adds value to the "current_question_index" field.
func (_u *SessionUpdate) AddCurrentQuestionIndex(v int) *SessionUpdate {
	_u.mutation.AddCurrentQuestionIndex(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionUpdate) SetTotalQuestions(v int) *SessionUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalQuestions(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionUpdate) AddTotalQuestions(v int) *SessionUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetSessionStartedAt sets the "session_started_at" field.
func (_u *SessionUpdate) SetSessionStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetSessionStartedAt(v)
	return _u
}

// SetNillableSessionStartedAt sets the "session_started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetSessionStartedAt(*v)
	}
	return _u
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (_u *SessionUpdate) ClearSessionStartedAt() *SessionUpdate {
	_u.mutation.ClearSessionStartedAt()
	return _u
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (_u *SessionUpdate) SetSessionEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetSessionEndedAt(v)
	return _u
}

// SetNillableSessionEndedAt sets the "session_ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetSessionEndedAt(*v)
	}
	return _u
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (_u *SessionUpdate) ClearSessionEndedAt() *SessionUpdate {
	_u.mutation.ClearSessionEndedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *SessionUpdate) SetLastInteractionAt(v time.Time) *SessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastInteractionAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *SessionUpdate) ClearLastInteractionAt() *SessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (_u *SessionUpdate) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionUpdate {
	_u.mutation.SetIDVerificationStatus(v)
	return _u
}

// SetNillableIDVerificationStatus sets the "id_verification_status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIDVerificationStatus(v *session.IDVerificationStatus) *SessionUpdate {
	if v != nil {
		_u.SetIDVerificationStatus(*v)
	}
	return _u
}

// SetIDDetails sets the "id_details" field.
func (_u *SessionUpdate) SetIDDetails(v string) *SessionUpdate {
	_u.mutation.SetIDDetails(v)
	return _u
}

// SetNillableIDDetails sets the "id_details" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIDDetails(v *string) *SessionUpdate {
	if v != nil {
		_u.SetIDDetails(*v)
	}
	return _u
}

// ClearIDDetails clears the value of the "id_details" field.
func (_u *SessionUpdate) ClearIDDetails() *SessionUpdate {
	_u.mutation.ClearIDDetails()
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *SessionUpdate) SetModelConfig(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetModelConfig(v)
	return _u
}

// ClearModelConfig clears the value of the "model_config" field.
func (_u *SessionUpdate) ClearModelConfig() *SessionUpdate {
	_u.mutation.ClearModelConfig()
	return _u
}

// SetIsEvaluated sets the "is_evaluated" field.
func (_u *SessionUpdate) SetIsEvaluated(v bool) *SessionUpdate {
	_u.mutation.SetIsEvaluated(v)
	return _u
}

// SetNillableIsEvaluated sets the "is_evaluated" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIsEvaluated(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetIsEvaluated(*v)
	}
	return _u
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (_u *SessionUpdate) SetEvaluationAttempts(v int) *SessionUpdate {
	_u.mutation.ResetEvaluationAttempts()
	_u.mutation.SetEvaluationAttempts(v)
	return _u
}

// SetNillableEvaluationAttempts sets the "evaluation_attempts" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEvaluationAttempts(v *int) *SessionUpdate {
	if v != nil {
		_u.SetEvaluationAttempts(*v)
	}
	return _u
}

// AddEvaluationAttempts adds value to the "evaluation_attempts" field.
func (_u *SessionUpdate) AddEvaluationAttempts(v int) *SessionUpdate {
	_u.mutation.AddEvaluationAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *SessionUpdate) SetClaimedBy(v string) *SessionUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableClaimedBy(v *string) *SessionUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *SessionUpdate) ClearClaimedBy() *SessionUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetVideoPath sets the "video_path" field.
func (_u *SessionUpdate) SetVideoPath(v string) *SessionUpdate {
	_u.mutation.SetVideoPath(v)
	return _u
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableVideoPath(v *string) *SessionUpdate {
	if v != nil {
		_u.SetVideoPath(*v)
	}
	return _u
}

// ClearVideoPath clears the value of the "video_path" field.
func (_u *SessionUpdate) ClearVideoPath() *SessionUpdate {
	_u.mutation.ClearVideoPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *SessionUpdate) AddQuestionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *SessionUpdate) AddQuestions(v ...*Question) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_u *SessionUpdate) AddResponseIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the Response entity.
func (_u *SessionUpdate) AddResponses(v ...*Response) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddCodeSubmissionIDs adds the "code_submissions" edge to the CodeSubmission entity by IDs.
func (_u *SessionUpdate) AddCodeSubmissionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddCodeSubmissionIDs(ids...)
	return _u
}

// AddCodeSubmissions adds the "code_submissions" edges to the CodeSubmission entity.
func (_u *SessionUpdate) AddCodeSubmissions(v ...*CodeSubmission) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeSubmissionIDs(ids...)
}

// AddWarningLogIDs adds the "warning_logs" edge to the WarningLog entity by IDs.
func (_u *SessionUpdate) AddWarningLogIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddWarningLogIDs(ids...)
	return _u
}

// AddWarningLogs adds the "warning_logs" edges to the WarningLog entity.
func (_u *SessionUpdate) AddWarningLogs(v ...*WarningLog) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWarningLogIDs(ids...)
}

// SetResultID sets the "result" edge to the EvaluationResult entity by ID.
func (_u *SessionUpdate) SetResultID(id string) *SessionUpdate {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the EvaluationResult entity by ID if the given value is not nil.
func (_u *SessionUpdate) SetNillableResultID(id *string) *SessionUpdate {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the EvaluationResult entity.
func (_u *SessionUpdate) SetResult(v *EvaluationResult) *SessionUpdate {
	return _u.SetResultID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *SessionUpdate) ClearQuestions() *SessionUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *SessionUpdate) RemoveQuestionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *SessionUpdate) RemoveQuestions(v ...*Question) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearResponses clears all "responses" edges to the Response entity.
func (_u *SessionUpdate) ClearResponses() *SessionUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to Response entities by IDs.
func (_u *SessionUpdate) RemoveResponseIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to Response entities.
func (_u *SessionUpdate) RemoveResponses(v ...*Response) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearCodeSubmissions clears all "code_submissions" edges to the CodeSubmission entity.
func (_u *SessionUpdate) ClearCodeSubmissions() *SessionUpdate {
	_u.mutation.ClearCodeSubmissions()
	return _u
}

// RemoveCodeSubmissionIDs removes the "code_submissions" edge to CodeSubmission entities by IDs.
func (_u *SessionUpdate) RemoveCodeSubmissionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveCodeSubmissionIDs(ids...)
	return _u
}

// RemoveCodeSubmissions removes "code_submissions" edges to CodeSubmission entities.
func (_u *SessionUpdate) RemoveCodeSubmissions(v ...*CodeSubmission) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeSubmissionIDs(ids...)
}

// ClearWarningLogs clears all "warning_logs" edges to the WarningLog entity.
func (_u *SessionUpdate) ClearWarningLogs() *SessionUpdate {
	_u.mutation.ClearWarningLogs()
	return _u
}

// RemoveWarningLogIDs removes the "warning_logs" edge to WarningLog entities by IDs.
func (_u *SessionUpdate) RemoveWarningLogIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveWarningLogIDs(ids...)
	return _u
}

// RemoveWarningLogs removes "warning_logs" edges to WarningLog entities.
func (_u *SessionUpdate) RemoveWarningLogs(v ...*WarningLog) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWarningLogIDs(ids...)
}

// ClearResult clears the "result" edge to the EvaluationResult entity.
func (_u *SessionUpdate) ClearResult() *SessionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IDVerificationStatus(); ok {
		if err := session.IDVerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "id_verification_status", err: fmt.Errorf(`ent: validator failed for field "Session.id_verification_status": %w`, err)}
		}
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.interview"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(session.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateEmail(); ok {
		_spec.SetField(session.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobDescription(); ok {
		_spec.SetField(session.FieldJobDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(session.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(session.FieldResumeText, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accent(); ok {
		_spec.SetField(session.FieldAccent, field.TypeString, value)
	}
	if _u.mutation.AccentCleared() {
		_spec.ClearField(session.FieldAccent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(session.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestionIndex(); ok {
		_spec.AddField(session.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(session.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(session.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionStartedAt(); ok {
		_spec.SetField(session.FieldSessionStartedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionStartedAtCleared() {
		_spec.ClearField(session.FieldSessionStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionEndedAt(); ok {
		_spec.SetField(session.FieldSessionEndedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionEndedAtCleared() {
		_spec.ClearField(session.FieldSessionEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(session.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IDVerificationStatus(); ok {
		_spec.SetField(session.FieldIDVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IDDetails(); ok {
		_spec.SetField(session.FieldIDDetails, field.TypeString, value)
	}
	if _u.mutation.IDDetailsCleared() {
		_spec.ClearField(session.FieldIDDetails, field.TypeString)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeJSON, value)
	}
	if _u.mutation.ModelConfigCleared() {
		_spec.ClearField(session.FieldModelConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEvaluated(); ok {
		_spec.SetField(session.FieldIsEvaluated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvaluationAttempts(); ok {
		_spec.SetField(session.FieldEvaluationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluationAttempts(); ok {
		_spec.AddField(session.FieldEvaluationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(session.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(session.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.VideoPath(); ok {
		_spec.SetField(session.FieldVideoPath, field.TypeString, value)
	}
	if _u.mutation.VideoPathCleared() {
		_spec.ClearField(session.FieldVideoPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
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
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
	if _u.mutation.CodeSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.CodeSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarningLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWarningLogsIDs(); len(nodes) > 0 && !_u.mutation.WarningLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarningLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ResultTable,
			Columns: []string{session.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ResultTable,
			Columns: []string{session.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetCandidateName sets the "candidate_name" field.
func (_u *SessionUpdateOne) SetCandidateName(v string) *SessionUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCandidateName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetCandidateEmail sets the "candidate_email" field.
func (_u *SessionUpdateOne) SetCandidateEmail(v string) *SessionUpdateOne {
	_u.mutation.SetCandidateEmail(v)
	return _u
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCandidateEmail(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCandidateEmail(*v)
	}
	return _u
}

// SetJobDescription sets the "job_description" field.
func (_u *SessionUpdateOne) SetJobDescription(v string) *SessionUpdateOne {
	_u.mutation.SetJobDescription(v)
	return _u
}

// SetNillableJobDescription sets the "job_description" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableJobDescription(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetJobDescription(*v)
	}
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *SessionUpdateOne) SetResumeText(v string) *SessionUpdateOne {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableResumeText(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *SessionUpdateOne) ClearResumeText() *SessionUpdateOne {
	_u.mutation.ClearResumeText()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionUpdateOne) SetLanguage(v string) *SessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLanguage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAccent sets the "accent" field.
func (_u *SessionUpdateOne) SetAccent(v string) *SessionUpdateOne {
	_u.mutation.SetAccent(v)
	return _u
}

// SetNillableAccent sets the "accent" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAccent(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAccent(*v)
	}
	return _u
}

// ClearAccent clears the value of the "accent" field.
func (_u *SessionUpdateOne) ClearAccent() *SessionUpdateOne {
	_u.mutation.ClearAccent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_u *SessionUpdateOne) SetCurrentQuestionIndex(v int) *SessionUpdateOne {
	_u.mutation.ResetCurrentQuestionIndex()
	_u.mutation.SetCurrentQuestionIndex(v)
	return _u
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCurrentQuestionIndex(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetCurrentQuestionIndex(*v)
	}
	return _u
}

// AddCurrentQuestionIndex adds value to the "current_question_index" field.
func (_u *SessionUpdateOne) AddCurrentQuestionIndex(v int) *SessionUpdateOne {
	_u.mutation.AddCurrentQuestionIndex(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionUpdateOne) SetTotalQuestions(v int) *SessionUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalQuestions(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionUpdateOne) AddTotalQuestions(v int) *SessionUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetSessionStartedAt sets the "session_started_at" field.
func (_u *SessionUpdateOne) SetSessionStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetSessionStartedAt(v)
	return _u
}

// SetNillableSessionStartedAt sets the "session_started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionStartedAt(*v)
	}
	return _u
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (_u *SessionUpdateOne) ClearSessionStartedAt() *SessionUpdateOne {
	_u.mutation.ClearSessionStartedAt()
	return _u
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (_u *SessionUpdateOne) SetSessionEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetSessionEndedAt(v)
	return _u
}

// SetNillableSessionEndedAt sets the "session_ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionEndedAt(*v)
	}
	return _u
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (_u *SessionUpdateOne) ClearSessionEndedAt() *SessionUpdateOne {
	_u.mutation.ClearSessionEndedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *SessionUpdateOne) SetLastInteractionAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *SessionUpdateOne) ClearLastInteractionAt() *SessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (_u *SessionUpdateOne) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionUpdateOne {
	_u.mutation.SetIDVerificationStatus(v)
	return _u
}

// SetNillableIDVerificationStatus sets the "id_verification_status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIDVerificationStatus(v *session.IDVerificationStatus) *SessionUpdateOne {
	if v != nil {
		_u.SetIDVerificationStatus(*v)
	}
	return _u
}

// SetIDDetails sets the "id_details" field.
func (_u *SessionUpdateOne) SetIDDetails(v string) *SessionUpdateOne {
	_u.mutation.SetIDDetails(v)
	return _u
}

// SetNillableIDDetails sets the "id_details" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIDDetails(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetIDDetails(*v)
	}
	return _u
}

// ClearIDDetails clears the value of the "id_details" field.
func (_u *SessionUpdateOne) ClearIDDetails() *SessionUpdateOne {
	_u.mutation.ClearIDDetails()
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *SessionUpdateOne) SetModelConfig(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetModelConfig(v)
	return _u
}

// ClearModelConfig clears the value of the "model_config" field.
func (_u *SessionUpdateOne) ClearModelConfig() *SessionUpdateOne {
	_u.mutation.ClearModelConfig()
	return _u
}

// SetIsEvaluated sets the "is_evaluated" field.
func (_u *SessionUpdateOne) SetIsEvaluated(v bool) *SessionUpdateOne {
	_u.mutation.SetIsEvaluated(v)
	return _u
}

// SetNillableIsEvaluated sets the "is_evaluated" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIsEvaluated(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetIsEvaluated(*v)
	}
	return _u
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (_u *SessionUpdateOne) SetEvaluationAttempts(v int) *SessionUpdateOne {
	_u.mutation.ResetEvaluationAttempts()
	_u.mutation.SetEvaluationAttempts(v)
	return _u
}

// SetNillableEvaluationAttempts sets the "evaluation_attempts" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEvaluationAttempts(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetEvaluationAttempts(*v)
	}
	return _u
}

// AddEvaluationAttempts adds value to the "evaluation_attempts" field.
func (_u *SessionUpdateOne) AddEvaluationAttempts(v int) *SessionUpdateOne {
	_u.mutation.AddEvaluationAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *SessionUpdateOne) SetClaimedBy(v string) *SessionUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableClaimedBy(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *SessionUpdateOne) ClearClaimedBy() *SessionUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetVideoPath sets the "video_path" field.
func (_u *SessionUpdateOne) SetVideoPath(v string) *SessionUpdateOne {
	_u.mutation.SetVideoPath(v)
	return _u
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableVideoPath(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetVideoPath(*v)
	}
	return _u
}

// ClearVideoPath clears the value of the "video_path" field.
func (_u *SessionUpdateOne) ClearVideoPath() *SessionUpdateOne {
	_u.mutation.ClearVideoPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *SessionUpdateOne) AddQuestionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *SessionUpdateOne) AddQuestions(v ...*Question) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_u *SessionUpdateOne) AddResponseIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the Response entity.
func (_u *SessionUpdateOne) AddResponses(v ...*Response) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddCodeSubmissionIDs adds the "code_submissions" edge to the CodeSubmission entity by IDs.
func (_u *SessionUpdateOne) AddCodeSubmissionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddCodeSubmissionIDs(ids...)
	return _u
}

// AddCodeSubmissions adds the "code_submissions" edges to the CodeSubmission entity.
func (_u *SessionUpdateOne) AddCodeSubmissions(v ...*CodeSubmission) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeSubmissionIDs(ids...)
}

// AddWarningLogIDs adds the "warning_logs" edge to the WarningLog entity by IDs.
func (_u *SessionUpdateOne) AddWarningLogIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddWarningLogIDs(ids...)
	return _u
}

// AddWarningLogs adds the "warning_logs" edges to the WarningLog entity.
func (_u *SessionUpdateOne) AddWarningLogs(v ...*WarningLog) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWarningLogIDs(ids...)
}

// SetResultID sets the "result" edge to the EvaluationResult entity by ID.
func (_u *SessionUpdateOne) SetResultID(id string) *SessionUpdateOne {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the EvaluationResult entity by ID if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableResultID(id *string) *SessionUpdateOne {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the EvaluationResult entity.
func (_u *SessionUpdateOne) SetResult(v *EvaluationResult) *SessionUpdateOne {
	return _u.SetResultID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *SessionUpdateOne) ClearQuestions() *SessionUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *SessionUpdateOne) RemoveQuestionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *SessionUpdateOne) RemoveQuestions(v ...*Question) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearResponses clears all "responses" edges to the Response entity.
func (_u *SessionUpdateOne) ClearResponses() *SessionUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to Response entities by IDs.
func (_u *SessionUpdateOne) RemoveResponseIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to Response entities.
func (_u *SessionUpdateOne) RemoveResponses(v ...*Response) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearCodeSubmissions clears all "code_submissions" edges to the CodeSubmission entity.
func (_u *SessionUpdateOne) ClearCodeSubmissions() *SessionUpdateOne {
	_u.mutation.ClearCodeSubmissions()
	return _u
}

// RemoveCodeSubmissionIDs removes the "code_submissions" edge to CodeSubmission entities by IDs.
func (_u *SessionUpdateOne) RemoveCodeSubmissionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveCodeSubmissionIDs(ids...)
	return _u
}

// RemoveCodeSubmissions removes "code_submissions" edges to CodeSubmission entities.
func (_u *SessionUpdateOne) RemoveCodeSubmissions(v ...*CodeSubmission) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeSubmissionIDs(ids...)
}

// ClearWarningLogs clears all "warning_logs" edges to the WarningLog entity.
func (_u *SessionUpdateOne) ClearWarningLogs() *SessionUpdateOne {
	_u.mutation.ClearWarningLogs()
	return _u
}

// RemoveWarningLogIDs removes the "warning_logs" edge to WarningLog entities by IDs.
func (_u *SessionUpdateOne) RemoveWarningLogIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveWarningLogIDs(ids...)
	return _u
}

// RemoveWarningLogs removes "warning_logs" edges to WarningLog entities.
func (_u *SessionUpdateOne) RemoveWarningLogs(v ...*WarningLog) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWarningLogIDs(ids...)
}

// ClearResult clears the "result" edge to the EvaluationResult entity.
func (_u *SessionUpdateOne) ClearResult() *SessionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IDVerificationStatus(); ok {
		if err := session.IDVerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "id_verification_status", err: fmt.Errorf(`ent: validator failed for field "Session.id_verification_status": %w`, err)}
		}
	}
	if _u.mutation.InterviewCleared() && len(_u.mutation.InterviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.interview"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(session.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateEmail(); ok {
		_spec.SetField(session.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobDescription(); ok {
		_spec.SetField(session.FieldJobDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(session.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(session.FieldResumeText, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accent(); ok {
		_spec.SetField(session.FieldAccent, field.TypeString, value)
	}
	if _u.mutation.AccentCleared() {
		_spec.ClearField(session.FieldAccent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(session.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestionIndex(); ok {
		_spec.AddField(session.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(session.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(session.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionStartedAt(); ok {
		_spec.SetField(session.FieldSessionStartedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionStartedAtCleared() {
		_spec.ClearField(session.FieldSessionStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionEndedAt(); ok {
		_spec.SetField(session.FieldSessionEndedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionEndedAtCleared() {
		_spec.ClearField(session.FieldSessionEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(session.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IDVerificationStatus(); ok {
		_spec.SetField(session.FieldIDVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IDDetails(); ok {
		_spec.SetField(session.FieldIDDetails, field.TypeString, value)
	}
	if _u.mutation.IDDetailsCleared() {
		_spec.ClearField(session.FieldIDDetails, field.TypeString)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeJSON, value)
	}
	if _u.mutation.ModelConfigCleared() {
		_spec.ClearField(session.FieldModelConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEvaluated(); ok {
		_spec.SetField(session.FieldIsEvaluated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvaluationAttempts(); ok {
		_spec.SetField(session.FieldEvaluationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluationAttempts(); ok {
		_spec.AddField(session.FieldEvaluationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(session.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(session.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.VideoPath(); ok {
		_spec.SetField(session.FieldVideoPath, field.TypeString, value)
	}
	if _u.mutation.VideoPathCleared() {
		_spec.ClearField(session.FieldVideoPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
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
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
			Table:   session.ResponsesTable,
			Columns: []string{session.ResponsesColumn},
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
	if _u.mutation.CodeSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.CodeSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CodeSubmissionsTable,
			Columns: []string{session.CodeSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codesubmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarningLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWarningLogsIDs(); len(nodes) > 0 && !_u.mutation.WarningLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarningLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.WarningLogsTable,
			Columns: []string{session.WarningLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warninglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ResultTable,
			Columns: []string{session.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ResultTable,
			Columns: []string{session.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
