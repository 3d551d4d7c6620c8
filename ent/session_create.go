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
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/warninglog"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionKey sets the "session_key" field.
func (_c *SessionCreate) SetSessionKey(v string) *SessionCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetInterviewID sets the "interview_id" field.
func (_c *SessionCreate) SetInterviewID(v string) *SessionCreate {
	_c.mutation.SetInterviewID(v)
	return _c
}

// SetCandidateName sets the "candidate_name" field.
func (_c *SessionCreate) SetCandidateName(v string) *SessionCreate {
	_c.mutation.SetCandidateName(v)
	return _c
}

// SetCandidateEmail sets the "candidate_email" field.
func (_c *SessionCreate) SetCandidateEmail(v string) *SessionCreate {
	_c.mutation.SetCandidateEmail(v)
	return _c
}

// SetJobDescription sets the "job_description" field.
func (_c *SessionCreate) SetJobDescription(v string) *SessionCreate {
	_c.mutation.SetJobDescription(v)
	return _c
}

// SetResumeText sets the "resume_text" field.
func (_c *SessionCreate) SetResumeText(v string) *SessionCreate {
	_c.mutation.SetResumeText(v)
	return _c
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_c *SessionCreate) SetNillableResumeText(v *string) *SessionCreate {
	if v != nil {
		_c.SetResumeText(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SessionCreate) SetLanguage(v string) *SessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLanguage(v *string) *SessionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetAccent sets the "accent" field.
func (_c *SessionCreate) SetAccent(v string) *SessionCreate {
	_c.mutation.SetAccent(v)
	return _c
}

// SetNillableAccent sets the "accent" field if the given value is not nil.
func (_c *SessionCreate) SetNillableAccent(v *string) *SessionCreate {
	if v != nil {
		_c.SetAccent(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_c *SessionCreate) SetCurrentQuestionIndex(v int) *SessionCreate {
	_c.mutation.SetCurrentQuestionIndex(v)
	return _c
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCurrentQuestionIndex(v *int) *SessionCreate {
	if v != nil {
		_c.SetCurrentQuestionIndex(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *SessionCreate) SetTotalQuestions(v int) *SessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalQuestions(v *int) *SessionCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetSessionStartedAt sets the "session_started_at" field.
func (_c *SessionCreate) SetSessionStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetSessionStartedAt(v)
	return _c
}

// SetNillableSessionStartedAt sets the "session_started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSessionStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetSessionStartedAt(*v)
	}
	return _c
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (_c *SessionCreate) SetSessionEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetSessionEndedAt(v)
	return _c
}

// SetNillableSessionEndedAt sets the "session_ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSessionEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetSessionEndedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *SessionCreate) SetLastInteractionAt(v time.Time) *SessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastInteractionAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (_c *SessionCreate) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionCreate {
	_c.mutation.SetIDVerificationStatus(v)
	return _c
}

// SetNillableIDVerificationStatus sets the "id_verification_status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIDVerificationStatus(v *session.IDVerificationStatus) *SessionCreate {
	if v != nil {
		_c.SetIDVerificationStatus(*v)
	}
	return _c
}

// SetIDDetails sets the "id_details" field.
func (_c *SessionCreate) SetIDDetails(v string) *SessionCreate {
	_c.mutation.SetIDDetails(v)
	return _c
}

// SetNillableIDDetails sets the "id_details" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIDDetails(v *string) *SessionCreate {
	if v != nil {
		_c.SetIDDetails(*v)
	}
	return _c
}

// SetModelConfig sets the "model_config" field.
func (_c *SessionCreate) SetModelConfig(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetModelConfig(v)
	return _c
}

// SetIsEvaluated sets the "is_evaluated" field.
func (_c *SessionCreate) SetIsEvaluated(v bool) *SessionCreate {
	_c.mutation.SetIsEvaluated(v)
	return _c
}

// SetNillableIsEvaluated sets the "is_evaluated" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIsEvaluated(v *bool) *SessionCreate {
	if v != nil {
		_c.SetIsEvaluated(*v)
	}
	return _c
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (_c *SessionCreate) SetEvaluationAttempts(v int) *SessionCreate {
	_c.mutation.SetEvaluationAttempts(v)
	return _c
}

// SetNillableEvaluationAttempts sets the "evaluation_attempts" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEvaluationAttempts(v *int) *SessionCreate {
	if v != nil {
		_c.SetEvaluationAttempts(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *SessionCreate) SetClaimedBy(v string) *SessionCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *SessionCreate) SetNillableClaimedBy(v *string) *SessionCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetVideoPath sets the "video_path" field.
func (_c *SessionCreate) SetVideoPath(v string) *SessionCreate {
	_c.mutation.SetVideoPath(v)
	return _c
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_c *SessionCreate) SetNillableVideoPath(v *string) *SessionCreate {
	if v != nil {
		_c.SetVideoPath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionCreate) SetErrorMessage(v string) *SessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorMessage(v *string) *SessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInterview sets the "interview" edge to the Interview entity.
func (_c *SessionCreate) SetInterview(v *Interview) *SessionCreate {
	return _c.SetInterviewID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *SessionCreate) AddQuestionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *SessionCreate) AddQuestions(v ...*Question) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_c *SessionCreate) AddResponseIDs(ids ...string) *SessionCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the Response entity.
func (_c *SessionCreate) AddResponses(v ...*Response) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// AddCodeSubmissionIDs adds the "code_submissions" edge to the CodeSubmission entity by IDs.
func (_c *SessionCreate) AddCodeSubmissionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddCodeSubmissionIDs(ids...)
	return _c
}

// AddCodeSubmissions adds the "code_submissions" edges to the CodeSubmission entity.
func (_c *SessionCreate) AddCodeSubmissions(v ...*CodeSubmission) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCodeSubmissionIDs(ids...)
}

// AddWarningLogIDs adds the "warning_logs" edge to the WarningLog entity by IDs.
func (_c *SessionCreate) AddWarningLogIDs(ids ...string) *SessionCreate {
	_c.mutation.AddWarningLogIDs(ids...)
	return _c
}

// AddWarningLogs adds the "warning_logs" edges to the WarningLog entity.
func (_c *SessionCreate) AddWarningLogs(v ...*WarningLog) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWarningLogIDs(ids...)
}

// SetResultID sets the "result" edge to the EvaluationResult entity by ID.
func (_c *SessionCreate) SetResultID(id string) *SessionCreate {
	_c.mutation.SetResultID(id)
	return _c
}

// SetNillableResultID sets the "result" edge to the EvaluationResult entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableResultID(id *string) *SessionCreate {
	if id != nil {
		_c = _c.SetResultID(*id)
	}
	return _c
}

// SetResult sets the "result" edge to the EvaluationResult entity.
func (_c *SessionCreate) SetResult(v *EvaluationResult) *SessionCreate {
	return _c.SetResultID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := session.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentQuestionIndex(); !ok {
		v := session.DefaultCurrentQuestionIndex
		_c.mutation.SetCurrentQuestionIndex(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := session.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.IDVerificationStatus(); !ok {
		v := session.DefaultIDVerificationStatus
		_c.mutation.SetIDVerificationStatus(v)
	}
	if _, ok := _c.mutation.IsEvaluated(); !ok {
		v := session.DefaultIsEvaluated
		_c.mutation.SetIsEvaluated(v)
	}
	if _, ok := _c.mutation.EvaluationAttempts(); !ok {
		v := session.DefaultEvaluationAttempts
		_c.mutation.SetEvaluationAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.SessionKey(); !ok {
		return &ValidationError{Name: "session_key", err: errors.New(`ent: missing required field "Session.session_key"`)}
	}
	if _, ok := _c.mutation.InterviewID(); !ok {
		return &ValidationError{Name: "interview_id", err: errors.New(`ent: missing required field "Session.interview_id"`)}
	}
	if _, ok := _c.mutation.CandidateName(); !ok {
		return &ValidationError{Name: "candidate_name", err: errors.New(`ent: missing required field "Session.candidate_name"`)}
	}
	if _, ok := _c.mutation.CandidateEmail(); !ok {
		return &ValidationError{Name: "candidate_email", err: errors.New(`ent: missing required field "Session.candidate_email"`)}
	}
	if _, ok := _c.mutation.JobDescription(); !ok {
		return &ValidationError{Name: "job_description", err: errors.New(`ent: missing required field "Session.job_description"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Session.language"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentQuestionIndex(); !ok {
		return &ValidationError{Name: "current_question_index", err: errors.New(`ent: missing required field "Session.current_question_index"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Session.total_questions"`)}
	}
	if _, ok := _c.mutation.IDVerificationStatus(); !ok {
		return &ValidationError{Name: "id_verification_status", err: errors.New(`ent: missing required field "Session.id_verification_status"`)}
	}
	if v, ok := _c.mutation.IDVerificationStatus(); ok {
		if err := session.IDVerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "id_verification_status", err: fmt.Errorf(`ent: validator failed for field "Session.id_verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEvaluated(); !ok {
		return &ValidationError{Name: "is_evaluated", err: errors.New(`ent: missing required field "Session.is_evaluated"`)}
	}
	if _, ok := _c.mutation.EvaluationAttempts(); !ok {
		return &ValidationError{Name: "evaluation_attempts", err: errors.New(`ent: missing required field "Session.evaluation_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if len(_c.mutation.InterviewIDs()) == 0 {
		return &ValidationError{Name: "interview", err: errors.New(`ent: missing required edge "Session.interview"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(session.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.CandidateName(); ok {
		_spec.SetField(session.FieldCandidateName, field.TypeString, value)
		_node.CandidateName = value
	}
	if value, ok := _c.mutation.CandidateEmail(); ok {
		_spec.SetField(session.FieldCandidateEmail, field.TypeString, value)
		_node.CandidateEmail = value
	}
	if value, ok := _c.mutation.JobDescription(); ok {
		_spec.SetField(session.FieldJobDescription, field.TypeString, value)
		_node.JobDescription = value
	}
	if value, ok := _c.mutation.ResumeText(); ok {
		_spec.SetField(session.FieldResumeText, field.TypeString, value)
		_node.ResumeText = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Accent(); ok {
		_spec.SetField(session.FieldAccent, field.TypeString, value)
		_node.Accent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(session.FieldCurrentQuestionIndex, field.TypeInt, value)
		_node.CurrentQuestionIndex = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(session.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.SessionStartedAt(); ok {
		_spec.SetField(session.FieldSessionStartedAt, field.TypeTime, value)
		_node.SessionStartedAt = &value
	}
	if value, ok := _c.mutation.SessionEndedAt(); ok {
		_spec.SetField(session.FieldSessionEndedAt, field.TypeTime, value)
		_node.SessionEndedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.IDVerificationStatus(); ok {
		_spec.SetField(session.FieldIDVerificationStatus, field.TypeEnum, value)
		_node.IDVerificationStatus = value
	}
	if value, ok := _c.mutation.IDDetails(); ok {
		_spec.SetField(session.FieldIDDetails, field.TypeString, value)
		_node.IDDetails = &value
	}
	if value, ok := _c.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeJSON, value)
		_node.ModelConfig = value
	}
	if value, ok := _c.mutation.IsEvaluated(); ok {
		_spec.SetField(session.FieldIsEvaluated, field.TypeBool, value)
		_node.IsEvaluated = value
	}
	if value, ok := _c.mutation.EvaluationAttempts(); ok {
		_spec.SetField(session.FieldEvaluationAttempts, field.TypeInt, value)
		_node.EvaluationAttempts = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(session.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.VideoPath(); ok {
		_spec.SetField(session.FieldVideoPath, field.TypeString, value)
		_node.VideoPath = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InterviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   session.InterviewTable,
			Columns: []string{session.InterviewColumn},
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
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CodeSubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WarningLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetSessionKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetSessionKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetCandidateName sets the "candidate_name" field.
func (u *SessionUpsert) SetCandidateName(v string) *SessionUpsert {
	u.Set(session.FieldCandidateName, v)
	return u
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCandidateName() *SessionUpsert {
	u.SetExcluded(session.FieldCandidateName)
	return u
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *SessionUpsert) SetCandidateEmail(v string) *SessionUpsert {
	u.Set(session.FieldCandidateEmail, v)
	return u
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCandidateEmail() *SessionUpsert {
	u.SetExcluded(session.FieldCandidateEmail)
	return u
}

// SetJobDescription sets the "job_description" field.
func (u *SessionUpsert) SetJobDescription(v string) *SessionUpsert {
	u.Set(session.FieldJobDescription, v)
	return u
}

// UpdateJobDescription sets the "job_description" field to the value that was provided on create.
func (u *SessionUpsert) UpdateJobDescription() *SessionUpsert {
	u.SetExcluded(session.FieldJobDescription)
	return u
}

// SetResumeText sets the "resume_text" field.
func (u *SessionUpsert) SetResumeText(v string) *SessionUpsert {
	u.Set(session.FieldResumeText, v)
	return u
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *SessionUpsert) UpdateResumeText() *SessionUpsert {
	u.SetExcluded(session.FieldResumeText)
	return u
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *SessionUpsert) ClearResumeText() *SessionUpsert {
	u.SetNull(session.FieldResumeText)
	return u
}

// SetLanguage sets the "language" field.
func (u *SessionUpsert) SetLanguage(v string) *SessionUpsert {
	u.Set(session.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLanguage() *SessionUpsert {
	u.SetExcluded(session.FieldLanguage)
	return u
}

// SetAccent sets the "accent" field.
func (u *SessionUpsert) SetAccent(v string) *SessionUpsert {
	u.Set(session.FieldAccent, v)
	return u
}

// UpdateAccent sets the "accent" field to the value that was provided on create.
func (u *SessionUpsert) UpdateAccent() *SessionUpsert {
	u.SetExcluded(session.FieldAccent)
	return u
}

// ClearAccent clears the value of the "accent" field.
func (u *SessionUpsert) ClearAccent() *SessionUpsert {
	u.SetNull(session.FieldAccent)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (u *SessionUpsert) SetCurrentQuestionIndex(v int) *SessionUpsert {
	u.Set(session.FieldCurrentQuestionIndex, v)
	return u
}

// UpdateCurrentQuestionIndex sets the "current_question_index" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCurrentQuestionIndex() *SessionUpsert {
	u.SetExcluded(session.FieldCurrentQuestionIndex)
	return u
}

// AddCurrentQuestionIndex adds v to the "current_question_index" field.
func (u *SessionUpsert) AddCurrentQuestionIndex(v int) *SessionUpsert {
	u.Add(session.FieldCurrentQuestionIndex, v)
	return u
}

// SetTotalQuestions sets the "total_questions" field.
func (u *SessionUpsert) SetTotalQuestions(v int) *SessionUpsert {
	u.Set(session.FieldTotalQuestions, v)
	return u
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTotalQuestions() *SessionUpsert {
	u.SetExcluded(session.FieldTotalQuestions)
	return u
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *SessionUpsert) AddTotalQuestions(v int) *SessionUpsert {
	u.Add(session.FieldTotalQuestions, v)
	return u
}

// SetSessionStartedAt sets the "session_started_at" field.
func (u *SessionUpsert) SetSessionStartedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldSessionStartedAt, v)
	return u
}

// UpdateSessionStartedAt sets the "session_started_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSessionStartedAt() *SessionUpsert {
	u.SetExcluded(session.FieldSessionStartedAt)
	return u
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (u *SessionUpsert) ClearSessionStartedAt() *SessionUpsert {
	u.SetNull(session.FieldSessionStartedAt)
	return u
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (u *SessionUpsert) SetSessionEndedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldSessionEndedAt, v)
	return u
}

// UpdateSessionEndedAt sets the "session_ended_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSessionEndedAt() *SessionUpsert {
	u.SetExcluded(session.FieldSessionEndedAt)
	return u
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (u *SessionUpsert) ClearSessionEndedAt() *SessionUpsert {
	u.SetNull(session.FieldSessionEndedAt)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *SessionUpsert) SetLastInteractionAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLastInteractionAt() *SessionUpsert {
	u.SetExcluded(session.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *SessionUpsert) ClearLastInteractionAt() *SessionUpsert {
	u.SetNull(session.FieldLastInteractionAt)
	return u
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (u *SessionUpsert) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionUpsert {
	u.Set(session.FieldIDVerificationStatus, v)
	return u
}

// UpdateIDVerificationStatus sets the "id_verification_status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateIDVerificationStatus() *SessionUpsert {
	u.SetExcluded(session.FieldIDVerificationStatus)
	return u
}

// SetIDDetails sets the "id_details" field.
func (u *SessionUpsert) SetIDDetails(v string) *SessionUpsert {
	u.Set(session.FieldIDDetails, v)
	return u
}

// UpdateIDDetails sets the "id_details" field to the value that was provided on create.
func (u *SessionUpsert) UpdateIDDetails() *SessionUpsert {
	u.SetExcluded(session.FieldIDDetails)
	return u
}

// ClearIDDetails clears the value of the "id_details" field.
func (u *SessionUpsert) ClearIDDetails() *SessionUpsert {
	u.SetNull(session.FieldIDDetails)
	return u
}

// SetModelConfig sets the "model_config" field.
func (u *SessionUpsert) SetModelConfig(v map[string]interface{}) *SessionUpsert {
	u.Set(session.FieldModelConfig, v)
	return u
}

// UpdateModelConfig sets the "model_config" field to the value that was provided on create.
func (u *SessionUpsert) UpdateModelConfig() *SessionUpsert {
	u.SetExcluded(session.FieldModelConfig)
	return u
}

// ClearModelConfig clears the value of the "model_config" field.
func (u *SessionUpsert) ClearModelConfig() *SessionUpsert {
	u.SetNull(session.FieldModelConfig)
	return u
}

// SetIsEvaluated sets the "is_evaluated" field.
func (u *SessionUpsert) SetIsEvaluated(v bool) *SessionUpsert {
	u.Set(session.FieldIsEvaluated, v)
	return u
}

// UpdateIsEvaluated sets the "is_evaluated" field to the value that was provided on create.
func (u *SessionUpsert) UpdateIsEvaluated() *SessionUpsert {
	u.SetExcluded(session.FieldIsEvaluated)
	return u
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (u *SessionUpsert) SetEvaluationAttempts(v int) *SessionUpsert {
	u.Set(session.FieldEvaluationAttempts, v)
	return u
}

// UpdateEvaluationAttempts sets the "evaluation_attempts" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEvaluationAttempts() *SessionUpsert {
	u.SetExcluded(session.FieldEvaluationAttempts)
	return u
}

// AddEvaluationAttempts adds v to the "evaluation_attempts" field.
func (u *SessionUpsert) AddEvaluationAttempts(v int) *SessionUpsert {
	u.Add(session.FieldEvaluationAttempts, v)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *SessionUpsert) SetClaimedBy(v string) *SessionUpsert {
	u.Set(session.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *SessionUpsert) UpdateClaimedBy() *SessionUpsert {
	u.SetExcluded(session.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *SessionUpsert) ClearClaimedBy() *SessionUpsert {
	u.SetNull(session.FieldClaimedBy)
	return u
}

// SetVideoPath sets the "video_path" field.
func (u *SessionUpsert) SetVideoPath(v string) *SessionUpsert {
	u.Set(session.FieldVideoPath, v)
	return u
}

// UpdateVideoPath sets the "video_path" field to the value that was provided on create.
func (u *SessionUpsert) UpdateVideoPath() *SessionUpsert {
	u.SetExcluded(session.FieldVideoPath)
	return u
}

// ClearVideoPath clears the value of the "video_path" field.
func (u *SessionUpsert) ClearVideoPath() *SessionUpsert {
	u.SetNull(session.FieldVideoPath)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsert) SetErrorMessage(v string) *SessionUpsert {
	u.Set(session.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsert) UpdateErrorMessage() *SessionUpsert {
	u.SetExcluded(session.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsert) ClearErrorMessage() *SessionUpsert {
	u.SetNull(session.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.SessionKey(); exists {
			s.SetIgnore(session.FieldSessionKey)
		}
		if _, exists := u.create.mutation.InterviewID(); exists {
			s.SetIgnore(session.FieldInterviewID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateName sets the "candidate_name" field.
func (u *SessionUpsertOne) SetCandidateName(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCandidateName(v)
	})
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCandidateName() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCandidateName()
	})
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *SessionUpsertOne) SetCandidateEmail(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCandidateEmail(v)
	})
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCandidateEmail() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCandidateEmail()
	})
}

// SetJobDescription sets the "job_description" field.
func (u *SessionUpsertOne) SetJobDescription(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetJobDescription(v)
	})
}

// UpdateJobDescription sets the "job_description" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateJobDescription() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateJobDescription()
	})
}

// SetResumeText sets the "resume_text" field.
func (u *SessionUpsertOne) SetResumeText(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetResumeText(v)
	})
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateResumeText() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateResumeText()
	})
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *SessionUpsertOne) ClearResumeText() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearResumeText()
	})
}

// SetLanguage sets the "language" field.
func (u *SessionUpsertOne) SetLanguage(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLanguage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetAccent sets the "accent" field.
func (u *SessionUpsertOne) SetAccent(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetAccent(v)
	})
}

// UpdateAccent sets the "accent" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateAccent() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateAccent()
	})
}

// ClearAccent clears the value of the "accent" field.
func (u *SessionUpsertOne) ClearAccent() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearAccent()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (u *SessionUpsertOne) SetCurrentQuestionIndex(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCurrentQuestionIndex(v)
	})
}

// AddCurrentQuestionIndex adds v to the "current_question_index" field.
func (u *SessionUpsertOne) AddCurrentQuestionIndex(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddCurrentQuestionIndex(v)
	})
}

// UpdateCurrentQuestionIndex sets the "current_question_index" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCurrentQuestionIndex() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCurrentQuestionIndex()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *SessionUpsertOne) SetTotalQuestions(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *SessionUpsertOne) AddTotalQuestions(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTotalQuestions() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetSessionStartedAt sets the "session_started_at" field.
func (u *SessionUpsertOne) SetSessionStartedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSessionStartedAt(v)
	})
}

// UpdateSessionStartedAt sets the "session_started_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSessionStartedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSessionStartedAt()
	})
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (u *SessionUpsertOne) ClearSessionStartedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSessionStartedAt()
	})
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (u *SessionUpsertOne) SetSessionEndedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSessionEndedAt(v)
	})
}

// UpdateSessionEndedAt sets the "session_ended_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSessionEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSessionEndedAt()
	})
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (u *SessionUpsertOne) ClearSessionEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSessionEndedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *SessionUpsertOne) SetLastInteractionAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLastInteractionAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *SessionUpsertOne) ClearLastInteractionAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (u *SessionUpsertOne) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetIDVerificationStatus(v)
	})
}

// UpdateIDVerificationStatus sets the "id_verification_status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateIDVerificationStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIDVerificationStatus()
	})
}

// SetIDDetails sets the "id_details" field.
func (u *SessionUpsertOne) SetIDDetails(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetIDDetails(v)
	})
}

// UpdateIDDetails sets the "id_details" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateIDDetails() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIDDetails()
	})
}

// ClearIDDetails clears the value of the "id_details" field.
func (u *SessionUpsertOne) ClearIDDetails() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearIDDetails()
	})
}

// SetModelConfig sets the "model_config" field.
func (u *SessionUpsertOne) SetModelConfig(v map[string]interface{}) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetModelConfig(v)
	})
}

// UpdateModelConfig sets the "model_config" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateModelConfig() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModelConfig()
	})
}

// ClearModelConfig clears the value of the "model_config" field.
func (u *SessionUpsertOne) ClearModelConfig() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearModelConfig()
	})
}

// SetIsEvaluated sets the "is_evaluated" field.
func (u *SessionUpsertOne) SetIsEvaluated(v bool) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetIsEvaluated(v)
	})
}

// UpdateIsEvaluated sets the "is_evaluated" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateIsEvaluated() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIsEvaluated()
	})
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (u *SessionUpsertOne) SetEvaluationAttempts(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEvaluationAttempts(v)
	})
}

// AddEvaluationAttempts adds v to the "evaluation_attempts" field.
func (u *SessionUpsertOne) AddEvaluationAttempts(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddEvaluationAttempts(v)
	})
}

// UpdateEvaluationAttempts sets the "evaluation_attempts" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEvaluationAttempts() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEvaluationAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *SessionUpsertOne) SetClaimedBy(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateClaimedBy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *SessionUpsertOne) ClearClaimedBy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearClaimedBy()
	})
}

// SetVideoPath sets the "video_path" field.
func (u *SessionUpsertOne) SetVideoPath(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetVideoPath(v)
	})
}

// UpdateVideoPath sets the "video_path" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateVideoPath() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateVideoPath()
	})
}

// ClearVideoPath clears the value of the "video_path" field.
func (u *SessionUpsertOne) ClearVideoPath() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearVideoPath()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertOne) SetErrorMessage(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertOne) ClearErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetSessionKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.SessionKey(); exists {
				s.SetIgnore(session.FieldSessionKey)
			}
			if _, exists := b.mutation.InterviewID(); exists {
				s.SetIgnore(session.FieldInterviewID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateName sets the "candidate_name" field.
func (u *SessionUpsertBulk) SetCandidateName(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCandidateName(v)
	})
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCandidateName() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCandidateName()
	})
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *SessionUpsertBulk) SetCandidateEmail(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCandidateEmail(v)
	})
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCandidateEmail() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCandidateEmail()
	})
}

// SetJobDescription sets the "job_description" field.
func (u *SessionUpsertBulk) SetJobDescription(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetJobDescription(v)
	})
}

// UpdateJobDescription sets the "job_description" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateJobDescription() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateJobDescription()
	})
}

// SetResumeText sets the "resume_text" field.
func (u *SessionUpsertBulk) SetResumeText(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetResumeText(v)
	})
}

// UpdateResumeText sets the "resume_text" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateResumeText() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateResumeText()
	})
}

// ClearResumeText clears the value of the "resume_text" field.
func (u *SessionUpsertBulk) ClearResumeText() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearResumeText()
	})
}

// SetLanguage sets the "language" field.
func (u *SessionUpsertBulk) SetLanguage(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLanguage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetAccent sets the "accent" field.
func (u *SessionUpsertBulk) SetAccent(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetAccent(v)
	})
}

// UpdateAccent sets the "accent" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateAccent() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateAccent()
	})
}

// ClearAccent clears the value of the "accent" field.
func (u *SessionUpsertBulk) ClearAccent() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearAccent()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (u *SessionUpsertBulk) SetCurrentQuestionIndex(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCurrentQuestionIndex(v)
	})
}

// AddCurrentQuestionIndex adds v to the "current_question_index" field.
func (u *SessionUpsertBulk) AddCurrentQuestionIndex(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddCurrentQuestionIndex(v)
	})
}

// UpdateCurrentQuestionIndex sets the "current_question_index" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCurrentQuestionIndex() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCurrentQuestionIndex()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *SessionUpsertBulk) SetTotalQuestions(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *SessionUpsertBulk) AddTotalQuestions(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTotalQuestions() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetSessionStartedAt sets the "session_started_at" field.
func (u *SessionUpsertBulk) SetSessionStartedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSessionStartedAt(v)
	})
}

// UpdateSessionStartedAt sets the "session_started_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSessionStartedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSessionStartedAt()
	})
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (u *SessionUpsertBulk) ClearSessionStartedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSessionStartedAt()
	})
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (u *SessionUpsertBulk) SetSessionEndedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSessionEndedAt(v)
	})
}

// UpdateSessionEndedAt sets the "session_ended_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSessionEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSessionEndedAt()
	})
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (u *SessionUpsertBulk) ClearSessionEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSessionEndedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *SessionUpsertBulk) SetLastInteractionAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLastInteractionAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *SessionUpsertBulk) ClearLastInteractionAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (u *SessionUpsertBulk) SetIDVerificationStatus(v session.IDVerificationStatus) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetIDVerificationStatus(v)
	})
}

// UpdateIDVerificationStatus sets the "id_verification_status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateIDVerificationStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIDVerificationStatus()
	})
}

// SetIDDetails sets the "id_details" field.
func (u *SessionUpsertBulk) SetIDDetails(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetIDDetails(v)
	})
}

// UpdateIDDetails sets the "id_details" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateIDDetails() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIDDetails()
	})
}

// ClearIDDetails clears the value of the "id_details" field.
func (u *SessionUpsertBulk) ClearIDDetails() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearIDDetails()
	})
}

// SetModelConfig sets the "model_config" field.
func (u *SessionUpsertBulk) SetModelConfig(v map[string]interface{}) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetModelConfig(v)
	})
}

// UpdateModelConfig sets the "model_config" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateModelConfig() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModelConfig()
	})
}

// ClearModelConfig clears the value of the "model_config" field.
func (u *SessionUpsertBulk) ClearModelConfig() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearModelConfig()
	})
}

// SetIsEvaluated sets the "is_evaluated" field.
func (u *SessionUpsertBulk) SetIsEvaluated(v bool) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetIsEvaluated(v)
	})
}

// UpdateIsEvaluated sets the "is_evaluated" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateIsEvaluated() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIsEvaluated()
	})
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (u *SessionUpsertBulk) SetEvaluationAttempts(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEvaluationAttempts(v)
	})
}

// AddEvaluationAttempts adds v to the "evaluation_attempts" field.
func (u *SessionUpsertBulk) AddEvaluationAttempts(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddEvaluationAttempts(v)
	})
}

// UpdateEvaluationAttempts sets the "evaluation_attempts" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEvaluationAttempts() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEvaluationAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *SessionUpsertBulk) SetClaimedBy(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateClaimedBy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *SessionUpsertBulk) ClearClaimedBy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearClaimedBy()
	})
}

// SetVideoPath sets the "video_path" field.
func (u *SessionUpsertBulk) SetVideoPath(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetVideoPath(v)
	})
}

// UpdateVideoPath sets the "video_path" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateVideoPath() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateVideoPath()
	})
}

// ClearVideoPath clears the value of the "video_path" field.
func (u *SessionUpsertBulk) ClearVideoPath() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearVideoPath()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertBulk) SetErrorMessage(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertBulk) ClearErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
