// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Opaque 128-bit key carried on the portal URL; distinct from the HMAC link token
	SessionKey string `json:"session_key,omitempty"`
	// InterviewID holds the value of the "interview_id" field.
	InterviewID string `json:"interview_id,omitempty"`
	// CandidateName holds the value of the "candidate_name" field.
	CandidateName string `json:"candidate_name,omitempty"`
	// CandidateEmail holds the value of the "candidate_email" field.
	CandidateEmail string `json:"candidate_email,omitempty"`
	// JobDescription holds the value of the "job_description" field.
	JobDescription string `json:"job_description,omitempty"`
	// ResumeText holds the value of the "resume_text" field.
	ResumeText string `json:"resume_text,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Accent holds the value of the "accent" field.
	Accent string `json:"accent,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// CurrentQuestionIndex holds the value of the "current_question_index" field.
	CurrentQuestionIndex int `json:"current_question_index,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// SessionStartedAt holds the value of the "session_started_at" field.
	SessionStartedAt *time.Time `json:"session_started_at,omitempty"`
	// SessionEndedAt holds the value of the "session_ended_at" field.
	SessionEndedAt *time.Time `json:"session_ended_at,omitempty"`
	// Liveness timestamp: candidate heartbeat while active, worker heartbeat while an evaluation claim is held
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// IDVerificationStatus holds the value of the "id_verification_status" field.
	IDVerificationStatus session.IDVerificationStatus `json:"id_verification_status,omitempty"`
	// Masked OCR extract, never the raw ID number
	IDDetails *string `json:"id_details,omitempty"`
	// ModelConfig holds the value of the "model_config" field.
	ModelConfig map[string]interface{} `json:"model_config,omitempty"`
	// IsEvaluated holds the value of the "is_evaluated" field.
	IsEvaluated bool `json:"is_evaluated,omitempty"`
	// EvaluationAttempts holds the value of the "evaluation_attempts" field.
	EvaluationAttempts int `json:"evaluation_attempts,omitempty"`
	// Evaluation worker holding the claim
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// VideoPath holds the value of the "video_path" field.
	VideoPath *string `json:"video_path,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Interview holds the value of the interview edge.
	Interview *Interview `json:"interview,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*Response `json:"responses,omitempty"`
	// CodeSubmissions holds the value of the code_submissions edge.
	CodeSubmissions []*CodeSubmission `json:"code_submissions,omitempty"`
	// WarningLogs holds the value of the warning_logs edge.
	WarningLogs []*WarningLog `json:"warning_logs,omitempty"`
	// Result holds the value of the result edge.
	Result *EvaluationResult `json:"result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// InterviewOrErr returns the Interview value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) InterviewOrErr() (*Interview, error) {
	if e.Interview != nil {
		return e.Interview, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interview.Label}
	}
	return nil, &NotLoadedError{edge: "interview"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ResponsesOrErr() ([]*Response, error) {
	if e.loadedTypes[2] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// CodeSubmissionsOrErr returns the CodeSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) CodeSubmissionsOrErr() ([]*CodeSubmission, error) {
	if e.loadedTypes[3] {
		return e.CodeSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "code_submissions"}
}

// WarningLogsOrErr returns the WarningLogs value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) WarningLogsOrErr() ([]*WarningLog, error) {
	if e.loadedTypes[4] {
		return e.WarningLogs, nil
	}
	return nil, &NotLoadedError{edge: "warning_logs"}
}

// ResultOrErr returns the Result value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) ResultOrErr() (*EvaluationResult, error) {
	if e.Result != nil {
		return e.Result, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: evaluationresult.Label}
	}
	return nil, &NotLoadedError{edge: "result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldModelConfig:
			values[i] = new([]byte)
		case session.FieldIsEvaluated:
			values[i] = new(sql.NullBool)
		case session.FieldCurrentQuestionIndex, session.FieldTotalQuestions, session.FieldEvaluationAttempts:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldSessionKey, session.FieldInterviewID, session.FieldCandidateName, session.FieldCandidateEmail, session.FieldJobDescription, session.FieldResumeText, session.FieldLanguage, session.FieldAccent, session.FieldStatus, session.FieldIDVerificationStatus, session.FieldIDDetails, session.FieldClaimedBy, session.FieldVideoPath, session.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case session.FieldSessionStartedAt, session.FieldSessionEndedAt, session.FieldLastInteractionAt, session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case session.FieldInterviewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_id", values[i])
			} else if value.Valid {
				_m.InterviewID = value.String
			}
		case session.FieldCandidateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_name", values[i])
			} else if value.Valid {
				_m.CandidateName = value.String
			}
		case session.FieldCandidateEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_email", values[i])
			} else if value.Valid {
				_m.CandidateEmail = value.String
			}
		case session.FieldJobDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_description", values[i])
			} else if value.Valid {
				_m.JobDescription = value.String
			}
		case session.FieldResumeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_text", values[i])
			} else if value.Valid {
				_m.ResumeText = value.String
			}
		case session.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case session.FieldAccent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accent", values[i])
			} else if value.Valid {
				_m.Accent = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldCurrentQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_question_index", values[i])
			} else if value.Valid {
				_m.CurrentQuestionIndex = int(value.Int64)
			}
		case session.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case session.FieldSessionStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_started_at", values[i])
			} else if value.Valid {
				_m.SessionStartedAt = new(time.Time)
				*_m.SessionStartedAt = value.Time
			}
		case session.FieldSessionEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_ended_at", values[i])
			} else if value.Valid {
				_m.SessionEndedAt = new(time.Time)
				*_m.SessionEndedAt = value.Time
			}
		case session.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case session.FieldIDVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id_verification_status", values[i])
			} else if value.Valid {
				_m.IDVerificationStatus = session.IDVerificationStatus(value.String)
			}
		case session.FieldIDDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id_details", values[i])
			} else if value.Valid {
				_m.IDDetails = new(string)
				*_m.IDDetails = value.String
			}
		case session.FieldModelConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelConfig); err != nil {
					return fmt.Errorf("unmarshal field model_config: %w", err)
				}
			}
		case session.FieldIsEvaluated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_evaluated", values[i])
			} else if value.Valid {
				_m.IsEvaluated = value.Bool
			}
		case session.FieldEvaluationAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_attempts", values[i])
			} else if value.Valid {
				_m.EvaluationAttempts = int(value.Int64)
			}
		case session.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case session.FieldVideoPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_path", values[i])
			} else if value.Valid {
				_m.VideoPath = new(string)
				*_m.VideoPath = value.String
			}
		case session.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInterview queries the "interview" edge of the Session entity.
func (_m *Session) QueryInterview() *InterviewQuery {
	return NewSessionClient(_m.config).QueryInterview(_m)
}

// QueryQuestions queries the "questions" edge of the Session entity.
func (_m *Session) QueryQuestions() *QuestionQuery {
	return NewSessionClient(_m.config).QueryQuestions(_m)
}

// QueryResponses queries the "responses" edge of the Session entity.
func (_m *Session) QueryResponses() *ResponseQuery {
	return NewSessionClient(_m.config).QueryResponses(_m)
}

// QueryCodeSubmissions queries the "code_submissions" edge of the Session entity.
func (_m *Session) QueryCodeSubmissions() *CodeSubmissionQuery {
	return NewSessionClient(_m.config).QueryCodeSubmissions(_m)
}

// QueryWarningLogs queries the "warning_logs" edge of the Session entity.
func (_m *Session) QueryWarningLogs() *WarningLogQuery {
	return NewSessionClient(_m.config).QueryWarningLogs(_m)
}

// QueryResult queries the "result" edge of the Session entity.
func (_m *Session) QueryResult() *EvaluationResultQuery {
	return NewSessionClient(_m.config).QueryResult(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("interview_id=")
	builder.WriteString(_m.InterviewID)
	builder.WriteString(", ")
	builder.WriteString("candidate_name=")
	builder.WriteString(_m.CandidateName)
	builder.WriteString(", ")
	builder.WriteString("candidate_email=")
	builder.WriteString(_m.CandidateEmail)
	builder.WriteString(", ")
	builder.WriteString("job_description=")
	builder.WriteString(_m.JobDescription)
	builder.WriteString(", ")
	builder.WriteString("resume_text=")
	builder.WriteString(_m.ResumeText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("accent=")
	builder.WriteString(_m.Accent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentQuestionIndex))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	if v := _m.SessionStartedAt; v != nil {
		builder.WriteString("session_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SessionEndedAt; v != nil {
		builder.WriteString("session_ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("id_verification_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.IDVerificationStatus))
	builder.WriteString(", ")
	if v := _m.IDDetails; v != nil {
		builder.WriteString("id_details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelConfig))
	builder.WriteString(", ")
	builder.WriteString("is_evaluated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEvaluated))
	builder.WriteString(", ")
	builder.WriteString("evaluation_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvaluationAttempts))
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoPath; v != nil {
		builder.WriteString("video_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
