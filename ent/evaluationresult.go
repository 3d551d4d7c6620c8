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

// EvaluationResult is the model entity for the EvaluationResult schema.
type EvaluationResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// InterviewID holds the value of the "interview_id" field.
	InterviewID string `json:"interview_id,omitempty"`
	// ResumeScore holds the value of the "resume_score" field.
	ResumeScore float64 `json:"resume_score,omitempty"`
	// AnswersScore holds the value of the "answers_score" field.
	AnswersScore float64 `json:"answers_score,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore float64 `json:"overall_score,omitempty"`
	// TechnicalScore holds the value of the "technical_score" field.
	TechnicalScore *float64 `json:"technical_score,omitempty"`
	// BehavioralScore holds the value of the "behavioral_score" field.
	BehavioralScore *float64 `json:"behavioral_score,omitempty"`
	// CodingScore holds the value of the "coding_score" field.
	CodingScore *float64 `json:"coding_score,omitempty"`
	// ResumeFeedback holds the value of the "resume_feedback" field.
	ResumeFeedback string `json:"resume_feedback,omitempty"`
	// AnswersFeedback holds the value of the "answers_feedback" field.
	AnswersFeedback string `json:"answers_feedback,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// HireRecommendation holds the value of the "hire_recommendation" field.
	HireRecommendation *bool `json:"hire_recommendation,omitempty"`
	// 0 marks a fallback result produced without AI analysis
	ConfidenceLevel float64 `json:"confidence_level,omitempty"`
	// WarningSummary holds the value of the "warning_summary" field.
	WarningSummary string `json:"warning_summary,omitempty"`
	// Mechanical transcript metrics; stored alongside, never substituted for, LLM scores
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// IsFallback holds the value of the "is_fallback" field.
	IsFallback bool `json:"is_fallback,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationResultQuery when eager-loading is set.
	Edges        EvaluationResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationResultEdges holds the relations/edges for other nodes in the graph.
type EvaluationResultEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Interview holds the value of the interview edge.
	Interview *Interview `json:"interview,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationResultEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// InterviewOrErr returns the Interview value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationResultEdges) InterviewOrErr() (*Interview, error) {
	if e.Interview != nil {
		return e.Interview, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: interview.Label}
	}
	return nil, &NotLoadedError{edge: "interview"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationresult.FieldMetrics:
			values[i] = new([]byte)
		case evaluationresult.FieldHireRecommendation, evaluationresult.FieldIsFallback:
			values[i] = new(sql.NullBool)
		case evaluationresult.FieldResumeScore, evaluationresult.FieldAnswersScore, evaluationresult.FieldOverallScore, evaluationresult.FieldTechnicalScore, evaluationresult.FieldBehavioralScore, evaluationresult.FieldCodingScore, evaluationresult.FieldConfidenceLevel:
			values[i] = new(sql.NullFloat64)
		case evaluationresult.FieldID, evaluationresult.FieldSessionID, evaluationresult.FieldInterviewID, evaluationresult.FieldResumeFeedback, evaluationresult.FieldAnswersFeedback, evaluationresult.FieldRecommendation, evaluationresult.FieldWarningSummary, evaluationresult.FieldModelUsed:
			values[i] = new(sql.NullString)
		case evaluationresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationResult fields.
func (_m *EvaluationResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case evaluationresult.FieldInterviewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_id", values[i])
			} else if value.Valid {
				_m.InterviewID = value.String
			}
		case evaluationresult.FieldResumeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field resume_score", values[i])
			} else if value.Valid {
				_m.ResumeScore = value.Float64
			}
		case evaluationresult.FieldAnswersScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field answers_score", values[i])
			} else if value.Valid {
				_m.AnswersScore = value.Float64
			}
		case evaluationresult.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case evaluationresult.FieldTechnicalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field technical_score", values[i])
			} else if value.Valid {
				_m.TechnicalScore = new(float64)
				*_m.TechnicalScore = value.Float64
			}
		case evaluationresult.FieldBehavioralScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_score", values[i])
			} else if value.Valid {
				_m.BehavioralScore = new(float64)
				*_m.BehavioralScore = value.Float64
			}
		case evaluationresult.FieldCodingScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coding_score", values[i])
			} else if value.Valid {
				_m.CodingScore = new(float64)
				*_m.CodingScore = value.Float64
			}
		case evaluationresult.FieldResumeFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_feedback", values[i])
			} else if value.Valid {
				_m.ResumeFeedback = value.String
			}
		case evaluationresult.FieldAnswersFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answers_feedback", values[i])
			} else if value.Valid {
				_m.AnswersFeedback = value.String
			}
		case evaluationresult.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case evaluationresult.FieldHireRecommendation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hire_recommendation", values[i])
			} else if value.Valid {
				_m.HireRecommendation = new(bool)
				*_m.HireRecommendation = value.Bool
			}
		case evaluationresult.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = value.Float64
			}
		case evaluationresult.FieldWarningSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warning_summary", values[i])
			} else if value.Valid {
				_m.WarningSummary = value.String
			}
		case evaluationresult.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case evaluationresult.FieldIsFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_fallback", values[i])
			} else if value.Valid {
				_m.IsFallback = value.Bool
			}
		case evaluationresult.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case evaluationresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationResult.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the EvaluationResult entity.
func (_m *EvaluationResult) QuerySession() *SessionQuery {
	return NewEvaluationResultClient(_m.config).QuerySession(_m)
}

// QueryInterview queries the "interview" edge of the EvaluationResult entity.
func (_m *EvaluationResult) QueryInterview() *InterviewQuery {
	return NewEvaluationResultClient(_m.config).QueryInterview(_m)
}

// Update returns a builder for updating this EvaluationResult.
// Note that you need to call EvaluationResult.Unwrap() before calling this method if this EvaluationResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationResult) Update() *EvaluationResultUpdateOne {
	return NewEvaluationResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationResult) Unwrap() *EvaluationResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationResult) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("interview_id=")
	builder.WriteString(_m.InterviewID)
	builder.WriteString(", ")
	builder.WriteString("resume_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumeScore))
	builder.WriteString(", ")
	builder.WriteString("answers_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswersScore))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	if v := _m.TechnicalScore; v != nil {
		builder.WriteString("technical_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BehavioralScore; v != nil {
		builder.WriteString("behavioral_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CodingScore; v != nil {
		builder.WriteString("coding_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("resume_feedback=")
	builder.WriteString(_m.ResumeFeedback)
	builder.WriteString(", ")
	builder.WriteString("answers_feedback=")
	builder.WriteString(_m.AnswersFeedback)
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	if v := _m.HireRecommendation; v != nil {
		builder.WriteString("hire_recommendation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceLevel))
	builder.WriteString(", ")
	builder.WriteString("warning_summary=")
	builder.WriteString(_m.WarningSummary)
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("is_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFallback))
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationResults is a parsable slice of EvaluationResult.
type EvaluationResults []*EvaluationResult
