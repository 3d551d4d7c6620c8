// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/session"
)

// CodeSubmission is the model entity for the CodeSubmission schema.
type CodeSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Language holds the value of the "language" field.
	Language codesubmission.Language `json:"language,omitempty"`
	// SourceCode holds the value of the "source_code" field.
	SourceCode string `json:"source_code,omitempty"`
	// PassedAllTests holds the value of the "passed_all_tests" field.
	PassedAllTests bool `json:"passed_all_tests,omitempty"`
	// OutputLog holds the value of the "output_log" field.
	OutputLog string `json:"output_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CodeSubmissionQuery when eager-loading is set.
	Edges        CodeSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CodeSubmissionEdges holds the relations/edges for other nodes in the graph.
type CodeSubmissionEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CodeSubmissionEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codesubmission.FieldPassedAllTests:
			values[i] = new(sql.NullBool)
		case codesubmission.FieldID, codesubmission.FieldSessionID, codesubmission.FieldQuestionID, codesubmission.FieldLanguage, codesubmission.FieldSourceCode, codesubmission.FieldOutputLog:
			values[i] = new(sql.NullString)
		case codesubmission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeSubmission fields.
func (_m *CodeSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codesubmission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case codesubmission.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case codesubmission.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case codesubmission.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = codesubmission.Language(value.String)
			}
		case codesubmission.FieldSourceCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_code", values[i])
			} else if value.Valid {
				_m.SourceCode = value.String
			}
		case codesubmission.FieldPassedAllTests:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed_all_tests", values[i])
			} else if value.Valid {
				_m.PassedAllTests = value.Bool
			}
		case codesubmission.FieldOutputLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_log", values[i])
			} else if value.Valid {
				_m.OutputLog = value.String
			}
		case codesubmission.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CodeSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *CodeSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the CodeSubmission entity.
func (_m *CodeSubmission) QuerySession() *SessionQuery {
	return NewCodeSubmissionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this CodeSubmission.
// Note that you need to call CodeSubmission.Unwrap() before calling this method if this CodeSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeSubmission) Update() *CodeSubmissionUpdateOne {
	return NewCodeSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeSubmission) Unwrap() *CodeSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("CodeSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(fmt.Sprintf("%v", _m.Language))
	builder.WriteString(", ")
	builder.WriteString("source_code=")
	builder.WriteString(_m.SourceCode)
	builder.WriteString(", ")
	builder.WriteString("passed_all_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassedAllTests))
	builder.WriteString(", ")
	builder.WriteString("output_log=")
	builder.WriteString(_m.OutputLog)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CodeSubmissions is a parsable slice of CodeSubmission.
type CodeSubmissions []*CodeSubmission
