// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/session"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// Type holds the value of the "type" field.
	Type question.Type `json:"type,omitempty"`
	// Level holds the value of the "level" field.
	Level question.Level `json:"level,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *string `json:"parent_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Required iff type=coding
	CodingLanguage *question.CodingLanguage `json:"coding_language,omitempty"`
	// AudioPath holds the value of the "audio_path" field.
	AudioPath *string `json:"audio_path,omitempty"`
	// Synthesis failed; question is delivered text-only
	TtsDegraded bool `json:"tts_degraded,omitempty"`
	// Came from the deterministic bank rather than the LLM
	GeneratedFallback bool `json:"generated_fallback,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Question `json:"parent,omitempty"`
	// FollowUps holds the value of the follow_ups edge.
	FollowUps []*Question `json:"follow_ups,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*Response `json:"responses,omitempty"`
	// TestCases holds the value of the test_cases edge.
	TestCases []*TestCase `json:"test_cases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) ParentOrErr() (*Question, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// FollowUpsOrErr returns the FollowUps value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) FollowUpsOrErr() ([]*Question, error) {
	if e.loadedTypes[2] {
		return e.FollowUps, nil
	}
	return nil, &NotLoadedError{edge: "follow_ups"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) ResponsesOrErr() ([]*Response, error) {
	if e.loadedTypes[3] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// TestCasesOrErr returns the TestCases value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) TestCasesOrErr() ([]*TestCase, error) {
	if e.loadedTypes[4] {
		return e.TestCases, nil
	}
	return nil, &NotLoadedError{edge: "test_cases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldTtsDegraded, question.FieldGeneratedFallback:
			values[i] = new(sql.NullBool)
		case question.FieldOrder:
			values[i] = new(sql.NullInt64)
		case question.FieldID, question.FieldSessionID, question.FieldType, question.FieldLevel, question.FieldParentID, question.FieldText, question.FieldCodingLanguage, question.FieldAudioPath:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case question.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case question.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case question.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = question.Type(value.String)
			}
		case question.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = question.Level(value.String)
			}
		case question.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case question.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case question.FieldCodingLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coding_language", values[i])
			} else if value.Valid {
				_m.CodingLanguage = new(question.CodingLanguage)
				*_m.CodingLanguage = question.CodingLanguage(value.String)
			}
		case question.FieldAudioPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_path", values[i])
			} else if value.Valid {
				_m.AudioPath = new(string)
				*_m.AudioPath = value.String
			}
		case question.FieldTtsDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tts_degraded", values[i])
			} else if value.Valid {
				_m.TtsDegraded = value.Bool
			}
		case question.FieldGeneratedFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generated_fallback", values[i])
			} else if value.Valid {
				_m.GeneratedFallback = value.Bool
			}
		case question.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Question entity.
func (_m *Question) QuerySession() *SessionQuery {
	return NewQuestionClient(_m.config).QuerySession(_m)
}

// QueryParent queries the "parent" edge of the Question entity.
func (_m *Question) QueryParent() *QuestionQuery {
	return NewQuestionClient(_m.config).QueryParent(_m)
}

// QueryFollowUps queries the "follow_ups" edge of the Question entity.
func (_m *Question) QueryFollowUps() *QuestionQuery {
	return NewQuestionClient(_m.config).QueryFollowUps(_m)
}

// QueryResponses queries the "responses" edge of the Question entity.
func (_m *Question) QueryResponses() *ResponseQuery {
	return NewQuestionClient(_m.config).QueryResponses(_m)
}

// QueryTestCases queries the "test_cases" edge of the Question entity.
func (_m *Question) QueryTestCases() *TestCaseQuery {
	return NewQuestionClient(_m.config).QueryTestCases(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	if v := _m.CodingLanguage; v != nil {
		builder.WriteString("coding_language=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AudioPath; v != nil {
		builder.WriteString("audio_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tts_degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.TtsDegraded))
	builder.WriteString(", ")
	builder.WriteString("generated_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedFallback))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
