// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/warninglog"
)

// WarningLog is the model entity for the WarningLog schema.
type WarningLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// WarningType holds the value of the "warning_type" field.
	WarningType warninglog.WarningType `json:"warning_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Annotated frame in evidence storage; absent for suppressed types
	EvidencePath *string `json:"evidence_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WarningLogQuery when eager-loading is set.
	Edges        WarningLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WarningLogEdges holds the relations/edges for other nodes in the graph.
type WarningLogEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WarningLogEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WarningLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case warninglog.FieldID, warninglog.FieldSessionID, warninglog.FieldWarningType, warninglog.FieldMessage, warninglog.FieldEvidencePath:
			values[i] = new(sql.NullString)
		case warninglog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WarningLog fields.
func (_m *WarningLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case warninglog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case warninglog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case warninglog.FieldWarningType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warning_type", values[i])
			} else if value.Valid {
				_m.WarningType = warninglog.WarningType(value.String)
			}
		case warninglog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case warninglog.FieldEvidencePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_path", values[i])
			} else if value.Valid {
				_m.EvidencePath = new(string)
				*_m.EvidencePath = value.String
			}
		case warninglog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WarningLog.
// This includes values selected through modifiers, order, etc.
func (_m *WarningLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the WarningLog entity.
func (_m *WarningLog) QuerySession() *SessionQuery {
	return NewWarningLogClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this WarningLog.
// Note that you need to call WarningLog.Unwrap() before calling this method if this WarningLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WarningLog) Update() *WarningLogUpdateOne {
	return NewWarningLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WarningLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WarningLog) Unwrap() *WarningLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WarningLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WarningLog) String() string {
	var builder strings.Builder
	builder.WriteString("WarningLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("warning_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningType))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	if v := _m.EvidencePath; v != nil {
		builder.WriteString("evidence_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WarningLogs is a parsable slice of WarningLog.
type WarningLogs []*WarningLog
