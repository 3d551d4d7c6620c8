// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/session"
)

// Interview is the model entity for the Interview schema.
type Interview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID string `json:"candidate_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// RoundLabel holds the value of the "round_label" field.
	RoundLabel string `json:"round_label,omitempty"`
	// Status holds the value of the "status" field.
	Status interview.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// ended_at + late grace; tokens fail EXPIRED past this instant
	LinkExpiresAt *time.Time `json:"link_expires_at,omitempty"`
	// EmailSent holds the value of the "email_sent" field.
	EmailSent bool `json:"email_sent,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterviewQuery when eager-loading is set.
	Edges        InterviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InterviewEdges holds the relations/edges for other nodes in the graph.
type InterviewEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *Candidate `json:"candidate,omitempty"`
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Schedules holds the value of the schedules edge.
	Schedules []*Schedule `json:"schedules,omitempty"`
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// EvaluationResults holds the value of the evaluation_results edge.
	EvaluationResults []*EvaluationResult `json:"evaluation_results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterviewEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterviewEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// SchedulesOrErr returns the Schedules value or an error if the edge
// was not loaded in eager-loading.
func (e InterviewEdges) SchedulesOrErr() ([]*Schedule, error) {
	if e.loadedTypes[2] {
		return e.Schedules, nil
	}
	return nil, &NotLoadedError{edge: "schedules"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterviewEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// EvaluationResultsOrErr returns the EvaluationResults value or an error if the edge
// was not loaded in eager-loading.
func (e InterviewEdges) EvaluationResultsOrErr() ([]*EvaluationResult, error) {
	if e.loadedTypes[4] {
		return e.EvaluationResults, nil
	}
	return nil, &NotLoadedError{edge: "evaluation_results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interview.FieldEmailSent:
			values[i] = new(sql.NullBool)
		case interview.FieldID, interview.FieldCandidateID, interview.FieldJobID, interview.FieldRoundLabel, interview.FieldStatus:
			values[i] = new(sql.NullString)
		case interview.FieldStartedAt, interview.FieldEndedAt, interview.FieldLinkExpiresAt, interview.FieldCreatedAt, interview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interview fields.
func (_m *Interview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interview.FieldCandidateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = value.String
			}
		case interview.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case interview.FieldRoundLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_label", values[i])
			} else if value.Valid {
				_m.RoundLabel = value.String
			}
		case interview.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = interview.Status(value.String)
			}
		case interview.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case interview.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case interview.FieldLinkExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field link_expires_at", values[i])
			} else if value.Valid {
				_m.LinkExpiresAt = new(time.Time)
				*_m.LinkExpiresAt = value.Time
			}
		case interview.FieldEmailSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_sent", values[i])
			} else if value.Valid {
				_m.EmailSent = value.Bool
			}
		case interview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interview.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Interview.
// This includes values selected through modifiers, order, etc.
func (_m *Interview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the Interview entity.
func (_m *Interview) QueryCandidate() *CandidateQuery {
	return NewInterviewClient(_m.config).QueryCandidate(_m)
}

// QueryJob queries the "job" edge of the Interview entity.
func (_m *Interview) QueryJob() *JobQuery {
	return NewInterviewClient(_m.config).QueryJob(_m)
}

// QuerySchedules queries the "schedules" edge of the Interview entity.
func (_m *Interview) QuerySchedules() *ScheduleQuery {
	return NewInterviewClient(_m.config).QuerySchedules(_m)
}

// QuerySession queries the "session" edge of the Interview entity.
func (_m *Interview) QuerySession() *SessionQuery {
	return NewInterviewClient(_m.config).QuerySession(_m)
}

// QueryEvaluationResults queries the "evaluation_results" edge of the Interview entity.
func (_m *Interview) QueryEvaluationResults() *EvaluationResultQuery {
	return NewInterviewClient(_m.config).QueryEvaluationResults(_m)
}

// Update returns a builder for updating this Interview.
// Note that you need to call Interview.Unwrap() before calling this method if this Interview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interview) Update() *InterviewUpdateOne {
	return NewInterviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interview) Unwrap() *Interview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interview) String() string {
	var builder strings.Builder
	builder.WriteString("Interview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_id=")
	builder.WriteString(_m.CandidateID)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("round_label=")
	builder.WriteString(_m.RoundLabel)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LinkExpiresAt; v != nil {
		builder.WriteString("link_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("email_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailSent))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interviews is a parsable slice of Interview.
type Interviews []*Interview
