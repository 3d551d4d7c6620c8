// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/slot"
)

// Slot is the model entity for the Slot schema.
type Slot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Civil date, 2006-01-02
	InterviewDate string `json:"interview_date,omitempty"`
	// Civil clock, 15:04
	StartTime string `json:"start_time,omitempty"`
	// Civil clock, 15:04; must be after start_time
	EndTime string `json:"end_time,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// MaxCandidates holds the value of the "max_candidates" field.
	MaxCandidates int `json:"max_candidates,omitempty"`
	// CurrentBookings holds the value of the "current_bookings" field.
	CurrentBookings int `json:"current_bookings,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled bool `json:"cancelled,omitempty"`
	// Series descriptor, e.g. WEEKLY:4; set on every slot of the series
	Recurrence *string `json:"recurrence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SlotQuery when eager-loading is set.
	Edges        SlotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SlotEdges holds the relations/edges for other nodes in the graph.
type SlotEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Schedules holds the value of the schedules edge.
	Schedules []*Schedule `json:"schedules,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SlotEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// SchedulesOrErr returns the Schedules value or an error if the edge
// was not loaded in eager-loading.
func (e SlotEdges) SchedulesOrErr() ([]*Schedule, error) {
	if e.loadedTypes[1] {
		return e.Schedules, nil
	}
	return nil, &NotLoadedError{edge: "schedules"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Slot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slot.FieldCancelled:
			values[i] = new(sql.NullBool)
		case slot.FieldDurationMinutes, slot.FieldMaxCandidates, slot.FieldCurrentBookings:
			values[i] = new(sql.NullInt64)
		case slot.FieldID, slot.FieldJobID, slot.FieldInterviewDate, slot.FieldStartTime, slot.FieldEndTime, slot.FieldRecurrence:
			values[i] = new(sql.NullString)
		case slot.FieldCreatedAt, slot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Slot fields.
func (_m *Slot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case slot.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case slot.FieldInterviewDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_date", values[i])
			} else if value.Valid {
				_m.InterviewDate = value.String
			}
		case slot.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case slot.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case slot.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case slot.FieldMaxCandidates:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_candidates", values[i])
			} else if value.Valid {
				_m.MaxCandidates = int(value.Int64)
			}
		case slot.FieldCurrentBookings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_bookings", values[i])
			} else if value.Valid {
				_m.CurrentBookings = int(value.Int64)
			}
		case slot.FieldCancelled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = value.Bool
			}
		case slot.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = new(string)
				*_m.Recurrence = value.String
			}
		case slot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slot.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Slot.
// This includes values selected through modifiers, order, etc.
func (_m *Slot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Slot entity.
func (_m *Slot) QueryJob() *JobQuery {
	return NewSlotClient(_m.config).QueryJob(_m)
}

// QuerySchedules queries the "schedules" edge of the Slot entity.
func (_m *Slot) QuerySchedules() *ScheduleQuery {
	return NewSlotClient(_m.config).QuerySchedules(_m)
}

// Update returns a builder for updating this Slot.
// Note that you need to call Slot.Unwrap() before calling this method if this Slot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Slot) Update() *SlotUpdateOne {
	return NewSlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Slot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Slot) Unwrap() *Slot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Slot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Slot) String() string {
	var builder strings.Builder
	builder.WriteString("Slot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("interview_date=")
	builder.WriteString(_m.InterviewDate)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("max_candidates=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCandidates))
	builder.WriteString(", ")
	builder.WriteString("current_bookings=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentBookings))
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	if v := _m.Recurrence; v != nil {
		builder.WriteString("recurrence=")
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

// Slots is a parsable slice of Slot.
type Slots []*Slot
