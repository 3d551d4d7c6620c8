// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/slot"
)

// Schedule is the model entity for the Schedule schema.
type Schedule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InterviewID holds the value of the "interview_id" field.
	InterviewID string `json:"interview_id,omitempty"`
	// SlotID holds the value of the "slot_id" field.
	SlotID string `json:"slot_id,omitempty"`
	// Status holds the value of the "status" field.
	Status schedule.Status `json:"status,omitempty"`
	// BookingNote holds the value of the "booking_note" field.
	BookingNote string `json:"booking_note,omitempty"`
	// BookedAt holds the value of the "booked_at" field.
	BookedAt time.Time `json:"booked_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduleQuery when eager-loading is set.
	Edges        ScheduleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduleEdges holds the relations/edges for other nodes in the graph.
type ScheduleEdges struct {
	// Interview holds the value of the interview edge.
	Interview *Interview `json:"interview,omitempty"`
	// Slot holds the value of the slot edge.
	Slot *Slot `json:"slot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InterviewOrErr returns the Interview value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduleEdges) InterviewOrErr() (*Interview, error) {
	if e.Interview != nil {
		return e.Interview, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interview.Label}
	}
	return nil, &NotLoadedError{edge: "interview"}
}

// SlotOrErr returns the Slot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduleEdges) SlotOrErr() (*Slot, error) {
	if e.Slot != nil {
		return e.Slot, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: slot.Label}
	}
	return nil, &NotLoadedError{edge: "slot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Schedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedule.FieldID, schedule.FieldInterviewID, schedule.FieldSlotID, schedule.FieldStatus, schedule.FieldBookingNote:
			values[i] = new(sql.NullString)
		case schedule.FieldBookedAt, schedule.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Schedule fields.
func (_m *Schedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedule.FieldInterviewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_id", values[i])
			} else if value.Valid {
				_m.InterviewID = value.String
			}
		case schedule.FieldSlotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot_id", values[i])
			} else if value.Valid {
				_m.SlotID = value.String
			}
		case schedule.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = schedule.Status(value.String)
			}
		case schedule.FieldBookingNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_note", values[i])
			} else if value.Valid {
				_m.BookingNote = value.String
			}
		case schedule.FieldBookedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field booked_at", values[i])
			} else if value.Valid {
				_m.BookedAt = value.Time
			}
		case schedule.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Schedule.
// This includes values selected through modifiers, order, etc.
func (_m *Schedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInterview queries the "interview" edge of the Schedule entity.
func (_m *Schedule) QueryInterview() *InterviewQuery {
	return NewScheduleClient(_m.config).QueryInterview(_m)
}

// QuerySlot queries the "slot" edge of the Schedule entity.
func (_m *Schedule) QuerySlot() *SlotQuery {
	return NewScheduleClient(_m.config).QuerySlot(_m)
}

// Update returns a builder for updating this Schedule.
// Note that you need to call Schedule.Unwrap() before calling this method if this Schedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Schedule) Update() *ScheduleUpdateOne {
	return NewScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Schedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Schedule) Unwrap() *Schedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Schedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Schedule) String() string {
	var builder strings.Builder
	builder.WriteString("Schedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("interview_id=")
	builder.WriteString(_m.InterviewID)
	builder.WriteString(", ")
	builder.WriteString("slot_id=")
	builder.WriteString(_m.SlotID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("booking_note=")
	builder.WriteString(_m.BookingNote)
	builder.WriteString(", ")
	builder.WriteString("booked_at=")
	builder.WriteString(_m.BookedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Schedules is a parsable slice of Schedule.
type Schedules []*Schedule
