// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldInterviewID holds the string denoting the interview_id field in the database.
	FieldInterviewID = "interview_id"
	// FieldSlotID holds the string denoting the slot_id field in the database.
	FieldSlotID = "slot_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBookingNote holds the string denoting the booking_note field in the database.
	FieldBookingNote = "booking_note"
	// FieldBookedAt holds the string denoting the booked_at field in the database.
	FieldBookedAt = "booked_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// EdgeInterview holds the string denoting the interview edge name in mutations.
	EdgeInterview = "interview"
	// EdgeSlot holds the string denoting the slot edge name in mutations.
	EdgeSlot = "slot"
	// InterviewFieldID holds the string denoting the ID field of the Interview.
	InterviewFieldID = "interview_id"
	// SlotFieldID holds the string denoting the ID field of the Slot.
	SlotFieldID = "slot_id"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
	// InterviewTable is the table that holds the interview relation/edge.
	InterviewTable = "schedules"
	// InterviewInverseTable is the table name for the Interview entity.
	// It exists in this package in order to avoid circular dependency with the "interview" package.
	InterviewInverseTable = "interviews"
	// InterviewColumn is the table column denoting the interview relation/edge.
	InterviewColumn = "interview_id"
	// SlotTable is the table that holds the slot relation/edge.
	SlotTable = "schedules"
	// SlotInverseTable is the table name for the Slot entity.
	// It exists in this package in order to avoid circular dependency with the "slot" package.
	SlotInverseTable = "slots"
	// SlotColumn is the table column denoting the slot relation/edge.
	SlotColumn = "slot_id"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldInterviewID,
	FieldSlotID,
	FieldStatus,
	FieldBookingNote,
	FieldBookedAt,
	FieldCancelledAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultBookedAt holds the default value on creation for the "booked_at" field.
	DefaultBookedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("schedule: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Schedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInterviewID orders the results by the interview_id field.
func ByInterviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewID, opts...).ToFunc()
}

// BySlotID orders the results by the slot_id field.
func BySlotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBookingNote orders the results by the booking_note field.
func ByBookingNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingNote, opts...).ToFunc()
}

// ByBookedAt orders the results by the booked_at field.
func ByBookedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByInterviewField orders the results by interview field.
func ByInterviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterviewStep(), sql.OrderByField(field, opts...))
	}
}

// BySlotField orders the results by slot field.
func BySlotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSlotStep(), sql.OrderByField(field, opts...))
	}
}
func newInterviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterviewInverseTable, InterviewFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InterviewTable, InterviewColumn),
	)
}
func newSlotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SlotInverseTable, SlotFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SlotTable, SlotColumn),
	)
}
