// Code generated by ent, DO NOT EDIT.

package warninglog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the warninglog type in the database.
	Label = "warning_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "warning_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldWarningType holds the string denoting the warning_type field in the database.
	FieldWarningType = "warning_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldEvidencePath holds the string denoting the evidence_path field in the database.
	FieldEvidencePath = "evidence_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the warninglog in the database.
	Table = "warning_logs"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "warning_logs"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for warninglog fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldWarningType,
	FieldMessage,
	FieldEvidencePath,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// WarningType defines the type for the "warning_type" enum field.
type WarningType string

// WarningType values.
const (
	WarningTypeNoPerson         WarningType = "no_person"
	WarningTypeMultiplePeople   WarningType = "multiple_people"
	WarningTypePhoneDetected    WarningType = "phone_detected"
	WarningTypeLowConcentration WarningType = "low_concentration"
	WarningTypeTabSwitched      WarningType = "tab_switched"
	WarningTypeExcessiveNoise   WarningType = "excessive_noise"
	WarningTypeMultipleSpeakers WarningType = "multiple_speakers"
	WarningTypeProctorDegraded  WarningType = "proctor_degraded"
)

func (wt WarningType) String() string {
	return string(wt)
}

// WarningTypeValidator is a validator for the "warning_type" field enum values. It is called by the builders before save.
func WarningTypeValidator(wt WarningType) error {
	switch wt {
	case WarningTypeNoPerson, WarningTypeMultiplePeople, WarningTypePhoneDetected, WarningTypeLowConcentration, WarningTypeTabSwitched, WarningTypeExcessiveNoise, WarningTypeMultipleSpeakers, WarningTypeProctorDegraded:
		return nil
	default:
		return fmt.Errorf("warninglog: invalid enum value for warning_type field: %q", wt)
	}
}

// OrderOption defines the ordering options for the WarningLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByWarningType orders the results by the warning_type field.
func ByWarningType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByEvidencePath orders the results by the evidence_path field.
func ByEvidencePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidencePath, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
