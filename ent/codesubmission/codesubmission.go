// Code generated by ent, DO NOT EDIT.

package codesubmission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the codesubmission type in the database.
	Label = "code_submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "submission_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldSourceCode holds the string denoting the source_code field in the database.
	FieldSourceCode = "source_code"
	// FieldPassedAllTests holds the string denoting the passed_all_tests field in the database.
	FieldPassedAllTests = "passed_all_tests"
	// FieldOutputLog holds the string denoting the output_log field in the database.
	FieldOutputLog = "output_log"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the codesubmission in the database.
	Table = "code_submissions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "code_submissions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for codesubmission fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldQuestionID,
	FieldLanguage,
	FieldSourceCode,
	FieldPassedAllTests,
	FieldOutputLog,
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
	// DefaultPassedAllTests holds the default value on creation for the "passed_all_tests" field.
	DefaultPassedAllTests bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Language defines the type for the "language" enum field.
type Language string

// Language values.
const (
	LanguagePython     Language = "python"
	LanguageJavascript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCSharp     Language = "c_sharp"
	LanguagePhp        Language = "php"
	LanguageRuby       Language = "ruby"
	LanguageSQL        Language = "sql"
)

func (l Language) String() string {
	return string(l)
}

// LanguageValidator is a validator for the "language" field enum values. It is called by the builders before save.
func LanguageValidator(l Language) error {
	switch l {
	case LanguagePython, LanguageJavascript, LanguageJava, LanguageCSharp, LanguagePhp, LanguageRuby, LanguageSQL:
		return nil
	default:
		return fmt.Errorf("codesubmission: invalid enum value for language field: %q", l)
	}
}

// OrderOption defines the ordering options for the CodeSubmission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// BySourceCode orders the results by the source_code field.
func BySourceCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceCode, opts...).ToFunc()
}

// ByPassedAllTests orders the results by the passed_all_tests field.
func ByPassedAllTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedAllTests, opts...).ToFunc()
}

// ByOutputLog orders the results by the output_log field.
func ByOutputLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputLog, opts...).ToFunc()
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
