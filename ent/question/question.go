// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "question_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "question_order"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCodingLanguage holds the string denoting the coding_language field in the database.
	FieldCodingLanguage = "coding_language"
	// FieldAudioPath holds the string denoting the audio_path field in the database.
	FieldAudioPath = "audio_path"
	// FieldTtsDegraded holds the string denoting the tts_degraded field in the database.
	FieldTtsDegraded = "tts_degraded"
	// FieldGeneratedFallback holds the string denoting the generated_fallback field in the database.
	FieldGeneratedFallback = "generated_fallback"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeFollowUps holds the string denoting the follow_ups edge name in mutations.
	EdgeFollowUps = "follow_ups"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// EdgeTestCases holds the string denoting the test_cases edge name in mutations.
	EdgeTestCases = "test_cases"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// ResponseFieldID holds the string denoting the ID field of the Response.
	ResponseFieldID = "response_id"
	// TestCaseFieldID holds the string denoting the ID field of the TestCase.
	TestCaseFieldID = "test_case_id"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "questions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "questions"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_id"
	// FollowUpsTable is the table that holds the follow_ups relation/edge.
	FollowUpsTable = "questions"
	// FollowUpsColumn is the table column denoting the follow_ups relation/edge.
	FollowUpsColumn = "parent_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "responses"
	// ResponsesInverseTable is the table name for the Response entity.
	// It exists in this package in order to avoid circular dependency with the "response" package.
	ResponsesInverseTable = "responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "question_id"
	// TestCasesTable is the table that holds the test_cases relation/edge.
	TestCasesTable = "test_cases"
	// TestCasesInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	TestCasesInverseTable = "test_cases"
	// TestCasesColumn is the table column denoting the test_cases relation/edge.
	TestCasesColumn = "question_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldOrder,
	FieldType,
	FieldLevel,
	FieldParentID,
	FieldText,
	FieldCodingLanguage,
	FieldAudioPath,
	FieldTtsDegraded,
	FieldGeneratedFallback,
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
	// DefaultTtsDegraded holds the default value on creation for the "tts_degraded" field.
	DefaultTtsDegraded bool
	// DefaultGeneratedFallback holds the default value on creation for the "generated_fallback" field.
	DefaultGeneratedFallback bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeIceBreaker   Type = "ice_breaker"
	TypeTechnical    Type = "technical"
	TypeBehavioral   Type = "behavioral"
	TypeCoding       Type = "coding"
	TypeSystemDesign Type = "system_design"
	TypeGeneral      Type = "general"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeIceBreaker, TypeTechnical, TypeBehavioral, TypeCoding, TypeSystemDesign, TypeGeneral:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for type field: %q", _type)
	}
}

// Level defines the type for the "level" enum field.
type Level string

// LevelMain is the default value of the Level enum.
const DefaultLevel = LevelMain

// Level values.
const (
	LevelMain     Level = "main"
	LevelFollowUp Level = "follow_up"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelMain, LevelFollowUp:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for level field: %q", l)
	}
}

// CodingLanguage defines the type for the "coding_language" enum field.
type CodingLanguage string

// CodingLanguage values.
const (
	CodingLanguagePython     CodingLanguage = "python"
	CodingLanguageJavascript CodingLanguage = "javascript"
	CodingLanguageJava       CodingLanguage = "java"
	CodingLanguageCSharp     CodingLanguage = "c_sharp"
	CodingLanguagePhp        CodingLanguage = "php"
	CodingLanguageRuby       CodingLanguage = "ruby"
	CodingLanguageSQL        CodingLanguage = "sql"
)

func (cl CodingLanguage) String() string {
	return string(cl)
}

// CodingLanguageValidator is a validator for the "coding_language" field enum values. It is called by the builders before save.
func CodingLanguageValidator(cl CodingLanguage) error {
	switch cl {
	case CodingLanguagePython, CodingLanguageJavascript, CodingLanguageJava, CodingLanguageCSharp, CodingLanguagePhp, CodingLanguageRuby, CodingLanguageSQL:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for coding_language field: %q", cl)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCodingLanguage orders the results by the coding_language field.
func ByCodingLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodingLanguage, opts...).ToFunc()
}

// ByAudioPath orders the results by the audio_path field.
func ByAudioPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioPath, opts...).ToFunc()
}

// ByTtsDegraded orders the results by the tts_degraded field.
func ByTtsDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTtsDegraded, opts...).ToFunc()
}

// ByGeneratedFallback orders the results by the generated_fallback field.
func ByGeneratedFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedFallback, opts...).ToFunc()
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

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByFollowUpsCount orders the results by follow_ups count.
func ByFollowUpsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFollowUpsStep(), opts...)
	}
}

// ByFollowUps orders the results by follow_ups terms.
func ByFollowUps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFollowUpsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResponsesCount orders the results by responses count.
func ByResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResponsesStep(), opts...)
	}
}

// ByResponses orders the results by responses terms.
func ByResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTestCasesCount orders the results by test_cases count.
func ByTestCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestCasesStep(), opts...)
	}
}

// ByTestCases orders the results by test_cases terms.
func ByTestCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newFollowUpsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FollowUpsTable, FollowUpsColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, ResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
func newTestCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestCasesInverseTable, TestCaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestCasesTable, TestCasesColumn),
	)
}
