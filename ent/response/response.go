// Code generated by ent, DO NOT EDIT.

package response

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the response type in the database.
	Label = "response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "response_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldAudioPath holds the string denoting the audio_path field in the database.
	FieldAudioPath = "audio_path"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldFillerCount holds the string denoting the filler_count field in the database.
	FieldFillerCount = "filler_count"
	// FieldWordsPerMinute holds the string denoting the words_per_minute field in the database.
	FieldWordsPerMinute = "words_per_minute"
	// FieldSentiment holds the string denoting the sentiment field in the database.
	FieldSentiment = "sentiment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// QuestionFieldID holds the string denoting the ID field of the Question.
	QuestionFieldID = "question_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the response in the database.
	Table = "responses"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "responses"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "responses"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for response fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldSessionID,
	FieldKind,
	FieldContent,
	FieldAudioPath,
	FieldDurationSeconds,
	FieldFillerCount,
	FieldWordsPerMinute,
	FieldSentiment,
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
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindText is the default value of the Kind enum.
const DefaultKind = KindText

// Kind values.
const (
	KindText  Kind = "text"
	KindAudio Kind = "audio"
	KindCode  Kind = "code"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindText, KindAudio, KindCode:
		return nil
	default:
		return fmt.Errorf("response: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Response queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByAudioPath orders the results by the audio_path field.
func ByAudioPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioPath, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByFillerCount orders the results by the filler_count field.
func ByFillerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFillerCount, opts...).ToFunc()
}

// ByWordsPerMinute orders the results by the words_per_minute field.
func ByWordsPerMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordsPerMinute, opts...).ToFunc()
}

// BySentiment orders the results by the sentiment field.
func BySentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentiment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, QuestionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
