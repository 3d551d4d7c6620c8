// Code generated by ent, DO NOT EDIT.

package evaluationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluationresult type in the database.
	Label = "evaluation_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldInterviewID holds the string denoting the interview_id field in the database.
	FieldInterviewID = "interview_id"
	// FieldResumeScore holds the string denoting the resume_score field in the database.
	FieldResumeScore = "resume_score"
	// FieldAnswersScore holds the string denoting the answers_score field in the database.
	FieldAnswersScore = "answers_score"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldTechnicalScore holds the string denoting the technical_score field in the database.
	FieldTechnicalScore = "technical_score"
	// FieldBehavioralScore holds the string denoting the behavioral_score field in the database.
	FieldBehavioralScore = "behavioral_score"
	// FieldCodingScore holds the string denoting the coding_score field in the database.
	FieldCodingScore = "coding_score"
	// FieldResumeFeedback holds the string denoting the resume_feedback field in the database.
	FieldResumeFeedback = "resume_feedback"
	// FieldAnswersFeedback holds the string denoting the answers_feedback field in the database.
	FieldAnswersFeedback = "answers_feedback"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldHireRecommendation holds the string denoting the hire_recommendation field in the database.
	FieldHireRecommendation = "hire_recommendation"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldWarningSummary holds the string denoting the warning_summary field in the database.
	FieldWarningSummary = "warning_summary"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldIsFallback holds the string denoting the is_fallback field in the database.
	FieldIsFallback = "is_fallback"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeInterview holds the string denoting the interview edge name in mutations.
	EdgeInterview = "interview"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// InterviewFieldID holds the string denoting the ID field of the Interview.
	InterviewFieldID = "interview_id"
	// Table holds the table name of the evaluationresult in the database.
	Table = "evaluation_results"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "evaluation_results"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// InterviewTable is the table that holds the interview relation/edge.
	InterviewTable = "evaluation_results"
	// InterviewInverseTable is the table name for the Interview entity.
	// It exists in this package in order to avoid circular dependency with the "interview" package.
	InterviewInverseTable = "interviews"
	// InterviewColumn is the table column denoting the interview relation/edge.
	InterviewColumn = "interview_id"
)

// Columns holds all SQL columns for evaluationresult fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldInterviewID,
	FieldResumeScore,
	FieldAnswersScore,
	FieldOverallScore,
	FieldTechnicalScore,
	FieldBehavioralScore,
	FieldCodingScore,
	FieldResumeFeedback,
	FieldAnswersFeedback,
	FieldRecommendation,
	FieldHireRecommendation,
	FieldConfidenceLevel,
	FieldWarningSummary,
	FieldMetrics,
	FieldIsFallback,
	FieldModelUsed,
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
	// DefaultConfidenceLevel holds the default value on creation for the "confidence_level" field.
	DefaultConfidenceLevel float64
	// DefaultIsFallback holds the default value on creation for the "is_fallback" field.
	DefaultIsFallback bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EvaluationResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByInterviewID orders the results by the interview_id field.
func ByInterviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewID, opts...).ToFunc()
}

// ByResumeScore orders the results by the resume_score field.
func ByResumeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeScore, opts...).ToFunc()
}

// ByAnswersScore orders the results by the answers_score field.
func ByAnswersScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswersScore, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByTechnicalScore orders the results by the technical_score field.
func ByTechnicalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicalScore, opts...).ToFunc()
}

// ByBehavioralScore orders the results by the behavioral_score field.
func ByBehavioralScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehavioralScore, opts...).ToFunc()
}

// ByCodingScore orders the results by the coding_score field.
func ByCodingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodingScore, opts...).ToFunc()
}

// ByResumeFeedback orders the results by the resume_feedback field.
func ByResumeFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeFeedback, opts...).ToFunc()
}

// ByAnswersFeedback orders the results by the answers_feedback field.
func ByAnswersFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswersFeedback, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByHireRecommendation orders the results by the hire_recommendation field.
func ByHireRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHireRecommendation, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByWarningSummary orders the results by the warning_summary field.
func ByWarningSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningSummary, opts...).ToFunc()
}

// ByIsFallback orders the results by the is_fallback field.
func ByIsFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFallback, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
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

// ByInterviewField orders the results by interview field.
func ByInterviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterviewStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
func newInterviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterviewInverseTable, InterviewFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InterviewTable, InterviewColumn),
	)
}
