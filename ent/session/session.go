// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldInterviewID holds the string denoting the interview_id field in the database.
	FieldInterviewID = "interview_id"
	// FieldCandidateName holds the string denoting the candidate_name field in the database.
	FieldCandidateName = "candidate_name"
	// FieldCandidateEmail holds the string denoting the candidate_email field in the database.
	FieldCandidateEmail = "candidate_email"
	// FieldJobDescription holds the string denoting the job_description field in the database.
	FieldJobDescription = "job_description"
	// FieldResumeText holds the string denoting the resume_text field in the database.
	FieldResumeText = "resume_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldAccent holds the string denoting the accent field in the database.
	FieldAccent = "accent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentQuestionIndex holds the string denoting the current_question_index field in the database.
	FieldCurrentQuestionIndex = "current_question_index"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldSessionStartedAt holds the string denoting the session_started_at field in the database.
	FieldSessionStartedAt = "session_started_at"
	// FieldSessionEndedAt holds the string denoting the session_ended_at field in the database.
	FieldSessionEndedAt = "session_ended_at"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldIDVerificationStatus holds the string denoting the id_verification_status field in the database.
	FieldIDVerificationStatus = "id_verification_status"
	// FieldIDDetails holds the string denoting the id_details field in the database.
	FieldIDDetails = "id_details"
	// FieldModelConfig holds the string denoting the model_config field in the database.
	FieldModelConfig = "model_config"
	// FieldIsEvaluated holds the string denoting the is_evaluated field in the database.
	FieldIsEvaluated = "is_evaluated"
	// FieldEvaluationAttempts holds the string denoting the evaluation_attempts field in the database.
	FieldEvaluationAttempts = "evaluation_attempts"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldVideoPath holds the string denoting the video_path field in the database.
	FieldVideoPath = "video_path"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInterview holds the string denoting the interview edge name in mutations.
	EdgeInterview = "interview"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// EdgeCodeSubmissions holds the string denoting the code_submissions edge name in mutations.
	EdgeCodeSubmissions = "code_submissions"
	// EdgeWarningLogs holds the string denoting the warning_logs edge name in mutations.
	EdgeWarningLogs = "warning_logs"
	// EdgeResult holds the string denoting the result edge name in mutations.
	EdgeResult = "result"
	// InterviewFieldID holds the string denoting the ID field of the Interview.
	InterviewFieldID = "interview_id"
	// QuestionFieldID holds the string denoting the ID field of the Question.
	QuestionFieldID = "question_id"
	// ResponseFieldID holds the string denoting the ID field of the Response.
	ResponseFieldID = "response_id"
	// CodeSubmissionFieldID holds the string denoting the ID field of the CodeSubmission.
	CodeSubmissionFieldID = "submission_id"
	// WarningLogFieldID holds the string denoting the ID field of the WarningLog.
	WarningLogFieldID = "warning_id"
	// EvaluationResultFieldID holds the string denoting the ID field of the EvaluationResult.
	EvaluationResultFieldID = "result_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// InterviewTable is the table that holds the interview relation/edge.
	InterviewTable = "sessions"
	// InterviewInverseTable is the table name for the Interview entity.
	// It exists in this package in order to avoid circular dependency with the "interview" package.
	InterviewInverseTable = "interviews"
	// InterviewColumn is the table column denoting the interview relation/edge.
	InterviewColumn = "interview_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "session_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "responses"
	// ResponsesInverseTable is the table name for the Response entity.
	// It exists in this package in order to avoid circular dependency with the "response" package.
	ResponsesInverseTable = "responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "session_id"
	// CodeSubmissionsTable is the table that holds the code_submissions relation/edge.
	CodeSubmissionsTable = "code_submissions"
	// CodeSubmissionsInverseTable is the table name for the CodeSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "codesubmission" package.
	CodeSubmissionsInverseTable = "code_submissions"
	// CodeSubmissionsColumn is the table column denoting the code_submissions relation/edge.
	CodeSubmissionsColumn = "session_id"
	// WarningLogsTable is the table that holds the warning_logs relation/edge.
	WarningLogsTable = "warning_logs"
	// WarningLogsInverseTable is the table name for the WarningLog entity.
	// It exists in this package in order to avoid circular dependency with the "warninglog" package.
	WarningLogsInverseTable = "warning_logs"
	// WarningLogsColumn is the table column denoting the warning_logs relation/edge.
	WarningLogsColumn = "session_id"
	// ResultTable is the table that holds the result relation/edge.
	ResultTable = "evaluation_results"
	// ResultInverseTable is the table name for the EvaluationResult entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationresult" package.
	ResultInverseTable = "evaluation_results"
	// ResultColumn is the table column denoting the result relation/edge.
	ResultColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldSessionKey,
	FieldInterviewID,
	FieldCandidateName,
	FieldCandidateEmail,
	FieldJobDescription,
	FieldResumeText,
	FieldLanguage,
	FieldAccent,
	FieldStatus,
	FieldCurrentQuestionIndex,
	FieldTotalQuestions,
	FieldSessionStartedAt,
	FieldSessionEndedAt,
	FieldLastInteractionAt,
	FieldIDVerificationStatus,
	FieldIDDetails,
	FieldModelConfig,
	FieldIsEvaluated,
	FieldEvaluationAttempts,
	FieldClaimedBy,
	FieldVideoPath,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultCurrentQuestionIndex holds the default value on creation for the "current_question_index" field.
	DefaultCurrentQuestionIndex int
	// DefaultTotalQuestions holds the default value on creation for the "total_questions" field.
	DefaultTotalQuestions int
	// DefaultIsEvaluated holds the default value on creation for the "is_evaluated" field.
	DefaultIsEvaluated bool
	// DefaultEvaluationAttempts holds the default value on creation for the "evaluation_attempts" field.
	DefaultEvaluationAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
	StatusError     Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusActive, StatusPaused, StatusCompleted, StatusExpired, StatusError:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// IDVerificationStatus defines the type for the "id_verification_status" enum field.
type IDVerificationStatus string

// IDVerificationStatusPending is the default value of the IDVerificationStatus enum.
const DefaultIDVerificationStatus = IDVerificationStatusPending

// IDVerificationStatus values.
const (
	IDVerificationStatusPending  IDVerificationStatus = "pending"
	IDVerificationStatusVerified IDVerificationStatus = "verified"
	IDVerificationStatusFailed   IDVerificationStatus = "failed"
)

func (ivs IDVerificationStatus) String() string {
	return string(ivs)
}

// IDVerificationStatusValidator is a validator for the "id_verification_status" field enum values. It is called by the builders before save.
func IDVerificationStatusValidator(ivs IDVerificationStatus) error {
	switch ivs {
	case IDVerificationStatusPending, IDVerificationStatusVerified, IDVerificationStatusFailed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for id_verification_status field: %q", ivs)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByInterviewID orders the results by the interview_id field.
func ByInterviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewID, opts...).ToFunc()
}

// ByCandidateName orders the results by the candidate_name field.
func ByCandidateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateName, opts...).ToFunc()
}

// ByCandidateEmail orders the results by the candidate_email field.
func ByCandidateEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateEmail, opts...).ToFunc()
}

// ByJobDescription orders the results by the job_description field.
func ByJobDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobDescription, opts...).ToFunc()
}

// ByResumeText orders the results by the resume_text field.
func ByResumeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByAccent orders the results by the accent field.
func ByAccent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentQuestionIndex orders the results by the current_question_index field.
func ByCurrentQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentQuestionIndex, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// BySessionStartedAt orders the results by the session_started_at field.
func BySessionStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionStartedAt, opts...).ToFunc()
}

// BySessionEndedAt orders the results by the session_ended_at field.
func BySessionEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionEndedAt, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByIDVerificationStatus orders the results by the id_verification_status field.
func ByIDVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDVerificationStatus, opts...).ToFunc()
}

// ByIDDetails orders the results by the id_details field.
func ByIDDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDDetails, opts...).ToFunc()
}

// ByIsEvaluated orders the results by the is_evaluated field.
func ByIsEvaluated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEvaluated, opts...).ToFunc()
}

// ByEvaluationAttempts orders the results by the evaluation_attempts field.
func ByEvaluationAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationAttempts, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByVideoPath orders the results by the video_path field.
func ByVideoPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoPath, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInterviewField orders the results by interview field.
func ByInterviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterviewStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByCodeSubmissionsCount orders the results by code_submissions count.
func ByCodeSubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCodeSubmissionsStep(), opts...)
	}
}

// ByCodeSubmissions orders the results by code_submissions terms.
func ByCodeSubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCodeSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWarningLogsCount orders the results by warning_logs count.
func ByWarningLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWarningLogsStep(), opts...)
	}
}

// ByWarningLogs orders the results by warning_logs terms.
func ByWarningLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWarningLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResultField orders the results by result field.
func ByResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultStep(), sql.OrderByField(field, opts...))
	}
}
func newInterviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterviewInverseTable, InterviewFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, InterviewTable, InterviewColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, QuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, ResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
func newCodeSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CodeSubmissionsInverseTable, CodeSubmissionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CodeSubmissionsTable, CodeSubmissionsColumn),
	)
}
func newWarningLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarningLogsInverseTable, WarningLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WarningLogsTable, WarningLogsColumn),
	)
}
func newResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultInverseTable, EvaluationResultFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
	)
}
