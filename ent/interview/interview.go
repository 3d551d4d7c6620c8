// Code generated by ent, DO NOT EDIT.

package interview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interview type in the database.
	Label = "interview"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "interview_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldRoundLabel holds the string denoting the round_label field in the database.
	FieldRoundLabel = "round_label"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldLinkExpiresAt holds the string denoting the link_expires_at field in the database.
	FieldLinkExpiresAt = "link_expires_at"
	// FieldEmailSent holds the string denoting the email_sent field in the database.
	FieldEmailSent = "email_sent"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCandidate holds the string denoting the candidate edge name in mutations.
	EdgeCandidate = "candidate"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeSchedules holds the string denoting the schedules edge name in mutations.
	EdgeSchedules = "schedules"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeEvaluationResults holds the string denoting the evaluation_results edge name in mutations.
	EdgeEvaluationResults = "evaluation_results"
	// CandidateFieldID holds the string denoting the ID field of the Candidate.
	CandidateFieldID = "candidate_id"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// ScheduleFieldID holds the string denoting the ID field of the Schedule.
	ScheduleFieldID = "schedule_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// EvaluationResultFieldID holds the string denoting the ID field of the EvaluationResult.
	EvaluationResultFieldID = "result_id"
	// Table holds the table name of the interview in the database.
	Table = "interviews"
	// CandidateTable is the table that holds the candidate relation/edge.
	CandidateTable = "interviews"
	// CandidateInverseTable is the table name for the Candidate entity.
	// It exists in this package in order to avoid circular dependency with the "candidate" package.
	CandidateInverseTable = "candidates"
	// CandidateColumn is the table column denoting the candidate relation/edge.
	CandidateColumn = "candidate_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "interviews"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// SchedulesTable is the table that holds the schedules relation/edge.
	SchedulesTable = "schedules"
	// SchedulesInverseTable is the table name for the Schedule entity.
	// It exists in this package in order to avoid circular dependency with the "schedule" package.
	SchedulesInverseTable = "schedules"
	// SchedulesColumn is the table column denoting the schedules relation/edge.
	SchedulesColumn = "interview_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "sessions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "interview_id"
	// EvaluationResultsTable is the table that holds the evaluation_results relation/edge.
	EvaluationResultsTable = "evaluation_results"
	// EvaluationResultsInverseTable is the table name for the EvaluationResult entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationresult" package.
	EvaluationResultsInverseTable = "evaluation_results"
	// EvaluationResultsColumn is the table column denoting the evaluation_results relation/edge.
	EvaluationResultsColumn = "interview_id"
)

// Columns holds all SQL columns for interview fields.
var Columns = []string{
	FieldID,
	FieldCandidateID,
	FieldJobID,
	FieldRoundLabel,
	FieldStatus,
	FieldStartedAt,
	FieldEndedAt,
	FieldLinkExpiresAt,
	FieldEmailSent,
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
	// DefaultEmailSent holds the default value on creation for the "email_sent" field.
	DefaultEmailSent bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew               Status = "new"
	StatusPendingScheduling Status = "pending_scheduling"
	StatusScheduled         Status = "scheduled"
	StatusInProgress        Status = "in_progress"
	StatusCompleted         Status = "completed"
	StatusRejected          Status = "rejected"
	StatusOnHold            Status = "on_hold"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusPendingScheduling, StatusScheduled, StatusInProgress, StatusCompleted, StatusRejected, StatusOnHold:
		return nil
	default:
		return fmt.Errorf("interview: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Interview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByRoundLabel orders the results by the round_label field.
func ByRoundLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundLabel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByLinkExpiresAt orders the results by the link_expires_at field.
func ByLinkExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkExpiresAt, opts...).ToFunc()
}

// ByEmailSent orders the results by the email_sent field.
func ByEmailSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCandidateField orders the results by candidate field.
func ByCandidateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// BySchedulesCount orders the results by schedules count.
func BySchedulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSchedulesStep(), opts...)
	}
}

// BySchedules orders the results by schedules terms.
func BySchedules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSchedulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationResultsCount orders the results by evaluation_results count.
func ByEvaluationResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationResultsStep(), opts...)
	}
}

// ByEvaluationResults orders the results by evaluation_results terms.
func ByEvaluationResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCandidateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateInverseTable, CandidateFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newSchedulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SchedulesInverseTable, ScheduleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SchedulesTable, SchedulesColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SessionTable, SessionColumn),
	)
}
func newEvaluationResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationResultsInverseTable, EvaluationResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationResultsTable, EvaluationResultsColumn),
	)
}
