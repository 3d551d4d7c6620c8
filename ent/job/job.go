// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTechStack holds the string denoting the tech_stack field in the database.
	FieldTechStack = "tech_stack"
	// FieldCodingLanguage holds the string denoting the coding_language field in the database.
	FieldCodingLanguage = "coding_language"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeSlots holds the string denoting the slots edge name in mutations.
	EdgeSlots = "slots"
	// EdgeInterviews holds the string denoting the interviews edge name in mutations.
	EdgeInterviews = "interviews"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// SlotFieldID holds the string denoting the ID field of the Slot.
	SlotFieldID = "slot_id"
	// InterviewFieldID holds the string denoting the ID field of the Interview.
	InterviewFieldID = "interview_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "jobs"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// SlotsTable is the table that holds the slots relation/edge.
	SlotsTable = "slots"
	// SlotsInverseTable is the table name for the Slot entity.
	// It exists in this package in order to avoid circular dependency with the "slot" package.
	SlotsInverseTable = "slots"
	// SlotsColumn is the table column denoting the slots relation/edge.
	SlotsColumn = "job_id"
	// InterviewsTable is the table that holds the interviews relation/edge.
	InterviewsTable = "interviews"
	// InterviewsInverseTable is the table name for the Interview entity.
	// It exists in this package in order to avoid circular dependency with the "interview" package.
	InterviewsInverseTable = "interviews"
	// InterviewsColumn is the table column denoting the interviews relation/edge.
	InterviewsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldCompanyName,
	FieldCompanyID,
	FieldDomain,
	FieldDescription,
	FieldTechStack,
	FieldCodingLanguage,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

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
		return fmt.Errorf("job: invalid enum value for coding_language field: %q", cl)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCodingLanguage orders the results by the coding_language field.
func ByCodingLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodingLanguage, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// BySlotsCount orders the results by slots count.
func BySlotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSlotsStep(), opts...)
	}
}

// BySlots orders the results by slots terms.
func BySlots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSlotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInterviewsCount orders the results by interviews count.
func ByInterviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInterviewsStep(), opts...)
	}
}

// ByInterviews orders the results by interviews terms.
func ByInterviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newSlotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SlotsInverseTable, SlotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SlotsTable, SlotsColumn),
	)
}
func newInterviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterviewsInverseTable, InterviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InterviewsTable, InterviewsColumn),
	)
}
