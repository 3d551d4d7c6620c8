// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminUser is the predicate function for adminuser builders.
type AdminUser func(*sql.Selector)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// CodeSubmission is the predicate function for codesubmission builders.
type CodeSubmission func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// EvaluationResult is the predicate function for evaluationresult builders.
type EvaluationResult func(*sql.Selector)

// Interview is the predicate function for interview builders.
type Interview func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Slot is the predicate function for slot builders.
type Slot func(*sql.Selector)

// TestCase is the predicate function for testcase builders.
type TestCase func(*sql.Selector)

// WarningLog is the predicate function for warninglog builders.
type WarningLog func(*sql.Selector)
