// Code generated by ent, DO NOT EDIT.

package codesubmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldQuestionID, v))
}

// SourceCode applies equality check predicate on the "source_code" field. It's identical to SourceCodeEQ.
func SourceCode(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldSourceCode, v))
}

// PassedAllTests applies equality check predicate on the "passed_all_tests" field. It's identical to PassedAllTestsEQ.
func PassedAllTests(v bool) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldPassedAllTests, v))
}

// OutputLog applies equality check predicate on the "output_log" field. It's identical to OutputLogEQ.
func OutputLog(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldOutputLog, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContainsFold(FieldQuestionID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v Language) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v Language) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...Language) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...Language) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldLanguage, vs...))
}

// SourceCodeEQ applies the EQ predicate on the "source_code" field.
func SourceCodeEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldSourceCode, v))
}

// SourceCodeNEQ applies the NEQ predicate on the "source_code" field.
func SourceCodeNEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldSourceCode, v))
}

// SourceCodeIn applies the In predicate on the "source_code" field.
func SourceCodeIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldSourceCode, vs...))
}

// SourceCodeNotIn applies the NotIn predicate on the "source_code" field.
func SourceCodeNotIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldSourceCode, vs...))
}

// SourceCodeGT applies the GT predicate on the "source_code" field.
func SourceCodeGT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldSourceCode, v))
}

// SourceCodeGTE applies the GTE predicate on the "source_code" field.
func SourceCodeGTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldSourceCode, v))
}

// SourceCodeLT applies the LT predicate on the "source_code" field.
func SourceCodeLT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldSourceCode, v))
}

// SourceCodeLTE applies the LTE predicate on the "source_code" field.
func SourceCodeLTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldSourceCode, v))
}

// SourceCodeContains applies the Contains predicate on the "source_code" field.
func SourceCodeContains(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContains(FieldSourceCode, v))
}

// SourceCodeHasPrefix applies the HasPrefix predicate on the "source_code" field.
func SourceCodeHasPrefix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasPrefix(FieldSourceCode, v))
}

// SourceCodeHasSuffix applies the HasSuffix predicate on the "source_code" field.
func SourceCodeHasSuffix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasSuffix(FieldSourceCode, v))
}

// SourceCodeEqualFold applies the EqualFold predicate on the "source_code" field.
func SourceCodeEqualFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEqualFold(FieldSourceCode, v))
}

// SourceCodeContainsFold applies the ContainsFold predicate on the "source_code" field.
func SourceCodeContainsFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContainsFold(FieldSourceCode, v))
}

// PassedAllTestsEQ applies the EQ predicate on the "passed_all_tests" field.
func PassedAllTestsEQ(v bool) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldPassedAllTests, v))
}

// PassedAllTestsNEQ applies the NEQ predicate on the "passed_all_tests" field.
func PassedAllTestsNEQ(v bool) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldPassedAllTests, v))
}

// OutputLogEQ applies the EQ predicate on the "output_log" field.
func OutputLogEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldOutputLog, v))
}

// OutputLogNEQ applies the NEQ predicate on the "output_log" field.
func OutputLogNEQ(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldOutputLog, v))
}

// OutputLogIn applies the In predicate on the "output_log" field.
func OutputLogIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldOutputLog, vs...))
}

// OutputLogNotIn applies the NotIn predicate on the "output_log" field.
func OutputLogNotIn(vs ...string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldOutputLog, vs...))
}

// OutputLogGT applies the GT predicate on the "output_log" field.
func OutputLogGT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldOutputLog, v))
}

// OutputLogGTE applies the GTE predicate on the "output_log" field.
func OutputLogGTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldOutputLog, v))
}

// OutputLogLT applies the LT predicate on the "output_log" field.
func OutputLogLT(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldOutputLog, v))
}

// OutputLogLTE applies the LTE predicate on the "output_log" field.
func OutputLogLTE(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldOutputLog, v))
}

// OutputLogContains applies the Contains predicate on the "output_log" field.
func OutputLogContains(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContains(FieldOutputLog, v))
}

// OutputLogHasPrefix applies the HasPrefix predicate on the "output_log" field.
func OutputLogHasPrefix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasPrefix(FieldOutputLog, v))
}

// OutputLogHasSuffix applies the HasSuffix predicate on the "output_log" field.
func OutputLogHasSuffix(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldHasSuffix(FieldOutputLog, v))
}

// OutputLogIsNil applies the IsNil predicate on the "output_log" field.
func OutputLogIsNil() predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIsNull(FieldOutputLog))
}

// OutputLogNotNil applies the NotNil predicate on the "output_log" field.
func OutputLogNotNil() predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotNull(FieldOutputLog))
}

// OutputLogEqualFold applies the EqualFold predicate on the "output_log" field.
func OutputLogEqualFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEqualFold(FieldOutputLog, v))
}

// OutputLogContainsFold applies the ContainsFold predicate on the "output_log" field.
func OutputLogContainsFold(v string) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldContainsFold(FieldOutputLog, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.CodeSubmission {
	return predicate.CodeSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.CodeSubmission {
	return predicate.CodeSubmission(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeSubmission) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeSubmission) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeSubmission) predicate.CodeSubmission {
	return predicate.CodeSubmission(sql.NotPredicates(p))
}
