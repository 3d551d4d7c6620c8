// Code generated by ent, DO NOT EDIT.

package testcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldQuestionID, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldInput, v))
}

// ExpectedOutput applies equality check predicate on the "expected_output" field. It's identical to ExpectedOutputEQ.
func ExpectedOutput(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldExpectedOutput, v))
}

// IsHidden applies equality check predicate on the "is_hidden" field. It's identical to IsHiddenEQ.
func IsHidden(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldIsHidden, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldOrdinal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldQuestionID, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldInput, v))
}

// ExpectedOutputEQ applies the EQ predicate on the "expected_output" field.
func ExpectedOutputEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldExpectedOutput, v))
}

// ExpectedOutputNEQ applies the NEQ predicate on the "expected_output" field.
func ExpectedOutputNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldExpectedOutput, v))
}

// ExpectedOutputIn applies the In predicate on the "expected_output" field.
func ExpectedOutputIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldExpectedOutput, vs...))
}

// ExpectedOutputNotIn applies the NotIn predicate on the "expected_output" field.
func ExpectedOutputNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldExpectedOutput, vs...))
}

// ExpectedOutputGT applies the GT predicate on the "expected_output" field.
func ExpectedOutputGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldExpectedOutput, v))
}

// ExpectedOutputGTE applies the GTE predicate on the "expected_output" field.
func ExpectedOutputGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldExpectedOutput, v))
}

// ExpectedOutputLT applies the LT predicate on the "expected_output" field.
func ExpectedOutputLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldExpectedOutput, v))
}

// ExpectedOutputLTE applies the LTE predicate on the "expected_output" field.
func ExpectedOutputLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldExpectedOutput, v))
}

// ExpectedOutputContains applies the Contains predicate on the "expected_output" field.
func ExpectedOutputContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldExpectedOutput, v))
}

// ExpectedOutputHasPrefix applies the HasPrefix predicate on the "expected_output" field.
func ExpectedOutputHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldExpectedOutput, v))
}

// ExpectedOutputHasSuffix applies the HasSuffix predicate on the "expected_output" field.
func ExpectedOutputHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldExpectedOutput, v))
}

// ExpectedOutputEqualFold applies the EqualFold predicate on the "expected_output" field.
func ExpectedOutputEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldExpectedOutput, v))
}

// ExpectedOutputContainsFold applies the ContainsFold predicate on the "expected_output" field.
func ExpectedOutputContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldExpectedOutput, v))
}

// IsHiddenEQ applies the EQ predicate on the "is_hidden" field.
func IsHiddenEQ(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldIsHidden, v))
}

// IsHiddenNEQ applies the NEQ predicate on the "is_hidden" field.
func IsHiddenNEQ(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldIsHidden, v))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldOrdinal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.NotPredicates(p))
}
