// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSessionID, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOrder, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldParentID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// AudioPath applies equality check predicate on the "audio_path" field. It's identical to AudioPathEQ.
func AudioPath(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAudioPath, v))
}

// TtsDegraded applies equality check predicate on the "tts_degraded" field. It's identical to TtsDegradedEQ.
func TtsDegraded(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTtsDegraded, v))
}

// GeneratedFallback applies equality check predicate on the "generated_fallback" field. It's identical to GeneratedFallbackEQ.
func GeneratedFallback(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGeneratedFallback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSessionID, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOrder, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldType, vs...))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldLevel, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldParentID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// CodingLanguageEQ applies the EQ predicate on the "coding_language" field.
func CodingLanguageEQ(v CodingLanguage) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCodingLanguage, v))
}

// CodingLanguageNEQ applies the NEQ predicate on the "coding_language" field.
func CodingLanguageNEQ(v CodingLanguage) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCodingLanguage, v))
}

// CodingLanguageIn applies the In predicate on the "coding_language" field.
func CodingLanguageIn(vs ...CodingLanguage) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCodingLanguage, vs...))
}

// CodingLanguageNotIn applies the NotIn predicate on the "coding_language" field.
func CodingLanguageNotIn(vs ...CodingLanguage) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCodingLanguage, vs...))
}

// CodingLanguageIsNil applies the IsNil predicate on the "coding_language" field.
func CodingLanguageIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCodingLanguage))
}

// CodingLanguageNotNil applies the NotNil predicate on the "coding_language" field.
func CodingLanguageNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCodingLanguage))
}

// AudioPathEQ applies the EQ predicate on the "audio_path" field.
func AudioPathEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAudioPath, v))
}

// AudioPathNEQ applies the NEQ predicate on the "audio_path" field.
func AudioPathNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAudioPath, v))
}

// AudioPathIn applies the In predicate on the "audio_path" field.
func AudioPathIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAudioPath, vs...))
}

// AudioPathNotIn applies the NotIn predicate on the "audio_path" field.
func AudioPathNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAudioPath, vs...))
}

// AudioPathGT applies the GT predicate on the "audio_path" field.
func AudioPathGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAudioPath, v))
}

// AudioPathGTE applies the GTE predicate on the "audio_path" field.
func AudioPathGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAudioPath, v))
}

// AudioPathLT applies the LT predicate on the "audio_path" field.
func AudioPathLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAudioPath, v))
}

// AudioPathLTE applies the LTE predicate on the "audio_path" field.
func AudioPathLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAudioPath, v))
}

// AudioPathContains applies the Contains predicate on the "audio_path" field.
func AudioPathContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAudioPath, v))
}

// AudioPathHasPrefix applies the HasPrefix predicate on the "audio_path" field.
func AudioPathHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAudioPath, v))
}

// AudioPathHasSuffix applies the HasSuffix predicate on the "audio_path" field.
func AudioPathHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAudioPath, v))
}

// AudioPathIsNil applies the IsNil predicate on the "audio_path" field.
func AudioPathIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAudioPath))
}

// AudioPathNotNil applies the NotNil predicate on the "audio_path" field.
func AudioPathNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAudioPath))
}

// AudioPathEqualFold applies the EqualFold predicate on the "audio_path" field.
func AudioPathEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAudioPath, v))
}

// AudioPathContainsFold applies the ContainsFold predicate on the "audio_path" field.
func AudioPathContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAudioPath, v))
}

// TtsDegradedEQ applies the EQ predicate on the "tts_degraded" field.
func TtsDegradedEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTtsDegraded, v))
}

// TtsDegradedNEQ applies the NEQ predicate on the "tts_degraded" field.
func TtsDegradedNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTtsDegraded, v))
}

// GeneratedFallbackEQ applies the EQ predicate on the "generated_fallback" field.
func GeneratedFallbackEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGeneratedFallback, v))
}

// GeneratedFallbackNEQ applies the NEQ predicate on the "generated_fallback" field.
func GeneratedFallbackNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldGeneratedFallback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Question) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFollowUps applies the HasEdge predicate on the "follow_ups" edge.
func HasFollowUps() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FollowUpsTable, FollowUpsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFollowUpsWith applies the HasEdge predicate on the "follow_ups" edge with a given conditions (other predicates).
func HasFollowUpsWith(preds ...predicate.Question) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newFollowUpsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.Response) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestCases applies the HasEdge predicate on the "test_cases" edge.
func HasTestCases() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TestCasesTable, TestCasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestCasesWith applies the HasEdge predicate on the "test_cases" edge with a given conditions (other predicates).
func HasTestCasesWith(preds ...predicate.TestCase) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newTestCasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
