// Code generated by ent, DO NOT EDIT.

package warninglog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldSessionID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldMessage, v))
}

// EvidencePath applies equality check predicate on the "evidence_path" field. It's identical to EvidencePathEQ.
func EvidencePath(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldEvidencePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContainsFold(FieldSessionID, v))
}

// WarningTypeEQ applies the EQ predicate on the "warning_type" field.
func WarningTypeEQ(v WarningType) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldWarningType, v))
}

// WarningTypeNEQ applies the NEQ predicate on the "warning_type" field.
func WarningTypeNEQ(v WarningType) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldWarningType, v))
}

// WarningTypeIn applies the In predicate on the "warning_type" field.
func WarningTypeIn(vs ...WarningType) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldWarningType, vs...))
}

// WarningTypeNotIn applies the NotIn predicate on the "warning_type" field.
func WarningTypeNotIn(vs ...WarningType) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldWarningType, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContainsFold(FieldMessage, v))
}

// EvidencePathEQ applies the EQ predicate on the "evidence_path" field.
func EvidencePathEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldEvidencePath, v))
}

// EvidencePathNEQ applies the NEQ predicate on the "evidence_path" field.
func EvidencePathNEQ(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldEvidencePath, v))
}

// EvidencePathIn applies the In predicate on the "evidence_path" field.
func EvidencePathIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldEvidencePath, vs...))
}

// EvidencePathNotIn applies the NotIn predicate on the "evidence_path" field.
func EvidencePathNotIn(vs ...string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldEvidencePath, vs...))
}

// EvidencePathGT applies the GT predicate on the "evidence_path" field.
func EvidencePathGT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGT(FieldEvidencePath, v))
}

// EvidencePathGTE applies the GTE predicate on the "evidence_path" field.
func EvidencePathGTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGTE(FieldEvidencePath, v))
}

// EvidencePathLT applies the LT predicate on the "evidence_path" field.
func EvidencePathLT(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLT(FieldEvidencePath, v))
}

// EvidencePathLTE applies the LTE predicate on the "evidence_path" field.
func EvidencePathLTE(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLTE(FieldEvidencePath, v))
}

// EvidencePathContains applies the Contains predicate on the "evidence_path" field.
func EvidencePathContains(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContains(FieldEvidencePath, v))
}

// EvidencePathHasPrefix applies the HasPrefix predicate on the "evidence_path" field.
func EvidencePathHasPrefix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasPrefix(FieldEvidencePath, v))
}

// EvidencePathHasSuffix applies the HasSuffix predicate on the "evidence_path" field.
func EvidencePathHasSuffix(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldHasSuffix(FieldEvidencePath, v))
}

// EvidencePathIsNil applies the IsNil predicate on the "evidence_path" field.
func EvidencePathIsNil() predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIsNull(FieldEvidencePath))
}

// EvidencePathNotNil applies the NotNil predicate on the "evidence_path" field.
func EvidencePathNotNil() predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotNull(FieldEvidencePath))
}

// EvidencePathEqualFold applies the EqualFold predicate on the "evidence_path" field.
func EvidencePathEqualFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEqualFold(FieldEvidencePath, v))
}

// EvidencePathContainsFold applies the ContainsFold predicate on the "evidence_path" field.
func EvidencePathContainsFold(v string) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldContainsFold(FieldEvidencePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WarningLog {
	return predicate.WarningLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.WarningLog {
	return predicate.WarningLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.WarningLog {
	return predicate.WarningLog(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WarningLog) predicate.WarningLog {
	return predicate.WarningLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WarningLog) predicate.WarningLog {
	return predicate.WarningLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WarningLog) predicate.WarningLog {
	return predicate.WarningLog(sql.NotPredicates(p))
}
