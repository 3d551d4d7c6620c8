// Code generated by ent, DO NOT EDIT.

package interview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldID, id))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCandidateID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldJobID, v))
}

// RoundLabel applies equality check predicate on the "round_label" field. It's identical to RoundLabelEQ.
func RoundLabel(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldRoundLabel, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldEndedAt, v))
}

// LinkExpiresAt applies equality check predicate on the "link_expires_at" field. It's identical to LinkExpiresAtEQ.
func LinkExpiresAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldLinkExpiresAt, v))
}

// EmailSent applies equality check predicate on the "email_sent" field. It's identical to EmailSentEQ.
func EmailSent(v bool) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldEmailSent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldUpdatedAt, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldCandidateID, v))
}

// CandidateIDContains applies the Contains predicate on the "candidate_id" field.
func CandidateIDContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldCandidateID, v))
}

// CandidateIDHasPrefix applies the HasPrefix predicate on the "candidate_id" field.
func CandidateIDHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldCandidateID, v))
}

// CandidateIDHasSuffix applies the HasSuffix predicate on the "candidate_id" field.
func CandidateIDHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldCandidateID, v))
}

// CandidateIDEqualFold applies the EqualFold predicate on the "candidate_id" field.
func CandidateIDEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldCandidateID, v))
}

// CandidateIDContainsFold applies the ContainsFold predicate on the "candidate_id" field.
func CandidateIDContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldCandidateID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldJobID, v))
}

// RoundLabelEQ applies the EQ predicate on the "round_label" field.
func RoundLabelEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldRoundLabel, v))
}

// RoundLabelNEQ applies the NEQ predicate on the "round_label" field.
func RoundLabelNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldRoundLabel, v))
}

// RoundLabelIn applies the In predicate on the "round_label" field.
func RoundLabelIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldRoundLabel, vs...))
}

// RoundLabelNotIn applies the NotIn predicate on the "round_label" field.
func RoundLabelNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldRoundLabel, vs...))
}

// RoundLabelGT applies the GT predicate on the "round_label" field.
func RoundLabelGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldRoundLabel, v))
}

// RoundLabelGTE applies the GTE predicate on the "round_label" field.
func RoundLabelGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldRoundLabel, v))
}

// RoundLabelLT applies the LT predicate on the "round_label" field.
func RoundLabelLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldRoundLabel, v))
}

// RoundLabelLTE applies the LTE predicate on the "round_label" field.
func RoundLabelLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldRoundLabel, v))
}

// RoundLabelContains applies the Contains predicate on the "round_label" field.
func RoundLabelContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldRoundLabel, v))
}

// RoundLabelHasPrefix applies the HasPrefix predicate on the "round_label" field.
func RoundLabelHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldRoundLabel, v))
}

// RoundLabelHasSuffix applies the HasSuffix predicate on the "round_label" field.
func RoundLabelHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldRoundLabel, v))
}

// RoundLabelIsNil applies the IsNil predicate on the "round_label" field.
func RoundLabelIsNil() predicate.Interview {
	return predicate.Interview(sql.FieldIsNull(FieldRoundLabel))
}

// RoundLabelNotNil applies the NotNil predicate on the "round_label" field.
func RoundLabelNotNil() predicate.Interview {
	return predicate.Interview(sql.FieldNotNull(FieldRoundLabel))
}

// RoundLabelEqualFold applies the EqualFold predicate on the "round_label" field.
func RoundLabelEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldRoundLabel, v))
}

// RoundLabelContainsFold applies the ContainsFold predicate on the "round_label" field.
func RoundLabelContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldRoundLabel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Interview {
	return predicate.Interview(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Interview {
	return predicate.Interview(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Interview {
	return predicate.Interview(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Interview {
	return predicate.Interview(sql.FieldNotNull(FieldEndedAt))
}

// LinkExpiresAtEQ applies the EQ predicate on the "link_expires_at" field.
func LinkExpiresAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldLinkExpiresAt, v))
}

// LinkExpiresAtNEQ applies the NEQ predicate on the "link_expires_at" field.
func LinkExpiresAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldLinkExpiresAt, v))
}

// LinkExpiresAtIn applies the In predicate on the "link_expires_at" field.
func LinkExpiresAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldLinkExpiresAt, vs...))
}

// LinkExpiresAtNotIn applies the NotIn predicate on the "link_expires_at" field.
func LinkExpiresAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldLinkExpiresAt, vs...))
}

// LinkExpiresAtGT applies the GT predicate on the "link_expires_at" field.
func LinkExpiresAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldLinkExpiresAt, v))
}

// LinkExpiresAtGTE applies the GTE predicate on the "link_expires_at" field.
func LinkExpiresAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldLinkExpiresAt, v))
}

// LinkExpiresAtLT applies the LT predicate on the "link_expires_at" field.
func LinkExpiresAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldLinkExpiresAt, v))
}

// LinkExpiresAtLTE applies the LTE predicate on the "link_expires_at" field.
func LinkExpiresAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldLinkExpiresAt, v))
}

// LinkExpiresAtIsNil applies the IsNil predicate on the "link_expires_at" field.
func LinkExpiresAtIsNil() predicate.Interview {
	return predicate.Interview(sql.FieldIsNull(FieldLinkExpiresAt))
}

// LinkExpiresAtNotNil applies the NotNil predicate on the "link_expires_at" field.
func LinkExpiresAtNotNil() predicate.Interview {
	return predicate.Interview(sql.FieldNotNull(FieldLinkExpiresAt))
}

// EmailSentEQ applies the EQ predicate on the "email_sent" field.
func EmailSentEQ(v bool) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldEmailSent, v))
}

// EmailSentNEQ applies the NEQ predicate on the "email_sent" field.
func EmailSentNEQ(v bool) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldEmailSent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.Candidate) predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSchedules applies the HasEdge predicate on the "schedules" edge.
func HasSchedules() predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SchedulesTable, SchedulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchedulesWith applies the HasEdge predicate on the "schedules" edge with a given conditions (other predicates).
func HasSchedulesWith(preds ...predicate.Schedule) predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := newSchedulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluationResults applies the HasEdge predicate on the "evaluation_results" edge.
func HasEvaluationResults() predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationResultsTable, EvaluationResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationResultsWith applies the HasEdge predicate on the "evaluation_results" edge with a given conditions (other predicates).
func HasEvaluationResultsWith(preds ...predicate.EvaluationResult) predicate.Interview {
	return predicate.Interview(func(s *sql.Selector) {
		step := newEvaluationResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.NotPredicates(p))
}
