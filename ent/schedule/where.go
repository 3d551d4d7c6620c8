// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldID, id))
}

// InterviewID applies equality check predicate on the "interview_id" field. It's identical to InterviewIDEQ.
func InterviewID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldInterviewID, v))
}

// SlotID applies equality check predicate on the "slot_id" field. It's identical to SlotIDEQ.
func SlotID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldSlotID, v))
}

// BookingNote applies equality check predicate on the "booking_note" field. It's identical to BookingNoteEQ.
func BookingNote(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldBookingNote, v))
}

// BookedAt applies equality check predicate on the "booked_at" field. It's identical to BookedAtEQ.
func BookedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldBookedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCancelledAt, v))
}

// InterviewIDEQ applies the EQ predicate on the "interview_id" field.
func InterviewIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldInterviewID, v))
}

// InterviewIDNEQ applies the NEQ predicate on the "interview_id" field.
func InterviewIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldInterviewID, v))
}

// InterviewIDIn applies the In predicate on the "interview_id" field.
func InterviewIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldInterviewID, vs...))
}

// InterviewIDNotIn applies the NotIn predicate on the "interview_id" field.
func InterviewIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldInterviewID, vs...))
}

// InterviewIDGT applies the GT predicate on the "interview_id" field.
func InterviewIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldInterviewID, v))
}

// InterviewIDGTE applies the GTE predicate on the "interview_id" field.
func InterviewIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldInterviewID, v))
}

// InterviewIDLT applies the LT predicate on the "interview_id" field.
func InterviewIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldInterviewID, v))
}

// InterviewIDLTE applies the LTE predicate on the "interview_id" field.
func InterviewIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldInterviewID, v))
}

// InterviewIDContains applies the Contains predicate on the "interview_id" field.
func InterviewIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldInterviewID, v))
}

// InterviewIDHasPrefix applies the HasPrefix predicate on the "interview_id" field.
func InterviewIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldInterviewID, v))
}

// InterviewIDHasSuffix applies the HasSuffix predicate on the "interview_id" field.
func InterviewIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldInterviewID, v))
}

// InterviewIDEqualFold applies the EqualFold predicate on the "interview_id" field.
func InterviewIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldInterviewID, v))
}

// InterviewIDContainsFold applies the ContainsFold predicate on the "interview_id" field.
func InterviewIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldInterviewID, v))
}

// SlotIDEQ applies the EQ predicate on the "slot_id" field.
func SlotIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldSlotID, v))
}

// SlotIDNEQ applies the NEQ predicate on the "slot_id" field.
func SlotIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldSlotID, v))
}

// SlotIDIn applies the In predicate on the "slot_id" field.
func SlotIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldSlotID, vs...))
}

// SlotIDNotIn applies the NotIn predicate on the "slot_id" field.
func SlotIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldSlotID, vs...))
}

// SlotIDGT applies the GT predicate on the "slot_id" field.
func SlotIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldSlotID, v))
}

// SlotIDGTE applies the GTE predicate on the "slot_id" field.
func SlotIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldSlotID, v))
}

// SlotIDLT applies the LT predicate on the "slot_id" field.
func SlotIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldSlotID, v))
}

// SlotIDLTE applies the LTE predicate on the "slot_id" field.
func SlotIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldSlotID, v))
}

// SlotIDContains applies the Contains predicate on the "slot_id" field.
func SlotIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldSlotID, v))
}

// SlotIDHasPrefix applies the HasPrefix predicate on the "slot_id" field.
func SlotIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldSlotID, v))
}

// SlotIDHasSuffix applies the HasSuffix predicate on the "slot_id" field.
func SlotIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldSlotID, v))
}

// SlotIDEqualFold applies the EqualFold predicate on the "slot_id" field.
func SlotIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldSlotID, v))
}

// SlotIDContainsFold applies the ContainsFold predicate on the "slot_id" field.
func SlotIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldSlotID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldStatus, vs...))
}

// BookingNoteEQ applies the EQ predicate on the "booking_note" field.
func BookingNoteEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldBookingNote, v))
}

// BookingNoteNEQ applies the NEQ predicate on the "booking_note" field.
func BookingNoteNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldBookingNote, v))
}

// BookingNoteIn applies the In predicate on the "booking_note" field.
func BookingNoteIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldBookingNote, vs...))
}

// BookingNoteNotIn applies the NotIn predicate on the "booking_note" field.
func BookingNoteNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldBookingNote, vs...))
}

// BookingNoteGT applies the GT predicate on the "booking_note" field.
func BookingNoteGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldBookingNote, v))
}

// BookingNoteGTE applies the GTE predicate on the "booking_note" field.
func BookingNoteGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldBookingNote, v))
}

// BookingNoteLT applies the LT predicate on the "booking_note" field.
func BookingNoteLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldBookingNote, v))
}

// BookingNoteLTE applies the LTE predicate on the "booking_note" field.
func BookingNoteLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldBookingNote, v))
}

// BookingNoteContains applies the Contains predicate on the "booking_note" field.
func BookingNoteContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldBookingNote, v))
}

// BookingNoteHasPrefix applies the HasPrefix predicate on the "booking_note" field.
func BookingNoteHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldBookingNote, v))
}

// BookingNoteHasSuffix applies the HasSuffix predicate on the "booking_note" field.
func BookingNoteHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldBookingNote, v))
}

// BookingNoteIsNil applies the IsNil predicate on the "booking_note" field.
func BookingNoteIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldBookingNote))
}

// BookingNoteNotNil applies the NotNil predicate on the "booking_note" field.
func BookingNoteNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldBookingNote))
}

// BookingNoteEqualFold applies the EqualFold predicate on the "booking_note" field.
func BookingNoteEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldBookingNote, v))
}

// BookingNoteContainsFold applies the ContainsFold predicate on the "booking_note" field.
func BookingNoteContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldBookingNote, v))
}

// BookedAtEQ applies the EQ predicate on the "booked_at" field.
func BookedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldBookedAt, v))
}

// BookedAtNEQ applies the NEQ predicate on the "booked_at" field.
func BookedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldBookedAt, v))
}

// BookedAtIn applies the In predicate on the "booked_at" field.
func BookedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldBookedAt, vs...))
}

// BookedAtNotIn applies the NotIn predicate on the "booked_at" field.
func BookedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldBookedAt, vs...))
}

// BookedAtGT applies the GT predicate on the "booked_at" field.
func BookedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldBookedAt, v))
}

// BookedAtGTE applies the GTE predicate on the "booked_at" field.
func BookedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldBookedAt, v))
}

// BookedAtLT applies the LT predicate on the "booked_at" field.
func BookedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldBookedAt, v))
}

// BookedAtLTE applies the LTE predicate on the "booked_at" field.
func BookedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldBookedAt, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldCancelledAt))
}

// HasInterview applies the HasEdge predicate on the "interview" edge.
func HasInterview() predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InterviewTable, InterviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterviewWith applies the HasEdge predicate on the "interview" edge with a given conditions (other predicates).
func HasInterviewWith(preds ...predicate.Interview) predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := newInterviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSlot applies the HasEdge predicate on the "slot" edge.
func HasSlot() predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SlotTable, SlotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSlotWith applies the HasEdge predicate on the "slot" edge with a given conditions (other predicates).
func HasSlotWith(preds ...predicate.Slot) predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := newSlotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.NotPredicates(p))
}
