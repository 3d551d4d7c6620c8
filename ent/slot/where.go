// Code generated by ent, DO NOT EDIT.

package slot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldJobID, v))
}

// InterviewDate applies equality check predicate on the "interview_date" field. It's identical to InterviewDateEQ.
func InterviewDate(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldInterviewDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldEndTime, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldDurationMinutes, v))
}

// MaxCandidates applies equality check predicate on the "max_candidates" field. It's identical to MaxCandidatesEQ.
func MaxCandidates(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldMaxCandidates, v))
}

// CurrentBookings applies equality check predicate on the "current_bookings" field. It's identical to CurrentBookingsEQ.
func CurrentBookings(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCurrentBookings, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCancelled, v))
}

// Recurrence applies equality check predicate on the "recurrence" field. It's identical to RecurrenceEQ.
func Recurrence(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldRecurrence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldJobID, v))
}

// InterviewDateEQ applies the EQ predicate on the "interview_date" field.
func InterviewDateEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldInterviewDate, v))
}

// InterviewDateNEQ applies the NEQ predicate on the "interview_date" field.
func InterviewDateNEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldInterviewDate, v))
}

// InterviewDateIn applies the In predicate on the "interview_date" field.
func InterviewDateIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldInterviewDate, vs...))
}

// InterviewDateNotIn applies the NotIn predicate on the "interview_date" field.
func InterviewDateNotIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldInterviewDate, vs...))
}

// InterviewDateGT applies the GT predicate on the "interview_date" field.
func InterviewDateGT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldInterviewDate, v))
}

// InterviewDateGTE applies the GTE predicate on the "interview_date" field.
func InterviewDateGTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldInterviewDate, v))
}

// InterviewDateLT applies the LT predicate on the "interview_date" field.
func InterviewDateLT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldInterviewDate, v))
}

// InterviewDateLTE applies the LTE predicate on the "interview_date" field.
func InterviewDateLTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldInterviewDate, v))
}

// InterviewDateContains applies the Contains predicate on the "interview_date" field.
func InterviewDateContains(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContains(FieldInterviewDate, v))
}

// InterviewDateHasPrefix applies the HasPrefix predicate on the "interview_date" field.
func InterviewDateHasPrefix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasPrefix(FieldInterviewDate, v))
}

// InterviewDateHasSuffix applies the HasSuffix predicate on the "interview_date" field.
func InterviewDateHasSuffix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasSuffix(FieldInterviewDate, v))
}

// InterviewDateEqualFold applies the EqualFold predicate on the "interview_date" field.
func InterviewDateEqualFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldInterviewDate, v))
}

// InterviewDateContainsFold applies the ContainsFold predicate on the "interview_date" field.
func InterviewDateContainsFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldInterviewDate, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldEndTime, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldDurationMinutes, v))
}

// MaxCandidatesEQ applies the EQ predicate on the "max_candidates" field.
func MaxCandidatesEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldMaxCandidates, v))
}

// MaxCandidatesNEQ applies the NEQ predicate on the "max_candidates" field.
func MaxCandidatesNEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldMaxCandidates, v))
}

// MaxCandidatesIn applies the In predicate on the "max_candidates" field.
func MaxCandidatesIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldMaxCandidates, vs...))
}

// MaxCandidatesNotIn applies the NotIn predicate on the "max_candidates" field.
func MaxCandidatesNotIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldMaxCandidates, vs...))
}

// MaxCandidatesGT applies the GT predicate on the "max_candidates" field.
func MaxCandidatesGT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldMaxCandidates, v))
}

// MaxCandidatesGTE applies the GTE predicate on the "max_candidates" field.
func MaxCandidatesGTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldMaxCandidates, v))
}

// MaxCandidatesLT applies the LT predicate on the "max_candidates" field.
func MaxCandidatesLT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldMaxCandidates, v))
}

// MaxCandidatesLTE applies the LTE predicate on the "max_candidates" field.
func MaxCandidatesLTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldMaxCandidates, v))
}

// CurrentBookingsEQ applies the EQ predicate on the "current_bookings" field.
func CurrentBookingsEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCurrentBookings, v))
}

// CurrentBookingsNEQ applies the NEQ predicate on the "current_bookings" field.
func CurrentBookingsNEQ(v int) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldCurrentBookings, v))
}

// CurrentBookingsIn applies the In predicate on the "current_bookings" field.
func CurrentBookingsIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldCurrentBookings, vs...))
}

// CurrentBookingsNotIn applies the NotIn predicate on the "current_bookings" field.
func CurrentBookingsNotIn(vs ...int) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldCurrentBookings, vs...))
}

// CurrentBookingsGT applies the GT predicate on the "current_bookings" field.
func CurrentBookingsGT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldCurrentBookings, v))
}

// CurrentBookingsGTE applies the GTE predicate on the "current_bookings" field.
func CurrentBookingsGTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldCurrentBookings, v))
}

// CurrentBookingsLT applies the LT predicate on the "current_bookings" field.
func CurrentBookingsLT(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldCurrentBookings, v))
}

// CurrentBookingsLTE applies the LTE predicate on the "current_bookings" field.
func CurrentBookingsLTE(v int) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldCurrentBookings, v))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldCancelled, v))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v string) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...string) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldRecurrence, vs...))
}

// RecurrenceGT applies the GT predicate on the "recurrence" field.
func RecurrenceGT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldRecurrence, v))
}

// RecurrenceGTE applies the GTE predicate on the "recurrence" field.
func RecurrenceGTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldRecurrence, v))
}

// RecurrenceLT applies the LT predicate on the "recurrence" field.
func RecurrenceLT(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldRecurrence, v))
}

// RecurrenceLTE applies the LTE predicate on the "recurrence" field.
func RecurrenceLTE(v string) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldRecurrence, v))
}

// RecurrenceContains applies the Contains predicate on the "recurrence" field.
func RecurrenceContains(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContains(FieldRecurrence, v))
}

// RecurrenceHasPrefix applies the HasPrefix predicate on the "recurrence" field.
func RecurrenceHasPrefix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasPrefix(FieldRecurrence, v))
}

// RecurrenceHasSuffix applies the HasSuffix predicate on the "recurrence" field.
func RecurrenceHasSuffix(v string) predicate.Slot {
	return predicate.Slot(sql.FieldHasSuffix(FieldRecurrence, v))
}

// RecurrenceIsNil applies the IsNil predicate on the "recurrence" field.
func RecurrenceIsNil() predicate.Slot {
	return predicate.Slot(sql.FieldIsNull(FieldRecurrence))
}

// RecurrenceNotNil applies the NotNil predicate on the "recurrence" field.
func RecurrenceNotNil() predicate.Slot {
	return predicate.Slot(sql.FieldNotNull(FieldRecurrence))
}

// RecurrenceEqualFold applies the EqualFold predicate on the "recurrence" field.
func RecurrenceEqualFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldEqualFold(FieldRecurrence, v))
}

// RecurrenceContainsFold applies the ContainsFold predicate on the "recurrence" field.
func RecurrenceContainsFold(v string) predicate.Slot {
	return predicate.Slot(sql.FieldContainsFold(FieldRecurrence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Slot {
	return predicate.Slot(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Slot {
	return predicate.Slot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Slot {
	return predicate.Slot(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSchedules applies the HasEdge predicate on the "schedules" edge.
func HasSchedules() predicate.Slot {
	return predicate.Slot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SchedulesTable, SchedulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchedulesWith applies the HasEdge predicate on the "schedules" edge with a given conditions (other predicates).
func HasSchedulesWith(preds ...predicate.Schedule) predicate.Slot {
	return predicate.Slot(func(s *sql.Selector) {
		step := newSchedulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Slot) predicate.Slot {
	return predicate.Slot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Slot) predicate.Slot {
	return predicate.Slot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Slot) predicate.Slot {
	return predicate.Slot(sql.NotPredicates(p))
}
