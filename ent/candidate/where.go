// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldID, id))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldFullName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldPhone, v))
}

// ResumeText applies equality check predicate on the "resume_text" field. It's identical to ResumeTextEQ.
func ResumeText(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldResumeText, v))
}

// ResumePath applies equality check predicate on the "resume_path" field. It's identical to ResumePathEQ.
func ResumePath(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldResumePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldFullName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldPhone, v))
}

// ResumeTextEQ applies the EQ predicate on the "resume_text" field.
func ResumeTextEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldResumeText, v))
}

// ResumeTextNEQ applies the NEQ predicate on the "resume_text" field.
func ResumeTextNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldResumeText, v))
}

// ResumeTextIn applies the In predicate on the "resume_text" field.
func ResumeTextIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldResumeText, vs...))
}

// ResumeTextNotIn applies the NotIn predicate on the "resume_text" field.
func ResumeTextNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldResumeText, vs...))
}

// ResumeTextGT applies the GT predicate on the "resume_text" field.
func ResumeTextGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldResumeText, v))
}

// ResumeTextGTE applies the GTE predicate on the "resume_text" field.
func ResumeTextGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldResumeText, v))
}

// ResumeTextLT applies the LT predicate on the "resume_text" field.
func ResumeTextLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldResumeText, v))
}

// ResumeTextLTE applies the LTE predicate on the "resume_text" field.
func ResumeTextLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldResumeText, v))
}

// ResumeTextContains applies the Contains predicate on the "resume_text" field.
func ResumeTextContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldResumeText, v))
}

// ResumeTextHasPrefix applies the HasPrefix predicate on the "resume_text" field.
func ResumeTextHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldResumeText, v))
}

// ResumeTextHasSuffix applies the HasSuffix predicate on the "resume_text" field.
func ResumeTextHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldResumeText, v))
}

// ResumeTextIsNil applies the IsNil predicate on the "resume_text" field.
func ResumeTextIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldResumeText))
}

// ResumeTextNotNil applies the NotNil predicate on the "resume_text" field.
func ResumeTextNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldResumeText))
}

// ResumeTextEqualFold applies the EqualFold predicate on the "resume_text" field.
func ResumeTextEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldResumeText, v))
}

// ResumeTextContainsFold applies the ContainsFold predicate on the "resume_text" field.
func ResumeTextContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldResumeText, v))
}

// ResumePathEQ applies the EQ predicate on the "resume_path" field.
func ResumePathEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldResumePath, v))
}

// ResumePathNEQ applies the NEQ predicate on the "resume_path" field.
func ResumePathNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldResumePath, v))
}

// ResumePathIn applies the In predicate on the "resume_path" field.
func ResumePathIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldResumePath, vs...))
}

// ResumePathNotIn applies the NotIn predicate on the "resume_path" field.
func ResumePathNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldResumePath, vs...))
}

// ResumePathGT applies the GT predicate on the "resume_path" field.
func ResumePathGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldResumePath, v))
}

// ResumePathGTE applies the GTE predicate on the "resume_path" field.
func ResumePathGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldResumePath, v))
}

// ResumePathLT applies the LT predicate on the "resume_path" field.
func ResumePathLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldResumePath, v))
}

// ResumePathLTE applies the LTE predicate on the "resume_path" field.
func ResumePathLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldResumePath, v))
}

// ResumePathContains applies the Contains predicate on the "resume_path" field.
func ResumePathContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldResumePath, v))
}

// ResumePathHasPrefix applies the HasPrefix predicate on the "resume_path" field.
func ResumePathHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldResumePath, v))
}

// ResumePathHasSuffix applies the HasSuffix predicate on the "resume_path" field.
func ResumePathHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldResumePath, v))
}

// ResumePathIsNil applies the IsNil predicate on the "resume_path" field.
func ResumePathIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldResumePath))
}

// ResumePathNotNil applies the NotNil predicate on the "resume_path" field.
func ResumePathNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldResumePath))
}

// ResumePathEqualFold applies the EqualFold predicate on the "resume_path" field.
func ResumePathEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldResumePath, v))
}

// ResumePathContainsFold applies the ContainsFold predicate on the "resume_path" field.
func ResumePathContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldResumePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInterviews applies the HasEdge predicate on the "interviews" edge.
func HasInterviews() predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InterviewsTable, InterviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterviewsWith applies the HasEdge predicate on the "interviews" edge with a given conditions (other predicates).
func HasInterviewsWith(preds ...predicate.Interview) predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := newInterviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.NotPredicates(p))
}
