// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionKey, v))
}

// InterviewID applies equality check predicate on the "interview_id" field. It's identical to InterviewIDEQ.
func InterviewID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInterviewID, v))
}

// CandidateName applies equality check predicate on the "candidate_name" field. It's identical to CandidateNameEQ.
func CandidateName(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateEmail applies equality check predicate on the "candidate_email" field. It's identical to CandidateEmailEQ.
func CandidateEmail(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCandidateEmail, v))
}

// JobDescription applies equality check predicate on the "job_description" field. It's identical to JobDescriptionEQ.
func JobDescription(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldJobDescription, v))
}

// ResumeText applies equality check predicate on the "resume_text" field. It's identical to ResumeTextEQ.
func ResumeText(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldResumeText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLanguage, v))
}

// Accent applies equality check predicate on the "accent" field. It's identical to AccentEQ.
func Accent(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAccent, v))
}

// CurrentQuestionIndex applies equality check predicate on the "current_question_index" field. It's identical to CurrentQuestionIndexEQ.
func CurrentQuestionIndex(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentQuestionIndex, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalQuestions, v))
}

// SessionStartedAt applies equality check predicate on the "session_started_at" field. It's identical to SessionStartedAtEQ.
func SessionStartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionStartedAt, v))
}

// SessionEndedAt applies equality check predicate on the "session_ended_at" field. It's identical to SessionEndedAtEQ.
func SessionEndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionEndedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAt, v))
}

// IDDetails applies equality check predicate on the "id_details" field. It's identical to IDDetailsEQ.
func IDDetails(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIDDetails, v))
}

// IsEvaluated applies equality check predicate on the "is_evaluated" field. It's identical to IsEvaluatedEQ.
func IsEvaluated(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsEvaluated, v))
}

// EvaluationAttempts applies equality check predicate on the "evaluation_attempts" field. It's identical to EvaluationAttemptsEQ.
func EvaluationAttempts(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEvaluationAttempts, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClaimedBy, v))
}

// VideoPath applies equality check predicate on the "video_path" field. It's identical to VideoPathEQ.
func VideoPath(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVideoPath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSessionKey, v))
}

// InterviewIDEQ applies the EQ predicate on the "interview_id" field.
func InterviewIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInterviewID, v))
}

// InterviewIDNEQ applies the NEQ predicate on the "interview_id" field.
func InterviewIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInterviewID, v))
}

// InterviewIDIn applies the In predicate on the "interview_id" field.
func InterviewIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInterviewID, vs...))
}

// InterviewIDNotIn applies the NotIn predicate on the "interview_id" field.
func InterviewIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInterviewID, vs...))
}

// InterviewIDGT applies the GT predicate on the "interview_id" field.
func InterviewIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInterviewID, v))
}

// InterviewIDGTE applies the GTE predicate on the "interview_id" field.
func InterviewIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInterviewID, v))
}

// InterviewIDLT applies the LT predicate on the "interview_id" field.
func InterviewIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInterviewID, v))
}

// InterviewIDLTE applies the LTE predicate on the "interview_id" field.
func InterviewIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInterviewID, v))
}

// InterviewIDContains applies the Contains predicate on the "interview_id" field.
func InterviewIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldInterviewID, v))
}

// InterviewIDHasPrefix applies the HasPrefix predicate on the "interview_id" field.
func InterviewIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldInterviewID, v))
}

// InterviewIDHasSuffix applies the HasSuffix predicate on the "interview_id" field.
func InterviewIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldInterviewID, v))
}

// InterviewIDEqualFold applies the EqualFold predicate on the "interview_id" field.
func InterviewIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldInterviewID, v))
}

// InterviewIDContainsFold applies the ContainsFold predicate on the "interview_id" field.
func InterviewIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldInterviewID, v))
}

// CandidateNameEQ applies the EQ predicate on the "candidate_name" field.
func CandidateNameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateNameNEQ applies the NEQ predicate on the "candidate_name" field.
func CandidateNameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCandidateName, v))
}

// CandidateNameIn applies the In predicate on the "candidate_name" field.
func CandidateNameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCandidateName, vs...))
}

// CandidateNameNotIn applies the NotIn predicate on the "candidate_name" field.
func CandidateNameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCandidateName, vs...))
}

// CandidateNameGT applies the GT predicate on the "candidate_name" field.
func CandidateNameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCandidateName, v))
}

// CandidateNameGTE applies the GTE predicate on the "candidate_name" field.
func CandidateNameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCandidateName, v))
}

// CandidateNameLT applies the LT predicate on the "candidate_name" field.
func CandidateNameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCandidateName, v))
}

// CandidateNameLTE applies the LTE predicate on the "candidate_name" field.
func CandidateNameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCandidateName, v))
}

// CandidateNameContains applies the Contains predicate on the "candidate_name" field.
func CandidateNameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCandidateName, v))
}

// CandidateNameHasPrefix applies the HasPrefix predicate on the "candidate_name" field.
func CandidateNameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCandidateName, v))
}

// CandidateNameHasSuffix applies the HasSuffix predicate on the "candidate_name" field.
func CandidateNameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCandidateName, v))
}

// CandidateNameEqualFold applies the EqualFold predicate on the "candidate_name" field.
func CandidateNameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCandidateName, v))
}

// CandidateNameContainsFold applies the ContainsFold predicate on the "candidate_name" field.
func CandidateNameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCandidateName, v))
}

// CandidateEmailEQ applies the EQ predicate on the "candidate_email" field.
func CandidateEmailEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCandidateEmail, v))
}

// CandidateEmailNEQ applies the NEQ predicate on the "candidate_email" field.
func CandidateEmailNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCandidateEmail, v))
}

// CandidateEmailIn applies the In predicate on the "candidate_email" field.
func CandidateEmailIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCandidateEmail, vs...))
}

// CandidateEmailNotIn applies the NotIn predicate on the "candidate_email" field.
func CandidateEmailNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCandidateEmail, vs...))
}

// CandidateEmailGT applies the GT predicate on the "candidate_email" field.
func CandidateEmailGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCandidateEmail, v))
}

// CandidateEmailGTE applies the GTE predicate on the "candidate_email" field.
func CandidateEmailGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCandidateEmail, v))
}

// CandidateEmailLT applies the LT predicate on the "candidate_email" field.
func CandidateEmailLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCandidateEmail, v))
}

// CandidateEmailLTE applies the LTE predicate on the "candidate_email" field.
func CandidateEmailLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCandidateEmail, v))
}

// CandidateEmailContains applies the Contains predicate on the "candidate_email" field.
func CandidateEmailContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCandidateEmail, v))
}

// CandidateEmailHasPrefix applies the HasPrefix predicate on the "candidate_email" field.
func CandidateEmailHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCandidateEmail, v))
}

// CandidateEmailHasSuffix applies the HasSuffix predicate on the "candidate_email" field.
func CandidateEmailHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCandidateEmail, v))
}

// CandidateEmailEqualFold applies the EqualFold predicate on the "candidate_email" field.
func CandidateEmailEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCandidateEmail, v))
}

// CandidateEmailContainsFold applies the ContainsFold predicate on the "candidate_email" field.
func CandidateEmailContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCandidateEmail, v))
}

// JobDescriptionEQ applies the EQ predicate on the "job_description" field.
func JobDescriptionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldJobDescription, v))
}

// JobDescriptionNEQ applies the NEQ predicate on the "job_description" field.
func JobDescriptionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldJobDescription, v))
}

// JobDescriptionIn applies the In predicate on the "job_description" field.
func JobDescriptionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldJobDescription, vs...))
}

// JobDescriptionNotIn applies the NotIn predicate on the "job_description" field.
func JobDescriptionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldJobDescription, vs...))
}

// JobDescriptionGT applies the GT predicate on the "job_description" field.
func JobDescriptionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldJobDescription, v))
}

// JobDescriptionGTE applies the GTE predicate on the "job_description" field.
func JobDescriptionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldJobDescription, v))
}

// JobDescriptionLT applies the LT predicate on the "job_description" field.
func JobDescriptionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldJobDescription, v))
}

// JobDescriptionLTE applies the LTE predicate on the "job_description" field.
func JobDescriptionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldJobDescription, v))
}

// JobDescriptionContains applies the Contains predicate on the "job_description" field.
func JobDescriptionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldJobDescription, v))
}

// JobDescriptionHasPrefix applies the HasPrefix predicate on the "job_description" field.
func JobDescriptionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldJobDescription, v))
}

// JobDescriptionHasSuffix applies the HasSuffix predicate on the "job_description" field.
func JobDescriptionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldJobDescription, v))
}

// JobDescriptionEqualFold applies the EqualFold predicate on the "job_description" field.
func JobDescriptionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldJobDescription, v))
}

// JobDescriptionContainsFold applies the ContainsFold predicate on the "job_description" field.
func JobDescriptionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldJobDescription, v))
}

// ResumeTextEQ applies the EQ predicate on the "resume_text" field.
func ResumeTextEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldResumeText, v))
}

// ResumeTextNEQ applies the NEQ predicate on the "resume_text" field.
func ResumeTextNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldResumeText, v))
}

// ResumeTextIn applies the In predicate on the "resume_text" field.
func ResumeTextIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldResumeText, vs...))
}

// ResumeTextNotIn applies the NotIn predicate on the "resume_text" field.
func ResumeTextNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldResumeText, vs...))
}

// ResumeTextGT applies the GT predicate on the "resume_text" field.
func ResumeTextGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldResumeText, v))
}

// ResumeTextGTE applies the GTE predicate on the "resume_text" field.
func ResumeTextGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldResumeText, v))
}

// ResumeTextLT applies the LT predicate on the "resume_text" field.
func ResumeTextLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldResumeText, v))
}

// ResumeTextLTE applies the LTE predicate on the "resume_text" field.
func ResumeTextLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldResumeText, v))
}

// ResumeTextContains applies the Contains predicate on the "resume_text" field.
func ResumeTextContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldResumeText, v))
}

// ResumeTextHasPrefix applies the HasPrefix predicate on the "resume_text" field.
func ResumeTextHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldResumeText, v))
}

// ResumeTextHasSuffix applies the HasSuffix predicate on the "resume_text" field.
func ResumeTextHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldResumeText, v))
}

// ResumeTextIsNil applies the IsNil predicate on the "resume_text" field.
func ResumeTextIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldResumeText))
}

// ResumeTextNotNil applies the NotNil predicate on the "resume_text" field.
func ResumeTextNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldResumeText))
}

// ResumeTextEqualFold applies the EqualFold predicate on the "resume_text" field.
func ResumeTextEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldResumeText, v))
}

// ResumeTextContainsFold applies the ContainsFold predicate on the "resume_text" field.
func ResumeTextContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldResumeText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldLanguage, v))
}

// AccentEQ applies the EQ predicate on the "accent" field.
func AccentEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAccent, v))
}

// AccentNEQ applies the NEQ predicate on the "accent" field.
func AccentNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAccent, v))
}

// AccentIn applies the In predicate on the "accent" field.
func AccentIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAccent, vs...))
}

// AccentNotIn applies the NotIn predicate on the "accent" field.
func AccentNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAccent, vs...))
}

// AccentGT applies the GT predicate on the "accent" field.
func AccentGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAccent, v))
}

// AccentGTE applies the GTE predicate on the "accent" field.
func AccentGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAccent, v))
}

// AccentLT applies the LT predicate on the "accent" field.
func AccentLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAccent, v))
}

// AccentLTE applies the LTE predicate on the "accent" field.
func AccentLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAccent, v))
}

// AccentContains applies the Contains predicate on the "accent" field.
func AccentContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAccent, v))
}

// AccentHasPrefix applies the HasPrefix predicate on the "accent" field.
func AccentHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAccent, v))
}

// AccentHasSuffix applies the HasSuffix predicate on the "accent" field.
func AccentHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAccent, v))
}

// AccentIsNil applies the IsNil predicate on the "accent" field.
func AccentIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAccent))
}

// AccentNotNil applies the NotNil predicate on the "accent" field.
func AccentNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAccent))
}

// AccentEqualFold applies the EqualFold predicate on the "accent" field.
func AccentEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAccent, v))
}

// AccentContainsFold applies the ContainsFold predicate on the "accent" field.
func AccentContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAccent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentQuestionIndexEQ applies the EQ predicate on the "current_question_index" field.
func CurrentQuestionIndexEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexNEQ applies the NEQ predicate on the "current_question_index" field.
func CurrentQuestionIndexNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexIn applies the In predicate on the "current_question_index" field.
func CurrentQuestionIndexIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentQuestionIndex, vs...))
}

// CurrentQuestionIndexNotIn applies the NotIn predicate on the "current_question_index" field.
func CurrentQuestionIndexNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentQuestionIndex, vs...))
}

// CurrentQuestionIndexGT applies the GT predicate on the "current_question_index" field.
func CurrentQuestionIndexGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexGTE applies the GTE predicate on the "current_question_index" field.
func CurrentQuestionIndexGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexLT applies the LT predicate on the "current_question_index" field.
func CurrentQuestionIndexLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexLTE applies the LTE predicate on the "current_question_index" field.
func CurrentQuestionIndexLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentQuestionIndex, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalQuestions, v))
}

// SessionStartedAtEQ applies the EQ predicate on the "session_started_at" field.
func SessionStartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionStartedAt, v))
}

// SessionStartedAtNEQ applies the NEQ predicate on the "session_started_at" field.
func SessionStartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionStartedAt, v))
}

// SessionStartedAtIn applies the In predicate on the "session_started_at" field.
func SessionStartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionStartedAt, vs...))
}

// SessionStartedAtNotIn applies the NotIn predicate on the "session_started_at" field.
func SessionStartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionStartedAt, vs...))
}

// SessionStartedAtGT applies the GT predicate on the "session_started_at" field.
func SessionStartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionStartedAt, v))
}

// SessionStartedAtGTE applies the GTE predicate on the "session_started_at" field.
func SessionStartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionStartedAt, v))
}

// SessionStartedAtLT applies the LT predicate on the "session_started_at" field.
func SessionStartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionStartedAt, v))
}

// SessionStartedAtLTE applies the LTE predicate on the "session_started_at" field.
func SessionStartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionStartedAt, v))
}

// SessionStartedAtIsNil applies the IsNil predicate on the "session_started_at" field.
func SessionStartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSessionStartedAt))
}

// SessionStartedAtNotNil applies the NotNil predicate on the "session_started_at" field.
func SessionStartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSessionStartedAt))
}

// SessionEndedAtEQ applies the EQ predicate on the "session_ended_at" field.
func SessionEndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionEndedAt, v))
}

// SessionEndedAtNEQ applies the NEQ predicate on the "session_ended_at" field.
func SessionEndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionEndedAt, v))
}

// SessionEndedAtIn applies the In predicate on the "session_ended_at" field.
func SessionEndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionEndedAt, vs...))
}

// SessionEndedAtNotIn applies the NotIn predicate on the "session_ended_at" field.
func SessionEndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionEndedAt, vs...))
}

// SessionEndedAtGT applies the GT predicate on the "session_ended_at" field.
func SessionEndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionEndedAt, v))
}

// SessionEndedAtGTE applies the GTE predicate on the "session_ended_at" field.
func SessionEndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionEndedAt, v))
}

// SessionEndedAtLT applies the LT predicate on the "session_ended_at" field.
func SessionEndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionEndedAt, v))
}

// SessionEndedAtLTE applies the LTE predicate on the "session_ended_at" field.
func SessionEndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionEndedAt, v))
}

// SessionEndedAtIsNil applies the IsNil predicate on the "session_ended_at" field.
func SessionEndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSessionEndedAt))
}

// SessionEndedAtNotNil applies the NotNil predicate on the "session_ended_at" field.
func SessionEndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSessionEndedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastInteractionAt))
}

// IDVerificationStatusEQ applies the EQ predicate on the "id_verification_status" field.
func IDVerificationStatusEQ(v IDVerificationStatus) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIDVerificationStatus, v))
}

// IDVerificationStatusNEQ applies the NEQ predicate on the "id_verification_status" field.
func IDVerificationStatusNEQ(v IDVerificationStatus) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIDVerificationStatus, v))
}

// IDVerificationStatusIn applies the In predicate on the "id_verification_status" field.
func IDVerificationStatusIn(vs ...IDVerificationStatus) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldIDVerificationStatus, vs...))
}

// IDVerificationStatusNotIn applies the NotIn predicate on the "id_verification_status" field.
func IDVerificationStatusNotIn(vs ...IDVerificationStatus) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldIDVerificationStatus, vs...))
}

// IDDetailsEQ applies the EQ predicate on the "id_details" field.
func IDDetailsEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIDDetails, v))
}

// IDDetailsNEQ applies the NEQ predicate on the "id_details" field.
func IDDetailsNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIDDetails, v))
}

// IDDetailsIn applies the In predicate on the "id_details" field.
func IDDetailsIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldIDDetails, vs...))
}

// IDDetailsNotIn applies the NotIn predicate on the "id_details" field.
func IDDetailsNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldIDDetails, vs...))
}

// IDDetailsGT applies the GT predicate on the "id_details" field.
func IDDetailsGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldIDDetails, v))
}

// IDDetailsGTE applies the GTE predicate on the "id_details" field.
func IDDetailsGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldIDDetails, v))
}

// IDDetailsLT applies the LT predicate on the "id_details" field.
func IDDetailsLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldIDDetails, v))
}

// IDDetailsLTE applies the LTE predicate on the "id_details" field.
func IDDetailsLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldIDDetails, v))
}

// IDDetailsContains applies the Contains predicate on the "id_details" field.
func IDDetailsContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldIDDetails, v))
}

// IDDetailsHasPrefix applies the HasPrefix predicate on the "id_details" field.
func IDDetailsHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldIDDetails, v))
}

// IDDetailsHasSuffix applies the HasSuffix predicate on the "id_details" field.
func IDDetailsHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldIDDetails, v))
}

// IDDetailsIsNil applies the IsNil predicate on the "id_details" field.
func IDDetailsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldIDDetails))
}

// IDDetailsNotNil applies the NotNil predicate on the "id_details" field.
func IDDetailsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldIDDetails))
}

// IDDetailsEqualFold applies the EqualFold predicate on the "id_details" field.
func IDDetailsEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldIDDetails, v))
}

// IDDetailsContainsFold applies the ContainsFold predicate on the "id_details" field.
func IDDetailsContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldIDDetails, v))
}

// ModelConfigIsNil applies the IsNil predicate on the "model_config" field.
func ModelConfigIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldModelConfig))
}

// ModelConfigNotNil applies the NotNil predicate on the "model_config" field.
func ModelConfigNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldModelConfig))
}

// IsEvaluatedEQ applies the EQ predicate on the "is_evaluated" field.
func IsEvaluatedEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsEvaluated, v))
}

// IsEvaluatedNEQ applies the NEQ predicate on the "is_evaluated" field.
func IsEvaluatedNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIsEvaluated, v))
}

// EvaluationAttemptsEQ applies the EQ predicate on the "evaluation_attempts" field.
func EvaluationAttemptsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEvaluationAttempts, v))
}

// EvaluationAttemptsNEQ applies the NEQ predicate on the "evaluation_attempts" field.
func EvaluationAttemptsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEvaluationAttempts, v))
}

// EvaluationAttemptsIn applies the In predicate on the "evaluation_attempts" field.
func EvaluationAttemptsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEvaluationAttempts, vs...))
}

// EvaluationAttemptsNotIn applies the NotIn predicate on the "evaluation_attempts" field.
func EvaluationAttemptsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEvaluationAttempts, vs...))
}

// EvaluationAttemptsGT applies the GT predicate on the "evaluation_attempts" field.
func EvaluationAttemptsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEvaluationAttempts, v))
}

// EvaluationAttemptsGTE applies the GTE predicate on the "evaluation_attempts" field.
func EvaluationAttemptsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEvaluationAttempts, v))
}

// EvaluationAttemptsLT applies the LT predicate on the "evaluation_attempts" field.
func EvaluationAttemptsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEvaluationAttempts, v))
}

// EvaluationAttemptsLTE applies the LTE predicate on the "evaluation_attempts" field.
func EvaluationAttemptsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEvaluationAttempts, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldClaimedBy, v))
}

// VideoPathEQ applies the EQ predicate on the "video_path" field.
func VideoPathEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVideoPath, v))
}

// VideoPathNEQ applies the NEQ predicate on the "video_path" field.
func VideoPathNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldVideoPath, v))
}

// VideoPathIn applies the In predicate on the "video_path" field.
func VideoPathIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldVideoPath, vs...))
}

// VideoPathNotIn applies the NotIn predicate on the "video_path" field.
func VideoPathNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldVideoPath, vs...))
}

// VideoPathGT applies the GT predicate on the "video_path" field.
func VideoPathGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldVideoPath, v))
}

// VideoPathGTE applies the GTE predicate on the "video_path" field.
func VideoPathGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldVideoPath, v))
}

// VideoPathLT applies the LT predicate on the "video_path" field.
func VideoPathLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldVideoPath, v))
}

// VideoPathLTE applies the LTE predicate on the "video_path" field.
func VideoPathLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldVideoPath, v))
}

// VideoPathContains applies the Contains predicate on the "video_path" field.
func VideoPathContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldVideoPath, v))
}

// VideoPathHasPrefix applies the HasPrefix predicate on the "video_path" field.
func VideoPathHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldVideoPath, v))
}

// VideoPathHasSuffix applies the HasSuffix predicate on the "video_path" field.
func VideoPathHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldVideoPath, v))
}

// VideoPathIsNil applies the IsNil predicate on the "video_path" field.
func VideoPathIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldVideoPath))
}

// VideoPathNotNil applies the NotNil predicate on the "video_path" field.
func VideoPathNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldVideoPath))
}

// VideoPathEqualFold applies the EqualFold predicate on the "video_path" field.
func VideoPathEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldVideoPath, v))
}

// VideoPathContainsFold applies the ContainsFold predicate on the "video_path" field.
func VideoPathContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldVideoPath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInterview applies the HasEdge predicate on the "interview" edge.
func HasInterview() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, InterviewTable, InterviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterviewWith applies the HasEdge predicate on the "interview" edge with a given conditions (other predicates).
func HasInterviewWith(preds ...predicate.Interview) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newInterviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.Response) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCodeSubmissions applies the HasEdge predicate on the "code_submissions" edge.
func HasCodeSubmissions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CodeSubmissionsTable, CodeSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCodeSubmissionsWith applies the HasEdge predicate on the "code_submissions" edge with a given conditions (other predicates).
func HasCodeSubmissionsWith(preds ...predicate.CodeSubmission) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newCodeSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWarningLogs applies the HasEdge predicate on the "warning_logs" edge.
func HasWarningLogs() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WarningLogsTable, WarningLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarningLogsWith applies the HasEdge predicate on the "warning_logs" edge with a given conditions (other predicates).
func HasWarningLogsWith(preds ...predicate.WarningLog) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newWarningLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResult applies the HasEdge predicate on the "result" edge.
func HasResult() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultWith applies the HasEdge predicate on the "result" edge with a given conditions (other predicates).
func HasResultWith(preds ...predicate.EvaluationResult) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
