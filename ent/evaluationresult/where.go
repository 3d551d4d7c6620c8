// Code generated by ent, DO NOT EDIT.

package evaluationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldSessionID, v))
}

// InterviewID applies equality check predicate on the "interview_id" field. It's identical to InterviewIDEQ.
func InterviewID(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldInterviewID, v))
}

// ResumeScore applies equality check predicate on the "resume_score" field. It's identical to ResumeScoreEQ.
func ResumeScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldResumeScore, v))
}

// AnswersScore applies equality check predicate on the "answers_score" field. It's identical to AnswersScoreEQ.
func AnswersScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldAnswersScore, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldOverallScore, v))
}

// TechnicalScore applies equality check predicate on the "technical_score" field. It's identical to TechnicalScoreEQ.
func TechnicalScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldTechnicalScore, v))
}

// BehavioralScore applies equality check predicate on the "behavioral_score" field. It's identical to BehavioralScoreEQ.
func BehavioralScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldBehavioralScore, v))
}

// CodingScore applies equality check predicate on the "coding_score" field. It's identical to CodingScoreEQ.
func CodingScore(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldCodingScore, v))
}

// ResumeFeedback applies equality check predicate on the "resume_feedback" field. It's identical to ResumeFeedbackEQ.
func ResumeFeedback(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldResumeFeedback, v))
}

// AnswersFeedback applies equality check predicate on the "answers_feedback" field. It's identical to AnswersFeedbackEQ.
func AnswersFeedback(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldAnswersFeedback, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldRecommendation, v))
}

// HireRecommendation applies equality check predicate on the "hire_recommendation" field. It's identical to HireRecommendationEQ.
func HireRecommendation(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldHireRecommendation, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldConfidenceLevel, v))
}

// WarningSummary applies equality check predicate on the "warning_summary" field. It's identical to WarningSummaryEQ.
func WarningSummary(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldWarningSummary, v))
}

// IsFallback applies equality check predicate on the "is_fallback" field. It's identical to IsFallbackEQ.
func IsFallback(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldIsFallback, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldModelUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldSessionID, v))
}

// InterviewIDEQ applies the EQ predicate on the "interview_id" field.
func InterviewIDEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldInterviewID, v))
}

// InterviewIDNEQ applies the NEQ predicate on the "interview_id" field.
func InterviewIDNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldInterviewID, v))
}

// InterviewIDIn applies the In predicate on the "interview_id" field.
func InterviewIDIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldInterviewID, vs...))
}

// InterviewIDNotIn applies the NotIn predicate on the "interview_id" field.
func InterviewIDNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldInterviewID, vs...))
}

// InterviewIDGT applies the GT predicate on the "interview_id" field.
func InterviewIDGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldInterviewID, v))
}

// InterviewIDGTE applies the GTE predicate on the "interview_id" field.
func InterviewIDGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldInterviewID, v))
}

// InterviewIDLT applies the LT predicate on the "interview_id" field.
func InterviewIDLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldInterviewID, v))
}

// InterviewIDLTE applies the LTE predicate on the "interview_id" field.
func InterviewIDLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldInterviewID, v))
}

// InterviewIDContains applies the Contains predicate on the "interview_id" field.
func InterviewIDContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldInterviewID, v))
}

// InterviewIDHasPrefix applies the HasPrefix predicate on the "interview_id" field.
func InterviewIDHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldInterviewID, v))
}

// InterviewIDHasSuffix applies the HasSuffix predicate on the "interview_id" field.
func InterviewIDHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldInterviewID, v))
}

// InterviewIDEqualFold applies the EqualFold predicate on the "interview_id" field.
func InterviewIDEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldInterviewID, v))
}

// InterviewIDContainsFold applies the ContainsFold predicate on the "interview_id" field.
func InterviewIDContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldInterviewID, v))
}

// ResumeScoreEQ applies the EQ predicate on the "resume_score" field.
func ResumeScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldResumeScore, v))
}

// ResumeScoreNEQ applies the NEQ predicate on the "resume_score" field.
func ResumeScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldResumeScore, v))
}

// ResumeScoreIn applies the In predicate on the "resume_score" field.
func ResumeScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldResumeScore, vs...))
}

// ResumeScoreNotIn applies the NotIn predicate on the "resume_score" field.
func ResumeScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldResumeScore, vs...))
}

// ResumeScoreGT applies the GT predicate on the "resume_score" field.
func ResumeScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldResumeScore, v))
}

// ResumeScoreGTE applies the GTE predicate on the "resume_score" field.
func ResumeScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldResumeScore, v))
}

// ResumeScoreLT applies the LT predicate on the "resume_score" field.
func ResumeScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldResumeScore, v))
}

// ResumeScoreLTE applies the LTE predicate on the "resume_score" field.
func ResumeScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldResumeScore, v))
}

// AnswersScoreEQ applies the EQ predicate on the "answers_score" field.
func AnswersScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldAnswersScore, v))
}

// AnswersScoreNEQ applies the NEQ predicate on the "answers_score" field.
func AnswersScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldAnswersScore, v))
}

// AnswersScoreIn applies the In predicate on the "answers_score" field.
func AnswersScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldAnswersScore, vs...))
}

// AnswersScoreNotIn applies the NotIn predicate on the "answers_score" field.
func AnswersScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldAnswersScore, vs...))
}

// AnswersScoreGT applies the GT predicate on the "answers_score" field.
func AnswersScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldAnswersScore, v))
}

// AnswersScoreGTE applies the GTE predicate on the "answers_score" field.
func AnswersScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldAnswersScore, v))
}

// AnswersScoreLT applies the LT predicate on the "answers_score" field.
func AnswersScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldAnswersScore, v))
}

// AnswersScoreLTE applies the LTE predicate on the "answers_score" field.
func AnswersScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldAnswersScore, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldOverallScore, v))
}

// TechnicalScoreEQ applies the EQ predicate on the "technical_score" field.
func TechnicalScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldTechnicalScore, v))
}

// TechnicalScoreNEQ applies the NEQ predicate on the "technical_score" field.
func TechnicalScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldTechnicalScore, v))
}

// TechnicalScoreIn applies the In predicate on the "technical_score" field.
func TechnicalScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldTechnicalScore, vs...))
}

// TechnicalScoreNotIn applies the NotIn predicate on the "technical_score" field.
func TechnicalScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldTechnicalScore, vs...))
}

// TechnicalScoreGT applies the GT predicate on the "technical_score" field.
func TechnicalScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldTechnicalScore, v))
}

// TechnicalScoreGTE applies the GTE predicate on the "technical_score" field.
func TechnicalScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldTechnicalScore, v))
}

// TechnicalScoreLT applies the LT predicate on the "technical_score" field.
func TechnicalScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldTechnicalScore, v))
}

// TechnicalScoreLTE applies the LTE predicate on the "technical_score" field.
func TechnicalScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldTechnicalScore, v))
}

// TechnicalScoreIsNil applies the IsNil predicate on the "technical_score" field.
func TechnicalScoreIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldTechnicalScore))
}

// TechnicalScoreNotNil applies the NotNil predicate on the "technical_score" field.
func TechnicalScoreNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldTechnicalScore))
}

// BehavioralScoreEQ applies the EQ predicate on the "behavioral_score" field.
func BehavioralScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldBehavioralScore, v))
}

// BehavioralScoreNEQ applies the NEQ predicate on the "behavioral_score" field.
func BehavioralScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldBehavioralScore, v))
}

// BehavioralScoreIn applies the In predicate on the "behavioral_score" field.
func BehavioralScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldBehavioralScore, vs...))
}

// BehavioralScoreNotIn applies the NotIn predicate on the "behavioral_score" field.
func BehavioralScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldBehavioralScore, vs...))
}

// BehavioralScoreGT applies the GT predicate on the "behavioral_score" field.
func BehavioralScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldBehavioralScore, v))
}

// BehavioralScoreGTE applies the GTE predicate on the "behavioral_score" field.
func BehavioralScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldBehavioralScore, v))
}

// BehavioralScoreLT applies the LT predicate on the "behavioral_score" field.
func BehavioralScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldBehavioralScore, v))
}

// BehavioralScoreLTE applies the LTE predicate on the "behavioral_score" field.
func BehavioralScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldBehavioralScore, v))
}

// BehavioralScoreIsNil applies the IsNil predicate on the "behavioral_score" field.
func BehavioralScoreIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldBehavioralScore))
}

// BehavioralScoreNotNil applies the NotNil predicate on the "behavioral_score" field.
func BehavioralScoreNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldBehavioralScore))
}

// CodingScoreEQ applies the EQ predicate on the "coding_score" field.
func CodingScoreEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldCodingScore, v))
}

// CodingScoreNEQ applies the NEQ predicate on the "coding_score" field.
func CodingScoreNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldCodingScore, v))
}

// CodingScoreIn applies the In predicate on the "coding_score" field.
func CodingScoreIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldCodingScore, vs...))
}

// CodingScoreNotIn applies the NotIn predicate on the "coding_score" field.
func CodingScoreNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldCodingScore, vs...))
}

// CodingScoreGT applies the GT predicate on the "coding_score" field.
func CodingScoreGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldCodingScore, v))
}

// CodingScoreGTE applies the GTE predicate on the "coding_score" field.
func CodingScoreGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldCodingScore, v))
}

// CodingScoreLT applies the LT predicate on the "coding_score" field.
func CodingScoreLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldCodingScore, v))
}

// CodingScoreLTE applies the LTE predicate on the "coding_score" field.
func CodingScoreLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldCodingScore, v))
}

// CodingScoreIsNil applies the IsNil predicate on the "coding_score" field.
func CodingScoreIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldCodingScore))
}

// CodingScoreNotNil applies the NotNil predicate on the "coding_score" field.
func CodingScoreNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldCodingScore))
}

// ResumeFeedbackEQ applies the EQ predicate on the "resume_feedback" field.
func ResumeFeedbackEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldResumeFeedback, v))
}

// ResumeFeedbackNEQ applies the NEQ predicate on the "resume_feedback" field.
func ResumeFeedbackNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldResumeFeedback, v))
}

// ResumeFeedbackIn applies the In predicate on the "resume_feedback" field.
func ResumeFeedbackIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldResumeFeedback, vs...))
}

// ResumeFeedbackNotIn applies the NotIn predicate on the "resume_feedback" field.
func ResumeFeedbackNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldResumeFeedback, vs...))
}

// ResumeFeedbackGT applies the GT predicate on the "resume_feedback" field.
func ResumeFeedbackGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldResumeFeedback, v))
}

// ResumeFeedbackGTE applies the GTE predicate on the "resume_feedback" field.
func ResumeFeedbackGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldResumeFeedback, v))
}

// ResumeFeedbackLT applies the LT predicate on the "resume_feedback" field.
func ResumeFeedbackLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldResumeFeedback, v))
}

// ResumeFeedbackLTE applies the LTE predicate on the "resume_feedback" field.
func ResumeFeedbackLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldResumeFeedback, v))
}

// ResumeFeedbackContains applies the Contains predicate on the "resume_feedback" field.
func ResumeFeedbackContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldResumeFeedback, v))
}

// ResumeFeedbackHasPrefix applies the HasPrefix predicate on the "resume_feedback" field.
func ResumeFeedbackHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldResumeFeedback, v))
}

// ResumeFeedbackHasSuffix applies the HasSuffix predicate on the "resume_feedback" field.
func ResumeFeedbackHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldResumeFeedback, v))
}

// ResumeFeedbackIsNil applies the IsNil predicate on the "resume_feedback" field.
func ResumeFeedbackIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldResumeFeedback))
}

// ResumeFeedbackNotNil applies the NotNil predicate on the "resume_feedback" field.
func ResumeFeedbackNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldResumeFeedback))
}

// ResumeFeedbackEqualFold applies the EqualFold predicate on the "resume_feedback" field.
func ResumeFeedbackEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldResumeFeedback, v))
}

// ResumeFeedbackContainsFold applies the ContainsFold predicate on the "resume_feedback" field.
func ResumeFeedbackContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldResumeFeedback, v))
}

// AnswersFeedbackEQ applies the EQ predicate on the "answers_feedback" field.
func AnswersFeedbackEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldAnswersFeedback, v))
}

// AnswersFeedbackNEQ applies the NEQ predicate on the "answers_feedback" field.
func AnswersFeedbackNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldAnswersFeedback, v))
}

// AnswersFeedbackIn applies the In predicate on the "answers_feedback" field.
func AnswersFeedbackIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldAnswersFeedback, vs...))
}

// AnswersFeedbackNotIn applies the NotIn predicate on the "answers_feedback" field.
func AnswersFeedbackNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldAnswersFeedback, vs...))
}

// AnswersFeedbackGT applies the GT predicate on the "answers_feedback" field.
func AnswersFeedbackGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldAnswersFeedback, v))
}

// AnswersFeedbackGTE applies the GTE predicate on the "answers_feedback" field.
func AnswersFeedbackGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldAnswersFeedback, v))
}

// AnswersFeedbackLT applies the LT predicate on the "answers_feedback" field.
func AnswersFeedbackLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldAnswersFeedback, v))
}

// AnswersFeedbackLTE applies the LTE predicate on the "answers_feedback" field.
func AnswersFeedbackLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldAnswersFeedback, v))
}

// AnswersFeedbackContains applies the Contains predicate on the "answers_feedback" field.
func AnswersFeedbackContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldAnswersFeedback, v))
}

// AnswersFeedbackHasPrefix applies the HasPrefix predicate on the "answers_feedback" field.
func AnswersFeedbackHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldAnswersFeedback, v))
}

// AnswersFeedbackHasSuffix applies the HasSuffix predicate on the "answers_feedback" field.
func AnswersFeedbackHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldAnswersFeedback, v))
}

// AnswersFeedbackIsNil applies the IsNil predicate on the "answers_feedback" field.
func AnswersFeedbackIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldAnswersFeedback))
}

// AnswersFeedbackNotNil applies the NotNil predicate on the "answers_feedback" field.
func AnswersFeedbackNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldAnswersFeedback))
}

// AnswersFeedbackEqualFold applies the EqualFold predicate on the "answers_feedback" field.
func AnswersFeedbackEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldAnswersFeedback, v))
}

// AnswersFeedbackContainsFold applies the ContainsFold predicate on the "answers_feedback" field.
func AnswersFeedbackContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldAnswersFeedback, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationIsNil applies the IsNil predicate on the "recommendation" field.
func RecommendationIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldRecommendation))
}

// RecommendationNotNil applies the NotNil predicate on the "recommendation" field.
func RecommendationNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldRecommendation))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldRecommendation, v))
}

// HireRecommendationEQ applies the EQ predicate on the "hire_recommendation" field.
func HireRecommendationEQ(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldHireRecommendation, v))
}

// HireRecommendationNEQ applies the NEQ predicate on the "hire_recommendation" field.
func HireRecommendationNEQ(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldHireRecommendation, v))
}

// HireRecommendationIsNil applies the IsNil predicate on the "hire_recommendation" field.
func HireRecommendationIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldHireRecommendation))
}

// HireRecommendationNotNil applies the NotNil predicate on the "hire_recommendation" field.
func HireRecommendationNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldHireRecommendation))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v float64) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldConfidenceLevel, v))
}

// WarningSummaryEQ applies the EQ predicate on the "warning_summary" field.
func WarningSummaryEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldWarningSummary, v))
}

// WarningSummaryNEQ applies the NEQ predicate on the "warning_summary" field.
func WarningSummaryNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldWarningSummary, v))
}

// WarningSummaryIn applies the In predicate on the "warning_summary" field.
func WarningSummaryIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldWarningSummary, vs...))
}

// WarningSummaryNotIn applies the NotIn predicate on the "warning_summary" field.
func WarningSummaryNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldWarningSummary, vs...))
}

// WarningSummaryGT applies the GT predicate on the "warning_summary" field.
func WarningSummaryGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldWarningSummary, v))
}

// WarningSummaryGTE applies the GTE predicate on the "warning_summary" field.
func WarningSummaryGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldWarningSummary, v))
}

// WarningSummaryLT applies the LT predicate on the "warning_summary" field.
func WarningSummaryLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldWarningSummary, v))
}

// WarningSummaryLTE applies the LTE predicate on the "warning_summary" field.
func WarningSummaryLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldWarningSummary, v))
}

// WarningSummaryContains applies the Contains predicate on the "warning_summary" field.
func WarningSummaryContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldWarningSummary, v))
}

// WarningSummaryHasPrefix applies the HasPrefix predicate on the "warning_summary" field.
func WarningSummaryHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldWarningSummary, v))
}

// WarningSummaryHasSuffix applies the HasSuffix predicate on the "warning_summary" field.
func WarningSummaryHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldWarningSummary, v))
}

// WarningSummaryIsNil applies the IsNil predicate on the "warning_summary" field.
func WarningSummaryIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldWarningSummary))
}

// WarningSummaryNotNil applies the NotNil predicate on the "warning_summary" field.
func WarningSummaryNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldWarningSummary))
}

// WarningSummaryEqualFold applies the EqualFold predicate on the "warning_summary" field.
func WarningSummaryEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldWarningSummary, v))
}

// WarningSummaryContainsFold applies the ContainsFold predicate on the "warning_summary" field.
func WarningSummaryContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldWarningSummary, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldMetrics))
}

// IsFallbackEQ applies the EQ predicate on the "is_fallback" field.
func IsFallbackEQ(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldIsFallback, v))
}

// IsFallbackNEQ applies the NEQ predicate on the "is_fallback" field.
func IsFallbackNEQ(v bool) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldIsFallback, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldContainsFold(FieldModelUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.EvaluationResult {
	return predicate.EvaluationResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.EvaluationResult {
	return predicate.EvaluationResult(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInterview applies the HasEdge predicate on the "interview" edge.
func HasInterview() predicate.EvaluationResult {
	return predicate.EvaluationResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InterviewTable, InterviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterviewWith applies the HasEdge predicate on the "interview" edge with a given conditions (other predicates).
func HasInterviewWith(preds ...predicate.Interview) predicate.EvaluationResult {
	return predicate.EvaluationResult(func(s *sql.Selector) {
		step := newInterviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationResult) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationResult) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationResult) predicate.EvaluationResult {
	return predicate.EvaluationResult(sql.NotPredicates(p))
}
