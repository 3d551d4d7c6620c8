// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hireloop/hireloop/ent/adminuser"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/company"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/schema"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/slot"
	"github.com/hireloop/hireloop/ent/testcase"
	"github.com/hireloop/hireloop/ent/warninglog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminuserFields := schema.AdminUser{}.Fields()
	_ = adminuserFields
	// adminuserDescIsSuperuser is the schema descriptor for is_superuser field.
	adminuserDescIsSuperuser := adminuserFields[4].Descriptor()
	// adminuser.DefaultIsSuperuser holds the default value on creation for the is_superuser field.
	adminuser.DefaultIsSuperuser = adminuserDescIsSuperuser.Default.(bool)
	// adminuserDescCreatedAt is the schema descriptor for created_at field.
	adminuserDescCreatedAt := adminuserFields[5].Descriptor()
	// adminuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminuser.DefaultCreatedAt = adminuserDescCreatedAt.Default.(func() time.Time)
	// adminuserDescUpdatedAt is the schema descriptor for updated_at field.
	adminuserDescUpdatedAt := adminuserFields[6].Descriptor()
	// adminuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adminuser.DefaultUpdatedAt = adminuserDescUpdatedAt.Default.(func() time.Time)
	// adminuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adminuser.UpdateDefaultUpdatedAt = adminuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[6].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[7].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	codesubmissionFields := schema.CodeSubmission{}.Fields()
	_ = codesubmissionFields
	// codesubmissionDescPassedAllTests is the schema descriptor for passed_all_tests field.
	codesubmissionDescPassedAllTests := codesubmissionFields[5].Descriptor()
	// codesubmission.DefaultPassedAllTests holds the default value on creation for the passed_all_tests field.
	codesubmission.DefaultPassedAllTests = codesubmissionDescPassedAllTests.Default.(bool)
	// codesubmissionDescCreatedAt is the schema descriptor for created_at field.
	codesubmissionDescCreatedAt := codesubmissionFields[7].Descriptor()
	// codesubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	codesubmission.DefaultCreatedAt = codesubmissionDescCreatedAt.Default.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[2].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	evaluationresultFields := schema.EvaluationResult{}.Fields()
	_ = evaluationresultFields
	// evaluationresultDescConfidenceLevel is the schema descriptor for confidence_level field.
	evaluationresultDescConfidenceLevel := evaluationresultFields[13].Descriptor()
	// evaluationresult.DefaultConfidenceLevel holds the default value on creation for the confidence_level field.
	evaluationresult.DefaultConfidenceLevel = evaluationresultDescConfidenceLevel.Default.(float64)
	// evaluationresultDescIsFallback is the schema descriptor for is_fallback field.
	evaluationresultDescIsFallback := evaluationresultFields[16].Descriptor()
	// evaluationresult.DefaultIsFallback holds the default value on creation for the is_fallback field.
	evaluationresult.DefaultIsFallback = evaluationresultDescIsFallback.Default.(bool)
	// evaluationresultDescCreatedAt is the schema descriptor for created_at field.
	evaluationresultDescCreatedAt := evaluationresultFields[18].Descriptor()
	// evaluationresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationresult.DefaultCreatedAt = evaluationresultDescCreatedAt.Default.(func() time.Time)
	interviewFields := schema.Interview{}.Fields()
	_ = interviewFields
	// interviewDescEmailSent is the schema descriptor for email_sent field.
	interviewDescEmailSent := interviewFields[8].Descriptor()
	// interview.DefaultEmailSent holds the default value on creation for the email_sent field.
	interview.DefaultEmailSent = interviewDescEmailSent.Default.(bool)
	// interviewDescCreatedAt is the schema descriptor for created_at field.
	interviewDescCreatedAt := interviewFields[9].Descriptor()
	// interview.DefaultCreatedAt holds the default value on creation for the created_at field.
	interview.DefaultCreatedAt = interviewDescCreatedAt.Default.(func() time.Time)
	// interviewDescUpdatedAt is the schema descriptor for updated_at field.
	interviewDescUpdatedAt := interviewFields[10].Descriptor()
	// interview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interview.DefaultUpdatedAt = interviewDescUpdatedAt.Default.(func() time.Time)
	// interview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interview.UpdateDefaultUpdatedAt = interviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescIsActive is the schema descriptor for is_active field.
	jobDescIsActive := jobFields[8].Descriptor()
	// job.DefaultIsActive holds the default value on creation for the is_active field.
	job.DefaultIsActive = jobDescIsActive.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[9].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[10].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescTtsDegraded is the schema descriptor for tts_degraded field.
	questionDescTtsDegraded := questionFields[9].Descriptor()
	// question.DefaultTtsDegraded holds the default value on creation for the tts_degraded field.
	question.DefaultTtsDegraded = questionDescTtsDegraded.Default.(bool)
	// questionDescGeneratedFallback is the schema descriptor for generated_fallback field.
	questionDescGeneratedFallback := questionFields[10].Descriptor()
	// question.DefaultGeneratedFallback holds the default value on creation for the generated_fallback field.
	question.DefaultGeneratedFallback = questionDescGeneratedFallback.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[11].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescDurationSeconds is the schema descriptor for duration_seconds field.
	responseDescDurationSeconds := responseFields[6].Descriptor()
	// response.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	response.DefaultDurationSeconds = responseDescDurationSeconds.Default.(float64)
	// responseDescCreatedAt is the schema descriptor for created_at field.
	responseDescCreatedAt := responseFields[10].Descriptor()
	// response.DefaultCreatedAt holds the default value on creation for the created_at field.
	response.DefaultCreatedAt = responseDescCreatedAt.Default.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescBookedAt is the schema descriptor for booked_at field.
	scheduleDescBookedAt := scheduleFields[5].Descriptor()
	// schedule.DefaultBookedAt holds the default value on creation for the booked_at field.
	schedule.DefaultBookedAt = scheduleDescBookedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescLanguage is the schema descriptor for language field.
	sessionDescLanguage := sessionFields[7].Descriptor()
	// session.DefaultLanguage holds the default value on creation for the language field.
	session.DefaultLanguage = sessionDescLanguage.Default.(string)
	// sessionDescCurrentQuestionIndex is the schema descriptor for current_question_index field.
	sessionDescCurrentQuestionIndex := sessionFields[10].Descriptor()
	// session.DefaultCurrentQuestionIndex holds the default value on creation for the current_question_index field.
	session.DefaultCurrentQuestionIndex = sessionDescCurrentQuestionIndex.Default.(int)
	// sessionDescTotalQuestions is the schema descriptor for total_questions field.
	sessionDescTotalQuestions := sessionFields[11].Descriptor()
	// session.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	session.DefaultTotalQuestions = sessionDescTotalQuestions.Default.(int)
	// sessionDescIsEvaluated is the schema descriptor for is_evaluated field.
	sessionDescIsEvaluated := sessionFields[18].Descriptor()
	// session.DefaultIsEvaluated holds the default value on creation for the is_evaluated field.
	session.DefaultIsEvaluated = sessionDescIsEvaluated.Default.(bool)
	// sessionDescEvaluationAttempts is the schema descriptor for evaluation_attempts field.
	sessionDescEvaluationAttempts := sessionFields[19].Descriptor()
	// session.DefaultEvaluationAttempts holds the default value on creation for the evaluation_attempts field.
	session.DefaultEvaluationAttempts = sessionDescEvaluationAttempts.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[23].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[24].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	slotFields := schema.Slot{}.Fields()
	_ = slotFields
	// slotDescMaxCandidates is the schema descriptor for max_candidates field.
	slotDescMaxCandidates := slotFields[6].Descriptor()
	// slot.DefaultMaxCandidates holds the default value on creation for the max_candidates field.
	slot.DefaultMaxCandidates = slotDescMaxCandidates.Default.(int)
	// slotDescCurrentBookings is the schema descriptor for current_bookings field.
	slotDescCurrentBookings := slotFields[7].Descriptor()
	// slot.DefaultCurrentBookings holds the default value on creation for the current_bookings field.
	slot.DefaultCurrentBookings = slotDescCurrentBookings.Default.(int)
	// slotDescCancelled is the schema descriptor for cancelled field.
	slotDescCancelled := slotFields[8].Descriptor()
	// slot.DefaultCancelled holds the default value on creation for the cancelled field.
	slot.DefaultCancelled = slotDescCancelled.Default.(bool)
	// slotDescCreatedAt is the schema descriptor for created_at field.
	slotDescCreatedAt := slotFields[10].Descriptor()
	// slot.DefaultCreatedAt holds the default value on creation for the created_at field.
	slot.DefaultCreatedAt = slotDescCreatedAt.Default.(func() time.Time)
	// slotDescUpdatedAt is the schema descriptor for updated_at field.
	slotDescUpdatedAt := slotFields[11].Descriptor()
	// slot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slot.DefaultUpdatedAt = slotDescUpdatedAt.Default.(func() time.Time)
	// slot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slot.UpdateDefaultUpdatedAt = slotDescUpdatedAt.UpdateDefault.(func() time.Time)
	testcaseFields := schema.TestCase{}.Fields()
	_ = testcaseFields
	// testcaseDescIsHidden is the schema descriptor for is_hidden field.
	testcaseDescIsHidden := testcaseFields[4].Descriptor()
	// testcase.DefaultIsHidden holds the default value on creation for the is_hidden field.
	testcase.DefaultIsHidden = testcaseDescIsHidden.Default.(bool)
	// testcaseDescOrdinal is the schema descriptor for ordinal field.
	testcaseDescOrdinal := testcaseFields[5].Descriptor()
	// testcase.DefaultOrdinal holds the default value on creation for the ordinal field.
	testcase.DefaultOrdinal = testcaseDescOrdinal.Default.(int)
	// testcaseDescCreatedAt is the schema descriptor for created_at field.
	testcaseDescCreatedAt := testcaseFields[6].Descriptor()
	// testcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcase.DefaultCreatedAt = testcaseDescCreatedAt.Default.(func() time.Time)
	warninglogFields := schema.WarningLog{}.Fields()
	_ = warninglogFields
	// warninglogDescCreatedAt is the schema descriptor for created_at field.
	warninglogDescCreatedAt := warninglogFields[5].Descriptor()
	// warninglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	warninglog.DefaultCreatedAt = warninglogDescCreatedAt.Default.(func() time.Time)
}
