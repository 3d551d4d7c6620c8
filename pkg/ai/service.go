// Package ai is the gateway to the external AI capabilities: LLM chat for
// question generation, follow-ups, evaluation, and ID-card OCR; ASR for
// transcription; TTS for question audio. All policy lives here — rate
// limiting, quota short-circuiting, retries, per-capability breakers, and
// deterministic fallbacks — so callers never talk to a provider directly.
package ai

import (
	"context"
	"errors"
	"time"
)

// Capability labels used in degradation flags and health reporting.
const (
	CapabilityLLM           = "llm"
	CapabilityTranscription = "transcription"
	CapabilitySynthesis     = "synthesis"
	CapabilityFollowUp      = "follow_up"
)

// FallbackFeedback marks evaluation text produced without AI analysis.
const FallbackFeedback = "Assessment provided without AI analysis."

var (
	// ErrQuotaExhausted short-circuits LLM operations once the provider has
	// signalled quota exhaustion, until an operator reset or restart.
	ErrQuotaExhausted = errors.New("ai quota exhausted")

	// ErrRateLimited is returned when a caller waited the maximum allowed
	// time on the process-wide limiter without acquiring a slot.
	ErrRateLimited = errors.New("ai rate limit wait exceeded")

	// ErrNotConfigured is returned when no provider credentials are present.
	ErrNotConfigured = errors.New("ai provider not configured")
)

// QuestionInput carries the snapshot state question generation works from.
// Strings use storage form (lowercase enums).
type QuestionInput struct {
	CandidateName  string
	JobTitle       string
	JobDescription string
	ResumeText     string
	CodingLanguage string
}

// TestCaseDraft is one authored test case attached to a coding draft.
type TestCaseDraft struct {
	Input    string
	Expected string
	Hidden   bool
}

// QuestionDraft is one planned question before persistence. Type and
// CodingLanguage use the storage enum form.
type QuestionDraft struct {
	Order          int
	Type           string
	Text           string
	CodingLanguage string
	TestCases      []TestCaseDraft

	// Fallback marks a question that should have come from the LLM but was
	// drawn from the bank instead. Ice-breaker and coding questions are
	// deterministic by design and never carry it.
	Fallback bool
}

// QuestionPlan is the composed question set for one session.
type QuestionPlan struct {
	Questions []QuestionDraft

	// Fallback is true when the LLM contributed nothing to the set.
	Fallback  bool
	ModelUsed string
}

// ScoreResult is a single-axis evaluation outcome on the canonical 0-10
// scale.
type ScoreResult struct {
	Score    float64
	Feedback string
	Fallback bool
}

// OverallResult is the blended final evaluation.
type OverallResult struct {
	Score          float64
	Recommendation string
	Hire           bool
	Fallback       bool
}

// IDCardData is the OCR extraction from an ID-card frame.
type IDCardData struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
}

// Health is the gateway state exposed on the system health endpoint.
type Health struct {
	Configured     bool       `json:"configured"`
	QuotaExhausted bool       `json:"quota_exhausted"`
	QuotaSince     *time.Time `json:"quota_since,omitempty"`
	ASRBreaker     string     `json:"asr_breaker"`
	TTSBreaker     string     `json:"tts_breaker"`
}

// Service is the gateway surface consumed by the orchestrator, the proctor
// pipeline, and the evaluation engine. The live implementation is *Gateway;
// tests use the scripted gateway in ai/mock.
type Service interface {
	// GenerateQuestions composes the session's question set. It degrades to
	// the deterministic bank rather than failing; the returned plan is only
	// nil on hard errors (quota hard-fail mode, missing bank entry).
	GenerateQuestions(ctx context.Context, in QuestionInput) (*QuestionPlan, error)

	// GenerateFollowUp returns one conversational probe for an uncertain
	// answer, or "" when no follow-up is warranted. A non-nil error means
	// the capability degraded, not that the answer was fine.
	GenerateFollowUp(ctx context.Context, parentText, transcript string) (string, error)

	// Transcribe converts candidate audio to text.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)

	// Synthesize renders question text to speech audio.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// EvaluateResume scores resume fit against the job description.
	EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*ScoreResult, error)

	// EvaluateAnswers scores the assembled spoken and coding blocks.
	EvaluateAnswers(ctx context.Context, spokenBlock, codingBlock string) (*ScoreResult, error)

	// EvaluateOverall blends the axis scores and proctoring summary into the
	// final recommendation.
	EvaluateOverall(ctx context.Context, resumeScore, answersScore float64, warningSummary string) (*OverallResult, error)

	// OCRIDCard extracts name and ID number from an ID-card frame. No
	// fallback: a failure here fails identity verification.
	OCRIDCard(ctx context.Context, imageJPEG []byte) (*IDCardData, error)

	// Health reports gateway state for the system health endpoint.
	Health() Health

	// QuotaExhausted reports the process-wide quota flag.
	QuotaExhausted() bool

	// ResetQuota clears the quota flag. Returns true when it was set.
	ResetQuota() bool
}
