package models

import "time"

// Response payload kinds accepted by submit-response.
const (
	PayloadText  = "TEXT"
	PayloadAudio = "AUDIO"
	PayloadCode  = "CODE"
)

// StartInterviewRequest opens (or re-enters) the candidate session
type StartInterviewRequest struct {
	InterviewID string `json:"interview_id"`
	LinkToken   string `json:"link_token"`
}

// ResponsePayload is the tagged union carried by submit-response
type ResponsePayload struct {
	Kind string `json:"kind"` // TEXT | AUDIO | CODE

	// TEXT
	Text string `json:"text,omitempty"`

	// AUDIO
	AudioB64 string `json:"audio_b64,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	// DurationSeconds is client-reported recording length, used for the
	// words-per-minute metric.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`

	// CODE
	SourceCode string `json:"source_code,omitempty"`
	Language   string `json:"language,omitempty"`
}

// SubmitResponseRequest answers one question
type SubmitResponseRequest struct {
	SessionID  string          `json:"session_id"`
	LinkToken  string          `json:"link_token"`
	QuestionID string          `json:"question_id"`
	Payload    ResponsePayload `json:"payload"`
}

// CompleteInterviewRequest finishes the session
type CompleteInterviewRequest struct {
	SessionID string `json:"session_id"`
	LinkToken string `json:"link_token"`
}

// VerifyIDRequest submits the ID-verification frame (candidate holding
// their ID card)
type VerifyIDRequest struct {
	SessionID string `json:"session_id"`
	LinkToken string `json:"link_token"`
	ImageB64  string `json:"image_b64"`
}

// HeartbeatRequest refreshes the session's idle timer
type HeartbeatRequest struct {
	SessionID string `json:"session_id"`
	LinkToken string `json:"link_token"`
}

// HeartbeatResponse reports the session status so a client polling against
// a finished session can stop.
type HeartbeatResponse struct {
	Status string `json:"status"`
}

// QuestionView is a question in wire form. AudioB64 carries synthesized
// speech when TTS succeeded.
type QuestionView struct {
	ID             string `json:"question_id"`
	Order          int    `json:"order"`
	Type           string `json:"type"`
	Level          string `json:"level"`
	Text           string `json:"text"`
	CodingLanguage string `json:"coding_language,omitempty"`
	AudioB64       string `json:"audio_b64,omitempty"`
	TTSDegraded    bool   `json:"tts_degraded,omitempty"`
	Fallback       bool   `json:"fallback,omitempty"`
}

// StartInterviewResponse is the session snapshot returned by start.
// Repeated starts return the same snapshot.
type StartInterviewResponse struct {
	SessionID         string         `json:"session_id"`
	Status            string         `json:"status"`
	Questions         []QuestionView `json:"questions"`
	Current           int            `json:"current"`
	Total             int            `json:"total"`
	IDVerified        bool           `json:"id_verified"`
	QuestionsDegraded bool           `json:"questions_degraded,omitempty"`
}

// SubmitResponseResult points the client at what comes next
type SubmitResponseResult struct {
	NextQuestionID string        `json:"next_question_id,omitempty"`
	FollowUp       *QuestionView `json:"follow_up,omitempty"`
	Current        int           `json:"current"`
	Total          int           `json:"total"`
	// CodeResult is present for CODE payloads
	CodeResult *CodeRunView `json:"code_result,omitempty"`
	// Degraded lists capabilities that fell back during this call
	// (e.g. "transcription", "follow_up")
	Degraded []string `json:"degraded,omitempty"`
	// Completed is set when this answer exhausted the question plan and the
	// interview closed itself; Summary then carries the completion line.
	Completed bool   `json:"completed,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// CodeRunView summarizes a code submission run
type CodeRunView struct {
	SubmissionID   string `json:"submission_id"`
	PassedAllTests bool   `json:"passed_all_tests"`
	OutputLog      string `json:"output_log"`
}

// CompleteInterviewResponse closes the loop with the candidate
type CompleteInterviewResponse struct {
	Status  string `json:"status"` // COMPLETED
	Summary string `json:"summary"`
}

// VerifyIDResponse reports the one-shot verification outcome
type VerifyIDResponse struct {
	Status string `json:"status"` // success | failed
	Reason string `json:"reason,omitempty"`
}

// PortalBootstrap is returned by GET /public/interview/?session_key=…; it
// exchanges the session key for what the client shell needs to call start.
type PortalBootstrap struct {
	InterviewID   string `json:"interview_id"`
	LinkToken     string `json:"link_token"`
	CandidateName string `json:"candidate_name"`
	Status        string `json:"status"`
}

// SessionSummary is the recruiter-facing session digest
type SessionSummary struct {
	SessionID            string         `json:"session_id"`
	Status               string         `json:"status"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	TotalQuestions       int            `json:"total_questions"`
	IDVerification       string         `json:"id_verification_status"`
	StartedAt            *time.Time     `json:"session_started_at,omitempty"`
	EndedAt              *time.Time     `json:"session_ended_at,omitempty"`
	IsEvaluated          bool           `json:"is_evaluated"`
	WarningCounts        map[string]int `json:"warning_counts,omitempty"`
}

// Proctor ingest payloads.

// FrameIngest carries one webcam frame
type FrameIngest struct {
	SessionID string `json:"session_id"`
	LinkToken string `json:"link_token"`
	FrameB64  string `json:"frame_b64"` // JPEG
}

// AudioIngest carries one 1-second PCM chunk
type AudioIngest struct {
	SessionID  string `json:"session_id"`
	LinkToken  string `json:"link_token"`
	PCMB64     string `json:"pcm_b64"` // 16-bit little-endian mono
	SampleRate int    `json:"sample_rate"`
}

// ClientEvent carries page-visibility changes from the candidate client
type ClientEvent struct {
	SessionID string `json:"session_id"`
	LinkToken string `json:"link_token"`
	Event     string `json:"event"` // TAB_SWITCHED | TAB_FOCUSED
}
