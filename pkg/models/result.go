package models

import "time"

// ScoreBreakdown is the derived 0-100 view of the stored 0-10 sub-scores.
// Present only when the underlying score exists.
type ScoreBreakdown struct {
	Technical  *int `json:"technical,omitempty"`
	Behavioral *int `json:"behavioral,omitempty"`
	Coding     *int `json:"coding,omitempty"`
}

// ResultView is the recruiter-facing evaluation result
type ResultView struct {
	ResultID           string          `json:"result_id"`
	SessionID          string          `json:"session_id"`
	InterviewID        string          `json:"interview_id"`
	ResumeScore        float64         `json:"resume_score"`
	AnswersScore       float64         `json:"answers_score"`
	OverallScore       float64         `json:"overall_score"`
	Breakdown          *ScoreBreakdown `json:"breakdown,omitempty"`
	ResumeFeedback     string          `json:"resume_feedback,omitempty"`
	AnswersFeedback    string          `json:"answers_feedback,omitempty"`
	Recommendation     string          `json:"recommendation,omitempty"`
	HireRecommendation *bool           `json:"hire_recommendation,omitempty"`
	ConfidenceLevel    float64         `json:"confidence_level"`
	WarningSummary     string          `json:"warning_summary,omitempty"`
	Metrics            map[string]any  `json:"metrics,omitempty"`
	IsFallback         bool            `json:"is_fallback"`
	ModelUsed          string          `json:"model_used,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
