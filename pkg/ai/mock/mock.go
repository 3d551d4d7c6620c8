// Package mock provides a scripted, deterministic ai.Service for tests and
// the end-to-end scenarios. No goroutines, no timers, no external calls.
package mock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/config"
)

// Compile-time assertion that Gateway satisfies ai.Service.
var _ ai.Service = (*Gateway)(nil)

// Gateway is a scripted AI service. Zero-value toggles give the healthy
// path; tests flip the Fail* fields or the quota flag to exercise the
// degraded paths. Safe for concurrent use.
type Gateway struct {
	mu    sync.Mutex
	bank  *config.QuestionBank
	calls map[string]int

	// Scripted outputs.
	TechnicalQuestions  []string
	BehavioralQuestions []string
	FollowUpText        string
	TranscriptText      string
	OCRName             string
	OCRIDNumber         string
	ResumeScore         float64
	AnswersScore        float64
	OverallScore        float64
	Recommendation      string
	Hire                bool

	// Failure toggles.
	FailQuestions     bool
	FailTranscription bool
	FailSynthesis     bool
	FailFollowUp      bool
	FailOCR           bool

	quotaExhausted bool
}

// New builds a mock gateway drawing deterministic content from the bank,
// with healthy defaults.
func New(bank *config.QuestionBank) *Gateway {
	return &Gateway{
		bank:  bank,
		calls: make(map[string]int),
		TechnicalQuestions: []string{
			"How does a hash map handle collisions?",
			"What is the difference between optimistic and pessimistic locking?",
		},
		BehavioralQuestions: []string{
			"Tell me about a time you had to ship under a hard deadline.",
		},
		FollowUpText:   "No problem. Could you explain the general idea in your own words?",
		TranscriptText: "This is a transcribed answer.",
		OCRName:        "Priya Sharma",
		OCRIDNumber:    "1234 5678 9012",
		ResumeScore:    8.0,
		AnswersScore:   7.5,
		OverallScore:   7.8,
		Recommendation: "Solid performance across the board. Recommend advancing.",
		Hire:           true,
	}
}

func (m *Gateway) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

// CallCount returns how many times an operation ran.
func (m *Gateway) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// SetQuotaExhausted scripts the process-wide quota flag.
func (m *Gateway) SetQuotaExhausted(exhausted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotaExhausted = exhausted
}

// GenerateQuestions implements ai.Service with the same composition shape as
// the live gateway: deterministic ice-breaker and coding question, scripted
// technical and behavioral content.
func (m *Gateway) GenerateQuestions(ctx context.Context, in ai.QuestionInput) (*ai.QuestionPlan, error) {
	m.record("generate_questions")

	lang := strings.ToLower(in.CodingLanguage)
	codingQ, ok := m.bank.CodingFor(lang)
	if !ok {
		return nil, fmt.Errorf("question bank has no coding question for language %q", lang)
	}

	degraded := m.FailQuestions || m.QuotaExhausted()
	technical := m.TechnicalQuestions
	behavioral := m.BehavioralQuestions
	if degraded {
		technical = m.bank.Technical
		behavioral = m.bank.Behavioral
	}

	plan := &ai.QuestionPlan{Fallback: degraded, ModelUsed: "mock"}
	plan.Questions = append(plan.Questions, ai.QuestionDraft{
		Order: 0,
		Type:  "ice_breaker",
		Text:  m.bank.IceBreakers[0],
	})
	order := 1
	for i := 0; i < 2 && i < len(technical); i++ {
		plan.Questions = append(plan.Questions, ai.QuestionDraft{
			Order:    order,
			Type:     "technical",
			Text:     technical[i],
			Fallback: degraded,
		})
		order++
	}
	plan.Questions = append(plan.Questions, ai.QuestionDraft{
		Order:    order,
		Type:     "behavioral",
		Text:     behavioral[0],
		Fallback: degraded,
	})
	order++

	coding := ai.QuestionDraft{
		Order:          order,
		Type:           "coding",
		Text:           codingQ.Text,
		CodingLanguage: lang,
	}
	for _, tc := range codingQ.TestCases {
		coding.TestCases = append(coding.TestCases, ai.TestCaseDraft{
			Input:    tc.Input,
			Expected: tc.Expected,
			Hidden:   tc.Hidden,
		})
	}
	plan.Questions = append(plan.Questions, coding)

	return plan, nil
}

// GenerateFollowUp implements ai.Service with the live gating rules.
func (m *Gateway) GenerateFollowUp(ctx context.Context, parentText, transcript string) (string, error) {
	m.record("generate_follow_up")

	if !ai.NeedsFollowUp(transcript) {
		return "", nil
	}
	if m.QuotaExhausted() {
		return "", nil
	}
	if m.FailFollowUp {
		return "", fmt.Errorf("mock follow-up failure")
	}
	return m.FollowUpText, nil
}

// Transcribe implements ai.Service.
func (m *Gateway) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	m.record("transcribe")

	if m.FailTranscription {
		return "", fmt.Errorf("mock transcription failure")
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}
	return m.TranscriptText, nil
}

// Synthesize implements ai.Service; the output is a deterministic function
// of the text.
func (m *Gateway) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.record("synthesize")

	if m.FailSynthesis {
		return nil, fmt.Errorf("mock synthesis failure")
	}
	sum := sha256.Sum256([]byte(text))
	return []byte("mock-audio-" + hex.EncodeToString(sum[:8])), nil
}

// EvaluateResume implements ai.Service.
func (m *Gateway) EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*ai.ScoreResult, error) {
	m.record("evaluate_resume")

	if m.QuotaExhausted() {
		return &ai.ScoreResult{Score: 7.0, Feedback: ai.FallbackFeedback, Fallback: true}, nil
	}
	return &ai.ScoreResult{Score: m.ResumeScore, Feedback: "Mock resume feedback."}, nil
}

// EvaluateAnswers implements ai.Service.
func (m *Gateway) EvaluateAnswers(ctx context.Context, spokenBlock, codingBlock string) (*ai.ScoreResult, error) {
	m.record("evaluate_answers")

	if m.QuotaExhausted() {
		return &ai.ScoreResult{Score: 7.0, Feedback: ai.FallbackFeedback, Fallback: true}, nil
	}
	return &ai.ScoreResult{Score: m.AnswersScore, Feedback: "Mock answers feedback."}, nil
}

// EvaluateOverall implements ai.Service.
func (m *Gateway) EvaluateOverall(ctx context.Context, resumeScore, answersScore float64, warningSummary string) (*ai.OverallResult, error) {
	m.record("evaluate_overall")

	if m.QuotaExhausted() {
		return &ai.OverallResult{
			Score:          (resumeScore + answersScore) / 2,
			Recommendation: ai.FallbackFeedback,
			Fallback:       true,
		}, nil
	}
	return &ai.OverallResult{
		Score:          m.OverallScore,
		Recommendation: m.Recommendation,
		Hire:           m.Hire,
	}, nil
}

// OCRIDCard implements ai.Service.
func (m *Gateway) OCRIDCard(ctx context.Context, imageJPEG []byte) (*ai.IDCardData, error) {
	m.record("ocr_id_card")

	if m.FailOCR {
		return nil, fmt.Errorf("mock OCR failure")
	}
	return &ai.IDCardData{Name: m.OCRName, IDNumber: m.OCRIDNumber}, nil
}

// Health implements ai.Service.
func (m *Gateway) Health() ai.Health {
	return ai.Health{
		Configured:     true,
		QuotaExhausted: m.QuotaExhausted(),
		ASRBreaker:     "closed",
		TTSBreaker:     "closed",
	}
}

// QuotaExhausted implements ai.Service.
func (m *Gateway) QuotaExhausted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quotaExhausted
}

// ResetQuota implements ai.Service.
func (m *Gateway) ResetQuota() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.quotaExhausted
	m.quotaExhausted = false
	return was
}
