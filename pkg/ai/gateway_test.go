package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/config"
)

// fakeProvider scripts the raw provider beneath the gateway.
type fakeProvider struct {
	mu              sync.Mutex
	chatCalls       int
	transcribeCalls int

	chatFn       func(system, user string) (string, error)
	visionFn     func(prompt string) (string, error)
	transcribeFn func() (string, error)
	synthesizeFn func(text string) ([]byte, error)
}

func (f *fakeProvider) Chat(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.chatCalls++
	f.mu.Unlock()
	return f.chatFn(system, user)
}

func (f *fakeProvider) ChatVision(ctx context.Context, prompt string, image []byte) (string, error) {
	return f.visionFn(prompt)
}

func (f *fakeProvider) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	f.mu.Lock()
	f.transcribeCalls++
	f.mu.Unlock()
	return f.transcribeFn()
}

func (f *fakeProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f.synthesizeFn(text)
}

func (f *fakeProvider) calls() (chat, transcribe int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chatCalls, f.transcribeCalls
}

func testGateway(t *testing.T, p Provider) *Gateway {
	t.Helper()
	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)
	cfg := config.DefaultAIConfig()
	return NewGateway(p, cfg, bank)
}

const wellFormedQuestions = `## Technical Questions
- Explain database indexing.
- What is a race condition?

## Behavioral Questions
- Describe a conflict you resolved.
`

func TestGenerateQuestionsComposesPlan(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return wellFormedQuestions, nil
	}}
	g := testGateway(t, p)

	plan, err := g.GenerateQuestions(context.Background(), QuestionInput{
		CandidateName:  "Priya Sharma",
		JobTitle:       "Backend Engineer",
		JobDescription: "Build services.",
		CodingLanguage: "python",
	})
	require.NoError(t, err)
	require.Len(t, plan.Questions, 5)
	assert.False(t, plan.Fallback)

	types := make([]string, 0, 5)
	for i, q := range plan.Questions {
		assert.Equal(t, i, q.Order)
		types = append(types, q.Type)
	}
	assert.Equal(t, []string{"ice_breaker", "technical", "technical", "behavioral", "coding"}, types)

	assert.Equal(t, "Explain database indexing.", plan.Questions[1].Text)
	assert.False(t, plan.Questions[1].Fallback)

	coding := plan.Questions[4]
	assert.Equal(t, "python", coding.CodingLanguage)
	require.NotEmpty(t, coding.TestCases, "coding question must carry bank test cases")
	assert.False(t, coding.Fallback)
}

func TestGenerateQuestionsFallsBackOnParseFailure(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "I cannot format markdown today.", nil
	}}
	g := testGateway(t, p)

	plan, err := g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "python"})
	require.NoError(t, err)
	require.Len(t, plan.Questions, 5)
	assert.True(t, plan.Fallback)
	assert.True(t, plan.Questions[1].Fallback, "technical questions come from the bank")
	assert.True(t, plan.Questions[3].Fallback, "behavioral question comes from the bank")
	// Deterministic-by-design questions never carry the flag.
	assert.False(t, plan.Questions[0].Fallback)
	assert.False(t, plan.Questions[4].Fallback)
}

func TestGenerateQuestionsUnknownLanguage(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return wellFormedQuestions, nil
	}}
	g := testGateway(t, p)

	_, err := g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "cobol"})
	assert.Error(t, err)
}

func TestQuotaLatchesAndShortCircuits(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "", errors.New("You exceeded your current quota: insufficient_quota")
	}}
	g := testGateway(t, p)

	plan, err := g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "python"})
	require.NoError(t, err)
	assert.True(t, plan.Fallback)
	assert.True(t, g.QuotaExhausted())

	// Short-circuit: no further provider calls while the flag is set.
	_, err = g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "python"})
	require.NoError(t, err)
	chat, _ := p.calls()
	assert.Equal(t, 1, chat)

	assert.True(t, g.ResetQuota())
	assert.False(t, g.QuotaExhausted())
	_, err = g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "python"})
	require.NoError(t, err)
	chat, _ = p.calls()
	assert.Equal(t, 2, chat)
}

func TestQuotaHardFailTurnsFallbackIntoError(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "", errors.New("insufficient_quota")
	}}
	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)
	cfg := config.DefaultAIConfig()
	cfg.QuotaHardFail = true
	g := NewGateway(p, cfg, bank)

	_, err = g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "python"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestNilProviderDegradesEverything(t *testing.T) {
	g := testGateway(t, nil)

	plan, err := g.GenerateQuestions(context.Background(), QuestionInput{CodingLanguage: "javascript"})
	require.NoError(t, err)
	assert.True(t, plan.Fallback)

	_, err = g.Transcribe(context.Background(), []byte("x"), "audio/webm")
	assert.ErrorIs(t, err, ErrNotConfigured)

	res, err := g.EvaluateResume(context.Background(), "resume", "jd")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 7.0, res.Score)

	health := g.Health()
	assert.False(t, health.Configured)
}

func TestGenerateFollowUpGating(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "Could you explain what a goroutine is at a high level?", nil
	}}
	g := testGateway(t, p)

	// Confident answer: no provider call at all.
	text, err := g.GenerateFollowUp(context.Background(), "Q", "A goroutine is a lightweight thread managed by the runtime.")
	require.NoError(t, err)
	assert.Empty(t, text)
	chat, _ := p.calls()
	assert.Equal(t, 0, chat)

	// Uncertain answer: probe generated.
	text, err = g.GenerateFollowUp(context.Background(), "Q", "I'm not sure about goroutines")
	require.NoError(t, err)
	assert.Equal(t, "Could you explain what a goroutine is at a high level?", text)
}

func TestGenerateFollowUpSentinel(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "NO_FOLLOW_UP", nil
	}}
	g := testGateway(t, p)

	text, err := g.GenerateFollowUp(context.Background(), "Q", "not sure")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateFollowUpQuotaYieldsNone(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "", errors.New("insufficient_quota")
	}}
	g := testGateway(t, p)

	text, err := g.GenerateFollowUp(context.Background(), "Q", "not sure")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestTranscribeBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	p := &fakeProvider{transcribeFn: func() (string, error) {
		// Quota-class failure: aborts without the transient retry ladder.
		return "", errors.New("insufficient_quota")
	}}
	g := testGateway(t, p)

	for i := 0; i < 3; i++ {
		_, err := g.Transcribe(context.Background(), []byte("x"), "audio/webm")
		require.Error(t, err)
	}
	_, beforeOpen := p.calls()
	assert.Equal(t, 3, beforeOpen)

	// Breaker now open: the provider is not called again.
	_, err := g.Transcribe(context.Background(), []byte("x"), "audio/webm")
	require.Error(t, err)
	_, afterOpen := p.calls()
	assert.Equal(t, 3, afterOpen)

	// ASR failures never latch the LLM quota flag.
	assert.False(t, g.QuotaExhausted())
	assert.Equal(t, "open", g.Health().ASRBreaker)
}

func TestSynthesizeUsesCache(t *testing.T) {
	calls := 0
	p := &fakeProvider{synthesizeFn: func(text string) ([]byte, error) {
		calls++
		return []byte("audio-" + text), nil
	}}
	g := testGateway(t, p)

	first, err := g.Synthesize(context.Background(), "Tell me about yourself.")
	require.NoError(t, err)
	second, err := g.Synthesize(context.Background(), "Tell me about yourself.")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "identical text must synthesize once")

	_, err = g.Synthesize(context.Background(), "A different question.")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestEvaluateAxisParsesAndFallsBack(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return `{"score": 8.5, "feedback": "strong"}`, nil
	}}
	g := testGateway(t, p)

	res, err := g.EvaluateResume(context.Background(), "resume", "jd")
	require.NoError(t, err)
	assert.Equal(t, 8.5, res.Score)
	assert.Equal(t, "strong", res.Feedback)
	assert.False(t, res.Fallback)

	p.chatFn = func(system, user string) (string, error) {
		return "no json here", nil
	}
	res, err = g.EvaluateAnswers(context.Background(), "spoken", "code")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 7.0, res.Score)
	assert.Equal(t, FallbackFeedback, res.Feedback)
}

func TestEvaluateOverallFallbackBlendsScores(t *testing.T) {
	p := &fakeProvider{chatFn: func(system, user string) (string, error) {
		return "", errors.New("insufficient_quota")
	}}
	g := testGateway(t, p)

	res, err := g.EvaluateOverall(context.Background(), 8.0, 6.0, "2× tab_switched")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 7.0, res.Score)
	assert.False(t, res.Hire)
}

func TestOCRIDCardHasNoFallback(t *testing.T) {
	p := &fakeProvider{visionFn: func(prompt string) (string, error) {
		return "", errors.New("insufficient_quota")
	}}
	g := testGateway(t, p)

	_, err := g.OCRIDCard(context.Background(), []byte("jpeg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestOCRIDCardParses(t *testing.T) {
	p := &fakeProvider{visionFn: func(prompt string) (string, error) {
		return `{"name": "Priya Sharma", "id_number": "1234 5678 9012"}`, nil
	}}
	g := testGateway(t, p)

	data, err := g.OCRIDCard(context.Background(), []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", data.Name)
	assert.Equal(t, "1234 5678 9012", data.IDNumber)
}

func TestRetryTransientRecovers(t *testing.T) {
	attempts := 0
	out, err := retryTransient(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts == 1 {
			return "", fmt.Errorf("connection reset by peer")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 2, attempts)
}

func TestLimiterBoundedWait(t *testing.T) {
	l := NewLimiter(2, 50*time.Millisecond)

	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))

	start := time.Now()
	err := l.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(0, time.Second)
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire(context.Background()))
	}
}

func TestTTSCacheExpiry(t *testing.T) {
	c := newTTSCache(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	key := ttsCacheKey("tts-1", "alloy", "hello")
	c.Put(key, []byte("audio"))

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte("audio"), got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(key)
	assert.False(t, ok, "entry must expire after the TTL")
}
