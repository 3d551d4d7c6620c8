package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/hireloop/hireloop/pkg/config"
)

// Compile-time assertion that Gateway satisfies Service.
var _ Service = (*Gateway)(nil)

// retryDelays is the transient-error backoff ladder. Auth and quota errors
// are never retried.
var retryDelays = []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond}

// Gateway is the live AI service. One instance per process: the limiter
// window, the quota flag, and the breakers are deliberately process-wide.
type Gateway struct {
	provider Provider
	cfg      *config.AIConfig
	bank     *config.QuestionBank

	limiter *Limiter
	quota   *quotaState
	cache   *ttsCache

	asrBreaker *gobreaker.CircuitBreaker
	ttsBreaker *gobreaker.CircuitBreaker
}

// NewGateway assembles the gateway. provider may be nil (no credentials):
// every operation then degrades as if the provider were unreachable, which
// keeps development setups working without a key.
func NewGateway(provider Provider, cfg *config.AIConfig, bank *config.QuestionBank) *Gateway {
	return &Gateway{
		provider:   provider,
		cfg:        cfg,
		bank:       bank,
		limiter:    NewLimiter(cfg.RateLimitPerMinute, cfg.RateLimitMaxWait),
		quota:      &quotaState{},
		cache:      newTTSCache(cfg.TTSCacheTTL),
		asrBreaker: newBreaker("asr"),
		ttsBreaker: newBreaker("tts"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("AI capability breaker state change",
				"capability", name, "from", from.String(), "to", to.String())
		},
	})
}

// retryTransient runs fn, retrying transient failures per the backoff
// ladder. The first non-transient error aborts immediately.
func retryTransient[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		if classifyError(err) != classTransient || attempt >= len(retryDelays) {
			return zero, err
		}
		slog.Warn("Transient AI provider error, retrying",
			"attempt", attempt+1, "error", err)
		select {
		case <-time.After(retryDelays[attempt]):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// callChat is the choke point for every LLM-class operation: quota
// short-circuit, call ceiling, limiter acquisition, retries, and quota
// latching on the way out.
func (g *Gateway) callChat(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	if g.provider == nil {
		return "", ErrNotConfigured
	}
	if g.quota.Exhausted() {
		return "", ErrQuotaExhausted
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	if err := g.limiter.Acquire(ctx); err != nil {
		return "", err
	}

	out, err := retryTransient(ctx, fn)
	if err != nil {
		if classifyError(err) == classQuota {
			g.quota.noteQuota(err)
			return "", fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
		return "", err
	}
	return out, nil
}

// hardFail reports whether a quota-triggered fallback must become a hard
// error under AI_QUOTA_HARD_FAIL.
func (g *Gateway) hardFail(err error) bool {
	return g.cfg.QuotaHardFail && errors.Is(err, ErrQuotaExhausted)
}

// GenerateQuestions implements Service. The ice-breaker and the coding
// question are deterministic (bank); the LLM contributes the technical and
// behavioral questions, topped up from the bank when it falls short.
func (g *Gateway) GenerateQuestions(ctx context.Context, in QuestionInput) (*QuestionPlan, error) {
	lang := strings.ToLower(in.CodingLanguage)
	codingQ, ok := g.bank.CodingFor(lang)
	if !ok {
		return nil, fmt.Errorf("question bank has no coding question for language %q", lang)
	}

	var technical, behavioral []string
	usedLLM := false

	raw, err := g.callChat(ctx, func(ctx context.Context) (string, error) {
		return g.provider.Chat(ctx, questionSystemPrompt, questionUserPrompt(in))
	})
	switch {
	case err != nil:
		if g.hardFail(err) {
			return nil, err
		}
		slog.Warn("Question generation degraded to fallback bank", "error", err)
	default:
		t, b, perr := ParseQuestionSections(raw)
		if perr != nil {
			slog.Warn("Failed to parse generated questions, using fallback bank", "error", perr)
		} else {
			technical, behavioral = t, b
			usedLLM = true
		}
	}

	plan := &QuestionPlan{Fallback: !usedLLM, ModelUsed: g.cfg.ChatModel}

	plan.Questions = append(plan.Questions, QuestionDraft{
		Order: 0,
		Type:  "ice_breaker",
		Text:  g.bank.IceBreakers[0],
	})
	order := 1
	for _, p := range pickQuestions(technical, g.bank.Technical, 2) {
		plan.Questions = append(plan.Questions, QuestionDraft{
			Order:    order,
			Type:     "technical",
			Text:     p.text,
			Fallback: p.fallback,
		})
		order++
	}
	for _, p := range pickQuestions(behavioral, g.bank.Behavioral, 1) {
		plan.Questions = append(plan.Questions, QuestionDraft{
			Order:    order,
			Type:     "behavioral",
			Text:     p.text,
			Fallback: p.fallback,
		})
		order++
	}

	coding := QuestionDraft{
		Order:          order,
		Type:           "coding",
		Text:           codingQ.Text,
		CodingLanguage: lang,
	}
	for _, tc := range codingQ.TestCases {
		coding.TestCases = append(coding.TestCases, TestCaseDraft{
			Input:    tc.Input,
			Expected: tc.Expected,
			Hidden:   tc.Hidden,
		})
	}
	plan.Questions = append(plan.Questions, coding)

	return plan, nil
}

type pick struct {
	text     string
	fallback bool
}

// pickQuestions takes up to n parsed questions and tops up from the bank.
func pickQuestions(parsed, bank []string, n int) []pick {
	picks := make([]pick, 0, n)
	for _, text := range parsed {
		if len(picks) == n {
			break
		}
		picks = append(picks, pick{text: text})
	}
	for i := 0; len(picks) < n && len(bank) > 0; i++ {
		picks = append(picks, pick{text: bank[i%len(bank)], fallback: true})
	}
	return picks
}

// GenerateFollowUp implements Service. Quota exhaustion silently yields no
// follow-up; other failures surface so the caller can flag the degradation.
func (g *Gateway) GenerateFollowUp(ctx context.Context, parentText, transcript string) (string, error) {
	if !NeedsFollowUp(transcript) {
		return "", nil
	}

	raw, err := g.callChat(ctx, func(ctx context.Context) (string, error) {
		return g.provider.Chat(ctx, followUpSystemPrompt, followUpUserPrompt(parentText, transcript))
	})
	if err != nil {
		if g.hardFail(err) {
			return "", err
		}
		if errors.Is(err, ErrQuotaExhausted) {
			return "", nil
		}
		return "", err
	}
	return parseFollowUp(raw), nil
}

// Transcribe implements Service. ASR health is independent of the LLM quota
// flag; the breaker sheds load after consecutive failures.
func (g *Gateway) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if g.provider == nil {
		return "", ErrNotConfigured
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	out, err := g.asrBreaker.Execute(func() (interface{}, error) {
		return retryTransient(ctx, func(ctx context.Context) (string, error) {
			return g.provider.Transcribe(ctx, audio, mimeType)
		})
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return out.(string), nil
}

// Synthesize implements Service. Identical text synthesizes once per cache
// TTL; the breaker sheds load after consecutive failures.
func (g *Gateway) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if g.provider == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty synthesis text")
	}

	key := ttsCacheKey(g.cfg.SpeechModel, g.cfg.SpeechVoice, text)
	if audio, ok := g.cache.Get(key); ok {
		return audio, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	out, err := g.ttsBreaker.Execute(func() (interface{}, error) {
		return retryTransient(ctx, func(ctx context.Context) ([]byte, error) {
			return g.provider.Synthesize(ctx, text)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	audio := out.([]byte)
	g.cache.Put(key, audio)
	return audio, nil
}

// EvaluateResume implements Service.
func (g *Gateway) EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*ScoreResult, error) {
	return g.evaluateAxis(ctx, "resume", func(ctx context.Context) (string, error) {
		return g.provider.Chat(ctx, resumeSystemPrompt, resumeUserPrompt(resumeText, jobDescription))
	})
}

// EvaluateAnswers implements Service.
func (g *Gateway) EvaluateAnswers(ctx context.Context, spokenBlock, codingBlock string) (*ScoreResult, error) {
	return g.evaluateAxis(ctx, "answers", func(ctx context.Context) (string, error) {
		return g.provider.Chat(ctx, answersSystemPrompt, answersUserPrompt(spokenBlock, codingBlock))
	})
}

// evaluateAxis runs one scoring call with the shared fallback policy:
// anything that blocks a real score yields the neutral 7.0 fallback.
func (g *Gateway) evaluateAxis(ctx context.Context, axis string, fn func(context.Context) (string, error)) (*ScoreResult, error) {
	raw, err := g.callChat(ctx, fn)
	if err != nil {
		if g.hardFail(err) {
			return nil, err
		}
		slog.Warn("Evaluation degraded to fallback score", "axis", axis, "error", err)
		return &ScoreResult{Score: 7.0, Feedback: FallbackFeedback, Fallback: true}, nil
	}

	score, feedback, perr := ParseScore(raw)
	if perr != nil {
		slog.Warn("Failed to parse evaluation response, using fallback score",
			"axis", axis, "error", perr)
		return &ScoreResult{Score: 7.0, Feedback: FallbackFeedback, Fallback: true}, nil
	}
	return &ScoreResult{Score: score, Feedback: feedback}, nil
}

// EvaluateOverall implements Service. The fallback blends the component
// scores arithmetically and never recommends hiring on its own.
func (g *Gateway) EvaluateOverall(ctx context.Context, resumeScore, answersScore float64, warningSummary string) (*OverallResult, error) {
	fallback := &OverallResult{
		Score:          clampScore((resumeScore + answersScore) / 2),
		Recommendation: FallbackFeedback,
		Fallback:       true,
	}

	raw, err := g.callChat(ctx, func(ctx context.Context) (string, error) {
		return g.provider.Chat(ctx, overallSystemPrompt, overallUserPrompt(resumeScore, answersScore, warningSummary))
	})
	if err != nil {
		if g.hardFail(err) {
			return nil, err
		}
		slog.Warn("Overall evaluation degraded to fallback", "error", err)
		return fallback, nil
	}

	score, recommendation, hire, perr := ParseOverall(raw)
	if perr != nil {
		slog.Warn("Failed to parse overall evaluation response, using fallback", "error", perr)
		return fallback, nil
	}
	return &OverallResult{Score: score, Recommendation: recommendation, Hire: hire}, nil
}

// OCRIDCard implements Service. Identity verification has no fallback: an
// unreadable card fails verification.
func (g *Gateway) OCRIDCard(ctx context.Context, imageJPEG []byte) (*IDCardData, error) {
	raw, err := g.callChat(ctx, func(ctx context.Context) (string, error) {
		return g.provider.ChatVision(ctx, ocrPrompt, imageJPEG)
	})
	if err != nil {
		return nil, err
	}
	return ParseIDCard(raw)
}

// Health implements Service.
func (g *Gateway) Health() Health {
	return Health{
		Configured:     g.provider != nil,
		QuotaExhausted: g.quota.Exhausted(),
		QuotaSince:     g.quota.Since(),
		ASRBreaker:     g.asrBreaker.State().String(),
		TTSBreaker:     g.ttsBreaker.State().String(),
	}
}

// QuotaExhausted implements Service.
func (g *Gateway) QuotaExhausted() bool {
	return g.quota.Exhausted()
}

// ResetQuota implements Service.
func (g *Gateway) ResetQuota() bool {
	was := g.quota.Reset()
	if was {
		slog.Info("AI quota flag reset by operator")
	}
	return was
}
