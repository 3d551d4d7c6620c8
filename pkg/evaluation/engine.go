// Package evaluation turns a completed session's artifacts — transcripts,
// code submissions, and the proctoring log — into a persisted
// EvaluationResult. The engine is called synchronously on complete (under a
// short budget) and by the queue workers for everything that misses it, so
// every path through Evaluate must end in either a persisted result or a
// retryable error.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/services"
)

// Engine assembles evaluation inputs, runs the three scoring calls, and
// persists the outcome atomically.
type Engine struct {
	gateway ai.Service
	model   string

	questions   *services.QuestionService
	responses   *services.ResponseService
	submissions *services.CodeSubmissionService
	warnings    *services.WarningService
	results     *services.ResultService
	sessions    *services.SessionService
}

// NewEngine creates a new evaluation engine. model labels persisted results
// with the chat model that produced them.
func NewEngine(client *ent.Client, gateway ai.Service, model string) *Engine {
	return &Engine{
		gateway:     gateway,
		model:       model,
		questions:   services.NewQuestionService(client),
		responses:   services.NewResponseService(client),
		submissions: services.NewCodeSubmissionService(client),
		warnings:    services.NewWarningService(client),
		results:     services.NewResultService(client),
		sessions:    services.NewSessionService(client),
	}
}

// Evaluate scores one session and replaces its result row. Gateway
// degradation is absorbed into fallback scores; an error return means
// nothing was persisted and the caller should retry.
func (e *Engine) Evaluate(ctx context.Context, sessionID string) (*ent.EvaluationResult, error) {
	sess, err := e.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	spoken, coding, metrics, err := e.assemble(ctx, sess)
	if err != nil {
		return nil, err
	}

	warningSummary, err := e.warnings.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resume, err := e.gateway.EvaluateResume(ctx, sess.ResumeText, sess.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate resume fit: %w", err)
	}
	answers, err := e.gateway.EvaluateAnswers(ctx, spoken, coding)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answers: %w", err)
	}
	overall, err := e.gateway.EvaluateOverall(ctx, resume.Score, answers.Score, warningSummary)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate overall: %w", err)
	}

	e.persistResponseMetrics(ctx, metrics)

	fallbacks := 0
	for _, degraded := range []bool{resume.Fallback, answers.Fallback, overall.Fallback} {
		if degraded {
			fallbacks++
		}
	}
	isFallback := fallbacks == 3

	modelUsed := e.model
	if isFallback {
		modelUsed = ""
	}

	hire := overall.Hire
	result, err := e.results.Replace(ctx, services.ResultInput{
		SessionID:          sess.ID,
		InterviewID:        sess.InterviewID,
		ResumeScore:        round1(resume.Score),
		AnswersScore:       round1(answers.Score),
		OverallScore:       round1(overall.Score),
		ResumeFeedback:     resume.Feedback,
		AnswersFeedback:    answers.Feedback,
		Recommendation:     overall.Recommendation,
		HireRecommendation: &hire,
		ConfidenceLevel:    confidence(fallbacks),
		WarningSummary:     warningSummary,
		Metrics:            metrics.metricsJSON(),
		IsFallback:         isFallback,
		ModelUsed:          modelUsed,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Session evaluated",
		"session_id", sess.ID,
		"overall_score", result.OverallScore,
		"fallback", isFallback)
	return result, nil
}

// PersistFallback writes the neutral fallback result without touching the
// gateway. Used once a session has exhausted its evaluation attempts, so a
// recruiter always gets a result row.
func (e *Engine) PersistFallback(ctx context.Context, sessionID, reason string) (*ent.EvaluationResult, error) {
	sess, err := e.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	_, _, metrics, err := e.assemble(ctx, sess)
	if err != nil {
		return nil, err
	}
	warningSummary, err := e.warnings.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := e.results.Replace(ctx, services.ResultInput{
		SessionID:       sess.ID,
		InterviewID:     sess.InterviewID,
		ResumeScore:     7.0,
		AnswersScore:    7.0,
		OverallScore:    7.0,
		ResumeFeedback:  ai.FallbackFeedback,
		AnswersFeedback: ai.FallbackFeedback,
		Recommendation:  ai.FallbackFeedback,
		ConfidenceLevel: 0,
		WarningSummary:  warningSummary,
		Metrics:         metrics.metricsJSON(),
		IsFallback:      true,
	})
	if err != nil {
		return nil, err
	}

	slog.Warn("Fallback result persisted without AI analysis",
		"session_id", sess.ID, "reason", reason)
	return result, nil
}

// assemble loads the session's artifacts and builds the two prompt blocks
// plus the mechanical transcript metrics.
func (e *Engine) assemble(ctx context.Context, sess *ent.Session) (spoken, coding string, metrics *transcriptMetrics, err error) {
	questions, err := e.questions.ListQuestions(ctx, sess.ID)
	if err != nil {
		return "", "", nil, err
	}
	responses, err := e.responses.ListBySession(ctx, sess.ID)
	if err != nil {
		return "", "", nil, err
	}
	submissions, err := e.submissions.ListBySession(ctx, sess.ID)
	if err != nil {
		return "", "", nil, err
	}

	byQuestion := make(map[string]*ent.Response, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	spoken = buildSpokenBlock(questions, byQuestion)
	coding = buildCodingBlock(questions, submissions)
	metrics = computeMetrics(responses)
	return spoken, coding, metrics, nil
}

// computeMetrics profiles the spoken responses. Code responses carry no
// transcript and are excluded.
func computeMetrics(responses []*ent.Response) *transcriptMetrics {
	m := &transcriptMetrics{}

	totalWords := 0
	totalSeconds := 0.0
	timedResponses := 0

	for _, r := range responses {
		if r.Kind == response.KindCode {
			continue
		}
		rm := analyzeTranscript(r.ID, r.QuestionID, r.Content, r.DurationSeconds)
		m.perResponse = append(m.perResponse, rm)
		m.fillerTotal += rm.fillerCount
		// Typed answers have no duration and are excluded from pace.
		if r.DurationSeconds > 0 {
			totalWords += len(tokenize(r.Content))
			totalSeconds += r.DurationSeconds
			timedResponses++
		}
	}

	if totalSeconds > 0 {
		m.wordsPerMinute = float64(totalWords) / (totalSeconds / 60)
	}
	if timedResponses > 0 {
		m.avgResponseSeconds = totalSeconds / float64(timedResponses)
	}
	return m
}

// persistResponseMetrics stores the per-response profile columns.
// Best-effort: a failure here never blocks the evaluation itself.
func (e *Engine) persistResponseMetrics(ctx context.Context, metrics *transcriptMetrics) {
	for _, rm := range metrics.perResponse {
		if err := e.responses.SetMetrics(ctx, rm.responseID, rm.fillerCount, round1(rm.wordsPerMinute), rm.sentiment); err != nil {
			slog.Warn("Failed to store response metrics", "response_id", rm.responseID, "error", err)
		}
	}
}

// confidence maps how many scoring axes degraded onto [0, 1]; a full
// fallback result carries zero confidence.
func confidence(fallbacks int) float64 {
	return round1(float64(3-fallbacks) / 3)
}
