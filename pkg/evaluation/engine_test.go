package evaluation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/warninglog"
	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/ai/mock"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/services"
	testdb "github.com/hireloop/hireloop/test/database"
)

// fixture is a completed, not-yet-evaluated session with three questions
// (ice-breaker, technical, coding), answers for all of them, one code
// submission, and a mix of reported and suppressed proctoring warnings.
type fixture struct {
	session *ent.Session
	q1      *ent.Question // ice-breaker, spoken answer with fillers
	q2      *ent.Question // technical, typed answer
	q3      *ent.Question // coding
	r1      *ent.Response
	r2      *ent.Response
	r3      *ent.Response // kind=code, excluded from transcript metrics
}

func seedEvaluableSession(t *testing.T, client *database.Client) *fixture {
	t.Helper()
	ctx := context.Background()

	jobRow, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetTitle("Backend Engineer").
		SetDescription("Build and operate the ingestion services.").
		SetCompanyName("Acme").
		SetCodingLanguage(job.CodingLanguagePython).
		Save(ctx)
	require.NoError(t, err)

	candidate, err := client.Candidate.Create().
		SetID(uuid.NewString()).
		SetFullName("Dana Smith").
		SetEmail(uuid.NewString() + "@example.com").
		Save(ctx)
	require.NoError(t, err)

	iv, err := client.Interview.Create().
		SetID(uuid.NewString()).
		SetCandidateID(candidate.ID).
		SetJobID(jobRow.ID).
		SetStatus(interview.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	ended := time.Now().Add(-10 * time.Minute)
	sess, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetSessionKey(uuid.NewString()).
		SetInterviewID(iv.ID).
		SetCandidateName(candidate.FullName).
		SetCandidateEmail(candidate.Email).
		SetJobDescription(jobRow.Description).
		SetResumeText("Five years building data pipelines.").
		SetStatus(session.StatusCompleted).
		SetTotalQuestions(3).
		SetSessionEndedAt(ended).
		Save(ctx)
	require.NoError(t, err)

	base := time.Now().Add(-30 * time.Minute)
	q1, err := client.Question.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetOrder(0).
		SetType(question.TypeIceBreaker).
		SetLevel(question.LevelMain).
		SetText("What drew you to this role?").
		SetCreatedAt(base).
		Save(ctx)
	require.NoError(t, err)

	q2, err := client.Question.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetOrder(1).
		SetType(question.TypeTechnical).
		SetLevel(question.LevelMain).
		SetText("How do you handle schema migrations?").
		SetCreatedAt(base.Add(time.Second)).
		Save(ctx)
	require.NoError(t, err)

	q3, err := client.Question.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetOrder(2).
		SetType(question.TypeCoding).
		SetLevel(question.LevelMain).
		SetCodingLanguage(question.CodingLanguagePython).
		SetText("Reverse a string.").
		SetCreatedAt(base.Add(2 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	r1, err := client.Response.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetQuestionID(q1.ID).
		SetKind(response.KindAudio).
		SetContent("Um I enjoyed building the ingestion service, you know.").
		SetDurationSeconds(30).
		Save(ctx)
	require.NoError(t, err)

	r2, err := client.Response.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetQuestionID(q2.ID).
		SetKind(response.KindText).
		SetContent("It was hard but we solved it with expand and contract.").
		Save(ctx)
	require.NoError(t, err)

	r3, err := client.Response.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetQuestionID(q3.ID).
		SetKind(response.KindCode).
		SetContent("def solve(s):\n    return s[::-1]").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.CodeSubmission.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetQuestionID(q3.ID).
		SetLanguage(codesubmission.LanguagePython).
		SetSourceCode("def solve(s):\n    return s[::-1]").
		SetPassedAllTests(true).
		SetOutputLog("Test 1: PASSED\nTest 2 (hidden): PASSED").
		Save(ctx)
	require.NoError(t, err)

	for _, wt := range []string{
		models.WarningMultiplePeople,
		models.WarningPhoneDetected,
		models.WarningLowConcentration,
		models.WarningLowConcentration,
		models.WarningTabSwitched,
	} {
		_, err = client.WarningLog.Create().
			SetID(uuid.NewString()).
			SetSessionID(sess.ID).
			SetWarningType(warninglog.WarningType(wt)).
			SetMessage("flagged by proctor").
			Save(ctx)
		require.NoError(t, err)
	}

	return &fixture{session: sess, q1: q1, q2: q2, q3: q3, r1: r1, r2: r2, r3: r3}
}

func newMockGateway(t *testing.T) *mock.Gateway {
	t.Helper()
	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)
	return mock.New(bank)
}

func TestEngineEvaluate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fx := seedEvaluableSession(t, client)
	gw := newMockGateway(t)
	engine := NewEngine(client.Client, gw, "gpt-4o-mini")

	result, err := engine.Evaluate(ctx, fx.session.ID)
	require.NoError(t, err)

	t.Run("persists the three scores and the recommendation", func(t *testing.T) {
		assert.Equal(t, 8.0, result.ResumeScore)
		assert.Equal(t, 7.5, result.AnswersScore)
		assert.Equal(t, 7.8, result.OverallScore)
		assert.Equal(t, "Mock resume feedback.", result.ResumeFeedback)
		assert.Equal(t, "Mock answers feedback.", result.AnswersFeedback)
		assert.Equal(t, gw.Recommendation, result.Recommendation)
		require.NotNil(t, result.HireRecommendation)
		assert.True(t, *result.HireRecommendation)
		assert.Equal(t, 1.0, result.ConfidenceLevel)
		assert.False(t, result.IsFallback)
		assert.Equal(t, "gpt-4o-mini", result.ModelUsed)
	})

	t.Run("runs each scoring call once", func(t *testing.T) {
		assert.Equal(t, 1, gw.CallCount("evaluate_resume"))
		assert.Equal(t, 1, gw.CallCount("evaluate_answers"))
		assert.Equal(t, 1, gw.CallCount("evaluate_overall"))
	})

	t.Run("summarizes warnings without suppressed types", func(t *testing.T) {
		assert.Equal(t, "1× multiple_people\n1× phone_detected", result.WarningSummary)
	})

	t.Run("stores transcript metrics alongside the scores", func(t *testing.T) {
		assert.EqualValues(t, 2, result.Metrics["filler_total"])
		assert.EqualValues(t, 18.0, result.Metrics["words_per_minute"])
		assert.EqualValues(t, 30.0, result.Metrics["avg_response_seconds"])

		byQuestion, ok := result.Metrics["sentiment_by_question"].(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, byQuestion, 2)
		assert.EqualValues(t, 1.0, byQuestion[fx.q1.ID])
		assert.EqualValues(t, 0.0, byQuestion[fx.q2.ID])
	})

	t.Run("writes per-response metric columns for spoken answers", func(t *testing.T) {
		r1, err := client.Response.Get(ctx, fx.r1.ID)
		require.NoError(t, err)
		require.NotNil(t, r1.FillerCount)
		assert.Equal(t, 2, *r1.FillerCount)
		require.NotNil(t, r1.WordsPerMinute)
		assert.Equal(t, 18.0, *r1.WordsPerMinute)
		require.NotNil(t, r1.Sentiment)
		assert.Equal(t, 1.0, *r1.Sentiment)

		r2, err := client.Response.Get(ctx, fx.r2.ID)
		require.NoError(t, err)
		require.NotNil(t, r2.FillerCount)
		assert.Equal(t, 0, *r2.FillerCount)

		// Code answers carry no transcript.
		r3, err := client.Response.Get(ctx, fx.r3.ID)
		require.NoError(t, err)
		assert.Nil(t, r3.FillerCount)
	})

	t.Run("marks the session evaluated", func(t *testing.T) {
		sess, err := client.Session.Get(ctx, fx.session.ID)
		require.NoError(t, err)
		assert.True(t, sess.IsEvaluated)
	})

	t.Run("re-evaluation replaces the row instead of appending", func(t *testing.T) {
		gw.OverallScore = 5.5
		gw.Hire = false

		again, err := engine.Evaluate(ctx, fx.session.ID)
		require.NoError(t, err)
		assert.Equal(t, 5.5, again.OverallScore)
		require.NotNil(t, again.HireRecommendation)
		assert.False(t, *again.HireRecommendation)

		count, err := client.EvaluationResult.Query().
			Where(evaluationresult.SessionIDEQ(fx.session.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestEngineEvaluateQuotaExhausted(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fx := seedEvaluableSession(t, client)
	gw := newMockGateway(t)
	gw.SetQuotaExhausted(true)
	engine := NewEngine(client.Client, gw, "gpt-4o-mini")

	result, err := engine.Evaluate(ctx, fx.session.ID)
	require.NoError(t, err)

	assert.Equal(t, 7.0, result.ResumeScore)
	assert.Equal(t, 7.0, result.AnswersScore)
	assert.Equal(t, 7.0, result.OverallScore)
	assert.Equal(t, ai.FallbackFeedback, result.ResumeFeedback)
	assert.Equal(t, ai.FallbackFeedback, result.AnswersFeedback)
	assert.Equal(t, ai.FallbackFeedback, result.Recommendation)
	assert.Equal(t, 0.0, result.ConfidenceLevel)
	assert.True(t, result.IsFallback)
	assert.Empty(t, result.ModelUsed)

	sess, err := client.Session.Get(ctx, fx.session.ID)
	require.NoError(t, err)
	assert.True(t, sess.IsEvaluated)
}

// resumeFallbackGateway degrades only the résumé axis, leaving the other two
// scoring calls healthy.
type resumeFallbackGateway struct {
	*mock.Gateway
}

func (g *resumeFallbackGateway) EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*ai.ScoreResult, error) {
	return &ai.ScoreResult{Score: 7.0, Feedback: ai.FallbackFeedback, Fallback: true}, nil
}

func TestEngineEvaluatePartialDegradation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fx := seedEvaluableSession(t, client)
	gw := &resumeFallbackGateway{Gateway: newMockGateway(t)}
	engine := NewEngine(client.Client, gw, "gpt-4o-mini")

	result, err := engine.Evaluate(ctx, fx.session.ID)
	require.NoError(t, err)

	// One degraded axis lowers confidence but is not a fallback result.
	assert.Equal(t, 7.0, result.ResumeScore)
	assert.Equal(t, 7.5, result.AnswersScore)
	assert.Equal(t, 0.7, result.ConfidenceLevel)
	assert.False(t, result.IsFallback)
	assert.Equal(t, "gpt-4o-mini", result.ModelUsed)
}

// brokenGateway fails the answers call outright, as the live gateway does in
// hard-fail mode.
type brokenGateway struct {
	*mock.Gateway
}

func (g *brokenGateway) EvaluateAnswers(ctx context.Context, spokenBlock, codingBlock string) (*ai.ScoreResult, error) {
	return nil, fmt.Errorf("provider unreachable")
}

func TestEngineEvaluateHardFailurePersistsNothing(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fx := seedEvaluableSession(t, client)
	gw := &brokenGateway{Gateway: newMockGateway(t)}
	engine := NewEngine(client.Client, gw, "gpt-4o-mini")

	_, err := engine.Evaluate(ctx, fx.session.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate answers")

	count, err := client.EvaluationResult.Query().
		Where(evaluationresult.SessionIDEQ(fx.session.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	sess, err := client.Session.Get(ctx, fx.session.ID)
	require.NoError(t, err)
	assert.False(t, sess.IsEvaluated)
}

func TestEngineEvaluateUnknownSession(t *testing.T) {
	client := testdb.NewTestClient(t)

	engine := NewEngine(client.Client, newMockGateway(t), "gpt-4o-mini")

	_, err := engine.Evaluate(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEnginePersistFallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fx := seedEvaluableSession(t, client)
	gw := newMockGateway(t)
	engine := NewEngine(client.Client, gw, "gpt-4o-mini")

	result, err := engine.PersistFallback(ctx, fx.session.ID, "evaluation attempts exhausted")
	require.NoError(t, err)

	t.Run("never touches the gateway", func(t *testing.T) {
		assert.Equal(t, 0, gw.CallCount("evaluate_resume"))
		assert.Equal(t, 0, gw.CallCount("evaluate_answers"))
		assert.Equal(t, 0, gw.CallCount("evaluate_overall"))
	})

	t.Run("writes the neutral result", func(t *testing.T) {
		assert.Equal(t, 7.0, result.ResumeScore)
		assert.Equal(t, 7.0, result.AnswersScore)
		assert.Equal(t, 7.0, result.OverallScore)
		assert.Equal(t, ai.FallbackFeedback, result.ResumeFeedback)
		assert.Equal(t, 0.0, result.ConfidenceLevel)
		assert.True(t, result.IsFallback)
		assert.Empty(t, result.ModelUsed)
		assert.Nil(t, result.HireRecommendation)
	})

	t.Run("still carries warnings and transcript metrics", func(t *testing.T) {
		assert.Equal(t, "1× multiple_people\n1× phone_detected", result.WarningSummary)
		assert.EqualValues(t, 2, result.Metrics["filler_total"])
	})

	t.Run("marks the session evaluated", func(t *testing.T) {
		sess, err := client.Session.Get(ctx, fx.session.ID)
		require.NoError(t, err)
		assert.True(t, sess.IsEvaluated)
	})
}
