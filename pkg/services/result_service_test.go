package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/session"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestResultService_Replace(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusCompleted)
	hire := true
	technical := 8.5

	first, err := service.Replace(ctx, ResultInput{
		SessionID:          sess.ID,
		InterviewID:        sess.InterviewID,
		ResumeScore:        8.0,
		AnswersScore:       7.5,
		OverallScore:       7.8,
		TechnicalScore:     &technical,
		ResumeFeedback:     "Strong background.",
		AnswersFeedback:    "Clear and structured answers.",
		Recommendation:     "Proceed to the onsite round.",
		HireRecommendation: &hire,
		ConfidenceLevel:    1.0,
		WarningSummary:     "1× phone_detected",
		Metrics:            map[string]interface{}{"filler_total": 2},
		ModelUsed:          "gpt-4o-mini",
	})
	require.NoError(t, err)
	assert.Equal(t, 7.8, first.OverallScore)
	require.NotNil(t, first.HireRecommendation)
	assert.True(t, *first.HireRecommendation)

	updated, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsEvaluated)

	t.Run("re-evaluation replaces the single row", func(t *testing.T) {
		second, err := service.Replace(ctx, ResultInput{
			SessionID:       sess.ID,
			InterviewID:     sess.InterviewID,
			ResumeScore:     6.0,
			AnswersScore:    5.5,
			OverallScore:    5.8,
			ResumeFeedback:  "Reassessed.",
			AnswersFeedback: "Reassessed.",
			Recommendation:  "Hold.",
			ConfidenceLevel: 1.0,
			ModelUsed:       "gpt-4o-mini",
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		n, err := client.EvaluationResult.Query().
			Where(evaluationresult.SessionIDEQ(sess.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		view, err := service.GetBySession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 5.8, view.OverallScore)
		assert.Nil(t, view.HireRecommendation)
	})
}

func TestResultService_GetBySession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusCompleted)
	technical := 8.5
	coding := 9.0

	_, err := service.Replace(ctx, ResultInput{
		SessionID:       sess.ID,
		InterviewID:     sess.InterviewID,
		ResumeScore:     8.0,
		AnswersScore:    7.5,
		OverallScore:    7.8,
		TechnicalScore:  &technical,
		CodingScore:     &coding,
		ResumeFeedback:  "Strong background.",
		AnswersFeedback: "Clear and structured answers.",
		Recommendation:  "Proceed.",
		ConfidenceLevel: 1.0,
		ModelUsed:       "gpt-4o-mini",
	})
	require.NoError(t, err)

	view, err := service.GetBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, view.SessionID)
	assert.Equal(t, sess.InterviewID, view.InterviewID)
	assert.Equal(t, 8.0, view.ResumeScore)

	// Sub-scores surface as a 0-100 breakdown; the absent axis stays nil.
	require.NotNil(t, view.Breakdown)
	require.NotNil(t, view.Breakdown.Technical)
	assert.Equal(t, 85, *view.Breakdown.Technical)
	require.NotNil(t, view.Breakdown.Coding)
	assert.Equal(t, 90, *view.Breakdown.Coding)
	assert.Nil(t, view.Breakdown.Behavioral)
}

func TestResultService_GetBySessionWithoutBreakdown(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusCompleted)
	_, err := service.Replace(ctx, ResultInput{
		SessionID:       sess.ID,
		InterviewID:     sess.InterviewID,
		ResumeScore:     7.0,
		AnswersScore:    7.0,
		OverallScore:    7.0,
		ResumeFeedback:  "ok",
		AnswersFeedback: "ok",
		Recommendation:  "ok",
		ConfidenceLevel: 0,
		IsFallback:      true,
	})
	require.NoError(t, err)

	view, err := service.GetBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Breakdown)
	assert.True(t, view.IsFallback)
	assert.Empty(t, view.ModelUsed)
}

func TestResultService_GetBySessionNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)

	_, err := service.GetBySession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}
