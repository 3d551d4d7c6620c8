package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/session"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestResponseService_RecordResponse(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 0, question.TypeTechnical)

	t.Run("stores an audio answer with its transcript", func(t *testing.T) {
		audio := "audio/responses/r0.webm"
		resp, err := service.RecordResponse(ctx, RecordResponseInput{
			SessionID:       sess.ID,
			QuestionID:      q.ID,
			Kind:            "audio",
			Content:         "Chaining or open addressing.",
			AudioPath:       &audio,
			DurationSeconds: 21.5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Chaining or open addressing.", resp.Content)
		require.NotNil(t, resp.AudioPath)
		assert.Equal(t, audio, *resp.AudioPath)
		assert.Equal(t, 21.5, resp.DurationSeconds)
		// Metric columns are filled at evaluation time.
		assert.Nil(t, resp.FillerCount)
	})

	t.Run("a second answer to the same question is rejected", func(t *testing.T) {
		_, err := service.RecordResponse(ctx, RecordResponseInput{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			Kind:       "text",
			Content:    "Trying again.",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("get by question returns the stored answer", func(t *testing.T) {
		resp, err := service.GetByQuestion(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chaining or open addressing.", resp.Content)

		_, err = service.GetByQuestion(ctx, "no-such-question")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResponseService_ListBySession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q0 := createTestQuestion(t, client, sess.ID, 0, question.TypeIceBreaker)
	q1 := createTestQuestion(t, client, sess.ID, 1, question.TypeTechnical)

	for _, q := range []string{q0.ID, q1.ID} {
		_, err := service.RecordResponse(ctx, RecordResponseInput{
			SessionID:  sess.ID,
			QuestionID: q,
			Kind:       "text",
			Content:    "answer",
		})
		require.NoError(t, err)
	}

	resps, err := service.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, q0.ID, resps[0].QuestionID)
	assert.Equal(t, q1.ID, resps[1].QuestionID)
}

func TestResponseService_SetMetrics(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 0, question.TypeBehavioral)
	resp, err := service.RecordResponse(ctx, RecordResponseInput{
		SessionID:       sess.ID,
		QuestionID:      q.ID,
		Kind:            "audio",
		Content:         "Um, we shipped it anyway.",
		DurationSeconds: 12,
	})
	require.NoError(t, err)

	require.NoError(t, service.SetMetrics(ctx, resp.ID, 1, 25.0, -0.5))

	got, err := service.GetByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FillerCount)
	assert.Equal(t, 1, *got.FillerCount)
	require.NotNil(t, got.WordsPerMinute)
	assert.Equal(t, 25.0, *got.WordsPerMinute)
	require.NotNil(t, got.Sentiment)
	assert.Equal(t, -0.5, *got.Sentiment)

	assert.ErrorIs(t, service.SetMetrics(ctx, "no-such-response", 0, 0, 0), ErrNotFound)
}
