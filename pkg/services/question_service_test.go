package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/ai"
	testdb "github.com/hireloop/hireloop/test/database"
)

func planSeeds() []QuestionSeed {
	audio := "audio/questions/q0.mp3"
	return []QuestionSeed{
		{
			Draft:     ai.QuestionDraft{Order: 0, Type: "ice_breaker", Text: "What drew you to this role?"},
			AudioPath: &audio,
		},
		{
			Draft:       ai.QuestionDraft{Order: 1, Type: "technical", Text: "How does a hash map handle collisions?"},
			TTSDegraded: true,
		},
		{
			Draft: ai.QuestionDraft{
				Order:          2,
				Type:           "coding",
				Text:           "Reverse a string.",
				CodingLanguage: "python",
				TestCases: []ai.TestCaseDraft{
					{Input: "abc", Expected: "cba"},
					{Input: "racecar", Expected: "racecar", Hidden: true},
				},
			},
		},
	}
}

func TestQuestionService_CreateQuestionSet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQuestionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)

	questions, err := service.CreateQuestionSet(ctx, sess.ID, planSeeds())
	require.NoError(t, err)
	require.Len(t, questions, 3)

	t.Run("persists drafts with their synthesis outcomes", func(t *testing.T) {
		assert.Equal(t, question.TypeIceBreaker, questions[0].Type)
		assert.Equal(t, question.LevelMain, questions[0].Level)
		require.NotNil(t, questions[0].AudioPath)
		assert.Equal(t, "audio/questions/q0.mp3", *questions[0].AudioPath)
		assert.False(t, questions[0].TtsDegraded)

		assert.True(t, questions[1].TtsDegraded)
		assert.Nil(t, questions[1].AudioPath)

		require.NotNil(t, questions[2].CodingLanguage)
		assert.Equal(t, question.CodingLanguagePython, *questions[2].CodingLanguage)
	})

	t.Run("persists coding test cases in authoring order", func(t *testing.T) {
		tcs, err := service.TestCasesFor(ctx, questions[2].ID)
		require.NoError(t, err)
		require.Len(t, tcs, 2)
		assert.Equal(t, "abc", tcs[0].Input)
		assert.Equal(t, "cba", tcs[0].ExpectedOutput)
		assert.False(t, tcs[0].IsHidden)
		assert.True(t, tcs[1].IsHidden)
		assert.Equal(t, 1, tcs[1].Ordinal)
	})

	t.Run("rejects an empty plan", func(t *testing.T) {
		_, err := service.CreateQuestionSet(ctx, sess.ID, nil)
		assert.Error(t, err)
	})

	t.Run("duplicate main order rolls the set back", func(t *testing.T) {
		other := createTestSession(t, client, session.StatusActive)
		seeds := []QuestionSeed{
			{Draft: ai.QuestionDraft{Order: 0, Type: "technical", Text: "First."}},
			{Draft: ai.QuestionDraft{Order: 0, Type: "technical", Text: "Duplicate order."}},
		}

		_, err := service.CreateQuestionSet(ctx, other.ID, seeds)
		require.Error(t, err)

		left, err := service.ListQuestions(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}

func TestQuestionService_FollowUps(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQuestionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	questions, err := service.CreateQuestionSet(ctx, sess.ID, planSeeds())
	require.NoError(t, err)

	parent := questions[1]
	fu, err := service.AddFollowUp(ctx, parent, "Could you expand on open addressing?", nil, false)
	require.NoError(t, err)

	t.Run("shares the parent's order and type", func(t *testing.T) {
		assert.Equal(t, parent.Order, fu.Order)
		assert.Equal(t, parent.Type, fu.Type)
		assert.Equal(t, question.LevelFollowUp, fu.Level)
		require.NotNil(t, fu.ParentID)
		assert.Equal(t, parent.ID, *fu.ParentID)
	})

	t.Run("sorts directly after its parent in asking order", func(t *testing.T) {
		listed, err := service.ListQuestions(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, listed, 4)
		assert.Equal(t, questions[0].ID, listed[0].ID)
		assert.Equal(t, parent.ID, listed[1].ID)
		assert.Equal(t, fu.ID, listed[2].ID)
		assert.Equal(t, questions[2].ID, listed[3].ID)
	})

	t.Run("main lookup by order ignores follow-ups", func(t *testing.T) {
		got, err := service.MainQuestionByOrder(ctx, sess.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, parent.ID, got.ID)

		_, err = service.MainQuestionByOrder(ctx, sess.ID, 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuestionService_HasResponse(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQuestionService(client.Client)
	responses := NewResponseService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 0, question.TypeTechnical)

	has, err := service.HasResponse(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = responses.RecordResponse(ctx, RecordResponseInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
		Kind:       "text",
		Content:    "Chaining or open addressing.",
	})
	require.NoError(t, err)

	has, err = service.HasResponse(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, has)
}
