package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/session"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestCodeSubmissionService_RecordSubmission(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCodeSubmissionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 3, question.TypeCoding)

	sub, err := service.RecordSubmission(ctx, RecordSubmissionInput{
		SessionID:      sess.ID,
		QuestionID:     q.ID,
		Language:       "python",
		SourceCode:     "def solve(nums):\n    return sorted(nums)\n",
		PassedAllTests: true,
		OutputLog:      "Test 1: PASSED\nTest 2 (hidden): PASSED",
	})
	require.NoError(t, err)
	assert.Equal(t, codesubmission.LanguagePython, sub.Language)
	assert.True(t, sub.PassedAllTests)
	assert.Equal(t, "Test 1: PASSED\nTest 2 (hidden): PASSED", sub.OutputLog)

	// A resubmission is a second row, not an update of the first.
	_, err = service.RecordSubmission(ctx, RecordSubmissionInput{
		SessionID:      sess.ID,
		QuestionID:     q.ID,
		Language:       "python",
		SourceCode:     "def solve(nums):\n    return nums\n",
		PassedAllTests: false,
		OutputLog:      "Test 1: FAILED",
	})
	require.NoError(t, err)

	subs, err := service.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestCodeSubmissionService_ListBySession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCodeSubmissionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	other := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 3, question.TypeCoding)

	base := time.Now().Add(-time.Hour)
	for i, code := range []string{"print(1)", "print(2)", "print(3)"} {
		_, err := client.CodeSubmission.Create().
			SetID(uuid.NewString()).
			SetSessionID(sess.ID).
			SetQuestionID(q.ID).
			SetLanguage(codesubmission.LanguagePython).
			SetSourceCode(code).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.CodeSubmission.Create().
		SetID(uuid.NewString()).
		SetSessionID(other.ID).
		SetQuestionID(q.ID).
		SetLanguage(codesubmission.LanguageJavascript).
		SetSourceCode("console.log(1)").
		Save(ctx)
	require.NoError(t, err)

	subs, err := service.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "print(1)", subs[0].SourceCode)
	assert.Equal(t, "print(2)", subs[1].SourceCode)
	assert.Equal(t, "print(3)", subs[2].SourceCode)
}

func TestCodeSubmissionService_FixQuestionRefs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCodeSubmissionService(client.Client)
	questions := NewQuestionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)
	q := createTestQuestion(t, client, sess.ID, 2, question.TypeCoding)

	// A follow-up sharing the parent's order must not confuse the
	// order-to-UUID resolution, which only considers MAIN questions.
	_, err := questions.AddFollowUp(ctx, q, "What is the complexity?", nil, true)
	require.NoError(t, err)

	legacy, err := service.RecordSubmission(ctx, RecordSubmissionInput{
		SessionID:      sess.ID,
		QuestionID:     "2",
		Language:       "python",
		SourceCode:     "def solve(): pass",
		PassedAllTests: true,
		OutputLog:      "Test 1: PASSED",
	})
	require.NoError(t, err)

	modern, err := service.RecordSubmission(ctx, RecordSubmissionInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
		Language:   "python",
		SourceCode: "def solve(): return 1",
	})
	require.NoError(t, err)

	orphan, err := service.RecordSubmission(ctx, RecordSubmissionInput{
		SessionID:  sess.ID,
		QuestionID: "9",
		Language:   "python",
		SourceCode: "def solve(): return 2",
	})
	require.NoError(t, err)

	fixed, err := service.FixQuestionRefs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	repaired, err := client.CodeSubmission.Get(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, repaired.QuestionID)
	assert.Equal(t, legacy.SourceCode, repaired.SourceCode)
	assert.True(t, repaired.PassedAllTests)
	assert.WithinDuration(t, legacy.CreatedAt, repaired.CreatedAt, time.Millisecond)

	untouched, err := client.CodeSubmission.Get(ctx, modern.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, untouched.QuestionID)

	// A ref with no matching main question is skipped, not an error.
	skipped, err := client.CodeSubmission.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, "9", skipped.QuestionID)

	fixed, err = service.FixQuestionRefs(ctx)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}
