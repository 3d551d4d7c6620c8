package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/session"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(session.StatusCompleted))
	assert.True(t, Terminal(session.StatusExpired))
	assert.True(t, Terminal(session.StatusError))
	assert.False(t, Terminal(session.StatusScheduled))
	assert.False(t, Terminal(session.StatusActive))
	assert.False(t, Terminal(session.StatusPaused))
}

func TestSessionService_ActivateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("first activation wins and stamps timestamps", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)

		won, err := service.ActivateSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, won)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusActive, got.Status)
		assert.NotNil(t, got.SessionStartedAt)
		assert.NotNil(t, got.LastInteractionAt)
	})

	t.Run("second activation does not win", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)

		won, err := service.ActivateSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = service.ActivateSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("resumes a paused session without winning", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusPaused)

		won, err := service.ActivateSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.False(t, won)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusActive, got.Status)
	})

	t.Run("terminal session rejects activation", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusExpired)

		_, err := service.ActivateSession(ctx, sess.ID)
		assert.True(t, IsStateError(err, CodeSessionTerminal))
	})
}

func TestSessionService_TouchSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("updates liveness on an active session", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)

		status, err := service.TouchSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusActive, status)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.LastInteractionAt)
	})

	t.Run("reports the status of a finished session", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusCompleted)

		status, err := service.TouchSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, status)
	})
}

func TestSessionService_CompleteSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("completes an active session", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)

		require.NoError(t, service.CompleteSession(ctx, sess.ID))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, got.Status)
		assert.NotNil(t, got.SessionEndedAt)
		assert.False(t, got.IsEvaluated)
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)

		require.NoError(t, service.CompleteSession(ctx, sess.ID))
		require.NoError(t, service.CompleteSession(ctx, sess.ID))
	})

	t.Run("an unstarted session cannot complete", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)

		err := service.CompleteSession(ctx, sess.ID)
		assert.True(t, IsStateError(err, CodeSessionTerminal))
	})

	t.Run("an expired session cannot complete", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusExpired)

		err := service.CompleteSession(ctx, sess.ID)
		assert.True(t, IsStateError(err, CodeSessionTerminal))
	})
}

func TestSessionService_MarkSessionError(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("records the fault", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)

		require.NoError(t, service.MarkSessionError(ctx, sess.ID, "proctor pipeline crashed"))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusError, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "proctor pipeline crashed", *got.ErrorMessage)
	})

	t.Run("never overwrites a completed session", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusCompleted)

		require.NoError(t, service.MarkSessionError(ctx, sess.ID, "late fault"))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, got.Status)
	})
}

func TestSessionService_ExpireLapsedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	bindWindow := func(t *testing.T, interviewID string, endedAgo time.Duration) {
		t.Helper()
		end := time.Now().Add(-endedAgo)
		start := end.Add(-45 * time.Minute)
		_, err := client.Interview.UpdateOneID(interviewID).
			SetStartedAt(start).
			SetEndedAt(end).
			SetLinkExpiresAt(end.Add(2 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("expires scheduled sessions once the link window closes", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)
		bindWindow(t, sess.InterviewID, 3*time.Hour)

		ids, err := service.ExpireLapsedSessions(ctx, 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, []string{sess.ID}, ids)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusExpired, got.Status)
	})

	t.Run("keeps scheduled sessions inside the link window", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)
		bindWindow(t, sess.InterviewID, 30*time.Minute)

		_, err := service.ExpireLapsedSessions(ctx, 10*time.Minute)
		require.NoError(t, err)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusScheduled, got.Status)
	})

	t.Run("expires abandoned active sessions past the window", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)
		bindWindow(t, sess.InterviewID, time.Hour)
		_, err := client.Session.UpdateOneID(sess.ID).
			SetStatus(session.StatusActive).
			SetLastInteractionAt(time.Now().Add(-20 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		ids, err := service.ExpireLapsedSessions(ctx, 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, []string{sess.ID}, ids)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusExpired, got.Status)
		assert.NotNil(t, got.SessionEndedAt)
	})

	t.Run("idleness alone never expires a session inside its window", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusScheduled)
		end := time.Now().Add(time.Hour)
		_, err := client.Interview.UpdateOneID(sess.InterviewID).
			SetStartedAt(time.Now().Add(-45 * time.Minute)).
			SetEndedAt(end).
			SetLinkExpiresAt(end.Add(2 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Session.UpdateOneID(sess.ID).
			SetStatus(session.StatusActive).
			SetLastInteractionAt(time.Now().Add(-20 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.ExpireLapsedSessions(ctx, 10*time.Minute)
		require.NoError(t, err)

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusActive, got.Status)
	})
}

func TestSessionService_IDVerification(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)

	require.NoError(t, service.SetIDVerification(ctx, sess.ID, true, "Name: D*** S****"))

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.IDVerificationStatusVerified, got.IDVerificationStatus)
	require.NotNil(t, got.IDDetails)
	assert.Equal(t, "Name: D*** S****", *got.IDDetails)

	require.NoError(t, service.SetIDVerification(ctx, sess.ID, false, ""))
	got, err = service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.IDVerificationStatusFailed, got.IDVerificationStatus)

	assert.ErrorIs(t, service.SetIDVerification(ctx, "no-such-session", true, ""), ErrNotFound)
}

func TestSessionService_QuestionPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)

	require.NoError(t, service.SetQuestionPlan(ctx, sess.ID, 5, map[string]interface{}{
		"chat_model": "gpt-4o-mini",
		"fallback":   false,
	}))

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalQuestions)
	assert.Equal(t, 0, got.CurrentQuestionIndex)
	assert.Equal(t, "gpt-4o-mini", got.ModelConfig["chat_model"])

	t.Run("index only grows", func(t *testing.T) {
		require.NoError(t, service.AdvanceQuestionIndex(ctx, sess.ID, 2))
		require.NoError(t, service.AdvanceQuestionIndex(ctx, sess.ID, 1))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentQuestionIndex)
	})

	t.Run("follow-ups grow the plan", func(t *testing.T) {
		require.NoError(t, service.AddFollowUpToPlan(ctx, sess.ID))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, got.TotalQuestions)
	})
}

func TestSessionService_GetSessionByKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusScheduled)

	got, err := service.GetSessionByKey(ctx, sess.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	// The owning interview rides along for window checks.
	require.NotNil(t, got.Edges.Interview)
	assert.Equal(t, sess.InterviewID, got.Edges.Interview.ID)

	_, err = service.GetSessionByKey(ctx, "no-such-key")
	assert.ErrorIs(t, err, ErrNotFound)
}
