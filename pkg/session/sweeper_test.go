package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entsession "github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/config"
)

// rewindWindow moves a booked interview's window into the past so the
// sweeper sees it as lapsed.
func rewindWindow(t *testing.T, env *testEnv, interviewID string, endedAgo time.Duration) {
	t.Helper()
	end := time.Now().Add(-endedAgo)
	_, err := env.client.Interview.UpdateOneID(interviewID).
		SetStartedAt(end.Add(-45 * time.Minute)).
		SetEndedAt(end).
		SetLinkExpiresAt(end.Add(2 * time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestSweeper_Sweep(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sweeper := NewSweeper(config.DefaultSessionConfig(), env.sessions, env.monitor)

	t.Run("expires a never-joined session after its window closes", func(t *testing.T) {
		outcome := env.book(t)
		rewindWindow(t, env, outcome.Interview.ID, 3*time.Hour)

		n := sweeper.Sweep(ctx)
		assert.Equal(t, 1, n)

		sess, err := env.sessions.GetSession(ctx, outcome.Session.ID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusExpired, sess.Status)
	})

	t.Run("expires an abandoned active session and detaches its monitor", func(t *testing.T) {
		outcome, started := env.start(t)
		rewindWindow(t, env, outcome.Interview.ID, 3*time.Hour)
		_, err := env.client.Session.UpdateOneID(started.SessionID).
			SetLastInteractionAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		n := sweeper.Sweep(ctx)
		assert.Equal(t, 1, n)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusExpired, sess.Status)
		assert.NotNil(t, sess.SessionEndedAt)
		assert.Equal(t, 1, env.monitor.detachCount(started.SessionID))
	})

	t.Run("a live session survives the sweep", func(t *testing.T) {
		_, started := env.start(t)

		n := sweeper.Sweep(ctx)
		assert.Equal(t, 0, n)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusActive, sess.Status)
	})
}

func TestSweeper_StartStop(t *testing.T) {
	env := newTestEnv(t)

	cfg := *config.DefaultSessionConfig()
	cfg.SweepInterval = 10 * time.Millisecond
	sweeper := NewSweeper(&cfg, env.sessions, nil)

	sweeper.Start(context.Background())
	// A second start is a no-op rather than a second loop.
	sweeper.Start(context.Background())

	time.Sleep(30 * time.Millisecond)
	sweeper.Stop()
	// Stopping twice must not hang.
	sweeper.Stop()
}
