package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/token"
	testdb "github.com/hireloop/hireloop/test/database"
)

// bookForLinkTest books a fresh interview into its own slot and returns the
// outcome, whose token and window drive the verification cases.
func bookForLinkTest(t *testing.T, client *database.Client) *BookingOutcome {
	t.Helper()
	iv, _, j := createTestInterview(t, client)
	slot := createTestSlot(t, client, j.ID, 3)
	outcome, err := newTestInterviewService(t, client).Book(context.Background(), iv.ID, slot.ID)
	require.NoError(t, err)
	return outcome
}

func TestLinkService_Mint(t *testing.T) {
	client := testdb.NewTestClient(t)
	links := newTestLinkService(client.Client)

	t.Run("requires a scheduled window", func(t *testing.T) {
		iv, _, _ := createTestInterview(t, client)
		_, _, err := links.Mint(iv, "dana@example.com")
		assert.True(t, IsStateError(err, CodeInvalidWindow))
	})

	t.Run("expiry is the window end plus the late grace", func(t *testing.T) {
		outcome := bookForLinkTest(t, client)
		tok, expiresAt, err := links.Mint(outcome.Interview, outcome.Session.CandidateEmail)
		require.NoError(t, err)
		assert.NotEmpty(t, tok)
		require.NotNil(t, outcome.Interview.EndedAt)
		assert.Equal(t, outcome.Interview.EndedAt.Add(2*time.Hour).Unix(), expiresAt.Unix())
	})
}

func TestLinkService_Verify(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	outcome := bookForLinkTest(t, client)
	start := *outcome.Interview.StartedAt

	at := func(now time.Time) *LinkService {
		return newTestLinkService(client.Client).WithNow(func() time.Time { return now })
	}

	t.Run("ok inside the window", func(t *testing.T) {
		v, err := at(start.Add(5 * time.Minute)).Verify(ctx, outcome.Token)
		require.NoError(t, err)
		assert.True(t, v.OK())
		require.NotNil(t, v.Interview)
		assert.Equal(t, outcome.Interview.ID, v.Interview.ID)
	})

	t.Run("ok at the early grace boundary", func(t *testing.T) {
		v, err := at(start.Add(-15 * time.Minute)).Verify(ctx, outcome.Token)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonOK, v.Reason)
	})

	t.Run("not yet active before the early grace", func(t *testing.T) {
		v, err := at(start.Add(-16 * time.Minute)).Verify(ctx, outcome.Token)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonNotYetActive, v.Reason)
	})

	t.Run("expired after the late grace", func(t *testing.T) {
		v, err := at(outcome.ExpiresAt.Add(time.Minute)).Verify(ctx, outcome.Token)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonExpired, v.Reason)
	})

	t.Run("bad encoding", func(t *testing.T) {
		v, err := at(start).Verify(ctx, "!!!not-a-token!!!")
		require.NoError(t, err)
		assert.Equal(t, token.ReasonBadEncoding, v.Reason)
		assert.Nil(t, v.Interview)
	})

	t.Run("unknown interview", func(t *testing.T) {
		ghost := token.NewCodec("test-link-secret").Sign("ghost-interview", "dana@example.com", start)
		v, err := at(start).Verify(ctx, ghost)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonUnknownInterview, v.Reason)
	})

	t.Run("signature minted for another email", func(t *testing.T) {
		forged := token.NewCodec("test-link-secret").Sign(outcome.Interview.ID, "intruder@example.com", start)
		v, err := at(start).Verify(ctx, forged)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonSignatureMismatch, v.Reason)
	})

	t.Run("signature minted under another secret", func(t *testing.T) {
		forged := token.NewCodec("wrong-secret").Sign(outcome.Interview.ID, outcome.Session.CandidateEmail, start)
		v, err := at(start).Verify(ctx, forged)
		require.NoError(t, err)
		assert.Equal(t, token.ReasonSignatureMismatch, v.Reason)
	})
}

func TestLinkService_VerifyAfterReschedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	interviews := newTestInterviewService(t, client)
	ctx := context.Background()

	outcome := bookForLinkTest(t, client)
	oldToken := outcome.Token
	oldStart := *outcome.Interview.StartedAt

	slots, err := NewSlotService(client.Client, testZone(t)).CreateSlot(ctx, models.CreateSlotRequest{
		JobID:     outcome.Interview.JobID,
		Date:      futureDate(t, 9),
		StartTime: "14:00",
		EndTime:   "14:45",
		Capacity:  3,
	})
	require.NoError(t, err)
	rebooked, err := interviews.Reschedule(ctx, outcome.Interview.ID, slots[0].ID)
	require.NoError(t, err)

	at := func(now time.Time) *LinkService {
		return newTestLinkService(client.Client).WithNow(func() time.Time { return now })
	}

	// The old link dies with the old start time; the fresh one works.
	v, err := at(oldStart.Add(5 * time.Minute)).Verify(ctx, oldToken)
	require.NoError(t, err)
	assert.Equal(t, token.ReasonSignatureMismatch, v.Reason)

	newStart := *rebooked.Interview.StartedAt
	v, err = at(newStart.Add(5 * time.Minute)).Verify(ctx, rebooked.Token)
	require.NoError(t, err)
	assert.True(t, v.OK())
}
