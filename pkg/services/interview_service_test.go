package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/models"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestInterviewService_CreateInterview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	job := createTestJob(t, client)
	cand := createTestCandidate(t, client)

	t.Run("creates in pending scheduling", func(t *testing.T) {
		iv, err := service.CreateInterview(ctx, models.CreateInterviewRequest{
			CandidateID: cand.ID,
			JobID:       job.ID,
			RoundLabel:  "Round 1",
		})
		require.NoError(t, err)
		assert.Equal(t, interview.StatusPendingScheduling, iv.Status)
		assert.Equal(t, "Round 1", iv.RoundLabel)
		assert.Nil(t, iv.StartedAt)
	})

	t.Run("rejects unknown candidate or job", func(t *testing.T) {
		_, err := service.CreateInterview(ctx, models.CreateInterviewRequest{
			CandidateID: "no-such-candidate",
			JobID:       job.ID,
		})
		assert.Error(t, err)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateInterview(ctx, models.CreateInterviewRequest{JobID: job.ID})
		assert.Error(t, err)
		_, err = service.CreateInterview(ctx, models.CreateInterviewRequest{CandidateID: cand.ID})
		assert.Error(t, err)
	})
}

func TestInterviewService_Book(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	zone := testZone(t)
	ctx := context.Background()

	iv, cand, job := createTestInterview(t, client)
	sl := createTestSlot(t, client, job.ID, 2)

	outcome, err := service.Book(ctx, iv.ID, sl.ID)
	require.NoError(t, err)

	t.Run("projects the slot's civil window to UTC", func(t *testing.T) {
		require.NotNil(t, outcome.Interview.StartedAt)
		require.NotNil(t, outcome.Interview.EndedAt)
		assert.Equal(t, "10:00", outcome.Interview.StartedAt.In(zone).Format("15:04"))
		assert.Equal(t, "10:45", outcome.Interview.EndedAt.In(zone).Format("15:04"))
		assert.Equal(t, sl.InterviewDate, outcome.Interview.StartedAt.In(zone).Format("2006-01-02"))
		assert.Equal(t, interview.StatusScheduled, outcome.Interview.Status)

		require.NotNil(t, outcome.Interview.LinkExpiresAt)
		assert.Equal(t, outcome.Interview.EndedAt.Add(2*time.Hour), *outcome.Interview.LinkExpiresAt)
	})

	t.Run("takes one seat and records the schedule", func(t *testing.T) {
		got, err := client.Slot.Get(ctx, sl.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.CurrentBookings)

		require.NotNil(t, outcome.Schedule)
		assert.Equal(t, schedule.StatusConfirmed, outcome.Schedule.Status)
		assert.Equal(t, sl.ID, outcome.Schedule.SlotID)
	})

	t.Run("creates the session with snapshotted inputs", func(t *testing.T) {
		require.NotNil(t, outcome.Session)
		assert.Equal(t, session.StatusScheduled, outcome.Session.Status)
		assert.Equal(t, cand.FullName, outcome.Session.CandidateName)
		assert.Equal(t, cand.Email, outcome.Session.CandidateEmail)
		assert.Equal(t, job.Description, outcome.Session.JobDescription)
		assert.NotEmpty(t, outcome.Session.SessionKey)
	})

	t.Run("mints a verifiable link token", func(t *testing.T) {
		require.NotEmpty(t, outcome.Token)

		links := newTestLinkService(client.Client).
			WithNow(func() time.Time { return outcome.Interview.StartedAt.Add(5 * time.Minute) })
		v, err := links.Verify(ctx, outcome.Token)
		require.NoError(t, err)
		assert.True(t, v.OK())
	})

	t.Run("rebooking the same interview releases the old seat", func(t *testing.T) {
		second := createTestSlot(t, client, job.ID, 1)

		moved, err := service.Reschedule(ctx, iv.ID, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, moved.Schedule.SlotID)

		first, err := client.Slot.Get(ctx, sl.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, first.CurrentBookings)

		// The old schedule row stays, cancelled.
		cancelled, err := client.Schedule.Query().
			Where(schedule.InterviewID(iv.ID), schedule.StatusEQ(schedule.StatusCancelled)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, cancelled)

		// Same session row across rebookings.
		assert.Equal(t, outcome.Session.ID, moved.Session.ID)
	})
}

func TestInterviewService_BookCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	iv1, _, job := createTestInterview(t, client)
	cand2 := createTestCandidate(t, client)
	iv2, err := client.Interview.Create().
		SetID(iv1.ID + "-2").
		SetCandidateID(cand2.ID).
		SetJobID(job.ID).
		SetStatus(interview.StatusPendingScheduling).
		Save(ctx)
	require.NoError(t, err)

	sl := createTestSlot(t, client, job.ID, 1)

	_, err = service.Book(ctx, iv1.ID, sl.ID)
	require.NoError(t, err)

	t.Run("full slot rejects the next booking", func(t *testing.T) {
		_, err := service.Book(ctx, iv2.ID, sl.ID)
		assert.True(t, IsStateError(err, CodeSlotFull))
	})

	t.Run("cancelled slot rejects bookings", func(t *testing.T) {
		cancelled := createTestSlot(t, client, job.ID, 3)
		require.NoError(t, NewSlotService(client.Client, testZone(t)).CancelSlot(ctx, cancelled.ID))

		_, err := service.Book(ctx, iv2.ID, cancelled.ID)
		assert.True(t, IsStateError(err, CodeSlotCancelled))
	})

	t.Run("unknown slot returns not found", func(t *testing.T) {
		_, err := service.Book(ctx, iv2.ID, "no-such-slot")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInterviewService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	iv, _, job := createTestInterview(t, client)
	sl := createTestSlot(t, client, job.ID, 1)

	outcome, err := service.Book(ctx, iv.ID, sl.ID)
	require.NoError(t, err)

	require.NoError(t, service.Cancel(ctx, iv.ID))

	t.Run("parks the interview on hold and frees the seat", func(t *testing.T) {
		got, err := service.GetInterview(ctx, iv.ID)
		require.NoError(t, err)
		assert.Equal(t, interview.StatusOnHold, got.Status)
		// History stays for stale-token diagnostics.
		assert.NotNil(t, got.StartedAt)

		freed, err := client.Slot.Get(ctx, sl.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, freed.CurrentBookings)
	})

	t.Run("an on-hold interview can be booked again", func(t *testing.T) {
		again, err := service.Book(ctx, iv.ID, sl.ID)
		require.NoError(t, err)
		assert.Equal(t, interview.StatusScheduled, again.Interview.Status)
		assert.Equal(t, outcome.Session.ID, again.Session.ID)
	})
}

func TestInterviewService_RebookingSessionStates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	iv, _, job := createTestInterview(t, client)
	sl := createTestSlot(t, client, job.ID, 3)

	outcome, err := service.Book(ctx, iv.ID, sl.ID)
	require.NoError(t, err)

	t.Run("an expired session is re-armed by a new booking", func(t *testing.T) {
		now := time.Now()
		_, err := client.Session.UpdateOneID(outcome.Session.ID).
			SetStatus(session.StatusExpired).
			SetSessionStartedAt(now).
			SetLastInteractionAt(now).
			Save(ctx)
		require.NoError(t, err)

		moved, err := service.Book(ctx, iv.ID, sl.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusScheduled, moved.Session.Status)
		assert.Nil(t, moved.Session.SessionStartedAt)
		assert.Nil(t, moved.Session.LastInteractionAt)
	})

	t.Run("a completed session blocks rebooking", func(t *testing.T) {
		_, err := client.Session.UpdateOneID(outcome.Session.ID).
			SetStatus(session.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.Book(ctx, iv.ID, sl.ID)
		assert.True(t, IsStateError(err, CodeSessionTerminal))
	})
}

func TestInterviewService_DetectConflicts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	iv, cand, job := createTestInterview(t, client)
	sl := createTestSlot(t, client, job.ID, 2)

	_, err := service.Book(ctx, iv.ID, sl.ID)
	require.NoError(t, err)

	// Second interview for the same candidate, booked into the same window.
	other, err := client.Interview.Create().
		SetID(iv.ID + "-other").
		SetCandidateID(cand.ID).
		SetJobID(job.ID).
		SetStatus(interview.StatusPendingScheduling).
		Save(ctx)
	require.NoError(t, err)
	_, err = service.Book(ctx, other.ID, sl.ID)
	require.NoError(t, err)

	conflicts, err := service.DetectConflicts(ctx, iv.ID)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, iv.ID, conflicts[0].InterviewID)
	assert.Equal(t, other.ID, conflicts[0].OtherInterviewID)

	t.Run("unbound interview has no conflicts", func(t *testing.T) {
		loose, err := client.Interview.Create().
			SetID(iv.ID + "-loose").
			SetCandidateID(cand.ID).
			SetJobID(job.ID).
			SetStatus(interview.StatusPendingScheduling).
			Save(ctx)
		require.NoError(t, err)

		conflicts, err := service.DetectConflicts(ctx, loose.ID)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})
}

func TestInterviewService_GetDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestInterviewService(t, client)
	ctx := context.Background()

	iv, _, job := createTestInterview(t, client)
	sl := createTestSlot(t, client, job.ID, 1)

	outcome, err := service.Book(ctx, iv.ID, sl.ID)
	require.NoError(t, err)

	detail, err := service.GetDetail(ctx, iv.ID)
	require.NoError(t, err)

	assert.Equal(t, "SCHEDULED", detail.Status)
	require.NotNil(t, detail.Schedule)
	assert.Equal(t, sl.ID, detail.Schedule.SlotID)
	require.NotNil(t, detail.Session)
	assert.Equal(t, outcome.Session.ID, detail.Session.SessionID)
	assert.Equal(t, "SCHEDULED", detail.Session.Status)
	assert.Empty(t, detail.Conflicts)
}
