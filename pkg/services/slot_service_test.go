package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/models"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestSlotStatus(t *testing.T) {
	assert.Equal(t, SlotAvailable, SlotStatus(0, 3, false))
	assert.Equal(t, SlotPartial, SlotStatus(1, 3, false))
	assert.Equal(t, SlotPartial, SlotStatus(2, 3, false))
	assert.Equal(t, SlotFull, SlotStatus(3, 3, false))
	assert.Equal(t, SlotFull, SlotStatus(4, 3, false))
	// Cancellation dominates the counters.
	assert.Equal(t, SlotCancelled, SlotStatus(0, 3, true))
}

func TestSlotService_CreateSlot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSlotService(client.Client, testZone(t))
	ctx := context.Background()

	job := createTestJob(t, client)

	t.Run("creates a single slot", func(t *testing.T) {
		slots, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     job.ID,
			Date:      futureDate(t, 3),
			StartTime: "09:30",
			EndTime:   "10:15",
			Capacity:  2,
		})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:30", slots[0].StartTime)
		assert.Equal(t, "10:15", slots[0].EndTime)
		assert.Equal(t, 45, slots[0].DurationMinutes)
		assert.Equal(t, 2, slots[0].MaxCandidates)
		assert.Equal(t, 0, slots[0].CurrentBookings)
		assert.False(t, slots[0].Cancelled)
	})

	t.Run("expands a weekly recurrence", func(t *testing.T) {
		slots, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:      job.ID,
			Date:       "2026-09-07",
			StartTime:  "11:00",
			EndTime:    "11:30",
			Capacity:   1,
			Recurrence: "WEEKLY:3",
		})
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "2026-09-07", slots[0].InterviewDate)
		assert.Equal(t, "2026-09-14", slots[1].InterviewDate)
		assert.Equal(t, "2026-09-21", slots[2].InterviewDate)
		for _, sl := range slots {
			assert.Equal(t, "WEEKLY:3", sl.Recurrence)
		}
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		_, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     job.ID,
			Date:      futureDate(t, 3),
			StartTime: "14:00",
			EndTime:   "13:00",
			Capacity:  1,
		})
		assert.True(t, IsStateError(err, CodeInvalidWindow))
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     job.ID,
			Date:      futureDate(t, 3),
			StartTime: "14:00",
			EndTime:   "15:00",
			Capacity:  0,
		})
		assert.True(t, IsStateError(err, CodeInvalidCapacity))
	})

	t.Run("rejects malformed date and clock values", func(t *testing.T) {
		_, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     job.ID,
			Date:      "07/09/2026",
			StartTime: "14:00",
			EndTime:   "15:00",
			Capacity:  1,
		})
		assert.Error(t, err)

		_, err = service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     job.ID,
			Date:      futureDate(t, 3),
			StartTime: "2pm",
			EndTime:   "15:00",
			Capacity:  1,
		})
		assert.Error(t, err)
	})

	t.Run("rejects unsupported recurrence descriptors", func(t *testing.T) {
		for _, descriptor := range []string{"DAILY:3", "WEEKLY:0", "WEEKLY:x", "WEEKLY:53"} {
			_, err := service.CreateSlot(ctx, models.CreateSlotRequest{
				JobID:      job.ID,
				Date:       futureDate(t, 3),
				StartTime:  "14:00",
				EndTime:    "15:00",
				Capacity:   1,
				Recurrence: descriptor,
			})
			assert.Error(t, err, "descriptor %s", descriptor)
		}
	})

	t.Run("refuses a job without a coding language", func(t *testing.T) {
		bare, err := NewJobService(client.Client).CreateJob(ctx, models.CreateJobRequest{
			Title:       "Data Analyst",
			Description: "Ad-hoc reporting.",
		})
		require.NoError(t, err)

		_, err = service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     bare.ID,
			Date:      futureDate(t, 3),
			StartTime: "14:00",
			EndTime:   "15:00",
			Capacity:  1,
		})
		assert.True(t, IsStateError(err, CodeJobNotConfigured))
	})

	t.Run("unknown job returns not found", func(t *testing.T) {
		_, err := service.CreateSlot(ctx, models.CreateSlotRequest{
			JobID:     "no-such-job",
			Date:      futureDate(t, 3),
			StartTime: "14:00",
			EndTime:   "15:00",
			Capacity:  1,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSlotService_ListSlots(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSlotService(client.Client, testZone(t))
	ctx := context.Background()

	job := createTestJob(t, client)
	sl := createTestSlot(t, client, job.ID, 2)

	t.Run("lists slots with derived status", func(t *testing.T) {
		resp, err := service.ListSlots(ctx, models.SlotFilters{JobID: job.ID})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, sl.ID, resp.Slots[0].ID)
		assert.Equal(t, SlotAvailable, resp.Slots[0].Status)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("available_only hides full slots", func(t *testing.T) {
		_, err := client.Slot.UpdateOneID(sl.ID).SetCurrentBookings(2).Save(ctx)
		require.NoError(t, err)

		resp, err := service.ListSlots(ctx, models.SlotFilters{JobID: job.ID, AvailableOnly: true})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("cancelled slots are hidden unless requested", func(t *testing.T) {
		require.NoError(t, service.CancelSlot(ctx, sl.ID))

		resp, err := service.ListSlots(ctx, models.SlotFilters{JobID: job.ID})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)

		resp, err = service.ListSlots(ctx, models.SlotFilters{JobID: job.ID, IncludeCancelled: true})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, SlotCancelled, resp.Slots[0].Status)
	})
}

func TestSlotService_CancelSlot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSlotService(client.Client, testZone(t))
	ctx := context.Background()

	job := createTestJob(t, client)
	sl := createTestSlot(t, client, job.ID, 1)

	require.NoError(t, service.CancelSlot(ctx, sl.ID))

	got, err := service.GetSlot(ctx, sl.ID)
	require.NoError(t, err)
	assert.True(t, got.Cancelled)

	assert.ErrorIs(t, service.CancelSlot(ctx, "no-such-slot"), ErrNotFound)
}
