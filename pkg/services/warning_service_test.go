package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/models"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestWarningService_RecordAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWarningService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)

	require.NoError(t, service.Record(ctx, sess.ID, models.WarningMultiplePeople,
		"2 people in frame", "evidence/"+sess.ID+"/w1.jpg"))
	require.NoError(t, service.Record(ctx, sess.ID, models.WarningTabSwitched,
		"candidate left the tab", ""))

	warnings, err := service.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, warnings, 2)

	assert.Equal(t, "multiple_people", string(warnings[0].WarningType))
	require.NotNil(t, warnings[0].EvidencePath)
	assert.Equal(t, "evidence/"+sess.ID+"/w1.jpg", *warnings[0].EvidencePath)

	// Suppressed types are logged without evidence.
	assert.Equal(t, "tab_switched", string(warnings[1].WarningType))
	assert.Nil(t, warnings[1].EvidencePath)
}

func TestWarningService_CountByType(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWarningService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client, session.StatusActive)

	for _, wt := range []string{
		models.WarningNoPerson,
		models.WarningNoPerson,
		models.WarningPhoneDetected,
	} {
		require.NoError(t, service.Record(ctx, sess.ID, wt, "", ""))
	}

	counts, err := service.CountByType(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"no_person":      2,
		"phone_detected": 1,
	}, counts)
}

func TestWarningService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWarningService(client.Client)
	ctx := context.Background()

	t.Run("renders sorted counts and drops suppressed types", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)
		for _, wt := range []string{
			models.WarningPhoneDetected,
			models.WarningMultiplePeople,
			models.WarningMultiplePeople,
			models.WarningLowConcentration,
			models.WarningTabSwitched,
			models.WarningTabSwitched,
		} {
			require.NoError(t, service.Record(ctx, sess.ID, wt, "", ""))
		}

		summary, err := service.Summary(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "2× multiple_people\n1× phone_detected", summary)
	})

	t.Run("empty when every warning is suppressed", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)
		require.NoError(t, service.Record(ctx, sess.ID, models.WarningLowConcentration, "", ""))

		summary, err := service.Summary(ctx, sess.ID)
		require.NoError(t, err)
		assert.Empty(t, summary)
	})

	t.Run("empty for a clean session", func(t *testing.T) {
		sess := createTestSession(t, client, session.StatusActive)

		summary, err := service.Summary(ctx, sess.ID)
		require.NoError(t, err)
		assert.Empty(t, summary)
	})
}
