package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryVision, "Vision sidecar unreachable", "connection refused", "proctor")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryVision, warnings[0].Category)
	assert.Equal(t, "Vision sidecar unreachable", warnings[0].Message)
	assert.Equal(t, "connection refused", warnings[0].Details)
	assert.Equal(t, "proctor", warnings[0].Component)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearByComponent(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategorySandbox, "Sandbox unavailable", "", "coderunner")
	svc.AddWarning(WarningCategoryRecording, "Recording disabled", "", "proctor")

	assert.Len(t, svc.GetWarnings(), 2)

	cleared := svc.ClearByComponent(WarningCategorySandbox, "coderunner")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "proctor", svc.GetWarnings()[0].Component)

	// Clear non-existent
	cleared = svc.ClearByComponent(WarningCategorySandbox, "nonexistent")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryAIQuota, "First error", "err1", "gateway")
	svc.AddWarning(WarningCategoryAIQuota, "Second error", "err2", "gateway")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ConcurrentAccess(t *testing.T) {
	svc := NewSystemWarningsService()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.AddWarning(WarningCategoryRetention, "Sweep failed", "", "cleanup")
		}()
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}
	wg.Wait()

	// Replacement semantics collapse same category+component to one row.
	assert.Len(t, svc.GetWarnings(), 1)
}
