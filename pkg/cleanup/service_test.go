package cleanup

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *storage.Store, *services.SystemWarningsService) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	warnings := services.NewSystemWarningsService()
	cfg := &config.RetentionConfig{
		EvidenceRetentionDays: 90,
		AudioRetentionDays:    30,
		CleanupInterval:       time.Hour,
	}
	return NewService(cfg, store, warnings), store, warnings
}

// seedObject stores a small payload and backdates its mtime, which is what
// the retention sweep keys on.
func seedObject(t *testing.T, store *storage.Store, key string, age time.Duration) {
	t.Helper()
	path, err := store.Save(key, []byte("payload"))
	require.NoError(t, err)
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestService_PrunesExpiredEvidence(t *testing.T) {
	svc, store, _ := setupService(t)

	seedObject(t, store, "evidence/sess-1/0001.jpg", 91*24*time.Hour)
	seedObject(t, store, "evidence/sess-2/0001.jpg", 89*24*time.Hour)
	seedObject(t, store, "recordings/sess-1.webm", 91*24*time.Hour)
	seedObject(t, store, "recordings/sess-2.webm", 89*24*time.Hour)

	svc.runAll()

	assert.False(t, store.Exists("evidence/sess-1/0001.jpg"))
	assert.True(t, store.Exists("evidence/sess-2/0001.jpg"))
	assert.False(t, store.Exists("recordings/sess-1.webm"))
	assert.True(t, store.Exists("recordings/sess-2.webm"))
}

func TestService_PrunesExpiredAudio(t *testing.T) {
	svc, store, _ := setupService(t)

	seedObject(t, store, "audio/sess-1/q1.webm", 31*24*time.Hour)
	seedObject(t, store, "audio/sess-1/q2.webm", 29*24*time.Hour)
	// Evidence has a longer window than audio; a 31-day frame must survive.
	seedObject(t, store, "evidence/sess-1/0001.jpg", 31*24*time.Hour)

	svc.runAll()

	assert.False(t, store.Exists("audio/sess-1/q1.webm"))
	assert.True(t, store.Exists("audio/sess-1/q2.webm"))
	assert.True(t, store.Exists("evidence/sess-1/0001.jpg"))
}

func TestService_PrunesAbandonedTempObjects(t *testing.T) {
	svc, store, _ := setupService(t)

	seedObject(t, store, "tmp/upload-1.partial", 48*time.Hour)
	seedObject(t, store, "tmp/upload-2.partial", time.Hour)

	svc.runAll()

	assert.False(t, store.Exists("tmp/upload-1.partial"))
	assert.True(t, store.Exists("tmp/upload-2.partial"))
}

func TestService_ClearsWarningAfterSuccessfulSweep(t *testing.T) {
	svc, _, warnings := setupService(t)

	warnings.AddWarning(services.WarningCategoryRetention,
		"Retention sweep for evidence failed", "disk error", "evidence")
	require.Len(t, warnings.GetWarnings(), 1)

	svc.runAll()

	for _, w := range warnings.GetWarnings() {
		assert.NotEqual(t, services.WarningCategoryRetention, w.Category)
	}
}

func TestService_StartStop(t *testing.T) {
	svc, _, _ := setupService(t)
	svc.config.CleanupInterval = 10 * time.Millisecond

	ctx := context.Background()
	svc.Start(ctx)
	// A second start is a no-op rather than a second loop.
	svc.Start(ctx)

	time.Sleep(30 * time.Millisecond)

	svc.Stop()
	// Stopping twice must not hang.
	svc.Stop()
}
