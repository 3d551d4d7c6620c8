package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	path, err := s.Save("evidence/sess-1/frame.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	data, err := s.Read("evidence/sess-1/frame.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.True(t, s.Exists("evidence/sess-1/frame.jpg"))
}

func TestSaveLeavesNoPartialFiles(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("audio/sess-1/chunk.pcm", []byte("pcm"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(s.Root(), "audio", "sess-1"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "chunk.pcm", entries[0].Name())
}

func TestKeyValidation(t *testing.T) {
	s := newTestStore(t)

	for _, key := range []string{"", "/etc/passwd", "../outside", "a/../../b"} {
		_, err := s.Save(key, []byte("x"))
		assert.Error(t, err, "key %q must be rejected", key)
	}

	// Interior ".." that stays inside the root is fine after cleaning.
	_, err := s.Save("a/b/../c.txt", []byte("x"))
	require.NoError(t, err)
	assert.True(t, s.Exists("a/c.txt"))
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("tmp/x", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, s.Remove("tmp/x"))
	require.NoError(t, s.Remove("tmp/x"))
	assert.False(t, s.Exists("tmp/x"))
}

func TestListScopedToPrefix(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("evidence/s1/a.jpg", []byte("a"))
	require.NoError(t, err)
	_, err = s.Save("evidence/s2/b.jpg", []byte("b"))
	require.NoError(t, err)
	_, err = s.Save("recordings/s1/r.webm", []byte("r"))
	require.NoError(t, err)

	objects, err := s.List("evidence")
	require.NoError(t, err)
	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
	}
	assert.ElementsMatch(t, []string{"evidence/s1/a.jpg", "evidence/s2/b.jpg"}, keys)
}

func TestListMissingPrefixIsEmpty(t *testing.T) {
	s := newTestStore(t)

	objects, err := s.List("evidence")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestRemoveOlderThan(t *testing.T) {
	s := newTestStore(t)

	oldPath, err := s.Save("evidence/s1/old.jpg", []byte("old"))
	require.NoError(t, err)
	_, err = s.Save("evidence/s1/new.jpg", []byte("new"))
	require.NoError(t, err)

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stale, stale))

	removed, err := s.RemoveOlderThan("evidence", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, s.Exists("evidence/s1/old.jpg"))
	assert.True(t, s.Exists("evidence/s1/new.jpg"))
}

func TestRemoveOlderThanPrunesEmptyDirs(t *testing.T) {
	s := newTestStore(t)

	path, err := s.Save("evidence/s1/only.jpg", []byte("x"))
	require.NoError(t, err)
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(path, stale, stale))

	_, err = s.RemoveOlderThan("evidence", time.Now())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(s.Root(), "evidence", "s1"))
	assert.True(t, os.IsNotExist(statErr), "emptied session directory should be pruned")
}

func TestRemoveAll(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("tmp/rec-s1/frame-000001.jpg", []byte("a"))
	require.NoError(t, err)
	_, err = s.Save("tmp/rec-s1/chunk-000001.pcm", []byte("b"))
	require.NoError(t, err)
	_, err = s.Save("tmp/rec-s2/frame-000001.jpg", []byte("c"))
	require.NoError(t, err)

	require.NoError(t, s.RemoveAll("tmp/rec-s1"))
	assert.False(t, s.Exists("tmp/rec-s1/frame-000001.jpg"))
	assert.True(t, s.Exists("tmp/rec-s2/frame-000001.jpg"))

	// Missing prefixes are fine, the root is not.
	assert.NoError(t, s.RemoveAll("tmp/rec-s1"))
	assert.Error(t, s.RemoveAll("."))
}
