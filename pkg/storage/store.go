// Package storage provides the filesystem-backed object store for proctoring
// artifacts: evidence frames, candidate audio, and session recordings. Keys
// are forward-slash relative paths under a single root directory; writes are
// atomic (temp file + rename) so readers never observe partial objects.
package storage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Well-known key prefixes. Retention policies are applied per prefix.
const (
	PrefixEvidence   = "evidence"
	PrefixAudio      = "audio"
	PrefixRecordings = "recordings"
	PrefixTmp        = "tmp"
)

// Object describes one stored artifact.
type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Store is a filesystem object store rooted at a single directory.
// Safe for concurrent use; atomicity comes from rename semantics.
type Store struct {
	root string
}

// NewStore creates (if needed) and validates the storage root.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root must not be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", abs, err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute root directory.
func (s *Store) Root() string {
	return s.root
}

// Path resolves a key to its absolute filesystem path. External tools
// (ffmpeg) operate on these paths directly.
func (s *Store) Path(key string) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Save writes data under key atomically and returns the absolute path.
func (s *Store) Save(key string, data []byte) (string, error) {
	return s.SaveStream(key, strings.NewReader(string(data)))
}

// SaveStream writes the reader's contents under key atomically and returns
// the absolute path.
func (s *Store) SaveStream(key string, r io.Reader) (string, error) {
	dst, err := s.Path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".partial-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp object: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close object %s: %w", key, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return dst, nil
}

// Read returns the full contents of an object.
func (s *Store) Read(key string) ([]byte, error) {
	p, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// Open returns a reader over an object. The caller closes it.
func (s *Store) Open(key string) (io.ReadCloser, error) {
	p, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	return f, nil
}

// Exists reports whether an object is present.
func (s *Store) Exists(key string) bool {
	p, err := s.Path(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Remove deletes an object. Missing objects are not an error.
func (s *Store) Remove(key string) error {
	p, err := s.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}

// List walks all objects under a key prefix, oldest first is not guaranteed;
// callers filter on ModTime.
func (s *Store) List(prefix string) ([]Object, error) {
	base, err := s.Path(prefix)
	if err != nil {
		return nil, err
	}

	var objects []Object
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		objects = append(objects, Object{
			Key:     filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, err)
	}
	return objects, nil
}

// RemoveAll deletes every object under a key prefix. Guarded by the same
// key validation as single-object operations, so a caller cannot wipe the
// root by accident.
func (s *Store) RemoveAll(prefix string) error {
	p, err := s.Path(prefix)
	if err != nil {
		return err
	}
	if p == s.root {
		return fmt.Errorf("refusing to remove storage root")
	}
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("failed to remove prefix %s: %w", prefix, err)
	}
	return nil
}

// RemoveOlderThan deletes every object under prefix whose mtime precedes
// cutoff, pruning directories that become empty. Returns how many objects
// were removed.
func (s *Store) RemoveOlderThan(prefix string, cutoff time.Time) (int, error) {
	objects, err := s.List(prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, obj := range objects {
		if obj.ModTime.After(cutoff) {
			continue
		}
		if err := s.Remove(obj.Key); err != nil {
			return removed, err
		}
		removed++
	}
	s.pruneEmptyDirs(prefix)
	return removed, nil
}

func (s *Store) pruneEmptyDirs(prefix string) {
	base, err := s.Path(prefix)
	if err != nil {
		return
	}
	// Repeated passes collapse nested empty directories bottom-up.
	for {
		pruned := false
		filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() || path == base {
				return nil
			}
			entries, err := os.ReadDir(path)
			if err == nil && len(entries) == 0 {
				if os.Remove(path) == nil {
					pruned = true
				}
			}
			return nil
		})
		if !pruned {
			return
		}
	}
}

// cleanKey validates and normalizes a storage key. Keys never escape the
// root: absolute paths and parent traversal are rejected.
func cleanKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("storage key must not be empty")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("storage key must be relative: %s", key)
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("storage key escapes root: %s", key)
	}
	return clean, nil
}
