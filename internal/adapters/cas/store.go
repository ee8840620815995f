// Package cas implements the persistent transform cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransformCache = (*Store)(nil)

// Store implements ports.TransformCache using a flat JSON file.
type Store struct {
	path   string
	mu     sync.RWMutex
	cache  map[string]domain.CachedTransform
	saveMu sync.Mutex
}

// NewStore creates a new TransformCache backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.CachedTransform),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open is a ports.TransformCacheFactory opening a Store.
func Open(path string) (ports.TransformCache, error) {
	return NewStore(path)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read transform cache"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal transform cache"), "path", s.path)
	}

	return nil
}

// save writes the cache to a temporary file and renames it into place.
func (s *Store) save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal transform cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for transform cache"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary cache file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write transform cache")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write transform cache")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace transform cache"), "path", s.path)
	}

	return nil
}

// Get retrieves the cached transform for key.
func (s *Store) Get(key string) (*domain.CachedTransform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the transform and persists the cache.
func (s *Store) Put(entry domain.CachedTransform) error {
	if entry.Key == "" {
		return zerr.New("transform cache entry has no key")
	}

	s.mu.Lock()
	s.cache[entry.Key] = entry
	s.mu.Unlock()

	return s.save()
}
