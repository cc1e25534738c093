package pennywise

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the synchronous key-value collaborator every collection is
// persisted to. Get reports whether the key exists at all, so that a missing
// collection can be told apart from an empty one.
type Storage interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// DirStorage persists each key as a JSON file in a directory.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a storage rooted at dir. The directory is created
// lazily on the first Set.
func NewDirStorage(dir string) DirStorage { return DirStorage{dir: dir} }

func (s DirStorage) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s DirStorage) Get(key string) ([]byte, bool, error) {
	content, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", s.path(key), err)
	}
	return content, true, nil
}

func (s DirStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(key), err)
	}
	return nil
}

// MemStorage is an in-memory storage, mostly useful in tests.
type MemStorage map[string][]byte

func NewMemStorage() MemStorage { return MemStorage{} }

func (s MemStorage) Get(key string) ([]byte, bool, error) {
	value, ok := s[key]
	return value, ok, nil
}

func (s MemStorage) Set(key string, value []byte) error {
	s[key] = value
	return nil
}
