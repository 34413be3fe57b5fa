package tripsplit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore is a file-backed Store keeping one file per key inside a
// directory. The directory is created lazily on first write.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) path(key string) (string, error) {
	// Keys are fixed identifiers, never user input, but refuse anything
	// that would escape the store directory.
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid store key %q: %w", key, ErrInvalidInput)
	}
	return filepath.Join(s.dir, key), nil
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", p, err)
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	// Write through a temporary file so a crash never leaves a truncated
	// document behind.
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("could not replace %q: %w", p, err)
	}
	return nil
}

func (s *DirStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete %q: %w", p, err)
	}
	return nil
}
