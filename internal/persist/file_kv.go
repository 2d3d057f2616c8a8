package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV keeps one file per key under dir.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return string(data), nil
}

func (f *FileKV) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func (f *FileKV) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
